package entity

// Matching rules between collector roles and donation types.
// NGOs redistribute edible food (packed, fresh); biogas agents take organic waste.
// Donors collect nothing.
var roleVisibleTypes = map[UserRole][]DonationType{
	UserRoleNGO:    {DonationTypePacked, DonationTypeFresh},
	UserRoleBiogas: {DonationTypeOrganic},
}

// VisibleTypes returns the donation types a role may see on the pending feed
// and is eligible to collect. Returns nil for non-collector roles.
func (r UserRole) VisibleTypes() []DonationType {
	return roleVisibleTypes[r]
}

// CanCollect reports whether the role is eligible to collect a donation of the
// given type.
func (r UserRole) CanCollect(t DonationType) bool {
	for _, visible := range roleVisibleTypes[r] {
		if visible == t {
			return true
		}
	}
	return false
}
