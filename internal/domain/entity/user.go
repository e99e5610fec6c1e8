package entity

import (
	"time"
)

// User represents a registered account in the system
type User struct {
	ID           string    `bson:"_id,omitempty" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	Role         UserRole  `bson:"role" json:"role"`
	CreatedAt    time.Time `bson:"created_at" json:"createdAt"`
}

// UserRole represents the role of a user in the system
type UserRole string

const (
	UserRoleDonor  UserRole = "donor"
	UserRoleNGO    UserRole = "ngo"
	UserRoleBiogas UserRole = "biogas"
)

// IsValid reports whether the role is one of the three known roles.
func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleDonor, UserRoleNGO, UserRoleBiogas:
		return true
	}
	return false
}

// IsCollector reports whether the role is allowed to collect donations at all.
func (r UserRole) IsCollector() bool {
	return r == UserRoleNGO || r == UserRoleBiogas
}

// Snapshot returns the denormalized copy of the user embedded into donations.
// Later changes to the account do not propagate to existing donations.
func (u *User) Snapshot() UserSnapshot {
	return UserSnapshot{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
	}
}

// CollectorSnapshot returns the copy of the user stamped onto a collected donation.
func (u *User) CollectorSnapshot() CollectorSnapshot {
	return CollectorSnapshot{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role,
	}
}
