package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mikiasgoitom/FoodBridge/internal/domain/entity"
)

func TestVisibleTypes(t *testing.T) {
	assert.ElementsMatch(t, []entity.DonationType{entity.DonationTypePacked, entity.DonationTypeFresh}, entity.UserRoleNGO.VisibleTypes())
	assert.ElementsMatch(t, []entity.DonationType{entity.DonationTypeOrganic}, entity.UserRoleBiogas.VisibleTypes())
	assert.Empty(t, entity.UserRoleDonor.VisibleTypes())
}

func TestCanCollect(t *testing.T) {
	tests := []struct {
		role     entity.UserRole
		donation entity.DonationType
		want     bool
	}{
		{entity.UserRoleNGO, entity.DonationTypePacked, true},
		{entity.UserRoleNGO, entity.DonationTypeFresh, true},
		{entity.UserRoleNGO, entity.DonationTypeOrganic, false},
		{entity.UserRoleBiogas, entity.DonationTypeOrganic, true},
		{entity.UserRoleBiogas, entity.DonationTypeFresh, false},
		{entity.UserRoleBiogas, entity.DonationTypePacked, false},
		{entity.UserRoleDonor, entity.DonationTypePacked, false},
		{entity.UserRoleDonor, entity.DonationTypeFresh, false},
		{entity.UserRoleDonor, entity.DonationTypeOrganic, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.role.CanCollect(tt.donation), "role %s collecting %s", tt.role, tt.donation)
	}
}

func TestRoleValidity(t *testing.T) {
	assert.True(t, entity.UserRoleDonor.IsValid())
	assert.True(t, entity.UserRoleNGO.IsValid())
	assert.True(t, entity.UserRoleBiogas.IsValid())
	assert.False(t, entity.UserRole("admin").IsValid())

	assert.False(t, entity.UserRoleDonor.IsCollector())
	assert.True(t, entity.UserRoleNGO.IsCollector())
	assert.True(t, entity.UserRoleBiogas.IsCollector())
}

func TestSnapshotsAreCopies(t *testing.T) {
	user := &entity.User{ID: "9", Name: "Jane", Email: "jane@test.com", Role: entity.UserRoleNGO}

	snapshot := user.Snapshot()
	collector := user.CollectorSnapshot()

	user.Name = "Renamed"
	assert.Equal(t, "Jane", snapshot.Name)
	assert.Equal(t, "Jane", collector.Name)
	assert.Equal(t, entity.UserRoleNGO, collector.Role)
}
