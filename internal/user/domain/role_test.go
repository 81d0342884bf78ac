package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanManageInventory(t *testing.T) {
	tests := []struct {
		role Role
		want bool
	}{
		{RoleTrafficControlManager, true},
		{RoleSiteManager, true},
		{RoleDispatchCoordinator, true},
		{RoleFieldSupervisor, true},
		{RoleTrafficWorksiteSupervisor, false},
		{RoleTrafficControlPerson, false},
		{Role(""), false},
		{Role("admin"), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			assert.Equal(t, tt.want, CanManageInventory(tt.role))
		})
	}
}

func TestCanCheckoutEquipment(t *testing.T) {
	tests := []struct {
		role Role
		want bool
	}{
		{RoleTrafficControlManager, true},
		{RoleSiteManager, true},
		{RoleDispatchCoordinator, true},
		{RoleFieldSupervisor, true},
		{RoleTrafficWorksiteSupervisor, true},
		{RoleTrafficControlPerson, false},
		{Role(""), false},
		{Role("unknown"), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			assert.Equal(t, tt.want, CanCheckoutEquipment(tt.role))
		})
	}
}

func TestCheckoutRolesSupersetOfManageRoles(t *testing.T) {
	for _, role := range AllRoles {
		if CanManageInventory(role) {
			assert.True(t, CanCheckoutEquipment(role),
				"role %s can manage inventory but not check out equipment", role)
		}
	}
}

func TestRoleIsValid(t *testing.T) {
	for _, role := range AllRoles {
		assert.True(t, role.IsValid())
	}
	assert.False(t, Role("").IsValid())
	assert.False(t, Role("manager").IsValid())
}
