package domain

// Role is the closed set of profile roles. Adding a role means extending the
// permission tables below, so the capability of every role is decided in one
// place.
type Role string

const (
	RoleTrafficControlManager     Role = "tcm"
	RoleSiteManager               Role = "sm"
	RoleDispatchCoordinator       Role = "dc"
	RoleFieldSupervisor           Role = "fs"
	RoleTrafficWorksiteSupervisor Role = "tws"
	RoleTrafficControlPerson      Role = "tcp"
)

// AllRoles lists every valid role
var AllRoles = []Role{
	RoleTrafficControlManager,
	RoleSiteManager,
	RoleDispatchCoordinator,
	RoleFieldSupervisor,
	RoleTrafficWorksiteSupervisor,
	RoleTrafficControlPerson,
}

// IsValid reports whether r is one of the known roles
func (r Role) IsValid() bool {
	switch r {
	case RoleTrafficControlManager, RoleSiteManager, RoleDispatchCoordinator,
		RoleFieldSupervisor, RoleTrafficWorksiteSupervisor, RoleTrafficControlPerson:
		return true
	}
	return false
}

var manageInventoryRoles = map[Role]bool{
	RoleTrafficControlManager: true,
	RoleSiteManager:           true,
	RoleDispatchCoordinator:   true,
	RoleFieldSupervisor:       true,
}

// checkoutEquipmentRoles is a strict superset of manageInventoryRoles;
// worksite supervisors can check equipment in and out but cannot edit the
// inventory itself.
var checkoutEquipmentRoles = map[Role]bool{
	RoleTrafficControlManager:     true,
	RoleSiteManager:               true,
	RoleDispatchCoordinator:       true,
	RoleFieldSupervisor:           true,
	RoleTrafficWorksiteSupervisor: true,
}

// CanManageInventory reports whether the role may create, edit, or delete
// equipment items, categories, and locations. Unknown roles get nothing.
func CanManageInventory(r Role) bool {
	return manageInventoryRoles[r]
}

// CanCheckoutEquipment reports whether the role may check equipment out and
// back in. Unknown roles get nothing.
func CanCheckoutEquipment(r Role) bool {
	return checkoutEquipmentRoles[r]
}
