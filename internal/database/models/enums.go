package models

// Role defines the closed set of user roles. Role checks at the access-policy
// boundary must match exhaustively against these values rather than comparing
// free-form strings.
type Role string

const (
	RoleRootAdmin   Role = "ROOT_ADMIN"
	RoleTenantAdmin Role = "TENANT_ADMIN"
	RoleUser        Role = "USER"
	RoleTenant      Role = "TENANT"
)

// IsValid checks if the Role is valid
func (r Role) IsValid() bool {
	switch r {
	case RoleRootAdmin, RoleTenantAdmin, RoleUser, RoleTenant:
		return true
	}
	return false
}

// IsAdmin reports whether the role carries administrative capability.
// TENANT is a member-grade role with no admin capability, same as USER.
func (r Role) IsAdmin() bool {
	switch r {
	case RoleRootAdmin, RoleTenantAdmin:
		return true
	}
	return false
}

// CanAssign reports whether a holder of r may create or manage a user with
// the target role. ROOT_ADMIN may assign anything; TENANT_ADMIN only USER
// and TENANT_ADMIN; member-grade roles may assign nothing.
func (r Role) CanAssign(target Role) bool {
	switch r {
	case RoleRootAdmin:
		return true
	case RoleTenantAdmin:
		return target == RoleUser || target == RoleTenantAdmin
	}
	return false
}
