package auth

// Role is the closed set of roles the application understands. Anything
// outside the set is treated as unauthorized, never mapped to a fallback.
type Role string

const (
	RoleEmployee          Role = "EMPLOYEE"
	RoleDepartmentManager Role = "DEPARTMENT_MANAGER"
	RoleHRManager         Role = "HR_MANAGER"
)

func KnownRole(r Role) bool {
	switch r {
	case RoleEmployee, RoleDepartmentManager, RoleHRManager:
		return true
	}
	return false
}

// DeriveRole maps staff attributes to a role. HR flag wins over section
// management so an HR manager who also heads a section keeps HR access.
func DeriveRole(isHR, managesSection bool) Role {
	switch {
	case isHR:
		return RoleHRManager
	case managesSection:
		return RoleDepartmentManager
	default:
		return RoleEmployee
	}
}
