// Package routes is the client's route table: every navigable destination,
// the role each one requires, and the per-role landing pages.
package routes

import "hradmin/internal/domain/auth"

const (
	Login        = "/login"
	Unauthorized = "/unauthorized"

	EmployeeDashboard = "/employee/dashboard"
	EmployeeProfile   = "/employee/profile"

	ManagerDashboard  = "/manager/dashboard"
	ManagerEmployees  = "/manager/employees"
	ManagerSearch     = "/manager/search"
	ManagerStatistics = "/manager/statistics"

	HRDashboard       = "/hr/dashboard"
	HREmployees       = "/hr/employees"
	HRSearch          = "/hr/search"
	HRDepartments     = "/hr/departments"
	HRPlaces          = "/hr/places"
	HRStatistics      = "/hr/statistics"
	HREmployeeHistory = "/hr/employee-history"
)

// Default is where the bare root resolves.
const Default = Login

type Route struct {
	Path string
	Role auth.Role
}

var protected = []Route{
	{EmployeeDashboard, auth.RoleEmployee},
	{EmployeeProfile, auth.RoleEmployee},
	{ManagerDashboard, auth.RoleDepartmentManager},
	{ManagerEmployees, auth.RoleDepartmentManager},
	{ManagerSearch, auth.RoleDepartmentManager},
	{ManagerStatistics, auth.RoleDepartmentManager},
	{HRDashboard, auth.RoleHRManager},
	{HREmployees, auth.RoleHRManager},
	{HRSearch, auth.RoleHRManager},
	{HRDepartments, auth.RoleHRManager},
	{HRPlaces, auth.RoleHRManager},
	{HRStatistics, auth.RoleHRManager},
	{HREmployeeHistory, auth.RoleHRManager},
}

// Protected returns the guarded route table in navigation order.
func Protected() []Route {
	out := make([]Route, len(protected))
	copy(out, protected)
	return out
}

// RequiredRole looks up the role a path demands. ok=false means the path is
// not a protected route.
func RequiredRole(path string) (auth.Role, bool) {
	for _, r := range protected {
		if r.Path == path {
			return r.Role, true
		}
	}
	return "", false
}

// Landing maps a role to its post-login destination. Unknown roles get no
// route at all rather than a guessed one.
func Landing(role auth.Role) (string, bool) {
	switch role {
	case auth.RoleEmployee:
		return EmployeeDashboard, true
	case auth.RoleDepartmentManager:
		return ManagerDashboard, true
	case auth.RoleHRManager:
		return HRDashboard, true
	}
	return "", false
}
