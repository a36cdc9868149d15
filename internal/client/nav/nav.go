// Package nav computes the menu a role is allowed to see.
package nav

import (
	"hradmin/internal/client/routes"
	"hradmin/internal/domain/auth"
)

type Item struct {
	Label       string
	Destination string
	Logout      bool
}

var menus = map[auth.Role][]Item{
	auth.RoleEmployee: {
		{Label: "Dashboard", Destination: routes.EmployeeDashboard},
		{Label: "My Profile", Destination: routes.EmployeeProfile},
	},
	auth.RoleDepartmentManager: {
		{Label: "Dashboard", Destination: routes.ManagerDashboard},
		{Label: "Section Employees", Destination: routes.ManagerEmployees},
		{Label: "Search Employees", Destination: routes.ManagerSearch},
		{Label: "Salary Statistics", Destination: routes.ManagerStatistics},
	},
	auth.RoleHRManager: {
		{Label: "Dashboard", Destination: routes.HRDashboard},
		{Label: "All Employees", Destination: routes.HREmployees},
		{Label: "Search Employees", Destination: routes.HRSearch},
		{Label: "Sections", Destination: routes.HRDepartments},
		{Label: "Places", Destination: routes.HRPlaces},
		{Label: "Employment History", Destination: routes.HREmployeeHistory},
		{Label: "Salary Statistics", Destination: routes.HRStatistics},
	},
}

// MenuFor returns the ordered menu for a role with a sign-out entry appended
// last. A role outside the closed set gets the sign-out entry only.
func MenuFor(role auth.Role) []Item {
	items := menus[role]
	out := make([]Item, 0, len(items)+1)
	out = append(out, items...)
	out = append(out, Item{Label: "Sign Out", Logout: true})
	return out
}
