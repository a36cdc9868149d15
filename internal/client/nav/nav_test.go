package nav

import (
	"reflect"
	"testing"

	"hradmin/internal/client/routes"
	"hradmin/internal/domain/auth"
)

func TestMenuForKnownRoles(t *testing.T) {
	tests := []struct {
		role      auth.Role
		wantCount int
		wantFirst string
	}{
		{role: auth.RoleEmployee, wantCount: 3, wantFirst: routes.EmployeeDashboard},
		{role: auth.RoleDepartmentManager, wantCount: 5, wantFirst: routes.ManagerDashboard},
		{role: auth.RoleHRManager, wantCount: 8, wantFirst: routes.HRDashboard},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(string(tc.role), func(t *testing.T) {
			menu := MenuFor(tc.role)
			if len(menu) != tc.wantCount {
				t.Fatalf("menu length mismatch: got %d want %d", len(menu), tc.wantCount)
			}
			if menu[0].Destination != tc.wantFirst {
				t.Fatalf("first destination mismatch: got %s want %s", menu[0].Destination, tc.wantFirst)
			}

			last := menu[len(menu)-1]
			if !last.Logout {
				t.Fatalf("expected logout entry last, got %+v", last)
			}
			for _, item := range menu[:len(menu)-1] {
				if item.Logout {
					t.Fatalf("unexpected logout entry before the end: %+v", item)
				}
				if _, ok := routes.RequiredRole(item.Destination); !ok {
					t.Fatalf("menu destination %s is not a protected route", item.Destination)
				}
			}

			if again := MenuFor(tc.role); !reflect.DeepEqual(menu, again) {
				t.Fatalf("expected identical menu on repeated calls")
			}
		})
	}
}

func TestMenuForUnknownRole(t *testing.T) {
	menu := MenuFor(auth.Role("SUPERADMIN"))
	if len(menu) != 1 {
		t.Fatalf("expected logout-only menu for unknown role, got %d entries", len(menu))
	}
	if !menu[0].Logout {
		t.Fatalf("expected logout entry, got %+v", menu[0])
	}
}

func TestMenuDestinationsMatchRequiredRoles(t *testing.T) {
	for role := range map[auth.Role]struct{}{
		auth.RoleEmployee:          {},
		auth.RoleDepartmentManager: {},
		auth.RoleHRManager:         {},
	} {
		for _, item := range MenuFor(role) {
			if item.Logout {
				continue
			}
			required, _ := routes.RequiredRole(item.Destination)
			if required != role {
				t.Fatalf("menu for %s points at %s which requires %s", role, item.Destination, required)
			}
		}
	}
}
