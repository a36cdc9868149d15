package routes

import (
	"testing"

	"hradmin/internal/domain/auth"
)

func TestLanding(t *testing.T) {
	tests := []struct {
		role   auth.Role
		want   string
		wantOK bool
	}{
		{role: auth.RoleEmployee, want: EmployeeDashboard, wantOK: true},
		{role: auth.RoleDepartmentManager, want: ManagerDashboard, wantOK: true},
		{role: auth.RoleHRManager, want: HRDashboard, wantOK: true},
		{role: auth.Role("SUPERADMIN")},
		{role: auth.Role("")},
	}

	for _, tc := range tests {
		got, ok := Landing(tc.role)
		if ok != tc.wantOK || got != tc.want {
			t.Fatalf("Landing(%q) = %q, %v; want %q, %v", tc.role, got, ok, tc.want, tc.wantOK)
		}
	}
}

func TestRequiredRole(t *testing.T) {
	if role, ok := RequiredRole(HRPlaces); !ok || role != auth.RoleHRManager {
		t.Fatalf("expected hr places to require HR manager, got %q ok=%v", role, ok)
	}
	if role, ok := RequiredRole(ManagerSearch); !ok || role != auth.RoleDepartmentManager {
		t.Fatalf("expected manager search to require department manager, got %q ok=%v", role, ok)
	}
	if _, ok := RequiredRole(Login); ok {
		t.Fatal("login must not be a protected route")
	}
	if _, ok := RequiredRole(Unauthorized); ok {
		t.Fatal("unauthorized must not be a protected route")
	}
}

func TestDefaultIsLogin(t *testing.T) {
	if Default != Login {
		t.Fatalf("expected bare root to resolve to login, got %s", Default)
	}
}

func TestProtectedReturnsCopy(t *testing.T) {
	first := Protected()
	first[0].Path = "/mutated"
	if Protected()[0].Path == "/mutated" {
		t.Fatal("Protected must not expose the internal table")
	}
}
