package auth

import "testing"

func TestDeriveRole(t *testing.T) {
	tests := []struct {
		name           string
		isHR           bool
		managesSection bool
		want           Role
	}{
		{name: "plain staff", want: RoleEmployee},
		{name: "section manager", managesSection: true, want: RoleDepartmentManager},
		{name: "hr staff", isHR: true, want: RoleHRManager},
		{name: "hr staff managing a section", isHR: true, managesSection: true, want: RoleHRManager},
	}

	for _, tc := range tests {
		if got := DeriveRole(tc.isHR, tc.managesSection); got != tc.want {
			t.Fatalf("%s: got %s want %s", tc.name, got, tc.want)
		}
	}
}

func TestKnownRole(t *testing.T) {
	for _, role := range []Role{RoleEmployee, RoleDepartmentManager, RoleHRManager} {
		if !KnownRole(role) {
			t.Fatalf("expected %s to be known", role)
		}
	}
	for _, role := range []Role{"", "ADMIN", "employee", "HR_MANAGER "} {
		if KnownRole(role) {
			t.Fatalf("expected %q to be unknown", role)
		}
	}
}
