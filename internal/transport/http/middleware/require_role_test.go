package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"hradmin/internal/domain/auth"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func doWithToken(t *testing.T, handler http.Handler, claims *auth.Claims) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if claims != nil {
		req.Header.Set("Authorization", "Bearer "+bearerToken(t, *claims))
	}
	rec := httptest.NewRecorder()
	Auth(testSecret)(handler).ServeHTTP(rec, req)
	return rec
}

func TestRequireAuth(t *testing.T) {
	tests := []struct {
		name     string
		claims   *auth.Claims
		wantCode int
	}{
		{name: "anonymous", wantCode: http.StatusUnauthorized},
		{name: "employee", claims: &auth.Claims{StaffID: 1, Role: auth.RoleEmployee}, wantCode: http.StatusOK},
		{name: "hr manager", claims: &auth.Claims{StaffID: 5, Role: auth.RoleHRManager}, wantCode: http.StatusOK},
		{name: "unknown role", claims: &auth.Claims{StaffID: 9, Role: auth.Role("SUPERADMIN")}, wantCode: http.StatusForbidden},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			rec := doWithToken(t, RequireAuth(okHandler()), tc.claims)
			if rec.Code != tc.wantCode {
				t.Fatalf("status mismatch: got %d want %d", rec.Code, tc.wantCode)
			}
		})
	}
}

func TestRequireRole(t *testing.T) {
	tests := []struct {
		name     string
		required auth.Role
		claims   *auth.Claims
		wantCode int
	}{
		{name: "anonymous", required: auth.RoleHRManager, wantCode: http.StatusUnauthorized},
		{name: "exact match", required: auth.RoleHRManager, claims: &auth.Claims{StaffID: 5, Role: auth.RoleHRManager}, wantCode: http.StatusOK},
		{name: "wrong role", required: auth.RoleHRManager, claims: &auth.Claims{StaffID: 1, Role: auth.RoleEmployee}, wantCode: http.StatusForbidden},
		{name: "manager is not hr", required: auth.RoleHRManager, claims: &auth.Claims{StaffID: 2, Role: auth.RoleDepartmentManager, SectionID: 2}, wantCode: http.StatusForbidden},
		{name: "unknown role", required: auth.RoleEmployee, claims: &auth.Claims{StaffID: 9, Role: auth.Role("SUPERADMIN")}, wantCode: http.StatusForbidden},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			rec := doWithToken(t, RequireRole(tc.required)(okHandler()), tc.claims)
			if rec.Code != tc.wantCode {
				t.Fatalf("status mismatch: got %d want %d", rec.Code, tc.wantCode)
			}
		})
	}
}
