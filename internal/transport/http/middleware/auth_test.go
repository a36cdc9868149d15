package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hradmin/internal/domain/auth"
)

const testSecret = "test-secret"

func bearerToken(t *testing.T, claims auth.Claims) string {
	t.Helper()
	token, err := auth.GenerateToken(testSecret, claims, time.Hour)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	return token
}

func TestAuthAttachesUser(t *testing.T) {
	var got UserContext
	var found bool
	handler := Auth(testSecret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, found = GetUser(r.Context())
	}))

	token := bearerToken(t, auth.Claims{StaffID: 42, Role: auth.RoleDepartmentManager, SectionID: 2, SessionID: "sess-1"})
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if !found {
		t.Fatal("expected user in context")
	}
	if got.StaffID != 42 || got.Role != auth.RoleDepartmentManager || got.SectionID != 2 || got.SessionID != "sess-1" {
		t.Fatalf("user context mismatch: %+v", got)
	}
}

func TestAuthLeavesRequestAnonymous(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{name: "no header"},
		{name: "not bearer", header: "Basic abc"},
		{name: "malformed", header: "Bearer"},
		{name: "garbage token", header: "Bearer not-a-jwt"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			var called bool
			handler := Auth(testSecret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
				if _, ok := GetUser(r.Context()); ok {
					t.Fatal("expected anonymous request")
				}
			}))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if !called {
				t.Fatal("expected handler to run for anonymous request")
			}
			if rec.Code != http.StatusOK {
				t.Fatalf("expected pass-through status, got %d", rec.Code)
			}
		})
	}
}

func TestAuthRejectsWrongSecret(t *testing.T) {
	other, err := auth.GenerateToken("other-secret", auth.Claims{StaffID: 42, Role: auth.RoleEmployee}, time.Hour)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	handler := Auth(testSecret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := GetUser(r.Context()); ok {
			t.Fatal("expected anonymous request for forged token")
		}
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+other)
	handler.ServeHTTP(httptest.NewRecorder(), req)
}
