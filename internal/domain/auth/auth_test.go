package auth

import (
	"testing"
	"time"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret")
	if err != nil {
		t.Fatalf("hash error: %v", err)
	}
	if hash == "s3cret" {
		t.Fatal("hash must not equal the plaintext")
	}
	if err := CheckPassword(hash, "s3cret"); err != nil {
		t.Fatalf("expected matching password, got %v", err)
	}
	if err := CheckPassword(hash, "wrong"); err == nil {
		t.Fatal("expected mismatch for wrong password")
	}
}

func TestTokenRoundTrip(t *testing.T) {
	claims := Claims{
		StaffID:   42,
		Role:      RoleDepartmentManager,
		SectionID: 2,
		SessionID: "sess-1",
	}

	token, err := GenerateToken("test-secret", claims, time.Hour)
	if err != nil {
		t.Fatalf("generate error: %v", err)
	}

	parsed, err := ParseToken("test-secret", token)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if parsed.StaffID != claims.StaffID || parsed.Role != claims.Role ||
		parsed.SectionID != claims.SectionID || parsed.SessionID != claims.SessionID {
		t.Fatalf("claims mismatch: got %+v", parsed)
	}
}

func TestParseTokenWrongSecret(t *testing.T) {
	token, err := GenerateToken("test-secret", Claims{StaffID: 42, Role: RoleEmployee}, time.Hour)
	if err != nil {
		t.Fatalf("generate error: %v", err)
	}
	if _, err := ParseToken("other-secret", token); err == nil {
		t.Fatal("expected error for wrong secret")
	}
}

func TestParseTokenExpired(t *testing.T) {
	token, err := GenerateToken("test-secret", Claims{StaffID: 42, Role: RoleEmployee}, -time.Minute)
	if err != nil {
		t.Fatalf("generate error: %v", err)
	}
	if _, err := ParseToken("test-secret", token); err == nil {
		t.Fatal("expected error for expired token")
	}
}

func TestHashTokenStable(t *testing.T) {
	first := HashToken("opaque-token")
	second := HashToken("opaque-token")
	if first != second {
		t.Fatal("expected deterministic token hash")
	}
	if first == "opaque-token" {
		t.Fatal("hash must not equal the token")
	}
	if len(first) != 64 {
		t.Fatalf("expected hex sha256, got %d chars", len(first))
	}
}
