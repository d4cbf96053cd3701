package utils

import (
	"testing"
	"time"
)

func TestGenerateAndExtractToken(t *testing.T) {
	token, err := GenerateToken("user-123", "provider", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	sub, role, err := ExtractClaimsFromToken(token)
	if err != nil {
		t.Fatalf("ExtractClaimsFromToken: %v", err)
	}
	if sub != "user-123" {
		t.Errorf("sub = %q, want %q", sub, "user-123")
	}
	if role != "provider" {
		t.Errorf("role = %q, want %q", role, "provider")
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	token, err := GenerateToken("user-123", "customer", -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if _, _, err := ExtractClaimsFromToken(token); err == nil {
		t.Error("expected expired token to be rejected")
	}
}

func TestTamperedTokenRejected(t *testing.T) {
	token, err := GenerateToken("user-123", "customer", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	tampered := token[:len(token)-2] + "xx"
	if _, _, err := ExtractClaimsFromToken(tampered); err == nil {
		t.Error("expected tampered token to be rejected")
	}
}

func TestHashTokenDeterministic(t *testing.T) {
	a := HashToken("abc")
	b := HashToken("abc")
	if a != b {
		t.Error("hash must be deterministic")
	}
	if a == HashToken("abd") {
		t.Error("different tokens must hash differently")
	}
	if len(a) != 64 {
		t.Errorf("hash length = %d, want 64 hex chars", len(a))
	}
}
