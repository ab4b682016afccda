package out_test

import (
	"testing"
	"time"

	authout "paperdrill/internal/modules/auth/adapter/out"
)

func TestJWTIssuerRoundTripAndExpiry(t *testing.T) {
	t.Parallel()
	issuer, err := authout.NewJWTIssuer("0123456789abcdef")
	if err != nil {
		t.Fatalf("new issuer: %v", err)
	}
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	token, err := issuer.Issue("paperdrill", now, now.Add(time.Hour))
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if err := issuer.Verify(token, now.Add(30*time.Minute)); err != nil {
		t.Fatalf("verify fresh token: %v", err)
	}
	if err := issuer.Verify(token, now.Add(2*time.Hour)); err == nil {
		t.Fatalf("expected expired token to fail")
	}

	other, _ := authout.NewJWTIssuer("another-secret-value")
	if err := other.Verify(token, now); err == nil {
		t.Fatalf("expected token signed with another secret to fail")
	}
	if err := issuer.Verify("not-a-jwt", now); err == nil {
		t.Fatalf("expected garbage token to fail")
	}
}

func TestNewJWTIssuerRequiresSecret(t *testing.T) {
	t.Parallel()
	if _, err := authout.NewJWTIssuer(""); err == nil {
		t.Fatalf("expected error for empty secret")
	}
}
