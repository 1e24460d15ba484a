package security

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestJWTRoundTripPreservesClaims(t *testing.T) {
	mgr := NewJWTManager("abcdefghijklmnopqrstuvwxyz123456", time.Hour)

	token, err := mgr.Sign(42, "ana@valbrand.mx", 3)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	claims, err := mgr.Parse(token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.UserID != 42 || claims.Email != "ana@valbrand.mx" || claims.RoleID != 3 {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	if claims.Subject != "42" {
		t.Fatalf("unexpected subject: %q", claims.Subject)
	}
	remaining := claims.RemainingLifetime(time.Now())
	if remaining <= 0 || remaining > time.Hour {
		t.Fatalf("unexpected remaining lifetime: %v", remaining)
	}
}

func TestJWTTokensSignedWithinSameSecondDiffer(t *testing.T) {
	mgr := NewJWTManager("abcdefghijklmnopqrstuvwxyz123456", time.Hour)

	first, err := mgr.Sign(7, "ana@valbrand.mx", 2)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	second, err := mgr.Sign(7, "ana@valbrand.mx", 2)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if first == second {
		t.Fatal("back-to-back tokens for the same subject must not collide")
	}

	claims, err := mgr.Parse(second)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.ID == "" {
		t.Fatal("expected a token identifier claim")
	}
}

func TestJWTExpiredTokenIsInvalid(t *testing.T) {
	mgr := NewJWTManager("abcdefghijklmnopqrstuvwxyz123456", -time.Minute)

	token, err := mgr.Sign(1, "a@b.com", 1)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := mgr.Parse(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestJWTTamperedAndMalformedTokensAreInvalid(t *testing.T) {
	mgr := NewJWTManager("abcdefghijklmnopqrstuvwxyz123456", time.Hour)

	token, err := mgr.Sign(1, "a@b.com", 1)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	parts := strings.Split(token, ".")
	tampered := parts[0] + "." + parts[1] + ".AAAA"
	if _, err := mgr.Parse(tampered); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for tampered signature, got %v", err)
	}
	if _, err := mgr.Parse("not-a-token"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for malformed token, got %v", err)
	}

	other := NewJWTManager("zyxwvutsrqponmlkjihgfedcba654321", time.Hour)
	if _, err := other.Parse(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for wrong secret, got %v", err)
	}
}

func TestNewResetTokenIsURLSafeAndUnique(t *testing.T) {
	a, err := NewResetToken()
	if err != nil {
		t.Fatalf("new reset token: %v", err)
	}
	b, err := NewResetToken()
	if err != nil {
		t.Fatalf("new reset token: %v", err)
	}
	if a == b {
		t.Fatal("expected distinct tokens")
	}
	if len(a) < 43 {
		t.Fatalf("expected at least 32 bytes of entropy, got %d chars", len(a))
	}
	if strings.ContainsAny(a, "+/=") {
		t.Fatalf("token not URL-safe: %q", a)
	}
}
