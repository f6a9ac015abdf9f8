package token

import (
	"testing"
	"time"
)

func newTestService() *Service {
	return NewService("access-secret", "refresh-secret", 15*time.Minute, 7*24*time.Hour)
}

func TestIssuePairAndVerify(t *testing.T) {
	t.Parallel()

	svc := newTestService()
	userID := "3f1c9a2e-0000-0000-0000-000000000001"

	access, refresh, err := svc.IssuePair(userID)
	if err != nil {
		t.Fatalf("IssuePair error: %v", err)
	}
	if access == refresh {
		t.Fatalf("access and refresh token must differ")
	}

	gotID, err := svc.VerifyAccess(access)
	if err != nil {
		t.Fatalf("VerifyAccess error: %v", err)
	}
	if gotID != userID {
		t.Fatalf("userID mismatch: got %q want %q", gotID, userID)
	}

	gotID, err = svc.VerifyRefresh(refresh)
	if err != nil {
		t.Fatalf("VerifyRefresh error: %v", err)
	}
	if gotID != userID {
		t.Fatalf("userID mismatch: got %q want %q", gotID, userID)
	}
}

func TestIssuePair_UniquePerCall(t *testing.T) {
	t.Parallel()

	svc := newTestService()

	// Dua penerbitan berturut-turut biasanya jatuh di detik yang sama;
	// token tetap harus berbeda supaya rotasi refresh token berarti
	access1, refresh1, err := svc.IssuePair("u1")
	if err != nil {
		t.Fatalf("IssuePair error: %v", err)
	}
	access2, refresh2, err := svc.IssuePair("u1")
	if err != nil {
		t.Fatalf("IssuePair error: %v", err)
	}

	if refresh1 == refresh2 {
		t.Fatalf("refresh tokens from consecutive issuances must differ")
	}
	if access1 == access2 {
		t.Fatalf("access tokens from consecutive issuances must differ")
	}
}

func TestVerify_SecretSeparation(t *testing.T) {
	t.Parallel()

	svc := newTestService()
	access, refresh, err := svc.IssuePair("u1")
	if err != nil {
		t.Fatalf("IssuePair error: %v", err)
	}

	// access token tidak boleh lolos di endpoint refresh, dan sebaliknya
	if _, err := svc.VerifyRefresh(access); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for access token on refresh path, got %v", err)
	}
	if _, err := svc.VerifyAccess(refresh); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for refresh token on access path, got %v", err)
	}
}

func TestVerify_Expired(t *testing.T) {
	t.Parallel()

	svc := NewService("a", "r", -1*time.Second, -1*time.Second)
	access, _, err := svc.IssuePair("u1")
	if err != nil {
		t.Fatalf("IssuePair error: %v", err)
	}

	if _, err := svc.VerifyAccess(access); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	t.Parallel()

	svc := newTestService()
	access, _, err := svc.IssuePair("u1")
	if err != nil {
		t.Fatalf("IssuePair error: %v", err)
	}

	other := NewService("different-secret", "refresh-secret", time.Hour, time.Hour)
	if _, err := other.VerifyAccess(access); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for wrong secret, got %v", err)
	}
}

func TestVerify_Malformed(t *testing.T) {
	t.Parallel()

	svc := newTestService()
	if _, err := svc.VerifyAccess("not.a.jwt"); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for malformed token, got %v", err)
	}
	if _, err := svc.VerifyRefresh(""); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for empty token, got %v", err)
	}
}
