package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func newTestSessions() *SessionService {
	return NewSessionService(SessionConfig{SigningKey: "test-signing-key", TTL: time.Hour})
}

func TestSessionService_IssueAndParse(t *testing.T) {
	svc := newTestSessions()

	token, err := svc.IssueToken(99)
	if err != nil {
		t.Fatalf("IssueToken failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected non-empty token")
	}

	uid, err := svc.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken returned error: %v", err)
	}
	if uid != 99 {
		t.Fatalf("expected user id 99, got %d", uid)
	}
}

func TestSessionService_ParseToken_Malformed(t *testing.T) {
	svc := newTestSessions()
	_, err := svc.ParseToken("not-a-jwt")
	if err == nil {
		t.Fatalf("expected error for malformed token")
	}
}

func TestSessionService_ParseToken_InvalidSignature(t *testing.T) {
	svc := newTestSessions()

	// Token signed with a different key must be rejected.
	other := NewSessionService(SessionConfig{SigningKey: "different-key", TTL: time.Hour})
	badToken, err := other.IssueToken(5)
	if err != nil {
		t.Fatalf("IssueToken failed: %v", err)
	}

	_, err = svc.ParseToken(badToken)
	if err == nil {
		t.Fatalf("expected signature verification error")
	}
}

func TestSessionService_ParseToken_Expired(t *testing.T) {
	svc := newTestSessions()

	past := time.Now().Add(-2 * time.Hour)
	tk := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(past),
			IssuedAt:  jwt.NewNumericDate(past.Add(-time.Minute)),
		},
		UserID: 11,
	})
	expiredToken, err := tk.SignedString(svc.signingKey)
	if err != nil {
		t.Fatalf("SignedString failed: %v", err)
	}

	_, err = svc.ParseToken(expiredToken)
	if err == nil {
		t.Fatalf("expected error for expired token")
	}
}

func TestSessionService_ParseToken_UnexpectedAlg(t *testing.T) {
	svc := newTestSessions()

	// "none" algorithm must be rejected by the HMAC method check.
	tk := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		UserID: 12,
	})
	tokenStr, err := tk.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("SignedString failed: %v", err)
	}

	_, err = svc.ParseToken(tokenStr)
	if err == nil {
		t.Fatalf("expected error due to unexpected signing method")
	}
}

func TestSessionService_DefaultTTL(t *testing.T) {
	svc := NewSessionService(SessionConfig{SigningKey: "k"})
	if svc.ttl != defaultSessionTTL {
		t.Fatalf("expected default ttl %v, got %v", defaultSessionTTL, svc.ttl)
	}
}
