package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const defaultSessionTTL = time.Hour

// ErrInvalidToken is returned for any token that fails to parse or validate.
var ErrInvalidToken = errors.New("invalid token")

// Claims defines the JWT claims carried by a session token.
type Claims struct {
	jwt.RegisteredClaims
	UserID int `json:"user_id"`
}

// SessionService issues signed session tokens and parses them back.
// The token itself is the whole session state; logout is just dropping it.
type SessionService struct {
	signingKey []byte
	ttl        time.Duration
}

func NewSessionService(cfg SessionConfig) *SessionService {
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &SessionService{
		signingKey: []byte(cfg.SigningKey),
		ttl:        ttl,
	}
}

var _ Sessions = (*SessionService)(nil)

// IssueToken signs a fresh session token for the user.
func (s *SessionService) IssueToken(userID int) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID: userID,
	})
	return token.SignedString(s.signingKey)
}

// ParseToken validates a session token and returns the user id it carries.
func (s *SessionService) ParseToken(accessToken string) (int, error) {
	token, err := jwt.ParseWithClaims(accessToken, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Ensure HMAC signing is used
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.signingKey, nil
	})
	if err != nil {
		return 0, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return 0, ErrInvalidToken
	}

	return claims.UserID, nil
}
