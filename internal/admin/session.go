package admin

import (
	"crypto/rand"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

var ErrInvalidSession = errors.New("invalid session")

// SessionClaims marks the bearer as admin for the session lifetime.
type SessionClaims struct {
	Admin bool `json:"admin"`
	jwt.RegisteredClaims
}

// SessionService issues and validates signed admin session tokens. The token
// travels in a cookie; its signature replaces the bare marker value the
// legacy page used, so a forged cookie value no longer grants admin.
type SessionService struct {
	secret []byte
	ttl    time.Duration
}

// NewSessionService creates a session service. An empty secret gets a random
// per-process key: sessions then do not survive a restart.
func NewSessionService(secret string, hours int, logger *zap.Logger) *SessionService {
	key := []byte(secret)
	if len(key) == 0 {
		key = make([]byte, 32)
		if _, err := rand.Read(key); err != nil {
			logger.Fatal("generate session key", zap.Error(err))
		}
		logger.Warn("SESSION_SECRET not set, using random per-process key; admin sessions will not survive restarts")
	}
	return &SessionService{
		secret: key,
		ttl:    time.Duration(hours) * time.Hour,
	}
}

// TTL returns the session lifetime.
func (s *SessionService) TTL() time.Duration {
	return s.ttl
}

// Issue creates a new admin session token.
func (s *SessionService) Issue() (string, error) {
	now := time.Now()
	claims := SessionClaims{
		Admin: true,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Validate checks a session token's signature, expiry and admin claim.
func (s *SessionService) Validate(tokenString string) error {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidSession
		}
		return s.secret, nil
	})
	if err != nil {
		return ErrInvalidSession
	}
	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid || !claims.Admin {
		return ErrInvalidSession
	}
	return nil
}
