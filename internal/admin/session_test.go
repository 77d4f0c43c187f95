package admin

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSessionIssueValidate(t *testing.T) {
	s := NewSessionService("test-secret", 6, zap.NewNop())

	token, err := s.Issue()
	require.NoError(t, err)
	assert.NoError(t, s.Validate(token))
	assert.Equal(t, 6*time.Hour, s.TTL())
}

func TestSessionRejectsForeignSignature(t *testing.T) {
	issuer := NewSessionService("secret-a", 6, zap.NewNop())
	verifier := NewSessionService("secret-b", 6, zap.NewNop())

	token, err := issuer.Issue()
	require.NoError(t, err)
	assert.ErrorIs(t, verifier.Validate(token), ErrInvalidSession)
}

func TestSessionRejectsGarbage(t *testing.T) {
	s := NewSessionService("test-secret", 6, zap.NewNop())
	assert.ErrorIs(t, s.Validate(""), ErrInvalidSession)
	assert.ErrorIs(t, s.Validate("admin=1"), ErrInvalidSession)
	assert.ErrorIs(t, s.Validate("not.a.jwt"), ErrInvalidSession)
}

func TestSessionRejectsExpired(t *testing.T) {
	s := &SessionService{secret: []byte("test-secret"), ttl: -time.Minute}
	token, err := s.Issue()
	require.NoError(t, err)
	assert.ErrorIs(t, s.Validate(token), ErrInvalidSession)
}

func TestSessionRejectsNonAdminClaims(t *testing.T) {
	s := NewSessionService("test-secret", 6, zap.NewNop())

	claims := SessionClaims{
		Admin: false,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	require.NoError(t, err)
	assert.ErrorIs(t, s.Validate(token), ErrInvalidSession)
}

func TestEmptySecretGetsRandomKey(t *testing.T) {
	a := NewSessionService("", 6, zap.NewNop())
	b := NewSessionService("", 6, zap.NewNop())

	token, err := a.Issue()
	require.NoError(t, err)
	assert.NoError(t, a.Validate(token))
	assert.ErrorIs(t, b.Validate(token), ErrInvalidSession, "per-process keys must not validate each other's sessions")
}
