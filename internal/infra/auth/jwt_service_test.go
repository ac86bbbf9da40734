package auth

import (
	"testing"
	"time"

	"paseo/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *jwtService {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = "test-access-secret"

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc.(*jwtService)
}

func signedToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)

	return signed
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	require.Error(t, err)
}

func TestJWTService_ValidateToken(t *testing.T) {
	svc := newTestService(t)

	tokenString := signedToken(t, "test-access-secret", jwt.MapClaims{
		"sub": "1",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	token, err := svc.ValidateToken(tokenString, "test-access-secret")
	require.NoError(t, err)
	assert.True(t, token.Valid)
}

func TestJWTService_ValidateToken_WrongSecret(t *testing.T) {
	svc := newTestService(t)

	tokenString := signedToken(t, "another-secret", jwt.MapClaims{
		"sub": "1",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	_, err := svc.ValidateToken(tokenString, "test-access-secret")
	require.Error(t, err)
}

func TestJWTService_ValidateToken_Expired(t *testing.T) {
	svc := newTestService(t)

	tokenString := signedToken(t, "test-access-secret", jwt.MapClaims{
		"sub": "1",
		"exp": time.Now().Add(-time.Hour).Unix(),
	})

	_, err := svc.ValidateToken(tokenString, "test-access-secret")
	require.Error(t, err)
}
