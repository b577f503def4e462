package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTService_CreateAndVerify(t *testing.T) {
	t.Parallel()

	svc, err := NewJWTService([]byte("super-secret"))
	require.NoError(t, err)

	token, err := svc.CreateToken(42, "user@gmail.com", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "user@gmail.com", claims.Email)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt, time.Minute)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	t.Parallel()

	svc, err := NewJWTService([]byte("super-secret"))
	require.NoError(t, err)

	// beyond the clock skew leeway
	token, err := svc.CreateToken(1, "user@gmail.com", -time.Minute)
	require.NoError(t, err)

	_, err = svc.VerifyToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestJWTService_WrongSecret(t *testing.T) {
	t.Parallel()

	issuer, err := NewJWTService([]byte("right-secret"))
	require.NoError(t, err)
	verifier, err := NewJWTService([]byte("wrong-secret"))
	require.NoError(t, err)

	token, err := issuer.CreateToken(1, "user@gmail.com", time.Hour)
	require.NoError(t, err)

	_, err = verifier.VerifyToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTService_MalformedToken(t *testing.T) {
	t.Parallel()

	svc, err := NewJWTService([]byte("secret"))
	require.NoError(t, err)

	_, err = svc.VerifyToken("not.a.jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestNewJWTService_RejectsEmptySecret(t *testing.T) {
	t.Parallel()

	_, err := NewJWTService(nil)
	assert.Error(t, err)
}
