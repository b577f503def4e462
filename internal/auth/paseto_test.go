package auth

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPasetoKey() []byte {
	return bytes.Repeat([]byte("k"), 32)
}

func TestPasetoService_CreateAndVerify(t *testing.T) {
	t.Parallel()

	svc, err := NewPasetoService(testPasetoKey())
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

func TestPasetoService_ExpiredToken(t *testing.T) {
	t.Parallel()

	svc, err := NewPasetoService(testPasetoKey())
	require.NoError(t, err)

	token, err := svc.CreateToken(1, "user@gmail.com", -time.Minute)
	require.NoError(t, err)

	_, err = svc.VerifyToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestPasetoService_TamperedToken(t *testing.T) {
	t.Parallel()

	svc, err := NewPasetoService(testPasetoKey())
	require.NoError(t, err)

	token, err := svc.CreateToken(1, "user@gmail.com", time.Hour)
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"
	_, err = svc.VerifyToken(tampered)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = svc.VerifyToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestPasetoService_WrongKey(t *testing.T) {
	t.Parallel()

	issuer, err := NewPasetoService(testPasetoKey())
	require.NoError(t, err)
	verifier, err := NewPasetoService(bytes.Repeat([]byte("x"), 32))
	require.NoError(t, err)

	token, err := issuer.CreateToken(1, "user@gmail.com", time.Hour)
	require.NoError(t, err)

	_, err = verifier.VerifyToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestNewPasetoService_RejectsShortKey(t *testing.T) {
	t.Parallel()

	_, err := NewPasetoService([]byte("too-short"))
	assert.Error(t, err)
}
