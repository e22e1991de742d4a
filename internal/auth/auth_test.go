package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("hunter22")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter22", hash)

	assert.True(t, CheckPasswordHash("hunter22", hash))
	assert.False(t, CheckPasswordHash("wrong-password", hash))
}

func TestJWTRoundtrip(t *testing.T) {
	secret := []byte("test-secret")

	token, err := GenerateJWT(secret, "user-123", "chef@example.com", time.Hour)
	require.NoError(t, err)

	claims, err := ParseJWT(secret, token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "chef@example.com", claims.Email)
}

func TestParseJWTWrongSecret(t *testing.T) {
	token, err := GenerateJWT([]byte("secret-a"), "user-123", "chef@example.com", time.Hour)
	require.NoError(t, err)

	_, err = ParseJWT([]byte("secret-b"), token)
	assert.Error(t, err)
}

func TestParseJWTExpired(t *testing.T) {
	secret := []byte("test-secret")

	token, err := GenerateJWT(secret, "user-123", "chef@example.com", -time.Minute)
	require.NoError(t, err)

	_, err = ParseJWT(secret, token)
	assert.Error(t, err)
}

func TestParseJWTGarbage(t *testing.T) {
	_, err := ParseJWT([]byte("test-secret"), "not-a-token")
	assert.Error(t, err)
}
