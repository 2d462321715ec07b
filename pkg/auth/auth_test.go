package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	require.NoError(t, err)
	require.NotEqual(t, "s3cret-pass", hash)

	assert.True(t, CheckPasswordHash("s3cret-pass", hash))
	assert.False(t, CheckPasswordHash("wrong-pass", hash))
}

func TestTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-jwt-secret")

	token, err := CreateToken("admin")
	require.NoError(t, err)

	claims, err := VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)
}

func TestTokenRejectsWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "first-secret")
	token, err := CreateToken("admin")
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "second-secret")
	_, err = VerifyToken(token)
	assert.Error(t, err)
}

func TestHMACKeyRoundTrip(t *testing.T) {
	t.Setenv("API_MASTER_SECRET", "test-master-secret")

	key := GenerateHMACKey("user-42")
	userID, err := VerifyHMACKey(key)
	require.NoError(t, err)
	assert.Equal(t, "user-42", userID)
}

func TestHMACKeyRejectsTampering(t *testing.T) {
	t.Setenv("API_MASTER_SECRET", "test-master-secret")

	key := GenerateHMACKey("user-42")

	_, err := VerifyHMACKey("other-user." + key[len("user-42."):])
	assert.Error(t, err, "signature must not transfer to another user ID")

	_, err = VerifyHMACKey("no-dot-at-all")
	assert.Error(t, err)

	_, err = VerifyHMACKey(key + "ff")
	assert.Error(t, err)
}
