package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("secret", bcrypt.MinCost)
	require.NoError(t, err)
	assert.NotEqual(t, "secret", hash)

	ok, err := VerifyPassword(hash, "secret")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = VerifyPassword(hash, "wrong")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerifyPassword_MalformedDigest(t *testing.T) {
	ok, err := VerifyPassword("not-a-bcrypt-hash", "secret")
	assert.False(t, ok)
	assert.ErrorIs(t, err, ErrCredential)
}

func TestHashPassword_InvalidCost(t *testing.T) {
	_, err := HashPassword("secret", bcrypt.MaxCost+1)
	assert.ErrorIs(t, err, ErrCredential)
}

func TestGenerateTemporaryPassword(t *testing.T) {
	first, err := GenerateTemporaryPassword(8)
	require.NoError(t, err)
	assert.Len(t, first, 8)

	second, err := GenerateTemporaryPassword(8)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}
