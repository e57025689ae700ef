package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_ProducesVerifiableHash(t *testing.T) {
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	assert.NotEqual(t, "s3cret", hash)
	assert.True(t, CheckPassword("s3cret", hash))
}

func TestHashPassword_SaltedHashesDiffer(t *testing.T) {
	first, err := HashPassword("same-password")
	require.NoError(t, err)
	second, err := HashPassword("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, CheckPassword("same-password", first))
	assert.True(t, CheckPassword("same-password", second))
}

func TestCheckPassword_SingleCharacterMismatchFails(t *testing.T) {
	hash, err := HashPassword("password1")
	require.NoError(t, err)

	assert.False(t, CheckPassword("password2", hash))
	assert.False(t, CheckPassword("Password1", hash))
	assert.False(t, CheckPassword("", hash))
}

func TestHashPassword_OverlongPassword(t *testing.T) {
	// bcrypt rejects inputs longer than 72 bytes
	_, err := HashPassword(strings.Repeat("a", 100))
	require.Error(t, err)
}
