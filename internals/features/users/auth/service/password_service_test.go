package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("S3cure-passphrase")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.True(t, strings.HasPrefix(hash, "$2"), "bcrypt hashes carry the $2 prefix")
	assert.NotContains(t, hash, "S3cure-passphrase")

	assert.NoError(t, CheckPasswordHash(hash, "S3cure-passphrase"))
	assert.Error(t, CheckPasswordHash(hash, "wrong-passphrase"))
	assert.Error(t, CheckPasswordHash(hash, ""))
}

func TestHashPasswordSalts(t *testing.T) {
	first, err := HashPassword("same-input")
	require.NoError(t, err)
	second, err := HashPassword("same-input")
	require.NoError(t, err)

	assert.NotEqual(t, first, second, "each hash gets a fresh salt")
	assert.NoError(t, CheckPasswordHash(first, "same-input"))
	assert.NoError(t, CheckPasswordHash(second, "same-input"))
}
