package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("secret123", bcrypt.MinCost)
	require.NoError(t, err)

	assert.NotEqual(t, "secret123", hash)
	assert.False(t, strings.Contains(hash, "secret123"))
	assert.NoError(t, ComparePassword(hash, "secret123"))
}

func TestComparePasswordMismatch(t *testing.T) {
	hash, err := HashPassword("secret123", bcrypt.MinCost)
	require.NoError(t, err)

	assert.Error(t, ComparePassword(hash, "wrong"))
	assert.Error(t, ComparePassword(hash, ""))
}

func TestHashPasswordSalted(t *testing.T) {
	first, err := HashPassword("secret123", bcrypt.MinCost)
	require.NoError(t, err)
	second, err := HashPassword("secret123", bcrypt.MinCost)
	require.NoError(t, err)

	// bcrypt salts each hash, so equal inputs never produce equal hashes
	assert.NotEqual(t, first, second)
}
