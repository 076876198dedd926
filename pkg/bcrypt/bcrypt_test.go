package bcrypt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndComparePassword(t *testing.T) {
	b := NewWithCost(4)

	hash, err := b.HashPassword("s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hash)

	assert.NoError(t, b.ComparePassword(hash, "s3cret-pass"))
	assert.Error(t, b.ComparePassword(hash, "wrong-pass"))
}

func TestHashPassword_DifferentSalts(t *testing.T) {
	b := NewWithCost(4)

	first, err := b.HashPassword("same-input")
	require.NoError(t, err)
	second, err := b.HashPassword("same-input")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
