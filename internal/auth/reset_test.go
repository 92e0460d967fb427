package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewResetToken(t *testing.T) {
	token, hash, err := NewResetToken()
	require.NoError(t, err)

	assert.Len(t, token, 64) // 32 random bytes, hex encoded
	assert.NotEqual(t, token, hash)
	// The stored hash must be recomputable from the emailed token.
	assert.Equal(t, hash, HashResetToken(token))
}

func TestNewResetToken_Unique(t *testing.T) {
	first, _, err := NewResetToken()
	require.NoError(t, err)
	second, _, err := NewResetToken()
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestHashResetToken_Deterministic(t *testing.T) {
	assert.Equal(t, HashResetToken("abc"), HashResetToken("abc"))
	assert.NotEqual(t, HashResetToken("abc"), HashResetToken("abd"))
}
