package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken("user-1", "ana.delacruz@campus.edu", time.Hour)
	require.NoError(t, err)

	sub, err := ExtractIDFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", sub)
}

func TestGenerateTokenIsUniquePerIssue(t *testing.T) {
	// Two tokens minted back to back share sub/iat/exp, so uniqueness
	// depends entirely on the jti claim.
	first, err := GenerateToken("user-1", "ana.delacruz@campus.edu", time.Hour)
	require.NoError(t, err)
	second, err := GenerateToken("user-1", "ana.delacruz@campus.edu", time.Hour)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.NotEqual(t, HashToken(first), HashToken(second))
}

func TestExtractIDFromTokenRejectsGarbage(t *testing.T) {
	_, err := ExtractIDFromToken("not-a-token")
	assert.Error(t, err)
}
