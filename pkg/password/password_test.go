package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerify(t *testing.T) {
	stored, err := Hash("secret1")
	require.NoError(t, err)

	assert.NotEqual(t, "secret1", stored)
	assert.True(t, Verify("secret1", stored))
	assert.False(t, Verify("secret2", stored))
}

func TestHashIsSalted(t *testing.T) {
	a, err := Hash("secret1")
	require.NoError(t, err)
	b, err := Hash("secret1")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestVerifyMalformedStoredHash(t *testing.T) {
	assert.False(t, Verify("secret1", ""))
	assert.False(t, Verify("secret1", "not-a-hash"))
	assert.False(t, Verify("secret1", "$2a$10$short"))
}
