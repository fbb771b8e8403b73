package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashVerifyRoundTrip(t *testing.T) {
	h := New(bcrypt.MinCost)

	hash, err := h.Hash("123456")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "123456", hash)

	assert.True(t, h.Verify("123456", hash))
	assert.False(t, h.Verify("1234567", hash))
	assert.False(t, h.Verify("", hash))
}

func TestHashIsSalted(t *testing.T) {
	h := New(bcrypt.MinCost)

	a, err := h.Hash("same-password")
	require.NoError(t, err)
	b, err := h.Hash("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, a, b, "same input must not produce the same hash")
	assert.True(t, h.Verify("same-password", a))
	assert.True(t, h.Verify("same-password", b))
}

func TestVerifyGarbageHash(t *testing.T) {
	h := NewDefault()
	assert.False(t, h.Verify("whatever", "not-a-bcrypt-hash"))
}

func TestNewClampsBadCost(t *testing.T) {
	h := New(99)
	assert.Equal(t, DefaultCost, h.cost)

	h = New(-1)
	assert.Equal(t, DefaultCost, h.cost)
}
