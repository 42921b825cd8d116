package credential

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher(t *testing.T) {
	h := NewBcryptHasher(4)

	hash, err := h.Hash("Test@123456")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, MinBcryptCost, cost)

	assert.True(t, h.Verify("Test@123456", hash))
	assert.False(t, h.Verify("Test@1234567", hash))

	again, err := h.Hash("Test@123456")
	require.NoError(t, err)
	assert.NotEqual(t, hash, again, "salted")
}

func TestDummyHash(t *testing.T) {
	hash := DummyHash()
	require.NotEmpty(t, hash)
	assert.Equal(t, hash, DummyHash())

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, MinBcryptCost, cost)

	assert.False(t, NewBcryptHasher(MinBcryptCost).Verify("Test@123456", hash))
}
