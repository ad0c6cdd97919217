package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)

	password := "correct horse battery staple"
	hash, err := hasher.Hash(password)
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	// Test correct password
	assert.True(t, hasher.Check(password, hash))

	// Test incorrect password
	assert.False(t, hasher.Check("wrong password", hash))

	// Test empty password
	assert.False(t, hasher.Check("", hash))

	// Test with invalid hash
	assert.False(t, hasher.Check(password, "invalid_hash"))
}

func TestBcryptHasher_SaltedHashes(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)

	// Two hashes of the same password must differ because of the salt.
	first, err := hasher.Hash("repeat-me")
	assert.NoError(t, err)
	second, err := hasher.Hash("repeat-me")
	assert.NoError(t, err)
	assert.NotEqual(t, first, second)

	assert.True(t, hasher.Check("repeat-me", first))
	assert.True(t, hasher.Check("repeat-me", second))
}

func TestBcryptHasher_WithCustomCost(t *testing.T) {
	customCost := 6 // Lower cost for faster testing
	hasher := NewBcryptHasher(customCost)

	hash, err := hasher.Hash("some password")
	assert.NoError(t, err)

	// Verify the hash uses the correct cost
	cost, err := bcrypt.Cost([]byte(hash))
	assert.NoError(t, err)
	assert.Equal(t, customCost, cost)
}

func TestBcryptHasher_OutOfRangeCostFallsBack(t *testing.T) {
	for _, badCost := range []int{-1, 0, bcrypt.MaxCost + 1} {
		hasher := NewBcryptHasher(badCost)

		hash, err := hasher.Hash("some password")
		assert.NoError(t, err)

		cost, err := bcrypt.Cost([]byte(hash))
		assert.NoError(t, err)
		assert.Equal(t, bcrypt.DefaultCost, cost)
	}
}
