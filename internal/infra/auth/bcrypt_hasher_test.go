package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"persona/config"
)

func newTestHasher() *bcryptHasher {
	// MinCost keeps the tests fast; production cost comes from config.
	return &bcryptHasher{cost: bcrypt.MinCost}
}

func TestBcryptHasher_Hash(t *testing.T) {
	hasher := newTestHasher()

	password := "secretpw"
	hash, err := hasher.Hash(password)
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	// Verify the hash can be checked.
	assert.True(t, hasher.Check(password, hash))
}

func TestBcryptHasher_Check(t *testing.T) {
	hasher := newTestHasher()
	password := "secretpw"

	hash, err := hasher.Hash(password)
	assert.NoError(t, err)

	assert.True(t, hasher.Check(password, hash))
	assert.False(t, hasher.Check("wrongpass", hash))
	assert.False(t, hasher.Check("", hash))
}

func TestBcryptHasher_CheckAgainstDifferentHash(t *testing.T) {
	hasher := newTestHasher()

	hashP, err := hasher.Hash("password-one")
	assert.NoError(t, err)
	hashQ, err := hasher.Hash("password-two")
	assert.NoError(t, err)

	assert.False(t, hasher.Check("password-one", hashQ))
	assert.False(t, hasher.Check("password-two", hashP))
}

func TestBcryptHasher_IsHash(t *testing.T) {
	hasher := newTestHasher()

	hash, err := hasher.Hash("secretpw")
	assert.NoError(t, err)

	assert.True(t, hasher.IsHash(hash))
	assert.False(t, hasher.IsHash("secretpw"))
	assert.False(t, hasher.IsHash(""))
	assert.False(t, hasher.IsHash("$2a$-not-a-real-hash"))
}

func TestNewBcryptHasher_CostFromConfig(t *testing.T) {
	cfg := &config.Config{Auth: &config.AuthConfig{BcryptCost: bcrypt.MinCost}}

	hasher := NewBcryptHasher(cfg)

	hash, err := hasher.Hash("secretpw")
	assert.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	assert.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)
}
