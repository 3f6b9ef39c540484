package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestPasswordHasher_HashAndVerify(t *testing.T) {
	hasher := NewPasswordHasher(bcrypt.MinCost)

	passwords := []string{"secret1", "", "pässwörd", strings.Repeat("x", 200)}
	for _, p := range passwords {
		hash, err := hasher.Hash(p)
		require.NoError(t, err)
		assert.NotEqual(t, p, hash)
		assert.True(t, hasher.Verify(p, hash), "password %q should verify", p)
	}
}

func TestPasswordHasher_RejectsOtherPasswords(t *testing.T) {
	hasher := NewPasswordHasher(bcrypt.MinCost)

	hash, err := hasher.Hash("secret1")
	require.NoError(t, err)

	assert.False(t, hasher.Verify("secret2", hash))
	assert.False(t, hasher.Verify("Secret1", hash))
	assert.False(t, hasher.Verify("", hash))
}

func TestPasswordHasher_LongInputsDoNotCollide(t *testing.T) {
	hasher := NewPasswordHasher(bcrypt.MinCost)
	prefix := strings.Repeat("a", 80)

	hash, err := hasher.Hash(prefix + "1")
	require.NoError(t, err)

	assert.True(t, hasher.Verify(prefix+"1", hash))
	assert.False(t, hasher.Verify(prefix+"2", hash))
}

func TestPasswordHasher_SaltIsRandom(t *testing.T) {
	hasher := NewPasswordHasher(bcrypt.MinCost)

	first, err := hasher.Hash("secret1")
	require.NoError(t, err)
	second, err := hasher.Hash("secret1")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestPasswordHasher_MalformedHash(t *testing.T) {
	hasher := NewPasswordHasher(bcrypt.MinCost)

	assert.False(t, hasher.Verify("secret1", ""))
	assert.False(t, hasher.Verify("secret1", "not-a-hash"))
	assert.False(t, hasher.Verify("secret1", "$2a$04$short"))
}

func TestPasswordHasher_Cost(t *testing.T) {
	assert.Equal(t, DefaultBcryptCost, NewPasswordHasher(0).Cost())
	assert.Equal(t, DefaultBcryptCost, NewPasswordHasher(bcrypt.MaxCost+1).Cost())

	hasher := NewPasswordHasher(bcrypt.MinCost)
	hash, err := hasher.Hash("secret1")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)

	assert.False(t, hasher.NeedsRehash(hash))
	assert.True(t, NewPasswordHasher(bcrypt.MinCost+1).NeedsRehash(hash))
	assert.True(t, hasher.NeedsRehash("garbage"))
}
