package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("tajne-haslo-123", DefaultArgonParams())
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "$argon2id$"))

	assert.True(t, VerifyPassword("tajne-haslo-123", hash))
	assert.False(t, VerifyPassword("zle-haslo", hash))
}

func TestHashPassword_SaltedHashesDiffer(t *testing.T) {
	h1, err := HashPassword("haslo", DefaultArgonParams())
	assert.NoError(t, err)
	h2, err := HashPassword("haslo", DefaultArgonParams())
	assert.NoError(t, err)
	assert.NotEqual(t, h1, h2)
}

func TestVerifyPassword_MalformedHash(t *testing.T) {
	assert.False(t, VerifyPassword("haslo", "not-a-phc-string"))
	assert.False(t, VerifyPassword("haslo", ""))
}
