package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBCryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBCryptHasher(bcrypt.MinCost)

	hash, err := hasher.Hash("112233")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "112233", hash)

	assert.NoError(t, hasher.Check(hash, "112233"))
	assert.Error(t, hasher.Check(hash, "332211"))
}

func TestBCryptHasher_EmptyInputs(t *testing.T) {
	hasher := NewBCryptHasher(bcrypt.MinCost)

	_, err := hasher.Hash("")
	assert.Error(t, err)

	assert.Error(t, hasher.Check("", "112233"))
	assert.Error(t, hasher.Check("some-hash", ""))
}

func TestNewBCryptHasher_CostOutOfRange(t *testing.T) {
	// Недопустимая стоимость заменяется значением по умолчанию
	hasher := NewBCryptHasher(1000)
	assert.Equal(t, DefaultCost, hasher.cost)
}
