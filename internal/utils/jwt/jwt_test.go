package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_GenerateAndValidate(t *testing.T) {
	manager := NewManager("test-secret", time.Hour)

	token, err := manager.Generate()
	require.NoError(t, err)
	require.NotEmpty(t, token)

	assert.NoError(t, manager.Validate(token))
}

func TestManager_Validate_WrongSecret(t *testing.T) {
	manager := NewManager("test-secret", time.Hour)
	other := NewManager("other-secret", time.Hour)

	token, err := manager.Generate()
	require.NoError(t, err)

	assert.Error(t, other.Validate(token))
}

func TestManager_Validate_Expired(t *testing.T) {
	manager := NewManager("test-secret", -time.Minute)

	token, err := manager.Generate()
	require.NoError(t, err)

	assert.Error(t, manager.Validate(token))
}

func TestManager_Validate_Garbage(t *testing.T) {
	manager := NewManager("test-secret", time.Hour)

	assert.Error(t, manager.Validate("not-a-token"))
	assert.Error(t, manager.Validate(""))
}
