package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	m := NewManager("test-secret", 7)

	token, err := m.GenerateToken(42, "Ana Pérez", "ana@example.com", "admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := m.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "Ana Pérez", claims.Name)
	assert.Equal(t, "ana@example.com", claims.Email)
	assert.Equal(t, "admin", claims.Role)
	assert.NotNil(t, claims.ExpiresAt)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	issuer := NewManager("secret-a", 7)
	verifier := NewManager("secret-b", 7)

	token, err := issuer.GenerateToken(1, "user", "u@example.com", "user")
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateExpiredToken(t *testing.T) {
	// Negative expiry makes every issued token already expired.
	m := NewManager("test-secret", -1)

	token, err := m.GenerateToken(1, "user", "u@example.com", "user")
	require.NoError(t, err)

	_, err = m.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateGarbageToken(t *testing.T) {
	m := NewManager("test-secret", 7)

	_, err := m.ValidateToken("not-a-token")
	assert.Error(t, err)
}
