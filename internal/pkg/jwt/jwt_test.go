package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidate(t *testing.T) {
	cfg := DefaultConfig("test-secret", 24)

	token, err := GenerateToken("user-1", "asha@example.com", cfg)
	require.NoError(t, err)

	claims, err := ValidateToken(token, "test-secret")
	require.NoError(t, err)
	require.Equal(t, "user-1", claims.UserID)
	require.Equal(t, "asha@example.com", claims.Email)
}

func TestValidateWrongSecret(t *testing.T) {
	cfg := DefaultConfig("test-secret", 24)

	token, err := GenerateToken("user-1", "asha@example.com", cfg)
	require.NoError(t, err)

	_, err = ValidateToken(token, "other-secret")
	require.Error(t, err)
}

func TestValidateExpired(t *testing.T) {
	cfg := DefaultConfig("test-secret", 24)
	cfg.AccessExpiry = -time.Hour

	token, err := GenerateToken("user-1", "asha@example.com", cfg)
	require.NoError(t, err)

	_, err = ValidateToken(token, "test-secret")
	require.Error(t, err)
}
