package auth

import (
	"testing"

	"artizia_backend/internal/config"
	"artizia_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	cfg := &config.Config{}
	cfg.JWT.Secret = "unit-test-secret"
	cfg.JWT.TTL = 60
	config.AppConfig = cfg
}

func TestTokenRoundTrip(t *testing.T) {
	token, tokenID, expiresAt, err := GenerateToken("user-123", models.RoleVendor)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.NotEmpty(t, tokenID)
	assert.False(t, expiresAt.IsZero())

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, models.RoleVendor, claims.Role)
	assert.Equal(t, tokenID, claims.ID)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	_, err := ParseToken("not-a-jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	token, _, _, err := GenerateToken("user-123", models.RoleCustomer)
	require.NoError(t, err)

	config.AppConfig.JWT.Secret = "rotated-secret"
	defer func() { config.AppConfig.JWT.Secret = "unit-test-secret" }()

	_, err = ParseToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestEveryGeneratedTokenHasUniqueID(t *testing.T) {
	_, idA, _, err := GenerateToken("user-123", models.RoleCustomer)
	require.NoError(t, err)
	_, idB, _, err := GenerateToken("user-123", models.RoleCustomer)
	require.NoError(t, err)
	assert.NotEqual(t, idA, idB)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("password123")
	require.NoError(t, err)
	assert.NotEqual(t, "password123", hash)

	assert.True(t, CheckPasswordHash("password123", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
}

func TestValidatePassword(t *testing.T) {
	assert.Error(t, ValidatePassword("short"))
	assert.NoError(t, ValidatePassword("long enough"))
}
