package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vidshare/vidshare-api/internal/config"
	"github.com/vidshare/vidshare-api/internal/models"
)

func TestJWTTokenRoundTrip(t *testing.T) {
	cfg := &config.Config{
		Server: config.ServerConfig{JwtSecretKey: "test-secret"},
	}
	user := &models.User{
		UserID:   uuid.New(),
		Username: "alice",
	}

	token, err := GenerateJWTToken(user, cfg)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateToken(token, cfg.Server.JwtSecretKey)
	require.NoError(t, err)
	assert.Equal(t, user.UserID.String(), claims.UserID)
	assert.Equal(t, user.Username, claims.Username)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	cfg := &config.Config{
		Server: config.ServerConfig{JwtSecretKey: "test-secret"},
	}
	token, err := GenerateJWTToken(&models.User{UserID: uuid.New()}, cfg)
	require.NoError(t, err)

	_, err = ValidateToken(token, "other-secret")
	assert.Error(t, err)
}

func TestValidateTokenGarbage(t *testing.T) {
	_, err := ValidateToken("not-a-token", "test-secret")
	assert.Error(t, err)
}
