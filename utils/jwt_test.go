package utils_test

import (
	"testing"
	"time"

	"schedly/config"
	"schedly/utils"

	"github.com/stretchr/testify/require"
)

func TestGenerateAndExtract(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"

	token, err := utils.GenerateToken("user-1", "user@example.com", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	sub, err := utils.ExtractIDFromToken(token)
	require.NoError(t, err)
	require.Equal(t, "user-1", sub)
}

func TestExpiredTokenRejected(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"

	token, err := utils.GenerateToken("user-1", "user@example.com", -time.Minute)
	require.NoError(t, err)

	_, err = utils.ExtractIDFromToken(token)
	require.Error(t, err)
}

func TestTamperedSecretRejected(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"
	token, err := utils.GenerateToken("user-1", "user@example.com", time.Hour)
	require.NoError(t, err)

	config.AppConfig.JWTSecret = "other-secret"
	_, err = utils.ExtractIDFromToken(token)
	require.Error(t, err)
}

func TestHashTokenStable(t *testing.T) {
	h1 := utils.HashToken("abc")
	h2 := utils.HashToken("abc")
	require.Equal(t, h1, h2)
	require.Len(t, h1, 64)
	require.NotEqual(t, h1, utils.HashToken("abd"))
}
