package util

import (
	"showtracker/configs"
	"testing"

	"github.com/stretchr/testify/require"
)

func setupSecrets(t *testing.T) {
	t.Helper()
	t.Setenv("ACCESS_TOKEN_SECRET", "access-secret")
	t.Setenv("REFRESH_TOKEN_SECRET", "refresh-secret")
	configs.LoadEnvVariables()
}

func TestCreateAndVerifyTokens(t *testing.T) {
	setupSecrets(t)

	tokens, err := CreateTokens(TokenSubject{UserId: "u1", Email: "jane@example.com", Role: "user", SessionId: "s1"})
	require.NoError(t, err)
	require.Greater(t, tokens.RefreshExpiresAt, tokens.AccessExpiresAt)

	_, claims, err := VerifyToken(tokens.AccessToken)
	require.NoError(t, err)
	require.Equal(t, "u1", claims.UserId)
	require.Equal(t, "s1", claims.SessionId)
	require.Equal(t, "jane@example.com", claims.Email)

	_, claims, err = VerifyRefreshToken(tokens.RefreshToken)
	require.NoError(t, err)
	require.Equal(t, "s1", claims.SessionId)
}

func TestVerifyRejectsSwappedTokens(t *testing.T) {
	setupSecrets(t)

	tokens, err := CreateTokens(TokenSubject{UserId: "u1", SessionId: "s1"})
	require.NoError(t, err)

	_, _, err = VerifyToken(tokens.RefreshToken)
	require.Error(t, err)
	_, _, err = VerifyRefreshToken(tokens.AccessToken)
	require.Error(t, err)
	_, _, err = VerifyToken("not-a-token")
	require.Error(t, err)
}

func TestVerifyRejectsSameSecretWrongType(t *testing.T) {
	t.Setenv("ACCESS_TOKEN_SECRET", "shared")
	t.Setenv("REFRESH_TOKEN_SECRET", "shared")
	configs.LoadEnvVariables()

	tokens, err := CreateTokens(TokenSubject{UserId: "u1", SessionId: "s1"})
	require.NoError(t, err)
	_, _, err = VerifyToken(tokens.RefreshToken)
	require.ErrorContains(t, err, "expected access token")
}

func TestCreateTokensWithoutSecrets(t *testing.T) {
	t.Setenv("ACCESS_TOKEN_SECRET", "")
	t.Setenv("REFRESH_TOKEN_SECRET", "")
	configs.LoadEnvVariables()

	_, err := CreateTokens(TokenSubject{UserId: "u1"})
	require.Error(t, err)
}

func TestPasswordHash(t *testing.T) {
	hash, err := HashPassword("secret1")
	require.NoError(t, err)
	require.NotEqual(t, "secret1", hash)
	require.True(t, CheckPassword(hash, "secret1"))
	require.False(t, CheckPassword(hash, "secret2"))
}
