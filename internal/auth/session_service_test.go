package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateSessionToken(t *testing.T) {
	svc := NewSessionService("unit-test-secret")

	sessionID, token, err := svc.GenerateSessionToken("u-1", "teacher")
	require.NoError(t, err)
	require.NotEmpty(t, sessionID)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateSessionToken(token)
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.UserID)
	assert.Equal(t, "teacher", claims.Role)
	assert.Equal(t, sessionID, claims.ID)
}

func TestValidateSessionTokenWrongSecret(t *testing.T) {
	_, token, err := NewSessionService("secret-a").GenerateSessionToken("u-1", "student")
	require.NoError(t, err)

	_, err = NewSessionService("secret-b").ValidateSessionToken(token)
	assert.Error(t, err)
}

func TestValidateSessionTokenGarbage(t *testing.T) {
	svc := NewSessionService("unit-test-secret")

	_, err := svc.ValidateSessionToken("not.a.jwt")
	assert.Error(t, err)
}

func TestSessionIDsAreUnique(t *testing.T) {
	svc := NewSessionService("unit-test-secret")

	a, _, err := svc.GenerateSessionToken("u-1", "student")
	require.NoError(t, err)
	b, _, err := svc.GenerateSessionToken("u-1", "student")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}
