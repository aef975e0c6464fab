package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestGenerateAndValidateJWT(t *testing.T) {
	details, err := GenerateJWT("user-1", "Aibek Toktogulov", "aibek@example.com", "landlord", testSecret)
	require.NoError(t, err)
	assert.Equal(t, "Bearer", details.TokenType)
	assert.Equal(t, "86400", details.ExpiresIn)
	require.NotEmpty(t, details.Token)

	claims, err := ValidateJWT(details.Token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "Aibek Toktogulov", claims.Name)
	assert.Equal(t, "aibek@example.com", claims.Email)
	assert.Equal(t, "landlord", claims.Role)
}

func TestGenerateJWTValidation(t *testing.T) {
	_, err := GenerateJWT("user-1", "Name", "a@b.c", "tenant", "")
	assert.Error(t, err)

	_, err = GenerateJWT("", "Name", "a@b.c", "tenant", testSecret)
	assert.Error(t, err)
}

func TestValidateJWTRejectsWrongSecret(t *testing.T) {
	details, err := GenerateJWT("user-1", "Name", "a@b.c", "tenant", testSecret)
	require.NoError(t, err)

	_, err = ValidateJWT(details.Token, "other-secret")
	assert.Error(t, err)
}

func TestValidateJWTRejectsGarbage(t *testing.T) {
	_, err := ValidateJWT("not.a.token", testSecret)
	assert.Error(t, err)

	_, err = ValidateJWT("", testSecret)
	assert.Error(t, err)
}
