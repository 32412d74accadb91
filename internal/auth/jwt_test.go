package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"tenantnotes/internal/model"
)

func testUser() *model.User {
	return &model.User{
		ID:         uuid.New(),
		Email:      "admin@acme.test",
		Role:       model.RoleAdmin,
		TenantSlug: "acme",
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	SetSecret("test-secret")
	SetTokenTTL(time.Hour)

	u := testUser()
	token, err := GenerateToken(u)
	require.NoError(t, err)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	require.Equal(t, u.ID.String(), claims.ID)
	require.Equal(t, u.Email, claims.Email)
	require.Equal(t, model.RoleAdmin, claims.Role)
	require.Equal(t, "acme", claims.TenantSlug)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	SetSecret("secret-one")
	token, err := GenerateToken(testUser())
	require.NoError(t, err)

	SetSecret("secret-two")
	_, err = ValidateToken(token)
	require.Error(t, err)
}

func TestValidateTokenTampered(t *testing.T) {
	SetSecret("test-secret")
	token, err := GenerateToken(testUser())
	require.NoError(t, err)

	_, err = ValidateToken(token + "x")
	require.Error(t, err)
}

func TestValidateTokenExpired(t *testing.T) {
	SetSecret("test-secret")
	SetTokenTTL(time.Nanosecond)
	defer SetTokenTTL(time.Hour)

	token, err := GenerateToken(testUser())
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)
	_, err = ValidateToken(token)
	require.Error(t, err)
}

func TestGenerateTokenWithoutSecret(t *testing.T) {
	SetSecret("")
	defer SetSecret("test-secret")

	_, err := GenerateToken(testUser())
	require.Error(t, err)
}
