package services

import (
	"testing"

	"github.com/TribeTek-pvt-ltd/grazie-store-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndVerifyAdminJWT(t *testing.T) {
	require.NoError(t, InitJWTService("test-secret"))

	token, err := GenerateAdminJWT("admin-123", "admin@grazie.lk", models.RoleAdmin)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := VerifyAdminJWT(token)
	require.NoError(t, err)

	assert.Equal(t, "admin-123", claims.AdminID)
	assert.Equal(t, "admin@grazie.lk", claims.Email)
	assert.Equal(t, models.RoleAdmin, claims.Role)
	assert.Equal(t, "grazie-store", claims.Issuer)
}

func TestGenerateAdminJWTRequiresIdentity(t *testing.T) {
	require.NoError(t, InitJWTService("test-secret"))

	_, err := GenerateAdminJWT("", "admin@grazie.lk", models.RoleAdmin)
	assert.Error(t, err)

	_, err = GenerateAdminJWT("admin-123", "", models.RoleAdmin)
	assert.Error(t, err)
}

func TestVerifyAdminJWTRejectsWrongSecret(t *testing.T) {
	require.NoError(t, InitJWTService("secret-a"))
	token, err := GenerateAdminJWT("admin-123", "admin@grazie.lk", models.RoleAdmin)
	require.NoError(t, err)

	require.NoError(t, InitJWTService("secret-b"))
	_, err = VerifyAdminJWT(token)
	assert.Error(t, err)
}

func TestVerifyAdminJWTRejectsGarbage(t *testing.T) {
	require.NoError(t, InitJWTService("test-secret"))

	_, err := VerifyAdminJWT("not.a.token")
	assert.Error(t, err)

	_, err = VerifyAdminJWT("")
	assert.Error(t, err)
}

func TestInitJWTServiceRejectsEmptySecret(t *testing.T) {
	assert.Error(t, InitJWTService(""))
}
