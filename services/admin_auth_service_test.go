package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	svc := GetAdminAuthService()

	hash, err := svc.HashPassword("correct horse battery")
	require.NoError(t, err)
	require.NotEqual(t, "correct horse battery", hash)

	assert.True(t, svc.VerifyPassword(hash, "correct horse battery"))
	assert.False(t, svc.VerifyPassword(hash, "wrong password"))
	assert.False(t, svc.VerifyPassword("not-a-hash", "anything"))
}

func TestValidatePassword(t *testing.T) {
	svc := GetAdminAuthService()

	assert.NoError(t, svc.ValidatePassword("12345678"))
	assert.Error(t, svc.ValidatePassword("1234567"))
	assert.Error(t, svc.ValidatePassword(""))
}
