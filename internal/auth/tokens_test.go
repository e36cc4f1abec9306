package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_IssueAndVerify(t *testing.T) {
	service := NewTokenService("test-secret", time.Hour)

	token, err := service.Issue(42, RoleEmployer)
	require.NoError(t, err)

	claims, err := service.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.SubjectID)
	assert.Equal(t, RoleEmployer, claims.Role)
}

func Test_Verify_RejectsWrongSecret(t *testing.T) {
	token, err := NewTokenService("secret-a", time.Hour).Issue(1, RoleMaster)
	require.NoError(t, err)

	_, err = NewTokenService("secret-b", time.Hour).Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func Test_Verify_RejectsExpired(t *testing.T) {
	service := NewTokenService("test-secret", -time.Minute)

	token, err := service.Issue(1, RoleEmployer)
	require.NoError(t, err)

	_, err = service.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func Test_Verify_RejectsGarbage(t *testing.T) {
	service := NewTokenService("test-secret", time.Hour)

	_, err := service.Verify("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func Test_PasswordHashing(t *testing.T) {
	hash, err := HashPassword("hunter22")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter22", hash)

	assert.True(t, CheckPassword(hash, "hunter22"))
	assert.False(t, CheckPassword(hash, "hunter23"))
}
