package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateDanValidateToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "rahasia-uji")

	token, err := GenerateJWTToken("7", "Administrasi", 2, []int{1, 4}, "kasir01", time.Now().Add(time.Hour))
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateJWTToken(token)
	require.NoError(t, err)
	assert.Equal(t, "7", claims.IDKaryawan)
	assert.Equal(t, "Administrasi", claims.Role)
	assert.Equal(t, 2, claims.IDRole)
	assert.Equal(t, []int{1, 4}, claims.Privileges)
	assert.Equal(t, "kasir01", claims.Username)
}

func TestValidateTokenKadaluarsa(t *testing.T) {
	t.Setenv("JWT_SECRET", "rahasia-uji")

	token, err := GenerateJWTToken("7", "Administrasi", 2, nil, "kasir01", time.Now().Add(-time.Minute))
	require.NoError(t, err)

	_, err = ValidateJWTToken(token)
	assert.Error(t, err)
}

func TestValidateTokenSecretSalah(t *testing.T) {
	t.Setenv("JWT_SECRET", "rahasia-uji")
	token, err := GenerateJWTToken("7", "Administrasi", 2, nil, "kasir01", time.Now().Add(time.Hour))
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "rahasia-lain")
	_, err = ValidateJWTToken(token)
	assert.Error(t, err)
}
