package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Gestion-api/pkg/jwt"
)

func TestGenerateAndParse(t *testing.T) {
	token, exp, err := jwt.Generate("secreto", 7, 3, "admin", "test", 5)
	require.NoError(t, err)
	assert.False(t, exp.IsZero())

	userID, tenantID, role, err := jwt.Parse("secreto", token)
	require.NoError(t, err)
	assert.Equal(t, int64(7), userID)
	assert.Equal(t, int64(3), tenantID)
	assert.Equal(t, "admin", role)
}

func TestParse_WrongSecret(t *testing.T) {
	token, _, err := jwt.Generate("secreto", 7, 3, "admin", "test", 5)
	require.NoError(t, err)

	_, _, _, err = jwt.Parse("otro", token)
	assert.Error(t, err)
}

func TestParse_Expired(t *testing.T) {
	token, _, err := jwt.Generate("secreto", 7, 3, "admin", "test", -1)
	require.NoError(t, err)

	_, _, _, err = jwt.Parse("secreto", token)
	assert.Error(t, err)
}

func TestGenerate_EmptySecret(t *testing.T) {
	_, _, err := jwt.Generate("", 7, 3, "admin", "test", 5)
	assert.Error(t, err)
}
