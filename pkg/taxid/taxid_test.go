package taxid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Gestion-api/pkg/taxid"
)

func TestValidate(t *testing.T) {
	valid := []string{"20-12345678-6", "20123456786", "20.12345678.6", "30-71234567-1", "20-00000006-0"}
	for _, v := range valid {
		assert.NoError(t, taxid.Validate(v), v)
	}

	invalid := []string{"20-12345678-5", "2012345678", "", "20-123456789-6"}
	for _, v := range invalid {
		assert.Error(t, taxid.Validate(v), v)
	}
}

func TestCheckDigit(t *testing.T) {
	d, err := taxid.CheckDigit("2012345678")
	require.NoError(t, err)
	assert.Equal(t, byte('6'), d)

	// resto 1: no existe dígito
	_, err = taxid.CheckDigit("2000000001")
	assert.Error(t, err)
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "20-12345678-6", taxid.Normalize("20123456786"))
	assert.Equal(t, "abc", taxid.Normalize("abc"))
}
