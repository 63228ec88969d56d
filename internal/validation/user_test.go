package validation

import (
	"strings"
	"testing"

	"doorlist/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	t.Parallel()

	valid := []string{"a@b.co", "joao.silva@example.com.br", "user+tag@domain.io"}
	for _, e := range valid {
		assert.NoError(t, ValidateEmail(e), "expected %q to be valid", e)
	}

	invalid := []string{"", "no-at-sign", "@missing.local", "user@", "user@nodot", "user @space.com"}
	for _, e := range invalid {
		assert.Error(t, ValidateEmail(e), "expected %q to be invalid", e)
	}
}

func TestValidatePassword(t *testing.T) {
	t.Parallel()

	assert.Error(t, ValidatePassword("12345"), "5 chars is too short")
	assert.NoError(t, ValidatePassword("123456"), "6 chars is the minimum")
	assert.Error(t, ValidatePassword(strings.Repeat("x", 129)))
}

func TestValidateDisplayName(t *testing.T) {
	t.Parallel()

	assert.Error(t, ValidateDisplayName(""))
	assert.Error(t, ValidateDisplayName("a"))
	assert.Error(t, ValidateDisplayName(" a "))
	assert.NoError(t, ValidateDisplayName("Jo"))
	assert.NoError(t, ValidateDisplayName("João da Silva"))
	assert.Error(t, ValidateDisplayName(strings.Repeat("x", 101)))
}

func TestValidateRole(t *testing.T) {
	t.Parallel()

	for _, r := range []models.Role{models.RoleAdmin, models.RoleUser, models.RolePortaria} {
		assert.NoError(t, ValidateRole(r))
	}
	for _, r := range []models.Role{"", "root", "Admin", "staff"} {
		assert.Error(t, ValidateRole(r), "role %q must be rejected", r)
	}
}
