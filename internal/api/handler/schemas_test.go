package handler

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/99minutos/user-roles-api/internal/api/validation"
)

func violations(t *testing.T, err error) []string {
	t.Helper()
	var ve *validation.Error
	require.True(t, errors.As(err, &ve), "expected validation error, got %v", err)
	return ve.Messages
}

func TestCreateRoleSchema(t *testing.T) {
	v := validation.New()

	values, err := v.Validate(CreateRoleSchema, map[string]any{"nombre": " Admin ", "descripcion": "Full access"})
	require.NoError(t, err)
	assert.Equal(t, "Admin", values.Get(fieldName))
	assert.Equal(t, "Full access", values.Get(fieldDescription))

	_, err = v.Validate(CreateRoleSchema, map[string]any{"name": ""})
	assert.Equal(t, []string{"role name is required"}, violations(t, err))

	_, err = v.Validate(CreateRoleSchema, map[string]any{
		"name":        strings.Repeat("n", 51),
		"description": strings.Repeat("d", 201),
	})
	assert.Equal(t, []string{
		"role name must not exceed 50 characters",
		"description must not exceed 200 characters",
	}, violations(t, err))
}

func TestCreateUserSchema(t *testing.T) {
	v := validation.New()

	values, err := v.Validate(CreateUserSchema, map[string]any{
		"nombres":        "Ana",
		"apellidos":      "Diaz",
		"identificacion": "123",
		"email":          "  Ana@X.COM ",
		"rolId":          "65a1b2c3d4e5f6a7b8c9d0e1",
	})
	require.NoError(t, err)
	assert.Equal(t, validation.Values{
		fieldFirstNames:     "Ana",
		fieldLastNames:      "Diaz",
		fieldIdentification: "123",
		fieldEmail:          "ana@x.com",
		fieldRoleID:         "65a1b2c3d4e5f6a7b8c9d0e1",
	}, values)

	_, err = v.Validate(CreateUserSchema, map[string]any{
		"firstNames":     strings.Repeat("a", 101),
		"lastNames":      123,
		"identification": strings.Repeat("9", 21),
		"email":          "nope",
		"roleId":         "not-an-id",
	})
	assert.Equal(t, []string{
		"first names must not exceed 100 characters",
		"last names must be text",
		"identification must not exceed 20 characters",
		"email must be a valid email address",
		"role id must be a valid 24-character hexadecimal id",
	}, violations(t, err))

	_, err = v.Validate(CreateUserSchema, map[string]any{})
	assert.Len(t, violations(t, err), 5)
}
