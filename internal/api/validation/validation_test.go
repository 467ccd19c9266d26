package validation

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSchema = Schema{
	Name: "Test",
	Fields: []Field{
		{
			Name:            "name",
			Aliases:         []string{"nombre"},
			Required:        true,
			RequiredMessage: "name is required",
			TypeMessage:     "name must be a string",
			Rules:           []Rule{{Tag: "max=5", Message: "name too long"}},
		},
		{
			Name:        "note",
			TypeMessage: "note must be a string",
			Rules:       []Rule{{Tag: "max=3", Message: "note too long"}},
		},
		{
			Name:            "email",
			Required:        true,
			RequiredMessage: "email is required",
			TypeMessage:     "email must be a string",
			Lowercase:       true,
			Rules: []Rule{
				{Tag: "email", Message: "email is invalid"},
				{Tag: "max=12", Message: "email too long"},
			},
		},
		{
			Name:            "ref",
			Required:        true,
			RequiredMessage: "ref is required",
			TypeMessage:     "ref must be a string",
			Rules:           []Rule{{Tag: "objectid", Message: "ref is not an id"}},
		},
	},
}

func messages(t *testing.T, err error) []string {
	t.Helper()
	var ve *Error
	require.True(t, errors.As(err, &ve), "expected *validation.Error, got %v", err)
	return ve.Messages
}

func TestValidate_NormalizesValues(t *testing.T) {
	v := New()

	values, err := v.Validate(testSchema, map[string]any{
		"name":  "  Ana ",
		"email": " A@X.COM ",
		"ref":   "65A1B2C3D4E5F6A7B8C9D0E1",
	})
	require.NoError(t, err)

	assert.Equal(t, "Ana", values.Get("name"))
	assert.Equal(t, "a@x.com", values.Get("email"))
	assert.Equal(t, "65A1B2C3D4E5F6A7B8C9D0E1", values.Get("ref"))
	_, hasNote := values["note"]
	assert.False(t, hasNote, "absent optional field must stay absent")
}

func TestValidate_CollectsEveryViolationInOrder(t *testing.T) {
	v := New()

	_, err := v.Validate(testSchema, map[string]any{
		"name":  "toolongname",
		"note":  42,
		"email": "not-an-email-at-all",
		"ref":   "xyz",
	})

	assert.Equal(t, []string{
		"name too long",
		"note must be a string",
		"email is invalid",
		"email too long",
		"ref is not an id",
	}, messages(t, err))
}

func TestValidate_MissingAndBlankRequired(t *testing.T) {
	v := New()

	_, err := v.Validate(testSchema, map[string]any{
		"name":  "   ",
		"email": nil,
	})

	assert.Equal(t, []string{"name is required", "email is required", "ref is required"}, messages(t, err))
}

func TestValidate_AliasesAndPrecedence(t *testing.T) {
	v := New()
	base := map[string]any{"email": "a@x.com", "ref": strings.Repeat("a", 24)}

	withAlias := map[string]any{"nombre": "Ana"}
	for k, val := range base {
		withAlias[k] = val
	}
	values, err := v.Validate(testSchema, withAlias)
	require.NoError(t, err)
	assert.Equal(t, "Ana", values.Get("name"))

	withAlias["name"] = "Bea"
	values, err = v.Validate(testSchema, withAlias)
	require.NoError(t, err)
	assert.Equal(t, "Bea", values.Get("name"), "canonical key wins over alias")
}

func TestValidate_MaxCountsCharactersNotBytes(t *testing.T) {
	v := New()

	_, err := v.Validate(testSchema, map[string]any{
		"name":  "ñáéíó",
		"email": "a@x.com",
		"ref":   strings.Repeat("0", 24),
	})
	assert.NoError(t, err)
}

func TestDecodeObject(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    map[string]any
		wantErr bool
	}{
		{name: "object", body: `{"name":"Admin"}`, want: map[string]any{"name": "Admin"}},
		{name: "empty body", body: "  ", want: map[string]any{}},
		{name: "array", body: `[1,2]`, wantErr: true},
		{name: "null", body: `null`, wantErr: true},
		{name: "malformed", body: `{"name":`, wantErr: true},
		{name: "trailing data", body: `{} {}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeObject(strings.NewReader(tt.body))
			if tt.wantErr {
				assert.Equal(t, []string{"request body must be a JSON object"}, messages(t, err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
