// Package validation checks untyped request bodies against declarative
// schemas. A schema is an ordered list of fields, each carrying its own
// (rule, message) pairs; every field is evaluated independently and all
// violations are collected.
//
// String values are trimmed before any rule runs, and optionally
// lower-cased, so the values handed to services are already normalized.
// Rule tags are go-playground/validator tags plus the custom "objectid" tag
// (24 hexadecimal characters, the document store id format).
package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Rule is a single validator tag and the message reported when it fails.
type Rule struct {
	Tag     string
	Message string
}

// Field describes one body field.
type Field struct {
	// Name is the canonical JSON key and the key used in Values.
	Name string
	// Aliases are alternative keys accepted when Name is absent.
	Aliases []string

	Required        bool
	RequiredMessage string
	TypeMessage     string
	Lowercase       bool
	Rules           []Rule
}

// Schema is the ordered set of field rules applied to one request type.
type Schema struct {
	Name   string
	Fields []Field
}

// Values holds normalized field values keyed by canonical field name.
// Optional fields that were not supplied are absent.
type Values map[string]string

// Get returns the value for field, or "" when absent.
func (v Values) Get(field string) string {
	return v[field]
}

// Error carries every violation found in a body, in schema order.
type Error struct {
	Messages []string
}

func (e *Error) Error() string {
	return "invalid request body: " + strings.Join(e.Messages, "; ")
}

var objectIDPattern = regexp.MustCompile(`^[0-9a-fA-F]{24}$`)

// Validator evaluates schemas. It is safe for concurrent use.
type Validator struct {
	v *validator.Validate
}

// New returns a Validator with the custom tags registered.
func New() *Validator {
	v := validator.New()
	if err := v.RegisterValidation("objectid", func(fl validator.FieldLevel) bool {
		return objectIDPattern.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return &Validator{v: v}
}

// Validate checks input against s. On success it returns the normalized
// values; otherwise it returns an *Error listing every violation.
func (val *Validator) Validate(s Schema, input map[string]any) (Values, error) {
	values := make(Values, len(s.Fields))
	var msgs []string

	for _, f := range s.Fields {
		raw, ok := lookup(input, f)
		if !ok {
			if f.Required {
				msgs = append(msgs, f.RequiredMessage)
			}
			continue
		}

		str, isString := raw.(string)
		if !isString {
			msgs = append(msgs, f.TypeMessage)
			continue
		}

		str = strings.TrimSpace(str)
		if f.Lowercase {
			str = strings.ToLower(str)
		}
		if str == "" && f.Required {
			msgs = append(msgs, f.RequiredMessage)
			continue
		}

		for _, r := range f.Rules {
			if err := val.v.Var(str, r.Tag); err != nil {
				msgs = append(msgs, r.Message)
			}
		}
		values[f.Name] = str
	}

	if len(msgs) > 0 {
		return nil, &Error{Messages: msgs}
	}
	return values, nil
}

// lookup returns the first non-null value among the field name and its aliases.
func lookup(input map[string]any, f Field) (any, bool) {
	if v, ok := input[f.Name]; ok && v != nil {
		return v, true
	}
	for _, alias := range f.Aliases {
		if v, ok := input[alias]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

var errNotObject = &Error{Messages: []string{"request body must be a JSON object"}}

// DecodeObject reads a JSON object from r. An empty body decodes to an empty
// object; anything that is not a single JSON object yields an *Error.
func DecodeObject(r io.Reader) (map[string]any, error) {
	body, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return map[string]any{}, nil
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	var obj map[string]any
	if err := dec.Decode(&obj); err != nil || obj == nil {
		return nil, errNotObject
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errNotObject
	}
	return obj, nil
}
