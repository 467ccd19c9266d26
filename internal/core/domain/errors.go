package domain

import (
	"errors"
	"fmt"
)

var (
	ErrConflict     = errors.New("resource already exists")
	ErrNoRoles      = errors.New("cannot create users until at least one role exists")
	ErrRoleNotFound = errors.New("role id does not exist")
	ErrUserNotFound = errors.New("user not found")
)

// DuplicateError reports a unique field already taken by another record.
// It matches ErrConflict under errors.Is.
type DuplicateError struct {
	Entity string
	Field  string
	Value  string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("a %s with %s '%s' already exists", e.Entity, e.Field, e.Value)
}

func (e *DuplicateError) Unwrap() error {
	return ErrConflict
}

// Duplicate builds a DuplicateError.
func Duplicate(entity, field, value string) error {
	return &DuplicateError{Entity: entity, Field: field, Value: value}
}
