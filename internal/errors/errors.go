// Package errors provides the error kinds returned by the catalog and directory services.
//
// Each typed error unwraps to one of the sentinels below, so callers check the kind with
// errors.Is and read the details with errors.As.
package errors

import (
	"errors"
	"fmt"
)

var (
	ErrValidation   = errors.New("validation failed")
	ErrDuplicateKey = errors.New("duplicate key")
	ErrNotFound     = errors.New("record not found")
)

// ValidationError reports a field that failed its constraint.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// DuplicateKeyError reports a create with an identifier already present in the collection.
type DuplicateKeyError struct {
	Entity string
	ID     int
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("%s with ID %d already exists", e.Entity, e.ID)
}

func (e *DuplicateKeyError) Unwrap() error { return ErrDuplicateKey }

// NotFoundError reports an identifier with no matching record.
type NotFoundError struct {
	Entity string
	ID     int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with ID %d not found", e.Entity, e.ID)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }
