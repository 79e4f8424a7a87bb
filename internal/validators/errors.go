// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"errors"
	"fmt"
)

// ErrValidation is matched by every error produced by this package.
var ErrValidation = errors.New("invalid inputs")

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrNotAnObject      = errors.New("body must be a JSON object")
	ErrUnexpectedKey    = errors.New("unexpected key")
	ErrMissingField     = errors.New("field is required")
	ErrNullValue        = errors.New("null is not allowed")
	ErrWrongType        = errors.New("wrong JSON type")
	ErrEmptyString      = errors.New("string must not be empty")
	ErrOutOfRange       = errors.New("value out of range")
	ErrNotInteger       = errors.New("value must be an integer")
	ErrInvalidStatus    = errors.New("invalid booking status")
	ErrNoFieldsToUpdate = errors.New("at least one field must be provided for update")
	ErrUnrecognizedEdit = errors.New("body matches neither status nor fields edit")

	ErrInvalidUserID    = errors.New("invalid user ID")
	ErrInvalidBookingID = errors.New("invalid booking ID")
)

// ValidationError describes why a value was rejected. It matches both
// ErrValidation and the specific cause with errors.Is.
type ValidationError struct {
	// Field is the JSON key or model field at fault; empty for whole-body
	// failures.
	Field string
	Err   error
}

func newValidationError(field string, err error) *ValidationError {
	return &ValidationError{Field: field, Err: err}
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %s", ErrValidation, e.Err)
	}
	return fmt.Sprintf("%s: %s: %s", ErrValidation, e.Field, e.Err)
}

func (e *ValidationError) Unwrap() []error {
	return []error{ErrValidation, e.Err}
}
