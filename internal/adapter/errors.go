// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

// Status class errors, one per HTTP status the server answers with.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
)

// Outcome errors, recognised by the message of the error envelope. They
// are always joined with the status class error.
var (
	ErrInvalidInputs      = errors.New("invalid inputs")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrUserDoesNotExist   = errors.New("user does not exist")
	ErrIncorrectPassword  = errors.New("incorrect password")
	ErrTokenRejected      = errors.New("token rejected")
	ErrBookingNotFound    = errors.New("booking not found")
	ErrBookingNotOwned    = errors.New("booking does not belong to user")
	ErrServiceUnavailable = errors.New("service unavailable")
)

// Response decoding errors.
var (
	ErrUnexpectedEnvelope = errors.New("unexpected response envelope")
	ErrEmptyToken         = errors.New("server returned an empty token")
)
