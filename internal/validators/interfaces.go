// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides input parsing and enforcement of business
// rules across the application.
//
// Core concepts:
//   - Request parsers: turn raw JSON request bodies into typed request
//     values or fail with a *ValidationError. A parser never returns a
//     partially populated value.
//   - Validator: generic interface to validate domain models before they
//     reach storage. Supports optional field-level scoping for targeted
//     validation.
//
// Every error produced by this package matches ErrValidation with
// errors.Is, together with a more specific sentinel.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
// Implementations may perform structural validation, semantic checks,
// cross-field rules.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
