// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors raised by the transport layer itself. Callers can match
// against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrEmptyToken is returned when the "Authorization" header carries a
	// scheme but no token after it.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")

	// ErrAuthenticationFailed covers unexpected failures of the auth
	// middleware, including recovered panics.
	ErrAuthenticationFailed = errors.New("authentication failed")

	// ErrUnauthenticated is returned when a protected handler runs without a
	// user identity in the request context.
	ErrUnauthenticated = errors.New("no authenticated user in request context")

	// ErrBookingIDNotFound is returned when the bookingId query parameter
	// is not an integer or matches no booking of the caller.
	ErrBookingIDNotFound = errors.New("bookingId query parameter matches no booking")

	// ErrInvalidBookingIDPath is returned when the {bookingId} path segment
	// is not an integer.
	ErrInvalidBookingIDPath = errors.New("bookingId path segment is not an integer")

	ErrRouteNotFound    = errors.New("route not found")
	ErrMethodNotAllowed = errors.New("method not allowed")

	// ErrPanicRecovered is logged when a handler panics.
	ErrPanicRecovered = errors.New("panic recovered")
)
