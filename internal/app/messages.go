// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used by the car
// rental server handlers and by the API client.
//
// All Msg* constants are the exact strings written into the "error" or
// "message" field of the JSON envelope. Keeping them in one place lets the
// client recognise server outcomes by text.
package app

// Error messages.
const (
	// MsgInvalidInputs is returned for any request body that fails schema
	// validation. The detailed reason is only logged.
	MsgInvalidInputs = "invalid inputs"

	MsgUsernameAlreadyExists = "username already exists"
	MsgUserDoesNotExist      = "user does not exist"
	MsgIncorrectPassword     = "incorrect password"

	// Auth gate failures, all answered with 401.
	MsgAuthorizationHeaderMissing = "Authorization header missing"
	MsgTokenMissingAfterBearer    = "Token missing after Bearer"
	MsgTokenInvalid               = "Token invalid"
	MsgUnauthorized               = "Unauthorized"

	// MsgBookingIDNotFound answers a bookingId query parameter that is not
	// an integer or matches no booking of the caller.
	MsgBookingIDNotFound = "bookingId not found"

	MsgBookingNotFound            = "booking not found"
	MsgBookingDoesNotBelongToUser = "booking does not belong to user"

	// MsgSomethingWentWrong hides every unexpected server-side failure.
	MsgSomethingWentWrong = "something went wrong"

	MsgRouteNotFound      = "route not found"
	MsgMethodNotAllowed   = "method not allowed"
	MsgServiceUnavailable = "service unavailable"
)

// Success messages.
const (
	MsgUserCreated    = "User created successfully"
	MsgLoginSuccess   = "Login successful"
	MsgBookingCreated = "Booking created successfully"
	MsgBookingUpdated = "Booking updated successfully"
	MsgBookingDeleted = "Booking deleted successfully"
)
