// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the client side of the car rental HTTP API.
//
// [RentalAPI] hides the transport from the command-line client. The HTTP
// implementation ([NewHTTPRentalAdapter]) unwraps the response envelope and
// maps failures to the sentinel errors of errors.go, so callers can match
// them with [errors.Is] (e.g. [ErrUsernameTaken] for a 409 signup).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-car-rental/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// RentalAPI defines communication with the car rental server.
type RentalAPI interface {
	// SetToken stores the bearer token attached to authenticated requests.
	SetToken(token string)

	// Token returns the stored bearer token, or an empty string.
	Token() string

	// Signup registers a user and returns the new user ID.
	Signup(ctx context.Context, credentials models.Credentials) (int64, error)

	// Login authenticates and stores the issued token via SetToken.
	Login(ctx context.Context, credentials models.Credentials) (string, error)

	CreateBooking(ctx context.Context, req models.CreateBookingRequest) (models.CreateBookingResponse, error)
	ListBookings(ctx context.Context) ([]models.BookingView, error)
	GetBooking(ctx context.Context, bookingID int64) (models.BookingView, error)
	GetSummary(ctx context.Context) (models.BookingSummary, error)

	// UpdateBookingStatus sends a status-only edit.
	UpdateBookingStatus(ctx context.Context, bookingID int64, status models.BookingStatus) (models.BookingView, error)

	// EditBooking sends a field edit; nil fields are left unchanged.
	EditBooking(ctx context.Context, bookingID int64, req models.EditBookingRequest) (models.BookingView, error)

	DeleteBooking(ctx context.Context, bookingID int64) error

	// Ping checks server and database health.
	Ping(ctx context.Context) error

	// Version returns the server build information.
	Version(ctx context.Context) (models.AppBuildInfo, error)
}
