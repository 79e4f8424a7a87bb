// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store implements persistence of users and bookings on top of
// database/sql. PostgreSQL (pgx driver) and SQLite (go-sqlite3) are
// supported; queries are built with squirrel using the placeholder format
// of the connected dialect.
package store

import (
	"context"

	"github.com/MKhiriev/go-car-rental/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts.
type UserRepository interface {
	// CreateUser inserts user and returns it with the assigned UserID.
	// Returns ErrUsernameAlreadyExists on a unique violation.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByUsername returns the user with the given username or
	// ErrUserNotFound.
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
}

// BookingRepository persists bookings. Every method that takes a userID
// scopes its statement to bookings owned by that user.
type BookingRepository interface {
	// CreateBooking inserts booking and returns it with the assigned ID.
	CreateBooking(ctx context.Context, booking models.Booking) (models.Booking, error)

	// FindBookingByID returns the booking regardless of its owner, or
	// ErrBookingNotFound.
	FindBookingByID(ctx context.Context, bookingID int64) (models.Booking, error)

	// FindUserBookingByID returns the booking if it is owned by userID, or
	// ErrBookingNotFound.
	FindUserBookingByID(ctx context.Context, bookingID, userID int64) (models.Booking, error)

	// ListUserBookings returns all bookings of userID ordered by ID.
	// The result is empty, never nil, when the user has none.
	ListUserBookings(ctx context.Context, userID int64) ([]models.Booking, error)

	// UpdateBooking applies the non-nil fields of update to the booking
	// (update.ID, update.UserID) and returns the stored result, or
	// ErrBookingNotFound.
	UpdateBooking(ctx context.Context, update models.BookingUpdate) (models.Booking, error)

	// DeleteBooking removes the booking (bookingID, userID), or returns
	// ErrBookingNotFound.
	DeleteBooking(ctx context.Context, bookingID, userID int64) error
}

// ErrorClassificator decides whether a failed database operation may be
// retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
