// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the business logic of the car rental API: account
// registration and login, bearer token issuing, and owner-scoped booking
// management. Services sit between the HTTP handlers and the store.
package service

import (
	"context"

	"github.com/MKhiriev/go-car-rental/models"
)

type AuthService interface {
	RegisterUser(ctx context.Context, credentials models.Credentials) (models.User, error)
	Login(ctx context.Context, credentials models.Credentials) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type BookingService interface {
	CreateBooking(ctx context.Context, booking models.Booking) (models.Booking, error)

	GetUserBookings(ctx context.Context, userID int64) ([]models.Booking, error)
	GetUserBooking(ctx context.Context, bookingID, userID int64) (models.Booking, error)
	GetSummary(ctx context.Context, userID int64, username string) (models.BookingSummary, error)

	UpdateBooking(ctx context.Context, update models.BookingUpdate) (models.Booking, error)
	DeleteBooking(ctx context.Context, bookingID, userID int64) error
}

type AppInfoService interface {
	GetAppBuildInfo(ctx context.Context) models.AppBuildInfo
	Ping(ctx context.Context) error
}

// PasswordHasher hashes and verifies user passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// Pinger reports whether the backing database is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// AuthServiceWrapper defines middleware composition for AuthService.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService
}

// BookingServiceWrapper defines middleware composition for BookingService.
// Implementations wrap an existing BookingService to add behavior such as
// logging or validating.
type BookingServiceWrapper interface {
	Wrap(BookingService) BookingService // returns a decorated BookingService applying additional behavior
}
