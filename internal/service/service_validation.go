// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-car-rental/internal/validators"
	"github.com/MKhiriev/go-car-rental/models"
)

// AuthValidationService rejects empty credentials before they reach the
// wrapped AuthService.
type AuthValidationService struct {
	inner     AuthService
	validator validators.Validator
}

func NewAuthValidationService() AuthServiceWrapper {
	return &AuthValidationService{
		validator: validators.NewBookingValidator(),
	}
}

func (v *AuthValidationService) RegisterUser(ctx context.Context, credentials models.Credentials) (models.User, error) {
	if err := v.validator.Validate(ctx, credentials); err != nil {
		return models.User{}, fmt.Errorf("error during credentials validation before registration: %w", err)
	}

	return v.inner.RegisterUser(ctx, credentials)
}

func (v *AuthValidationService) Login(ctx context.Context, credentials models.Credentials) (models.User, error) {
	if err := v.validator.Validate(ctx, credentials); err != nil {
		return models.User{}, fmt.Errorf("error during credentials validation before login: %w", err)
	}

	return v.inner.Login(ctx, credentials)
}

func (v *AuthValidationService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return v.inner.CreateToken(ctx, user)
}

func (v *AuthValidationService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return v.inner.ParseToken(ctx, tokenString)
}

func (v *AuthValidationService) Wrap(wrapped AuthService) AuthService {
	v.inner = wrapped
	return v
}

// BookingValidationService checks bookings and updates against the domain
// rules before they reach the wrapped BookingService. Booking IDs are not
// validated: a non-positive ID simply matches no booking.
type BookingValidationService struct {
	inner     BookingService
	validator validators.Validator
}

func NewBookingValidationService() BookingServiceWrapper {
	return &BookingValidationService{
		validator: validators.NewBookingValidator(),
	}
}

func (v *BookingValidationService) CreateBooking(ctx context.Context, booking models.Booking) (models.Booking, error) {
	if err := v.validator.Validate(ctx, booking); err != nil {
		return models.Booking{}, fmt.Errorf("error during booking validation before saving: %w", err)
	}

	return v.inner.CreateBooking(ctx, booking)
}

func (v *BookingValidationService) GetUserBookings(ctx context.Context, userID int64) ([]models.Booking, error) {
	if err := v.validator.Validate(ctx, models.Booking{UserID: userID}, validators.FieldUserID); err != nil {
		return nil, fmt.Errorf("error during user ID validation: %w", err)
	}

	return v.inner.GetUserBookings(ctx, userID)
}

func (v *BookingValidationService) GetUserBooking(ctx context.Context, bookingID, userID int64) (models.Booking, error) {
	if err := v.validator.Validate(ctx, models.Booking{UserID: userID}, validators.FieldUserID); err != nil {
		return models.Booking{}, fmt.Errorf("error during user ID validation: %w", err)
	}

	return v.inner.GetUserBooking(ctx, bookingID, userID)
}

func (v *BookingValidationService) GetSummary(ctx context.Context, userID int64, username string) (models.BookingSummary, error) {
	if err := v.validator.Validate(ctx, models.Booking{UserID: userID}, validators.FieldUserID); err != nil {
		return models.BookingSummary{}, fmt.Errorf("error during user ID validation: %w", err)
	}

	return v.inner.GetSummary(ctx, userID, username)
}

func (v *BookingValidationService) UpdateBooking(ctx context.Context, update models.BookingUpdate) (models.Booking, error) {
	err := v.validator.Validate(ctx, update,
		validators.FieldUserID,
		validators.FieldUpdateFields,
		validators.FieldCarName,
		validators.FieldDays,
		validators.FieldRentPerDay,
		validators.FieldStatus,
	)
	if err != nil {
		return models.Booking{}, fmt.Errorf("error during booking update validation: %w", err)
	}

	return v.inner.UpdateBooking(ctx, update)
}

func (v *BookingValidationService) DeleteBooking(ctx context.Context, bookingID, userID int64) error {
	if err := v.validator.Validate(ctx, models.Booking{UserID: userID}, validators.FieldUserID); err != nil {
		return fmt.Errorf("error during user ID validation: %w", err)
	}

	return v.inner.DeleteBooking(ctx, bookingID, userID)
}

func (v *BookingValidationService) Wrap(wrapped BookingService) BookingService {
	v.inner = wrapped
	return v
}
