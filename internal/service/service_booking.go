// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-car-rental/internal/logger"
	"github.com/MKhiriev/go-car-rental/internal/store"
	"github.com/MKhiriev/go-car-rental/models"
)

// bookingService implements BookingService on top of a BookingRepository.
// Reads are scoped to the owner. Mutations look the booking up without
// scope first so that a foreign booking is told apart from a missing one.
type bookingService struct {
	bookingRepository store.BookingRepository
	logger            *logger.Logger
}

func NewBookingService(bookingRepository store.BookingRepository, logger *logger.Logger) BookingService {
	return &bookingService{
		bookingRepository: bookingRepository,
		logger:            logger,
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, booking models.Booking) (models.Booking, error) {
	created, err := s.bookingRepository.CreateBooking(ctx, booking)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*bookingService.CreateBooking").Msg("booking creation failed")
		return models.Booking{}, fmt.Errorf("booking creation failed: %w", err)
	}

	return created, nil
}

func (s *bookingService) GetUserBookings(ctx context.Context, userID int64) ([]models.Booking, error) {
	bookings, err := s.bookingRepository.ListUserBookings(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*bookingService.GetUserBookings").Msg("listing bookings failed")
		return nil, fmt.Errorf("listing bookings failed: %w", err)
	}

	return bookings, nil
}

// GetUserBooking returns the booking only if userID owns it. A foreign
// booking is reported as ErrBookingNotFound.
func (s *bookingService) GetUserBooking(ctx context.Context, bookingID, userID int64) (models.Booking, error) {
	booking, err := s.bookingRepository.FindUserBookingByID(ctx, bookingID, userID)
	if errors.Is(err, store.ErrBookingNotFound) {
		return models.Booking{}, ErrBookingNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*bookingService.GetUserBooking").Msg("booking lookup failed")
		return models.Booking{}, fmt.Errorf("booking lookup failed: %w", err)
	}

	return booking, nil
}

func (s *bookingService) GetSummary(ctx context.Context, userID int64, username string) (models.BookingSummary, error) {
	bookings, err := s.GetUserBookings(ctx, userID)
	if err != nil {
		return models.BookingSummary{}, err
	}

	return models.NewBookingSummary(userID, username, bookings), nil
}

// UpdateBooking applies update to a booking owned by update.UserID.
//
// Returns ErrBookingNotFound when no booking has update.ID and
// ErrBookingDoesNotBelongToUser when it belongs to someone else.
func (s *bookingService) UpdateBooking(ctx context.Context, update models.BookingUpdate) (models.Booking, error) {
	if err := s.checkOwnership(ctx, update.ID, update.UserID); err != nil {
		return models.Booking{}, err
	}

	updated, err := s.bookingRepository.UpdateBooking(ctx, update)
	if errors.Is(err, store.ErrBookingNotFound) {
		// deleted between lookup and update
		return models.Booking{}, ErrBookingNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*bookingService.UpdateBooking").Msg("booking update failed")
		return models.Booking{}, fmt.Errorf("booking update failed: %w", err)
	}

	return updated, nil
}

// DeleteBooking removes a booking owned by userID with the same not-found and
// ownership rules as UpdateBooking.
func (s *bookingService) DeleteBooking(ctx context.Context, bookingID, userID int64) error {
	if err := s.checkOwnership(ctx, bookingID, userID); err != nil {
		return err
	}

	err := s.bookingRepository.DeleteBooking(ctx, bookingID, userID)
	if errors.Is(err, store.ErrBookingNotFound) {
		return ErrBookingNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*bookingService.DeleteBooking").Msg("booking deletion failed")
		return fmt.Errorf("booking deletion failed: %w", err)
	}

	return nil
}

func (s *bookingService) checkOwnership(ctx context.Context, bookingID, userID int64) error {
	log := logger.FromContext(ctx)

	booking, err := s.bookingRepository.FindBookingByID(ctx, bookingID)
	if errors.Is(err, store.ErrBookingNotFound) {
		return ErrBookingNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*bookingService.checkOwnership").Msg("booking lookup failed")
		return fmt.Errorf("booking lookup failed: %w", err)
	}

	if booking.UserID != userID {
		log.Warn().
			Int64("booking_id", bookingID).
			Int64("user_id", userID).
			Msg("access to foreign booking denied")
		return ErrBookingDoesNotBelongToUser
	}

	return nil
}
