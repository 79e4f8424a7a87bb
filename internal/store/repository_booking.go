// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-car-rental/internal/logger"
	"github.com/MKhiriev/go-car-rental/models"
)

// bookingRepository is the SQL implementation of [BookingRepository]
// working against the "bookings" table.
type bookingRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewBookingRepository constructs a [BookingRepository] backed by the
// provided database connection and logger.
func NewBookingRepository(db *DB, logger *logger.Logger) BookingRepository {
	logger.Debug().Msg("creating booking repository")
	return &bookingRepository{
		db:     db,
		logger: logger,
	}
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanBooking(row rowScanner) (models.Booking, error) {
	var (
		b      models.Booking
		status string
	)
	if err := row.Scan(&b.ID, &b.UserID, &b.CarName, &b.Days, &b.RentPerDay, &status); err != nil {
		return models.Booking{}, err
	}
	b.Status = models.BookingStatus(status)

	return b, nil
}

func (r *bookingRepository) CreateBooking(ctx context.Context, booking models.Booking) (models.Booking, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateBookingQuery(r.db.builder, booking)
	if err != nil {
		log.Err(err).Str("func", "*bookingRepository.CreateBooking").Msg("error building query")
		return models.Booking{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := r.queryOne(ctx, "*bookingRepository.CreateBooking", query, args)
	if errors.Is(err, ErrBookingNotFound) {
		// INSERT ... RETURNING always yields a row
		return models.Booking{}, fmt.Errorf("%w: no row returned", ErrExecutingQuery)
	}
	if err != nil {
		return models.Booking{}, err
	}

	log.Debug().Int64("booking_id", created.ID).Msg("booking created")
	return created, nil
}

func (r *bookingRepository) FindBookingByID(ctx context.Context, bookingID int64) (models.Booking, error) {
	return r.findOne(ctx, "*bookingRepository.FindBookingByID", sq.Eq{"id": bookingID})
}

func (r *bookingRepository) FindUserBookingByID(ctx context.Context, bookingID, userID int64) (models.Booking, error) {
	return r.findOne(ctx, "*bookingRepository.FindUserBookingByID", sq.Eq{"id": bookingID, "user_id": userID})
}

func (r *bookingRepository) ListUserBookings(ctx context.Context, userID int64) ([]models.Booking, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectBookingsQuery(r.db.builder, sq.Eq{"user_id": userID})
	if err != nil {
		log.Err(err).Str("func", "*bookingRepository.ListUserBookings").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*bookingRepository.ListUserBookings").
			Stringer("classification", r.db.classify(err)).
			Msg("error selecting bookings")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	bookings := make([]models.Booking, 0)
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			log.Err(err).Str("func", "*bookingRepository.ListUserBookings").Msg("error scanning booking")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*bookingRepository.ListUserBookings").Msg("error iterating bookings")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return bookings, nil
}

func (r *bookingRepository) UpdateBooking(ctx context.Context, update models.BookingUpdate) (models.Booking, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateBookingQuery(r.db.builder, update)
	if err != nil {
		log.Err(err).Str("func", "*bookingRepository.UpdateBooking").Msg("error building query")
		return models.Booking{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryOne(ctx, "*bookingRepository.UpdateBooking", query, args)
}

func (r *bookingRepository) DeleteBooking(ctx context.Context, bookingID, userID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteBookingQuery(r.db.builder, bookingID, userID)
	if err != nil {
		log.Err(err).Str("func", "*bookingRepository.DeleteBooking").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*bookingRepository.DeleteBooking").
			Stringer("classification", r.db.classify(err)).
			Msg("error deleting booking")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

func (r *bookingRepository) findOne(ctx context.Context, fn string, where sq.Eq) (models.Booking, error) {
	query, args, err := buildSelectBookingsQuery(r.db.builder, where)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", fn).Msg("error building query")
		return models.Booking{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryOne(ctx, fn, query, args)
}

// queryOne runs a statement expected to yield at most one booking row.
// No row maps to ErrBookingNotFound.
func (r *bookingRepository) queryOne(ctx context.Context, fn, query string, args []any) (models.Booking, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", fn).
			Stringer("classification", r.db.classify(err)).
			Msg("error executing query")
		return models.Booking{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	booking, err := scanBooking(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Booking{}, ErrBookingNotFound
	}
	if err != nil {
		log.Err(err).Str("func", fn).Msg("error scanning booking")
		return models.Booking{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return booking, nil
}
