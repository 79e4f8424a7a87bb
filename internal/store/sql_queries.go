// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-car-rental/models"
)

var (
	userColumns    = []string{"id", "username", "password"}
	bookingColumns = []string{"id", "user_id", "car_name", "days", "rent_per_day", "status"}
)

func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}

func buildCreateUserQuery(sb sq.StatementBuilderType, user models.User) (string, []any, error) {
	return sb.
		Insert(user.TableName()).
		Columns("username", "password").
		Values(user.Username, user.Password).
		Suffix(returning(userColumns)).
		ToSql()
}

func buildFindUserByUsernameQuery(sb sq.StatementBuilderType, username string) (string, []any, error) {
	return sb.
		Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{"username": username}).
		ToSql()
}

func buildCreateBookingQuery(sb sq.StatementBuilderType, booking models.Booking) (string, []any, error) {
	return sb.
		Insert(booking.TableName()).
		Columns("user_id", "car_name", "days", "rent_per_day", "status").
		Values(booking.UserID, booking.CarName, booking.Days, booking.RentPerDay, string(booking.Status)).
		Suffix(returning(bookingColumns)).
		ToSql()
}

// buildSelectBookingsQuery selects bookings matching every condition in where.
func buildSelectBookingsQuery(sb sq.StatementBuilderType, where sq.Eq) (string, []any, error) {
	return sb.
		Select(bookingColumns...).
		From(models.Booking{}.TableName()).
		Where(where).
		OrderBy("id").
		ToSql()
}

// buildUpdateBookingQuery sets only the non-nil fields of update. An update
// with nothing to set fails to build.
func buildUpdateBookingQuery(sb sq.StatementBuilderType, update models.BookingUpdate) (string, []any, error) {
	query := sb.Update(models.Booking{}.TableName())

	if update.CarName != nil {
		query = query.Set("car_name", *update.CarName)
	}
	if update.Days != nil {
		query = query.Set("days", *update.Days)
	}
	if update.RentPerDay != nil {
		query = query.Set("rent_per_day", *update.RentPerDay)
	}
	if update.Status != nil {
		query = query.Set("status", string(*update.Status))
	}

	return query.
		Where(sq.Eq{"id": update.ID, "user_id": update.UserID}).
		Suffix(returning(bookingColumns)).
		ToSql()
}

func buildDeleteBookingQuery(sb sq.StatementBuilderType, bookingID, userID int64) (string, []any, error) {
	return sb.
		Delete(models.Booking{}.TableName()).
		Where(sq.Eq{"id": bookingID, "user_id": userID}).
		ToSql()
}
