// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"

	"github.com/MKhiriev/go-car-rental/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a subset
// of fields (field-level scoping).
const (
	// FieldBookingID targets the store-assigned booking identifier.
	FieldBookingID = "booking_id"

	// FieldUserID targets the owner identifier of a booking or update.
	FieldUserID = "user_id"

	// FieldCarName targets the car name of a booking.
	FieldCarName = "car_name"

	// FieldDays targets the rental length of a booking.
	FieldDays = "days"

	// FieldRentPerDay targets the daily price of a booking.
	FieldRentPerDay = "rent_per_day"

	// FieldStatus targets the lifecycle status of a booking.
	FieldStatus = "status"

	// FieldUpdateFields requires a BookingUpdate to change at least one field.
	FieldUpdateFields = "update_fields"

	// FieldUsername targets the login name of credentials.
	FieldUsername = "username"

	// FieldPassword targets the plain password of credentials.
	FieldPassword = "password"
)

// BookingValidator implements the Validator interface for the models that
// flow from the services into the store: Booking, BookingUpdate and
// Credentials.
type BookingValidator struct {
}

// NewBookingValidator constructs a new BookingValidator
// and returns it as the Validator interface.
func NewBookingValidator() Validator {
	return &BookingValidator{}
}

// Validate dispatches validation to the appropriate type-specific method
// based on the dynamic type of obj. Both value and pointer forms of each
// supported model are accepted.
//
// Returns ErrUnsupportedType if obj does not match any known model.
// Optional fields restrict validation to the named subset; when omitted,
// a sensible default set of fields is validated.
func (v *BookingValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Booking:
		return v.validateBooking(ctx, value, fields...)
	case *models.Booking:
		return v.validateBooking(ctx, *value, fields...)

	case models.BookingUpdate:
		return v.validateBookingUpdate(ctx, value, fields...)
	case *models.BookingUpdate:
		return v.validateBookingUpdate(ctx, *value, fields...)

	case models.Credentials:
		return v.validateCredentials(ctx, value, fields...)
	case *models.Credentials:
		return v.validateCredentials(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateBooking validates a booking about to be stored.
//
// Default validated fields (when none specified):
// UserID, CarName, Days, RentPerDay, Status. BookingID is only checked when
// requested, since new bookings have none yet.
func (v *BookingValidator) validateBooking(_ context.Context, b models.Booking, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldCarName, FieldDays, FieldRentPerDay, FieldStatus}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldBookingID:
			err = checkID(FieldBookingID, b.ID, ErrInvalidBookingID)
		case FieldUserID:
			err = checkID(FieldUserID, b.UserID, ErrInvalidUserID)
		case FieldCarName:
			err = checkCarName(b.CarName)
		case FieldDays:
			err = checkDays(b.Days)
		case FieldRentPerDay:
			err = checkRentPerDay(b.RentPerDay)
		case FieldStatus:
			err = checkStatus(b.Status)
		default:
			return ErrUnknownField
		}
		if err != nil {
			return err
		}
	}

	return nil
}

// validateBookingUpdate validates a partial update.
//
// Default validated fields (when none specified):
// BookingID, UserID, UpdateFields and every field the update sets.
func (v *BookingValidator) validateBookingUpdate(_ context.Context, u models.BookingUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldBookingID, FieldUserID, FieldUpdateFields,
			FieldCarName, FieldDays, FieldRentPerDay, FieldStatus}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldBookingID:
			err = checkID(FieldBookingID, u.ID, ErrInvalidBookingID)
		case FieldUserID:
			err = checkID(FieldUserID, u.UserID, ErrInvalidUserID)
		case FieldUpdateFields:
			if u.IsEmpty() {
				err = newValidationError(FieldUpdateFields, ErrNoFieldsToUpdate)
			}
		case FieldCarName:
			if u.CarName != nil {
				err = checkCarName(*u.CarName)
			}
		case FieldDays:
			if u.Days != nil {
				err = checkDays(*u.Days)
			}
		case FieldRentPerDay:
			if u.RentPerDay != nil {
				err = checkRentPerDay(*u.RentPerDay)
			}
		case FieldStatus:
			if u.Status != nil {
				err = checkStatus(*u.Status)
			}
		default:
			return ErrUnknownField
		}
		if err != nil {
			return err
		}
	}

	return nil
}

// validateCredentials requires both username and password to be non-empty.
func (v *BookingValidator) validateCredentials(_ context.Context, c models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if c.Username == "" {
				return newValidationError(FieldUsername, ErrEmptyString)
			}
		case FieldPassword:
			if c.Password == "" {
				return newValidationError(FieldPassword, ErrEmptyString)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func checkID(field string, id int64, cause error) error {
	if id <= 0 {
		return newValidationError(field, cause)
	}
	return nil
}

func checkCarName(name string) error {
	if name == "" {
		return newValidationError(FieldCarName, ErrEmptyString)
	}
	return nil
}

func checkDays(days int) error {
	if days < MinDays || days > MaxDays {
		return newValidationError(FieldDays, ErrOutOfRange)
	}
	return nil
}

func checkRentPerDay(rent float64) error {
	if rent < MinRentPerDay || rent > MaxRentPerDay {
		return newValidationError(FieldRentPerDay, ErrOutOfRange)
	}
	return nil
}

func checkStatus(status models.BookingStatus) error {
	if !status.IsValid() {
		return newValidationError(FieldStatus, ErrInvalidStatus)
	}
	return nil
}
