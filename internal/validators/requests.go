// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-car-rental/models"
)

// Accepted ranges of booking fields.
const (
	MinDays       = 1
	MaxDays       = 365
	MinRentPerDay = 1
	MaxRentPerDay = 2000
)

// JSON keys of request bodies.
const (
	keyUsername   = "username"
	keyPassword   = "password"
	keyCarName    = "carName"
	keyDays       = "days"
	keyRentPerDay = "rentPerDay"
	keyStatus     = "status"
)

// ParseCredentials parses a signup or login body: non-empty username and
// password strings and nothing else.
func ParseCredentials(body []byte) (models.Credentials, error) {
	obj, err := decodeObject(body, keyUsername, keyPassword)
	if err != nil {
		return models.Credentials{}, err
	}

	username, err := obj.nonEmptyString(keyUsername, true)
	if err != nil {
		return models.Credentials{}, err
	}
	password, err := obj.nonEmptyString(keyPassword, true)
	if err != nil {
		return models.Credentials{}, err
	}

	return models.Credentials{Username: *username, Password: *password}, nil
}

// ParseCreateBookingRequest parses a create-booking body. carName must be a
// non-empty string, days an integer in [MinDays, MaxDays] and rentPerDay a
// number in [MinRentPerDay, MaxRentPerDay].
func ParseCreateBookingRequest(body []byte) (models.CreateBookingRequest, error) {
	obj, err := decodeObject(body, keyCarName, keyDays, keyRentPerDay)
	if err != nil {
		return models.CreateBookingRequest{}, err
	}

	fields, err := parseBookingFields(obj, true)
	if err != nil {
		return models.CreateBookingRequest{}, err
	}

	return models.CreateBookingRequest{
		CarName:    *fields.CarName,
		Days:       *fields.Days,
		RentPerDay: *fields.RentPerDay,
	}, nil
}

// ParseEditBookingStatusRequest parses a status-only edit body.
func ParseEditBookingStatusRequest(body []byte) (models.EditBookingStatusRequest, error) {
	obj, err := decodeObject(body, keyStatus)
	if err != nil {
		return models.EditBookingStatusRequest{}, err
	}

	status, err := obj.nonEmptyString(keyStatus, true)
	if err != nil {
		return models.EditBookingStatusRequest{}, err
	}
	if !models.BookingStatus(*status).IsValid() {
		return models.EditBookingStatusRequest{}, newValidationError(keyStatus, ErrInvalidStatus)
	}

	return models.EditBookingStatusRequest{Status: models.BookingStatus(*status)}, nil
}

// ParseEditBookingRequest parses a field edit body. It follows the create
// rules with every field optional, but at least one must be present.
func ParseEditBookingRequest(body []byte) (models.EditBookingRequest, error) {
	obj, err := decodeObject(body, keyCarName, keyDays, keyRentPerDay)
	if err != nil {
		return models.EditBookingRequest{}, err
	}

	fields, err := parseBookingFields(obj, false)
	if err != nil {
		return models.EditBookingRequest{}, err
	}
	if fields.CarName == nil && fields.Days == nil && fields.RentPerDay == nil {
		return models.EditBookingRequest{}, newValidationError("", ErrNoFieldsToUpdate)
	}

	return fields, nil
}

// ClassifyBookingEdit decides which form of edit body is. The status form is
// tried first, then the fields form. A body matching neither is rejected.
func ClassifyBookingEdit(body []byte) (models.BookingEdit, error) {
	status, statusErr := ParseEditBookingStatusRequest(body)
	if statusErr == nil {
		return models.BookingEdit{Kind: models.StatusEdit, Status: status}, nil
	}

	fields, fieldsErr := ParseEditBookingRequest(body)
	if fieldsErr == nil {
		return models.BookingEdit{Kind: models.FieldsEdit, Fields: fields}, nil
	}

	return models.BookingEdit{}, newValidationError("", fmt.Errorf("%w: %w",
		ErrUnrecognizedEdit, errors.Join(statusErr, fieldsErr)))
}

func parseBookingFields(obj object, required bool) (models.EditBookingRequest, error) {
	carName, err := obj.nonEmptyString(keyCarName, required)
	if err != nil {
		return models.EditBookingRequest{}, err
	}
	days, err := obj.integer(keyDays, required, MinDays, MaxDays)
	if err != nil {
		return models.EditBookingRequest{}, err
	}
	rentPerDay, err := obj.number(keyRentPerDay, required, MinRentPerDay, MaxRentPerDay)
	if err != nil {
		return models.EditBookingRequest{}, err
	}

	return models.EditBookingRequest{CarName: carName, Days: days, RentPerDay: rentPerDay}, nil
}
