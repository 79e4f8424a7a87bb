// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-car-rental/internal/app"
	"github.com/MKhiriev/go-car-rental/internal/service"
	"github.com/MKhiriev/go-car-rental/internal/validators"
)

// httpError is the public face of an error: the status code and the message
// written into the error envelope.
type httpError struct {
	status  int
	message string
}

var errorStatusMap = map[error]httpError{
	validators.ErrValidation: {http.StatusBadRequest, app.MsgInvalidInputs},

	service.ErrUsernameAlreadyExists: {http.StatusConflict, app.MsgUsernameAlreadyExists},
	service.ErrUserDoesNotExist:      {http.StatusUnauthorized, app.MsgUserDoesNotExist},
	service.ErrWrongPassword:         {http.StatusUnauthorized, app.MsgIncorrectPassword},
	service.ErrTokenInvalid:          {http.StatusUnauthorized, app.MsgTokenInvalid},

	service.ErrBookingNotFound:            {http.StatusNotFound, app.MsgBookingNotFound},
	service.ErrBookingDoesNotBelongToUser: {http.StatusForbidden, app.MsgBookingDoesNotBelongToUser},
	service.ErrDatabaseUnavailable:        {http.StatusInternalServerError, app.MsgServiceUnavailable},

	ErrEmptyAuthorizationHeader: {http.StatusUnauthorized, app.MsgAuthorizationHeaderMissing},
	ErrEmptyToken:               {http.StatusUnauthorized, app.MsgTokenMissingAfterBearer},
	ErrAuthenticationFailed:     {http.StatusUnauthorized, app.MsgUnauthorized},
	ErrUnauthenticated:          {http.StatusUnauthorized, app.MsgUnauthorized},

	ErrBookingIDNotFound:    {http.StatusNotFound, app.MsgBookingIDNotFound},
	ErrInvalidBookingIDPath: {http.StatusNotFound, app.MsgBookingNotFound},

	ErrRouteNotFound:    {http.StatusNotFound, app.MsgRouteNotFound},
	ErrMethodNotAllowed: {http.StatusMethodNotAllowed, app.MsgMethodNotAllowed},
}

// internalError answers everything the map does not know.
var internalError = httpError{http.StatusInternalServerError, app.MsgSomethingWentWrong}

func httpErrorFrom(err error) httpError {
	for target, mapped := range errorStatusMap {
		if errors.Is(err, target) {
			return mapped
		}
	}
	return internalError
}
