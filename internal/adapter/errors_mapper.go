// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-car-rental/internal/app"
	"github.com/MKhiriev/go-car-rental/models"
	"github.com/go-resty/resty/v2"
)

var statusErrors = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusForbidden:           ErrForbidden,
	http.StatusNotFound:            ErrNotFound,
	http.StatusConflict:            ErrConflict,
	http.StatusInternalServerError: ErrInternalServerError,
}

var messageErrors = map[string]error{
	app.MsgInvalidInputs:              ErrInvalidInputs,
	app.MsgUsernameAlreadyExists:      ErrUsernameTaken,
	app.MsgUserDoesNotExist:           ErrUserDoesNotExist,
	app.MsgIncorrectPassword:          ErrIncorrectPassword,
	app.MsgAuthorizationHeaderMissing: ErrTokenRejected,
	app.MsgTokenMissingAfterBearer:    ErrTokenRejected,
	app.MsgTokenInvalid:               ErrTokenRejected,
	app.MsgUnauthorized:               ErrTokenRejected,
	app.MsgBookingIDNotFound:          ErrBookingNotFound,
	app.MsgBookingNotFound:            ErrBookingNotFound,
	app.MsgBookingDoesNotBelongToUser: ErrBookingNotOwned,
	app.MsgServiceUnavailable:         ErrServiceUnavailable,
}

// mapHTTPError returns nil for 2xx responses. Otherwise the error wraps the
// status class error and, when the envelope message is known, the outcome
// error too.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	message := strings.TrimSpace(string(resp.Body()))
	var envelope models.ErrorResponse
	if err := json.Unmarshal(resp.Body(), &envelope); err == nil && envelope.Error != "" {
		message = envelope.Error
	}
	if message == "" {
		message = http.StatusText(resp.StatusCode())
	}

	statusErr, ok := statusErrors[resp.StatusCode()]
	if !ok {
		return fmt.Errorf("http %d: %s", resp.StatusCode(), message)
	}
	if outcomeErr, ok := messageErrors[message]; ok {
		return fmt.Errorf("%w: %w", statusErr, outcomeErr)
	}
	return fmt.Errorf("%w: %s", statusErr, message)
}
