// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-car-rental/internal/app"
	"github.com/MKhiriev/go-car-rental/internal/logger"
	"github.com/MKhiriev/go-car-rental/internal/utils"
	"github.com/MKhiriev/go-car-rental/internal/validators"
	"github.com/MKhiriev/go-car-rental/models"
)

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	credentials, err := readCredentials(w, r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(r.Context(), credentials)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Int64("user_id", registeredUser.UserID).Msg("user signed up")

	writeSuccess(w, r, models.SignupResponse{
		Message: app.MsgUserCreated,
		UserID:  registeredUser.UserID,
	}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	credentials, err := readCredentials(w, r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, credentials)
	if err != nil {
		writeError(w, r, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Debug().Int64("user_id", foundUser.UserID).Msg("user logged in")

	writeSuccess(w, r, models.LoginResponse{
		Message: app.MsgLoginSuccess,
		Token:   token.String(),
	}, http.StatusOK)
}

func readCredentials(w http.ResponseWriter, r *http.Request) (models.Credentials, error) {
	body, err := readBody(w, r)
	if err != nil {
		return models.Credentials{}, err
	}

	return validators.ParseCredentials(body)
}

// readBody reads a request body of at most maxBodyBytes. Read failures are
// reported as invalid input.
func readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	body, err := utils.ReadBody(w, r, maxBodyBytes)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", validators.ErrValidation, err)
	}

	return body, nil
}
