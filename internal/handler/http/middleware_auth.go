// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-car-rental/internal/logger"
	"github.com/MKhiriev/go-car-rental/internal/service"
	"github.com/MKhiriev/go-car-rental/internal/utils"
)

// auth is an HTTP middleware that enforces bearer token authentication.
//
// It inspects the incoming "Authorization" header, extracts the token after
// the scheme, validates it via [service.AuthService.ParseToken] and, on
// success, stores the user's ID and username in the request context before
// delegating to the next handler.
//
// Every rejection is a 401 error envelope:
//   - the header is absent or empty ([ErrEmptyAuthorizationHeader]);
//   - nothing follows the scheme ([ErrEmptyToken]);
//   - the token is invalid ([service.ErrTokenInvalid]);
//   - authentication itself failed or panicked ([ErrAuthenticationFailed]).
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, err := h.authenticate(r)
		if err != nil {
			writeError(w, r, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// authenticate returns the request context enriched with the user identity.
// A panic here fails closed with ErrAuthenticationFailed.
func (h *Handler) authenticate(r *http.Request) (ctx context.Context, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			logger.FromRequest(r).Error().Any("panic", rec).Str("func", "*Handler.authenticate").Msg("auth panicked")
			ctx, err = nil, fmt.Errorf("%w: %v", ErrAuthenticationFailed, rec)
		}
	}()

	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return nil, ErrEmptyAuthorizationHeader
	}

	tokenString, err := utils.ParseBearerToken(authHeader)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEmptyToken, err)
	}

	ctx = r.Context()
	token, err := h.services.AuthService.ParseToken(ctx, tokenString)
	if errors.Is(err, service.ErrTokenInvalid) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAuthenticationFailed, err)
	}

	logger.FromRequest(r).Debug().Int64("user_id", token.UserID).Msg("request authenticated")

	return utils.WithUser(ctx, token.UserID, token.Username), nil
}
