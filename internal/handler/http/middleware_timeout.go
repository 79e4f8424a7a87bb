// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
)

// withRequestTimeout bounds the request context by the configured timeout.
// It never writes to the response: store calls fail with the context error
// and the handler answers through the usual error envelope.
func (h *Handler) withRequestTimeout(next http.Handler) http.Handler {
	if h.requestTimeout <= 0 {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
		defer cancel()

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
