// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/MKhiriev/go-car-rental/internal/logger"
)

// withRecoverer turns a handler panic into a logged 500 envelope. Like chi's
// Recoverer it re-panics [http.ErrAbortHandler] so the server can abort the
// connection.
func withRecoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
				panic(rec)
			}

			logger.FromRequest(r).Error().
				Any("panic", rec).
				Bytes("stack", debug.Stack()).
				Str("func", "withRecoverer").
				Msg("handler panicked")

			if r.Header.Get("Connection") != "Upgrade" {
				writeError(w, r, fmt.Errorf("%w: %v", ErrPanicRecovered, rec))
			}
		}()

		next.ServeHTTP(w, r)
	})
}
