// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithCORS(t *testing.T) {
	tests := []struct {
		name          string
		method        string
		preflight     bool
		wantStatus    int
		wantNextCalls bool
	}{
		{"simple GET", http.MethodGet, false, http.StatusOK, true},
		{"preflight", http.MethodOptions, true, http.StatusNoContent, false},
		{"bare OPTIONS reaches router", http.MethodOptions, false, http.StatusOK, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(tt.method, "/bookings/", nil)
			req.Header.Set("Origin", "https://rental.example")
			if tt.preflight {
				req.Header.Set("Access-Control-Request-Method", http.MethodPut)
				req.Header.Set("Access-Control-Request-Headers", "Authorization")
			}

			rr := httptest.NewRecorder()
			withCORS(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantNextCalls, nextCalled)
			assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
			assert.Contains(t, rr.Header().Get("Access-Control-Allow-Methods"), http.MethodPut)
			assert.Contains(t, rr.Header().Get("Access-Control-Allow-Headers"), "Authorization")
			assert.Equal(t, traceIDHeader, rr.Header().Get("Access-Control-Expose-Headers"))
		})
	}
}
