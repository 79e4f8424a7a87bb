// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-car-rental/internal/app"
	"github.com/MKhiriev/go-car-rental/internal/logger"
	"github.com/MKhiriev/go-car-rental/internal/service"
	"github.com/MKhiriev/go-car-rental/internal/store"
	"github.com/MKhiriev/go-car-rental/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithRequestTimeout_SetsDeadlineOnly(t *testing.T) {
	h := NewHandler(nil, 20*time.Millisecond, logger.Nop())

	var hadDeadline bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, hadDeadline = r.Context().Deadline()
		<-r.Context().Done()
	})

	rr := httptest.NewRecorder()
	h.withRequestTimeout(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.True(t, hadDeadline)
	// Nothing is written on expiry: the recorder keeps its defaults.
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Empty(t, rr.Body.String())
}

func TestWithRequestTimeout_Disabled(t *testing.T) {
	h := NewHandler(nil, 0, logger.Nop())

	var hadDeadline bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, hadDeadline = r.Context().Deadline()
	})

	h.withRequestTimeout(next).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.False(t, hadDeadline)
}

func TestRouter_TimeoutAnswersWithEnvelope(t *testing.T) {
	storages := &store.Storages{UserRepository: newMemUserRepository(), BookingRepository: newMemBookingRepository()}
	slowDB := pingerFunc(func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	})
	services := service.NewServices(storages, slowDB, testAppConfig, models.NewAppBuildInfo("", "", ""), logger.Nop())
	router := NewHandler(services, 20*time.Millisecond, logger.Nop()).Init()

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/ping", nil))

	var body envelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assertError(t, rr, body, http.StatusInternalServerError, app.MsgServiceUnavailable)
}
