// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/MKhiriev/go-car-rental/internal/config"
	"github.com/MKhiriev/go-car-rental/internal/logger"
	"github.com/MKhiriev/go-car-rental/internal/utils"
	"github.com/MKhiriev/go-car-rental/models"
	"github.com/go-resty/resty/v2"
)

const traceIDHeader = "X-Trace-ID"

type httpRentalAdapter struct {
	client           *utils.HTTPClient
	traceIDGenerator *utils.UUIDGenerator

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPRentalAdapter constructs the HTTP implementation of [RentalAPI].
// The base URL is taken from cfg.HTTPAddress; a missing scheme defaults to
// http. Returns an error if the address is empty or cannot be parsed.
func NewHTTPRentalAdapter(cfg config.Adapter, logger *logger.Logger) (RentalAPI, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpRentalAdapter{
		client:           utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		traceIDGenerator: utils.NewUUIDGenerator(),
		logger:           logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errors.New("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", errors.New("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpRentalAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpRentalAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpRentalAdapter) Signup(ctx context.Context, credentials models.Credentials) (int64, error) {
	resp, err := send[models.SignupResponse](h, h.request(ctx).SetBody(credentials), http.MethodPost, "/auth/signup")
	if err != nil {
		return 0, fmt.Errorf("signup: %w", err)
	}
	return resp.UserID, nil
}

func (h *httpRentalAdapter) Login(ctx context.Context, credentials models.Credentials) (string, error) {
	resp, err := send[models.LoginResponse](h, h.request(ctx).SetBody(credentials), http.MethodPost, "/auth/login")
	if err != nil {
		return "", fmt.Errorf("login: %w", err)
	}
	if resp.Token == "" {
		return "", fmt.Errorf("login: %w", ErrEmptyToken)
	}

	h.SetToken(resp.Token)
	return resp.Token, nil
}

func (h *httpRentalAdapter) CreateBooking(ctx context.Context, req models.CreateBookingRequest) (models.CreateBookingResponse, error) {
	resp, err := send[models.CreateBookingResponse](h, h.authRequest(ctx).SetBody(req), http.MethodPost, "/bookings/")
	if err != nil {
		return models.CreateBookingResponse{}, fmt.Errorf("create booking: %w", err)
	}
	return resp, nil
}

func (h *httpRentalAdapter) ListBookings(ctx context.Context) ([]models.BookingView, error) {
	views, err := send[[]models.BookingView](h, h.authRequest(ctx), http.MethodGet, "/bookings/")
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	if views == nil {
		views = make([]models.BookingView, 0)
	}
	return views, nil
}

func (h *httpRentalAdapter) GetBooking(ctx context.Context, bookingID int64) (models.BookingView, error) {
	req := h.authRequest(ctx).SetQueryParam("bookingId", strconv.FormatInt(bookingID, 10))

	views, err := send[[]models.BookingView](h, req, http.MethodGet, "/bookings/")
	if err != nil {
		return models.BookingView{}, fmt.Errorf("get booking %d: %w", bookingID, err)
	}
	if len(views) != 1 {
		return models.BookingView{}, fmt.Errorf("get booking %d: %w: %d items", bookingID, ErrUnexpectedEnvelope, len(views))
	}
	return views[0], nil
}

func (h *httpRentalAdapter) GetSummary(ctx context.Context) (models.BookingSummary, error) {
	req := h.authRequest(ctx).SetQueryParam("summary", "1")

	summary, err := send[models.BookingSummary](h, req, http.MethodGet, "/bookings/")
	if err != nil {
		return models.BookingSummary{}, fmt.Errorf("booking summary: %w", err)
	}
	return summary, nil
}

func (h *httpRentalAdapter) UpdateBookingStatus(ctx context.Context, bookingID int64, status models.BookingStatus) (models.BookingView, error) {
	return h.updateBooking(ctx, bookingID, models.EditBookingStatusRequest{Status: status})
}

func (h *httpRentalAdapter) EditBooking(ctx context.Context, bookingID int64, req models.EditBookingRequest) (models.BookingView, error) {
	return h.updateBooking(ctx, bookingID, req)
}

func (h *httpRentalAdapter) updateBooking(ctx context.Context, bookingID int64, body any) (models.BookingView, error) {
	req := h.authRequest(ctx).
		SetPathParam("bookingId", strconv.FormatInt(bookingID, 10)).
		SetBody(body)

	resp, err := send[models.UpdateBookingResponse](h, req, http.MethodPut, "/bookings/{bookingId}")
	if err != nil {
		return models.BookingView{}, fmt.Errorf("update booking %d: %w", bookingID, err)
	}
	return resp.Booking, nil
}

func (h *httpRentalAdapter) DeleteBooking(ctx context.Context, bookingID int64) error {
	req := h.authRequest(ctx).SetPathParam("bookingId", strconv.FormatInt(bookingID, 10))

	if _, err := send[models.MessageResponse](h, req, http.MethodDelete, "/bookings/{bookingId}"); err != nil {
		return fmt.Errorf("delete booking %d: %w", bookingID, err)
	}
	return nil
}

func (h *httpRentalAdapter) Ping(ctx context.Context) error {
	health, err := send[models.HealthResponse](h, h.request(ctx), http.MethodGet, "/ping")
	if err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	if health.Status != "ok" {
		return fmt.Errorf("ping: %w: status %q", ErrServiceUnavailable, health.Status)
	}
	return nil
}

func (h *httpRentalAdapter) Version(ctx context.Context) (models.AppBuildInfo, error) {
	info, err := send[models.AppBuildInfo](h, h.request(ctx), http.MethodGet, "/version")
	if err != nil {
		return models.AppBuildInfo{}, fmt.Errorf("version: %w", err)
	}
	return info, nil
}

// request starts a request tagged with a fresh trace id.
func (h *httpRentalAdapter) request(ctx context.Context) *resty.Request {
	return h.client.R().
		SetContext(ctx).
		SetHeader(traceIDHeader, h.traceIDGenerator.Generate())
}

// authRequest is request with the stored bearer token attached.
func (h *httpRentalAdapter) authRequest(ctx context.Context) *resty.Request {
	req := h.request(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

// successEnvelope is the success response shape with a typed payload.
type successEnvelope[T any] struct {
	Success bool `json:"success"`
	Data    T    `json:"data"`
}

// send executes req and unwraps the success envelope into T.
func send[T any](h *httpRentalAdapter, req *resty.Request, method, path string) (T, error) {
	var (
		zero   T
		result successEnvelope[T]
	)

	resp, err := req.SetResult(&result).Execute(method, path)
	if err != nil {
		return zero, fmt.Errorf("%s %s request: %w", method, path, err)
	}

	h.logger.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode()).
		Str("trace_id", resp.Header().Get(traceIDHeader)).
		Dur("duration", resp.Time()).
		Msg("api call")

	if err = mapHTTPError(resp); err != nil {
		return zero, err
	}
	if !result.Success {
		return zero, ErrUnexpectedEnvelope
	}

	return result.Data, nil
}
