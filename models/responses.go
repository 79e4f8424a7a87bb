// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SuccessResponse is the envelope of every successful API response.
type SuccessResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

// ErrorResponse is the envelope of every failed API response.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// SignupResponse is returned by POST /auth/signup.
type SignupResponse struct {
	Message string `json:"message"`
	UserID  int64  `json:"userId"`
}

// LoginResponse is returned by POST /auth/login.
type LoginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

// CreateBookingResponse is returned by POST /bookings/.
type CreateBookingResponse struct {
	Message   string  `json:"message"`
	BookingID int64   `json:"bookingId"`
	TotalCost float64 `json:"totalCost"`
}

// UpdateBookingResponse is returned by PUT /bookings/{id}.
type UpdateBookingResponse struct {
	Message string      `json:"message"`
	Booking BookingView `json:"booking"`
}

// MessageResponse carries a bare confirmation message.
type MessageResponse struct {
	Message string `json:"message"`
}

// HealthResponse is returned by GET /ping.
type HealthResponse struct {
	Status string `json:"status"`
}
