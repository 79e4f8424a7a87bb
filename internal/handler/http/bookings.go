// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-car-rental/internal/app"
	"github.com/MKhiriev/go-car-rental/internal/logger"
	"github.com/MKhiriev/go-car-rental/internal/service"
	"github.com/MKhiriev/go-car-rental/internal/utils"
	"github.com/MKhiriev/go-car-rental/internal/validators"
	"github.com/MKhiriev/go-car-rental/models"
	"github.com/go-chi/chi/v5"
)

const (
	bookingIDParam = "bookingId"
	summaryParam   = "summary"
)

func (h *Handler) createBooking(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		writeError(w, r, ErrUnauthenticated)
		return
	}

	body, err := readBody(w, r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	request, err := validators.ParseCreateBookingRequest(body)
	if err != nil {
		writeError(w, r, err)
		return
	}

	created, err := h.services.BookingService.CreateBooking(ctx, request.Booking(userID))
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Int64("booking_id", created.ID).Int64("user_id", userID).Msg("booking created")

	writeSuccess(w, r, models.CreateBookingResponse{
		Message:   app.MsgBookingCreated,
		BookingID: created.ID,
		TotalCost: created.TotalCost(),
	}, http.StatusCreated)
}

// listBookings serves three views selected by query parameters: the
// summary when "summary" is non-empty, a single booking when "bookingId" is
// non-empty, and every booking of the user otherwise.
func (h *Handler) listBookings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		writeError(w, r, ErrUnauthenticated)
		return
	}

	query := r.URL.Query()

	if query.Get(summaryParam) != "" {
		username, _ := utils.GetUsernameFromContext(ctx)
		summary, err := h.services.BookingService.GetSummary(ctx, userID, username)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeSuccess(w, r, summary, http.StatusOK)
		return
	}

	if rawID := query.Get(bookingIDParam); rawID != "" {
		bookingID, err := strconv.ParseInt(rawID, 10, 64)
		if err != nil {
			writeError(w, r, fmt.Errorf("%w: %v", ErrBookingIDNotFound, err))
			return
		}

		booking, err := h.services.BookingService.GetUserBooking(ctx, bookingID, userID)
		if errors.Is(err, service.ErrBookingNotFound) {
			writeError(w, r, fmt.Errorf("%w: %v", ErrBookingIDNotFound, err))
			return
		}
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeSuccess(w, r, []models.BookingView{booking.View()}, http.StatusOK)
		return
	}

	bookings, err := h.services.BookingService.GetUserBookings(ctx, userID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeSuccess(w, r, models.BookingViews(bookings), http.StatusOK)
}

func (h *Handler) updateBooking(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		writeError(w, r, ErrUnauthenticated)
		return
	}

	bookingID, err := bookingIDFromPath(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	body, err := readBody(w, r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	edit, err := validators.ClassifyBookingEdit(body)
	if err != nil {
		writeError(w, r, err)
		return
	}

	updated, err := h.services.BookingService.UpdateBooking(ctx, edit.Update(bookingID, userID))
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().
		Int64("booking_id", bookingID).
		Stringer("edit", edit.Kind).
		Msg("booking updated")

	writeSuccess(w, r, models.UpdateBookingResponse{
		Message: app.MsgBookingUpdated,
		Booking: updated.View(),
	}, http.StatusOK)
}

func (h *Handler) deleteBooking(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		writeError(w, r, ErrUnauthenticated)
		return
	}

	bookingID, err := bookingIDFromPath(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.BookingService.DeleteBooking(ctx, bookingID, userID); err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Int64("booking_id", bookingID).Msg("booking deleted")

	writeSuccess(w, r, models.MessageResponse{Message: app.MsgBookingDeleted}, http.StatusOK)
}

func bookingIDFromPath(r *http.Request) (int64, error) {
	bookingID, err := strconv.ParseInt(chi.URLParam(r, bookingIDParam), 10, 64)
	if err != nil {
		return 0, ErrInvalidBookingIDPath
	}
	return bookingID, nil
}
