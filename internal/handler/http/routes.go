// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
)

// Init builds the router. The not-found and method-not-allowed handlers are
// set before any route so that mounted subrouters inherit them.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, withRecoverer, withCORS, withGZip, h.withRequestTimeout)

	router.NotFound(routeNotFound)
	router.MethodNotAllowed(methodNotAllowed(router))

	router.Get("/ping", h.ping)
	router.Get("/version", h.getServerVersion)

	router.Route("/auth", func(r chi.Router) {
		r.Post("/signup", h.signup)
		r.Post("/login", h.login)
	})

	router.Route("/bookings", func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/", h.createBooking)
		r.Get("/", h.listBookings)
		r.Put("/{bookingId}", h.updateBooking)
		r.Delete("/{bookingId}", h.deleteBooking)
	})

	return router
}
