// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// routableMethods are probed when building the Allow header of a 405.
var routableMethods = []string{
	http.MethodGet,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
}

// methodNotAllowed returns the router's MethodNotAllowed handler. It answers
// with the error envelope and lists the methods the matched path does
// support in the Allow header.
//
// Usage:
//
//	router := chi.NewRouter()
//	router.MethodNotAllowed(methodNotAllowed(router))
//	// ... register routes ...
func methodNotAllowed(router *chi.Mux) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		allowed := make([]string, 0, len(routableMethods))
		for _, method := range routableMethods {
			if router.Match(chi.NewRouteContext(), method, r.URL.Path) {
				allowed = append(allowed, method)
			}
		}
		if len(allowed) > 0 {
			w.Header().Set("Allow", strings.Join(allowed, ", "))
		}

		writeError(w, r, ErrMethodNotAllowed)
	}
}

// routeNotFound answers unknown paths with the error envelope.
func routeNotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, ErrRouteNotFound)
}
