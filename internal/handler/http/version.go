// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-car-rental/models"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, r, h.services.AppInfoService.GetAppBuildInfo(r.Context()), http.StatusOK)
}

// ping reports whether the database answers.
func (h *Handler) ping(w http.ResponseWriter, r *http.Request) {
	if err := h.services.AppInfoService.Ping(r.Context()); err != nil {
		writeError(w, r, err)
		return
	}

	writeSuccess(w, r, models.HealthResponse{Status: "ok"}, http.StatusOK)
}
