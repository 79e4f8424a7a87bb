// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-car-rental/internal/logger"
	"github.com/MKhiriev/go-car-rental/internal/utils"
	"github.com/MKhiriev/go-car-rental/models"
)

// writeSuccess writes data inside the success envelope.
func writeSuccess(w http.ResponseWriter, r *http.Request, data any, status int) {
	if _, err := utils.WriteJSON(w, models.SuccessResponse{Success: true, Data: data}, status); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "writeSuccess").Msg("writing response failed")
	}
}

// writeError logs err and answers with the envelope mapped from it. The
// error text itself never reaches the client.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	mapped := httpErrorFrom(err)

	log := logger.FromRequest(r)
	if mapped.status >= http.StatusInternalServerError {
		log.Err(err).Int("status", mapped.status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", mapped.status).Msg("request rejected")
	}

	if _, werr := utils.WriteJSON(w, models.ErrorResponse{Success: false, Error: mapped.message}, mapped.status); werr != nil {
		log.Err(werr).Str("func", "writeError").Msg("writing response failed")
	}
}
