// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"time"

	"github.com/MKhiriev/go-car-rental/internal/logger"
	"github.com/MKhiriev/go-car-rental/internal/service"
	"github.com/MKhiriev/go-car-rental/internal/utils"
)

// maxBodyBytes caps every JSON request body.
const maxBodyBytes = 100 << 10

type Handler struct {
	services *service.Services

	traceIDGenerator *utils.UUIDGenerator

	// requestTimeout bounds the handling of a single request; zero disables it.
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, requestTimeout time.Duration, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:         services,
		traceIDGenerator: utils.NewUUIDGenerator(),
		requestTimeout:   requestTimeout,
		logger:           logger,
	}
}
