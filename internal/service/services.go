// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-car-rental/internal/config"
	"github.com/MKhiriev/go-car-rental/internal/logger"
	"github.com/MKhiriev/go-car-rental/internal/store"
	"github.com/MKhiriev/go-car-rental/internal/utils"
	"github.com/MKhiriev/go-car-rental/models"
)

type Services struct {
	AuthService    AuthService
	BookingService BookingService
	AppInfoService AppInfoService
}

// NewServices wires every service on top of storages. Auth and booking
// services are wrapped with input validation.
func NewServices(storages *store.Storages, db Pinger, cfg config.App, buildInfo models.AppBuildInfo, logger *logger.Logger) *Services {
	hasher := utils.NewPasswordHasher(cfg.PasswordHashCost)

	return &Services{
		AuthService: NewAuthValidationService().
			Wrap(NewAuthService(storages.UserRepository, hasher, cfg, logger)),
		BookingService: NewBookingValidationService().
			Wrap(NewBookingService(storages.BookingRepository, logger)),
		AppInfoService: NewAppInfoService(buildInfo, db, logger),
	}
}
