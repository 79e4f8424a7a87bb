// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-car-rental/internal/logger"
	"github.com/MKhiriev/go-car-rental/models"
)

type appInfoService struct {
	buildInfo models.AppBuildInfo
	db        Pinger

	logger *logger.Logger
}

func NewAppInfoService(buildInfo models.AppBuildInfo, db Pinger, logger *logger.Logger) AppInfoService {
	return &appInfoService{
		buildInfo: buildInfo,
		db:        db,
		logger:    logger,
	}
}

func (s *appInfoService) GetAppBuildInfo(ctx context.Context) models.AppBuildInfo {
	return s.buildInfo
}

// Ping checks that the database answers. A missing database is reported as
// unavailable.
func (s *appInfoService) Ping(ctx context.Context) error {
	if s.db == nil {
		return ErrDatabaseUnavailable
	}

	if err := s.db.PingContext(ctx); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*appInfoService.Ping").Msg("database ping failed")
		return fmt.Errorf("%w: %w", ErrDatabaseUnavailable, err)
	}

	return nil
}
