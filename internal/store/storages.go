// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "github.com/MKhiriev/go-car-rental/internal/logger"

// Storages groups every repository backed by a single database connection.
type Storages struct {
	UserRepository    UserRepository
	BookingRepository BookingRepository
}

// NewStorages builds all repositories on top of db.
func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:    NewUserRepository(db, log),
		BookingRepository: NewBookingRepository(db, log),
	}
}
