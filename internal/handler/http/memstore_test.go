// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"sort"
	"sync"

	"github.com/MKhiriev/go-car-rental/internal/store"
	"github.com/MKhiriev/go-car-rental/models"
)

// memUserRepository is an in-memory store.UserRepository. A non-nil err
// fails every call.
type memUserRepository struct {
	mu     sync.Mutex
	nextID int64
	users  map[string]models.User
	err    error
}

func newMemUserRepository() *memUserRepository {
	return &memUserRepository{users: make(map[string]models.User)}
}

func (m *memUserRepository) CreateUser(_ context.Context, user models.User) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.err != nil {
		return models.User{}, m.err
	}
	if _, ok := m.users[user.Username]; ok {
		return models.User{}, store.ErrUsernameAlreadyExists
	}

	m.nextID++
	user.UserID = m.nextID
	m.users[user.Username] = user
	return user, nil
}

func (m *memUserRepository) FindUserByUsername(_ context.Context, username string) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.err != nil {
		return models.User{}, m.err
	}
	user, ok := m.users[username]
	if !ok {
		return models.User{}, store.ErrUserNotFound
	}
	return user, nil
}

// memBookingRepository is an in-memory store.BookingRepository. A non-nil
// err fails every call.
type memBookingRepository struct {
	mu       sync.Mutex
	nextID   int64
	bookings map[int64]models.Booking
	err      error
}

func newMemBookingRepository() *memBookingRepository {
	return &memBookingRepository{bookings: make(map[int64]models.Booking)}
}

func (m *memBookingRepository) CreateBooking(_ context.Context, booking models.Booking) (models.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.err != nil {
		return models.Booking{}, m.err
	}

	m.nextID++
	booking.ID = m.nextID
	if booking.Status == "" {
		booking.Status = models.BookingStatusBooked
	}
	m.bookings[booking.ID] = booking
	return booking, nil
}

func (m *memBookingRepository) FindBookingByID(_ context.Context, bookingID int64) (models.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.err != nil {
		return models.Booking{}, m.err
	}
	booking, ok := m.bookings[bookingID]
	if !ok {
		return models.Booking{}, store.ErrBookingNotFound
	}
	return booking, nil
}

func (m *memBookingRepository) FindUserBookingByID(ctx context.Context, bookingID, userID int64) (models.Booking, error) {
	booking, err := m.FindBookingByID(ctx, bookingID)
	if err != nil {
		return models.Booking{}, err
	}
	if booking.UserID != userID {
		return models.Booking{}, store.ErrBookingNotFound
	}
	return booking, nil
}

func (m *memBookingRepository) ListUserBookings(_ context.Context, userID int64) ([]models.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.err != nil {
		return nil, m.err
	}

	result := make([]models.Booking, 0)
	for _, b := range m.bookings {
		if b.UserID == userID {
			result = append(result, b)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *memBookingRepository) UpdateBooking(_ context.Context, update models.BookingUpdate) (models.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.err != nil {
		return models.Booking{}, m.err
	}
	booking, ok := m.bookings[update.ID]
	if !ok || booking.UserID != update.UserID {
		return models.Booking{}, store.ErrBookingNotFound
	}

	if update.CarName != nil {
		booking.CarName = *update.CarName
	}
	if update.Days != nil {
		booking.Days = *update.Days
	}
	if update.RentPerDay != nil {
		booking.RentPerDay = *update.RentPerDay
	}
	if update.Status != nil {
		booking.Status = *update.Status
	}
	m.bookings[booking.ID] = booking
	return booking, nil
}

func (m *memBookingRepository) DeleteBooking(_ context.Context, bookingID, userID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.err != nil {
		return m.err
	}
	booking, ok := m.bookings[bookingID]
	if !ok || booking.UserID != userID {
		return store.ErrBookingNotFound
	}
	delete(m.bookings, bookingID)
	return nil
}

// pingerFunc adapts a function to service.Pinger.
type pingerFunc func(ctx context.Context) error

func (f pingerFunc) PingContext(ctx context.Context) error {
	return f(ctx)
}
