// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// BookingStatus is the lifecycle state of a booking. It is a flat enum:
// any status may be set from any other.
type BookingStatus string

const (
	BookingStatusBooked    BookingStatus = "booked"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// IsValid reports whether s is one of the known booking statuses.
func (s BookingStatus) IsValid() bool {
	switch s {
	case BookingStatusBooked, BookingStatusCompleted, BookingStatusCancelled:
		return true
	}
	return false
}

// Booking is a car rental record owned by a single user.
type Booking struct {
	ID         int64         `json:"id"`
	UserID     int64         `json:"user_id"`
	CarName    string        `json:"car_name"`
	Days       int           `json:"days"`
	RentPerDay float64       `json:"rent_per_day"`
	Status     BookingStatus `json:"status"`
}

// TableName returns the name of the database table
// associated with the Booking model.
func (b Booking) TableName() string {
	return "bookings"
}

// TotalCost is derived on every read and never stored.
func (b Booking) TotalCost() float64 {
	return float64(b.Days) * b.RentPerDay
}

// View projects the booking into the shape returned to API clients.
func (b Booking) View() BookingView {
	return BookingView{
		ID:         b.ID,
		CarName:    b.CarName,
		Days:       b.Days,
		RentPerDay: b.RentPerDay,
		Status:     b.Status,
		TotalCost:  b.TotalCost(),
	}
}

// BookingView is the client-facing projection of a booking.
type BookingView struct {
	ID         int64         `json:"id"`
	CarName    string        `json:"car_name"`
	Days       int           `json:"days"`
	RentPerDay float64       `json:"rent_per_day"`
	Status     BookingStatus `json:"status"`
	TotalCost  float64       `json:"totalCost"`
}

// BookingViews projects every booking in bookings. The result is never nil.
func BookingViews(bookings []Booking) []BookingView {
	views := make([]BookingView, 0, len(bookings))
	for _, b := range bookings {
		views = append(views, b.View())
	}
	return views
}

// BookingUpdate represents a partial update of a single booking.
// Only non-nil fields are written.
type BookingUpdate struct {
	// ID is the identifier of the booking to update. Required.
	ID int64 `json:"id"`

	// UserID is the owner of the booking. Required; the update is scoped to it.
	UserID int64 `json:"user_id"`

	CarName    *string        `json:"car_name,omitempty"`
	Days       *int           `json:"days,omitempty"`
	RentPerDay *float64       `json:"rent_per_day,omitempty"`
	Status     *BookingStatus `json:"status,omitempty"`
}

// IsEmpty reports whether the update carries no field to change.
func (u BookingUpdate) IsEmpty() bool {
	return u.CarName == nil && u.Days == nil && u.RentPerDay == nil && u.Status == nil
}

// BookingSummary aggregates all bookings of a single user.
type BookingSummary struct {
	UserID           int64   `json:"userId"`
	Username         string  `json:"username"`
	TotalBookings    int     `json:"totalBookings"`
	TotalAmountSpent float64 `json:"totalAmountSpent"`
}

// NewBookingSummary computes the aggregate over bookings.
func NewBookingSummary(userID int64, username string, bookings []Booking) BookingSummary {
	summary := BookingSummary{
		UserID:        userID,
		Username:      username,
		TotalBookings: len(bookings),
	}
	for _, b := range bookings {
		summary.TotalAmountSpent += b.TotalCost()
	}
	return summary
}
