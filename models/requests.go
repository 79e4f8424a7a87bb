// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// CreateBookingRequest is the validated body of POST /bookings/.
type CreateBookingRequest struct {
	CarName    string  `json:"carName"`
	Days       int     `json:"days"`
	RentPerDay float64 `json:"rentPerDay"`
}

// Booking builds a new booking owned by userID with the initial status.
func (r CreateBookingRequest) Booking(userID int64) Booking {
	return Booking{
		UserID:     userID,
		CarName:    r.CarName,
		Days:       r.Days,
		RentPerDay: r.RentPerDay,
		Status:     BookingStatusBooked,
	}
}

// EditBookingStatusRequest is the status-only form of PUT /bookings/{id}.
type EditBookingStatusRequest struct {
	Status BookingStatus `json:"status"`
}

// EditBookingRequest is the field-edit form of PUT /bookings/{id}.
// At least one field is set after successful validation.
type EditBookingRequest struct {
	CarName    *string  `json:"carName,omitempty"`
	Days       *int     `json:"days,omitempty"`
	RentPerDay *float64 `json:"rentPerDay,omitempty"`
}

// BookingEditKind tells which form of edit a PUT body was classified as.
type BookingEditKind int

const (
	// StatusEdit changes only the booking status.
	StatusEdit BookingEditKind = iota + 1

	// FieldsEdit changes any of car name, days and rent per day.
	FieldsEdit
)

func (k BookingEditKind) String() string {
	switch k {
	case StatusEdit:
		return "status"
	case FieldsEdit:
		return "fields"
	}
	return "unknown"
}

// BookingEdit is a classified PUT /bookings/{id} body. Exactly one of
// Status and Fields is meaningful, as selected by Kind.
type BookingEdit struct {
	Kind   BookingEditKind
	Status EditBookingStatusRequest
	Fields EditBookingRequest
}

// Update converts the edit into a store-level update of booking bookingID
// scoped to userID.
func (e BookingEdit) Update(bookingID, userID int64) BookingUpdate {
	update := BookingUpdate{ID: bookingID, UserID: userID}

	switch e.Kind {
	case StatusEdit:
		status := e.Status.Status
		update.Status = &status
	case FieldsEdit:
		update.CarName = e.Fields.CarName
		update.Days = e.Fields.Days
		update.RentPerDay = e.Fields.RentPerDay
	}

	return update
}
