// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingStatus_IsValid(t *testing.T) {
	for _, s := range []BookingStatus{BookingStatusBooked, BookingStatusCompleted, BookingStatusCancelled} {
		assert.True(t, s.IsValid(), s)
	}
	for _, s := range []BookingStatus{"", "Booked", "returned"} {
		assert.False(t, s.IsValid(), s)
	}
}

func TestBooking_View(t *testing.T) {
	b := Booking{ID: 1, UserID: 7, CarName: "Civic", Days: 3, RentPerDay: 49.5, Status: BookingStatusBooked}

	view := b.View()
	assert.Equal(t, BookingView{ID: 1, CarName: "Civic", Days: 3, RentPerDay: 49.5, Status: BookingStatusBooked, TotalCost: 148.5}, view)

	raw, err := json.Marshal(view)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":1,"car_name":"Civic","days":3,"rent_per_day":49.5,"status":"booked","totalCost":148.5}`, string(raw))
}

func TestBookingViews_NeverNil(t *testing.T) {
	views := BookingViews(nil)
	require.NotNil(t, views)

	raw, err := json.Marshal(views)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(raw))
}

func TestNewBookingSummary(t *testing.T) {
	bookings := []Booking{
		{Days: 2, RentPerDay: 10},
		{Days: 1, RentPerDay: 25.5, Status: BookingStatusCancelled},
	}

	summary := NewBookingSummary(3, "alice", bookings)
	assert.Equal(t, int64(3), summary.UserID)
	assert.Equal(t, "alice", summary.Username)
	assert.Equal(t, 2, summary.TotalBookings)
	assert.InDelta(t, 45.5, summary.TotalAmountSpent, 1e-9)

	empty := NewBookingSummary(3, "alice", nil)
	assert.Zero(t, empty.TotalBookings)
	assert.Zero(t, empty.TotalAmountSpent)
}

func TestCreateBookingRequest_Booking(t *testing.T) {
	b := CreateBookingRequest{CarName: "Golf", Days: 4, RentPerDay: 30}.Booking(9)
	assert.Equal(t, Booking{UserID: 9, CarName: "Golf", Days: 4, RentPerDay: 30, Status: BookingStatusBooked}, b)
}

func TestBookingEdit_Update(t *testing.T) {
	days := 5

	status := BookingEdit{Kind: StatusEdit, Status: EditBookingStatusRequest{Status: BookingStatusCompleted}}.Update(1, 2)
	require.NotNil(t, status.Status)
	assert.Equal(t, BookingStatusCompleted, *status.Status)
	assert.Nil(t, status.Days)
	assert.Equal(t, int64(1), status.ID)
	assert.Equal(t, int64(2), status.UserID)

	fields := BookingEdit{Kind: FieldsEdit, Fields: EditBookingRequest{Days: &days}}.Update(1, 2)
	assert.Nil(t, fields.Status)
	assert.Equal(t, &days, fields.Days)
	assert.False(t, fields.IsEmpty())

	assert.True(t, BookingEdit{}.Update(1, 2).IsEmpty())
}

func TestBookingEditKind_String(t *testing.T) {
	assert.Equal(t, "status", StatusEdit.String())
	assert.Equal(t, "fields", FieldsEdit.String())
	assert.Equal(t, "unknown", BookingEditKind(0).String())
}

func TestTokenClaims_GetUserID(t *testing.T) {
	id, err := (&TokenClaims{UserID: "42"}).GetUserID()
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	_, err = (&TokenClaims{UserID: "4.2"}).GetUserID()
	assert.Error(t, err)
}
