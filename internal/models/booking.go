package models

import (
	"time"

	"github.com/google/uuid"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// IsValid reports whether the value is a recognized booking status
func (s BookingStatus) IsValid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCancelled:
		return true
	}
	return false
}

// Booking represents a reservation referencing a destination and optionally a hotel
type Booking struct {
	ID              string        `json:"id"`
	UserName        string        `json:"user_name"`
	UserEmail       string        `json:"user_email"`
	DestinationID   string        `json:"destination_id"`
	HotelID         *string       `json:"hotel_id"`
	CheckIn         Date          `json:"check_in"`
	CheckOut        Date          `json:"check_out"`
	Guests          int           `json:"guests"`
	TotalPrice      float64       `json:"total_price"`
	Status          BookingStatus `json:"status"`
	SpecialRequests *string       `json:"special_requests"`
	CreatedAt       time.Time     `json:"created_at"`
}

// CreateBookingRequest represents the request to create a booking.
// Status cannot be supplied by the client; every booking starts pending.
type CreateBookingRequest struct {
	UserName        string   `json:"user_name"`
	UserEmail       string   `json:"user_email"`
	DestinationID   string   `json:"destination_id"`
	HotelID         *string  `json:"hotel_id"`
	CheckIn         Date     `json:"check_in"`
	CheckOut        Date     `json:"check_out"`
	Guests          *int     `json:"guests"`
	TotalPrice      *float64 `json:"total_price"`
	SpecialRequests *string  `json:"special_requests"`
}

// Validate validates the create booking request
func (r *CreateBookingRequest) Validate() error {
	if r.UserName == "" {
		return newValidationError("user_name", "is required")
	}
	if r.UserEmail == "" {
		return newValidationError("user_email", "is required")
	}
	if r.DestinationID == "" {
		return newValidationError("destination_id", "is required")
	}
	if r.HotelID != nil && *r.HotelID == "" {
		return newValidationError("hotel_id", "must not be empty when provided")
	}
	if r.CheckIn.IsZero() {
		return newValidationError("check_in", "is required")
	}
	if r.CheckOut.IsZero() {
		return newValidationError("check_out", "is required")
	}
	if r.Guests == nil {
		return newValidationError("guests", "is required")
	}
	if r.TotalPrice == nil {
		return newValidationError("total_price", "is required")
	}
	return nil
}

// NewBooking builds a canonical booking from a validated request.
// Reference resolution is the caller's responsibility.
func NewBooking(req *CreateBookingRequest) *Booking {
	return &Booking{
		ID:              uuid.NewString(),
		UserName:        req.UserName,
		UserEmail:       req.UserEmail,
		DestinationID:   req.DestinationID,
		HotelID:         req.HotelID,
		CheckIn:         req.CheckIn,
		CheckOut:        req.CheckOut,
		Guests:          *req.Guests,
		TotalPrice:      *req.TotalPrice,
		Status:          BookingStatusPending,
		SpecialRequests: req.SpecialRequests,
		CreatedAt:       time.Now().UTC(),
	}
}
