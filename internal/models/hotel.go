package models

import (
	"time"

	"github.com/google/uuid"
)

// Hotel represents a lodging entity tied to a destination by reference
type Hotel struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	DestinationID string    `json:"destination_id"`
	Description   string    `json:"description"`
	PricePerNight float64   `json:"price_per_night"`
	Rating        float64   `json:"rating"`
	Amenities     []string  `json:"amenities"`
	ImageURL      string    `json:"image_url"`
	Latitude      float64   `json:"latitude"`
	Longitude     float64   `json:"longitude"`
	AvailableFrom Date      `json:"available_from"`
	AvailableTo   Date      `json:"available_to"`
	CreatedAt     time.Time `json:"created_at"`
}

// CreateHotelRequest represents the request to create a hotel.
// The destination reference is not resolved at hotel creation time.
type CreateHotelRequest struct {
	Name          string   `json:"name"`
	DestinationID string   `json:"destination_id"`
	Description   string   `json:"description"`
	PricePerNight *float64 `json:"price_per_night"`
	Rating        *float64 `json:"rating"`
	Amenities     []string `json:"amenities"`
	ImageURL      string   `json:"image_url"`
	Latitude      *float64 `json:"latitude"`
	Longitude     *float64 `json:"longitude"`
	AvailableFrom Date     `json:"available_from"`
	AvailableTo   Date     `json:"available_to"`
}

// Validate validates the create hotel request
func (r *CreateHotelRequest) Validate() error {
	if r.Name == "" {
		return newValidationError("name", "is required")
	}
	if r.DestinationID == "" {
		return newValidationError("destination_id", "is required")
	}
	if r.Description == "" {
		return newValidationError("description", "is required")
	}
	if r.PricePerNight == nil {
		return newValidationError("price_per_night", "is required")
	}
	if r.Rating == nil {
		return newValidationError("rating", "is required")
	}
	if *r.Rating < 0 || *r.Rating > 5 {
		return newValidationError("rating", "must be between 0 and 5")
	}
	if r.ImageURL == "" {
		return newValidationError("image_url", "is required")
	}
	if r.Latitude == nil {
		return newValidationError("latitude", "is required")
	}
	if r.Longitude == nil {
		return newValidationError("longitude", "is required")
	}
	if r.AvailableFrom.IsZero() {
		return newValidationError("available_from", "is required")
	}
	if r.AvailableTo.IsZero() {
		return newValidationError("available_to", "is required")
	}
	return nil
}

// NewHotel builds a canonical hotel from a validated request
func NewHotel(req *CreateHotelRequest) *Hotel {
	return &Hotel{
		ID:            uuid.NewString(),
		Name:          req.Name,
		DestinationID: req.DestinationID,
		Description:   req.Description,
		PricePerNight: *req.PricePerNight,
		Rating:        *req.Rating,
		Amenities:     defaultList(req.Amenities),
		ImageURL:      req.ImageURL,
		Latitude:      *req.Latitude,
		Longitude:     *req.Longitude,
		AvailableFrom: req.AvailableFrom,
		AvailableTo:   req.AvailableTo,
		CreatedAt:     time.Now().UTC(),
	}
}
