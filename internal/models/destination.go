package models

import (
	"time"

	"github.com/google/uuid"
)

// DestinationType categorizes a travel destination
type DestinationType string

const (
	DestinationTypeBeach     DestinationType = "beach"
	DestinationTypeMountain  DestinationType = "mountain"
	DestinationTypeCity      DestinationType = "city"
	DestinationTypeAdventure DestinationType = "adventure"
	DestinationTypeCultural  DestinationType = "cultural"
	DestinationTypeNature    DestinationType = "nature"
)

// IsValid reports whether the value is a recognized destination type
func (t DestinationType) IsValid() bool {
	switch t {
	case DestinationTypeBeach, DestinationTypeMountain, DestinationTypeCity,
		DestinationTypeAdventure, DestinationTypeCultural, DestinationTypeNature:
		return true
	}
	return false
}

// Destination represents a travel location with descriptive and geographic attributes
type Destination struct {
	ID                string          `json:"id" bson:"id"`
	Name              string          `json:"name" bson:"name"`
	Country           string          `json:"country" bson:"country"`
	Description       string          `json:"description" bson:"description"`
	Type              DestinationType `json:"type" bson:"type"`
	PriceRange        string          `json:"price_range" bson:"price_range"` // e.g., "$$", "$$$"
	Rating            float64         `json:"rating" bson:"rating"`
	ImageURL          string          `json:"image_url" bson:"image_url"`
	Latitude          float64         `json:"latitude" bson:"latitude"`
	Longitude         float64         `json:"longitude" bson:"longitude"`
	PopularActivities []string        `json:"popular_activities" bson:"popular_activities"`
	BestMonths        []string        `json:"best_months" bson:"best_months"`
	CreatedAt         time.Time       `json:"created_at" bson:"created_at"`
}

// CreateDestinationRequest represents the request to create a destination.
// Identifier and creation timestamp are never accepted from input.
type CreateDestinationRequest struct {
	Name              string          `json:"name"`
	Country           string          `json:"country"`
	Description       string          `json:"description"`
	Type              DestinationType `json:"type"`
	PriceRange        string          `json:"price_range"`
	Rating            *float64        `json:"rating"`
	ImageURL          string          `json:"image_url"`
	Latitude          *float64        `json:"latitude"`
	Longitude         *float64        `json:"longitude"`
	PopularActivities []string        `json:"popular_activities"`
	BestMonths        []string        `json:"best_months"`
}

// Validate validates the create destination request
func (r *CreateDestinationRequest) Validate() error {
	if r.Name == "" {
		return newValidationError("name", "is required")
	}
	if r.Country == "" {
		return newValidationError("country", "is required")
	}
	if r.Description == "" {
		return newValidationError("description", "is required")
	}
	if !r.Type.IsValid() {
		return newValidationError("type", "must be one of: beach, mountain, city, adventure, cultural, nature")
	}
	if r.PriceRange == "" {
		return newValidationError("price_range", "is required")
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
	return nil
}

// NewDestination builds a canonical destination from a validated request,
// assigning a server-generated identifier and creation timestamp.
func NewDestination(req *CreateDestinationRequest) *Destination {
	return &Destination{
		ID:                uuid.NewString(),
		Name:              req.Name,
		Country:           req.Country,
		Description:       req.Description,
		Type:              req.Type,
		PriceRange:        req.PriceRange,
		Rating:            *req.Rating,
		ImageURL:          req.ImageURL,
		Latitude:          *req.Latitude,
		Longitude:         *req.Longitude,
		PopularActivities: defaultList(req.PopularActivities),
		BestMonths:        defaultList(req.BestMonths),
		CreatedAt:         time.Now().UTC(),
	}
}

// defaultList normalizes an omitted list field to an empty slice
func defaultList(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
