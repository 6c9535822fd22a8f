package database

import (
	"context"
	"errors"

	"github.com/travelhub/travel-booking-backend/internal/models"
)

// ErrNotFound is returned when a requested document does not exist
var ErrNotFound = errors.New("not found")

const (
	// DefaultListLimit caps every listing and search result set
	DefaultListLimit = 20
	// MaxListLimit is the largest caller-supplied destination listing limit
	MaxListLimit = 100
)

// DestinationStore defines storage operations for destinations
type DestinationStore interface {
	Create(ctx context.Context, destination *models.Destination) error
	GetByID(ctx context.Context, id string) (*models.Destination, error)
	List(ctx context.Context, filter DestinationFilter, limit int) ([]models.Destination, error)
	Search(ctx context.Context, filter SearchFilter) ([]models.Destination, error)
	Count(ctx context.Context) (int64, error)
}

// HotelStore defines storage operations for hotels
type HotelStore interface {
	Create(ctx context.Context, hotel *models.Hotel) error
	GetByID(ctx context.Context, id string) (*models.Hotel, error)
	List(ctx context.Context, filter HotelFilter) ([]models.Hotel, error)
}

// BookingStore defines storage operations for bookings
type BookingStore interface {
	Create(ctx context.Context, booking *models.Booking) error
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	List(ctx context.Context, filter BookingFilter) ([]models.Booking, error)
}

// normalizeLimit clamps a caller-supplied limit to [1, MaxListLimit]
func normalizeLimit(limit int) int {
	if limit < 1 {
		return DefaultListLimit
	}
	if limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}
