package database

import (
	"context"
	"sync"

	"github.com/travelhub/travel-booking-backend/internal/models"
)

// In-memory store implementations. They back the DB_BACKEND=memory mode and
// double as the repository test fixture; all filtering goes through the same
// predicate types the Mongo repositories translate to bson.

// MemoryDestinationStore keeps destinations in insertion order
type MemoryDestinationStore struct {
	mu    sync.RWMutex
	items []models.Destination
}

// NewMemoryDestinationStore creates an empty in-memory destination store
func NewMemoryDestinationStore() *MemoryDestinationStore {
	return &MemoryDestinationStore{items: []models.Destination{}}
}

// Create stores a copy of the destination
func (s *MemoryDestinationStore) Create(ctx context.Context, destination *models.Destination) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, *destination)
	return nil
}

// GetByID retrieves a destination by its identifier
func (s *MemoryDestinationStore) GetByID(ctx context.Context, id string) (*models.Destination, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.items {
		if s.items[i].ID == id {
			destination := s.items[i]
			return &destination, nil
		}
	}
	return nil, ErrNotFound
}

// List retrieves destinations matching the filter, up to limit
func (s *MemoryDestinationStore) List(ctx context.Context, filter DestinationFilter, limit int) ([]models.Destination, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	limit = normalizeLimit(limit)
	results := []models.Destination{}
	for i := range s.items {
		if len(results) == limit {
			break
		}
		if filter.matches(&s.items[i]) {
			results = append(results, s.items[i])
		}
	}
	return results, nil
}

// Search retrieves destinations matching the search predicate
func (s *MemoryDestinationStore) Search(ctx context.Context, filter SearchFilter) ([]models.Destination, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	results := []models.Destination{}
	for i := range s.items {
		if len(results) == DefaultListLimit {
			break
		}
		if filter.matches(&s.items[i]) {
			results = append(results, s.items[i])
		}
	}
	return results, nil
}

// Count returns the number of stored destinations
func (s *MemoryDestinationStore) Count(ctx context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.items)), nil
}

// MemoryHotelStore keeps hotels in insertion order
type MemoryHotelStore struct {
	mu    sync.RWMutex
	items []models.Hotel
}

// NewMemoryHotelStore creates an empty in-memory hotel store
func NewMemoryHotelStore() *MemoryHotelStore {
	return &MemoryHotelStore{items: []models.Hotel{}}
}

// Create stores a copy of the hotel
func (s *MemoryHotelStore) Create(ctx context.Context, hotel *models.Hotel) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, *hotel)
	return nil
}

// GetByID retrieves a hotel by its identifier
func (s *MemoryHotelStore) GetByID(ctx context.Context, id string) (*models.Hotel, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.items {
		if s.items[i].ID == id {
			hotel := s.items[i]
			return &hotel, nil
		}
	}
	return nil, ErrNotFound
}

// List retrieves hotels matching the filter
func (s *MemoryHotelStore) List(ctx context.Context, filter HotelFilter) ([]models.Hotel, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	results := []models.Hotel{}
	for i := range s.items {
		if len(results) == DefaultListLimit {
			break
		}
		if filter.matches(&s.items[i]) {
			results = append(results, s.items[i])
		}
	}
	return results, nil
}

// MemoryBookingStore keeps bookings in insertion order
type MemoryBookingStore struct {
	mu    sync.RWMutex
	items []models.Booking
}

// NewMemoryBookingStore creates an empty in-memory booking store
func NewMemoryBookingStore() *MemoryBookingStore {
	return &MemoryBookingStore{items: []models.Booking{}}
}

// Create stores a copy of the booking
func (s *MemoryBookingStore) Create(ctx context.Context, booking *models.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, *booking)
	return nil
}

// GetByID retrieves a booking by its identifier
func (s *MemoryBookingStore) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.items {
		if s.items[i].ID == id {
			booking := s.items[i]
			return &booking, nil
		}
	}
	return nil, ErrNotFound
}

// List retrieves bookings matching the filter
func (s *MemoryBookingStore) List(ctx context.Context, filter BookingFilter) ([]models.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	results := []models.Booking{}
	for i := range s.items {
		if len(results) == DefaultListLimit {
			break
		}
		if filter.matches(&s.items[i]) {
			results = append(results, s.items[i])
		}
	}
	return results, nil
}
