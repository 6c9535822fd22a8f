package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/travelhub/travel-booking-backend/internal/database"
	"github.com/travelhub/travel-booking-backend/internal/models"
)

// ReferenceError reports a booking reference that does not resolve to a
// stored entity
type ReferenceError struct {
	Entity string // "Destination" or "Hotel"
}

func (e *ReferenceError) Error() string {
	return e.Entity + " not found"
}

// BookingService handles booking creation and retrieval. Creation resolves
// the destination and optional hotel references before any write happens.
type BookingService struct {
	destinations database.DestinationStore
	hotels       database.HotelStore
	bookings     database.BookingStore
	logger       *logrus.Logger
}

// NewBookingService creates a new BookingService
func NewBookingService(
	destinations database.DestinationStore,
	hotels database.HotelStore,
	bookings database.BookingStore,
	logger *logrus.Logger,
) *BookingService {
	return &BookingService{
		destinations: destinations,
		hotels:       hotels,
		bookings:     bookings,
		logger:       logger,
	}
}

// Create validates the request, checks its references and persists the
// booking. The reference check and the write are not atomic; this is safe
// while no delete operation exists for destinations or hotels.
func (s *BookingService) Create(ctx context.Context, req *models.CreateBookingRequest) (*models.Booking, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.destinations.GetByID(ctx, req.DestinationID); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, &ReferenceError{Entity: "Destination"}
		}
		return nil, fmt.Errorf("resolving destination: %w", err)
	}

	if req.HotelID != nil {
		if _, err := s.hotels.GetByID(ctx, *req.HotelID); err != nil {
			if errors.Is(err, database.ErrNotFound) {
				return nil, &ReferenceError{Entity: "Hotel"}
			}
			return nil, fmt.Errorf("resolving hotel: %w", err)
		}
	}

	booking := models.NewBooking(req)
	if err := s.bookings.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("creating booking: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"booking_id":     booking.ID,
		"destination_id": booking.DestinationID,
		"user_email":     booking.UserEmail,
	}).Info("Booking created")

	return booking, nil
}

// Get retrieves a booking by its identifier
func (s *BookingService) Get(ctx context.Context, id string) (*models.Booking, error) {
	return s.bookings.GetByID(ctx, id)
}

// List retrieves bookings, optionally scoped to a user email
func (s *BookingService) List(ctx context.Context, userEmail string) ([]models.Booking, error) {
	return s.bookings.List(ctx, database.BookingFilter{UserEmail: userEmail})
}
