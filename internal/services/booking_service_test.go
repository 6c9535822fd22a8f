package services

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/travelhub/travel-booking-backend/internal/database"
	"github.com/travelhub/travel-booking-backend/internal/models"
)

type bookingServiceFixture struct {
	destinations *database.MemoryDestinationStore
	hotels       *database.MemoryHotelStore
	bookings     *database.MemoryBookingStore
	service      *BookingService
}

func newBookingServiceFixture(t *testing.T) *bookingServiceFixture {
	t.Helper()

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	f := &bookingServiceFixture{
		destinations: database.NewMemoryDestinationStore(),
		hotels:       database.NewMemoryHotelStore(),
		bookings:     database.NewMemoryBookingStore(),
	}
	f.service = NewBookingService(f.destinations, f.hotels, f.bookings, logger)

	destination := models.Destination{ID: "dest-1", Name: "Bali", Type: models.DestinationTypeBeach}
	require.NoError(t, f.destinations.Create(context.Background(), &destination))

	hotel := models.Hotel{ID: "hotel-1", Name: "Seaside Resort", DestinationID: "dest-1"}
	require.NoError(t, f.hotels.Create(context.Background(), &hotel))

	return f
}

func bookingRequest() *models.CreateBookingRequest {
	guests := 2
	totalPrice := 1250.0
	return &models.CreateBookingRequest{
		UserName:      "Jordan Reyes",
		UserEmail:     "jordan@example.com",
		DestinationID: "dest-1",
		CheckIn:       models.NewDate(2025, time.March, 1),
		CheckOut:      models.NewDate(2025, time.March, 8),
		Guests:        &guests,
		TotalPrice:    &totalPrice,
	}
}

func TestBookingServiceCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("Without Hotel", func(t *testing.T) {
		f := newBookingServiceFixture(t)

		booking, err := f.service.Create(ctx, bookingRequest())
		require.NoError(t, err)

		assert.NotEmpty(t, booking.ID)
		assert.Equal(t, models.BookingStatusPending, booking.Status)
		assert.Nil(t, booking.HotelID)

		stored, err := f.bookings.GetByID(ctx, booking.ID)
		require.NoError(t, err)
		assert.Equal(t, booking.UserEmail, stored.UserEmail)
	})

	t.Run("With Hotel", func(t *testing.T) {
		f := newBookingServiceFixture(t)

		req := bookingRequest()
		hotelID := "hotel-1"
		req.HotelID = &hotelID

		booking, err := f.service.Create(ctx, req)
		require.NoError(t, err)
		require.NotNil(t, booking.HotelID)
		assert.Equal(t, "hotel-1", *booking.HotelID)
	})

	t.Run("Unknown Destination", func(t *testing.T) {
		f := newBookingServiceFixture(t)

		req := bookingRequest()
		req.DestinationID = "missing"

		_, err := f.service.Create(ctx, req)
		require.Error(t, err)

		referenceErr, ok := err.(*ReferenceError)
		require.True(t, ok)
		assert.Equal(t, "Destination", referenceErr.Entity)
		assert.Equal(t, "Destination not found", referenceErr.Error())

		// Nothing was persisted
		bookings, listErr := f.bookings.List(ctx, database.BookingFilter{})
		require.NoError(t, listErr)
		assert.Empty(t, bookings)
	})

	t.Run("Unknown Hotel", func(t *testing.T) {
		f := newBookingServiceFixture(t)

		req := bookingRequest()
		hotelID := "missing"
		req.HotelID = &hotelID

		_, err := f.service.Create(ctx, req)
		require.Error(t, err)

		referenceErr, ok := err.(*ReferenceError)
		require.True(t, ok)
		assert.Equal(t, "Hotel", referenceErr.Entity)

		bookings, listErr := f.bookings.List(ctx, database.BookingFilter{})
		require.NoError(t, listErr)
		assert.Empty(t, bookings)
	})

	t.Run("Invalid Payload", func(t *testing.T) {
		f := newBookingServiceFixture(t)

		req := bookingRequest()
		req.UserEmail = ""

		_, err := f.service.Create(ctx, req)
		require.Error(t, err)

		validationErr, ok := err.(*models.ValidationError)
		require.True(t, ok)
		assert.Equal(t, "user_email", validationErr.Field)
	})
}

func TestBookingServiceGetAndList(t *testing.T) {
	ctx := context.Background()
	f := newBookingServiceFixture(t)

	first, err := f.service.Create(ctx, bookingRequest())
	require.NoError(t, err)

	other := bookingRequest()
	other.UserEmail = "casey@example.com"
	_, err = f.service.Create(ctx, other)
	require.NoError(t, err)

	t.Run("Get", func(t *testing.T) {
		booking, err := f.service.Get(ctx, first.ID)
		require.NoError(t, err)
		assert.Equal(t, first.ID, booking.ID)

		_, err = f.service.Get(ctx, "missing")
		assert.ErrorIs(t, err, database.ErrNotFound)
	})

	t.Run("List Scoped To Email", func(t *testing.T) {
		bookings, err := f.service.List(ctx, "casey@example.com")
		require.NoError(t, err)
		require.Len(t, bookings, 1)
		assert.Equal(t, "casey@example.com", bookings[0].UserEmail)
	})

	t.Run("List Unscoped", func(t *testing.T) {
		bookings, err := f.service.List(ctx, "")
		require.NoError(t, err)
		assert.Len(t, bookings, 2)
	})
}
