package database

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/travelhub/travel-booking-backend/internal/models"
)

func seedMemoryDestinations(t *testing.T, store *MemoryDestinationStore) {
	t.Helper()
	ctx := context.Background()
	for i := range destinationsFixture {
		d := destinationsFixture[i]
		require.NoError(t, store.Create(ctx, &d))
	}
}

var destinationsFixture = []models.Destination{
	{
		ID:          "dest-bali",
		Name:        "Bali",
		Country:     "Indonesia",
		Description: "Tropical paradise with beautiful beaches, temples, and rice terraces",
		Type:        models.DestinationTypeBeach,
		Rating:      4.7,
	},
	{
		ID:          "dest-alps",
		Name:        "Swiss Alps",
		Country:     "Switzerland",
		Description: "Breathtaking mountain scenery, perfect for skiing and hiking",
		Type:        models.DestinationTypeMountain,
		Rating:      4.9,
	},
	{
		ID:          "dest-paris",
		Name:        "Paris",
		Country:     "France",
		Description: "The City of Light, famous for its art, fashion, gastronomy and culture",
		Type:        models.DestinationTypeCity,
		Rating:      4.8,
	},
}

func TestMemoryDestinationStore(t *testing.T) {
	ctx := context.Background()

	t.Run("GetByID", func(t *testing.T) {
		store := NewMemoryDestinationStore()
		seedMemoryDestinations(t, store)

		destination, err := store.GetByID(ctx, "dest-bali")
		require.NoError(t, err)
		assert.Equal(t, "Bali", destination.Name)

		_, err = store.GetByID(ctx, "missing")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("List Honors Limit", func(t *testing.T) {
		store := NewMemoryDestinationStore()
		seedMemoryDestinations(t, store)

		destinations, err := store.List(ctx, DestinationFilter{}, 1)
		require.NoError(t, err)
		assert.Len(t, destinations, 1)
	})

	t.Run("List Filters By Type", func(t *testing.T) {
		store := NewMemoryDestinationStore()
		seedMemoryDestinations(t, store)

		destinations, err := store.List(ctx, DestinationFilter{Type: destinationTypePtr(models.DestinationTypeBeach)}, 20)
		require.NoError(t, err)
		require.Len(t, destinations, 1)
		assert.Equal(t, "Bali", destinations[0].Name)
	})

	t.Run("List Caps Oversized Result Sets", func(t *testing.T) {
		store := NewMemoryDestinationStore()
		for i := 0; i < 30; i++ {
			d := models.Destination{ID: fmt.Sprintf("dest-%d", i), Name: "X", Type: models.DestinationTypeCity}
			require.NoError(t, store.Create(ctx, &d))
		}

		destinations, err := store.List(ctx, DestinationFilter{}, 0)
		require.NoError(t, err)
		assert.Len(t, destinations, DefaultListLimit)
	})

	t.Run("Search Beach Includes Bali Excludes Alps", func(t *testing.T) {
		store := NewMemoryDestinationStore()
		seedMemoryDestinations(t, store)

		results, err := store.Search(ctx, SearchFilter{Query: "beach"})
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "Bali", results[0].Name)
	})

	t.Run("Search Empty Query With Mountain Type", func(t *testing.T) {
		store := NewMemoryDestinationStore()
		seedMemoryDestinations(t, store)

		results, err := store.Search(ctx, SearchFilter{Type: destinationTypePtr(models.DestinationTypeMountain)})
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "Swiss Alps", results[0].Name)
	})

	t.Run("Count", func(t *testing.T) {
		store := NewMemoryDestinationStore()
		seedMemoryDestinations(t, store)

		count, err := store.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(3), count)
	})
}

func TestMemoryHotelStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryHotelStore()

	hotels := []models.Hotel{
		{ID: "hotel-1", Name: "Seaside Resort", DestinationID: "dest-bali"},
		{ID: "hotel-2", Name: "Alpine Lodge", DestinationID: "dest-alps"},
	}
	for i := range hotels {
		require.NoError(t, store.Create(ctx, &hotels[i]))
	}

	t.Run("List All", func(t *testing.T) {
		listed, err := store.List(ctx, HotelFilter{})
		require.NoError(t, err)
		assert.Len(t, listed, 2)
	})

	t.Run("List By Destination", func(t *testing.T) {
		listed, err := store.List(ctx, HotelFilter{DestinationID: "dest-bali"})
		require.NoError(t, err)
		require.Len(t, listed, 1)
		assert.Equal(t, "Seaside Resort", listed[0].Name)
	})

	t.Run("GetByID Missing", func(t *testing.T) {
		_, err := store.GetByID(ctx, "missing")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestMemoryBookingStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryBookingStore()

	bookings := []models.Booking{
		{ID: "booking-1", UserEmail: "a@example.com", CheckIn: models.NewDate(2025, time.March, 1), CheckOut: models.NewDate(2025, time.March, 8)},
		{ID: "booking-2", UserEmail: "b@example.com", CheckIn: models.NewDate(2025, time.April, 1), CheckOut: models.NewDate(2025, time.April, 3)},
	}
	for i := range bookings {
		require.NoError(t, store.Create(ctx, &bookings[i]))
	}

	t.Run("List By User Email", func(t *testing.T) {
		listed, err := store.List(ctx, BookingFilter{UserEmail: "a@example.com"})
		require.NoError(t, err)
		require.Len(t, listed, 1)
		assert.Equal(t, "booking-1", listed[0].ID)
	})

	t.Run("List Without Filter Returns All", func(t *testing.T) {
		listed, err := store.List(ctx, BookingFilter{})
		require.NoError(t, err)
		assert.Len(t, listed, 2)
	})

	t.Run("GetByID", func(t *testing.T) {
		booking, err := store.GetByID(ctx, "booking-2")
		require.NoError(t, err)
		assert.Equal(t, "b@example.com", booking.UserEmail)
	})
}

func TestSeedDestinations(t *testing.T) {
	ctx := context.Background()
	logger := testLogger()

	t.Run("Seeds Empty Store", func(t *testing.T) {
		store := NewMemoryDestinationStore()
		require.NoError(t, SeedDestinations(ctx, store, logger))

		count, err := store.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(6), count)

		destinations, err := store.List(ctx, DestinationFilter{}, 10)
		require.NoError(t, err)
		names := make([]string, 0, len(destinations))
		for _, d := range destinations {
			names = append(names, d.Name)
			assert.NotEmpty(t, d.ID)
			assert.True(t, d.Type.IsValid())
		}
		assert.Equal(t, []string{"Paris", "Bali", "Swiss Alps", "New York City", "Dubai Desert", "Maldives"}, names)
	})

	t.Run("Leaves Populated Store Untouched", func(t *testing.T) {
		store := NewMemoryDestinationStore()
		seedMemoryDestinations(t, store)

		require.NoError(t, SeedDestinations(ctx, store, logger))

		count, err := store.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(3), count)
	})
}
