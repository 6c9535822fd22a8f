package database

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/travelhub/travel-booking-backend/internal/models"
)

// SeedDestinations inserts the sample destination set when the collection is
// empty. It runs once at startup; a non-empty collection is left untouched.
func SeedDestinations(ctx context.Context, store DestinationStore, logger *logrus.Logger) error {
	count, err := store.Count(ctx)
	if err != nil {
		return fmt.Errorf("counting destinations: %w", err)
	}
	if count > 0 {
		return nil
	}

	destinations := sampleDestinations()
	for i := range destinations {
		if err := store.Create(ctx, &destinations[i]); err != nil {
			return fmt.Errorf("seeding destination %q: %w", destinations[i].Name, err)
		}
	}

	logger.Infof("Seeded %d sample destinations", len(destinations))
	return nil
}

func sampleDestinations() []models.Destination {
	now := time.Now().UTC()
	return []models.Destination{
		{
			ID:                uuid.NewString(),
			Name:              "Paris",
			Country:           "France",
			Description:       "The City of Light, famous for its art, fashion, gastronomy and culture",
			Type:              models.DestinationTypeCity,
			PriceRange:        "$$$",
			Rating:            4.8,
			ImageURL:          "https://images.unsplash.com/photo-1579656450812-5b1da79e2474?crop=entropy&cs=srgb&fm=jpg&ixid=M3w3NTY2NzZ8MHwxfHNlYXJjaHwzfHx0cmF2ZWwlMjBkZXN0aW5hdGlvbnN8ZW58MHx8fGJsdWV8MTc1MzQyMjI1MXww&ixlib=rb-4.1.0&q=85",
			Latitude:          48.8566,
			Longitude:         2.3522,
			PopularActivities: []string{"Visit Eiffel Tower", "Louvre Museum", "Seine River Cruise"},
			BestMonths:        []string{"May", "June", "September", "October"},
			CreatedAt:         now,
		},
		{
			ID:                uuid.NewString(),
			Name:              "Bali",
			Country:           "Indonesia",
			Description:       "Tropical paradise with beautiful beaches, temples, and rice terraces",
			Type:              models.DestinationTypeBeach,
			PriceRange:        "$$",
			Rating:            4.7,
			ImageURL:          "https://images.unsplash.com/photo-1550399504-8953e1a6ac87?crop=entropy&cs=srgb&fm=jpg&ixid=M3w3NDQ2Mzl8MHwxfHNlYXJjaHwyfHx2YWNhdGlvbnxlbnwwfHx8Ymx1ZXwxNzUzNDIyMjU5fDA&ixlib=rb-4.1.0&q=85",
			Latitude:          -8.3405,
			Longitude:         115.0920,
			PopularActivities: []string{"Temple hopping", "Beach relaxation", "Rice terrace tours"},
			BestMonths:        []string{"April", "May", "June", "July", "August", "September"},
			CreatedAt:         now,
		},
		{
			ID:                uuid.NewString(),
			Name:              "Swiss Alps",
			Country:           "Switzerland",
			Description:       "Breathtaking mountain scenery, perfect for skiing and hiking",
			Type:              models.DestinationTypeMountain,
			PriceRange:        "$$$$",
			Rating:            4.9,
			ImageURL:          "https://images.unsplash.com/photo-1511188873902-bf5b1afe2142?crop=entropy&cs=srgb&fm=jpg&ixid=M3w3NTY2NzZ8MHwxfHNlYXJjaHwyfHx0cmF2ZWwlMjBkZXN0aW5hdGlvbnN8ZW58MHx8fGJsdWV8MTc1MzQyMjI1MXww&ixlib=rb-4.1.0&q=85",
			Latitude:          46.5197,
			Longitude:         7.4815,
			PopularActivities: []string{"Skiing", "Hiking", "Mountain railways"},
			BestMonths:        []string{"December", "January", "February", "July", "August"},
			CreatedAt:         now,
		},
		{
			ID:                uuid.NewString(),
			Name:              "New York City",
			Country:           "USA",
			Description:       "The city that never sleeps, iconic skyline and endless attractions",
			Type:              models.DestinationTypeCity,
			PriceRange:        "$$$",
			Rating:            4.6,
			ImageURL:          "https://images.unsplash.com/photo-1605130284535-11dd9eedc58a?crop=entropy&cs=srgb&fm=jpg&ixid=M3w3NTY2NzZ8MHwxfHNlYXJjaHwxfHx0cmF2ZWwlMjBkZXN0aW5hdGlvbnN8ZW58MHx8fGJsdWV8MTc1MzQyMjI1MXww&ixlib=rb-4.1.0&q=85",
			Latitude:          40.7128,
			Longitude:         -74.0060,
			PopularActivities: []string{"Statue of Liberty", "Central Park", "Broadway Shows"},
			BestMonths:        []string{"April", "May", "September", "October"},
			CreatedAt:         now,
		},
		{
			ID:                uuid.NewString(),
			Name:              "Dubai Desert",
			Country:           "UAE",
			Description:       "Luxury desert experience with modern architecture and traditional culture",
			Type:              models.DestinationTypeAdventure,
			PriceRange:        "$$$",
			Rating:            4.5,
			ImageURL:          "https://images.unsplash.com/photo-1682686580922-2e594f8bdaa7?crop=entropy&cs=srgb&fm=jpg&ixid=M3w3NDQ2Mzl8MXwxfHNlYXJjaHwxfHx2YWNhdGlvbnxlbnwwfHx8Ymx1ZXwxNzUzNDIyMjU5fDA&ixlib=rb-4.1.0&q=85",
			Latitude:          25.2048,
			Longitude:         55.2708,
			PopularActivities: []string{"Desert safari", "Camel riding", "Luxury shopping"},
			BestMonths:        []string{"November", "December", "January", "February", "March"},
			CreatedAt:         now,
		},
		{
			ID:                uuid.NewString(),
			Name:              "Maldives",
			Country:           "Maldives",
			Description:       "Tropical island paradise with crystal clear waters and overwater bungalows",
			Type:              models.DestinationTypeBeach,
			PriceRange:        "$$$$",
			Rating:            4.9,
			ImageURL:          "https://images.unsplash.com/photo-1501426026826-31c667bdf23d?crop=entropy&cs=srgb&fm=jpg&ixid=M3w3NDQ2Mzl8MHwxfHNlYXJjaHwzfHx2YWNhdGlvbnxlbnwwfHx8Ymx1ZXwxNzUzNDIyMjU5fDA&ixlib=rb-4.1.0&q=85",
			Latitude:          3.2028,
			Longitude:         73.2207,
			PopularActivities: []string{"Diving", "Snorkeling", "Spa treatments"},
			BestMonths:        []string{"November", "December", "January", "February", "March", "April"},
			CreatedAt:         now,
		},
	}
}
