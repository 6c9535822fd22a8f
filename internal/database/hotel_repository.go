package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/travelhub/travel-booking-backend/internal/models"
)

// hotelDocument is the stored form of a hotel. Calendar dates are kept as
// ISO-8601 strings and reconstructed on read.
type hotelDocument struct {
	ID            string    `bson:"id"`
	Name          string    `bson:"name"`
	DestinationID string    `bson:"destination_id"`
	Description   string    `bson:"description"`
	PricePerNight float64   `bson:"price_per_night"`
	Rating        float64   `bson:"rating"`
	Amenities     []string  `bson:"amenities"`
	ImageURL      string    `bson:"image_url"`
	Latitude      float64   `bson:"latitude"`
	Longitude     float64   `bson:"longitude"`
	AvailableFrom string    `bson:"available_from"`
	AvailableTo   string    `bson:"available_to"`
	CreatedAt     time.Time `bson:"created_at"`
}

func newHotelDocument(h *models.Hotel) *hotelDocument {
	return &hotelDocument{
		ID:            h.ID,
		Name:          h.Name,
		DestinationID: h.DestinationID,
		Description:   h.Description,
		PricePerNight: h.PricePerNight,
		Rating:        h.Rating,
		Amenities:     h.Amenities,
		ImageURL:      h.ImageURL,
		Latitude:      h.Latitude,
		Longitude:     h.Longitude,
		AvailableFrom: h.AvailableFrom.String(),
		AvailableTo:   h.AvailableTo.String(),
		CreatedAt:     h.CreatedAt,
	}
}

func (d *hotelDocument) toModel() (*models.Hotel, error) {
	availableFrom, err := models.ParseDate(d.AvailableFrom)
	if err != nil {
		return nil, fmt.Errorf("stored available_from: %w", err)
	}
	availableTo, err := models.ParseDate(d.AvailableTo)
	if err != nil {
		return nil, fmt.Errorf("stored available_to: %w", err)
	}

	return &models.Hotel{
		ID:            d.ID,
		Name:          d.Name,
		DestinationID: d.DestinationID,
		Description:   d.Description,
		PricePerNight: d.PricePerNight,
		Rating:        d.Rating,
		Amenities:     d.Amenities,
		ImageURL:      d.ImageURL,
		Latitude:      d.Latitude,
		Longitude:     d.Longitude,
		AvailableFrom: availableFrom,
		AvailableTo:   availableTo,
		CreatedAt:     d.CreatedAt,
	}, nil
}

// HotelRepository handles document-store operations for the hotels collection
type HotelRepository struct {
	collection *mongo.Collection
}

// NewHotelRepository creates a new HotelRepository
func NewHotelRepository(db *mongo.Database) *HotelRepository {
	return &HotelRepository{collection: db.Collection("hotels")}
}

// Create persists a hotel with its date fields serialized to strings
func (r *HotelRepository) Create(ctx context.Context, hotel *models.Hotel) error {
	if _, err := r.collection.InsertOne(ctx, newHotelDocument(hotel)); err != nil {
		return fmt.Errorf("inserting hotel: %w", err)
	}
	return nil
}

// GetByID retrieves a hotel by its identifier
func (r *HotelRepository) GetByID(ctx context.Context, id string) (*models.Hotel, error) {
	var doc hotelDocument
	err := r.collection.FindOne(ctx, bson.M{"id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("finding hotel: %w", err)
	}
	return doc.toModel()
}

// List retrieves hotels matching the filter
func (r *HotelRepository) List(ctx context.Context, filter HotelFilter) ([]models.Hotel, error) {
	opts := options.Find().SetLimit(DefaultListLimit)
	cursor, err := r.collection.Find(ctx, filter.toBSON(), opts)
	if err != nil {
		return nil, fmt.Errorf("finding hotels: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []hotelDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decoding hotels: %w", err)
	}

	hotels := make([]models.Hotel, 0, len(docs))
	for i := range docs {
		hotel, err := docs[i].toModel()
		if err != nil {
			return nil, err
		}
		hotels = append(hotels, *hotel)
	}
	return hotels, nil
}
