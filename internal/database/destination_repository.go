package database

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/travelhub/travel-booking-backend/internal/models"
)

// DestinationRepository handles document-store operations for the destinations collection
type DestinationRepository struct {
	collection *mongo.Collection
}

// NewDestinationRepository creates a new DestinationRepository
func NewDestinationRepository(db *mongo.Database) *DestinationRepository {
	return &DestinationRepository{collection: db.Collection("destinations")}
}

// Create persists a canonical destination record
func (r *DestinationRepository) Create(ctx context.Context, destination *models.Destination) error {
	if _, err := r.collection.InsertOne(ctx, destination); err != nil {
		return fmt.Errorf("inserting destination: %w", err)
	}
	return nil
}

// GetByID retrieves a destination by its identifier
func (r *DestinationRepository) GetByID(ctx context.Context, id string) (*models.Destination, error) {
	var destination models.Destination
	err := r.collection.FindOne(ctx, bson.M{"id": id}).Decode(&destination)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("finding destination: %w", err)
	}
	return &destination, nil
}

// List retrieves destinations matching the filter, up to limit
func (r *DestinationRepository) List(ctx context.Context, filter DestinationFilter, limit int) ([]models.Destination, error) {
	return r.find(ctx, filter.toBSON(), normalizeLimit(limit))
}

// Search retrieves destinations matching the search predicate
func (r *DestinationRepository) Search(ctx context.Context, filter SearchFilter) ([]models.Destination, error) {
	return r.find(ctx, filter.toBSON(), DefaultListLimit)
}

// Count returns the number of destination documents
func (r *DestinationRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("counting destinations: %w", err)
	}
	return count, nil
}

func (r *DestinationRepository) find(ctx context.Context, query bson.M, limit int) ([]models.Destination, error) {
	opts := options.Find().SetLimit(int64(limit))
	cursor, err := r.collection.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("finding destinations: %w", err)
	}
	defer cursor.Close(ctx)

	destinations := []models.Destination{}
	if err := cursor.All(ctx, &destinations); err != nil {
		return nil, fmt.Errorf("decoding destinations: %w", err)
	}
	return destinations, nil
}
