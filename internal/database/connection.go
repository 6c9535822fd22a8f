package database

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/travelhub/travel-booking-backend/internal/config"
)

// Mongo wraps a MongoDB client and the application database
type Mongo struct {
	client *mongo.Client
	db     *mongo.Database
}

// NewConnection connects to MongoDB and verifies the connection
func NewConnection(cfg config.DatabaseConfig) (*Mongo, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("database URL is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()

	opts := options.Client().
		ApplyURI(cfg.URL).
		SetMaxPoolSize(uint64(cfg.MaxPoolSize))

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Mongo{
		client: client,
		db:     client.Database(cfg.Name),
	}, nil
}

// Database returns the application database handle
func (m *Mongo) Database() *mongo.Database {
	return m.db
}

// Close releases the underlying client connections
func (m *Mongo) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}
