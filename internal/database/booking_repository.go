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

// bookingDocument is the stored form of a booking. Check-in and check-out
// are kept as ISO-8601 strings and reconstructed on read.
type bookingDocument struct {
	ID              string    `bson:"id"`
	UserName        string    `bson:"user_name"`
	UserEmail       string    `bson:"user_email"`
	DestinationID   string    `bson:"destination_id"`
	HotelID         *string   `bson:"hotel_id"`
	CheckIn         string    `bson:"check_in"`
	CheckOut        string    `bson:"check_out"`
	Guests          int       `bson:"guests"`
	TotalPrice      float64   `bson:"total_price"`
	Status          string    `bson:"status"`
	SpecialRequests *string   `bson:"special_requests"`
	CreatedAt       time.Time `bson:"created_at"`
}

func newBookingDocument(b *models.Booking) *bookingDocument {
	return &bookingDocument{
		ID:              b.ID,
		UserName:        b.UserName,
		UserEmail:       b.UserEmail,
		DestinationID:   b.DestinationID,
		HotelID:         b.HotelID,
		CheckIn:         b.CheckIn.String(),
		CheckOut:        b.CheckOut.String(),
		Guests:          b.Guests,
		TotalPrice:      b.TotalPrice,
		Status:          string(b.Status),
		SpecialRequests: b.SpecialRequests,
		CreatedAt:       b.CreatedAt,
	}
}

func (d *bookingDocument) toModel() (*models.Booking, error) {
	checkIn, err := models.ParseDate(d.CheckIn)
	if err != nil {
		return nil, fmt.Errorf("stored check_in: %w", err)
	}
	checkOut, err := models.ParseDate(d.CheckOut)
	if err != nil {
		return nil, fmt.Errorf("stored check_out: %w", err)
	}

	return &models.Booking{
		ID:              d.ID,
		UserName:        d.UserName,
		UserEmail:       d.UserEmail,
		DestinationID:   d.DestinationID,
		HotelID:         d.HotelID,
		CheckIn:         checkIn,
		CheckOut:        checkOut,
		Guests:          d.Guests,
		TotalPrice:      d.TotalPrice,
		Status:          models.BookingStatus(d.Status),
		SpecialRequests: d.SpecialRequests,
		CreatedAt:       d.CreatedAt,
	}, nil
}

// BookingRepository handles document-store operations for the bookings collection
type BookingRepository struct {
	collection *mongo.Collection
}

// NewBookingRepository creates a new BookingRepository
func NewBookingRepository(db *mongo.Database) *BookingRepository {
	return &BookingRepository{collection: db.Collection("bookings")}
}

// Create persists a booking with its date fields serialized to strings
func (r *BookingRepository) Create(ctx context.Context, booking *models.Booking) error {
	if _, err := r.collection.InsertOne(ctx, newBookingDocument(booking)); err != nil {
		return fmt.Errorf("inserting booking: %w", err)
	}
	return nil
}

// GetByID retrieves a booking by its identifier
func (r *BookingRepository) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	var doc bookingDocument
	err := r.collection.FindOne(ctx, bson.M{"id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("finding booking: %w", err)
	}
	return doc.toModel()
}

// List retrieves bookings matching the filter
func (r *BookingRepository) List(ctx context.Context, filter BookingFilter) ([]models.Booking, error) {
	opts := options.Find().SetLimit(DefaultListLimit)
	cursor, err := r.collection.Find(ctx, filter.toBSON(), opts)
	if err != nil {
		return nil, fmt.Errorf("finding bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []bookingDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decoding bookings: %w", err)
	}

	bookings := make([]models.Booking, 0, len(docs))
	for i := range docs {
		booking, err := docs[i].toModel()
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, *booking)
	}
	return bookings, nil
}
