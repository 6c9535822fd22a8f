package database

import (
	"regexp"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/travelhub/travel-booking-backend/internal/models"
)

// DestinationFilter restricts a destination listing
type DestinationFilter struct {
	Type *models.DestinationType
}

func (f DestinationFilter) toBSON() bson.M {
	query := bson.M{}
	if f.Type != nil {
		query["type"] = *f.Type
	}
	return query
}

func (f DestinationFilter) matches(d *models.Destination) bool {
	return f.Type == nil || d.Type == *f.Type
}

// SearchFilter restricts a destination search. A non-empty query matches,
// case-insensitively, any of name, country or description; the type and
// rating restrictions are combined with it conjunctively.
type SearchFilter struct {
	Query     string
	Type      *models.DestinationType
	MinRating *float64
}

func (f SearchFilter) toBSON() bson.M {
	query := bson.M{}

	if f.Query != "" {
		// QuoteMeta keeps the match a plain substring test even when the
		// query contains regex metacharacters
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(f.Query), Options: "i"}
		query["$or"] = bson.A{
			bson.M{"name": pattern},
			bson.M{"country": pattern},
			bson.M{"description": pattern},
		}
	}

	if f.Type != nil {
		query["type"] = *f.Type
	}

	if f.MinRating != nil {
		query["rating"] = bson.M{"$gte": *f.MinRating}
	}

	return query
}

func (f SearchFilter) matches(d *models.Destination) bool {
	if f.Query != "" {
		needle := strings.ToLower(f.Query)
		if !strings.Contains(strings.ToLower(d.Name), needle) &&
			!strings.Contains(strings.ToLower(d.Country), needle) &&
			!strings.Contains(strings.ToLower(d.Description), needle) {
			return false
		}
	}
	if f.Type != nil && d.Type != *f.Type {
		return false
	}
	if f.MinRating != nil && d.Rating < *f.MinRating {
		return false
	}
	return true
}

// HotelFilter restricts a hotel listing
type HotelFilter struct {
	DestinationID string
}

func (f HotelFilter) toBSON() bson.M {
	query := bson.M{}
	if f.DestinationID != "" {
		query["destination_id"] = f.DestinationID
	}
	return query
}

func (f HotelFilter) matches(h *models.Hotel) bool {
	return f.DestinationID == "" || h.DestinationID == f.DestinationID
}

// BookingFilter restricts a booking listing
type BookingFilter struct {
	UserEmail string
}

func (f BookingFilter) toBSON() bson.M {
	query := bson.M{}
	if f.UserEmail != "" {
		query["user_email"] = f.UserEmail
	}
	return query
}

func (f BookingFilter) matches(b *models.Booking) bool {
	return f.UserEmail == "" || b.UserEmail == f.UserEmail
}
