package models

// SearchRequest represents a destination search.
// MaxPrice is accepted for API compatibility but is not applied to the
// query; price-tier matching has never been implemented.
type SearchRequest struct {
	Query           string           `json:"query"`
	DestinationType *DestinationType `json:"destination_type,omitempty"`
	MinRating       *float64         `json:"min_rating,omitempty"`
	MaxPrice        *string          `json:"max_price,omitempty"`
}

// Validate validates the search request
func (r *SearchRequest) Validate() error {
	if r.DestinationType != nil && !r.DestinationType.IsValid() {
		return newValidationError("destination_type", "must be one of: beach, mountain, city, adventure, cultural, nature")
	}
	if r.MinRating != nil && (*r.MinRating < 0 || *r.MinRating > 5) {
		return newValidationError("min_rating", "must be between 0 and 5")
	}
	return nil
}
