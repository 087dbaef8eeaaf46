package search

import (
	"fmt"

	"github.com/maplecrest/listings-api/internal/domain"
	"github.com/maplecrest/listings-api/internal/domain/listing"
)

// Filters is the combined search predicate for one query. Every field is
// optional; nil means "no constraint". The active-status restriction is not
// part of Filters: repositories always apply it.
type Filters struct {
	TransactionType *string           `json:"transaction_type"`
	PropertyType    *listing.Category `json:"property_type"`
	PropertySubType *string           `json:"property_sub_type"`
	MinPrice        *float64          `json:"min_price"`
	MaxPrice        *float64          `json:"max_price"`
	Bedrooms        *int              `json:"bedrooms"`
	Bathrooms       *int              `json:"bathrooms"`
	CityRegion      *string           `json:"city_region"`
	CountyOrParish  *string           `json:"county_or_parish"`

	// Geographic bounding box; effective only when all four are present.
	NELat *float64 `json:"ne_lat"`
	NELng *float64 `json:"ne_lng"`
	SWLat *float64 `json:"sw_lat"`
	SWLng *float64 `json:"sw_lng"`
}

// HasBounds reports whether all four bounding-box components are present.
func (f Filters) HasBounds() bool {
	return f.NELat != nil && f.NELng != nil && f.SWLat != nil && f.SWLng != nil
}

// ValidateBounds rejects a box whose northeast corner is not strictly
// greater than its southwest corner. Only meaningful when HasBounds.
func (f Filters) ValidateBounds() error {
	if !f.HasBounds() {
		return nil
	}
	if *f.NELat <= *f.SWLat || *f.NELng <= *f.SWLng {
		return fmt.Errorf("%w: northeast must be greater than southwest", domain.ErrInvalidBounds)
	}
	return nil
}

// IncludesCategory reports whether the category participates in the query:
// true when no category filter is set or when it matches.
func (f Filters) IncludesCategory(c listing.Category) bool {
	return f.PropertyType == nil || *f.PropertyType == c
}
