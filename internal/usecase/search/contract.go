package search

import (
	"context"

	"github.com/maplecrest/listings-api/internal/domain/listing"
	domsearch "github.com/maplecrest/listings-api/internal/domain/search"
)

// Repository is the per-category storage contract for search queries.
// The service composes one repository per property table.
type Repository interface {
	Category() listing.Category
	Count(ctx context.Context, f domsearch.Filters) (int, error)
	Page(ctx context.Context, f domsearch.Filters, sort domsearch.Sort, offset, limit int) ([]listing.Summary, error)
	MapPage(ctx context.Context, f domsearch.Filters, limit int) ([]listing.Summary, error)
	DistinctCities(ctx context.Context, q string, limit int) ([]string, error)
	DistinctSubtypes(ctx context.Context) ([]string, error)
}

// ThumbnailResolver resolves a listing's thumbnail URL; nil means
// no thumbnail is available.
type ThumbnailResolver interface {
	Thumbnail(ctx context.Context, cat listing.Category, listingKey string) *string
}
