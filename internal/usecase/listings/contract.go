package listings

import (
	"context"

	"github.com/maplecrest/listings-api/internal/domain/listing"
	"github.com/maplecrest/listings-api/internal/domain/media"
)

// Repository is the per-category storage contract for single-listing reads.
type Repository interface {
	Category() listing.Category
	GetByKey(ctx context.Context, key string) (*listing.Detail, error)
	Exists(ctx context.Context, key string) (bool, error)
	Similar(ctx context.Context, base *listing.Detail, limit int) ([]listing.Summary, error)
}

// MediaReader fetches media attached to a listing.
type MediaReader interface {
	ByListing(ctx context.Context, cat listing.Category, listingKey string, size, mediaType *string, limit int) ([]media.Item, error)
}

// ThumbnailResolver resolves a listing's thumbnail URL; nil means
// no thumbnail is available.
type ThumbnailResolver interface {
	Thumbnail(ctx context.Context, cat listing.Category, listingKey string) *string
}
