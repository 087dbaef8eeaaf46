// Package media implements the standalone media views: per-listing media,
// single-item lookup and the size/type catalogues.
package media

import (
	"context"
	"fmt"

	"github.com/maplecrest/listings-api/internal/domain"
	"github.com/maplecrest/listings-api/internal/domain/listing"
	dommedia "github.com/maplecrest/listings-api/internal/domain/media"
)

// Repository is the storage contract for the media tables.
type Repository interface {
	ByListing(ctx context.Context, cat listing.Category, listingKey string, size, mediaType *string, limit int) ([]dommedia.Item, error)
	ByKey(ctx context.Context, mediaKey string) (*dommedia.Item, error)
	DistinctSizes(ctx context.Context, cat *listing.Category) ([]string, error)
	DistinctTypes(ctx context.Context, cat *listing.Category) ([]string, error)
}

// ListingChecker reports whether a listing exists and in which category.
type ListingChecker interface {
	Exists(ctx context.Context, listingKey string) (bool, *listing.Category, error)
}

// Service answers media queries.
type Service struct {
	repo     Repository
	listings ListingChecker
}

// New creates a media service.
func New(repo Repository, listings ListingChecker) *Service {
	return &Service{repo: repo, listings: listings}
}

// ByListing returns a listing's media in display order, optionally
// filtered by size and type. An unknown listing key is a not-found
// condition, not an empty list.
func (s *Service) ByListing(ctx context.Context, listingKey string, size, mediaType *string, limit int) ([]dommedia.Item, error) {
	ok, cat, err := s.listings.Exists(ctx, listingKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("listing %q: %w", listingKey, domain.ErrListingNotFound)
	}

	items, err := s.repo.ByListing(ctx, *cat, listingKey, size, mediaType, limit)
	if err != nil {
		return nil, fmt.Errorf("media for %q: %w", listingKey, err)
	}
	dommedia.Rank(items)
	return items, nil
}

// ByKey returns a single media item, searching both media tables.
func (s *Service) ByKey(ctx context.Context, mediaKey string) (*dommedia.Item, error) {
	return s.repo.ByKey(ctx, mediaKey)
}

// Sizes returns the image size descriptions present in the media tables.
func (s *Service) Sizes(ctx context.Context, cat *listing.Category) ([]string, error) {
	return s.repo.DistinctSizes(ctx, cat)
}

// Types returns the media types present in the media tables.
func (s *Service) Types(ctx context.Context, cat *listing.Category) ([]string, error) {
	return s.repo.DistinctTypes(ctx, cat)
}
