// Package listings implements single-listing reads: detail lookup,
// similarity, existence checks and listing media.
package listings

import (
	"context"
	"errors"
	"fmt"

	"github.com/maplecrest/listings-api/internal/domain"
	"github.com/maplecrest/listings-api/internal/domain/listing"
	"github.com/maplecrest/listings-api/internal/domain/media"
)

// Service resolves individual listings across both property tables,
// residential first.
type Service struct {
	residential Repository
	commercial  Repository
	media       MediaReader
	thumbs      ThumbnailResolver
}

// New creates a listings service.
func New(residential, commercial Repository, mediaReader MediaReader, thumbs ThumbnailResolver) *Service {
	return &Service{residential: residential, commercial: commercial, media: mediaReader, thumbs: thumbs}
}

// Detail returns the full listing view plus its media, checking the
// residential table first. Returns domain.ErrListingNotFound when the key
// is in neither table.
func (s *Service) Detail(ctx context.Context, listingKey string) (*listing.Detail, []media.Item, error) {
	d, err := s.find(ctx, listingKey)
	if err != nil {
		return nil, nil, err
	}

	items, err := s.media.ByListing(ctx, d.Category, listingKey, nil, nil, 0)
	if err != nil {
		return nil, nil, fmt.Errorf("media for %q: %w", listingKey, err)
	}
	return d, items, nil
}

// Similar returns listings resembling the given one, same category only.
// Returns domain.ErrListingNotFound when the base listing is missing.
func (s *Service) Similar(ctx context.Context, listingKey string, limit int) ([]listing.Summary, error) {
	base, err := s.find(ctx, listingKey)
	if err != nil {
		return nil, err
	}

	repo := s.residential
	if base.Category == listing.Commercial {
		repo = s.commercial
	}
	items, err := repo.Similar(ctx, base, limit)
	if err != nil {
		return nil, fmt.Errorf("similar to %q: %w", listingKey, err)
	}
	for i := range items {
		items[i].ThumbnailURL = s.thumbs.Thumbnail(ctx, items[i].Category, items[i].ListingKey)
	}
	return items, nil
}

// Exists reports whether a listing key is present, and in which category.
func (s *Service) Exists(ctx context.Context, listingKey string) (bool, *listing.Category, error) {
	for _, repo := range []Repository{s.residential, s.commercial} {
		ok, err := repo.Exists(ctx, listingKey)
		if err != nil {
			return false, nil, fmt.Errorf("exists %q: %w", listingKey, err)
		}
		if ok {
			cat := repo.Category()
			return true, &cat, nil
		}
	}
	return false, nil, nil
}

// Media returns a listing's media, optionally restricted to one size.
// An unknown listing key is a not-found condition, not an empty list.
func (s *Service) Media(ctx context.Context, listingKey string, size *string) ([]media.Item, error) {
	ok, cat, err := s.Exists(ctx, listingKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("listing %q: %w", listingKey, domain.ErrListingNotFound)
	}

	items, err := s.media.ByListing(ctx, *cat, listingKey, size, nil, 0)
	if err != nil {
		return nil, fmt.Errorf("media for %q: %w", listingKey, err)
	}
	return items, nil
}

func (s *Service) find(ctx context.Context, listingKey string) (*listing.Detail, error) {
	d, err := s.residential.GetByKey(ctx, listingKey)
	if err == nil {
		return d, nil
	}
	if !errors.Is(err, domain.ErrListingNotFound) {
		return nil, err
	}
	return s.commercial.GetByKey(ctx, listingKey)
}
