// Package featured implements the broker-office views: featured listings,
// office info and the active-office directory.
package featured

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/maplecrest/listings-api/internal/domain"
	"github.com/maplecrest/listings-api/internal/domain/listing"
	"github.com/maplecrest/listings-api/internal/repository/office"
)

// ListingSource is the per-category storage contract for office listings.
type ListingSource interface {
	Category() listing.Category
	FeaturedByOffice(ctx context.Context, officeKey string, transactionType *string, limit int) ([]listing.Summary, *string, error)
}

// OfficeReader aggregates office counts out of the property tables.
type OfficeReader interface {
	CountsFor(ctx context.Context, officeKey string) (office.Counts, error)
	Active(ctx context.Context, cat *listing.Category, limit int) ([]office.Counts, error)
}

// ThumbnailResolver resolves a listing's thumbnail URL; nil means
// no thumbnail is available.
type ThumbnailResolver interface {
	Thumbnail(ctx context.Context, cat listing.Category, listingKey string) *string
}

// Result is one office's featured-listings view.
type Result struct {
	Listings   []listing.Summary
	OfficeKey  string
	OfficeName *string
}

// Service answers office-scoped queries.
type Service struct {
	residential ListingSource
	commercial  ListingSource
	offices     OfficeReader
	thumbs      ThumbnailResolver
}

// New creates a featured-listings service.
func New(residential, commercial ListingSource, offices OfficeReader, thumbs ThumbnailResolver) *Service {
	return &Service{residential: residential, commercial: commercial, offices: offices, thumbs: thumbs}
}

// Featured returns an office's active listings, residential first with
// commercial filling the remainder, newest-modified first. The office
// name comes from the first contributing row. An office with no matching
// listings is a not-found condition.
func (s *Service) Featured(ctx context.Context, officeKey string, cat *listing.Category, limit int, transactionType *string) (*Result, error) {
	var (
		items      []listing.Summary
		officeName *string
	)

	if cat == nil || *cat == listing.Residential {
		res, name, err := s.residential.FeaturedByOffice(ctx, officeKey, transactionType, limit)
		if err != nil {
			return nil, fmt.Errorf("featured residential: %w", err)
		}
		items = append(items, res...)
		officeName = name
	}
	if cat == nil || *cat == listing.Commercial {
		if remaining := limit - len(items); remaining > 0 {
			com, name, err := s.commercial.FeaturedByOffice(ctx, officeKey, transactionType, remaining)
			if err != nil {
				return nil, fmt.Errorf("featured commercial: %w", err)
			}
			items = append(items, com...)
			if officeName == nil {
				officeName = name
			}
		}
	}

	if len(items) == 0 {
		return nil, fmt.Errorf("office %q: %w", officeKey, domain.ErrOfficeNotFound)
	}

	sort.SliceStable(items, func(a, b int) bool {
		ta, tb := modTime(items[a]), modTime(items[b])
		if !ta.Equal(tb) {
			return ta.After(tb)
		}
		return items[a].ListingKey < items[b].ListingKey
	})
	if len(items) > limit {
		items = items[:limit]
	}
	for i := range items {
		items[i].ThumbnailURL = s.thumbs.Thumbnail(ctx, items[i].Category, items[i].ListingKey)
	}

	return &Result{Listings: items, OfficeKey: officeKey, OfficeName: officeName}, nil
}

// OfficeInfo returns one office's name and per-category active counts.
// An office with no active listings is a not-found condition.
func (s *Service) OfficeInfo(ctx context.Context, officeKey string) (office.Counts, error) {
	counts, err := s.offices.CountsFor(ctx, officeKey)
	if err != nil {
		return office.Counts{}, err
	}
	if counts.Total() == 0 {
		return office.Counts{}, fmt.Errorf("office %q: %w", officeKey, domain.ErrOfficeNotFound)
	}
	return counts, nil
}

// ActiveOffices returns offices with active listings, busiest first.
func (s *Service) ActiveOffices(ctx context.Context, cat *listing.Category, limit int) ([]office.Counts, error) {
	return s.offices.Active(ctx, cat, limit)
}

func modTime(s listing.Summary) time.Time {
	if s.ModificationTimestamp == nil {
		return time.Time{}
	}
	return *s.ModificationTimestamp
}
