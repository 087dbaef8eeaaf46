// Package search implements the dual-table query and merge engine:
// filtered queries against the residential and commercial tables, merged
// into one paginated, consistently sorted view.
package search

import (
	"context"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/maplecrest/listings-api/internal/domain/listing"
	domsearch "github.com/maplecrest/listings-api/internal/domain/search"
)

// Service answers search, map and suggestion queries across both
// property categories.
type Service struct {
	residential Repository
	commercial  Repository
	thumbs      ThumbnailResolver
}

// New creates a search service over the two category repositories.
func New(residential, commercial Repository, thumbs ThumbnailResolver) *Service {
	return &Service{residential: residential, commercial: commercial, thumbs: thumbs}
}

// Search returns one page of listings matching the filters, plus the total
// match count across both categories. The page is assembled residential
// first: the residential table is queried at the global offset, and the
// commercial table fills whatever of the page remains. When no category
// filter is set the combined page is re-sorted with the same ordering the
// per-table queries used.
func (s *Service) Search(ctx context.Context, f domsearch.Filters, page, limit int, by domsearch.Sort) ([]listing.Summary, int, error) {
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * limit

	var resCount, comCount int
	g, gctx := errgroup.WithContext(ctx)
	if f.IncludesCategory(listing.Residential) {
		g.Go(func() error {
			var err error
			resCount, err = s.residential.Count(gctx, f)
			return err
		})
	}
	if f.IncludesCategory(listing.Commercial) {
		g.Go(func() error {
			var err error
			comCount, err = s.commercial.Count(gctx, f)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, 0, fmt.Errorf("count listings: %w", err)
	}
	total := resCount + comCount

	// The counts predict how much of the page the residential table fills,
	// so both page fetches can run in parallel.
	resLen := 0
	if f.IncludesCategory(listing.Residential) {
		resLen = min(limit, max(0, resCount-offset))
	}

	var resPage, comPage []listing.Summary
	g, gctx = errgroup.WithContext(ctx)
	if f.IncludesCategory(listing.Residential) {
		g.Go(func() error {
			var err error
			resPage, err = s.residential.Page(gctx, f, by, offset, limit)
			return err
		})
	}
	if f.IncludesCategory(listing.Commercial) && limit-resLen > 0 {
		comOffset := max(0, offset-resLen)
		comLimit := limit - resLen
		g.Go(func() error {
			var err error
			comPage, err = s.commercial.Page(gctx, f, by, comOffset, comLimit)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, 0, fmt.Errorf("page listings: %w", err)
	}

	items := append(resPage, comPage...)
	if f.PropertyType == nil {
		sortCombined(items, by)
	}
	if len(items) > limit {
		items = items[:limit]
	}
	s.attachThumbnails(ctx, items)

	return items, total, nil
}

// SearchForMap returns listings with coordinates inside the bounding box,
// up to limit. Without a complete box the result is empty. When both
// categories participate, each gets half the limit, with commercial
// absorbing any residential shortfall.
func (s *Service) SearchForMap(ctx context.Context, f domsearch.Filters, limit int) ([]listing.Summary, error) {
	if !f.HasBounds() {
		return nil, nil
	}
	if err := f.ValidateBounds(); err != nil {
		return nil, err
	}

	var items []listing.Summary
	if f.IncludesCategory(listing.Residential) {
		resLimit := limit
		if f.PropertyType == nil {
			resLimit = limit / 2
		}
		res, err := s.residential.MapPage(ctx, f, resLimit)
		if err != nil {
			return nil, fmt.Errorf("map residential: %w", err)
		}
		items = append(items, res...)
	}
	if f.IncludesCategory(listing.Commercial) {
		if remaining := limit - len(items); remaining > 0 {
			com, err := s.commercial.MapPage(ctx, f, remaining)
			if err != nil {
				return nil, fmt.Errorf("map commercial: %w", err)
			}
			items = append(items, com...)
		}
	}
	if len(items) > limit {
		items = items[:limit]
	}
	s.attachThumbnails(ctx, items)

	return items, nil
}

// CitySuggestions returns distinct active city names matching the query
// substring, merged across the participating categories, sorted.
func (s *Service) CitySuggestions(ctx context.Context, q string, cat *listing.Category, limit int) ([]string, error) {
	values := make(map[string]struct{})
	for _, repo := range s.reposFor(cat) {
		cities, err := repo.DistinctCities(ctx, q, limit)
		if err != nil {
			return nil, fmt.Errorf("city suggestions %s: %w", repo.Category(), err)
		}
		for _, c := range cities {
			values[c] = struct{}{}
		}
	}
	out := sortedKeys(values)
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// PropertySubtypes returns the distinct sub-types present on active rows
// of the participating categories, sorted.
func (s *Service) PropertySubtypes(ctx context.Context, cat *listing.Category) ([]string, error) {
	values := make(map[string]struct{})
	for _, repo := range s.reposFor(cat) {
		subtypes, err := repo.DistinctSubtypes(ctx)
		if err != nil {
			return nil, fmt.Errorf("property subtypes %s: %w", repo.Category(), err)
		}
		for _, st := range subtypes {
			values[st] = struct{}{}
		}
	}
	return sortedKeys(values), nil
}

func (s *Service) reposFor(cat *listing.Category) []Repository {
	if cat == nil {
		return []Repository{s.residential, s.commercial}
	}
	if *cat == listing.Commercial {
		return []Repository{s.commercial}
	}
	return []Repository{s.residential}
}

func (s *Service) attachThumbnails(ctx context.Context, items []listing.Summary) {
	for i := range items {
		items[i].ThumbnailURL = s.thumbs.Thumbnail(ctx, items[i].Category, items[i].ListingKey)
	}
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
