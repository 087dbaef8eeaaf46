package search

import (
	"sort"
	"time"

	"github.com/maplecrest/listings-api/internal/domain/listing"
	domsearch "github.com/maplecrest/listings-api/internal/domain/search"
)

// sortCombined re-sorts a merged residential+commercial page with the same
// ordering the per-table queries used. Listings without a price sort as
// zero; listings without a timestamp sort as the zero time. The listing
// key is the deterministic tie-break in every order.
func sortCombined(items []listing.Summary, by domsearch.Sort) {
	sort.SliceStable(items, func(a, b int) bool {
		return less(items[a], items[b], by)
	})
}

func less(a, b listing.Summary, by domsearch.Sort) bool {
	switch by {
	case domsearch.PriceAsc:
		pa, pb := priceOrZero(a), priceOrZero(b)
		if pa != pb {
			return pa < pb
		}
	case domsearch.PriceDesc:
		pa, pb := priceOrZero(a), priceOrZero(b)
		if pa != pb {
			return pa > pb
		}
	case domsearch.Updated:
		ta, tb := timeOrZero(a.ModificationTimestamp), timeOrZero(b.ModificationTimestamp)
		if !ta.Equal(tb) {
			return ta.After(tb)
		}
	default: // Newest
		ta, tb := timeOrZero(a.OriginalEntryTimestamp), timeOrZero(b.OriginalEntryTimestamp)
		if !ta.Equal(tb) {
			return ta.After(tb)
		}
	}
	return a.ListingKey < b.ListingKey
}

func priceOrZero(s listing.Summary) float64 {
	if s.ListPrice == nil {
		return 0
	}
	return *s.ListPrice
}

func timeOrZero(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}
