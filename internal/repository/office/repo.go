// Package office implements aggregation queries over the listing offices
// referenced by the property tables.
package office

import (
	"context"
	"fmt"
	"sort"

	"github.com/maplecrest/listings-api/internal/domain/listing"
	"github.com/maplecrest/listings-api/internal/storage"
)

// Counts is the per-category active-listing breakdown for one office.
type Counts struct {
	OfficeKey   string  `json:"office_key"`
	OfficeName  *string `json:"office_name"`
	Residential int     `json:"residential_count"`
	Commercial  int     `json:"commercial_count"`
}

// Total returns the combined listing count across both categories.
func (c Counts) Total() int {
	return c.Residential + c.Commercial
}

// Repository aggregates office data out of the two property tables.
type Repository struct {
	db storage.Querier
}

func NewRepository(db storage.Querier) *Repository {
	return &Repository{db: db}
}

func tableFor(cat listing.Category) string {
	if cat == listing.Commercial {
		return "commercial_properties"
	}
	return "residential_properties"
}

// CountsFor returns the active-listing counts for one office. A zero total
// means the office has no active listings; callers decide whether that is
// a not-found condition.
func (r *Repository) CountsFor(ctx context.Context, officeKey string) (Counts, error) {
	out := Counts{OfficeKey: officeKey}

	for _, cat := range []listing.Category{listing.Residential, listing.Commercial} {
		table := tableFor(cat)
		query := fmt.Sprintf(`SELECT COUNT(*), MAX(list_office_name) FROM %s
			WHERE standard_status = 'Active' AND list_office_key = $1`, table)

		var (
			count int
			name  *string
		)
		if err := r.db.QueryRow(ctx, query, officeKey).Scan(&count, &name); err != nil {
			return Counts{}, fmt.Errorf("office counts %s: %w", table, err)
		}
		if cat == listing.Residential {
			out.Residential = count
		} else {
			out.Commercial = count
		}
		if out.OfficeName == nil {
			out.OfficeName = name
		}
	}
	return out, nil
}

// Active returns offices with at least one active listing, restricted to
// one category when cat is non-nil, sorted by total count descending with
// office key as the tie-break, truncated to limit.
func (r *Repository) Active(ctx context.Context, cat *listing.Category, limit int) ([]Counts, error) {
	categories := []listing.Category{listing.Residential, listing.Commercial}
	if cat != nil {
		categories = []listing.Category{*cat}
	}

	byKey := make(map[string]*Counts)
	for _, c := range categories {
		table := tableFor(c)
		query := fmt.Sprintf(`SELECT list_office_key, MAX(list_office_name), COUNT(*) FROM %s
			WHERE standard_status = 'Active' AND list_office_key IS NOT NULL
			GROUP BY list_office_key`, table)

		rows, err := r.db.Query(ctx, query)
		if err != nil {
			return nil, fmt.Errorf("active offices %s: %w", table, err)
		}
		for rows.Next() {
			var (
				key   string
				name  *string
				count int
			)
			if err := rows.Scan(&key, &name, &count); err != nil {
				rows.Close()
				return nil, fmt.Errorf("active offices %s: %w", table, err)
			}
			entry, ok := byKey[key]
			if !ok {
				entry = &Counts{OfficeKey: key}
				byKey[key] = entry
			}
			if entry.OfficeName == nil {
				entry.OfficeName = name
			}
			if c == listing.Residential {
				entry.Residential = count
			} else {
				entry.Commercial = count
			}
		}
		rows.Close()
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("active offices %s: %w", table, err)
		}
	}

	out := make([]Counts, 0, len(byKey))
	for _, entry := range byKey {
		out = append(out, *entry)
	}
	sort.Slice(out, func(a, b int) bool {
		if out[a].Total() != out[b].Total() {
			return out[a].Total() > out[b].Total()
		}
		return out[a].OfficeKey < out[b].OfficeKey
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
