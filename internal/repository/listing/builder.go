package listing

import (
	"fmt"
	"strings"

	domlisting "github.com/maplecrest/listings-api/internal/domain/listing"
	"github.com/maplecrest/listings-api/internal/domain/search"
)

// queryBuilder accumulates conjunctive predicates with positional args.
type queryBuilder struct {
	conditions []string
	args       []any
	argID      int
}

func newQueryBuilder() *queryBuilder {
	// Every category query is implicitly restricted to active listings.
	return &queryBuilder{
		conditions: []string{"standard_status = 'Active'"},
		argID:      1,
	}
}

// add appends a predicate; format must contain exactly one %d for the
// positional placeholder.
func (qb *queryBuilder) add(format string, arg any) {
	qb.conditions = append(qb.conditions, fmt.Sprintf(format, qb.argID))
	qb.args = append(qb.args, arg)
	qb.argID++
}

func (qb *queryBuilder) addStatic(condition string) {
	qb.conditions = append(qb.conditions, condition)
}

func (qb *queryBuilder) where() string {
	return "WHERE " + strings.Join(qb.conditions, " AND ")
}

// applyFilters translates a filter set into predicates for one category.
// Bedroom/bathroom minimums have no meaning for commercial rows and are
// silently ignored there.
func applyFilters(qb *queryBuilder, f search.Filters, category domlisting.Category, requireCoords bool) {
	if f.TransactionType != nil {
		qb.add("transaction_type = $%d", *f.TransactionType)
	}
	if f.PropertySubType != nil {
		qb.add("property_sub_type = $%d", *f.PropertySubType)
	}
	if f.MinPrice != nil {
		qb.add("list_price >= $%d", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		qb.add("list_price <= $%d", *f.MaxPrice)
	}
	if category == domlisting.Residential {
		if f.Bedrooms != nil {
			qb.add("bedrooms_total >= $%d", *f.Bedrooms)
		}
		if f.Bathrooms != nil {
			qb.add("bathrooms_total_integer >= $%d", *f.Bathrooms)
		}
	}
	if f.CityRegion != nil {
		qb.add("city_region ILIKE $%d", "%"+*f.CityRegion+"%")
	}
	if f.CountyOrParish != nil {
		qb.add("county_or_parish ILIKE $%d", "%"+*f.CountyOrParish+"%")
	}
	if f.HasBounds() {
		qb.add("latitude >= $%d", *f.SWLat)
		qb.add("latitude <= $%d", *f.NELat)
		qb.add("longitude >= $%d", *f.SWLng)
		qb.add("longitude <= $%d", *f.NELng)
	}
	if requireCoords {
		qb.addStatic("latitude IS NOT NULL")
		qb.addStatic("longitude IS NOT NULL")
	}
}

// orderClause maps a sort option to SQL, with listing_key as the stable
// tie-break so pagination never depends on storage order.
func orderClause(sort search.Sort) string {
	switch sort {
	case search.PriceAsc:
		return "ORDER BY list_price ASC NULLS FIRST, listing_key ASC"
	case search.PriceDesc:
		return "ORDER BY list_price DESC NULLS LAST, listing_key ASC"
	case search.Updated:
		return "ORDER BY modification_timestamp DESC NULLS LAST, listing_key ASC"
	default: // Newest
		return "ORDER BY original_entry_timestamp DESC NULLS LAST, listing_key ASC"
	}
}
