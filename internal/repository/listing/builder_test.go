package listing

import (
	"strings"
	"testing"

	domlisting "github.com/maplecrest/listings-api/internal/domain/listing"
	"github.com/maplecrest/listings-api/internal/domain/search"
)

func strPtr(s string) *string     { return &s }
func intPtr(i int) *int           { return &i }
func floatPtr(f float64) *float64 { return &f }

func TestQueryBuilder_AlwaysRestrictsToActive(t *testing.T) {
	qb := newQueryBuilder()
	applyFilters(qb, search.Filters{}, domlisting.Residential, false)

	if got := qb.where(); got != "WHERE standard_status = 'Active'" {
		t.Fatalf("where() = %q", got)
	}
	if len(qb.args) != 0 {
		t.Fatalf("expected no args, got %v", qb.args)
	}
}

func TestQueryBuilder_PositionalArgsInOrder(t *testing.T) {
	qb := newQueryBuilder()
	f := search.Filters{
		TransactionType: strPtr("For Sale"),
		MinPrice:        floatPtr(250000),
		MaxPrice:        floatPtr(750000),
		CityRegion:      strPtr("Oakville"),
	}
	applyFilters(qb, f, domlisting.Commercial, false)

	where := qb.where()
	for _, want := range []string{
		"transaction_type = $1",
		"list_price >= $2",
		"list_price <= $3",
		"city_region ILIKE $4",
	} {
		if !strings.Contains(where, want) {
			t.Errorf("where() missing %q: %s", want, where)
		}
	}
	if got := qb.args[3]; got != "%Oakville%" {
		t.Errorf("city arg = %v, want substring pattern", got)
	}
}

func TestQueryBuilder_BedroomsIgnoredForCommercial(t *testing.T) {
	f := search.Filters{Bedrooms: intPtr(3), Bathrooms: intPtr(2)}

	res := newQueryBuilder()
	applyFilters(res, f, domlisting.Residential, false)
	if !strings.Contains(res.where(), "bedrooms_total >= $1") ||
		!strings.Contains(res.where(), "bathrooms_total_integer >= $2") {
		t.Errorf("residential should apply room minimums: %s", res.where())
	}

	com := newQueryBuilder()
	applyFilters(com, f, domlisting.Commercial, false)
	if strings.Contains(com.where(), "bedrooms_total") ||
		strings.Contains(com.where(), "bathrooms_total_integer") {
		t.Errorf("commercial must ignore room minimums: %s", com.where())
	}
}

func TestQueryBuilder_BoundsAndCoordinates(t *testing.T) {
	f := search.Filters{
		NELat: floatPtr(43.7), NELng: floatPtr(-79.2),
		SWLat: floatPtr(43.5), SWLng: floatPtr(-79.6),
	}

	qb := newQueryBuilder()
	applyFilters(qb, f, domlisting.Residential, true)

	where := qb.where()
	for _, want := range []string{
		"latitude >= $1", "latitude <= $2",
		"longitude >= $3", "longitude <= $4",
		"latitude IS NOT NULL", "longitude IS NOT NULL",
	} {
		if !strings.Contains(where, want) {
			t.Errorf("where() missing %q: %s", want, where)
		}
	}
	if got, want := qb.args[0], 43.5; got != want {
		t.Errorf("sw_lat arg = %v, want %v", got, want)
	}
	if got, want := qb.args[1], 43.7; got != want {
		t.Errorf("ne_lat arg = %v, want %v", got, want)
	}
}

func TestQueryBuilder_PartialBoundsIgnored(t *testing.T) {
	f := search.Filters{NELat: floatPtr(43.7), SWLat: floatPtr(43.5)}

	qb := newQueryBuilder()
	applyFilters(qb, f, domlisting.Residential, false)

	if strings.Contains(qb.where(), "latitude") {
		t.Errorf("partial bounds must not produce predicates: %s", qb.where())
	}
}

func TestOrderClause(t *testing.T) {
	tests := []struct {
		sort search.Sort
		want string
	}{
		{search.PriceAsc, "ORDER BY list_price ASC NULLS FIRST, listing_key ASC"},
		{search.PriceDesc, "ORDER BY list_price DESC NULLS LAST, listing_key ASC"},
		{search.Updated, "ORDER BY modification_timestamp DESC NULLS LAST, listing_key ASC"},
		{search.Newest, "ORDER BY original_entry_timestamp DESC NULLS LAST, listing_key ASC"},
	}
	for _, tt := range tests {
		if got := orderClause(tt.sort); got != tt.want {
			t.Errorf("orderClause(%s) = %q, want %q", tt.sort, got, tt.want)
		}
	}
}

func TestSimilarPriceWindow(t *testing.T) {
	tests := []struct {
		cat    domlisting.Category
		price  float64
		wantLo float64
		wantHi float64
	}{
		{domlisting.Residential, 500000, 400000, 600000},
		{domlisting.Commercial, 1000000, 700000, 1300000},
	}
	for _, tt := range tests {
		lo, hi := similarPriceWindow(tt.cat, tt.price)
		if lo != tt.wantLo || hi != tt.wantHi {
			t.Errorf("similarPriceWindow(%s, %v) = (%v, %v), want (%v, %v)",
				tt.cat, tt.price, lo, hi, tt.wantLo, tt.wantHi)
		}
	}
}
