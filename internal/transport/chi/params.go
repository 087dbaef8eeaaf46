package chi

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/maplecrest/listings-api/internal/domain/listing"
	"github.com/maplecrest/listings-api/internal/domain/search"
)

func optString(r *http.Request, name string) *string {
	if v := r.URL.Query().Get(name); v != "" {
		return &v
	}
	return nil
}

func optFloat(r *http.Request, name string) (*float64, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil, fmt.Errorf("%s must be a number", name)
	}
	return &f, nil
}

func optInt(r *http.Request, name string) (*int, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return nil, fmt.Errorf("%s must be an integer", name)
	}
	return &n, nil
}

// intParam reads a positive integer with a default, clamped to max.
func intParam(r *http.Request, name string, def, max int) (int, error) {
	n, err := optInt(r, name)
	if err != nil {
		return 0, err
	}
	if n == nil || *n < 1 {
		return def, nil
	}
	if max > 0 && *n > max {
		return max, nil
	}
	return *n, nil
}

func optCategory(r *http.Request, name string) (*listing.Category, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return nil, nil
	}
	cat, ok := listing.ParseCategory(v)
	if !ok {
		return nil, fmt.Errorf("%s must be Residential or Commercial", name)
	}
	return &cat, nil
}

// parseFilters assembles the search filter set from query parameters.
func parseFilters(r *http.Request) (search.Filters, error) {
	var (
		f   search.Filters
		err error
	)

	f.TransactionType = optString(r, "transaction_type")
	f.PropertySubType = optString(r, "property_sub_type")
	f.CityRegion = optString(r, "city_region")
	f.CountyOrParish = optString(r, "county_or_parish")

	if f.PropertyType, err = optCategory(r, "property_type"); err != nil {
		return search.Filters{}, err
	}
	if f.MinPrice, err = optFloat(r, "min_price"); err != nil {
		return search.Filters{}, err
	}
	if f.MaxPrice, err = optFloat(r, "max_price"); err != nil {
		return search.Filters{}, err
	}
	if f.Bedrooms, err = optInt(r, "bedrooms"); err != nil {
		return search.Filters{}, err
	}
	if f.Bathrooms, err = optInt(r, "bathrooms"); err != nil {
		return search.Filters{}, err
	}
	if f.NELat, err = optFloat(r, "ne_lat"); err != nil {
		return search.Filters{}, err
	}
	if f.NELng, err = optFloat(r, "ne_lng"); err != nil {
		return search.Filters{}, err
	}
	if f.SWLat, err = optFloat(r, "sw_lat"); err != nil {
		return search.Filters{}, err
	}
	if f.SWLng, err = optFloat(r, "sw_lng"); err != nil {
		return search.Filters{}, err
	}

	return f, nil
}

// nonNil keeps empty JSON arrays as [] instead of null.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
