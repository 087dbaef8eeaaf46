package search

// Sort names a listing ordering. The same comparator is applied at the
// storage layer and again over the merged two-category page.
type Sort string

const (
	// PriceAsc orders by list price ascending.
	PriceAsc Sort = "price_asc"
	// PriceDesc orders by list price descending.
	PriceDesc Sort = "price_desc"
	// Updated orders by modification timestamp, most recent first.
	Updated Sort = "updated"
	// Newest orders by original entry timestamp, most recent first.
	// This is the default.
	Newest Sort = "newest"
)

// IsValid reports whether s is a known sort option.
func (s Sort) IsValid() bool {
	switch s {
	case PriceAsc, PriceDesc, Updated, Newest:
		return true
	}
	return false
}

// ParseSort maps a request parameter to a Sort, defaulting to Newest.
func ParseSort(s string) Sort {
	if v := Sort(s); v.IsValid() {
		return v
	}
	return Newest
}
