package listing

import (
	"strings"
	"time"
)

// Category identifies which of the two property tables a listing lives in.
// A listing key exists in at most one category at a time.
type Category string

const (
	Residential Category = "Residential"
	Commercial  Category = "Commercial"
)

// IsValid reports whether c is a known category.
func (c Category) IsValid() bool {
	return c == Residential || c == Commercial
}

// ParseCategory maps a request parameter to a Category.
// Accepts the category name case-insensitively; empty input means "both".
func ParseCategory(s string) (Category, bool) {
	switch strings.ToLower(s) {
	case "residential":
		return Residential, true
	case "commercial":
		return Commercial, true
	}
	return "", false
}

// Address holds the address components of a listing.
type Address struct {
	StreetNumber    *string `json:"street_number"`
	StreetName      *string `json:"street_name"`
	StreetSuffix    *string `json:"street_suffix"`
	ApartmentNumber *string `json:"apartment_number"`
	UnitNumber      *string `json:"unit_number"`
	CityRegion      *string `json:"city_region"`
	CountyOrParish  *string `json:"county_or_parish"`
	StateOrProvince *string `json:"state_or_province"`
	PostalCode      *string `json:"postal_code"`
}

// Full renders the address as a single display string,
// skipping missing components.
func (a Address) Full() string {
	var parts []string

	street := joinNonEmpty(" ", a.StreetNumber, a.StreetName, a.StreetSuffix)
	if street != "" {
		parts = append(parts, street)
	}
	if deref(a.ApartmentNumber) != "" {
		parts = append(parts, "Apt "+*a.ApartmentNumber)
	} else if deref(a.UnitNumber) != "" {
		parts = append(parts, "Unit "+*a.UnitNumber)
	}
	if city := deref(a.CityRegion); city != "" {
		if pc := deref(a.PostalCode); pc != "" {
			city += ", " + pc
		}
		parts = append(parts, city)
	}

	return strings.Join(parts, ", ")
}

// Coordinates holds an optional lat/lng pair.
type Coordinates struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// Summary is the minimal listing view used by search results, map markers,
// similar and featured listings.
type Summary struct {
	ListingKey             string      `json:"listing_key"`
	ListPrice              *float64    `json:"list_price"`
	Address                Address     `json:"address"`
	Coordinates            Coordinates `json:"coordinates"`
	BedroomsTotal          *int        `json:"bedrooms_total"`
	BathroomsTotalInteger  *int        `json:"bathrooms_total_integer"`
	ParkingSpaces          *int        `json:"parking_spaces"`
	StandardStatus         *string     `json:"standard_status"`
	TransactionType        *string     `json:"transaction_type"`
	PropertyType           *string     `json:"property_type"`
	PropertySubType        *string     `json:"property_sub_type"`
	ModificationTimestamp  *time.Time  `json:"modification_timestamp"`
	OriginalEntryTimestamp *time.Time  `json:"original_entry_timestamp"`
	ThumbnailURL           *string     `json:"thumbnail_url"`

	// Category records which table the row came from; it is not part of
	// the serialized view (PropertyType carries the public value).
	Category Category `json:"-"`
}

// ResidentialFeatures holds the fields that exist only on the
// residential table.
type ResidentialFeatures struct {
	RoomsAboveGrade       *int     `json:"rooms_above_grade"`
	RoomsBelowGrade       *int     `json:"rooms_below_grade"`
	HeatType              *string  `json:"heat_type"`
	HeatSource            *string  `json:"heat_source"`
	HasFireplace          *bool    `json:"has_fireplace"`
	ArchitecturalStyle    []string `json:"architectural_style"`
	Basement              []string `json:"basement"`
	Roof                  []string `json:"roof"`
	ConstructionMaterials []string `json:"construction_materials"`
	FoundationDetails     []string `json:"foundation_details"`
	Sewer                 []string `json:"sewer"`
	Cooling               []string `json:"cooling"`
	WaterSource           []string `json:"water_source"`
	FireplaceFeatures     []string `json:"fireplace_features"`
	CommunityFeatures     []string `json:"community_features"`
	LotFeatures           []string `json:"lot_features"`
	PoolFeatures          []string `json:"pool_features"`
	SecurityFeatures      []string `json:"security_features"`
	WaterfrontFeatures    []string `json:"waterfront_features"`
}

// Detail is the full listing view. Residential is nil for commercial
// listings; consumers branch on Category.
type Detail struct {
	Summary

	PublicRemarks            *string  `json:"public_remarks"`
	LotDepth                 *float64 `json:"lot_depth"`
	LotWidth                 *float64 `json:"lot_width"`
	LotSizeUnits             *string  `json:"lot_size_units"`
	TaxAnnualAmount          *float64 `json:"tax_annual_amount"`
	CrossStreet              *string  `json:"cross_street"`
	ZoningDesignation        *string  `json:"zoning_designation"`
	ListOfficeName           *string  `json:"list_office_name"`
	ListOfficeKey            *string  `json:"list_office_key"`
	VirtualTourURLUnbranded  *string  `json:"virtual_tour_url_unbranded"`
	VirtualTourURLUnbranded2 *string  `json:"virtual_tour_url_unbranded2"`
	VirtualTourURLBranded    *string  `json:"virtual_tour_url_branded"`
	VirtualTourURLBranded2   *string  `json:"virtual_tour_url_branded2"`

	Residential *ResidentialFeatures `json:"residential,omitempty"`
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func joinNonEmpty(sep string, parts ...*string) string {
	var out []string
	for _, p := range parts {
		if v := deref(p); v != "" {
			out = append(out, v)
		}
	}
	return strings.Join(out, sep)
}
