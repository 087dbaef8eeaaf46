package chi

import (
	"github.com/maplecrest/listings-api/internal/domain/listing"
	"github.com/maplecrest/listings-api/internal/domain/media"
	"github.com/maplecrest/listings-api/internal/domain/search"
	"github.com/maplecrest/listings-api/internal/repository/office"
	"github.com/maplecrest/listings-api/internal/usecase/health"
)

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type healthResponse struct {
	Status string                        `json:"status"`
	Checks map[string]health.CheckResult `json:"checks"`
}

type searchResponse struct {
	Listings       []listing.Summary `json:"listings"`
	Pagination     search.Pagination `json:"pagination"`
	FiltersApplied search.Filters    `json:"filters_applied"`
}

type mapResponse struct {
	Listings []listing.Summary `json:"listings"`
	Count    int               `json:"count"`
}

type citySuggestionsResponse struct {
	Suggestions []string `json:"suggestions"`
}

type propertySubtypesResponse struct {
	PropertySubtypes []string `json:"property_subtypes"`
}

type detailResponse struct {
	listing.Detail
	Media []media.Item `json:"media"`
}

type listingMediaResponse struct {
	ListingKey string       `json:"listing_key"`
	Media      []media.Item `json:"media"`
}

type similarResponse struct {
	ListingKey      string            `json:"listing_key"`
	SimilarListings []listing.Summary `json:"similar_listings"`
	Count           int               `json:"count"`
}

type existsResponse struct {
	ListingKey   string            `json:"listing_key"`
	Exists       bool              `json:"exists"`
	PropertyType *listing.Category `json:"property_type"`
}

type mediaFilterEcho struct {
	Size      *string `json:"size"`
	MediaType *string `json:"media_type"`
	Limit     *int    `json:"limit"`
}

type mediaByListingResponse struct {
	ListingKey string          `json:"listing_key"`
	Media      []media.Item    `json:"media"`
	Count      int             `json:"count"`
	Filters    mediaFilterEcho `json:"filters"`
}

type mediaSizesResponse struct {
	AvailableSizes []string `json:"available_sizes"`
	PropertyType   *string  `json:"property_type"`
}

type mediaTypesResponse struct {
	AvailableTypes []string `json:"available_types"`
	PropertyType   *string  `json:"property_type"`
}

type featuredResponse struct {
	Listings   []listing.Summary `json:"listings"`
	OfficeName *string           `json:"office_name"`
	OfficeKey  string            `json:"office_key"`
	Count      int               `json:"count"`
}

type officeInfoResponse struct {
	OfficeKey          string  `json:"office_key"`
	OfficeName         *string `json:"office_name"`
	TotalListings      int     `json:"total_listings"`
	ResidentialCount   int     `json:"residential_listings"`
	CommercialCount    int     `json:"commercial_listings"`
}

func officeInfoFromCounts(c office.Counts) officeInfoResponse {
	return officeInfoResponse{
		OfficeKey:        c.OfficeKey,
		OfficeName:       c.OfficeName,
		TotalListings:    c.Total(),
		ResidentialCount: c.Residential,
		CommercialCount:  c.Commercial,
	}
}

type activeOfficesResponse struct {
	Offices []activeOffice `json:"offices"`
	Count   int            `json:"count"`
}

type activeOffice struct {
	OfficeKey        string  `json:"office_key"`
	OfficeName       *string `json:"office_name"`
	TotalListings    int     `json:"total_listings"`
	ResidentialCount int     `json:"residential_listings"`
	CommercialCount  int     `json:"commercial_listings"`
}
