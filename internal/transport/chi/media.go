package chi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// MediaByListing handles GET /api/v1/media/listing/{listingKey}.
func (s *Server) MediaByListing(w http.ResponseWriter, r *http.Request) {
	listingKey := chi.URLParam(r, "listingKey")
	size := optString(r, "size")
	mediaType := optString(r, "media_type")
	limit, err := optInt(r, "limit")
	if err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, err.Error())
		return
	}

	effectiveLimit := 0
	if limit != nil {
		if *limit < 1 || *limit > 100 {
			writeError(w, http.StatusBadRequest, codeBadRequest, "limit must be between 1 and 100")
			return
		}
		effectiveLimit = *limit
	}

	items, err := s.media.ByListing(r.Context(), listingKey, size, mediaType, effectiveLimit)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, mediaByListingResponse{
		ListingKey: listingKey,
		Media:      nonNil(items),
		Count:      len(items),
		Filters:    mediaFilterEcho{Size: size, MediaType: mediaType, Limit: limit},
	})
}

// MediaByKey handles GET /api/v1/media/item/{mediaKey}.
func (s *Server) MediaByKey(w http.ResponseWriter, r *http.Request) {
	mediaKey := chi.URLParam(r, "mediaKey")

	item, err := s.media.ByKey(r.Context(), mediaKey)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// MediaSizes handles GET /api/v1/media/sizes.
func (s *Server) MediaSizes(w http.ResponseWriter, r *http.Request) {
	cat, err := optCategory(r, "property_type")
	if err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, err.Error())
		return
	}

	sizes, err := s.media.Sizes(r.Context(), cat)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mediaSizesResponse{
		AvailableSizes: nonNil(sizes),
		PropertyType:   optString(r, "property_type"),
	})
}

// MediaTypes handles GET /api/v1/media/types.
func (s *Server) MediaTypes(w http.ResponseWriter, r *http.Request) {
	cat, err := optCategory(r, "property_type")
	if err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, err.Error())
		return
	}

	types, err := s.media.Types(r.Context(), cat)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mediaTypesResponse{
		AvailableTypes: nonNil(types),
		PropertyType:   optString(r, "property_type"),
	})
}
