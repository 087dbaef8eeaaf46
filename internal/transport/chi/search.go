package chi

import (
	"net/http"

	"github.com/maplecrest/listings-api/internal/cache"
	"github.com/maplecrest/listings-api/internal/domain/search"
)

// SearchListings handles GET /api/v1/search.
func (s *Server) SearchListings(w http.ResponseWriter, r *http.Request) {
	f, err := parseFilters(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, err.Error())
		return
	}
	page, err := intParam(r, "page", 1, 0)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, err.Error())
		return
	}
	limit, err := intParam(r, "limit", s.pag.DefaultPageSize, s.pag.MaxPageSize)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, err.Error())
		return
	}
	sort := search.ParseSort(r.URL.Query().Get("sort"))

	key := cache.SearchKey(f, page, limit, sort)
	var cached searchResponse
	if s.cache.GetJSON(r.Context(), key, &cached) {
		writeJSON(w, http.StatusOK, cached)
		return
	}

	items, total, err := s.search.Search(r.Context(), f, page, limit, sort)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	resp := searchResponse{
		Listings:       nonNil(items),
		Pagination:     search.NewPagination(page, limit, total),
		FiltersApplied: f,
	}
	s.cache.SetJSON(r.Context(), key, resp, s.cache.TTLs().Search)
	writeJSON(w, http.StatusOK, resp)
}

// SearchForMap handles GET /api/v1/search/map.
func (s *Server) SearchForMap(w http.ResponseWriter, r *http.Request) {
	f, err := parseFilters(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, err.Error())
		return
	}
	if !f.HasBounds() {
		writeError(w, http.StatusBadRequest, codeBadRequest,
			"ne_lat, ne_lng, sw_lat and sw_lng are required")
		return
	}
	if err := f.ValidateBounds(); err != nil {
		s.handleDomainError(w, err)
		return
	}
	limit, err := intParam(r, "limit", s.pag.MapLimit, s.pag.MaxMapLimit)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, err.Error())
		return
	}

	key := cache.MapKey(f, limit)
	var cached mapResponse
	if s.cache.GetJSON(r.Context(), key, &cached) {
		writeJSON(w, http.StatusOK, cached)
		return
	}

	items, err := s.search.SearchForMap(r.Context(), f, limit)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	resp := mapResponse{Listings: nonNil(items), Count: len(items)}
	s.cache.SetJSON(r.Context(), key, resp, s.cache.TTLs().Map)
	writeJSON(w, http.StatusOK, resp)
}

// CitySuggestions handles GET /api/v1/search/suggestions/cities.
func (s *Server) CitySuggestions(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if len(q) < 2 {
		writeError(w, http.StatusBadRequest, codeBadRequest, "q must be at least 2 characters")
		return
	}
	cat, err := optCategory(r, "property_type")
	if err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, err.Error())
		return
	}
	limit, err := intParam(r, "limit", 10, 50)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, err.Error())
		return
	}

	suggestions, err := s.search.CitySuggestions(r.Context(), q, cat, limit)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, citySuggestionsResponse{Suggestions: nonNil(suggestions)})
}

// PropertySubtypes handles GET /api/v1/search/suggestions/property-types.
func (s *Server) PropertySubtypes(w http.ResponseWriter, r *http.Request) {
	cat, err := optCategory(r, "property_type")
	if err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, err.Error())
		return
	}

	subtypes, err := s.search.PropertySubtypes(r.Context(), cat)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, propertySubtypesResponse{PropertySubtypes: nonNil(subtypes)})
}
