package chi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/maplecrest/listings-api/internal/cache"
)

// FeaturedByOffice handles GET /api/v1/featured/{officeKey}.
func (s *Server) FeaturedByOffice(w http.ResponseWriter, r *http.Request) {
	officeKey := chi.URLParam(r, "officeKey")
	cat, err := optCategory(r, "property_type")
	if err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, err.Error())
		return
	}
	limit, err := intParam(r, "limit", 12, 50)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, err.Error())
		return
	}
	transactionType := optString(r, "transaction_type")

	catKey, ttypeKey := "", ""
	if cat != nil {
		catKey = string(*cat)
	}
	if transactionType != nil {
		ttypeKey = *transactionType
	}
	key := cache.FeaturedKey(officeKey, catKey, limit, ttypeKey)
	var cached featuredResponse
	if s.cache.GetJSON(r.Context(), key, &cached) {
		writeJSON(w, http.StatusOK, cached)
		return
	}

	result, err := s.featured.Featured(r.Context(), officeKey, cat, limit, transactionType)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	resp := featuredResponse{
		Listings:   nonNil(result.Listings),
		OfficeName: result.OfficeName,
		OfficeKey:  result.OfficeKey,
		Count:      len(result.Listings),
	}
	s.cache.SetJSON(r.Context(), key, resp, s.cache.TTLs().Detail)
	writeJSON(w, http.StatusOK, resp)
}

// OfficeInfo handles GET /api/v1/featured/office/{officeKey}/info.
func (s *Server) OfficeInfo(w http.ResponseWriter, r *http.Request) {
	officeKey := chi.URLParam(r, "officeKey")

	counts, err := s.featured.OfficeInfo(r.Context(), officeKey)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, officeInfoFromCounts(counts))
}

// ActiveOffices handles GET /api/v1/featured/offices.
func (s *Server) ActiveOffices(w http.ResponseWriter, r *http.Request) {
	cat, err := optCategory(r, "property_type")
	if err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, err.Error())
		return
	}
	limit, err := intParam(r, "limit", 50, 100)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, err.Error())
		return
	}

	counts, err := s.featured.ActiveOffices(r.Context(), cat, limit)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	offices := make([]activeOffice, 0, len(counts))
	for _, c := range counts {
		offices = append(offices, activeOffice{
			OfficeKey:        c.OfficeKey,
			OfficeName:       c.OfficeName,
			TotalListings:    c.Total(),
			ResidentialCount: c.Residential,
			CommercialCount:  c.Commercial,
		})
	}
	writeJSON(w, http.StatusOK, activeOfficesResponse{Offices: offices, Count: len(offices)})
}
