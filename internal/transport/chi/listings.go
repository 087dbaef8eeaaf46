package chi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/maplecrest/listings-api/internal/cache"
)

// ListingDetail handles GET /api/v1/listings/{listingKey}.
func (s *Server) ListingDetail(w http.ResponseWriter, r *http.Request) {
	listingKey := chi.URLParam(r, "listingKey")

	key := cache.DetailKey(listingKey)
	var cached detailResponse
	if s.cache.GetJSON(r.Context(), key, &cached) {
		writeJSON(w, http.StatusOK, cached)
		return
	}

	detail, items, err := s.listings.Detail(r.Context(), listingKey)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	resp := detailResponse{Detail: *detail, Media: nonNil(items)}
	s.cache.SetJSON(r.Context(), key, resp, s.cache.TTLs().Detail)
	writeJSON(w, http.StatusOK, resp)
}

// ListingMedia handles GET /api/v1/listings/{listingKey}/media.
func (s *Server) ListingMedia(w http.ResponseWriter, r *http.Request) {
	listingKey := chi.URLParam(r, "listingKey")
	size := optString(r, "size")

	sizeKey := ""
	if size != nil {
		sizeKey = *size
	}
	key := cache.MediaKey(listingKey, sizeKey)
	var cached listingMediaResponse
	if s.cache.GetJSON(r.Context(), key, &cached) {
		writeJSON(w, http.StatusOK, cached)
		return
	}

	items, err := s.listings.Media(r.Context(), listingKey, size)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	resp := listingMediaResponse{ListingKey: listingKey, Media: nonNil(items)}
	s.cache.SetJSON(r.Context(), key, resp, s.cache.TTLs().Detail)
	writeJSON(w, http.StatusOK, resp)
}

// SimilarListings handles GET /api/v1/listings/{listingKey}/similar.
func (s *Server) SimilarListings(w http.ResponseWriter, r *http.Request) {
	listingKey := chi.URLParam(r, "listingKey")
	limit, err := intParam(r, "limit", 5, 50)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, err.Error())
		return
	}

	key := cache.SimilarKey(listingKey, limit)
	var cached similarResponse
	if s.cache.GetJSON(r.Context(), key, &cached) {
		writeJSON(w, http.StatusOK, cached)
		return
	}

	items, err := s.listings.Similar(r.Context(), listingKey, limit)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	resp := similarResponse{
		ListingKey:      listingKey,
		SimilarListings: nonNil(items),
		Count:           len(items),
	}
	s.cache.SetJSON(r.Context(), key, resp, s.cache.TTLs().Detail)
	writeJSON(w, http.StatusOK, resp)
}

// ListingExists handles GET /api/v1/listings/{listingKey}/exists.
func (s *Server) ListingExists(w http.ResponseWriter, r *http.Request) {
	listingKey := chi.URLParam(r, "listingKey")

	exists, cat, err := s.listings.Exists(r.Context(), listingKey)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, existsResponse{
		ListingKey:   listingKey,
		Exists:       exists,
		PropertyType: cat,
	})
}
