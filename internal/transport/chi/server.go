// Package chi exposes the listings API over HTTP.
package chi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/maplecrest/listings-api/internal/cache"
	"github.com/maplecrest/listings-api/internal/config"
	"github.com/maplecrest/listings-api/internal/domain"
	featureduc "github.com/maplecrest/listings-api/internal/usecase/featured"
	healthuc "github.com/maplecrest/listings-api/internal/usecase/health"
	listingsuc "github.com/maplecrest/listings-api/internal/usecase/listings"
	mediauc "github.com/maplecrest/listings-api/internal/usecase/media"
	searchuc "github.com/maplecrest/listings-api/internal/usecase/search"
)

// Error response codes.
const (
	codeBadRequest      = "bad_request"
	codeInvalidBounds   = "invalid_bounds"
	codeListingNotFound = "listing_not_found"
	codeMediaNotFound   = "media_not_found"
	codeOfficeNotFound  = "office_not_found"
	codeInternalError   = "internal_error"
)

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server holds the HTTP handlers and their dependencies.
type Server struct {
	search   *searchuc.Service
	listings *listingsuc.Service
	media    *mediauc.Service
	featured *featureduc.Service
	health   *healthuc.Service
	cache    *cache.Cache
	pag      config.PaginationConfig
	logger   *zap.Logger

	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(
	search *searchuc.Service,
	listings *listingsuc.Service,
	media *mediauc.Service,
	featured *featureduc.Service,
	health *healthuc.Service,
	resultCache *cache.Cache,
	pag config.PaginationConfig,
	logger *zap.Logger,
) *Server {
	s := &Server{
		search:   search,
		listings: listings,
		media:    media,
		featured: featured,
		health:   health,
		cache:    resultCache,
		pag:      pag,
		logger:   logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrListingNotFound, http.StatusNotFound, codeListingNotFound),
		sentinelHandler(domain.ErrMediaNotFound, http.StatusNotFound, codeMediaNotFound),
		sentinelHandler(domain.ErrOfficeNotFound, http.StatusNotFound, codeOfficeNotFound),
		sentinelHandler(domain.ErrInvalidBounds, http.StatusBadRequest, codeInvalidBounds),
	}
	return s
}

// Routes mounts every API route on the given router.
func (s *Server) Routes(r chi.Router) {
	r.Get("/health", s.Health)
	r.Get("/metrics", s.Metrics)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/search", func(r chi.Router) {
			r.Get("/", s.SearchListings)
			r.Get("/map", s.SearchForMap)
			r.Get("/suggestions/cities", s.CitySuggestions)
			r.Get("/suggestions/property-types", s.PropertySubtypes)
		})
		r.Route("/listings/{listingKey}", func(r chi.Router) {
			r.Get("/", s.ListingDetail)
			r.Get("/media", s.ListingMedia)
			r.Get("/similar", s.SimilarListings)
			r.Get("/exists", s.ListingExists)
		})
		r.Route("/media", func(r chi.Router) {
			r.Get("/listing/{listingKey}", s.MediaByListing)
			r.Get("/item/{mediaKey}", s.MediaByKey)
			r.Get("/sizes", s.MediaSizes)
			r.Get("/types", s.MediaTypes)
		})
		r.Route("/featured", func(r chi.Router) {
			r.Get("/offices", s.ActiveOffices)
			r.Get("/office/{officeKey}/info", s.OfficeInfo)
			r.Get("/{officeKey}", s.FeaturedByOffice)
		})
	})
}

// Health handles GET /health.
func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	status := http.StatusOK
	if report.Status != healthuc.Healthy {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, healthResponse{
		Status: string(report.Status),
		Checks: report.Checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Code: code, Message: message})
}

// safeDomainMessage returns a sentinel error message for the client without
// exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrListingNotFound,
		domain.ErrMediaNotFound,
		domain.ErrOfficeNotFound,
		domain.ErrInvalidBounds,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code string) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
}
