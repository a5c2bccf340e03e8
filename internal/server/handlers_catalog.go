package server

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/cardbinder/cardbinder/internal/auth"
	"github.com/cardbinder/cardbinder/internal/metrics"
	"github.com/cardbinder/cardbinder/pkg/catalog"
)

// parseSearchCriteria builds the filter struct from query parameters.
// Malformed values are silently dropped or normalized, never errors: a bad
// page means page 1, a bad filter id means no constraint.
func parseSearchCriteria(r *http.Request) catalog.SearchCriteria {
	query := r.URL.Query()

	criteria := catalog.SearchCriteria{
		Name: query.Get("name"),
		Page: 1,
	}
	if page, err := strconv.Atoi(query.Get("page")); err == nil {
		criteria.Page = page
	}
	if id, err := strconv.ParseUint(query.Get("type"), 10, 64); err == nil {
		criteria.TypeID = uint(id)
	}
	if id, err := strconv.ParseUint(query.Get("set"), 10, 64); err == nil {
		criteria.SetID = uint(id)
	}
	if id, err := strconv.ParseUint(query.Get("rarity"), 10, 64); err == nil {
		criteria.RarityID = uint(id)
	}

	return criteria.Normalized()
}

// viewerID returns the resolved identity as the optional pointer shape the
// core services take
func viewerID(r *http.Request) *uint {
	if userID, ok := auth.UserID(r.Context()); ok {
		return &userID
	}
	return nil
}

func (s *Server) handleSearchCards(w http.ResponseWriter, r *http.Request) {
	page, err := s.catalog.Search(r.Context(), parseSearchCriteria(r), viewerID(r))
	if err != nil {
		s.respondDomainError(w, err)
		return
	}

	metrics.CardSearchesTotal.Inc()
	writeJSON(w, http.StatusOK, page)
}

func (s *Server) handleGetCard(w http.ResponseWriter, r *http.Request) {
	card, err := s.catalog.GetCard(r.Context(), chi.URLParam(r, "cardID"), viewerID(r))
	if err != nil {
		s.respondDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, card)
}

func (s *Server) handleFilters(w http.ResponseWriter, r *http.Request) {
	filters, err := s.catalog.Filters(r.Context())
	if err != nil {
		s.respondDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, filters)
}

func (s *Server) handleEras(w http.ResponseWriter, r *http.Request) {
	eras, err := s.catalog.Eras(r.Context())
	if err != nil {
		s.respondDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"eras": eras})
}
