package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/cardbinder/cardbinder/internal/auth"
	"github.com/cardbinder/cardbinder/internal/metrics"
)

// mustUserID is only called behind auth.RequireUser
func mustUserID(r *http.Request) uint {
	userID, _ := auth.UserID(r.Context())
	return userID
}

func (s *Server) handleCollection(w http.ResponseWriter, r *http.Request) {
	cards, err := s.catalog.CollectionCards(r.Context(), mustUserID(r))
	if err != nil {
		s.respondDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cards)
}

func (s *Server) handleGroupedCollection(w http.ResponseWriter, r *http.Request) {
	eras, total, err := s.catalog.GroupedCollection(r.Context(), mustUserID(r))
	if err != nil {
		s.respondDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"eras":        eras,
		"total_cards": total,
	})
}

func (s *Server) handleAddToCollection(w http.ResponseWriter, r *http.Request) {
	cardID := chi.URLParam(r, "cardID")

	if err := s.collection.Add(r.Context(), mustUserID(r), cardID); err != nil {
		s.respondDomainError(w, err)
		return
	}

	metrics.CollectionAddsTotal.Inc()
	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"msg":     "card added to collection",
		"action":  "added",
	})
}

func (s *Server) handleRemoveFromCollection(w http.ResponseWriter, r *http.Request) {
	cardID := chi.URLParam(r, "cardID")

	if err := s.collection.Remove(r.Context(), mustUserID(r), cardID); err != nil {
		s.respondDomainError(w, err)
		return
	}

	metrics.CollectionRemovesTotal.Inc()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"msg":     "card removed from collection",
		"action":  "removed",
	})
}
