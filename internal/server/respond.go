package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/cardbinder/cardbinder/pkg/catalog"
	"github.com/cardbinder/cardbinder/pkg/collection"
	"github.com/cardbinder/cardbinder/pkg/database/repository"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"msg": msg})
}

// respondDomainError maps expected domain outcomes to their statuses;
// anything else is an opaque internal error. Store-level details never reach
// the client.
func (s *Server) respondDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, catalog.ErrCardNotFound):
		writeMessage(w, http.StatusNotFound, "card not found")
	case errors.Is(err, collection.ErrAlreadyInCollection):
		writeJSON(w, http.StatusConflict, map[string]interface{}{
			"success": false,
			"msg":     "card already in collection",
		})
	case errors.Is(err, collection.ErrNotInCollection):
		writeMessage(w, http.StatusNotFound, "card not in collection")
	case errors.Is(err, repository.ErrUsernameTaken):
		writeMessage(w, http.StatusConflict, "username already exists")
	default:
		s.logger.Error("request failed", err, nil)
		writeMessage(w, http.StatusInternalServerError, "internal server error")
	}
}
