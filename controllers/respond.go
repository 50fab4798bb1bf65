package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/pmitra96/foodshare/logger"
	"github.com/pmitra96/foodshare/middleware"
	"github.com/pmitra96/foodshare/services"
)

// getUserID pulls the authenticated user's ID from the request context.
func getUserID(r *http.Request) (uint, error) {
	userID, ok := r.Context().Value(middleware.UserContextKey).(uint)
	if !ok || userID == 0 {
		return 0, errors.New("no user in context")
	}
	return userID, nil
}

// viewerID is like getUserID but tolerates anonymous requests, returning 0.
func viewerID(r *http.Request) uint {
	userID, _ := r.Context().Value(middleware.UserContextKey).(uint)
	return userID
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeServiceError maps the service error taxonomy onto HTTP statuses.
// Conflicts come back as 400, matching the original API behavior.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case services.IsValidationError(err):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrAlreadyExists):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrSelfFollow):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrForbidden):
		writeError(w, http.StatusForbidden, err.Error())
	default:
		logger.Error("Request failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
