package utils

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
)

func RespondWithError(w http.ResponseWriter, code int, msg string) {
	RespondWithJSON(w, code, map[string]string{"error": msg})
}

// Sends a JSON response
func RespondWithJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Warn("Failed to encode response", "error", err)
	}
}

// RespondWithMessage sends {"message": msg} with 200.
func RespondWithMessage(w http.ResponseWriter, msg string) {
	RespondWithJSON(w, http.StatusOK, map[string]string{"message": msg})
}

// RespondWithServiceError maps a service error to its status code. Errors
// outside the NotFound/Conflict/Invalid taxonomy are storage faults: they are
// logged and answered with the generic fallback message.
func RespondWithServiceError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	switch {
	case errors.Is(err, ErrNotFound):
		RespondWithError(w, http.StatusNotFound, Message(err))
	case errors.Is(err, ErrConflict), errors.Is(err, ErrInvalid):
		RespondWithError(w, http.StatusBadRequest, Message(err))
	default:
		slog.Error(fallback,
			"method", r.Method,
			"path", r.URL.Path,
			"error", err,
		)
		RespondWithError(w, http.StatusInternalServerError, fallback)
	}
}
