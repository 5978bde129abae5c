// Package web holds the HTTP plumbing shared by the REST handlers.
package web

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	apperrors "github.com/abgdnv/storefront/internal/errors"
)

func RespondJSON(w http.ResponseWriter, logger *slog.Logger, status int, payload any) {
	// Handle nil payload
	if payload == nil {
		w.WriteHeader(status)
		return
	}

	response, err := json.Marshal(payload)
	if err != nil {
		logger.Error("Error encoding response to JSON", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(response)
}

func RespondError(w http.ResponseWriter, logger *slog.Logger, status int, message string) {
	RespondJSON(w, logger, status, map[string]string{"error": message})
}

// RespondValidationError writes a 400 response naming the field that failed.
func RespondValidationError(w http.ResponseWriter, logger *slog.Logger, vErr *apperrors.ValidationError) {
	RespondJSON(w, logger, http.StatusBadRequest, map[string]any{
		"validation_errors": map[string]string{vErr.Field: vErr.Reason},
	})
}

// ParseID extracts and validates the ID from the request path. Returns the ID and a boolean indicating success.
func ParseID(w http.ResponseWriter, r *http.Request, logger *slog.Logger) (int, bool) {
	pathValueID := r.PathValue("id")
	id, err := strconv.Atoi(pathValueID)
	if err != nil {
		RespondError(w, logger, http.StatusBadRequest, fmt.Sprintf("Invalid ID: %s", pathValueID))
		return 0, false
	}
	return id, true
}
