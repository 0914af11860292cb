package handler

import (
	"encoding/json"
	"net/http"

	"glassysee/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// sessionCookie names the cookie carrying the shopper's session ID.
const sessionCookie = "session_id"

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Log the error but don't expose it to the client
		return
	}
}

// writeError writes an error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, message string, logger zerolog.Logger) {
	logger.Error().Str("error", message).Int("status", status).Msg("handler error")
	writeJSON(w, status, ErrorResponse{Error: message})
}

// writeDomainError maps a domain error to the appropriate status code,
// falling back to a generic 500 for anything unrecognised.
func writeDomainError(w http.ResponseWriter, err error, fallback string, logger zerolog.Logger) {
	if derr, ok := err.(*model.DomainError); ok {
		status := http.StatusBadRequest
		switch derr.Code {
		case model.ErrCodeProductNotFound, model.ErrCodeOrderNotFound:
			status = http.StatusNotFound
		case model.ErrCodeInvalidCredential, model.ErrCodeUnauthorised:
			status = http.StatusUnauthorized
		}
		writeError(w, status, derr.Message, logger)
		return
	}

	writeError(w, http.StatusInternalServerError, fallback, logger)
}

// sessionID returns the shopper's session ID from the session cookie,
// minting and setting a new one when absent.
func sessionID(w http.ResponseWriter, r *http.Request) string {
	if cookie, err := r.Cookie(sessionCookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	id := uuid.New().String()
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}
