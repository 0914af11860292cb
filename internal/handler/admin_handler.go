package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"glassysee/internal/auth"
	"glassysee/internal/notifier"

	"github.com/rs/zerolog"
)

// AdminHandler handles admin login and the email test ping.
type AdminHandler struct {
	authenticator auth.Authenticator
	tokens        *auth.TokenIssuer
	notifier      notifier.Notifier
	adminEmail    string
	logger        zerolog.Logger
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(
	authenticator auth.Authenticator,
	tokens *auth.TokenIssuer,
	n notifier.Notifier,
	adminEmail string,
	logger zerolog.Logger,
) *AdminHandler {
	return &AdminHandler{
		authenticator: authenticator,
		tokens:        tokens,
		notifier:      n,
		adminEmail:    adminEmail,
		logger:        logger.With().Str("handler", "admin").Logger(),
	}
}

// loginRequest is the payload for POST /api/admin/login.
type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// loginResponse carries the issued session token.
type loginResponse struct {
	Token string `json:"token"`
}

// Login handles POST /api/admin/login requests.
func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	if err := h.authenticator.Authenticate(r.Context(), req.Username, req.Password); err != nil {
		writeDomainError(w, err, "failed to authenticate", h.logger)
		return
	}

	token, err := h.tokens.Issue(req.Username, time.Now())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to issue session token", h.logger)
		return
	}

	h.logger.Info().Str("username", req.Username).Msg("admin logged in")

	writeJSON(w, http.StatusOK, loginResponse{Token: token})
}

// testEmailResponse is the payload for GET /api/test-email.
type testEmailResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	SentTo  string `json:"sentTo,omitempty"`
	Error   string `json:"error,omitempty"`
}

// TestEmail handles GET /api/test-email requests, sending a test ping
// to the configured admin address.
func (h *AdminHandler) TestEmail(w http.ResponseWriter, r *http.Request) {
	if h.adminEmail == "" {
		writeJSON(w, http.StatusInternalServerError, testEmailResponse{
			Success: false,
			Message: "Failed to send test email",
			Error:   "admin email address is not configured",
		})
		return
	}

	msg := notifier.TestMessage(h.adminEmail, time.Now())
	if err := h.notifier.Send(r.Context(), msg); err != nil {
		writeJSON(w, http.StatusInternalServerError, testEmailResponse{
			Success: false,
			Message: "Failed to send test email",
			Error:   err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, testEmailResponse{
		Success: true,
		Message: "Test email sent successfully!",
		SentTo:  h.adminEmail,
	})
}
