package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"glassysee/internal/service"

	"github.com/rs/zerolog"
)

// CartHandler handles session cart HTTP requests.
type CartHandler struct {
	service service.CartService
	logger  zerolog.Logger
}

// NewCartHandler creates a new cart handler.
func NewCartHandler(service service.CartService, logger zerolog.Logger) *CartHandler {
	return &CartHandler{
		service: service,
		logger:  logger.With().Str("handler", "cart").Logger(),
	}
}

// cartItemRequest is the payload for adding or updating a cart line.
type cartItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// Get handles GET /api/cart requests.
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	sid := sessionID(w, r)

	view, err := h.service.Get(r.Context(), sid)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to fetch cart", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, view)
}

// Add handles POST /api/cart requests. Quantity defaults to 1.
func (h *CartHandler) Add(w http.ResponseWriter, r *http.Request) {
	sid := sessionID(w, r)

	var req cartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	if req.ProductID == "" {
		writeError(w, http.StatusBadRequest, "product ID is required", h.logger)
		return
	}

	view, err := h.service.AddItem(r.Context(), sid, req.ProductID, req.Quantity)
	if err != nil {
		writeDomainError(w, err, "failed to add to cart", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, view)
}

// Update handles PUT /api/cart requests, setting a line's quantity.
func (h *CartHandler) Update(w http.ResponseWriter, r *http.Request) {
	sid := sessionID(w, r)

	var req cartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	if req.ProductID == "" {
		writeError(w, http.StatusBadRequest, "product ID is required", h.logger)
		return
	}

	view, err := h.service.UpdateQuantity(r.Context(), sid, req.ProductID, req.Quantity)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to update cart", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, view)
}

// Remove handles DELETE /api/cart/{productId} requests.
func (h *CartHandler) Remove(w http.ResponseWriter, r *http.Request) {
	sid := sessionID(w, r)

	productID := strings.TrimPrefix(r.URL.Path, "/api/cart/")
	if productID == "" {
		writeError(w, http.StatusBadRequest, "product ID is required", h.logger)
		return
	}

	view, err := h.service.RemoveItem(r.Context(), sid, productID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to remove from cart", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, view)
}

// Clear handles DELETE /api/cart requests.
func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	sid := sessionID(w, r)

	if err := h.service.Clear(r.Context(), sid); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to clear cart", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
