package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"glassysee/internal/model"
	"glassysee/internal/service"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// OrderHandler handles checkout and order-related HTTP requests.
type OrderHandler struct {
	service service.OrderService
	carts   service.CartService
	logger  zerolog.Logger
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(service service.OrderService, carts service.CartService, logger zerolog.Logger) *OrderHandler {
	return &OrderHandler{
		service: service,
		carts:   carts,
		logger:  logger.With().Str("handler", "order").Logger(),
	}
}

// Checkout handles POST /api/checkout requests.
func (h *OrderHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	sid := sessionID(w, r)

	var req model.CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	resp, err := h.service.Checkout(r.Context(), sid, &req)
	if err != nil {
		if strings.Contains(err.Error(), "required") || strings.Contains(err.Error(), "nil") {
			writeError(w, http.StatusBadRequest, err.Error(), h.logger)
			return
		}
		writeDomainError(w, err, "failed to create order", h.logger)
		return
	}

	// The order is committed; the session cart is spent.
	if err := h.carts.Clear(r.Context(), sid); err != nil {
		h.logger.Warn().Err(err).Str("session_id", sid).Msg("failed to clear session cart after checkout")
	}

	writeJSON(w, http.StatusOK, resp)
}

// GetAll handles GET /api/orders requests.
func (h *OrderHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	orders, err := h.service.GetAll(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to retrieve orders", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, orders)
}

// GetByID handles GET /api/orders/{id} requests.
func (h *OrderHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	idStr := strings.TrimPrefix(r.URL.Path, "/api/orders/")
	if idStr == "" {
		writeError(w, http.StatusBadRequest, "order ID is required", h.logger)
		return
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid order ID format", h.logger)
		return
	}

	order, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		writeDomainError(w, err, "failed to retrieve order", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, order)
}

// UpdateStatus handles PUT /api/orders requests.
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req model.OrderStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	if req.OrderID == uuid.Nil {
		writeError(w, http.StatusBadRequest, "order ID is required", h.logger)
		return
	}

	order, err := h.service.UpdateStatus(r.Context(), req.OrderID, req.Status)
	if err != nil {
		writeDomainError(w, err, "failed to update order", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, order)
}
