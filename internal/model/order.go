package model

import (
	"time"

	"github.com/google/uuid"
)

// Order statuses. The admin console only offers forward transitions
// (pending -> processing -> shipped) but the store accepts any value.
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
)

// Order represents a customer order.
type Order struct {
	ID        uuid.UUID `json:"id" db:"id"`
	UserID    string    `json:"userId" db:"user_id"`
	Total     float64   `json:"total" db:"total"`
	Status    string    `json:"status" db:"status"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// OrderItem represents a line item in an order. The price is captured
// at purchase time and is decoupled from the live product price.
type OrderItem struct {
	ID        uuid.UUID `json:"id" db:"id"`
	OrderID   uuid.UUID `json:"-" db:"order_id"`
	ProductID string    `json:"productId" db:"product_id"`
	Quantity  int       `json:"quantity" db:"quantity"`
	Price     float64   `json:"price" db:"price"`
}

// OrderItemDetail pairs an order item with its product record.
type OrderItemDetail struct {
	OrderItem
	Product *Product `json:"product,omitempty"`
}

// OrderDetail is an order with its nested items and user, as returned
// by the admin order listing.
type OrderDetail struct {
	Order
	User  *User             `json:"user,omitempty"`
	Items []OrderItemDetail `json:"items"`
}

// CheckoutItem is a single cart line submitted at checkout. The price
// is client-supplied and recorded as-is.
type CheckoutItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// CustomerInfo carries the customer and shipping details collected by
// the checkout form.
type CustomerInfo struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Email      string `json:"email"`
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

// CheckoutRequest represents the request payload for POST /api/checkout.
type CheckoutRequest struct {
	Items        []CheckoutItem `json:"items"`
	Total        float64        `json:"total"`
	CustomerInfo CustomerInfo   `json:"customerInfo"`
}

// CheckoutResponse represents the response payload for a successful checkout.
type CheckoutResponse struct {
	Success bool      `json:"success"`
	OrderID uuid.UUID `json:"orderId"`
	Message string    `json:"message"`
}

// OrderStatusRequest represents the payload for PUT /api/orders.
type OrderStatusRequest struct {
	OrderID uuid.UUID `json:"orderId"`
	Status  string    `json:"status"`
}
