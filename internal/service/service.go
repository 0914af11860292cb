package service

import (
	"context"

	"glassysee/internal/cart"
	"glassysee/internal/model"

	"github.com/google/uuid"
)

// ProductService defines operations for catalogue management.
type ProductService interface {
	// GetAll retrieves all products with pagination.
	GetAll(ctx context.Context, limit, offset int) ([]model.Product, error)

	// GetByID retrieves a single product by ID.
	GetByID(ctx context.Context, id string) (*model.Product, error)

	// Create adds a product to the catalogue.
	Create(ctx context.Context, req *model.ProductRequest) (*model.Product, error)

	// Update replaces a product record (full replace semantics).
	Update(ctx context.Context, id string, req *model.ProductRequest) (*model.Product, error)

	// Delete removes a product from the catalogue.
	Delete(ctx context.Context, id string) error
}

// CartService defines operations on the session shopping cart.
type CartService interface {
	// Get returns the session's cart view.
	Get(ctx context.Context, sessionID string) (*cart.View, error)

	// AddItem adds a product to the session cart, incrementing the
	// quantity when the product is already present. A guest user is
	// provisioned for the session when none exists.
	AddItem(ctx context.Context, sessionID, productID string, quantity int) (*cart.View, error)

	// UpdateQuantity sets a line's quantity; zero or below removes it.
	UpdateQuantity(ctx context.Context, sessionID, productID string, quantity int) (*cart.View, error)

	// RemoveItem removes a line from the session cart.
	RemoveItem(ctx context.Context, sessionID, productID string) (*cart.View, error)

	// Clear empties the session cart.
	Clear(ctx context.Context, sessionID string) error
}

// OrderService defines operations for checkout and order management.
type OrderService interface {
	// Checkout runs the order pipeline: resolve or create the session
	// user, persist the order and its items, and send confirmation
	// emails best-effort.
	Checkout(ctx context.Context, sessionID string, req *model.CheckoutRequest) (*model.CheckoutResponse, error)

	// GetAll retrieves all orders with nested items and users.
	GetAll(ctx context.Context) ([]model.OrderDetail, error)

	// GetByID retrieves an order by its ID with its items.
	GetByID(ctx context.Context, id uuid.UUID) (*model.OrderDetail, error)

	// UpdateStatus sets an order's status.
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*model.Order, error)
}
