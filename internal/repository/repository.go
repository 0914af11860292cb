package repository

import (
	"context"

	"glassysee/internal/model"

	"github.com/google/uuid"
)

// ProductRepository defines the interface for product data access operations.
type ProductRepository interface {
	// GetAll retrieves all products with pagination support.
	GetAll(ctx context.Context, limit, offset int) ([]model.Product, error)

	// GetByID retrieves a single product by its ID.
	GetByID(ctx context.Context, id string) (*model.Product, error)

	// GetByIDs retrieves multiple products by their IDs.
	GetByIDs(ctx context.Context, ids []string) ([]model.Product, error)

	// Create inserts a new product.
	Create(ctx context.Context, product *model.Product) error

	// Update replaces an existing product record. Returns
	// model.ErrProductNotFound when the ID does not exist.
	Update(ctx context.Context, product *model.Product) error

	// Delete removes a product. Returns model.ErrProductNotFound when
	// the ID does not exist.
	Delete(ctx context.Context, id string) error

	// Count returns the number of products in the catalogue.
	Count(ctx context.Context) (int, error)
}

// UserRepository defines the interface for user data access operations.
type UserRepository interface {
	// GetByID retrieves a user by ID. Returns (nil, nil) when absent.
	GetByID(ctx context.Context, id string) (*model.User, error)

	// Create inserts a new user record.
	Create(ctx context.Context, user *model.User) error
}

// OrderRepository defines the interface for order data access operations.
// Order and order-item inserts are independent statements with no
// wrapping transaction; the checkout pipeline relies on that.
type OrderRepository interface {
	// CreateOrder inserts a new order.
	CreateOrder(ctx context.Context, order *model.Order) error

	// CreateOrderItem inserts a single order line.
	CreateOrderItem(ctx context.Context, item *model.OrderItem) error

	// GetAll retrieves all orders, newest first, with nested items and users.
	GetAll(ctx context.Context) ([]model.OrderDetail, error)

	// GetByID retrieves an order by its ID along with its items.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Order, []model.OrderItem, error)

	// UpdateStatus sets the status of an order. Returns
	// model.ErrOrderNotFound when the ID does not exist.
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*model.Order, error)
}
