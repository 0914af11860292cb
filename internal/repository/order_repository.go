package repository

import (
	"context"
	"fmt"
	"time"

	"glassysee/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// orderRepository implements the OrderRepository interface using PostgreSQL.
type orderRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewOrderRepository creates a new PostgreSQL-backed order repository.
func NewOrderRepository(pool *pgxpool.Pool, logger zerolog.Logger) OrderRepository {
	return &orderRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "order").Logger(),
	}
}

// CreateOrder inserts a new order.
func (r *orderRepository) CreateOrder(ctx context.Context, order *model.Order) error {
	query := `
		INSERT INTO orders (id, user_id, total, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.pool.Exec(ctx, query,
		order.ID, order.UserID, order.Total, order.Status, order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("order_id", order.ID.String()).
			Msg("failed to create order")
		return fmt.Errorf("failed to create order: %w", err)
	}

	r.logger.Debug().
		Str("order_id", order.ID.String()).
		Msg("order created successfully")

	return nil
}

// CreateOrderItem inserts a single order line.
func (r *orderRepository) CreateOrderItem(ctx context.Context, item *model.OrderItem) error {
	query := `
		INSERT INTO order_items (id, order_id, product_id, quantity, price)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.pool.Exec(ctx, query,
		item.ID, item.OrderID, item.ProductID, item.Quantity, item.Price,
	)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("order_id", item.OrderID.String()).
			Str("product_id", item.ProductID).
			Msg("failed to create order item")
		return fmt.Errorf("failed to create order item: %w", err)
	}

	return nil
}

// GetAll retrieves all orders, newest first, with nested items and users.
func (r *orderRepository) GetAll(ctx context.Context) ([]model.OrderDetail, error) {
	orderQuery := `
		SELECT o.id, o.user_id, o.total, o.status, o.created_at, o.updated_at,
		       u.id, u.email, u.name, u.created_at
		FROM orders o
		JOIN users u ON u.id = o.user_id
		ORDER BY o.created_at DESC
	`

	rows, err := r.pool.Query(ctx, orderQuery)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query orders")
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	var details []model.OrderDetail
	index := make(map[uuid.UUID]int)
	for rows.Next() {
		var d model.OrderDetail
		var u model.User
		err := rows.Scan(
			&d.ID, &d.UserID, &d.Total, &d.Status, &d.CreatedAt, &d.UpdatedAt,
			&u.ID, &u.Email, &u.Name, &u.CreatedAt,
		)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan order row")
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		d.User = &u
		d.Items = []model.OrderItemDetail{}
		index[d.Order.ID] = len(details)
		details = append(details, d)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating order rows")
		return nil, fmt.Errorf("error iterating orders: %w", err)
	}

	if len(details) == 0 {
		return []model.OrderDetail{}, nil
	}

	itemQuery := `
		SELECT i.id, i.order_id, i.product_id, i.quantity, i.price,
		       p.id, p.name, p.description, p.price, p.image, p.category, p.collection, p.in_stock, p.created_at, p.updated_at
		FROM order_items i
		LEFT JOIN products p ON p.id = i.product_id
		ORDER BY i.created_at
	`

	itemRows, err := r.pool.Query(ctx, itemQuery)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query order items")
		return nil, fmt.Errorf("failed to query order items: %w", err)
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var item model.OrderItemDetail
		var pID, pName, pImage, pCategory *string
		var pDescription, pCollection *string
		var pPrice *float64
		var pInStock *bool
		var pCreatedAt, pUpdatedAt *time.Time
		err := itemRows.Scan(
			&item.OrderItem.ID, &item.OrderID, &item.ProductID, &item.Quantity, &item.OrderItem.Price,
			&pID, &pName, &pDescription, &pPrice, &pImage, &pCategory, &pCollection, &pInStock, &pCreatedAt, &pUpdatedAt,
		)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan order item row")
			return nil, fmt.Errorf("failed to scan order item: %w", err)
		}

		// Products may have been deleted after purchase; the line item survives.
		if pID != nil {
			item.Product = &model.Product{
				ID:          *pID,
				Name:        *pName,
				Description: pDescription,
				Price:       *pPrice,
				Image:       *pImage,
				Category:    *pCategory,
				Collection:  pCollection,
				InStock:     *pInStock,
				CreatedAt:   *pCreatedAt,
				UpdatedAt:   *pUpdatedAt,
			}
		}

		if idx, ok := index[item.OrderID]; ok {
			details[idx].Items = append(details[idx].Items, item)
		}
	}

	if err := itemRows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating order item rows")
		return nil, fmt.Errorf("error iterating order items: %w", err)
	}

	return details, nil
}

// GetByID retrieves an order by its ID along with its items.
func (r *orderRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Order, []model.OrderItem, error) {
	orderQuery := `
		SELECT id, user_id, total, status, created_at, updated_at
		FROM orders
		WHERE id = $1
	`

	var order model.Order
	err := r.pool.QueryRow(ctx, orderQuery, id).Scan(
		&order.ID,
		&order.UserID,
		&order.Total,
		&order.Status,
		&order.CreatedAt,
		&order.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().Str("order_id", id.String()).Msg("order not found")
			return nil, nil, nil
		}
		r.logger.Error().Err(err).Str("order_id", id.String()).Msg("failed to query order")
		return nil, nil, fmt.Errorf("failed to query order: %w", err)
	}

	itemsQuery := `
		SELECT id, order_id, product_id, quantity, price
		FROM order_items
		WHERE order_id = $1
		ORDER BY created_at
	`

	rows, err := r.pool.Query(ctx, itemsQuery, id)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("order_id", id.String()).
			Msg("failed to query order items")
		return nil, nil, fmt.Errorf("failed to query order items: %w", err)
	}
	defer rows.Close()

	var items []model.OrderItem
	for rows.Next() {
		var item model.OrderItem
		err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.Quantity, &item.Price)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan order item row")
			return nil, nil, fmt.Errorf("failed to scan order item: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating order item rows")
		return nil, nil, fmt.Errorf("error iterating order items: %w", err)
	}

	return &order, items, nil
}

// UpdateStatus sets the status of an order.
func (r *orderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*model.Order, error) {
	query := `
		UPDATE orders
		SET status = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING id, user_id, total, status, created_at, updated_at
	`

	var order model.Order
	err := r.pool.QueryRow(ctx, query, id, status).Scan(
		&order.ID,
		&order.UserID,
		&order.Total,
		&order.Status,
		&order.CreatedAt,
		&order.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().Str("order_id", id.String()).Msg("order not found for status update")
			return nil, model.ErrOrderNotFound
		}
		r.logger.Error().
			Err(err).
			Str("order_id", id.String()).
			Str("status", status).
			Msg("failed to update order status")
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}

	r.logger.Info().
		Str("order_id", id.String()).
		Str("status", status).
		Msg("order status updated")

	return &order, nil
}
