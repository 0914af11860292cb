package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"glassysee/internal/model"
	"glassysee/internal/notifier"
	"glassysee/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// orderService implements OrderService.
type orderService struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	userRepo    repository.UserRepository
	notifier    notifier.Notifier
	adminEmail  string
	logger      zerolog.Logger
}

// NewOrderService creates a new order service.
func NewOrderService(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	userRepo repository.UserRepository,
	n notifier.Notifier,
	adminEmail string,
	logger zerolog.Logger,
) OrderService {
	return &orderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		userRepo:    userRepo,
		notifier:    n,
		adminEmail:  adminEmail,
		logger:      logger.With().Str("service", "order").Logger(),
	}
}

// Checkout runs the order pipeline. The client-supplied total and
// per-line prices are recorded as-is; there is no server-side
// recomputation against the live catalogue. The order and its items
// are written as independent statements with no wrapping transaction,
// and email failures never fail the order.
func (s *orderService) Checkout(ctx context.Context, sessionID string, req *model.CheckoutRequest) (*model.CheckoutResponse, error) {
	if err := s.validateCheckoutRequest(req); err != nil {
		return nil, err
	}

	if err := s.validateProductsExist(ctx, req.Items); err != nil {
		return nil, err
	}

	if err := s.resolveUser(ctx, sessionID, req.CustomerInfo); err != nil {
		return nil, err
	}

	now := time.Now()
	order := &model.Order{
		ID:        uuid.New(),
		UserID:    sessionID,
		Total:     req.Total,
		Status:    model.OrderStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.orderRepo.CreateOrder(ctx, order); err != nil {
		s.logger.Error().Err(err).Str("order_id", order.ID.String()).Msg("failed to create order")
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	for _, item := range req.Items {
		orderItem := &model.OrderItem{
			ID:        uuid.New(),
			OrderID:   order.ID,
			ProductID: item.ID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		}

		if err := s.orderRepo.CreateOrderItem(ctx, orderItem); err != nil {
			s.logger.Error().
				Err(err).
				Str("order_id", order.ID.String()).
				Str("product_id", item.ID).
				Msg("failed to create order item")
			return nil, fmt.Errorf("failed to create order items: %w", err)
		}
	}

	s.sendConfirmationEmails(ctx, order, req)

	s.logger.Info().
		Str("order_id", order.ID.String()).
		Int("item_count", len(req.Items)).
		Float64("total", order.Total).
		Msg("order created successfully")

	return &model.CheckoutResponse{
		Success: true,
		OrderID: order.ID,
		Message: "Order created successfully",
	}, nil
}

// validateProductsExist checks every submitted item id against the
// catalogue. Prices are still taken from the request; only existence
// is enforced.
func (s *orderService) validateProductsExist(ctx context.Context, items []model.CheckoutItem) error {
	ids := make([]string, len(items))
	for i, item := range items {
		ids[i] = item.ID
	}

	products, err := s.productRepo.GetByIDs(ctx, ids)
	if err != nil {
		s.logger.Error().Err(err).Int("product_count", len(ids)).Msg("failed to validate products")
		return fmt.Errorf("failed to validate products: %w", err)
	}

	found := make(map[string]bool, len(products))
	for _, p := range products {
		found[p.ID] = true
	}

	for _, id := range ids {
		if !found[id] {
			s.logger.Warn().Str("product_id", id).Msg("checkout references unknown product")
			return model.ErrProductNotFound
		}
	}

	return nil
}

// resolveUser looks up the session user and creates one from the
// checkout form when absent.
func (s *orderService) resolveUser(ctx context.Context, sessionID string, info model.CustomerInfo) error {
	user, err := s.userRepo.GetByID(ctx, sessionID)
	if err != nil {
		s.logger.Error().Err(err).Str("session_id", sessionID).Msg("failed to look up session user")
		return fmt.Errorf("failed to resolve session user: %w", err)
	}
	if user != nil {
		return nil
	}

	newUser := &model.User{
		ID:        sessionID,
		Email:     info.Email,
		Name:      strings.TrimSpace(info.FirstName + " " + info.LastName),
		CreatedAt: time.Now(),
	}

	if err := s.userRepo.Create(ctx, newUser); err != nil {
		s.logger.Error().Err(err).Str("session_id", sessionID).Msg("failed to create user")
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

// sendConfirmationEmails renders and sends the customer confirmation
// and admin notification. Failures are logged and swallowed so the
// already-committed order still succeeds.
func (s *orderService) sendConfirmationEmails(ctx context.Context, order *model.Order, req *model.CheckoutRequest) {
	customerName := strings.TrimSpace(req.CustomerInfo.FirstName + " " + req.CustomerInfo.LastName)

	html, err := notifier.RenderOrderConfirmation(notifier.OrderEmailData{
		OrderID:         order.ID,
		CustomerName:    customerName,
		CustomerEmail:   req.CustomerInfo.Email,
		Items:           req.Items,
		Total:           req.Total,
		ShippingAddress: req.CustomerInfo,
	})
	if err != nil {
		s.logger.Error().Err(err).Str("order_id", order.ID.String()).Msg("failed to render confirmation email")
		return
	}

	// A failed customer send also skips the admin notification.
	if err := s.notifier.Send(ctx, notifier.Message{
		To:      []string{req.CustomerInfo.Email},
		Subject: notifier.CustomerSubject(order.ID),
		HTML:    html,
	}); err != nil {
		s.logger.Error().Err(err).Str("order_id", order.ID.String()).Msg("failed to send customer confirmation email")
		return
	}

	if s.adminEmail == "" {
		return
	}

	if err := s.notifier.Send(ctx, notifier.Message{
		To:      []string{s.adminEmail},
		Subject: notifier.AdminSubject(order.ID),
		HTML:    html,
	}); err != nil {
		s.logger.Error().Err(err).Str("order_id", order.ID.String()).Msg("failed to send admin notification email")
	}
}

// GetAll retrieves all orders with nested items and users.
func (s *orderService) GetAll(ctx context.Context) ([]model.OrderDetail, error) {
	orders, err := s.orderRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to get orders")
		return nil, fmt.Errorf("failed to get orders: %w", err)
	}

	s.logger.Debug().Int("count", len(orders)).Msg("retrieved orders")
	return orders, nil
}

// GetByID retrieves an order by its ID with its items.
func (s *orderService) GetByID(ctx context.Context, id uuid.UUID) (*model.OrderDetail, error) {
	order, items, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("order_id", id.String()).Msg("failed to get order")
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	if order == nil {
		s.logger.Debug().Str("order_id", id.String()).Msg("order not found")
		return nil, model.ErrOrderNotFound
	}

	detail := &model.OrderDetail{
		Order: *order,
		Items: make([]model.OrderItemDetail, len(items)),
	}
	for i, item := range items {
		detail.Items[i] = model.OrderItemDetail{OrderItem: item}
	}

	return detail, nil
}

// UpdateStatus sets an order's status. Any non-empty value is accepted;
// transitions are not enforced server-side.
func (s *orderService) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*model.Order, error) {
	if status == "" {
		return nil, model.ErrInvalidStatus
	}

	order, err := s.orderRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		if err == model.ErrOrderNotFound {
			return nil, err
		}
		s.logger.Error().Err(err).Str("order_id", id.String()).Msg("failed to update order status")
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}

	return order, nil
}

// validateCheckoutRequest validates the checkout payload.
func (s *orderService) validateCheckoutRequest(req *model.CheckoutRequest) error {
	if req == nil {
		return fmt.Errorf("checkout request is nil")
	}

	if len(req.Items) == 0 {
		return model.ErrEmptyCart
	}

	for i, item := range req.Items {
		if item.ID == "" {
			return fmt.Errorf("item %d: product ID is required", i)
		}
		if item.Quantity <= 0 {
			s.logger.Warn().
				Int("item_index", i).
				Str("product_id", item.ID).
				Int("quantity", item.Quantity).
				Msg("invalid quantity")
			return model.ErrInvalidQuantity
		}
	}

	if req.CustomerInfo.Email == "" {
		return fmt.Errorf("customer email is required")
	}

	return nil
}
