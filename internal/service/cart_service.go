package service

import (
	"context"
	"fmt"
	"time"

	"glassysee/internal/cart"
	"glassysee/internal/model"
	"glassysee/internal/repository"

	"github.com/rs/zerolog"
)

// cartService implements CartService on top of the in-memory session
// cart store. Product details are snapshotted into the cart line when
// the item is added.
type cartService struct {
	carts       *cart.Store
	productRepo repository.ProductRepository
	userRepo    repository.UserRepository
	logger      zerolog.Logger
}

// NewCartService creates a new cart service.
func NewCartService(
	carts *cart.Store,
	productRepo repository.ProductRepository,
	userRepo repository.UserRepository,
	logger zerolog.Logger,
) CartService {
	return &cartService{
		carts:       carts,
		productRepo: productRepo,
		userRepo:    userRepo,
		logger:      logger.With().Str("service", "cart").Logger(),
	}
}

// Get returns the session's cart view.
func (s *cartService) Get(ctx context.Context, sessionID string) (*cart.View, error) {
	var view *cart.View
	s.carts.View(sessionID, func(c *cart.Cart) {
		view = c.Snapshot()
	})
	return view, nil
}

// AddItem adds a product to the session cart.
func (s *cartService) AddItem(ctx context.Context, sessionID, productID string, quantity int) (*cart.View, error) {
	if quantity <= 0 {
		quantity = 1
	}

	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		s.logger.Error().Err(err).Str("product_id", productID).Msg("failed to load product for cart")
		return nil, fmt.Errorf("failed to add to cart: %w", err)
	}
	if product == nil {
		return nil, model.ErrProductNotFound
	}

	if err := s.ensureGuestUser(ctx, sessionID); err != nil {
		return nil, err
	}

	var view *cart.View
	s.carts.Update(sessionID, func(c *cart.Cart) {
		c.AddItem(cart.LineItem{
			ProductID:  product.ID,
			Name:       product.Name,
			Price:      product.Price,
			Image:      product.Image,
			Category:   product.Category,
			Collection: product.Collection,
			Quantity:   quantity,
		})
		view = c.Snapshot()
	})

	s.logger.Debug().
		Str("session_id", sessionID).
		Str("product_id", productID).
		Int("quantity", quantity).
		Msg("item added to cart")

	return view, nil
}

// UpdateQuantity sets a line's quantity; zero or below removes it.
func (s *cartService) UpdateQuantity(ctx context.Context, sessionID, productID string, quantity int) (*cart.View, error) {
	var view *cart.View
	s.carts.Update(sessionID, func(c *cart.Cart) {
		c.UpdateQuantity(productID, quantity)
		view = c.Snapshot()
	})
	return view, nil
}

// RemoveItem removes a line from the session cart.
func (s *cartService) RemoveItem(ctx context.Context, sessionID, productID string) (*cart.View, error) {
	var view *cart.View
	s.carts.Update(sessionID, func(c *cart.Cart) {
		c.RemoveItem(productID)
		view = c.Snapshot()
	})
	return view, nil
}

// Clear empties the session cart.
func (s *cartService) Clear(ctx context.Context, sessionID string) error {
	s.carts.Clear(sessionID)
	return nil
}

// ensureGuestUser provisions a guest user record for the session when
// none exists yet.
func (s *cartService) ensureGuestUser(ctx context.Context, sessionID string) error {
	user, err := s.userRepo.GetByID(ctx, sessionID)
	if err != nil {
		s.logger.Error().Err(err).Str("session_id", sessionID).Msg("failed to look up session user")
		return fmt.Errorf("failed to resolve session user: %w", err)
	}
	if user != nil {
		return nil
	}

	guest := &model.User{
		ID:        sessionID,
		Email:     fmt.Sprintf("guest_%s@example.com", sessionID),
		Name:      "Guest User",
		CreatedAt: time.Now(),
	}

	if err := s.userRepo.Create(ctx, guest); err != nil {
		s.logger.Error().Err(err).Str("session_id", sessionID).Msg("failed to create guest user")
		return fmt.Errorf("failed to create guest user: %w", err)
	}

	s.logger.Debug().Str("session_id", sessionID).Msg("guest user provisioned")
	return nil
}
