package service

import (
	"context"
	"testing"

	"glassysee/internal/cart"
	"glassysee/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCartService_AddItem(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()
	sessionID := "session-1"

	product := &model.Product{
		ID:       "prod-1",
		Name:     "METROPOLIS",
		Price:    485,
		Image:    "/products/metropolis.jpg",
		Category: model.CategorySunglasses,
		InStock:  true,
	}

	t.Run("Snapshots product fields into the line", func(t *testing.T) {
		productRepo := new(MockProductRepository)
		userRepo := new(MockUserRepository)
		productRepo.On("GetByID", ctx, "prod-1").Return(product, nil)
		userRepo.On("GetByID", ctx, sessionID).Return(&model.User{ID: sessionID}, nil)

		svc := NewCartService(cart.NewStore(logger), productRepo, userRepo, logger)
		view, err := svc.AddItem(ctx, sessionID, "prod-1", 2)

		require.NoError(t, err)
		require.Len(t, view.Items, 1)
		assert.Equal(t, "METROPOLIS", view.Items[0].Name)
		assert.Equal(t, 485.0, view.Items[0].Price)
		assert.Equal(t, 2, view.Items[0].Quantity)
		assert.Equal(t, 2, view.TotalItems)
		assert.InDelta(t, 970.0, view.TotalPrice, 0.001)
	})

	t.Run("Unknown product rejected", func(t *testing.T) {
		productRepo := new(MockProductRepository)
		productRepo.On("GetByID", ctx, "missing").Return(nil, nil)

		svc := NewCartService(cart.NewStore(logger), productRepo, new(MockUserRepository), logger)
		_, err := svc.AddItem(ctx, sessionID, "missing", 1)

		assert.ErrorIs(t, err, model.ErrProductNotFound)
	})

	t.Run("Provisions a guest user for a fresh session", func(t *testing.T) {
		productRepo := new(MockProductRepository)
		userRepo := new(MockUserRepository)
		productRepo.On("GetByID", ctx, "prod-1").Return(product, nil)
		userRepo.On("GetByID", ctx, sessionID).Return(nil, nil)
		userRepo.On("Create", ctx, mock.MatchedBy(func(u *model.User) bool {
			return u.ID == sessionID &&
				u.Email == "guest_session-1@example.com" &&
				u.Name == "Guest User"
		})).Return(nil).Once()

		svc := NewCartService(cart.NewStore(logger), productRepo, userRepo, logger)
		_, err := svc.AddItem(ctx, sessionID, "prod-1", 1)

		require.NoError(t, err)
		userRepo.AssertExpectations(t)
	})

	t.Run("Existing session user is reused", func(t *testing.T) {
		productRepo := new(MockProductRepository)
		userRepo := new(MockUserRepository)
		productRepo.On("GetByID", ctx, "prod-1").Return(product, nil)
		userRepo.On("GetByID", ctx, sessionID).Return(&model.User{ID: sessionID}, nil)

		svc := NewCartService(cart.NewStore(logger), productRepo, userRepo, logger)
		_, err := svc.AddItem(ctx, sessionID, "prod-1", 1)

		require.NoError(t, err)
		userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Zero quantity defaults to one", func(t *testing.T) {
		productRepo := new(MockProductRepository)
		userRepo := new(MockUserRepository)
		productRepo.On("GetByID", ctx, "prod-1").Return(product, nil)
		userRepo.On("GetByID", ctx, sessionID).Return(&model.User{ID: sessionID}, nil)

		svc := NewCartService(cart.NewStore(logger), productRepo, userRepo, logger)
		view, err := svc.AddItem(ctx, sessionID, "prod-1", 0)

		require.NoError(t, err)
		assert.Equal(t, 1, view.TotalItems)
	})
}

func TestCartService_UpdateAndRemove(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()
	sessionID := "session-1"

	product := &model.Product{
		ID:       "prod-1",
		Name:     "AZURE",
		Price:    445,
		Image:    "/products/azure.jpg",
		Category: model.CategorySunglasses,
	}

	newServiceWithItem := func(t *testing.T) CartService {
		t.Helper()
		productRepo := new(MockProductRepository)
		userRepo := new(MockUserRepository)
		productRepo.On("GetByID", ctx, "prod-1").Return(product, nil)
		userRepo.On("GetByID", ctx, sessionID).Return(&model.User{ID: sessionID}, nil)

		svc := NewCartService(cart.NewStore(logger), productRepo, userRepo, logger)
		_, err := svc.AddItem(ctx, sessionID, "prod-1", 1)
		require.NoError(t, err)
		return svc
	}

	t.Run("UpdateQuantity sets the line quantity", func(t *testing.T) {
		svc := newServiceWithItem(t)

		view, err := svc.UpdateQuantity(ctx, sessionID, "prod-1", 3)

		require.NoError(t, err)
		assert.Equal(t, 3, view.TotalItems)
		assert.InDelta(t, 1335.0, view.TotalPrice, 0.001)
	})

	t.Run("UpdateQuantity to zero removes the line", func(t *testing.T) {
		svc := newServiceWithItem(t)

		view, err := svc.UpdateQuantity(ctx, sessionID, "prod-1", 0)

		require.NoError(t, err)
		assert.Empty(t, view.Items)
	})

	t.Run("RemoveItem empties the line", func(t *testing.T) {
		svc := newServiceWithItem(t)

		view, err := svc.RemoveItem(ctx, sessionID, "prod-1")

		require.NoError(t, err)
		assert.Empty(t, view.Items)
		assert.Equal(t, 0, view.TotalItems)
	})

	t.Run("Clear drops the session cart", func(t *testing.T) {
		svc := newServiceWithItem(t)

		require.NoError(t, svc.Clear(ctx, sessionID))

		view, err := svc.Get(ctx, sessionID)
		require.NoError(t, err)
		assert.Empty(t, view.Items)
	})
}

func TestCartService_Get_FreshSession(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	svc := NewCartService(cart.NewStore(logger), new(MockProductRepository), new(MockUserRepository), logger)

	view, err := svc.Get(ctx, "brand-new-session")

	require.NoError(t, err)
	assert.Empty(t, view.Items)
	assert.Equal(t, 0, view.TotalItems)
	assert.InDelta(t, 0.0, view.TotalPrice, 0.001)
}
