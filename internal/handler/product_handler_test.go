package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"glassysee/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProductHandler_GetAll(t *testing.T) {
	logger := zerolog.Nop()

	products := []model.Product{
		{ID: "1", Name: "METROPOLIS", Price: 485, Category: model.CategorySunglasses},
		{ID: "2", Name: "AZURE", Price: 445, Category: model.CategorySunglasses},
	}

	t.Run("Success", func(t *testing.T) {
		svc := new(MockProductService)
		svc.On("GetAll", mock.Anything, 50, 0).Return(products, nil)

		h := NewProductHandler(svc, logger)

		r := httptest.NewRequest(http.MethodGet, "/api/products", nil)
		w := httptest.NewRecorder()
		h.GetAll(w, r)

		assert.Equal(t, http.StatusOK, w.Code)

		var got []model.Product
		require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
		assert.Len(t, got, 2)
	})

	t.Run("Pagination parameters forwarded", func(t *testing.T) {
		svc := new(MockProductService)
		svc.On("GetAll", mock.Anything, 10, 20).Return([]model.Product{}, nil)

		h := NewProductHandler(svc, logger)

		r := httptest.NewRequest(http.MethodGet, "/api/products?limit=10&offset=20", nil)
		w := httptest.NewRecorder()
		h.GetAll(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		svc.AssertExpectations(t)
	})

	t.Run("Invalid limit", func(t *testing.T) {
		h := NewProductHandler(new(MockProductService), logger)

		r := httptest.NewRequest(http.MethodGet, "/api/products?limit=abc", nil)
		w := httptest.NewRecorder()
		h.GetAll(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Empty catalogue serialises as empty array", func(t *testing.T) {
		svc := new(MockProductService)
		svc.On("GetAll", mock.Anything, 50, 0).Return(nil, nil)

		h := NewProductHandler(svc, logger)

		r := httptest.NewRequest(http.MethodGet, "/api/products", nil)
		w := httptest.NewRecorder()
		h.GetAll(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, "[]", w.Body.String())
	})

	t.Run("Service failure", func(t *testing.T) {
		svc := new(MockProductService)
		svc.On("GetAll", mock.Anything, 50, 0).Return(nil, assert.AnError)

		h := NewProductHandler(svc, logger)

		r := httptest.NewRequest(http.MethodGet, "/api/products", nil)
		w := httptest.NewRecorder()
		h.GetAll(w, r)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestProductHandler_GetByID(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("Success", func(t *testing.T) {
		svc := new(MockProductService)
		svc.On("GetByID", mock.Anything, "prod-1").Return(&model.Product{ID: "prod-1", Name: "NOCTURNE"}, nil)

		h := NewProductHandler(svc, logger)

		r := httptest.NewRequest(http.MethodGet, "/api/products/prod-1", nil)
		w := httptest.NewRecorder()
		h.GetByID(w, r)

		assert.Equal(t, http.StatusOK, w.Code)

		var got model.Product
		require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
		assert.Equal(t, "NOCTURNE", got.Name)
	})

	t.Run("Not found", func(t *testing.T) {
		svc := new(MockProductService)
		svc.On("GetByID", mock.Anything, "missing").Return(nil, model.ErrProductNotFound)

		h := NewProductHandler(svc, logger)

		r := httptest.NewRequest(http.MethodGet, "/api/products/missing", nil)
		w := httptest.NewRecorder()
		h.GetByID(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestProductHandler_Create(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("Success", func(t *testing.T) {
		svc := new(MockProductService)
		svc.On("Create", mock.Anything, mock.AnythingOfType("*model.ProductRequest")).
			Return(&model.Product{ID: "new-id", Name: "SOLAR", Price: 505}, nil)

		h := NewProductHandler(svc, logger)

		body := `{"name":"SOLAR","price":505,"image":"/products/solar.jpg","category":"sunglasses","inStock":true}`
		r := httptest.NewRequest(http.MethodPost, "/api/products", bytes.NewBufferString(body))
		w := httptest.NewRecorder()
		h.Create(w, r)

		assert.Equal(t, http.StatusCreated, w.Code)

		var got model.Product
		require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
		assert.Equal(t, "new-id", got.ID)
	})

	t.Run("Invalid JSON", func(t *testing.T) {
		h := NewProductHandler(new(MockProductService), logger)

		r := httptest.NewRequest(http.MethodPost, "/api/products", bytes.NewBufferString("{not json"))
		w := httptest.NewRecorder()
		h.Create(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Validation failure", func(t *testing.T) {
		svc := new(MockProductService)
		svc.On("Create", mock.Anything, mock.AnythingOfType("*model.ProductRequest")).
			Return(nil, model.ErrInvalidCategory)

		h := NewProductHandler(svc, logger)

		body := `{"name":"SOLAR","price":505,"image":"/x.jpg","category":"monocles"}`
		r := httptest.NewRequest(http.MethodPost, "/api/products", bytes.NewBufferString(body))
		w := httptest.NewRecorder()
		h.Create(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestProductHandler_Update(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("Success", func(t *testing.T) {
		svc := new(MockProductService)
		svc.On("Update", mock.Anything, "prod-1", mock.AnythingOfType("*model.ProductRequest")).
			Return(&model.Product{ID: "prod-1", Name: "ETHEREAL"}, nil)

		h := NewProductHandler(svc, logger)

		body := `{"name":"ETHEREAL","price":495,"image":"/products/ethereal.jpg","category":"eyeglasses"}`
		r := httptest.NewRequest(http.MethodPut, "/api/products/prod-1", bytes.NewBufferString(body))
		w := httptest.NewRecorder()
		h.Update(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Not found", func(t *testing.T) {
		svc := new(MockProductService)
		svc.On("Update", mock.Anything, "missing", mock.AnythingOfType("*model.ProductRequest")).
			Return(nil, model.ErrProductNotFound)

		h := NewProductHandler(svc, logger)

		body := `{"name":"X","price":1,"image":"/x.jpg","category":"sunglasses"}`
		r := httptest.NewRequest(http.MethodPut, "/api/products/missing", bytes.NewBufferString(body))
		w := httptest.NewRecorder()
		h.Update(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestProductHandler_Delete(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("Success", func(t *testing.T) {
		svc := new(MockProductService)
		svc.On("Delete", mock.Anything, "prod-1").Return(nil)

		h := NewProductHandler(svc, logger)

		r := httptest.NewRequest(http.MethodDelete, "/api/products/prod-1", nil)
		w := httptest.NewRecorder()
		h.Delete(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"success":true}`, w.Body.String())
	})

	t.Run("Not found", func(t *testing.T) {
		svc := new(MockProductService)
		svc.On("Delete", mock.Anything, "missing").Return(model.ErrProductNotFound)

		h := NewProductHandler(svc, logger)

		r := httptest.NewRequest(http.MethodDelete, "/api/products/missing", nil)
		w := httptest.NewRecorder()
		h.Delete(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
