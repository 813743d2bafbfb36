package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	catalogapp "github.com/foodcourt/backend/internal/application/catalog"
	"github.com/foodcourt/backend/internal/domain/catalog"
	"github.com/foodcourt/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockFoodRepository implements catalog.Repository for testing
type MockFoodRepository struct {
	mock.Mock
}

func (m *MockFoodRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.FoodItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.FoodItem), args.Error(1)
}

func (m *MockFoodRepository) FindAll(ctx context.Context) ([]catalog.FoodItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.FoodItem), args.Error(1)
}

func (m *MockFoodRepository) FindActive(ctx context.Context) ([]catalog.FoodItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.FoodItem), args.Error(1)
}

func (m *MockFoodRepository) Save(ctx context.Context, item *catalog.FoodItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockFoodRepository) Update(ctx context.Context, item *catalog.FoodItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockFoodRepository) UpdateStock(ctx context.Context, id uuid.UUID, availableQty int) error {
	args := m.Called(ctx, id, availableQty)
	return args.Error(0)
}

func (m *MockFoodRepository) AdjustStock(ctx context.Context, id uuid.UUID, delta int) (bool, error) {
	args := m.Called(ctx, id, delta)
	return args.Bool(0), args.Error(1)
}

func (m *MockFoodRepository) HasOrderReferences(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockFoodRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func setupFoodHandler(foodRepo *MockFoodRepository) *FoodHandler {
	return NewFoodHandler(catalogapp.NewFoodService(foodRepo))
}

func testFoodItem(t *testing.T) *catalog.FoodItem {
	t.Helper()
	item, err := catalog.NewFoodItem("Margherita", "", decimal.NewFromInt(9), "", 20, nil)
	require.NoError(t, err)
	return item
}

func TestFoodHandler_List(t *testing.T) {
	foodRepo := new(MockFoodRepository)
	handler := setupFoodHandler(foodRepo)

	item := testFoodItem(t)
	foodRepo.On("FindAll", mock.Anything).Return([]catalog.FoodItem{*item}, nil)

	router := authedRouter(nil)
	router.GET("/food", handler.List)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/food", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	assert.True(t, resp.Success)
	foodRepo.AssertExpectations(t)
}

func TestFoodHandler_Get_NotFound(t *testing.T) {
	foodRepo := new(MockFoodRepository)
	handler := setupFoodHandler(foodRepo)

	id := uuid.New()
	foodRepo.On("FindByID", mock.Anything, id).Return(nil, shared.ErrNotFound)

	router := authedRouter(nil)
	router.GET("/food/:id", handler.Get)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/food/"+id.String(), nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	foodRepo.AssertExpectations(t)
}

func TestFoodHandler_Create_Success(t *testing.T) {
	foodRepo := new(MockFoodRepository)
	handler := setupFoodHandler(foodRepo)

	foodRepo.On("Save", mock.Anything, mock.AnythingOfType("*catalog.FoodItem")).Return(nil)

	router := authedRouter(adminClaims())
	router.POST("/food", handler.Create)

	body, _ := json.Marshal(catalogapp.CreateFoodItemRequest{
		Name:         "Margherita",
		Price:        decimal.NewFromInt(9),
		AvailableQty: 20,
	})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/food", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	foodRepo.AssertExpectations(t)
}

func TestFoodHandler_Create_InvalidJSON(t *testing.T) {
	foodRepo := new(MockFoodRepository)
	handler := setupFoodHandler(foodRepo)

	router := authedRouter(adminClaims())
	router.POST("/food", handler.Create)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/food", bytes.NewBufferString("not json"))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	foodRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestFoodHandler_UpdateStock(t *testing.T) {
	foodRepo := new(MockFoodRepository)
	handler := setupFoodHandler(foodRepo)

	item := testFoodItem(t)
	foodRepo.On("FindByID", mock.Anything, item.ID).Return(item, nil)
	foodRepo.On("UpdateStock", mock.Anything, item.ID, 5).Return(nil)

	router := authedRouter(adminClaims())
	router.PATCH("/food/:id/stock", handler.UpdateStock)

	body, _ := json.Marshal(catalogapp.UpdateStockRequest{AvailableQty: 5})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/food/"+item.ID.String()+"/stock", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	foodRepo.AssertExpectations(t)
}

func TestFoodHandler_Delete(t *testing.T) {
	t.Run("unreferenced item is deleted", func(t *testing.T) {
		foodRepo := new(MockFoodRepository)
		handler := setupFoodHandler(foodRepo)

		item := testFoodItem(t)
		foodRepo.On("FindByID", mock.Anything, item.ID).Return(item, nil)
		foodRepo.On("HasOrderReferences", mock.Anything, item.ID).Return(false, nil)
		foodRepo.On("Delete", mock.Anything, item.ID).Return(nil)

		router := authedRouter(adminClaims())
		router.DELETE("/food/:id", handler.Delete)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/food/"+item.ID.String(), nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		resp := decodeResponse(t, w)
		data := resp.Data.(map[string]interface{})
		assert.Equal(t, true, data["deleted"])
		assert.Equal(t, false, data["deactivated"])
		foodRepo.AssertExpectations(t)
	})

	t.Run("referenced item is deactivated instead", func(t *testing.T) {
		foodRepo := new(MockFoodRepository)
		handler := setupFoodHandler(foodRepo)

		item := testFoodItem(t)
		foodRepo.On("FindByID", mock.Anything, item.ID).Return(item, nil)
		foodRepo.On("HasOrderReferences", mock.Anything, item.ID).Return(true, nil)
		foodRepo.On("Update", mock.Anything, item).Return(nil)

		router := authedRouter(adminClaims())
		router.DELETE("/food/:id", handler.Delete)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/food/"+item.ID.String(), nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		resp := decodeResponse(t, w)
		data := resp.Data.(map[string]interface{})
		assert.Equal(t, false, data["deleted"])
		assert.Equal(t, true, data["deactivated"])
		assert.False(t, item.IsActive)
		foodRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}
