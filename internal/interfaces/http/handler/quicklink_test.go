package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	portalapp "github.com/foodcourt/backend/internal/application/portal"
	"github.com/foodcourt/backend/internal/domain/portal"
	"github.com/foodcourt/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockQuickLinkRepository implements portal.Repository for testing
type MockQuickLinkRepository struct {
	mock.Mock
}

func (m *MockQuickLinkRepository) FindByID(ctx context.Context, id uuid.UUID) (*portal.QuickLink, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*portal.QuickLink), args.Error(1)
}

func (m *MockQuickLinkRepository) FindAll(ctx context.Context) ([]portal.QuickLink, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]portal.QuickLink), args.Error(1)
}

func (m *MockQuickLinkRepository) FindActive(ctx context.Context) ([]portal.QuickLink, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]portal.QuickLink), args.Error(1)
}

func (m *MockQuickLinkRepository) Save(ctx context.Context, link *portal.QuickLink) error {
	args := m.Called(ctx, link)
	return args.Error(0)
}

func (m *MockQuickLinkRepository) Update(ctx context.Context, link *portal.QuickLink) error {
	args := m.Called(ctx, link)
	return args.Error(0)
}

func (m *MockQuickLinkRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func setupQuickLinkHandler(linkRepo *MockQuickLinkRepository) *QuickLinkHandler {
	return NewQuickLinkHandler(portalapp.NewQuickLinkService(linkRepo))
}

func testQuickLink(t *testing.T) *portal.QuickLink {
	t.Helper()
	link, err := portal.NewQuickLink("Menu", "Weekly menu overview", "https://example.com/menu")
	require.NoError(t, err)
	return link
}

func TestQuickLinkHandler_ListActive(t *testing.T) {
	linkRepo := new(MockQuickLinkRepository)
	handler := setupQuickLinkHandler(linkRepo)

	link := testQuickLink(t)
	linkRepo.On("FindActive", mock.Anything).Return([]portal.QuickLink{*link}, nil)

	router := authedRouter(nil)
	router.GET("/quicklinks", handler.ListActive)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/quicklinks", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	assert.True(t, resp.Success)
	linkRepo.AssertExpectations(t)
}

func TestQuickLinkHandler_Create(t *testing.T) {
	linkRepo := new(MockQuickLinkRepository)
	handler := setupQuickLinkHandler(linkRepo)

	linkRepo.On("Save", mock.Anything, mock.AnythingOfType("*portal.QuickLink")).Return(nil)

	router := authedRouter(adminClaims())
	router.POST("/quicklinks", handler.Create)

	body, _ := json.Marshal(portalapp.CreateQuickLinkRequest{
		Title:       "Menu",
		Description: "Weekly menu overview",
		URL:         "https://example.com/menu",
	})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/quicklinks", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	linkRepo.AssertExpectations(t)
}

func TestQuickLinkHandler_SetActive(t *testing.T) {
	t.Run("deactivates a link", func(t *testing.T) {
		linkRepo := new(MockQuickLinkRepository)
		handler := setupQuickLinkHandler(linkRepo)

		link := testQuickLink(t)
		linkRepo.On("FindByID", mock.Anything, link.ID).Return(link, nil)
		linkRepo.On("Update", mock.Anything, link).Return(nil)

		router := authedRouter(adminClaims())
		router.PATCH("/quicklinks/:id/active", handler.SetActive)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPatch, "/quicklinks/"+link.ID.String()+"/active",
			bytes.NewBufferString(`{"active": false}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.False(t, link.Active)
	})

	t.Run("rejects missing flag", func(t *testing.T) {
		linkRepo := new(MockQuickLinkRepository)
		handler := setupQuickLinkHandler(linkRepo)

		link := testQuickLink(t)

		router := authedRouter(adminClaims())
		router.PATCH("/quicklinks/:id/active", handler.SetActive)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPatch, "/quicklinks/"+link.ID.String()+"/active",
			bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		linkRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestQuickLinkHandler_Delete_NotFound(t *testing.T) {
	linkRepo := new(MockQuickLinkRepository)
	handler := setupQuickLinkHandler(linkRepo)

	id := uuid.New()
	linkRepo.On("FindByID", mock.Anything, id).Return(nil, shared.ErrNotFound)

	router := authedRouter(adminClaims())
	router.DELETE("/quicklinks/:id", handler.Delete)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/quicklinks/"+id.String(), nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	linkRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
