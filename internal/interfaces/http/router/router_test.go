package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/foodcourt/backend/internal/interfaces/http/handler"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func testHandlers() Handlers {
	return Handlers{
		Auth:      handler.NewAuthHandler(nil),
		Event:     handler.NewEventHandler(nil, nil, nil, nil),
		Team:      handler.NewTeamHandler(nil, nil, nil),
		Food:      handler.NewFoodHandler(nil),
		Order:     handler.NewOrderHandler(nil),
		QuickLink: handler.NewQuickLinkHandler(nil),
		System:    handler.NewSystemHandler(nil),
	}
}

func passthrough() gin.HandlerFunc {
	return func(c *gin.Context) { c.Next() }
}

func testGuards() Guards {
	return Guards{
		Authenticate: passthrough(),
		AdminOnly:    passthrough(),
		TeamOnly:     passthrough(),
	}
}

func performRequest(engine *gin.Engine, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, nil)
	engine.ServeHTTP(w, req)
	return w
}

func routeSet(engine *gin.Engine) map[string]bool {
	routes := make(map[string]bool)
	for _, route := range engine.Routes() {
		routes[route.Method+" "+route.Path] = true
	}
	return routes
}

func TestRouter_Setup_RegistersRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)

	engine := gin.New()
	New(engine, testHandlers(), testGuards()).Setup()

	routes := routeSet(engine)

	expected := []string{
		"GET /health",
		"GET /metrics",
		"POST /api/v1/auth/admin/login",
		"POST /api/v1/auth/team/login",
		"POST /api/v1/auth/refresh",
		"POST /api/v1/auth/logout",
		"GET /api/v1/events",
		"GET /api/v1/events/:id",
		"GET /api/v1/events/:id/teams",
		"GET /api/v1/events/:id/food",
		"GET /api/v1/events/:id/food/available",
		"POST /api/v1/events",
		"PUT /api/v1/events/:id",
		"DELETE /api/v1/events/:id",
		"POST /api/v1/events/:id/food",
		"PUT /api/v1/events/food-allocations/:itemId",
		"DELETE /api/v1/events/food-allocations/:itemId",
		"GET /api/v1/teams",
		"GET /api/v1/teams/stats",
		"GET /api/v1/teams/:id",
		"GET /api/v1/teams/:id/orders",
		"POST /api/v1/teams",
		"POST /api/v1/teams/bulk",
		"PUT /api/v1/teams/:id",
		"DELETE /api/v1/teams/:id",
		"POST /api/v1/teams/:id/event",
		"GET /api/v1/teams/:id/credentials",
		"POST /api/v1/teams/:id/credentials",
		"PUT /api/v1/credentials/:id",
		"DELETE /api/v1/credentials/:id",
		"POST /api/v1/orders",
		"GET /api/v1/orders",
		"GET /api/v1/orders/team/:teamId",
		"GET /api/v1/orders/event/:id",
		"GET /api/v1/orders/:id",
		"POST /api/v1/orders/:id/cancel",
		"PATCH /api/v1/orders/:id/status",
		"PATCH /api/v1/orders/:id/payment",
		"GET /api/v1/food",
		"GET /api/v1/food/:id",
		"POST /api/v1/food",
		"PUT /api/v1/food/:id",
		"PATCH /api/v1/food/:id/stock",
		"DELETE /api/v1/food/:id",
		"GET /api/v1/quicklinks",
		"GET /api/v1/quicklinks/all",
		"POST /api/v1/quicklinks",
		"PUT /api/v1/quicklinks/:id",
		"PATCH /api/v1/quicklinks/:id/active",
		"DELETE /api/v1/quicklinks/:id",
	}
	for _, route := range expected {
		assert.True(t, routes[route], "missing route %s", route)
	}
}

func TestRouter_WithAPIVersion(t *testing.T) {
	gin.SetMode(gin.TestMode)

	engine := gin.New()
	New(engine, testHandlers(), testGuards(), WithAPIVersion("v2")).Setup()

	routes := routeSet(engine)
	assert.True(t, routes["GET /api/v2/events"])
	assert.False(t, routes["GET /api/v1/events"])
}

func TestRouter_LoginLimitGuard(t *testing.T) {
	gin.SetMode(gin.TestMode)

	limited := false
	guards := testGuards()
	guards.LoginLimit = func(c *gin.Context) {
		limited = true
		c.AbortWithStatus(http.StatusTooManyRequests)
	}

	engine := gin.New()
	New(engine, testHandlers(), guards).Setup()

	w := performRequest(engine, http.MethodPost, "/api/v1/auth/admin/login")
	assert.True(t, limited)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}
