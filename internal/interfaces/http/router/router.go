package router

import (
	"github.com/foodcourt/backend/internal/interfaces/http/handler"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handlers collects the HTTP handlers wired into the route tree
type Handlers struct {
	Auth      *handler.AuthHandler
	Event     *handler.EventHandler
	Team      *handler.TeamHandler
	Food      *handler.FoodHandler
	Order     *handler.OrderHandler
	QuickLink *handler.QuickLinkHandler
	System    *handler.SystemHandler
}

// Guards are the auth middlewares applied per route class. Read-only
// GETs are public; mutations require an admin token, except order
// placement and cancellation which belong to teams.
type Guards struct {
	// Authenticate validates the bearer token and loads claims
	Authenticate gin.HandlerFunc
	// AdminOnly rejects non-admin principals, runs after Authenticate
	AdminOnly gin.HandlerFunc
	// TeamOnly rejects non-team principals, runs after Authenticate
	TeamOnly gin.HandlerFunc
	// LoginLimit rate-limits the credential endpoints; nil disables it
	LoginLimit gin.HandlerFunc
}

// Router wires the API route tree onto a gin engine
type Router struct {
	engine     *gin.Engine
	apiVersion string
	handlers   Handlers
	guards     Guards
}

// Option is a functional option for Router configuration
type Option func(*Router)

// WithAPIVersion sets the API version prefix (e.g. "v1", "v2")
func WithAPIVersion(version string) Option {
	return func(r *Router) {
		r.apiVersion = version
	}
}

// New creates a Router over the given engine
func New(engine *gin.Engine, handlers Handlers, guards Guards, opts ...Option) *Router {
	r := &Router{
		engine:     engine,
		apiVersion: "v1",
		handlers:   handlers,
		guards:     guards,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Setup registers every route. Health and metrics live outside the
// versioned group so probes and scrapers are not tied to the API version.
func (r *Router) Setup() {
	h := r.handlers

	r.engine.GET("/health", h.System.Health)
	r.engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.engine.Group("/api/" + r.apiVersion)

	auth := api.Group("/auth")
	if r.guards.LoginLimit != nil {
		auth.Use(r.guards.LoginLimit)
	}
	auth.POST("/admin/login", h.Auth.AdminLogin)
	auth.POST("/team/login", h.Auth.TeamLogin)
	auth.POST("/refresh", h.Auth.Refresh)
	auth.POST("/logout", h.Auth.Logout)

	admin := func(handlers ...gin.HandlerFunc) []gin.HandlerFunc {
		return append([]gin.HandlerFunc{r.guards.Authenticate, r.guards.AdminOnly}, handlers...)
	}
	team := func(handlers ...gin.HandlerFunc) []gin.HandlerFunc {
		return append([]gin.HandlerFunc{r.guards.Authenticate, r.guards.TeamOnly}, handlers...)
	}
	authed := func(handlers ...gin.HandlerFunc) []gin.HandlerFunc {
		return append([]gin.HandlerFunc{r.guards.Authenticate}, handlers...)
	}

	events := api.Group("/events")
	events.GET("", h.Event.List)
	events.GET("/:id", h.Event.Get)
	events.GET("/:id/teams", h.Event.ListTeams)
	events.GET("/:id/food", h.Event.ListFood)
	events.GET("/:id/food/available", h.Event.ListAvailableFood)
	events.POST("", admin(h.Event.Create)...)
	events.PUT("/:id", admin(h.Event.Update)...)
	events.DELETE("/:id", admin(h.Event.Delete)...)
	events.POST("/:id/food", admin(h.Event.AllocateFood)...)
	events.PUT("/food-allocations/:itemId", admin(h.Event.UpdateAllocationCap)...)
	events.DELETE("/food-allocations/:itemId", admin(h.Event.DeallocateFood)...)

	teams := api.Group("/teams")
	teams.GET("", h.Team.List)
	teams.GET("/stats", h.Team.Stats)
	teams.GET("/:id", h.Team.Get)
	teams.GET("/:id/orders", h.Team.ListOrders)
	teams.POST("", admin(h.Team.Create)...)
	teams.POST("/bulk", admin(h.Team.CreateBulk)...)
	teams.PUT("/:id", admin(h.Team.Update)...)
	teams.DELETE("/:id", admin(h.Team.Remove)...)
	teams.POST("/:id/event", admin(h.Team.AssignEvent)...)
	teams.GET("/:id/credentials", admin(h.Team.ListCredentials)...)
	teams.POST("/:id/credentials", admin(h.Team.CreateCredential)...)

	credentials := api.Group("/credentials")
	credentials.PUT("/:id", admin(h.Team.UpdateCredential)...)
	credentials.DELETE("/:id", admin(h.Team.DeleteCredential)...)

	orders := api.Group("/orders")
	orders.POST("", team(h.Order.Place)...)
	orders.GET("", admin(h.Order.List)...)
	orders.GET("/team/:teamId", h.Order.ListByTeam)
	orders.GET("/event/:id", h.Event.ListOrders)
	orders.GET("/:id", authed(h.Order.Get)...)
	orders.POST("/:id/cancel", authed(h.Order.Cancel)...)
	orders.PATCH("/:id/status", admin(h.Order.UpdateStatus)...)
	orders.PATCH("/:id/payment", admin(h.Order.UpdatePayment)...)

	food := api.Group("/food")
	food.GET("", h.Food.List)
	food.GET("/:id", h.Food.Get)
	food.POST("", admin(h.Food.Create)...)
	food.PUT("/:id", admin(h.Food.Update)...)
	food.PATCH("/:id/stock", admin(h.Food.UpdateStock)...)
	food.DELETE("/:id", admin(h.Food.Delete)...)

	quicklinks := api.Group("/quicklinks")
	quicklinks.GET("", h.QuickLink.ListActive)
	quicklinks.GET("/all", admin(h.QuickLink.ListAll)...)
	quicklinks.POST("", admin(h.QuickLink.Create)...)
	quicklinks.PUT("/:id", admin(h.QuickLink.Update)...)
	quicklinks.PATCH("/:id/active", admin(h.QuickLink.SetActive)...)
	quicklinks.DELETE("/:id", admin(h.QuickLink.Delete)...)
}
