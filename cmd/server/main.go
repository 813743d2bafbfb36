package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	catalogapp "github.com/foodcourt/backend/internal/application/catalog"
	eventapp "github.com/foodcourt/backend/internal/application/event"
	identityapp "github.com/foodcourt/backend/internal/application/identity"
	inventoryapp "github.com/foodcourt/backend/internal/application/inventory"
	orderingapp "github.com/foodcourt/backend/internal/application/ordering"
	portalapp "github.com/foodcourt/backend/internal/application/portal"
	registrationapp "github.com/foodcourt/backend/internal/application/registration"
	"github.com/foodcourt/backend/internal/infrastructure/auth"
	"github.com/foodcourt/backend/internal/infrastructure/config"
	"github.com/foodcourt/backend/internal/infrastructure/logger"
	"github.com/foodcourt/backend/internal/infrastructure/persistence"
	"github.com/foodcourt/backend/internal/interfaces/http/handler"
	"github.com/foodcourt/backend/internal/interfaces/http/middleware"
	"github.com/foodcourt/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	_ "github.com/foodcourt/backend/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

//	@title			FoodCourt Backend API
//	@version		1.0
//	@description	Corporate food ordering backend. Admins run time-boxed events with allocated food inventory; teams place orders against per-team caps.

//	@contact.name	API Support
//	@contact.url	https://github.com/foodcourt/backend

//	@license.name	Apache 2.0
//	@license.url	http://www.apache.org/licenses/LICENSE-2.0.html

//	@host		localhost:8080
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Bearer token authentication. Format: "Bearer {token}"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting FoodCourt Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))

	db, err := persistence.NewDatabaseWithCustomLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Repositories
	adminRepo := persistence.NewGormAdminRepository(db.DB)
	eventRepo := persistence.NewGormEventRepository(db.DB)
	teamRepo := persistence.NewGormTeamRepository(db.DB)
	credentialRepo := persistence.NewGormCredentialRepository(db.DB)
	foodRepo := persistence.NewGormFoodRepository(db.DB)
	inventoryRepo := persistence.NewGormInventoryRepository(db.DB)
	orderRepo := persistence.NewGormOrderRepository(db.DB)
	quickLinkRepo := persistence.NewGormQuickLinkRepository(db.DB)
	txScope := persistence.NewGormTransactionScope(db.DB)

	// Token infrastructure. The blacklist backs logout; when Redis is
	// unreachable we fall back to the in-process store so a cache outage
	// does not take the API down.
	jwtService := auth.NewJWTService(cfg.JWT)
	var blacklist auth.TokenBlacklist
	redisBlacklist, err := auth.NewRedisTokenBlacklist(auth.RedisTokenBlacklistConfig{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Warn("Redis unavailable, using in-memory token blacklist", zap.Error(err))
		blacklist = auth.NewInMemoryTokenBlacklist()
	} else {
		blacklist = redisBlacklist
		log.Info("Redis token blacklist connected",
			zap.String("host", cfg.Redis.Host),
			zap.Int("port", cfg.Redis.Port),
		)
	}

	// Application services
	authService := identityapp.NewAuthService(adminRepo, teamRepo, jwtService, blacklist, log)
	eventService := eventapp.NewEventService(eventRepo)
	teamService := registrationapp.NewTeamService(teamRepo, eventRepo)
	credentialService := registrationapp.NewCredentialService(credentialRepo, teamRepo)
	foodService := catalogapp.NewFoodService(foodRepo)
	allocationService := inventoryapp.NewAllocationService(inventoryRepo, eventRepo, foodRepo)
	orderService := orderingapp.NewOrderService(orderRepo, teamRepo, eventRepo, inventoryRepo, foodRepo, txScope)
	quickLinkService := portalapp.NewQuickLinkService(quickLinkRepo)

	// HTTP handlers
	handlers := router.Handlers{
		Auth:      handler.NewAuthHandler(authService),
		Event:     handler.NewEventHandler(eventService, allocationService, teamService, orderService),
		Team:      handler.NewTeamHandler(teamService, credentialService, orderService),
		Food:      handler.NewFoodHandler(foodService),
		Order:     handler.NewOrderHandler(orderService),
		QuickLink: handler.NewQuickLinkHandler(quickLinkService),
		System:    handler.NewSystemHandler(db.DB),
	}

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	middleware.SetupValidator()

	engine := gin.New()

	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Middleware stack: request ID first so every later stage can tag
	// its logs, recovery before logging so panics are still recorded.
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())
	engine.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))
	engine.Use(middleware.Metrics())

	if cfg.HTTP.RateLimitEnabled {
		rateLimiter := middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		engine.Use(middleware.RateLimit(rateLimiter))
		log.Info("Rate limiting enabled",
			zap.Int("requests", cfg.HTTP.RateLimitRequests),
			zap.Duration("window", cfg.HTTP.RateLimitWindow),
		)
	}

	guards := router.Guards{
		Authenticate: middleware.JWTAuthMiddlewareWithConfig(middleware.JWTMiddlewareConfig{
			JWTService:     jwtService,
			TokenBlacklist: blacklist,
			Logger:         log,
		}),
		AdminOnly: middleware.RequireAdmin(),
		TeamOnly:  middleware.RequireRole(auth.RoleTeam),
	}

	// Stricter limit on the credential endpoints
	if cfg.HTTP.AuthRateLimitEnabled {
		loginLimiter := middleware.NewRateLimiter(cfg.HTTP.AuthRateLimitRequests, cfg.HTTP.AuthRateLimitWindow)
		guards.LoginLimit = middleware.RateLimit(loginLimiter)
	}

	if cfg.Swagger.Enabled {
		registerSwagger(engine, cfg, guards)
	}

	router.New(engine, handlers, guards).Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

// registerSwagger mounts the Swagger UI honoring the configured access
// restrictions (IP allowlist and/or bearer authentication).
func registerSwagger(engine *gin.Engine, cfg *config.Config, guards router.Guards) {
	chain := make([]gin.HandlerFunc, 0, 3)

	if len(cfg.Swagger.AllowedIPs) > 0 {
		allowed := make(map[string]struct{}, len(cfg.Swagger.AllowedIPs))
		for _, ip := range cfg.Swagger.AllowedIPs {
			allowed[ip] = struct{}{}
		}
		chain = append(chain, func(c *gin.Context) {
			if _, ok := allowed[c.ClientIP()]; !ok {
				c.AbortWithStatus(http.StatusForbidden)
				return
			}
			c.Next()
		})
	}

	if cfg.Swagger.RequireAuth {
		chain = append(chain, guards.Authenticate, guards.AdminOnly)
	}

	chain = append(chain, ginSwagger.WrapHandler(swaggerFiles.Handler))
	engine.GET("/swagger/*any", chain...)
}
