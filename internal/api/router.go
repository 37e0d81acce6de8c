package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/mercadito/catalog-api/docs"
	"github.com/mercadito/catalog-api/internal/api/handler"
	"github.com/mercadito/catalog-api/internal/api/middleware"
	"github.com/mercadito/catalog-api/internal/core/domain"
	"github.com/mercadito/catalog-api/internal/core/ports"
	"github.com/mercadito/catalog-api/internal/core/service"
	mongostore "github.com/mercadito/catalog-api/internal/infrastructure/db/mongo"
	redisstore "github.com/mercadito/catalog-api/internal/infrastructure/db/redis"
	"github.com/mercadito/catalog-api/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// Every dependency is passed in explicitly; nothing is resolved from globals.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, audit ports.AuditRecorder, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("catalog"))

	// --- Dependencies ---
	userRepo := mongostore.NewUserRepository(db)
	productRepo := mongostore.NewProductRepository(db)
	categoryRepo := mongostore.NewCategoryRepository(db)

	revocation := redisstore.NewRevocationStore(rdb)
	tokenService := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL, revocation)

	authService := service.NewAuthService(userRepo, tokenService, audit, log)
	userService := service.NewUserService(userRepo, log)
	productService := service.NewProductService(productRepo, log)
	categoryService := service.NewCategoryService(categoryRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	productHandler := handler.NewProductHandler(productService)
	categoryHandler := handler.NewCategoryHandler(categoryService)

	authGate := middleware.Auth(tokenService, log)
	adminGate := middleware.RequireRole(domain.RoleAdmin, audit)

	// --- Public routes ---
	e.POST("/register", authHandler.Register)
	e.POST("/login", authHandler.Login)

	e.GET("/products", productHandler.List)
	e.POST("/products", productHandler.Create)
	e.GET("/products/:id", productHandler.Get)
	e.PUT("/products/:id", productHandler.Update)
	e.DELETE("/products/:id", productHandler.Delete)

	// --- Authenticated routes ---
	e.GET("/me", authHandler.Me, authGate)
	e.POST("/logout", authHandler.Logout, authGate)

	// Legacy listing alias kept for existing clients.
	e.GET("/listadeCategorias", categoryHandler.List, authGate)

	// --- Admin routes ---
	e.GET("/users", userHandler.List, authGate, adminGate)
	e.PUT("/users/:id", userHandler.Update, authGate, adminGate)
	e.DELETE("/users/:id", userHandler.Delete, authGate, adminGate)

	e.GET("/categories", categoryHandler.List, authGate, adminGate)
	e.POST("/categories", categoryHandler.Create, authGate, adminGate)
	e.GET("/categories/:id", categoryHandler.Get, authGate, adminGate)
	e.PUT("/categories/:id", categoryHandler.Update, authGate, adminGate)
	e.DELETE("/categories/:id", categoryHandler.Delete, authGate, adminGate)

	// --- Operational endpoints ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
