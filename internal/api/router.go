package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Naimul9/sufiza-backend-render/internal/api/handler"
	"github.com/Naimul9/sufiza-backend-render/internal/api/middleware"
	"github.com/Naimul9/sufiza-backend-render/internal/api/session"
	"github.com/Naimul9/sufiza-backend-render/internal/core/auth"
	"github.com/Naimul9/sufiza-backend-render/internal/core/service"
	"github.com/Naimul9/sufiza-backend-render/internal/infrastructure/config"
	mongodb "github.com/Naimul9/sufiza-backend-render/internal/infrastructure/db/mongo"
	redisdb "github.com/Naimul9/sufiza-backend-render/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
		AllowHeaders:     []string{echo.HeaderContentType, echo.HeaderAuthorization},
		AllowCredentials: true,
	}))
	e.Use(echoprometheus.NewMiddleware("sufiza"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	apartmentRepo := mongodb.NewApartmentRepository(db)
	locationRepo := mongodb.NewLocationRepository(db)

	tokens := auth.NewTokenService(
		cfg.Auth.AccessTokenSecret,
		cfg.Auth.RefreshTokenSecret,
		cfg.Auth.AccessTokenTTL,
		cfg.Auth.RefreshTokenTTL,
	)
	sessions := session.NewManager(cfg.Auth.CookieSecret, tokens.AccessTTL(), tokens.RefreshTTL())
	limiter := redisdb.NewLoginLimiter(rdb, 0)

	authService := service.NewAuthService(userRepo, tokens, limiter, log)
	userService := service.NewUserService(userRepo, log)
	apartmentService := service.NewApartmentService(apartmentRepo, log)
	locationService := service.NewLocationService(locationRepo, log)

	userHandler := handler.NewUserHandler(authService, userService, sessions)
	apartmentHandler := handler.NewApartmentHandler(apartmentService)
	locationHandler := handler.NewLocationHandler(locationService)

	authenticated := middleware.Authenticate(sessions, tokens)
	adminOnly := middleware.AdminOnly(userRepo)
	ownerOnly := middleware.OwnerOnly()

	// --- User routes ---
	users := e.Group("/api/users")
	users.POST("", userHandler.Register)
	users.POST("/login", userHandler.Login)
	users.POST("/logout", userHandler.Logout)
	users.POST("/refresh", userHandler.Refresh)
	users.GET("", userHandler.List, authenticated, adminOnly)
	users.GET("/profile/:email", userHandler.Profile, authenticated, ownerOnly)
	users.GET("/:id", userHandler.GetByID)
	users.PUT("/:id", userHandler.Update, authenticated, adminOnly)
	users.DELETE("/:id", userHandler.Delete, authenticated, adminOnly)

	// --- Apartment routes ---
	apartments := e.Group("/api/apartments")
	apartments.GET("", apartmentHandler.Search)
	apartments.GET("/location/:location", apartmentHandler.GetByLocation)
	apartments.GET("/details/:id", apartmentHandler.GetByID)
	apartments.POST("", apartmentHandler.Create, authenticated, adminOnly)
	apartments.PUT("/:id", apartmentHandler.Update, authenticated, adminOnly)
	apartments.DELETE("/:id", apartmentHandler.Delete, authenticated, adminOnly)

	// --- Location routes ---
	locations := e.Group("/api/locations")
	locations.GET("/countrys", locationHandler.Countries)
	locations.GET("/:countryId/divisions", locationHandler.Divisions)
	locations.GET("/:countryId/divisions/:divisionId/districts", locationHandler.Districts)
	locations.POST("", locationHandler.Create, authenticated, adminOnly)
	locations.PUT("/:id", locationHandler.Update, authenticated, adminOnly)
	locations.DELETE("/:id", locationHandler.Delete, authenticated, adminOnly)

	// --- Observability (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
