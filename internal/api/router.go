package api

import (
	"net/http"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/tablebook/reservation-system/internal/api/handler"
	"github.com/tablebook/reservation-system/internal/api/middleware"
	"github.com/tablebook/reservation-system/internal/core/service"
	mongodb "github.com/tablebook/reservation-system/internal/infrastructure/db/mongo"
	redisdb "github.com/tablebook/reservation-system/internal/infrastructure/db/redis"
)

const tokenTTL = 24 * time.Hour

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, jwtSecret string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
	}))
	e.Use(echoprometheus.NewMiddleware("reservations"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	bookingRepo := mongodb.NewBookingRepository(db)
	listingCache := redisdb.NewListingCache(rdb)

	authService := service.NewAuthService(userRepo, jwtSecret, tokenTTL, log)
	bookingService := service.NewBookingService(bookingRepo, listingCache, log)

	authHandler := handler.NewAuthHandler(authService)
	bookingHandler := handler.NewBookingHandler(bookingService)

	verifyToken := middleware.Auth(jwtSecret, userRepo)

	// --- Auth routes ---
	auth := e.Group("/auth")
	auth.POST("/user/register", authHandler.Register)
	auth.POST("/user/login", authHandler.Login)
	auth.POST("/user/changePassword", authHandler.ChangePassword, verifyToken)
	auth.GET("/user/:userId", authHandler.GetUser)
	auth.GET("/users", authHandler.ListUsers, verifyToken, middleware.RequireManager)

	// --- Booking routes ---
	booking := e.Group("/booking")
	booking.POST("/add", bookingHandler.Add)
	booking.GET("/getAllById/:userId", bookingHandler.GetAllByUser)
	booking.GET("/getAll", bookingHandler.GetAll)
	booking.DELETE("/delete/:bookingId", bookingHandler.Cancel)
	booking.GET("/:bookingId", bookingHandler.Get)
	booking.PUT("/edit/:bookingId", bookingHandler.Update)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Observability and docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
