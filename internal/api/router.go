package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/grandstay/hotel-api/docs"
	"github.com/grandstay/hotel-api/internal/api/handler"
	"github.com/grandstay/hotel-api/internal/api/middleware"
	"github.com/grandstay/hotel-api/internal/core/ports"
	"github.com/grandstay/hotel-api/internal/infrastructure/http/handlers"
)

// Deps are the services the router dispatches to. Readiness may be nil, in
// which case /health/ready is not registered.
type Deps struct {
	Auth      ports.AuthService
	Rooms     ports.RoomService
	Customers ports.CustomerService
	Readiness *handlers.HealthDependenciesHandler
}

type Options struct {
	Logger zerolog.Logger
	// Debug exposes the text of unexpected errors in 500 responses.
	Debug bool
	// AuthRequired puts the customer and room routes behind the bearer middleware.
	AuthRequired bool
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps, opts Options) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(opts.Logger, opts.Debug)

	// HTTP metrics go to a per-router registry so several routers can coexist
	// in one process; /metrics serves it together with the default registry.
	registry := prometheus.NewRegistry()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLogger(opts.Logger))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "hotel",
		Registerer: registry,
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics"
		},
	}))

	authMiddleware := middleware.Auth(deps.Auth)

	// --- Health probes, metrics and docs (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	e.GET("/", healthHandler.Liveness)
	if deps.Readiness != nil {
		e.GET("/health/ready", deps.Readiness.Readiness)
	}
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
		Gatherer: prometheus.Gatherers{prometheus.DefaultGatherer, registry},
	}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// --- Auth routes ---
	authHandler := handler.NewAuthHandler(deps.Auth)
	token := api.Group("/token")
	token.POST("", authHandler.Login)
	token.GET("/protected", authHandler.Protected, authMiddleware)

	var entityMiddleware []echo.MiddlewareFunc
	if opts.AuthRequired {
		entityMiddleware = append(entityMiddleware, authMiddleware)
	}

	// --- Customer routes ---
	customerHandler := handler.NewCustomerHandler(deps.Customers)
	customers := api.Group("/customers", entityMiddleware...)
	customers.POST("/new", customerHandler.Create)
	customers.GET("", customerHandler.List)
	customers.GET("/:id", customerHandler.Get)
	customers.PUT("/:id", customerHandler.Update)
	customers.DELETE("/:id", customerHandler.Delete)

	// --- Room routes ---
	roomHandler := handler.NewRoomHandler(deps.Rooms)
	rooms := api.Group("/rooms", entityMiddleware...)
	rooms.POST("/new", roomHandler.Create)
	rooms.GET("", roomHandler.List)
	rooms.GET("/:number", roomHandler.Get)
	rooms.PUT("/:number", roomHandler.Update)
	rooms.DELETE("/:number", roomHandler.Delete)

	return e
}
