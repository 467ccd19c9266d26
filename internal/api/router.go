package api

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/99minutos/user-roles-api/docs"
	"github.com/99minutos/user-roles-api/internal/api/handler"
	"github.com/99minutos/user-roles-api/internal/api/middleware"
	"github.com/99minutos/user-roles-api/internal/api/validation"
	"github.com/99minutos/user-roles-api/internal/core/ports"
)

const defaultPrefix = "/api"

// Dependencies are the collaborators the router wires into handlers.
type Dependencies struct {
	Roles ports.RoleService
	Users ports.UserService

	// Idempotency may be nil, which disables replay of POST responses.
	Idempotency    ports.IdempotencyStore
	IdempotencyTTL time.Duration

	// Checks are pinged by the readiness probe, keyed by dependency name.
	Checks map[string]handler.Pinger

	Log            zerolog.Logger
	AllowedOrigins []string
	Prefix         string

	// Registerer and Gatherer default to the global Prometheus registry.
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	if deps.Registerer == nil {
		deps.Registerer = prometheus.DefaultRegisterer
	}
	if deps.Gatherer == nil {
		deps.Gatherer = prometheus.DefaultGatherer
	}
	prefix := deps.Prefix
	if prefix == "" {
		prefix = defaultPrefix
	}

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.RequestLogger(deps.Log))
	e.Use(middleware.AllowOrigins(deps.AllowedOrigins))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     deps.AllowedOrigins,
		AllowCredentials: true,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{
			echo.HeaderContentType,
			echo.HeaderAccept,
			middleware.HeaderIdempotencyKey,
		},
		ExposeHeaders: []string{echo.HeaderXRequestID, middleware.HeaderReplayed},
	}))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "user_roles_http",
		Registerer: deps.Registerer,
	}))

	// --- Operational routes ---
	health := handler.NewHealthHandler(deps.Checks)
	e.GET("/", health.Banner)
	e.GET("/health", health.Liveness)
	e.GET("/health/ready", health.Readiness)
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
		Gatherer: deps.Gatherer,
	}))

	docs.SwaggerInfo.BasePath = prefix
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- API routes ---
	v := validation.New()
	idempotent := middleware.Idempotency(deps.Idempotency, deps.IdempotencyTTL, deps.Log)
	roles := handler.NewRoleHandler(deps.Roles)
	users := handler.NewUserHandler(deps.Users)

	g := e.Group(prefix)
	g.GET("/roles", roles.List)
	g.POST("/roles", roles.Create, idempotent, middleware.ValidateBody(v, handler.CreateRoleSchema))
	g.GET("/users", users.List)
	g.POST("/users", users.Create, idempotent, middleware.ValidateBody(v, handler.CreateUserSchema))
	g.GET("/users/with-roles", users.ListWithRoles)

	return e
}
