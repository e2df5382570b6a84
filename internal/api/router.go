package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"

	_ "github.com/pulsedash/dashboard-api/docs"
	"github.com/pulsedash/dashboard-api/internal/api/handler"
	"github.com/pulsedash/dashboard-api/internal/api/middleware"
	"github.com/pulsedash/dashboard-api/internal/core/domain"
	"github.com/pulsedash/dashboard-api/internal/core/ports"
)

// Deps carries the wired handlers and services the router needs. main builds
// the dependency graph; the router only registers routes.
type Deps struct {
	Logger zerolog.Logger
	Tokens ports.TokenService

	Auth          *handler.AuthHandler
	Users         *handler.UserHandler
	Notifications *handler.NotificationHandler
	Stats         *handler.StatsHandler
	Health        *handler.HealthHandler
	Readiness     *handler.ReadinessHandler
	Seed          *handler.SeedHandler
	WS            *handler.WSHandler
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("dashboard"))

	auth := middleware.Auth(deps.Tokens)
	adminOnly := middleware.RBAC(domain.RoleAdmin)
	managerUp := middleware.RBAC(domain.RoleAdmin, domain.RoleManager)

	// --- Unauthenticated surface ---
	e.GET("/health/ready", deps.Readiness.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)
	e.GET("/ws", deps.WS.Subscribe)

	api := e.Group("/api")
	api.POST("/auth/login", deps.Auth.Login)
	api.GET("/health", deps.Health.Health)
	api.POST("/seed", deps.Seed.Seed)

	// --- Authenticated surface ---
	authed := api.Group("", auth)
	authed.GET("/auth/profile", deps.Auth.Profile)
	authed.PUT("/auth/change-password", deps.Auth.ChangePassword)
	authed.POST("/auth/logout", deps.Auth.Logout)
	authed.GET("/notifications", deps.Notifications.List)
	authed.PUT("/notifications/:id/read", deps.Notifications.MarkRead)
	authed.GET("/activities", deps.Stats.Activities)

	// --- Manager and admin ---
	authed.GET("/stats", deps.Stats.Stats, managerUp)
	authed.GET("/revenue", deps.Stats.Revenue, managerUp)
	authed.GET("/users", deps.Users.List, managerUp)
	authed.POST("/notifications", deps.Notifications.Create, managerUp)

	// --- Admin only ---
	authed.POST("/auth/register", deps.Auth.Register, adminOnly)
	authed.POST("/users", deps.Users.Create, adminOnly)
	authed.PUT("/users/:id", deps.Users.Update, adminOnly)
	authed.DELETE("/users/:id", deps.Users.Delete, adminOnly)

	return e
}
