package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/plantops/manufacturing-ops/internal/api/handler"
	"github.com/plantops/manufacturing-ops/internal/api/middleware"
	"github.com/plantops/manufacturing-ops/internal/core/domain"
	"github.com/plantops/manufacturing-ops/internal/core/ports"
	"github.com/plantops/manufacturing-ops/internal/core/service"
)

// Deps carries everything the router needs. Services are constructed in main
// so the notification dispatcher's lifecycle stays outside the HTTP layer.
type Deps struct {
	DB     *mongo.Database
	Redis  *redis.Client
	Tokens *service.TokenIssuer
	Users  ports.UserRepository

	Auth          ports.AuthService
	UserService   ports.UserService
	Production    ports.ProductionService
	Reports       ports.ReportService
	Notifications ports.NotificationService
	Reference     ports.ReferenceService

	Log zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("manufacturing"))

	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.Auth)
	userHandler := handler.NewUserHandler(deps.UserService)
	productionHandler := handler.NewProductionHandler(deps.Production)
	reportHandler := handler.NewReportHandler(deps.Reports)
	notificationHandler := handler.NewNotificationHandler(deps.Notifications)
	referenceHandler := handler.NewReferenceHandler(deps.Reference)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.DB, deps.Redis)

	e.GET("/health", healthHandler.Liveness)          // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	// --- Public auth routes ---
	e.POST("/v1/auth/token", authHandler.Login)
	e.POST("/v1/auth/register", authHandler.Register)

	// --- Authenticated routes ---
	authed := e.Group("/v1", middleware.Auth(deps.Tokens, deps.Users))

	elevated := middleware.RBAC(domain.RoleAdmin, domain.RoleSupervisor)
	adminOnly := middleware.RBAC(domain.RoleAdmin)
	anyWriter := middleware.RBAC(domain.RoleAdmin, domain.RoleSupervisor, domain.RoleOperator)

	// Users
	authed.GET("/users/me", userHandler.Me)
	authed.GET("/users", userHandler.List, elevated)
	authed.GET("/users/:id", userHandler.Get, elevated)
	authed.PUT("/users/:id", userHandler.Update, elevated)
	authed.DELETE("/users/:id", userHandler.Delete, adminOnly)

	// Production entries
	authed.POST("/production", productionHandler.Create, anyWriter)
	authed.GET("/production", productionHandler.List)
	authed.GET("/production/export/csv", productionHandler.ExportCSV, elevated)
	authed.GET("/production/:id", productionHandler.Get)
	authed.PUT("/production/:id", productionHandler.Update, anyWriter)
	authed.DELETE("/production/:id", productionHandler.Delete, anyWriter)

	// Reports
	authed.GET("/reports/daily", reportHandler.Daily, elevated)
	authed.GET("/reports/monthly", reportHandler.Monthly, elevated)
	authed.GET("/reports/machines", reportHandler.Machines, elevated)
	authed.GET("/reports/overview", reportHandler.Overview, elevated)
	authed.GET("/reports/products", reportHandler.ByProduct, elevated)
	authed.GET("/reports/operators", reportHandler.ByOperator, elevated)

	// Notifications
	authed.POST("/notifications", notificationHandler.Create, adminOnly)
	authed.GET("/notifications/me", notificationHandler.ListMine)
	authed.PUT("/notifications/:id/read", notificationHandler.MarkRead)
	authed.DELETE("/notifications/:id", notificationHandler.Delete, adminOnly)

	// Reference data
	authed.GET("/reference-data", referenceHandler.List)
	authed.GET("/reference-data/:name", referenceHandler.Get)
	authed.POST("/reference-data", referenceHandler.Create, adminOnly)
	authed.PUT("/reference-data/:name", referenceHandler.Update, adminOnly)
	authed.DELETE("/reference-data/:name", referenceHandler.Delete, adminOnly)

	return e
}
