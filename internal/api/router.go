package api

import (
	"github.com/google/uuid"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/freelaconnect/marketplace-api/internal/api/handler"
	"github.com/freelaconnect/marketplace-api/internal/api/middleware"
	"github.com/freelaconnect/marketplace-api/internal/core/domain"
	"github.com/freelaconnect/marketplace-api/internal/core/ports"
)

// Deps carries everything the router wires into handlers.
type Deps struct {
	Auth        ports.AuthService
	Engagements ports.EngagementService
	Discovery   ports.DiscoveryService
	Profiles    ports.ProfileService
	// HealthChecks feed the readiness probe, keyed by dependency name.
	HealthChecks map[string]handler.Checker
	Logger       zerolog.Logger

	// Registerer and Gatherer default to the prometheus default registry.
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	if deps.Registerer == nil {
		deps.Registerer = prometheus.DefaultRegisterer
	}
	if deps.Gatherer == nil {
		deps.Gatherer = prometheus.DefaultGatherer
	}

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{
		Generator: func() string { return uuid.NewString() },
	}))
	e.Use(requestLogger(deps.Logger))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "http",
		Registerer: deps.Registerer,
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics" || c.Path() == "/health" || c.Path() == "/health/ready"
		},
	}))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.Auth)
	clientHandler := handler.NewClientHandler(deps.Engagements, deps.Profiles)
	freelancerHandler := handler.NewFreelancerHandler(deps.Discovery, deps.Engagements, deps.Profiles)
	categoryHandler := handler.NewCategoryHandler(deps.Profiles)
	healthHandler := handler.NewHealthHandler(deps.HealthChecks)

	authn := middleware.Auth(deps.Auth)

	api := e.Group("/api")

	// --- Auth routes ---
	api.POST("/auth/register/client", authHandler.RegisterClient)
	api.POST("/auth/register/freelancer", authHandler.RegisterFreelancer)
	api.POST("/auth/login", authHandler.Login)

	// --- Public discovery ---
	api.GET("/categories", categoryHandler.List)
	api.GET("/freelancers", freelancerHandler.Browse)
	api.GET("/freelancers/:id", freelancerHandler.Get)

	// --- Freelancer routes ---
	me := api.Group("/freelancers/me", authn, middleware.RBAC(domain.RoleFreelancer))
	me.GET("", freelancerHandler.GetProfile)
	me.PUT("", freelancerHandler.UpdateProfile)
	me.GET("/projects", freelancerHandler.ListProjects)
	me.GET("/reviews", freelancerHandler.ListReviews)
	me.GET("/requests", freelancerHandler.ListRequests)
	me.POST("/requests/:requestId/accept", freelancerHandler.Accept)
	me.POST("/requests/:requestId/decline", freelancerHandler.Decline)

	// --- Client routes ---
	clients := api.Group("/clients", authn, middleware.RBAC(domain.RoleClient))
	clients.GET("/me", clientHandler.GetProfile)
	clients.PUT("/me", clientHandler.UpdateProfile)
	clients.GET("/freelancers", freelancerHandler.Browse)
	clients.POST("/hire", clientHandler.Hire)
	clients.POST("/me/requests", clientHandler.CreateRequest)
	clients.GET("/me/requests", clientHandler.ListRequests)
	clients.GET("/me/projects", clientHandler.ListProjects)
	clients.POST("/me/projects/:projectId/complete", clientHandler.CompleteProject)
	clients.POST("/reviews", clientHandler.AddReview)

	// --- Health probes (no auth required) ---
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)

	// --- Ops ---
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: deps.Gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}

// requestLogger logs one line per request through zerolog.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		LogMethod:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(_ echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			switch {
			case v.Status >= 500:
				ev = log.Error().Err(v.Error)
			case v.Error != nil:
				ev = log.Warn().Err(v.Error)
			}
			ev.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
