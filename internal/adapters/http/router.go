package http

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/brandgen/internal/adapters/http/dto"
	"github.com/jsamuelsen/brandgen/internal/adapters/http/handlers"
	"github.com/jsamuelsen/brandgen/internal/adapters/http/middleware"
	"github.com/jsamuelsen/brandgen/internal/platform/config"
	"github.com/jsamuelsen/brandgen/internal/platform/telemetry"
)

// RouterConfig wires handlers and middleware settings into SetupRouter.
// Nil handlers leave their routes unregistered.
type RouterConfig struct {
	Logger        *slog.Logger
	AppConfig     *config.AppConfig
	HealthHandler *handlers.HealthHandler
	BrandHandler  *handlers.BrandHandler

	// Timeout is the deadline of /api/v1 requests. Zero disables it.
	Timeout time.Duration
}

// SetupRouter installs the middleware chain and routes on engine.
//
// Every request passes through, in order: panic recovery, request ID,
// correlation ID, the otelgin span, HTTP metrics and access logging. The
// probes under /-/ have no deadline; /api/v1 runs under cfg.Timeout so a
// generation still waiting out its simulated delay is abandoned with 504.
func SetupRouter(engine *gin.Engine, cfg RouterConfig) {
	engine.HandleMethodNotAllowed = true

	engine.Use(
		middleware.Recovery(cfg.Logger),
		middleware.RequestID(),
		middleware.CorrelationID(),
		telemetry.TracingMiddleware(cfg.AppConfig.Name),
		telemetry.Middleware(),
		middleware.Logging(cfg.Logger),
	)

	engine.NoRoute(func(c *gin.Context) {
		dto.AbortWithCode(c, dto.ErrorCodeNotFound, "route not found")
	})
	engine.NoMethod(func(c *gin.Context) {
		dto.AbortWithCode(c, dto.ErrorCodeMethodNotAllowed, "method not allowed")
	})

	if cfg.HealthHandler != nil {
		cfg.HealthHandler.RegisterHealthRoutesOnEngine(engine)
	}

	api := engine.Group("/api/v1")
	if cfg.Timeout > 0 {
		api.Use(middleware.Timeout(cfg.Timeout))
	}

	if cfg.BrandHandler != nil {
		cfg.BrandHandler.RegisterBrandRoutes(api)
	}
}
