// Package main is the entry point for the brandgen HTTP service.
package main

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/jsamuelsen/brandgen/internal/adapters/http"
	"github.com/jsamuelsen/brandgen/internal/adapters/http/handlers"
	"github.com/jsamuelsen/brandgen/internal/app"
	"github.com/jsamuelsen/brandgen/internal/catalog"
	"github.com/jsamuelsen/brandgen/internal/generator"
	"github.com/jsamuelsen/brandgen/internal/platform/config"
	"github.com/jsamuelsen/brandgen/internal/platform/logging"
	"github.com/jsamuelsen/brandgen/internal/platform/telemetry"
	"github.com/jsamuelsen/brandgen/internal/ports"
)

// healthCheckTimeout bounds each readiness check.
const healthCheckTimeout = 2 * time.Second

// Build-time variables, injected via ldflags.
// Example: go build -ldflags "-X main.Version=1.0.0 -X main.Commit=$(git rev-parse HEAD) -X main.BuildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
var (
	// Version is the semantic version of the service.
	Version = "dev"

	// Commit is the git commit SHA.
	Commit = "unknown"

	// BuildTime is the timestamp when the binary was built.
	BuildTime = "unknown"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	profile := cmp.Or(os.Getenv("APP_ENVIRONMENT"), "local")

	cfg, err := config.Load(profile, config.WithDir(os.Getenv("APP_CONFIG_DIR")))
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger := newLogger(cfg)
	logging.SetDefault(logger)

	logger.Info("starting brandgen",
		slog.String("version", Version),
		slog.String("commit", Commit),
		slog.String("profile", profile),
		slog.Duration("generator_delay", cfg.Generator.Delay),
		slog.Bool("seeded", cfg.Generator.Seed != 0),
	)

	telProvider, err := telemetry.New(ctx, &telemetry.Config{
		Enabled:      cfg.Telemetry.Enabled,
		Endpoint:     cfg.Telemetry.Endpoint,
		ServiceName:  cfg.Telemetry.ServiceName,
		Version:      cfg.App.Version,
		Environment:  cfg.App.Environment,
		SamplingRate: cfg.Telemetry.SamplingRate,
		Seed:         cfg.Generator.Seed,
	})
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}
	defer func() {
		if shutdownErr := telProvider.Shutdown(ctx); shutdownErr != nil {
			logger.Error("telemetry shutdown error", slog.Any("error", shutdownErr))
		}
	}()

	server, err := newServer(cfg, logger)
	if err != nil {
		return err
	}

	return waitForShutdown(ctx, logger, server, server.Start(), cfg.Server.ShutdownTimeout)
}

func newLogger(cfg *config.Config) *slog.Logger {
	file := cfg.Log.File

	return logging.New(&logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: cfg.App.Name,
		Version: cfg.App.Version,
		File: logging.FileConfig{
			Enabled:    file.Enabled,
			Path:       file.Path,
			MaxSizeMB:  file.MaxSizeMB,
			MaxBackups: file.MaxBackups,
			MaxAgeDays: file.MaxAgeDays,
			Compress:   file.Compress,
		},
	})
}

// newServer loads the catalog and wires the brand service, its health check
// and the routes onto a fresh server.
func newServer(cfg *config.Config, logger *slog.Logger) (*http.Server, error) {
	cat, err := catalog.LoadFile(cfg.Generator.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}

	opts := cat.Options()
	logger.Info("catalog loaded",
		slog.String("path", cmp.Or(cfg.Generator.CatalogPath, "embedded")),
		slog.Int("industries", len(opts.Industries)),
		slog.Int("color_schemes", len(opts.ColorSchemes)),
	)

	healthRegistry := ports.NewHealthRegistry(ports.WithCheckTimeout(healthCheckTimeout))
	if err := healthRegistry.Register(cat); err != nil {
		return nil, fmt.Errorf("registering catalog health check: %w", err)
	}

	brandService := app.NewBrandService(app.BrandServiceConfig{
		Generator:  generator.New(cat, generator.NewSource(cfg.Generator.Seed)),
		Catalog:    cat,
		Delay:      cfg.Generator.Delay,
		Logger:     logger,
		Registerer: prometheus.DefaultRegisterer,
	})

	server := http.New(&cfg.Server, logger)
	http.SetupRouter(server.Engine(), http.RouterConfig{
		Logger:        logger,
		AppConfig:     &cfg.App,
		HealthHandler: handlers.NewHealthHandler(healthRegistry, handlers.NewBuildInfo(Version, Commit, BuildTime), prometheus.DefaultGatherer),
		BrandHandler:  handlers.NewBrandHandler(brandService),
		Timeout:       cfg.Server.RequestTimeout,
	})

	return server, nil
}

// waitForShutdown blocks until SIGINT/SIGTERM or a server failure, then
// drains in-flight generations within shutdownTimeout.
func waitForShutdown(
	ctx context.Context,
	logger *slog.Logger,
	server *http.Server,
	serverErr <-chan error,
	shutdownTimeout time.Duration,
) error {
	sigCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-serverErr:
		return fmt.Errorf("server error: %w", err)
	case <-sigCtx.Done():
		logger.Info("shutdown requested", slog.String("cause", context.Cause(sigCtx).Error()))
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	logger.Info("draining requests", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	logger.Info("shutdown complete")

	return nil
}
