package main

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen/brandgen/internal/app"
	"github.com/jsamuelsen/brandgen/internal/catalog"
	"github.com/jsamuelsen/brandgen/internal/generator"
	"github.com/jsamuelsen/brandgen/internal/platform/logging"
)

// envPrefix prefixes the environment variables that supply flag defaults.
const envPrefix = "BRANDGEN_"

// globalOptions are the flags shared by every subcommand.
type globalOptions struct {
	seed     uint64
	catalog  string
	delay    time.Duration
	logLevel string
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	cmd := &cobra.Command{
		Use:           "brandgen",
		Short:         "Generate startup names, taglines and SVG logos",
		Long:          "brandgen suggests startup names with a matching tagline and logo for an industry, naming style, logo style and color scheme.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := cmd.PersistentFlags()
	flags.Uint64Var(&opts.seed, "seed", envUint("SEED", 0), "Random seed; 0 seeds from the clock [$BRANDGEN_SEED]")
	flags.StringVar(&opts.catalog, "catalog", envString("CATALOG", ""), "Path to a catalog YAML document; empty uses the built-in one [$BRANDGEN_CATALOG]")
	flags.DurationVar(&opts.delay, "delay", envDuration("DELAY", 0), "Simulated generation latency [$BRANDGEN_DELAY]")
	flags.StringVar(&opts.logLevel, "log-level", envString("LOG_LEVEL", "warn"), "Log level: trace, debug, info, warn, error [$BRANDGEN_LOG_LEVEL]")

	cmd.AddCommand(
		newGenerateCmd(opts),
		newRefreshCmd(opts),
		newOptionsCmd(opts),
	)

	return cmd
}

// newService builds the brand service from the global flags. Logs go to the
// command's error stream so stdout carries only results.
func newService(cmd *cobra.Command, opts *globalOptions) (*app.BrandService, error) {
	logger := logging.NewWithWriter(&logging.Config{
		Level:   opts.logLevel,
		Format:  "pretty",
		Service: "brandgen",
	}, cmd.ErrOrStderr())

	cat, err := catalog.LoadFile(opts.catalog)
	if err != nil {
		return nil, err
	}

	logger.Debug("catalog loaded", slog.String("path", opts.catalog), slog.Uint64("seed", opts.seed))

	return app.NewBrandService(app.BrandServiceConfig{
		Generator: generator.New(cat, generator.NewSource(opts.seed)),
		Catalog:   cat,
		Delay:     opts.delay,
		Logger:    logger,
	}), nil
}

func envString(key, fallback string) string {
	if v, ok := os.LookupEnv(envPrefix + key); ok {
		return v
	}

	return fallback
}

func envUint(key string, fallback uint64) uint64 {
	if n, err := strconv.ParseUint(os.Getenv(envPrefix+key), 10, 64); err == nil {
		return n
	}

	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if d, err := time.ParseDuration(os.Getenv(envPrefix + key)); err == nil {
		return d
	}

	return fallback
}
