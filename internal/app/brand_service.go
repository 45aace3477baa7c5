// Package app contains the use cases of the branding generator. It validates
// requests against the option catalog, simulates generation latency and drives
// the name, tagline and logo engines through ports.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen/brandgen/internal/domain"
	"github.com/jsamuelsen/brandgen/internal/platform/logging"
	"github.com/jsamuelsen/brandgen/internal/ports"
)

const tracerName = "github.com/jsamuelsen/brandgen/internal/app"

// svgRoot is the prefix every rendered logo starts with.
const svgRoot = "<svg "

// Option kinds accepted by OptionValues.
const (
	OptionIndustries   = "industries"
	OptionNamingStyles = "namingStyles"
	OptionLogoStyles   = "logoStyles"
	OptionColorSchemes = "colorSchemes"
)

// errEmptyResult is returned by verification when an engine produced an empty part.
var errEmptyResult = errors.New("generated result is incomplete")

// BrandService orchestrates the generation use cases.
// It is safe for concurrent use when its generator is.
type BrandService struct {
	generator ports.BrandGenerator
	catalog   ports.OptionCatalog
	delay     time.Duration
	logger    *slog.Logger
	tracer    trace.Tracer
	metrics   *generationMetrics
}

// BrandServiceConfig contains the dependencies of the brand service.
type BrandServiceConfig struct {
	Generator ports.BrandGenerator
	Catalog   ports.OptionCatalog

	// Delay is the simulated latency before results are produced. Zero disables it.
	Delay time.Duration

	Logger *slog.Logger

	// Registerer receives the generation counters. Nil leaves them unregistered.
	Registerer prometheus.Registerer
}

// NewBrandService creates a brand service. It panics if the generator or the
// catalog is missing.
func NewBrandService(cfg BrandServiceConfig) *BrandService {
	if cfg.Generator == nil {
		panic("app: BrandServiceConfig.Generator is required")
	}
	if cfg.Catalog == nil {
		panic("app: BrandServiceConfig.Catalog is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &BrandService{
		generator: cfg.Generator,
		catalog:   cfg.Catalog,
		delay:     max(cfg.Delay, 0),
		logger:    logger.With(slog.String("component", "app.BrandService")),
		tracer:    otel.Tracer(tracerName),
		metrics:   newGenerationMetrics(cfg.Registerer),
	}
}

// Generate produces domain.ResultsPerRequest results. Each name gets its own
// tagline and logo.
func (s *BrandService) Generate(ctx context.Context, req domain.GenerationRequest) ([]domain.GeneratedResult, error) {
	ctx, span := s.startSpan(ctx, "BrandService.Generate", req)
	defer span.End()

	p := pipeline[domain.GenerationRequest, []domain.GeneratedResult]{
		name:     "generate",
		validate: s.validate,
		perform: func(ctx context.Context, req domain.GenerationRequest) ([]domain.GeneratedResult, error) {
			if err := s.wait(ctx); err != nil {
				return nil, err
			}

			names, err := s.generator.Names(req.Industry, req.Keywords, req.Style)
			if err != nil {
				return nil, fmt.Errorf("generating names: %w", err)
			}

			results := make([]domain.GeneratedResult, 0, len(names))
			for _, name := range names {
				res, err := s.compose(req, name)
				if err != nil {
					return nil, err
				}
				results = append(results, res)
			}

			return results, nil
		},
		verify: func(_ context.Context, _ domain.GenerationRequest, results []domain.GeneratedResult) error {
			if len(results) != domain.ResultsPerRequest {
				return fmt.Errorf("%w: got %d results, want %d", errEmptyResult, len(results), domain.ResultsPerRequest)
			}
			for i := range results {
				if err := verifyResult(results[i]); err != nil {
					return fmt.Errorf("result %d: %w", i, err)
				}
			}

			return nil
		},
	}

	results, err := p.run(ctx, s.log(ctx), req)
	if err != nil {
		s.fail(span, "generate", err)

		return nil, err
	}

	for _, res := range results {
		s.observe(req, res)
	}

	s.log(ctx).InfoContext(ctx, "generated brands",
		slog.String("industry", string(req.Industry)),
		slog.String("style", string(req.Style)),
		slog.Int("results", len(results)),
	)

	return results, nil
}

// Refresh produces a single result for one slot, using the first name of a
// fresh naming run.
func (s *BrandService) Refresh(ctx context.Context, req domain.GenerationRequest) (domain.GeneratedResult, error) {
	ctx, span := s.startSpan(ctx, "BrandService.Refresh", req)
	defer span.End()

	p := pipeline[domain.GenerationRequest, domain.GeneratedResult]{
		name:     "refresh",
		validate: s.validate,
		perform: func(ctx context.Context, req domain.GenerationRequest) (domain.GeneratedResult, error) {
			if err := s.wait(ctx); err != nil {
				return domain.GeneratedResult{}, err
			}

			names, err := s.generator.Names(req.Industry, req.Keywords, req.Style)
			if err != nil {
				return domain.GeneratedResult{}, fmt.Errorf("generating names: %w", err)
			}
			if len(names) == 0 {
				return domain.GeneratedResult{}, fmt.Errorf("%w: no names", errEmptyResult)
			}

			return s.compose(req, names[0])
		},
		verify: func(_ context.Context, _ domain.GenerationRequest, res domain.GeneratedResult) error {
			return verifyResult(res)
		},
	}

	res, err := p.run(ctx, s.log(ctx), req)
	if err != nil {
		s.fail(span, "refresh", err)

		return domain.GeneratedResult{}, err
	}

	s.observe(req, res)

	s.log(ctx).InfoContext(ctx, "refreshed brand",
		slog.String("name", res.Name),
		slog.String("logo_variant", res.LogoVariant),
	)

	return res, nil
}

// LogoForName renders a logo for a name the caller already has. There is no
// simulated delay.
func (s *BrandService) LogoForName(ctx context.Context, req domain.LogoRequest) (domain.LogoMark, error) {
	ctx, span := s.tracer.Start(ctx, "BrandService.LogoForName", trace.WithAttributes(
		attribute.String("brand.logo_style", string(req.LogoStyle)),
		attribute.String("brand.color_scheme", string(req.ColorScheme)),
	))
	defer span.End()

	p := pipeline[domain.LogoRequest, domain.LogoMark]{
		name: "logo",
		validate: s.validateLogo,
		perform: func(_ context.Context, req domain.LogoRequest) (domain.LogoMark, error) {
			mark, err := s.generator.Logo(req.Name, req.LogoStyle, req.ColorScheme)
			if err != nil {
				return domain.LogoMark{}, fmt.Errorf("rendering logo: %w", err)
			}

			return mark, nil
		},
		verify: func(_ context.Context, _ domain.LogoRequest, mark domain.LogoMark) error {
			if !strings.HasPrefix(mark.SVG, svgRoot) {
				return fmt.Errorf("%w: logo is not an svg document", errEmptyResult)
			}

			return nil
		},
	}

	mark, err := p.run(ctx, s.log(ctx), req)
	if err != nil {
		s.fail(span, "logo", err)

		return domain.LogoMark{}, err
	}

	s.metrics.observeLogo(string(req.LogoStyle), mark.Variant)

	return mark, nil
}

// Options lists every enumeration key a request may use.
func (s *BrandService) Options(ctx context.Context) domain.Options {
	s.log(ctx).DebugContext(ctx, "listing options")

	return s.catalog.Options()
}

// OptionValues lists the keys of one enumeration. kind is one of the Option*
// constants; anything else is a domain.NotFoundError.
func (s *BrandService) OptionValues(ctx context.Context, kind string) ([]string, error) {
	opts := s.Options(ctx)

	switch kind {
	case OptionIndustries:
		return stringsOf(opts.Industries), nil
	case OptionNamingStyles:
		return stringsOf(opts.NamingStyles), nil
	case OptionLogoStyles:
		return stringsOf(opts.LogoStyles), nil
	case OptionColorSchemes:
		return stringsOf(opts.ColorSchemes), nil
	default:
		return nil, domain.NewNotFoundError("option kind", kind)
	}
}

func stringsOf[T ~string](keys []T) []string {
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = string(k)
	}

	return out
}

// log prefers the request-scoped logger so request and correlation IDs are kept.
func (s *BrandService) log(ctx context.Context) *slog.Logger {
	return logging.FromContextOr(ctx, s.logger)
}

func (s *BrandService) validate(_ context.Context, req domain.GenerationRequest) error {
	return s.catalog.Validate(req)
}

func (s *BrandService) validateLogo(_ context.Context, req domain.LogoRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return domain.NewValidationError("name", "cannot be empty")
	}

	opts := s.catalog.Options()
	if !slices.Contains(opts.LogoStyles, req.LogoStyle) {
		return domain.NewUnrecognizedOptionError("logoStyle", string(req.LogoStyle))
	}
	if !slices.Contains(opts.ColorSchemes, req.ColorScheme) {
		return domain.NewUnrecognizedOptionError("colorScheme", string(req.ColorScheme))
	}

	return nil
}

// compose builds the tagline and logo for one name.
func (s *BrandService) compose(req domain.GenerationRequest, name string) (domain.GeneratedResult, error) {
	tagline, err := s.generator.Tagline(req.Industry, name, req.Keywords)
	if err != nil {
		return domain.GeneratedResult{}, fmt.Errorf("generating tagline: %w", err)
	}

	mark, err := s.generator.Logo(name, req.LogoStyle, req.ColorScheme)
	if err != nil {
		return domain.GeneratedResult{}, fmt.Errorf("rendering logo: %w", err)
	}

	return domain.GeneratedResult{
		Name:        name,
		Tagline:     tagline,
		Logo:        mark.SVG,
		LogoVariant: mark.Variant,
	}, nil
}

// wait blocks for the simulated delay or until ctx ends.
func (s *BrandService) wait(ctx context.Context) error {
	if s.delay == 0 {
		return nil
	}

	timer := time.NewTimer(s.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return fmt.Errorf("waiting for generation: %w", ctx.Err())
	case <-timer.C:
		return nil
	}
}

func verifyResult(res domain.GeneratedResult) error {
	switch {
	case res.Name == "":
		return fmt.Errorf("%w: empty name", errEmptyResult)
	case res.Tagline == "":
		return fmt.Errorf("%w: empty tagline", errEmptyResult)
	case !strings.HasPrefix(res.Logo, svgRoot):
		return fmt.Errorf("%w: logo is not an svg document", errEmptyResult)
	}

	return nil
}

func (s *BrandService) startSpan(ctx context.Context, name string, req domain.GenerationRequest) (context.Context, trace.Span) {
	return s.tracer.Start(ctx, name, trace.WithAttributes(
		attribute.String("brand.industry", string(req.Industry)),
		attribute.String("brand.style", string(req.Style)),
		attribute.String("brand.logo_style", string(req.LogoStyle)),
		attribute.String("brand.color_scheme", string(req.ColorScheme)),
		attribute.Int("brand.keywords_length", len(req.Keywords)),
	))
}

func (s *BrandService) observe(req domain.GenerationRequest, res domain.GeneratedResult) {
	s.metrics.observeResult(string(req.Style), string(req.Industry))
	s.metrics.observeLogo(string(req.LogoStyle), res.LogoVariant)
}

func (s *BrandService) fail(span trace.Span, operation string, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	s.metrics.observeFailure(operation, err)
}
