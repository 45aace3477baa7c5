// Package ports defines the contracts between the application layer and the
// components it drives. The generation engines and the option catalog are
// consumed through these interfaces so use cases can be tested in isolation.
//
// Port Design Principles:
//   - Return domain types, never adapter or infrastructure types
//   - Error returns use domain error types (ErrUnrecognizedOption, ErrValidation)
//   - Keep interfaces small and focused
package ports

import (
	"github.com/jsamuelsen/brandgen/internal/domain"
)

// BrandGenerator produces the three parts of a branding suggestion.
// Implementations are synchronous and must be safe for concurrent use.
//
// Every method returns a *domain.UnrecognizedOptionError when an enumeration
// key is not in the catalog.
type BrandGenerator interface {
	// Names returns exactly domain.ResultsPerRequest candidate names.
	// Duplicates are possible.
	Names(industry domain.Industry, keywords string, style domain.NamingStyle) ([]string, error)

	// Tagline fills a tagline template for the industry and keywords.
	Tagline(industry domain.Industry, name, keywords string) (string, error)

	// Logo renders an SVG logo for name.
	Logo(name string, style domain.LogoStyle, scheme domain.ColorScheme) (domain.LogoMark, error)
}

// OptionCatalog exposes the enumerations a request may use.
type OptionCatalog interface {
	// Validate checks every enumeration key of req and returns the first
	// unrecognized one as a *domain.UnrecognizedOptionError.
	Validate(req domain.GenerationRequest) error

	// Options lists every enumeration key in catalog order.
	Options() domain.Options
}
