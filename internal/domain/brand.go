// Package domain holds the brandgen vocabulary: option keys, requests,
// generated results and the errors adapters translate.
package domain

// Industry selects the dictionary of industry words.
type Industry string

// NamingStyle selects the prefix and suffix dictionaries used for names.
type NamingStyle string

// LogoStyle selects the family of logo compositions.
type LogoStyle string

// ColorScheme selects the palette used to fill logos.
type ColorScheme string

// ResultsPerRequest is the number of results produced by one generation.
const ResultsPerRequest = 3

// GenerationRequest is the per-invocation input of the generator.
// It carries no identity and is never persisted.
type GenerationRequest struct {
	Industry    Industry
	Keywords    string
	Style       NamingStyle
	LogoStyle   LogoStyle
	ColorScheme ColorScheme
}

// LogoRequest asks for a logo for an already chosen name.
type LogoRequest struct {
	Name        string
	LogoStyle   LogoStyle
	ColorScheme ColorScheme
}

// GeneratedResult is one branding suggestion.
type GeneratedResult struct {
	// Name is the generated startup name.
	Name string

	// Tagline is a filled-in tagline template.
	Tagline string

	// Logo is a self-contained SVG document.
	Logo string

	// LogoVariant is the sub-variant drawn for the logo (e.g. "hexagon").
	LogoVariant string
}

// LogoMark is a rendered logo and the sub-variant it was drawn from.
type LogoMark struct {
	SVG     string
	Variant string
}

// Palette is a resolved color scheme.
type Palette struct {
	Main       string
	Secondary  string
	Accent     string
	Background string
}

// Colors returns the palette in catalog order.
func (p Palette) Colors() []string {
	return []string{p.Main, p.Secondary, p.Accent, p.Background}
}

// Options lists every enumeration key a request may use, in catalog order.
type Options struct {
	Industries   []Industry
	NamingStyles []NamingStyle
	LogoStyles   []LogoStyle
	ColorSchemes []ColorScheme
	Palettes     map[ColorScheme]Palette
}
