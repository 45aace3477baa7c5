package dto

import (
	"github.com/jsamuelsen/brandgen/internal/domain"
)

// BrandRequest is the body of the generate and refresh endpoints.
type BrandRequest struct {
	Industry    string `json:"industry"    validate:"required,notempty,max=64"`
	Keywords    string `json:"keywords"    validate:"max=500,maxkeywords=20"`
	Style       string `json:"style"       validate:"required,notempty,max=64"`
	LogoStyle   string `json:"logoStyle"   validate:"required,notempty,max=64"`
	ColorScheme string `json:"colorScheme" validate:"required,notempty,max=64"`
}

// ToDomain converts the request body to a generation request. Enumeration
// membership is checked by the brand service.
func (r *BrandRequest) ToDomain() domain.GenerationRequest {
	return domain.GenerationRequest{
		Industry:    domain.Industry(r.Industry),
		Keywords:    r.Keywords,
		Style:       domain.NamingStyle(r.Style),
		LogoStyle:   domain.LogoStyle(r.LogoStyle),
		ColorScheme: domain.ColorScheme(r.ColorScheme),
	}
}

// LogoQuery is the query string of the logo endpoint.
type LogoQuery struct {
	Name        string `form:"name"        json:"name"        validate:"required,notempty,max=64"`
	LogoStyle   string `form:"logoStyle"   json:"logoStyle"   validate:"required,notempty,max=64"`
	ColorScheme string `form:"colorScheme" json:"colorScheme" validate:"required,notempty,max=64"`
}

// ToDomain converts the query to a logo request.
func (q *LogoQuery) ToDomain() domain.LogoRequest {
	return domain.LogoRequest{
		Name:        q.Name,
		LogoStyle:   domain.LogoStyle(q.LogoStyle),
		ColorScheme: domain.ColorScheme(q.ColorScheme),
	}
}

// ResultResponse is one generated brand.
type ResultResponse struct {
	Name        string `json:"name"`
	Tagline     string `json:"tagline"`
	Logo        string `json:"logo"`
	LogoVariant string `json:"logoVariant"`
}

// GenerateResponse wraps the results of one generation.
type GenerateResponse struct {
	Results []ResultResponse `json:"results"`
}

// PaletteResponse lists the colors of one scheme.
type PaletteResponse struct {
	Main       string `json:"main"`
	Secondary  string `json:"secondary"`
	Accent     string `json:"accent"`
	Background string `json:"background"`
}

// OptionsResponse lists every enumeration a request may use, in catalog order.
type OptionsResponse struct {
	Industries   []string                   `json:"industries"`
	NamingStyles []string                   `json:"namingStyles"`
	LogoStyles   []string                   `json:"logoStyles"`
	ColorSchemes []string                   `json:"colorSchemes"`
	Palettes     map[string]PaletteResponse `json:"palettes"`
}

// OptionValuesResponse lists the keys of one enumeration.
type OptionValuesResponse struct {
	Kind   string   `json:"kind"`
	Values []string `json:"values"`
}

// NewResultResponse converts a generated result.
func NewResultResponse(r domain.GeneratedResult) ResultResponse {
	return ResultResponse{
		Name:        r.Name,
		Tagline:     r.Tagline,
		Logo:        r.Logo,
		LogoVariant: r.LogoVariant,
	}
}

// NewGenerateResponse converts a batch of generated results.
func NewGenerateResponse(results []domain.GeneratedResult) GenerateResponse {
	resp := GenerateResponse{Results: make([]ResultResponse, len(results))}
	for i, r := range results {
		resp.Results[i] = NewResultResponse(r)
	}

	return resp
}

// NewOptionsResponse converts the catalog enumerations.
func NewOptionsResponse(opts domain.Options) OptionsResponse {
	resp := OptionsResponse{
		Industries:   keys(opts.Industries),
		NamingStyles: keys(opts.NamingStyles),
		LogoStyles:   keys(opts.LogoStyles),
		ColorSchemes: keys(opts.ColorSchemes),
		Palettes:     make(map[string]PaletteResponse, len(opts.Palettes)),
	}

	for scheme, p := range opts.Palettes {
		resp.Palettes[string(scheme)] = PaletteResponse{
			Main:       p.Main,
			Secondary:  p.Secondary,
			Accent:     p.Accent,
			Background: p.Background,
		}
	}

	return resp
}

func keys[T ~string](in []T) []string {
	out := make([]string, len(in))
	for i, k := range in {
		out[i] = string(k)
	}

	return out
}
