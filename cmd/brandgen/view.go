package main

import (
	"encoding/json"
	"io"

	"github.com/jsamuelsen/brandgen/internal/domain"
)

// resultView is one suggestion as printed by --json.
type resultView struct {
	Name        string `json:"name"`
	Tagline     string `json:"tagline"`
	Logo        string `json:"logo"`
	LogoVariant string `json:"logoVariant"`
}

type resultsView struct {
	Results []resultView `json:"results"`
}

type paletteView struct {
	Main       string `json:"main"`
	Secondary  string `json:"secondary"`
	Accent     string `json:"accent"`
	Background string `json:"background"`
}

type optionsView struct {
	Industries   []string               `json:"industries"`
	NamingStyles []string               `json:"namingStyles"`
	LogoStyles   []string               `json:"logoStyles"`
	ColorSchemes []string               `json:"colorSchemes"`
	Palettes     map[string]paletteView `json:"palettes"`
}

func newResultsView(results []domain.GeneratedResult) resultsView {
	v := resultsView{Results: make([]resultView, len(results))}
	for i, r := range results {
		v.Results[i] = resultView{Name: r.Name, Tagline: r.Tagline, Logo: r.Logo, LogoVariant: r.LogoVariant}
	}

	return v
}

func newOptionsView(opts domain.Options) optionsView {
	v := optionsView{
		Industries:   names(opts.Industries),
		NamingStyles: names(opts.NamingStyles),
		LogoStyles:   names(opts.LogoStyles),
		ColorSchemes: names(opts.ColorSchemes),
		Palettes:     make(map[string]paletteView, len(opts.Palettes)),
	}

	for scheme, p := range opts.Palettes {
		v.Palettes[string(scheme)] = paletteView(p)
	}

	return v
}

func names[T ~string](keys []T) []string {
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = string(k)
	}

	return out
}

// writeJSON pretty-prints v. Markup stays literal so logos can be piped
// straight into a file.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)

	return enc.Encode(v)
}
