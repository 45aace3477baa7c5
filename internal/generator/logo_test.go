package generator

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/brandgen/internal/catalog"
	"github.com/jsamuelsen/brandgen/internal/domain"
)

var colorAttr = regexp.MustCompile(`(?:fill|stroke)="([^"]*)"`)

func TestInitials(t *testing.T) {
	tests := []struct {
		name, want string
	}{
		{"Streamline", "S"},
		{"Nova", "NO"},
		{"Novaify", "NO"},
		{"NovaCode", "NO"},
		{"NovaCodes", "N"},
		{"x", "X"},
		{"", ""},
		{"ßeta", "SSE"},
		{"Über", "ÜB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Initials(tt.name))
		})
	}
}

func TestLogo_ExactMarkup(t *testing.T) {
	e := New(catalog.Default(), zeros())

	mark, err := e.Logo("Nova", "minimal", "blues")
	require.NoError(t, err)

	want := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 200 200">
<circle cx="100" cy="100" r="80" fill="#1A237E" />
<text x="100" y="120" font-family="Arial" font-size="60" font-weight="bold" text-anchor="middle" fill="#BBDEFB">NO</text>
</svg>`
	assert.Equal(t, want, mark.SVG)
	assert.Equal(t, "circle", mark.Variant)
}

func TestLogo_EveryVariant(t *testing.T) {
	c := catalog.Default()

	for _, style := range c.Options().LogoStyles {
		variants, err := c.LogoVariants(style)
		require.NoError(t, err)

		for i, variant := range variants {
			t.Run(string(style)+"/"+variant, func(t *testing.T) {
				v := (float64(i) + 0.5) / float64(len(variants))
				e := New(c, &scriptedSource{values: []float64{v}})

				mark, err := e.Logo("Streamline", style, "greens")
				require.NoError(t, err)
				assert.Equal(t, variant, mark.Variant)

				assert.Equal(t, 1, strings.Count(mark.SVG, "<svg "))
				assert.Equal(t, 1, strings.Count(mark.SVG, "</svg>"))
				assert.True(t, strings.HasPrefix(mark.SVG, svgOpen))
				assert.True(t, strings.HasSuffix(mark.SVG, svgClose))
				assert.Equal(t, 1, strings.Count(mark.SVG, "<text "))

				if variant == "wordmark" {
					assert.Contains(t, mark.SVG, ">STREAMLINE</text>")
				} else {
					assert.Contains(t, mark.SVG, ">S</text>")
				}
			})
		}
	}
}

func TestLogo_SharedCompositions(t *testing.T) {
	tests := []struct {
		style domain.LogoStyle
		a, b  float64
	}{
		{"abstract", 0.7, 0.9},   // splash, dots
		{"geometric", 0.5, 0.9},  // polygon, line-art
		{"mascot", 0.5, 0.9},     // character, monster
		{"lettermark", 0.7, 0.9}, // typeface, script
	}

	for _, tt := range tests {
		t.Run(string(tt.style), func(t *testing.T) {
			first, err := New(catalog.Default(), &scriptedSource{values: []float64{tt.a}}).Logo("Nova", tt.style, "reds")
			require.NoError(t, err)
			second, err := New(catalog.Default(), &scriptedSource{values: []float64{tt.b}}).Logo("Nova", tt.style, "reds")
			require.NoError(t, err)

			assert.NotEqual(t, first.Variant, second.Variant)
			assert.Equal(t, first.SVG, second.SVG)
		})
	}
}

func TestLogo_MinimalBluesFillsStayInPalette(t *testing.T) {
	palette := map[string]bool{"#1A237E": true, "#2196F3": true, "#BBDEFB": true, "#E3F2FD": true}
	e := New(catalog.Default(), NewSource(5))

	for range 100 {
		mark, err := e.Logo("Nova", "minimal", "blues")
		require.NoError(t, err)

		matches := colorAttr.FindAllStringSubmatch(mark.SVG, -1)
		require.NotEmpty(t, matches)
		for _, m := range matches {
			assert.True(t, palette[m[1]], "color %q outside palette in %s", m[1], mark.Variant)
		}
	}
}

func TestLogo_LiteralColors(t *testing.T) {
	// animal
	e := New(catalog.Default(), &scriptedSource{values: []float64{0.3}})

	mark, err := e.Logo("Nova", "mascot", "purples")
	require.NoError(t, err)
	assert.Equal(t, "animal", mark.Variant)
	assert.Contains(t, mark.SVG, `<circle cx="80" cy="85" r="5" fill="black" />`)
	assert.Contains(t, mark.SVG, `<ellipse cx="100" cy="110" rx="15" ry="10" fill="#9C27B0" />`)
}

func TestLogo_StrokedShapes(t *testing.T) {
	// grid
	e := New(catalog.Default(), &scriptedSource{values: []float64{0.7}})

	mark, err := e.Logo("Nova", "geometric", "blues")
	require.NoError(t, err)
	assert.Equal(t, "grid", mark.Variant)
	assert.Contains(t, mark.SVG, `<line x1="40" y1="80" x2="160" y2="80" stroke="#2196F3" stroke-width="5" />`)
	assert.Equal(t, 4, strings.Count(mark.SVG, "<line "))
}

func TestLogo_ItalicLettermark(t *testing.T) {
	// script
	e := New(catalog.Default(), &scriptedSource{values: []float64{0.9}})

	mark, err := e.Logo("Nova", "lettermark", "blues")
	require.NoError(t, err)
	assert.Contains(t, mark.SVG, `font-size="80" font-style="italic" font-weight="bold"`)
}

func TestLogo_EscapesText(t *testing.T) {
	// wordmark
	e := New(catalog.Default(), &scriptedSource{values: []float64{0.5}})

	mark, err := e.Logo(`<a&"b">`, "lettermark", "blues")
	require.NoError(t, err)
	assert.Equal(t, "wordmark", mark.Variant)
	assert.Contains(t, mark.SVG, `>&lt;A&amp;&#34;B&#34;&gt;</text>`)
	assert.NotContains(t, mark.SVG, "<A")
}

func TestLogo_StyleWithoutCompositionsUsesDefault(t *testing.T) {
	doc := `
naming_styles:
  - key: plain
    prefixes: [P0, P1, P2, P3, P4, P5, P6, P7, P8, P9]
    suffixes: [S0, S1, S2, S3, S4, S5, S6, S7, S8, S9]
industries:
  - key: tech
    words: [W0, W1, W2, W3, W4, W5, W6, W7, W8, W9]
color_schemes: [{key: mono, colors: ["#000000", "#111111", "#222222", "#333333"]}]
logo_styles: [{key: badge, variants: [round, shield, crest, ribbon, seal]}]
taglines: [t0, t1, t2, t3, t4, t5, t6, t7, t8, t9]
`
	c, err := catalog.Load([]byte(doc))
	require.NoError(t, err)

	mark, err := New(c, zeros()).Logo("Nova", "badge", "mono")
	require.NoError(t, err)

	want := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 200 200">
<circle cx="100" cy="100" r="70" fill="#000000" />
<text x="100" y="120" font-family="Arial" font-size="70" font-weight="bold" text-anchor="middle" fill="#222222">NO</text>
</svg>`
	assert.Equal(t, want, mark.SVG)
	assert.Equal(t, DefaultVariant, mark.Variant)
}

func TestLogo_Unrecognized(t *testing.T) {
	e := New(catalog.Default(), zeros())

	_, err := e.Logo("Nova", "3d", "blues")
	var optErr *domain.UnrecognizedOptionError
	require.ErrorAs(t, err, &optErr)
	assert.Equal(t, "logoStyle", optErr.Option)

	_, err = e.Logo("Nova", "minimal", "neon")
	require.ErrorAs(t, err, &optErr)
	assert.Equal(t, "colorScheme", optErr.Option)
}

func BenchmarkLogo(b *testing.B) {
	e := New(catalog.Default(), NewSource(1))

	for b.Loop() {
		if _, err := e.Logo("Streamline", "geometric", "vibrant"); err != nil {
			b.Fatal(err)
		}
	}
}
