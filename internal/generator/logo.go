package generator

import (
	"fmt"
	"html"
	"strconv"
	"strings"

	"github.com/jsamuelsen/brandgen/internal/domain"
)

const (
	svgOpen  = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 200 200">`
	svgClose = `</svg>`

	// initialsCutoff is the name length above which a single initial is used.
	initialsCutoff = 8

	// DefaultVariant names the plain circle mark used when a logo style has no
	// composition table.
	DefaultVariant = "default"
)

// colorSlot picks a palette color; slotLiteral uses paint.literal instead.
type colorSlot int

const (
	slotLiteral colorSlot = iota
	slotMain
	slotSecondary
	slotAccent
)

type paint struct {
	slot    colorSlot
	literal string
}

var (
	mainColor      = paint{slot: slotMain}
	secondaryColor = paint{slot: slotSecondary}
	accentColor    = paint{slot: slotAccent}
	white          = paint{literal: "white"}
	black          = paint{literal: "black"}
	noFill         = paint{literal: "none"}
)

func (p paint) resolve(pal domain.Palette) string {
	switch p.slot {
	case slotMain:
		return pal.Main
	case slotSecondary:
		return pal.Secondary
	case slotAccent:
		return pal.Accent
	default:
		return p.literal
	}
}

// attr is one attribute; numbers and paths are stored pre-formatted.
type attr struct {
	name  string
	value string
	paint *paint
}

// shape is one primitive element with attributes in output order.
type shape struct {
	element string
	attrs   []attr
}

func lit(name string, v int) attr { return attr{name: name, value: strconv.Itoa(v)} }

func painted(name string, p paint) attr { return attr{name: name, paint: &p} }

func circle(cx, cy, r int, fill paint) shape {
	return shape{"circle", []attr{lit("cx", cx), lit("cy", cy), lit("r", r), painted("fill", fill)}}
}

func ellipse(cx, cy, rx, ry int, fill paint) shape {
	return shape{"ellipse", []attr{lit("cx", cx), lit("cy", cy), lit("rx", rx), lit("ry", ry), painted("fill", fill)}}
}

func rect(x, y, w, h int, fill paint) shape {
	return shape{"rect", []attr{lit("x", x), lit("y", y), lit("width", w), lit("height", h), painted("fill", fill)}}
}

func roundedRect(x, y, w, h, rx int, fill paint) shape {
	return shape{"rect", []attr{lit("x", x), lit("y", y), lit("width", w), lit("height", h), lit("rx", rx), painted("fill", fill)}}
}

func polygon(points string, fill paint) shape {
	return shape{"polygon", []attr{{name: "points", value: points}, painted("fill", fill)}}
}

func filledPath(d string, fill paint) shape {
	return shape{"path", []attr{{name: "d", value: d}, painted("fill", fill)}}
}

func strokedPath(d string, stroke paint, width int) shape {
	return shape{"path", []attr{{name: "d", value: d}, painted("stroke", stroke), lit("stroke-width", width), painted("fill", noFill)}}
}

func line(x1, y1, x2, y2 int, stroke paint, width int) shape {
	return shape{"line", []attr{lit("x1", x1), lit("y1", y1), lit("x2", x2), lit("y2", y2), painted("stroke", stroke), lit("stroke-width", width)}}
}

// label is the centered text drawn over a composition.
type label struct {
	y        int
	size     int
	italic   bool
	fill     paint
	fullName bool
}

type composition struct {
	shapes []shape
	label  label
}

// styleTable maps sub-variant names to compositions. Names without an entry
// render the fallback, so several catalog names can share one drawing.
type styleTable struct {
	variants map[string]composition
	fallback composition
}

var defaultComposition = composition{
	shapes: []shape{circle(100, 100, 70, mainColor)},
	label:  label{y: 120, size: 70, fill: accentColor},
}

var compositions = map[domain.LogoStyle]styleTable{
	"minimal": {
		variants: map[string]composition{
			"circle": {
				shapes: []shape{circle(100, 100, 80, mainColor)},
				label:  label{y: 120, size: 60, fill: accentColor},
			},
			"square": {
				shapes: []shape{rect(30, 30, 140, 140, mainColor)},
				label:  label{y: 120, size: 60, fill: accentColor},
			},
			"triangle": {
				shapes: []shape{polygon("100,20 180,160 20,160", mainColor)},
				label:  label{y: 120, size: 50, fill: accentColor},
			},
			"hexagon": {
				shapes: []shape{polygon("100,20 170,60 170,140 100,180 30,140 30,60", mainColor)},
				label:  label{y: 120, size: 50, fill: accentColor},
			},
		},
		// diamond
		fallback: composition{
			shapes: []shape{polygon("100,20 180,100 100,180 20,100", mainColor)},
			label:  label{y: 120, size: 50, fill: accentColor},
		},
	},
	"abstract": {
		variants: map[string]composition{
			"blob": {
				shapes: []shape{filledPath("M160,100 C160,60 140,30 100,30 C60,30 30,70 30,100 C30,130 60,170 100,170 C140,170 160,140 160,100 Z", mainColor)},
				label:  label{y: 110, size: 40, fill: accentColor},
			},
			"wave": {
				shapes: []shape{filledPath("M30,100 C60,60 90,140 130,80 C170,20 190,100 170,150 C150,200 90,170 50,150 C10,130 0,140 30,100 Z", mainColor)},
				label:  label{y: 110, size: 40, fill: accentColor},
			},
			"swirl": {
				shapes: []shape{
					strokedPath("M100,30 C130,30 160,40 160,100 C160,160 100,170 100,170 C40,170 30,120 50,90 C70,60 100,70 100,90 C100,110 80,110 80,100", mainColor, 15),
					circle(100, 100, 40, secondaryColor),
				},
				label: label{y: 115, size: 40, fill: accentColor},
			},
		},
		// splash, dots
		fallback: composition{
			shapes: []shape{
				circle(70, 80, 50, mainColor),
				circle(130, 120, 40, secondaryColor),
				circle(100, 90, 45, accentColor),
			},
			label: label{y: 100, size: 40, fill: white},
		},
	},
	"geometric": {
		variants: map[string]composition{
			"cube": {
				shapes: []shape{
					polygon("70,60 130,60 160,90 130,120 70,120 40,90", mainColor),
					polygon("70,120 130,120 130,160 70,160", secondaryColor),
					polygon("130,120 160,90 160,130 130,160", accentColor),
				},
				label: label{y: 100, size: 30, fill: white},
			},
			"pyramid": {
				shapes: []shape{
					polygon("100,40 160,140 40,140", mainColor),
					polygon("100,40 160,140 100,140", secondaryColor),
				},
				label: label{y: 110, size: 30, fill: white},
			},
			"grid": {
				shapes: []shape{
					rect(40, 40, 120, 120, mainColor),
					line(40, 80, 160, 80, secondaryColor, 5),
					line(40, 120, 160, 120, secondaryColor, 5),
					line(80, 40, 80, 160, secondaryColor, 5),
					line(120, 40, 120, 160, secondaryColor, 5),
					circle(100, 100, 30, accentColor),
				},
				label: label{y: 110, size: 30, fill: white},
			},
		},
		// polygon, line-art
		fallback: composition{
			shapes: []shape{
				polygon("100,40 140,60 160,100 140,140 100,160 60,140 40,100 60,60", mainColor),
				polygon("100,60 130,75 140,100 130,125 100,140 70,125 60,100 70,75", secondaryColor),
			},
			label: label{y: 110, size: 40, fill: white},
		},
	},
	"mascot": {
		variants: map[string]composition{
			"robot": {
				shapes: []shape{
					roundedRect(60, 50, 80, 80, 10, mainColor),
					circle(80, 80, 10, accentColor),
					circle(120, 80, 10, accentColor),
					rect(75, 100, 50, 10, accentColor),
					roundedRect(70, 130, 60, 30, 5, secondaryColor),
				},
				label: label{y: 153, size: 20, fill: white},
			},
			"animal": {
				shapes: []shape{
					circle(100, 100, 60, mainColor),
					circle(80, 85, 10, white),
					circle(120, 85, 10, white),
					circle(80, 85, 5, black),
					circle(120, 85, 5, black),
					ellipse(100, 110, 15, 10, secondaryColor),
				},
				label: label{y: 150, size: 20, fill: white},
			},
		},
		// character, person, monster
		fallback: composition{
			shapes: []shape{
				circle(100, 100, 60, mainColor),
				circle(80, 85, 8, white),
				circle(120, 85, 8, white),
				strokedPath("M80,120 Q100,140 120,120", secondaryColor, 8),
			},
			label: label{y: 160, size: 20, fill: white},
		},
	},
	"lettermark": {
		variants: map[string]composition{
			"initial": {
				shapes: []shape{circle(100, 100, 80, mainColor)},
				label:  label{y: 130, size: 100, fill: accentColor},
			},
			"monogram": {
				shapes: []shape{roundedRect(30, 30, 140, 140, 20, mainColor)},
				label:  label{y: 130, size: 90, fill: accentColor},
			},
			"wordmark": {
				shapes: []shape{rect(20, 80, 160, 40, mainColor)},
				label:  label{y: 110, size: 30, fill: white, fullName: true},
			},
		},
		// typeface, script
		fallback: composition{
			shapes: []shape{circle(100, 100, 80, mainColor)},
			label:  label{y: 120, size: 80, italic: true, fill: accentColor},
		},
	},
}

// Initials returns the first code point of names longer than eight code
// points, otherwise the first two, upper-cased.
func Initials(name string) string {
	n := 2
	if runeLen(name) > initialsCutoff {
		n = 1
	}

	return upper(headRunes(name, n))
}

// Logo draws a mark for name. The sub-variant is picked uniformly from the
// style's catalog list. Styles without a composition table get the default
// circle mark.
func (e *Engine) Logo(name string, style domain.LogoStyle, scheme domain.ColorScheme) (domain.LogoMark, error) {
	pal, err := e.catalog.Palette(scheme)
	if err != nil {
		return domain.LogoMark{}, fmt.Errorf("resolving color scheme: %w", err)
	}

	variants, err := e.catalog.LogoVariants(style)
	if err != nil {
		return domain.LogoMark{}, fmt.Errorf("resolving logo style: %w", err)
	}

	table, ok := compositions[style]
	if !ok {
		return domain.LogoMark{SVG: render(defaultComposition, name, pal), Variant: DefaultVariant}, nil
	}

	variant := RandomElement(e.src, variants)
	comp, ok := table.variants[variant]
	if !ok {
		comp = table.fallback
	}

	return domain.LogoMark{SVG: render(comp, name, pal), Variant: variant}, nil
}

// render writes one element per line. Text content is XML-escaped.
func render(c composition, name string, pal domain.Palette) string {
	var b strings.Builder

	b.WriteString(svgOpen)
	b.WriteByte('\n')

	for _, s := range c.shapes {
		b.WriteByte('<')
		b.WriteString(s.element)
		for _, a := range s.attrs {
			value := a.value
			if a.paint != nil {
				value = a.paint.resolve(pal)
			}
			fmt.Fprintf(&b, ` %s="%s"`, a.name, value)
		}
		b.WriteString(" />\n")
	}

	text := Initials(name)
	if c.label.fullName {
		text = upper(name)
	}

	fmt.Fprintf(&b, `<text x="100" y="%d" font-family="Arial" font-size="%d"`, c.label.y, c.label.size)
	if c.label.italic {
		b.WriteString(` font-style="italic"`)
	}
	fmt.Fprintf(&b, ` font-weight="bold" text-anchor="middle" fill="%s">%s</text>`,
		c.label.fill.resolve(pal), html.EscapeString(text))
	b.WriteByte('\n')

	b.WriteString(svgClose)

	return b.String()
}
