// Package catalog holds the static dictionaries behind name, tagline and logo
// generation. The tables are parsed once from an embedded YAML document and are
// read-only afterwards.
package catalog

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"maps"
	"os"
	"slices"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/jsamuelsen/brandgen/internal/domain"
)

// Fixed list sizes every catalog document must honor.
const (
	NameFragmentCount = 10
	IndustryWordCount = 10
	PaletteSize       = 4
	LogoVariantCount  = 5
	TaglineCount      = 10
)

//go:embed data/catalog.yaml
var embeddedCatalogYAML []byte

var (
	loadDefaultOnce sync.Once
	defaultCatalog  *Catalog
	defaultLoadErr  error
)

// ErrInvalidCatalog is returned when a catalog document is structurally wrong.
var ErrInvalidCatalog = errors.New("invalid catalog")

type document struct {
	NamingStyles []namingStyleDoc `yaml:"naming_styles"`
	Industries   []industryDoc    `yaml:"industries"`
	ColorSchemes []colorSchemeDoc `yaml:"color_schemes"`
	LogoStyles   []logoStyleDoc   `yaml:"logo_styles"`
	Taglines     []string         `yaml:"taglines"`
}

type namingStyleDoc struct {
	Key      string   `yaml:"key"`
	Prefixes []string `yaml:"prefixes"`
	Suffixes []string `yaml:"suffixes"`
}

type industryDoc struct {
	Key   string   `yaml:"key"`
	Words []string `yaml:"words"`
}

type colorSchemeDoc struct {
	Key    string   `yaml:"key"`
	Colors []string `yaml:"colors"`
}

type logoStyleDoc struct {
	Key      string   `yaml:"key"`
	Variants []string `yaml:"variants"`
}

// NameComponents are the fragments a naming style contributes to names.
type NameComponents struct {
	Prefixes []string
	Suffixes []string
}

// Catalog is an immutable set of generation dictionaries.
// Slices returned by lookups must not be modified by callers.
type Catalog struct {
	namingStyles map[domain.NamingStyle]NameComponents
	industries   map[domain.Industry][]string
	palettes     map[domain.ColorScheme]domain.Palette
	logoStyles   map[domain.LogoStyle][]string
	taglines     []string

	namingOrder   []domain.NamingStyle
	industryOrder []domain.Industry
	schemeOrder   []domain.ColorScheme
	logoOrder     []domain.LogoStyle
}

// Default returns the process-wide catalog parsed from the embedded document.
// It panics if the embedded document is invalid, which is a build defect.
func Default() *Catalog {
	c, err := LoadEmbedded()
	if err != nil {
		panic(fmt.Sprintf("catalog: embedded document: %v", err))
	}

	return c
}

// LoadEmbedded parses the embedded catalog document once and caches the result.
func LoadEmbedded() (*Catalog, error) {
	loadDefaultOnce.Do(func() {
		defaultCatalog, defaultLoadErr = Load(embeddedCatalogYAML)
	})

	return defaultCatalog, defaultLoadErr
}

// LoadFile parses the catalog document at path. An empty path selects the
// embedded catalog.
func LoadFile(path string) (*Catalog, error) {
	if path == "" {
		return LoadEmbedded()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}

	return Load(data)
}

// Load parses and validates a catalog document.
func Load(data []byte) (*Catalog, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decoding catalog: %w", err)
	}

	c := &Catalog{
		namingStyles: make(map[domain.NamingStyle]NameComponents, len(doc.NamingStyles)),
		industries:   make(map[domain.Industry][]string, len(doc.Industries)),
		palettes:     make(map[domain.ColorScheme]domain.Palette, len(doc.ColorSchemes)),
		logoStyles:   make(map[domain.LogoStyle][]string, len(doc.LogoStyles)),
		taglines:     doc.Taglines,
	}

	for _, s := range doc.NamingStyles {
		key := domain.NamingStyle(s.Key)
		if err := checkEntry("naming style", s.Key, c.namingStyles, key); err != nil {
			return nil, err
		}
		if err := checkSize("naming style "+s.Key+" prefixes", s.Prefixes, NameFragmentCount); err != nil {
			return nil, err
		}
		if err := checkSize("naming style "+s.Key+" suffixes", s.Suffixes, NameFragmentCount); err != nil {
			return nil, err
		}
		c.namingStyles[key] = NameComponents{Prefixes: s.Prefixes, Suffixes: s.Suffixes}
		c.namingOrder = append(c.namingOrder, key)
	}

	for _, ind := range doc.Industries {
		key := domain.Industry(ind.Key)
		if err := checkEntry("industry", ind.Key, c.industries, key); err != nil {
			return nil, err
		}
		if err := checkSize("industry "+ind.Key+" words", ind.Words, IndustryWordCount); err != nil {
			return nil, err
		}
		c.industries[key] = ind.Words
		c.industryOrder = append(c.industryOrder, key)
	}

	for _, cs := range doc.ColorSchemes {
		key := domain.ColorScheme(cs.Key)
		if err := checkEntry("color scheme", cs.Key, c.palettes, key); err != nil {
			return nil, err
		}
		if err := checkSize("color scheme "+cs.Key+" colors", cs.Colors, PaletteSize); err != nil {
			return nil, err
		}
		c.palettes[key] = domain.Palette{
			Main:       cs.Colors[0],
			Secondary:  cs.Colors[1],
			Accent:     cs.Colors[2],
			Background: cs.Colors[3],
		}
		c.schemeOrder = append(c.schemeOrder, key)
	}

	for _, ls := range doc.LogoStyles {
		key := domain.LogoStyle(ls.Key)
		if err := checkEntry("logo style", ls.Key, c.logoStyles, key); err != nil {
			return nil, err
		}
		if err := checkSize("logo style "+ls.Key+" variants", ls.Variants, LogoVariantCount); err != nil {
			return nil, err
		}
		c.logoStyles[key] = ls.Variants
		c.logoOrder = append(c.logoOrder, key)
	}

	if err := checkSize("taglines", c.taglines, TaglineCount); err != nil {
		return nil, err
	}

	if len(c.namingOrder) == 0 || len(c.industryOrder) == 0 || len(c.schemeOrder) == 0 || len(c.logoOrder) == 0 {
		return nil, fmt.Errorf("%w: every dictionary needs at least one entry", ErrInvalidCatalog)
	}

	return c, nil
}

// checkEntry rejects empty and duplicate keys.
func checkEntry[K comparable, V any](kind, raw string, seen map[K]V, key K) error {
	if raw == "" {
		return fmt.Errorf("%w: %s with empty key", ErrInvalidCatalog, kind)
	}
	if _, dup := seen[key]; dup {
		return fmt.Errorf("%w: duplicate %s %q", ErrInvalidCatalog, kind, raw)
	}

	return nil
}

func checkSize(what string, list []string, want int) error {
	if len(list) != want {
		return fmt.Errorf("%w: %s has %d entries, want %d", ErrInvalidCatalog, what, len(list), want)
	}

	return nil
}

// NameComponents returns the prefixes and suffixes of a naming style.
func (c *Catalog) NameComponents(style domain.NamingStyle) (NameComponents, error) {
	nc, ok := c.namingStyles[style]
	if !ok {
		return NameComponents{}, domain.NewUnrecognizedOptionError("style", string(style))
	}

	return nc, nil
}

// IndustryWords returns the word list of an industry.
func (c *Catalog) IndustryWords(industry domain.Industry) ([]string, error) {
	words, ok := c.industries[industry]
	if !ok {
		return nil, domain.NewUnrecognizedOptionError("industry", string(industry))
	}

	return words, nil
}

// Palette resolves a color scheme.
func (c *Catalog) Palette(scheme domain.ColorScheme) (domain.Palette, error) {
	p, ok := c.palettes[scheme]
	if !ok {
		return domain.Palette{}, domain.NewUnrecognizedOptionError("colorScheme", string(scheme))
	}

	return p, nil
}

// LogoVariants returns the sub-variant names of a logo style.
func (c *Catalog) LogoVariants(style domain.LogoStyle) ([]string, error) {
	variants, ok := c.logoStyles[style]
	if !ok {
		return nil, domain.NewUnrecognizedOptionError("logoStyle", string(style))
	}

	return variants, nil
}

// Taglines returns the tagline templates.
func (c *Catalog) Taglines() []string {
	return c.taglines
}

// Validate checks every enumeration key of a request, in request field order.
func (c *Catalog) Validate(req domain.GenerationRequest) error {
	if _, err := c.IndustryWords(req.Industry); err != nil {
		return err
	}
	if _, err := c.NameComponents(req.Style); err != nil {
		return err
	}
	if _, err := c.LogoVariants(req.LogoStyle); err != nil {
		return err
	}
	if _, err := c.Palette(req.ColorScheme); err != nil {
		return err
	}

	return nil
}

// Options lists every enumeration key in document order.
func (c *Catalog) Options() domain.Options {
	return domain.Options{
		Industries:   slices.Clone(c.industryOrder),
		NamingStyles: slices.Clone(c.namingOrder),
		LogoStyles:   slices.Clone(c.logoOrder),
		ColorSchemes: slices.Clone(c.schemeOrder),
		Palettes:     maps.Clone(c.palettes),
	}
}

// Name identifies the catalog in readiness checks.
func (c *Catalog) Name() string {
	return "catalog"
}

// Check reports whether the catalog has content to generate from.
func (c *Catalog) Check(_ context.Context) error {
	if c == nil || len(c.taglines) == 0 || len(c.namingStyles) == 0 {
		return fmt.Errorf("%w: catalog is empty", ErrInvalidCatalog)
	}

	return nil
}
