package generator

import (
	"fmt"
	"strings"

	"github.com/jsamuelsen/brandgen/internal/catalog"
	"github.com/jsamuelsen/brandgen/internal/domain"
)

// Placeholder tokens recognized in tagline templates.
const (
	industryToken = "[industry]"
	keywordToken  = "[keyword]"
)

// nameCandidates is how many names the naming engine builds before shuffling.
const nameCandidates = 4

// Engine bundles the three engines over one catalog and one random source.
// It holds no per-request state.
type Engine struct {
	catalog *catalog.Catalog
	src     Source
}

// New creates an Engine. A nil source falls back to a clock-seeded one.
func New(c *catalog.Catalog, src Source) *Engine {
	if c == nil {
		panic("generator: catalog is required")
	}
	if src == nil {
		src = NewSource(0)
	}

	return &Engine{catalog: c, src: src}
}

// Names builds four candidate names and returns the first three of a shuffle.
// Duplicates are possible and kept.
func (e *Engine) Names(industry domain.Industry, keywordsText string, style domain.NamingStyle) ([]string, error) {
	components, err := e.catalog.NameComponents(style)
	if err != nil {
		return nil, fmt.Errorf("resolving naming style: %w", err)
	}

	words, err := e.catalog.IndustryWords(industry)
	if err != nil {
		return nil, fmt.Errorf("resolving industry: %w", err)
	}

	keywords := ParseKeywords(keywordsText)
	names := make([]string, 0, nameCandidates)

	// prefix + industry word
	names = append(names,
		RandomElement(e.src, components.Prefixes)+RandomElement(e.src, words))

	// keyword + suffix, or industry word + suffix
	if len(keywords) > 0 {
		keyword := RandomElement(e.src, keywords)
		names = append(names, capitalize(keyword)+RandomElement(e.src, components.Suffixes))
	} else {
		names = append(names,
			RandomElement(e.src, words)+RandomElement(e.src, components.Suffixes))
	}

	// prefix + suffix
	names = append(names,
		RandomElement(e.src, components.Prefixes)+RandomElement(e.src, components.Suffixes))

	// industry/keyword mashup, or prefix + lower-cased industry word
	if len(keywords) > 0 {
		keyword := RandomElement(e.src, keywords)
		word := RandomElement(e.src, words)
		names = append(names, mashup(word, keyword))
	} else {
		names = append(names,
			RandomElement(e.src, components.Prefixes)+lower(RandomElement(e.src, words)))
	}

	return Shuffle(e.src, names)[:domain.ResultsPerRequest], nil
}

// mashup joins the first ceil(n/2) code points of word with keyword from
// code point floor(m/2) onward.
func mashup(word, keyword string) string {
	n := runeLen(word)
	m := runeLen(keyword)

	return headRunes(word, (n+1)/2) + tailRunes(keyword, m/2)
}

// Tagline fills a random template. Only the first occurrence of each token is
// replaced. name is accepted for symmetry with the other engines and unused.
func (e *Engine) Tagline(industry domain.Industry, _ string, keywordsText string) (string, error) {
	if _, err := e.catalog.IndustryWords(industry); err != nil {
		return "", fmt.Errorf("resolving industry: %w", err)
	}

	template := RandomElement(e.src, e.catalog.Taglines())
	tagline := strings.Replace(template, industryToken, string(industry), 1)

	replacement := string(industry)
	if keywords := ParseKeywords(keywordsText); len(keywords) > 0 {
		replacement = RandomElement(e.src, keywords)
	}

	return strings.Replace(tagline, keywordToken, replacement, 1), nil
}

// Catalog returns the dictionaries the engine draws from.
func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}
