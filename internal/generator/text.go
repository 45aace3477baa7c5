package generator

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ParseKeywords splits comma-separated text into trimmed, non-empty keywords,
// preserving order. Blank input yields an empty slice.
func ParseKeywords(text string) []string {
	if strings.TrimSpace(text) == "" {
		return []string{}
	}

	parts := strings.Split(text, ",")
	keywords := make([]string, 0, len(parts))
	for _, p := range parts {
		if k := strings.TrimSpace(p); k != "" {
			keywords = append(keywords, k)
		}
	}

	return keywords
}

// upper applies full Unicode upper-casing, including expansions such as ß -> SS.
// Casers are stateful, so one is built per call.
func upper(s string) string {
	return cases.Upper(language.Und).String(s)
}

func lower(s string) string {
	return cases.Lower(language.Und).String(s)
}

// capitalize upper-cases the first code point and keeps the rest verbatim.
func capitalize(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return s
	}

	return upper(string(r[0])) + string(r[1:])
}

// headRunes returns the first n code points of s (all of s if shorter).
func headRunes(s string, n int) string {
	r := []rune(s)
	if n >= len(r) {
		return s
	}

	return string(r[:n])
}

// tailRunes returns s from code point n onward.
func tailRunes(s string, n int) string {
	r := []rune(s)
	if n >= len(r) {
		return ""
	}

	return string(r[n:])
}

// runeLen counts code points.
func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}
