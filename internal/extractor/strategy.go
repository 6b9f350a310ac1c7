package extractor

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Strategy is one independent attempt at producing a value
type Strategy func() (string, bool)

// FirstOf runs strategies in order and returns the first success
func FirstOf(strategies ...Strategy) (string, bool) {
	for _, s := range strategies {
		if v, ok := s(); ok {
			return v, true
		}
	}
	return "", false
}

// Literal always succeeds with v
func Literal(v string) Strategy {
	return func() (string, bool) {
		return v, true
	}
}

// TextOf succeeds with the trimmed text of the first element matched by
// selector under root, if that text is not blank.
func TextOf(root *goquery.Selection, selector string) Strategy {
	return func() (string, bool) {
		return nonBlank(root.Find(selector).First().Text())
	}
}

// AttrOf succeeds with the value of attr on the first element matched by
// selector under root, if present and not blank.
func AttrOf(root *goquery.Selection, selector, attr string) Strategy {
	return func() (string, bool) {
		v, exists := root.Find(selector).First().Attr(attr)
		if !exists {
			return "", false
		}
		return nonBlank(v)
	}
}

// FromSlug succeeds with the tournament derived from a match URL slug
func FromSlug(path, team2 string) Strategy {
	return func() (string, bool) {
		return TournamentFromSlug(path, team2)
	}
}

func nonBlank(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != ""
}
