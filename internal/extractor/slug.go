package extractor

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	slugPattern    = regexp.MustCompile(`/matches/\d+/(.+)`)
	teamTokenStrip = regexp.MustCompile(`[^a-z0-9]+`)
)

// TournamentFromSlug derives a tournament name from a match path of the form
// /matches/{id}/{team1}-vs-{team2}-{event}, e.g.
//
//	/matches/2389843/leo-vs-lazer-cats-cct-season-3-europe-series-15
//
// with team2 "Lazer Cats" gives "Cct Season 3 Europe Series 15".
//
// The team1 portion is matched lazily up to the first occurrence of the
// normalized team2 token, so a team1 name containing that token can anchor
// the match too early. The slug carries no separator that would disambiguate.
func TournamentFromSlug(path, team2 string) (string, bool) {
	m := slugPattern.FindStringSubmatch(path)
	if m == nil {
		return "", false
	}
	slug := m[1]

	token := teamTokenStrip.ReplaceAllString(strings.ToLower(team2), "-")
	vs, err := regexp.Compile(`(?i)^.+-vs-.*?` + regexp.QuoteMeta(token) + `-(.+)$`)
	if err != nil {
		return "", false
	}

	parts := vs.FindStringSubmatch(slug)
	if parts == nil {
		return "", false
	}

	words := strings.Split(parts[1], "-")
	for i, w := range words {
		words[i] = upperFirst(w)
	}
	return strings.Join(words, " "), true
}

func upperFirst(w string) string {
	r, size := utf8.DecodeRuneInString(w)
	if r == utf8.RuneError {
		return w
	}
	return string(unicode.ToUpper(r)) + w[size:]
}
