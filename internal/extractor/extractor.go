package extractor

import (
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/pfrederiksen/hltv-cal/internal/logger"
	"github.com/pfrederiksen/hltv-cal/internal/match"
)

// DefaultBaseURL prefixes relative match links found in listing rows
const DefaultBaseURL = "https://www.hltv.org"

// Selectors used against HLTV markup
const (
	selTeam1       = ".team1-gradient .teamName"
	selTeam2       = ".team2-gradient .teamName"
	selTimestamp   = "[data-unix]"
	selEventLink   = ".event a"
	selFormat      = ".preformatted-text"
	selRow         = ".match"
	selRowLink     = `a[href*="/matches/"]`
	selRowTeam     = ".match-teamname"
	selRowFormat   = ".match-format"
	selRowEvent    = ".match-event"
	selEventHub    = ".event-hub-title"
	attrTimestamp  = "data-unix"
	attrEventTitle = "data-event-headline"
)

// FromMatchPage extracts the match shown on a single match page. pageURL is
// the address the document was loaded from.
func FromMatchPage(doc *goquery.Document, pageURL string) (m *match.Match, ok bool) {
	defer recoverAbsent(&m, &ok)

	team1El := doc.Find(selTeam1).First()
	team2El := doc.Find(selTeam2).First()
	timeEl := doc.Find(selTimestamp).First()
	if team1El.Length() == 0 || team2El.Length() == 0 || timeEl.Length() == 0 {
		return nil, false
	}

	date, ok := timestampOf(timeEl)
	if !ok {
		return nil, false
	}

	team1 := textOr(team1El, match.PlaceholderTeam1)
	team2 := textOr(team2El, match.PlaceholderTeam2)
	format := strings.TrimSpace(doc.Find(selFormat).First().Text())
	path := pathOf(pageURL)

	tournament, _ := FirstOf(
		TextOf(doc.Selection, selEventLink),
		FromSlug(path, team2),
		Literal(match.FallbackTournament),
	)

	return &match.Match{
		ID:         match.NewID(path),
		Team1:      team1,
		Team2:      team2,
		Date:       date,
		Tournament: tournament,
		MatchURL:   pageURL,
		BestOf:     ParseBestOf(format),
		Stage:      ParseStage(format),
	}, true
}

// FromListingRow extracts one ".match" row of a listing page. doc is the
// whole page and is consulted for the event hub heading.
func FromListingRow(doc *goquery.Document, row *goquery.Selection, baseURL string) (m *match.Match, ok bool) {
	defer recoverAbsent(&m, &ok)

	linkEl := row.Find(selRowLink).First()
	timeEl := row.Find(selTimestamp).First()
	teamEls := row.Find(selRowTeam)
	if linkEl.Length() == 0 || timeEl.Length() == 0 || teamEls.Length() < 2 {
		return nil, false
	}

	href, _ := linkEl.Attr("href")
	date, ok := timestampOf(timeEl)
	if !ok {
		return nil, false
	}

	team1 := textOr(teamEls.Eq(0), match.PlaceholderTeam1)
	team2 := textOr(teamEls.Eq(1), match.PlaceholderTeam2)
	format := strings.TrimSpace(row.Find(selRowFormat).First().Text())

	tournament, _ := FirstOf(
		AttrOf(row, selRowEvent, attrEventTitle),
		TextOf(row, selRowEvent),
		TextOf(doc.Selection, selEventHub),
		FromSlug(href, team2),
		Literal(match.FallbackTournament),
	)

	return &match.Match{
		ID:         match.NewID(href),
		Team1:      team1,
		Team2:      team2,
		Date:       date,
		Tournament: tournament,
		MatchURL:   absoluteURL(baseURL, href),
		BestOf:     ParseBestOf(format),
	}, true
}

// Listing extracts every row of a listing page. Rows that do not carry a
// complete match are skipped. A row repeating a numeric id from its link keeps
// only the first occurrence; rows whose link has no id are always kept.
func Listing(doc *goquery.Document, baseURL string) []*match.Match {
	matches := make([]*match.Match, 0)
	seen := make(map[string]bool)
	skipped, repeated := 0, 0

	doc.Find(selRow).Each(func(i int, row *goquery.Selection) {
		m, ok := FromListingRow(doc, row, baseURL)
		if !ok {
			skipped++
			return
		}
		if id, parsed := match.IDFromPath(m.MatchURL); parsed {
			if seen[id] {
				repeated++
				return
			}
			seen[id] = true
		}
		matches = append(matches, m)
	})

	logger.Debug("Extracted listing", logger.Fields{
		"matches":  len(matches),
		"skipped":  skipped,
		"repeated": repeated,
	})
	logger.IncrCounter("extract.listing")

	return matches
}

// IsMatchPage reports whether doc looks like a single match page
func IsMatchPage(doc *goquery.Document) bool {
	return doc.Find(selTeam1).Length() > 0 && doc.Find(selTeam2).Length() > 0
}

func timestampOf(sel *goquery.Selection) (date time.Time, ok bool) {
	raw, exists := sel.Attr(attrTimestamp)
	if !exists || strings.TrimSpace(raw) == "" {
		return date, false
	}
	date, err := match.ParseTimestamp(raw)
	if err != nil {
		return date, false
	}
	return date, true
}

func textOr(sel *goquery.Selection, placeholder string) string {
	if v, ok := nonBlank(sel.Text()); ok {
		return v
	}
	return placeholder
}

// pathOf returns the path component of a page address; unparseable input is
// used as-is so the id and slug patterns can still run against it.
func pathOf(pageURL string) string {
	u, err := url.Parse(pageURL)
	if err != nil || u.Path == "" {
		return pageURL
	}
	return u.Path
}

func absoluteURL(baseURL, href string) string {
	if strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://") {
		return href
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return strings.TrimRight(baseURL, "/") + href
}

func recoverAbsent(m **match.Match, ok *bool) {
	if r := recover(); r != nil {
		logger.Warn("Extraction panicked", logger.Fields{"panic": r})
		*m, *ok = nil, false
	}
}
