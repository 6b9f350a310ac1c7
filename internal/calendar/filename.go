package calendar

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/pfrederiksen/hltv-cal/internal/match"
)

var separatorRun = regexp.MustCompile(`[\s/\\]+`)

// MatchFilename names the download for a single match, e.g.
// "FaZe-vs-Team-Liquid.ics". Whitespace and path separators become dashes.
func MatchFilename(m *match.Match) string {
	name := fmt.Sprintf("%s-vs-%s.ics", m.Team1, m.Team2)
	return separatorRun.ReplaceAllString(name, "-")
}

// BulkFilename names a multi-match download after the UTC date of t
func BulkFilename(t time.Time) string {
	return fmt.Sprintf("hltv-matches-%s.ics", t.UTC().Format("2006-01-02"))
}

// EnsureICSExt appends .ics unless name already ends with it
func EnsureICSExt(name string) string {
	if strings.HasSuffix(name, ".ics") {
		return name
	}
	return name + ".ics"
}
