package calendar

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/pfrederiksen/hltv-cal/internal/match"
)

func fixedNow(t *testing.T) {
	t.Helper()
	orig := now
	now = func() time.Time { return time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC) }
	t.Cleanup(func() { now = orig })
}

func sampleEvent() match.CalendarEvent {
	return match.CalendarEvent{
		Title:       "FaZe vs NAVI - IEM Katowice 2026",
		Description: "Watch at https://www.hltv.org/matches/2370001/faze-vs-navi-iem-katowice-2026",
		Start:       time.Date(2026, 2, 10, 15, 0, 0, 0, time.UTC),
		End:         time.Date(2026, 2, 10, 17, 30, 0, 0, time.UTC),
		URL:         "https://www.hltv.org/matches/2370001/faze-vs-navi-iem-katowice-2026",
	}
}

func TestGenerateICS(t *testing.T) {
	fixedNow(t)

	ics := GenerateICS([]match.CalendarEvent{sampleEvent()})

	requiredFields := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//HLTV Calendar Exporter//EN",
		"CALSCALE:GREGORIAN",
		"METHOD:PUBLISH",
		"BEGIN:VEVENT",
		"DTSTAMP:20260201T120000Z",
		"DTSTART:20260210T150000Z",
		"DTEND:20260210T173000Z",
		"SUMMARY:FaZe vs NAVI - IEM Katowice 2026",
		"DESCRIPTION:Watch at https://www.hltv.org/matches/2370001/faze-vs-navi-iem-katowice-2026",
		"URL:https://www.hltv.org/matches/2370001/faze-vs-navi-iem-katowice-2026",
		"END:VEVENT",
	}

	for _, field := range requiredFields {
		if !strings.Contains(ics, field) {
			t.Errorf("ICS missing required field: %s", field)
		}
	}

	if !strings.HasPrefix(ics, "BEGIN:VCALENDAR\r\n") {
		t.Errorf("ICS should start with BEGIN:VCALENDAR and CRLF, got %q", ics[:20])
	}
	if !strings.HasSuffix(ics, "\r\nEND:VCALENDAR") {
		t.Error("ICS should end with END:VCALENDAR and no trailing line break")
	}
	if strings.Contains(strings.ReplaceAll(ics, "\r\n", ""), "\n") {
		t.Error("ICS should not contain bare LF line endings")
	}
	if strings.Contains(ics, "LOCATION:") {
		t.Error("LOCATION should be omitted when empty")
	}
}

func TestGenerateICS_Empty(t *testing.T) {
	fixedNow(t)

	ics := GenerateICS(nil)

	if strings.Contains(ics, "BEGIN:VEVENT") {
		t.Error("empty event list should produce no VEVENT")
	}
	want := strings.Join([]string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//HLTV Calendar Exporter//EN",
		"CALSCALE:GREGORIAN",
		"METHOD:PUBLISH",
		"END:VCALENDAR",
	}, "\r\n")
	if ics != want {
		t.Errorf("GenerateICS(nil) = %q, want %q", ics, want)
	}
}

func TestGenerateICS_MultipleEvents(t *testing.T) {
	fixedNow(t)

	second := sampleEvent()
	second.Title = "G2 vs Vitality - BLAST Premier"
	second.Start = second.Start.Add(24 * time.Hour)
	second.End = second.End.Add(24 * time.Hour)

	ics := GenerateICS([]match.CalendarEvent{sampleEvent(), second})

	if got := strings.Count(ics, "BEGIN:VEVENT"); got != 2 {
		t.Errorf("BEGIN:VEVENT count = %d, want 2", got)
	}
	if got := strings.Count(ics, "END:VEVENT"); got != 2 {
		t.Errorf("END:VEVENT count = %d, want 2", got)
	}
	if got := strings.Count(ics, "BEGIN:VCALENDAR"); got != 1 {
		t.Errorf("BEGIN:VCALENDAR count = %d, want 1", got)
	}

	first := strings.Index(ics, "SUMMARY:FaZe vs NAVI")
	later := strings.Index(ics, "SUMMARY:G2 vs Vitality")
	if first < 0 || later < 0 || first > later {
		t.Error("events should appear in input order")
	}
}

func TestGenerateICS_SpecialCharacters(t *testing.T) {
	fixedNow(t)

	evt := sampleEvent()
	evt.Title = "Team; A vs Team, B"
	evt.Description = "Line one\nLine two \\ end"
	evt.Location = "Katowice, Poland"

	ics := GenerateICS([]match.CalendarEvent{evt})

	for _, want := range []string{
		`SUMMARY:Team\; A vs Team\, B`,
		`DESCRIPTION:Line one\nLine two \\ end`,
		`LOCATION:Katowice\, Poland`,
	} {
		if !strings.Contains(ics, want) {
			t.Errorf("ICS missing escaped line %q", want)
		}
	}
}

func TestNewUID(t *testing.T) {
	fixedNow(t)

	pattern := regexp.MustCompile(`^\d+-[0-9a-f]{9}@hltv-calendar-exporter$`)

	a := NewUID()
	b := NewUID()

	if !pattern.MatchString(a) {
		t.Errorf("NewUID() = %q, does not match %s", a, pattern)
	}
	if !strings.HasPrefix(a, "1769947200000-") {
		t.Errorf("NewUID() = %q, want millisecond prefix 1769947200000", a)
	}
	if a == b {
		t.Errorf("NewUID() returned %q twice", a)
	}
}

func TestEscapeICS(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"plain text", "plain text"},
		{"a,b", `a\,b`},
		{"a;b", `a\;b`},
		{`a\b`, `a\\b`},
		{"a\nb", `a\nb`},
		{`\,`, `\\\,`},
		{`\;`, `\\\;`},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := escapeICS(tt.input); got != tt.want {
				t.Errorf("escapeICS(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
