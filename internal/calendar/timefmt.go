package calendar

import "time"

const (
	compactLayout    = "20060102T150405Z"
	punctuatedLayout = "2006-01-02T15:04:05Z"
)

// FormatICSTime formats t as an iCalendar UTC date-time, e.g. 20260210T150000Z
func FormatICSTime(t time.Time) string {
	return t.UTC().Format(compactLayout)
}

// FormatGoogleTime formats t for the Google "dates" parameter; the encoding
// is the same compact form as iCalendar.
func FormatGoogleTime(t time.Time) string {
	return t.UTC().Format(compactLayout)
}

// FormatOutlookTime formats t for Outlook's startdt/enddt, e.g. 2026-02-10T15:00:00Z
func FormatOutlookTime(t time.Time) string {
	return t.UTC().Format(punctuatedLayout)
}
