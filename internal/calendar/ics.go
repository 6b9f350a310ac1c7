package calendar

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pfrederiksen/hltv-cal/internal/match"
)

const (
	// MIMEType is the content type of generated documents
	MIMEType = "text/calendar;charset=utf-8"

	prodID    = "-//HLTV Calendar Exporter//EN"
	uidDomain = "hltv-calendar-exporter"
	crlf      = "\r\n"
)

// now is swapped out in tests
var now = time.Now

// GenerateICS builds one iCalendar document holding a VEVENT per event.
// Lines are CRLF separated; the document has no trailing line break.
func GenerateICS(events []match.CalendarEvent) string {
	lines := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:" + prodID,
		"CALSCALE:GREGORIAN",
		"METHOD:PUBLISH",
	}

	for _, evt := range events {
		lines = append(lines, vevent(evt)...)
	}

	lines = append(lines, "END:VCALENDAR")
	return strings.Join(lines, crlf)
}

func vevent(evt match.CalendarEvent) []string {
	lines := []string{
		"BEGIN:VEVENT",
		"UID:" + NewUID(),
		"DTSTAMP:" + FormatICSTime(now()),
		"DTSTART:" + FormatICSTime(evt.Start),
		"DTEND:" + FormatICSTime(evt.End),
		"SUMMARY:" + escapeICS(evt.Title),
	}

	if evt.Description != "" {
		lines = append(lines, "DESCRIPTION:"+escapeICS(evt.Description))
	}
	if evt.Location != "" {
		lines = append(lines, "LOCATION:"+escapeICS(evt.Location))
	}
	if evt.URL != "" {
		lines = append(lines, "URL:"+evt.URL)
	}

	return append(lines, "END:VEVENT")
}

// NewUID returns a fresh event identifier of the form
// {unix millis}-{9 char token}@hltv-calendar-exporter. It is unique enough
// for interactive exports, not a cryptographic guarantee.
func NewUID() string {
	token := strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
	return fmt.Sprintf("%s-%s@%s", strconv.FormatInt(now().UnixMilli(), 10), token, uidDomain)
}

// escapeICS escapes TEXT values per RFC 5545. The backslash goes first so the
// escapes added afterwards are not escaped again.
func escapeICS(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, ";", `\;`)
	s = strings.ReplaceAll(s, ",", `\,`)
	s = strings.ReplaceAll(s, "\n", `\n`)
	return s
}
