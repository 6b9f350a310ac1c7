// Package match provides the match and calendar-event records shared by the
// extractor, the calendar writers and the exporter.
//
// A Match is the normalized view of one HLTV match scraped from either a match
// page or a listing row. ToCalendarEvent maps it onto a provider-neutral
// CalendarEvent whose end time is derived from the match's best-of format.
package match
