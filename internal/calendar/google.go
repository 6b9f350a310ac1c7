package calendar

import "github.com/pfrederiksen/hltv-cal/internal/match"

// GoogleBaseURL is the Google Calendar event template endpoint
const GoogleBaseURL = "https://calendar.google.com/calendar/render"

// GoogleURL builds a link that opens Google Calendar with evt pre-filled
func GoogleURL(evt match.CalendarEvent) string {
	var q query
	q.add("action", "TEMPLATE")
	q.add("text", evt.Title)
	q.add("dates", FormatGoogleTime(evt.Start)+"/"+FormatGoogleTime(evt.End))
	q.add("details", evt.Description)
	if evt.Location != "" {
		q.add("location", evt.Location)
	}

	return GoogleBaseURL + "?" + q.encode()
}
