package calendar

import "github.com/pfrederiksen/hltv-cal/internal/match"

const (
	OutlookLiveBaseURL   = "https://outlook.live.com/calendar/0/deeplink/compose"
	OutlookOfficeBaseURL = "https://outlook.office.com/calendar/0/deeplink/compose"
)

// OutlookURL builds a compose deep link for Outlook.com (live) or
// Microsoft 365 (office). Any variant other than office uses live.
func OutlookURL(evt match.CalendarEvent, variant match.OutlookVariant) string {
	base := OutlookLiveBaseURL
	if variant == match.OutlookOffice {
		base = OutlookOfficeBaseURL
	}

	var q query
	q.add("subject", evt.Title)
	q.add("startdt", FormatOutlookTime(evt.Start))
	q.add("enddt", FormatOutlookTime(evt.End))
	q.add("body", evt.Description)
	q.add("path", "/calendar/action/compose")
	q.add("rru", "addevent")
	if evt.Location != "" {
		q.add("location", evt.Location)
	}

	return base + "?" + q.encode()
}
