// Package calendar renders calendar events for the three export destinations:
// an iCalendar (.ics) document, a Google Calendar template link and an
// Outlook compose deep link.
package calendar
