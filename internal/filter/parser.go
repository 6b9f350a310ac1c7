package filter

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/go-andiamo/splitter"
)

const monthNames = `(jan|january|feb|february|mar|march|apr|april|may|jun|june|jul|july|aug|august|sep|september|oct|october|nov|november|dec|december)`

var (
	sameMonthRange  = regexp.MustCompile(`(?i)^` + monthNames + `\s+(\d{1,2})\s*-\s*(\d{1,2})$`)
	crossMonthRange = regexp.MustCompile(`(?i)^` + monthNames + `\s+(\d{1,2})\s*-\s*` + monthNames + `\s+(\d{1,2})$`)
	wholeMonth      = regexp.MustCompile(`(?i)^` + monthNames + `$`)
)

// ParseTeams splits a space-separated team list. Names containing spaces are
// written in double quotes: navi "team liquid" faze
func ParseTeams(input string) ([]string, error) {
	spaceSplitter, err := splitter.NewSplitter(' ', splitter.DoubleQuotes, splitter.LeftRightDoubleDoubleQuotes)
	if err != nil {
		return nil, fmt.Errorf("creating splitter: %w", err)
	}

	parts, err := spaceSplitter.Split(strings.TrimSpace(input))
	if err != nil {
		return nil, fmt.Errorf("parsing team list: %w", err)
	}

	teams := make([]string, 0, len(parts))
	for _, part := range parts {
		name := strings.TrimSpace(strings.Trim(part, `"“”`))
		if name != "" {
			teams = append(teams, name)
		}
	}
	return teams, nil
}

// ParseBestOf parses a comma-separated list of series lengths, e.g. "1,3"
func ParseBestOf(input string) ([]int, error) {
	var formats []int
	for _, part := range strings.Split(input, ",") {
		part = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(part)), "bo")
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil || (n != 1 && n != 3 && n != 5) {
			return nil, fmt.Errorf("invalid best-of %q (must be 1, 3 or 5)", part)
		}
		formats = append(formats, n)
	}
	return formats, nil
}

// ParseDateRange turns a loose date range into an inclusive UTC window.
// Accepted forms are "Mar 1-15", "March 1 - April 15" and "March". A month
// that already passed this year refers to next year, and a range whose end
// month precedes its start month wraps into the following year. The window
// runs from 00:00:00 on the first day to 23:59:59 on the last.
func ParseDateRange(input string) (*time.Time, *time.Time, error) {
	return parseDateRangeAt(input, time.Now())
}

func parseDateRangeAt(input string, now time.Time) (*time.Time, *time.Time, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, nil, fmt.Errorf("date range cannot be empty")
	}

	var startMonth, endMonth time.Month
	var err error
	startDay, endDay := 1, 0

	switch m := [][]string{
		sameMonthRange.FindStringSubmatch(input),
		crossMonthRange.FindStringSubmatch(input),
		wholeMonth.FindStringSubmatch(input),
	}; {
	case m[0] != nil:
		startMonth, endMonth = parseMonth(m[0][1]), parseMonth(m[0][1])
		if startDay, err = parseDay(m[0][2]); err != nil {
			return nil, nil, err
		}
		if endDay, err = parseDay(m[0][3]); err != nil {
			return nil, nil, err
		}
	case m[1] != nil:
		startMonth, endMonth = parseMonth(m[1][1]), parseMonth(m[1][3])
		if startDay, err = parseDay(m[1][2]); err != nil {
			return nil, nil, err
		}
		if endDay, err = parseDay(m[1][4]); err != nil {
			return nil, nil, err
		}
	case m[2] != nil:
		startMonth = parseMonth(m[2][1])
		endMonth = startMonth + 1 // day 0 of the next month is the last day of this one
	default:
		return nil, nil, fmt.Errorf("invalid date range format. Use 'Mar 1-15', 'March 1 - March 15', or 'March'")
	}

	startYear := getYearForMonth(startMonth, now)
	endYear := startYear
	if endMonth < startMonth {
		endYear++
	}

	from := time.Date(startYear, startMonth, startDay, 0, 0, 0, 0, time.UTC)
	to := time.Date(endYear, endMonth, endDay, 23, 59, 59, 0, time.UTC)
	if from.After(to) {
		return nil, nil, fmt.Errorf("start date must be before end date")
	}
	return &from, &to, nil
}

func parseDay(s string) (int, error) {
	day, err := strconv.Atoi(s)
	if err != nil || day < 1 || day > 31 {
		return 0, fmt.Errorf("invalid day: %s", s)
	}
	return day, nil
}

var monthsByName = map[string]time.Month{
	"jan": time.January, "january": time.January,
	"feb": time.February, "february": time.February,
	"mar": time.March, "march": time.March,
	"apr": time.April, "april": time.April,
	"may": time.May,
	"jun": time.June, "june": time.June,
	"jul": time.July, "july": time.July,
	"aug": time.August, "august": time.August,
	"sep": time.September, "september": time.September,
	"oct": time.October, "october": time.October,
	"nov": time.November, "november": time.November,
	"dec": time.December, "december": time.December,
}

// parseMonth returns 0 for unknown names
func parseMonth(name string) time.Month {
	return monthsByName[strings.ToLower(strings.TrimSpace(name))]
}

// getYearForMonth picks this year, or next year once month has passed
func getYearForMonth(month time.Month, now time.Time) int {
	if month < now.Month() {
		return now.Year() + 1
	}
	return now.Year()
}
