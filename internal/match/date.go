package match

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseTimestamp parses an HLTV data-unix attribute (milliseconds since the
// epoch) into a UTC time.
func ParseTimestamp(unixMs string) (time.Time, error) {
	ms, err := strconv.ParseInt(strings.TrimSpace(unixMs), 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing timestamp %q: %w", unixMs, err)
	}
	return time.UnixMilli(ms).UTC(), nil
}

// IsUpcoming reports whether the match starts after now
func (m *Match) IsUpcoming(now time.Time) bool {
	return m.Date.After(now)
}
