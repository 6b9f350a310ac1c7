package extractor

import (
	"regexp"
	"strings"
)

var stagePattern = regexp.MustCompile(`\((.*?)\)`)

// ParseBestOf reads the series length from free-form format text such as
// "Best of 3 (LAN)". Returns 0 when no known format is mentioned.
func ParseBestOf(format string) int {
	lower := strings.ToLower(format)
	switch {
	case strings.Contains(lower, "bo1") || strings.Contains(lower, "best of 1"):
		return 1
	case strings.Contains(lower, "bo3") || strings.Contains(lower, "best of 3"):
		return 3
	case strings.Contains(lower, "bo5") || strings.Contains(lower, "best of 5"):
		return 5
	}
	return 0
}

// ParseStage returns the contents of the first parenthesized group
func ParseStage(format string) string {
	if m := stagePattern.FindStringSubmatch(format); m != nil {
		return m[1]
	}
	return ""
}
