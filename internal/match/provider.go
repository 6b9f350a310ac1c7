package match

import (
	"errors"
	"fmt"
	"strings"
)

// Provider identifies a calendar destination
type Provider string

const (
	ProviderGoogle  Provider = "google"
	ProviderOutlook Provider = "outlook"
	ProviderICS     Provider = "ics"

	// ProviderUnset is only valid as a stored preference; it means "ask".
	ProviderUnset Provider = "unset"
)

// OutlookVariant selects the Outlook deep-link host
type OutlookVariant string

const (
	OutlookLive   OutlookVariant = "live"
	OutlookOffice OutlookVariant = "office"
)

// ErrInvalidProvider is returned for provider names outside the fixed set
var ErrInvalidProvider = errors.New("invalid calendar provider")

// ErrInvalidVariant is returned for unknown Outlook variants
var ErrInvalidVariant = errors.New("invalid outlook variant")

// Providers lists the export destinations in menu order
func Providers() []Provider {
	return []Provider{ProviderGoogle, ProviderOutlook, ProviderICS}
}

// ParseProvider validates an export destination name
func ParseProvider(s string) (Provider, error) {
	p := Provider(strings.ToLower(strings.TrimSpace(s)))
	switch p {
	case ProviderGoogle, ProviderOutlook, ProviderICS:
		return p, nil
	}
	return "", fmt.Errorf("%w: %q (must be google, outlook or ics)", ErrInvalidProvider, s)
}

// ParseVariant validates an Outlook variant name
func ParseVariant(s string) (OutlookVariant, error) {
	v := OutlookVariant(strings.ToLower(strings.TrimSpace(s)))
	switch v {
	case OutlookLive, OutlookOffice:
		return v, nil
	}
	return "", fmt.Errorf("%w: %q (must be live or office)", ErrInvalidVariant, s)
}

// Label returns the human readable menu label
func (p Provider) Label() string {
	switch p {
	case ProviderGoogle:
		return "Google Calendar"
	case ProviderOutlook:
		return "Outlook"
	case ProviderICS:
		return "Download .ics"
	}
	return string(p)
}
