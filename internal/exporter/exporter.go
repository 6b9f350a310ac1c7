// Package exporter turns extracted matches into calendar entries: a browser
// deep link for Google or Outlook, or an .ics file in the download directory.
package exporter

import (
	"context"
	"errors"
	"fmt"

	"github.com/pfrederiksen/hltv-cal/internal/calendar"
	"github.com/pfrederiksen/hltv-cal/internal/logger"
	"github.com/pfrederiksen/hltv-cal/internal/match"
	"github.com/pfrederiksen/hltv-cal/internal/notifier"
	"github.com/pfrederiksen/hltv-cal/internal/preferences"
	"github.com/pfrederiksen/hltv-cal/internal/selection"
	"github.com/pfrederiksen/hltv-cal/internal/storage"
)

var (
	// ErrChooseProvider means no provider was given and none is stored as
	// the default; the caller has to ask the user.
	ErrChooseProvider = errors.New("no calendar provider chosen")

	// ErrNothingSelected is returned by a bulk export with an empty selection
	ErrNothingSelected = errors.New("no matches selected")
)

// Toast messages
const (
	MsgOpeningGoogle  = "Opening Google Calendar..."
	MsgOpeningOutlook = "Opening Outlook..."
	MsgICSDownloaded  = "ICS file downloaded!"
	MsgNoneSelected   = "No matches selected"
	msgBulkDownloaded = "Downloaded %d matches!"
)

// Background is the part of the background service an export needs
type Background interface {
	Settings(ctx context.Context) (*preferences.Settings, error)
	OpenURL(ctx context.Context, url string) error
}

// Result describes a finished export
type Result struct {
	Provider match.Provider `json:"provider" yaml:"provider"`
	URL      string         `json:"url,omitempty" yaml:"url,omitempty"`
	File     string         `json:"file,omitempty" yaml:"file,omitempty"`
	Events   int            `json:"events" yaml:"events"`
}

// Exporter performs exports for one user session
type Exporter struct {
	bg        Background
	downloads *storage.Storage
	notify    notifier.Notifier
}

// New creates an Exporter writing .ics files into downloads
func New(bg Background, downloads *storage.Storage, notify notifier.Notifier) *Exporter {
	return &Exporter{bg: bg, downloads: downloads, notify: notify}
}

// Resolve picks the provider for an export: the explicit choice when given,
// otherwise the stored default.
func (e *Exporter) Resolve(ctx context.Context, explicit match.Provider) (match.Provider, error) {
	if explicit != "" && explicit != match.ProviderUnset {
		return match.ParseProvider(string(explicit))
	}

	settings, err := e.bg.Settings(ctx)
	if err != nil {
		return "", fmt.Errorf("reading settings: %w", err)
	}
	if settings.DefaultProvider == match.ProviderUnset || settings.DefaultProvider == "" {
		return "", ErrChooseProvider
	}
	return settings.DefaultProvider, nil
}

// ExportMatch sends a single match to provider
func (e *Exporter) ExportMatch(ctx context.Context, m *match.Match, provider match.Provider) (*Result, error) {
	evt := match.ToCalendarEvent(m)

	switch provider {
	case match.ProviderGoogle:
		link := calendar.GoogleURL(evt)
		if err := e.bg.OpenURL(ctx, link); err != nil {
			return nil, fmt.Errorf("opening google calendar: %w", err)
		}
		e.notify.Notify(MsgOpeningGoogle, notifier.KindInfo)
		logger.IncrCounter("export.google")
		return &Result{Provider: provider, URL: link, Events: 1}, nil

	case match.ProviderOutlook:
		settings, err := e.bg.Settings(ctx)
		if err != nil {
			return nil, fmt.Errorf("reading settings: %w", err)
		}
		link := calendar.OutlookURL(evt, settings.OutlookVariant)
		if err := e.bg.OpenURL(ctx, link); err != nil {
			return nil, fmt.Errorf("opening outlook: %w", err)
		}
		e.notify.Notify(MsgOpeningOutlook, notifier.KindInfo)
		logger.IncrCounter("export.outlook")
		return &Result{Provider: provider, URL: link, Events: 1}, nil

	case match.ProviderICS:
		path, err := e.download(calendar.MatchFilename(m), []match.CalendarEvent{evt})
		if err != nil {
			return nil, err
		}
		e.notify.Notify(MsgICSDownloaded, notifier.KindSuccess)
		logger.IncrCounter("export.ics")
		return &Result{Provider: provider, File: path, Events: 1}, nil
	}

	return nil, fmt.Errorf("%w: %q", match.ErrInvalidProvider, provider)
}

// ExportSelected writes every selected match into one .ics file
func (e *Exporter) ExportSelected(ctx context.Context, set *selection.Set, filename string) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if set.Len() == 0 {
		e.notify.Notify(MsgNoneSelected, notifier.KindError)
		return nil, ErrNothingSelected
	}

	events := match.ToCalendarEvents(set.Matches())
	path, err := e.download(filename, events)
	if err != nil {
		return nil, err
	}

	e.notify.Notify(fmt.Sprintf(msgBulkDownloaded, len(events)), notifier.KindSuccess)
	logger.IncrCounter("export.bulk")
	return &Result{Provider: match.ProviderICS, File: path, Events: len(events)}, nil
}

func (e *Exporter) download(filename string, events []match.CalendarEvent) (string, error) {
	filename = calendar.EnsureICSExt(filename)
	doc := calendar.GenerateICS(events)

	if err := e.downloads.WriteFile(filename, []byte(doc)); err != nil {
		return "", fmt.Errorf("saving calendar file: %w", err)
	}

	path := e.downloads.Path(filename)
	logger.Info("Calendar file written", logger.Fields{"file": path, "events": len(events)})
	return path, nil
}
