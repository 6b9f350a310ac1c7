package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/pfrederiksen/hltv-cal/internal/exporter"
	"github.com/pfrederiksen/hltv-cal/internal/match"
	"github.com/pfrederiksen/hltv-cal/internal/preferences"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
	FormatYAML OutputFormat = "yaml"
)

const dateLayout = "Mon Jan 2 2006 15:04 MST"

// OutputResult contains data to be output
type OutputResult struct {
	CheckedAt  time.Time        `json:"checked_at" yaml:"checked_at"`
	Matches    []*match.Match   `json:"matches" yaml:"matches"`
	MatchCount int              `json:"match_count" yaml:"match_count"`
	Filter     string           `json:"filter,omitempty" yaml:"filter,omitempty"`
	Export     *exporter.Result `json:"export,omitempty" yaml:"export,omitempty"`
}

// WriteOutput writes the result in the specified format
func WriteOutput(w io.Writer, result *OutputResult, format OutputFormat, verbose bool) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, result)
	case FormatYAML:
		return writeYAML(w, result)
	case FormatText:
		return writeText(w, result, verbose)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// WriteSettings writes settings in the specified format
func WriteSettings(w io.Writer, s *preferences.Settings, format OutputFormat) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, s)
	case FormatYAML:
		return writeYAML(w, s)
	case FormatText:
		provider := string(s.DefaultProvider)
		if s.DefaultProvider != match.ProviderUnset {
			provider = fmt.Sprintf("%s (%s)", s.DefaultProvider, s.DefaultProvider.Label())
		} else {
			provider += " (ask every time)"
		}
		fmt.Fprintf(w, "defaultProvider: %s\n", provider)
		fmt.Fprintf(w, "outlookVariant:  %s\n", s.OutlookVariant)
		return nil
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// writeJSON outputs v as indented JSON
func writeJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func writeYAML(w io.Writer, v any) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(v); err != nil {
		return err
	}
	return encoder.Close()
}

// writeText outputs results as human-readable text
func writeText(w io.Writer, result *OutputResult, verbose bool) error {
	if result.Filter != "" {
		fmt.Fprintf(w, "Filter: %s\n", result.Filter)
	}

	if result.MatchCount == 0 {
		fmt.Fprintln(w, "No matches found.")
	}

	for _, m := range result.Matches {
		fmt.Fprintf(w, "[%s] %s  %s vs %s - %s", m.ID, m.Date.UTC().Format(dateLayout), m.Team1, m.Team2, m.Tournament)
		if m.BestOf > 0 {
			fmt.Fprintf(w, " (BO%d)", m.BestOf)
		}
		fmt.Fprintln(w)

		if verbose {
			if m.Stage != "" {
				fmt.Fprintf(w, "     Stage: %s\n", m.Stage)
			}
			fmt.Fprintf(w, "     URL: %s\n", m.MatchURL)
		}
	}

	if result.MatchCount > 1 {
		fmt.Fprintf(w, "\nTotal: %d matches\n", result.MatchCount)
	}

	if exp := result.Export; exp != nil {
		switch {
		case exp.File != "":
			fmt.Fprintf(w, "\nSaved %d event(s) to %s\n", exp.Events, exp.File)
		case exp.URL != "":
			fmt.Fprintf(w, "\nOpened %s: %s\n", exp.Provider.Label(), exp.URL)
		}
	}

	return nil
}
