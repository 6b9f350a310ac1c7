// Package cli implements the command-line interface for hltv-cal.
//
// The cli package provides the Cobra-based commands: match exports the match
// shown on a match page, listing lists, filters and bulk-exports the matches
// on a listing page, and settings manages the stored export preferences.
// It wires the scraper, extractor, background service and exporter together
// and formats results as text, JSON or YAML.
package cli
