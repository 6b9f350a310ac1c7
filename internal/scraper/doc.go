// Package scraper loads match pages into goquery documents.
//
// Pages come from one of three sources: a plain HTTP fetch with a shared rate
// limiter, a headless Chrome session for pages that only render after
// JavaScript runs, or a saved HTML file (or stdin). Extraction itself lives in
// the extractor package; this package only hands it a DOM and the URL the DOM
// was served from.
package scraper
