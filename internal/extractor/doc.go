// Package extractor turns HLTV match markup into match records.
//
// Two page shapes are understood: the single match page
// (hltv.org/matches/{id}/{slug}) and the repeating ".match" rows used by the
// listing, results and event hub pages. Extraction is best effort: every entry
// point returns either a complete *match.Match or false, never an error and
// never a partially filled record. Tournament names are resolved through an
// ordered chain of independent strategies, see FirstOf.
package extractor
