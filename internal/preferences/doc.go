// Package preferences stores the user's export settings.
//
// Two settings exist: the default calendar provider (or "unset", meaning the
// user is asked each time) and which Outlook host deep links go to. Settings
// live either in a local JSON file or in a private GitHub Gist so several
// machines can share them. Keys missing from stored data fall back to their
// defaults.
package preferences
