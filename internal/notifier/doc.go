// Package notifier shows short status messages ("toasts") after an export.
//
// At most one toast is visible at a time: a new toast replaces the previous
// one, and each toast dismisses itself after a fixed delay.
package notifier
