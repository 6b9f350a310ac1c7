// Package background serves settings lookups and URL opening for the rest of
// the program through an explicit request/response loop.
//
// A Service runs in its own goroutine and handles one request at a time. Each
// request carries a private buffered reply channel, so every request gets
// exactly one response and callers never see each other's replies.
package background
