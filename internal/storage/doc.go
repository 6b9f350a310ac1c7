// Package storage manages a local data directory.
//
// It is used for two things: the JSON settings file written by the file
// preferences backend, and the download directory that receives exported
// .ics files. Paths starting with "~/" are expanded to the user's home.
package storage
