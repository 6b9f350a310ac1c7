package calendar

import (
	"net/url"
	"strings"
)

// query is a URL query that keeps parameters in insertion order
type query []string

func (q *query) add(key, value string) {
	*q = append(*q, url.QueryEscape(key)+"="+url.QueryEscape(value))
}

func (q query) encode() string {
	return strings.Join(q, "&")
}
