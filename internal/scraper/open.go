package scraper

import (
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Loader routes a target to the source that can read it
type Loader struct {
	Remote Source
	File   *FileSource
}

// IsRemote reports whether target is an http(s) URL
func IsRemote(target string) bool {
	lower := strings.ToLower(target)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

// Open loads target from the remote source for URLs and from the file source
// for everything else.
func (l *Loader) Open(ctx context.Context, target string) (*goquery.Document, string, error) {
	if IsRemote(target) {
		return l.Remote.Document(ctx, target)
	}
	return l.File.Document(ctx, target)
}
