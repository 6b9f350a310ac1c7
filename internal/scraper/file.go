package scraper

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/PuerkitoBio/goquery"
)

// Stdin is the file target that reads from standard input
const Stdin = "-"

// FileSource parses saved HTML. Saved pages carry no address of their own, so
// the page URL is whatever the caller configured.
type FileSource struct {
	PageURL string
	stdin   io.Reader
}

// NewFile creates a FileSource that reports pageURL for every document
func NewFile(pageURL string) *FileSource {
	return &FileSource{PageURL: pageURL, stdin: os.Stdin}
}

// Document reads target (a path, or "-" for stdin) and parses it
func (s *FileSource) Document(ctx context.Context, target string) (*goquery.Document, string, error) {
	if err := ctx.Err(); err != nil {
		return nil, "", err
	}

	var r io.Reader
	if target == Stdin {
		r = s.stdin
	} else {
		f, err := os.Open(target)
		if err != nil {
			return nil, "", fmt.Errorf("opening page file: %w", err)
		}
		defer f.Close()
		r = f
	}

	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, "", fmt.Errorf("parsing HTML: %w", err)
	}

	return doc, s.PageURL, nil
}
