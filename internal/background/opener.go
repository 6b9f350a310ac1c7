package background

import (
	"fmt"
	"io"

	"github.com/pkg/browser"
)

// URLOpener opens a URL for the user
type URLOpener interface {
	Open(url string) error
}

// SystemOpener opens URLs in the default browser
type SystemOpener struct{}

// Open launches the platform browser with url
func (SystemOpener) Open(url string) error {
	return browser.OpenURL(url)
}

// PrintOpener writes URLs instead of opening them
type PrintOpener struct {
	Out io.Writer
}

// Open prints url on its own line
func (p PrintOpener) Open(url string) error {
	_, err := fmt.Fprintln(p.Out, url)
	return err
}
