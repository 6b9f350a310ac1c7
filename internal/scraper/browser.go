package scraper

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/chromedp/chromedp"

	"github.com/pfrederiksen/hltv-cal/internal/logger"
)

// BrowserSource renders pages in headless Chrome before parsing them
type BrowserSource struct {
	userAgent string
	timeout   time.Duration
	// ExecPath overrides Chrome discovery when set
	ExecPath string
}

// NewBrowser creates a BrowserSource. A Chrome or Chromium binary must be
// installed; it is started per call and torn down afterwards.
func NewBrowser(opts Options) *BrowserSource {
	opts = opts.withDefaults()
	return &BrowserSource{
		userAgent: opts.UserAgent,
		timeout:   opts.Timeout,
	}
}

// Document navigates to target, waits for the body and parses the rendered HTML
func (s *BrowserSource) Document(ctx context.Context, target string) (*goquery.Document, string, error) {
	allocOpts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.UserAgent(s.userAgent),
	)
	if s.ExecPath != "" {
		allocOpts = append(allocOpts, chromedp.ExecPath(s.ExecPath))
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, allocOpts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	var html, finalURL string
	start := time.Now()
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(target),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.Location(&finalURL),
		chromedp.OuterHTML("html", &html, chromedp.ByQuery),
	)
	if err != nil {
		return nil, "", fmt.Errorf("rendering page: %w", err)
	}
	logger.RecordTiming("scraper.browser", time.Since(start))

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, "", fmt.Errorf("parsing HTML: %w", err)
	}

	if finalURL == "" {
		finalURL = target
	}
	return doc, finalURL, nil
}
