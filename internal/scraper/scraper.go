package scraper

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/time/rate"

	"github.com/pfrederiksen/hltv-cal/internal/logger"
)

const (
	UserAgent     = "hltv-cal/1.0 (github.com/pfrederiksen/hltv-cal)"
	Timeout       = 30 * time.Second
	RatePerSecond = 1.0
)

// Source produces the DOM for a target along with the page URL it represents
type Source interface {
	Document(ctx context.Context, target string) (*goquery.Document, string, error)
}

// Options tunes the remote sources. Zero values fall back to the package defaults.
type Options struct {
	UserAgent     string
	Timeout       time.Duration
	RatePerSecond float64
}

func (o Options) withDefaults() Options {
	if o.UserAgent == "" {
		o.UserAgent = UserAgent
	}
	if o.Timeout <= 0 {
		o.Timeout = Timeout
	}
	if o.RatePerSecond <= 0 {
		o.RatePerSecond = RatePerSecond
	}
	return o
}

// HTTPSource fetches pages over plain HTTP
type HTTPSource struct {
	client    *http.Client
	userAgent string
	limiter   *rate.Limiter
}

// NewHTTP creates an HTTPSource. All requests made through one source share a
// single token bucket.
func NewHTTP(opts Options) *HTTPSource {
	opts = opts.withDefaults()
	return &HTTPSource{
		client: &http.Client{
			Timeout: opts.Timeout,
		},
		userAgent: opts.UserAgent,
		limiter:   rate.NewLimiter(rate.Limit(opts.RatePerSecond), 1),
	}
}

// Document fetches target and parses the response body
func (s *HTTPSource) Document(ctx context.Context, target string) (*goquery.Document, string, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, "", fmt.Errorf("waiting for rate limiter: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", s.userAgent)

	start := time.Now()
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("fetching page: %w", err)
	}
	defer resp.Body.Close()
	logger.RecordTiming("scraper.http", time.Since(start))

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("parsing HTML: %w", err)
	}

	// redirects change the page the DOM belongs to
	return doc, resp.Request.URL.String(), nil
}
