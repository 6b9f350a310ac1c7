package background

import (
	"context"
	"errors"
	"fmt"

	"github.com/pfrederiksen/hltv-cal/internal/logger"
	"github.com/pfrederiksen/hltv-cal/internal/preferences"
)

// RequestType names a message understood by the service
type RequestType string

const (
	RequestGetSettings RequestType = "getSettings"
	RequestOpenURL     RequestType = "openUrl"
)

// ErrStopped is returned by client calls once the service loop has exited
var ErrStopped = errors.New("background service stopped")

// ErrUnknownRequest is the reply to an unrecognised request type
var ErrUnknownRequest = errors.New("unknown request type")

// Request is a single message to the service
type Request struct {
	Type  RequestType
	URL   string
	reply chan Response
}

// Response answers exactly one Request
type Response struct {
	Settings *preferences.Settings
	Success  bool
	Err      error
}

// Service owns the settings store and the URL opener
type Service struct {
	store    preferences.Storage
	opener   URLOpener
	requests chan Request
	done     chan struct{}
}

// New creates a service. Call Run to start serving.
func New(store preferences.Storage, opener URLOpener) *Service {
	return &Service{
		store:    store,
		opener:   opener,
		requests: make(chan Request),
		done:     make(chan struct{}),
	}
}

// Run serves requests until ctx is cancelled
func (s *Service) Run(ctx context.Context) error {
	defer close(s.done)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case req := <-s.requests:
			req.reply <- s.handle(req)
		}
	}
}

func (s *Service) handle(req Request) Response {
	switch req.Type {
	case RequestGetSettings:
		settings, err := s.store.Load()
		if err != nil {
			logger.Error("Failed to load settings", nil, err)
			return Response{Err: fmt.Errorf("loading settings: %w", err)}
		}
		return Response{Settings: settings, Success: true}

	case RequestOpenURL:
		if err := s.opener.Open(req.URL); err != nil {
			logger.Warn("Failed to open URL", logger.Fields{"url": req.URL, "error": err.Error()})
			return Response{Err: fmt.Errorf("opening url: %w", err)}
		}
		logger.Debug("Opened URL", logger.Fields{"url": req.URL})
		return Response{Success: true}
	}

	return Response{Err: fmt.Errorf("%w: %q", ErrUnknownRequest, req.Type)}
}

// Client returns a handle for sending requests to s
func (s *Service) Client() *Client {
	return &Client{requests: s.requests, done: s.done}
}
