package background

import (
	"context"

	"github.com/pfrederiksen/hltv-cal/internal/preferences"
)

// Client sends requests to a running Service
type Client struct {
	requests chan<- Request
	done     <-chan struct{}
}

// Do sends req and waits for its response
func (c *Client) Do(ctx context.Context, req Request) (Response, error) {
	req.reply = make(chan Response, 1)

	select {
	case c.requests <- req:
	case <-c.done:
		return Response{}, ErrStopped
	case <-ctx.Done():
		return Response{}, ctx.Err()
	}

	select {
	case resp := <-req.reply:
		return resp, resp.Err
	case <-ctx.Done():
		return Response{}, ctx.Err()
	}
}

// Settings asks the service for the current settings
func (c *Client) Settings(ctx context.Context) (*preferences.Settings, error) {
	resp, err := c.Do(ctx, Request{Type: RequestGetSettings})
	if err != nil {
		return nil, err
	}
	return resp.Settings, nil
}

// OpenURL asks the service to open url and waits for the acknowledgment
func (c *Client) OpenURL(ctx context.Context, url string) error {
	_, err := c.Do(ctx, Request{Type: RequestOpenURL, URL: url})
	return err
}
