package formpost

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

const contentType = "application/x-www-form-urlencoded"

var (
	// ErrTransport wraps network-level failures: DNS, refused connections, timeouts.
	ErrTransport = errors.New("form endpoint unreachable")
	// ErrNoEndpoint is returned without touching the network when no endpoint is configured.
	ErrNoEndpoint = errors.New("form endpoint not configured")
)

// Client posts encoded submissions. The endpoint is treated as opaque: the
// response status and body are never inspected, a request that completes at
// the transport level counts as delivered.
type Client struct {
	http *resty.Client
}

// NewClient creates a client with the given per-request timeout. Retries stay
// disabled; every Submit is exactly one outbound request.
func NewClient(timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	rc := resty.New().
		SetTimeout(timeout).
		SetRetryCount(0).
		SetHeader("User-Agent", "pingslab-site/1.0")
	return &Client{http: rc}
}

// Submit sends fields to endpoint as a single form-encoded POST.
func (c *Client) Submit(ctx context.Context, endpoint string, fields []Field) error {
	if endpoint == "" {
		return ErrNoEndpoint
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", contentType).
		SetBody(Encode(fields)).
		SetDoNotParseResponse(true).
		Post(endpoint)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrTransport, err)
	}
	if body := resp.RawBody(); body != nil {
		_ = body.Close()
	}
	return nil
}
