package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// Doer is the pluggable HTTP capability; *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Options tunes a Client.
type Options struct {
	// Timeout bounds one attempt, including reading the body. Zero means 30s.
	Timeout time.Duration
	// UserAgent is sent with every request.
	UserAgent string
	// Accept is the Accept header value (text/xml, text/html).
	Accept string
	// RatePerSecond throttles outbound requests. Zero disables throttling.
	RatePerSecond float64
	// MaxBodyBytes caps the document size; larger documents fail as TransportFault.
	// Zero means 8 MiB.
	MaxBodyBytes int64
	// Doer overrides the HTTP transport.
	Doer Doer
}

// Client fetches raw documents from one source.
type Client struct {
	template Template
	doer     Doer
	limiter  *rate.Limiter
	timeout  time.Duration
	agent    string
	accept   string
	maxBody  int64
}

// NewClient creates a Client for the given source template.
func NewClient(t Template, opts Options) *Client {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	maxBody := opts.MaxBodyBytes
	if maxBody <= 0 {
		maxBody = 8 << 20
	}
	doer := opts.Doer
	if doer == nil {
		doer = &http.Client{}
	}

	c := &Client{
		template: t,
		doer:     doer,
		timeout:  timeout,
		agent:    opts.UserAgent,
		accept:   opts.Accept,
		maxBody:  maxBody,
	}
	if opts.RatePerSecond > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(opts.RatePerSecond), 1)
	}
	return c
}

// Batch reports whether the source accepts several identifiers per request.
func (c *Client) Batch() bool {
	return c.template.Batch
}

// Fetch performs one GET for the given identifiers and classifies the result.
func (c *Client) Fetch(ctx context.Context, ids ...int64) Outcome {
	url, err := c.template.URL(ids)
	if err != nil {
		return Outcome{Kind: ClientFault, Detail: err.Error()}
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return Outcome{Kind: TransportFault, URL: url, Detail: fmt.Sprintf("rate limiter: %v", err)}
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Outcome{Kind: ClientFault, URL: url, Detail: err.Error()}
	}
	if c.agent != "" {
		req.Header.Set("User-Agent", c.agent)
	}
	if c.accept != "" {
		req.Header.Set("Accept", c.accept)
	}

	resp, err := c.doer.Do(req)
	if err != nil {
		return transportOutcome(ctx, url, err)
	}
	defer resp.Body.Close()

	if kind := classify(resp.StatusCode); kind != Success {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))
		return Outcome{
			Kind:   kind,
			URL:    url,
			Status: resp.StatusCode,
			Detail: fmt.Sprintf("GET %s: unexpected status %d", url, resp.StatusCode),
		}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBody+1))
	if err != nil {
		out := transportOutcome(ctx, url, err)
		out.Status = resp.StatusCode
		return out
	}
	if int64(len(body)) > c.maxBody {
		return Outcome{
			Kind:   TransportFault,
			URL:    url,
			Status: resp.StatusCode,
			Detail: fmt.Sprintf("GET %s: document exceeds %d bytes", url, c.maxBody),
		}
	}

	return Outcome{Kind: Success, URL: url, Status: resp.StatusCode, Body: body}
}

func classify(status int) Kind {
	switch {
	case status == http.StatusOK:
		return Success
	case status == http.StatusNotFound:
		return NotFound
	case status == http.StatusServiceUnavailable, status == http.StatusTooManyRequests:
		return RateLimited
	case status >= 500:
		return ServerFault
	case status >= 400:
		return ClientFault
	default:
		return TransportFault
	}
}

func transportOutcome(ctx context.Context, url string, err error) Outcome {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return Outcome{Kind: TransportFault, URL: url, Detail: fmt.Sprintf("GET %s: timeout", url)}
	}
	return Outcome{Kind: TransportFault, URL: url, Detail: fmt.Sprintf("GET %s: %v", url, err)}
}
