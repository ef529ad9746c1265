package clickup

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-faster/errors"

	"github.com/teemow/clickup-mcp/internal/document"
	"github.com/teemow/clickup-mcp/internal/instrumentation"
	"github.com/teemow/clickup-mcp/internal/logging"
)

const (
	// DefaultBaseURL is the ClickUp v2 REST API root.
	DefaultBaseURL = "https://api.clickup.com/api/v2"

	// DefaultTimeout bounds a single call, including reading the body.
	DefaultTimeout = 30 * time.Second

	// maxResponseBytes caps how much of a response body is buffered.
	maxResponseBytes = 32 << 20
)

// Client performs authenticated calls against the ClickUp API.
// It holds no per-request state and is safe for concurrent use.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	creds     CredentialSource
	logger    logging.Logger
	metrics   *instrumentation.Metrics
	userAgent string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client. Its Timeout is used
// as-is.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithLogger sets the logger used for request diagnostics.
func WithLogger(l logging.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// WithMetrics enables per-request metrics.
func WithMetrics(m *instrumentation.Metrics) Option {
	return func(c *Client) { c.metrics = m }
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) { c.userAgent = ua }
}

// NewClient creates a client rooted at baseURL. An empty baseURL selects
// DefaultBaseURL.
func NewClient(baseURL string, creds CredentialSource, opts ...Option) (*Client, error) {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, errors.Wrap(err, "parse base url")
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, errors.Errorf("base url %q must be http or https", baseURL)
	}
	if creds == nil {
		creds = EnvCredentials{}
	}

	c := &Client{
		baseURL:   u,
		http:      &http.Client{Timeout: DefaultTimeout},
		creds:     creds,
		logger:    logging.DefaultLogger(),
		userAgent: "clickup-mcp",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BaseURL returns the API root the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// HasCredential reports whether a token is currently available. It never
// touches the network.
func (c *Client) HasCredential() bool {
	_, err := c.creds.Resolve()
	return err == nil
}

// Do executes req and returns the decoded body. Every error is an *Error.
//
// The credential is resolved before anything else, so a missing token never
// produces network traffic.
func (c *Client) Do(ctx context.Context, req Request) (document.Value, error) {
	token, err := c.creds.Resolve()
	if err != nil {
		return document.Value{}, err
	}

	endpoint, err := req.Endpoint()
	if err != nil {
		return document.Value{}, &Error{Kind: KindRequestFailed, Endpoint: req.Path, Err: err}
	}

	method := req.method()
	ctx, span := instrumentation.StartClickUpSpan(ctx, method, req.Path)
	defer span.End()

	start := time.Now()
	v, err := c.roundTrip(ctx, method, endpoint, token, req)
	duration := time.Since(start)

	outcome := instrumentation.StatusSuccess
	if err != nil {
		outcome = KindOf(err).String()
		instrumentation.SetSpanError(span, err)
	} else {
		instrumentation.SetSpanSuccess(span)
	}
	c.metrics.RecordClickUpRequest(ctx, method, req.Path, outcome, duration)

	if err != nil {
		var apiErr *Error
		args := []any{
			logging.Method(method),
			logging.Endpoint(endpoint),
			logging.Status(outcome),
			logging.Duration(duration),
		}
		if errors.As(err, &apiErr) && apiErr.Status != 0 {
			args = append(args, logging.HTTPStatus(apiErr.Status))
		}
		if apiErr != nil && apiErr.RetryAfter != "" {
			args = append(args, "retry_after", apiErr.RetryAfter)
		}
		c.logger.Warn("clickup request failed", args...)
		return document.Value{}, err
	}

	c.logger.Debug("clickup request",
		logging.Method(method),
		logging.Endpoint(endpoint),
		logging.Duration(duration),
		logging.Token(token))
	return v, nil
}

func (c *Client) roundTrip(ctx context.Context, method, endpoint, token string, req Request) (document.Value, error) {
	u := c.baseURL.JoinPath(strings.TrimLeft(endpoint, "/"))
	if len(req.Query) > 0 {
		u.RawQuery = req.Query.Encode()
	}

	var body io.Reader
	if req.Body != nil {
		raw, err := json.Marshal(req.Body)
		if err != nil {
			return document.Value{}, &Error{Kind: KindRequestFailed, Endpoint: endpoint, Err: errors.Wrap(err, "encode body")}
		}
		body = bytes.NewReader(raw)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return document.Value{}, &Error{Kind: KindRequestFailed, Endpoint: endpoint, Err: err}
	}
	httpReq.Header.Set("Authorization", token)
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		httpReq.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return document.Value{}, transportError(endpoint, err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return document.Value{}, transportError(endpoint, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return document.Value{}, classifyStatus(resp.StatusCode, endpoint, string(raw), resp.Header.Get("Retry-After"))
	}

	v, err := document.Parse(raw)
	if err != nil {
		return document.Value{}, &Error{Kind: KindRequestFailed, Endpoint: endpoint, Status: resp.StatusCode, Err: errors.Wrap(err, "invalid response body")}
	}
	return v, nil
}

func transportError(endpoint string, err error) *Error {
	if errors.Is(err, context.DeadlineExceeded) {
		return &Error{Kind: KindTimeout, Endpoint: endpoint, Err: err}
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return &Error{Kind: KindTimeout, Endpoint: endpoint, Err: err}
	}
	return &Error{Kind: KindRequestFailed, Endpoint: endpoint, Err: err}
}
