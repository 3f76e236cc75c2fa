package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/ipms/internal/client/metrics"
	"github.com/dmitrijs2005/ipms/internal/common"
	"github.com/dmitrijs2005/ipms/internal/logging"
	"golang.org/x/time/rate"
)

// TokenSource supplies the bearer token for authenticated calls.
// session.Store implements it.
type TokenSource interface {
	AccessToken(ctx context.Context) (string, error)
}

// Client is safe for concurrent use.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	log     logging.Logger
	now     func() time.Time
}

type options struct {
	httpClient *http.Client
	transport  http.RoundTripper
	log        logging.Logger
	now        func() time.Time
	timeout    time.Duration
	limiter    *rate.Limiter
	metrics    *metrics.Metrics
}

type Option func(*options)

// WithHTTPClient replaces the whole HTTP client; the transport chain is not
// applied to it.
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) { o.httpClient = c }
}

// WithTransport sets the innermost transport (default http.DefaultTransport).
func WithTransport(rt http.RoundTripper) Option {
	return func(o *options) { o.transport = rt }
}

func WithLogger(l logging.Logger) Option {
	return func(o *options) { o.log = l }
}

// WithClock sets the clock used for export filenames.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// WithTimeout bounds every call including reading the body. Zero means no
// timeout: a hung backend keeps the call pending until the transport gives up.
func WithTimeout(d time.Duration) Option {
	return func(o *options) { o.timeout = d }
}

// WithRateLimit caps outbound requests per second.
func WithRateLimit(perSecond float64, burst int) Option {
	return func(o *options) {
		if perSecond > 0 {
			o.limiter = rate.NewLimiter(rate.Limit(perSecond), max(burst, 1))
		}
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(o *options) { o.metrics = m }
}

// New builds a client for the backend at baseURL. tokens may be nil for a
// client that only calls public endpoints.
func New(baseURL string, tokens TokenSource, opts ...Option) *Client {
	o := options{
		transport: http.DefaultTransport,
		log:       logging.Nop(),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(&o)
	}

	hc := o.httpClient
	if hc == nil {
		rt := o.transport
		if o.metrics != nil {
			rt = o.metrics.InstrumentRoundTripper(rt)
		}
		if o.limiter != nil {
			rt = &rateLimitTransport{limiter: o.limiter, next: rt}
		}
		rt = &requestIDTransport{next: rt}
		hc = &http.Client{Transport: rt, Timeout: o.timeout}
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    hc,
		tokens:  tokens,
		log:     o.log,
		now:     o.now,
	}
}

// BaseURL returns the backend base URL without a trailing slash.
func (c *Client) BaseURL() string { return c.baseURL }

// call is one request.
type call struct {
	op       Op
	endpoint Endpoint
	method   string
	path     string
	query    string
	// body is JSON-encoded unless raw is set.
	body        any
	raw         io.Reader
	contentType string
	public      bool
	// arg is passed to Endpoint.Message (export/import format).
	arg string
}

func (c *Client) requestError(cl call, status int, detail string, err error) *RequestError {
	return &RequestError{
		Op:       cl.op,
		Resource: cl.endpoint.Plural,
		Status:   status,
		Message:  cl.endpoint.Message(cl.op, cl.arg),
		Detail:   detail,
		Err:      err,
	}
}

// send performs cl and returns the response only for 2xx statuses; the
// caller closes the body.
func (c *Client) send(ctx context.Context, cl call) (*http.Response, error) {
	var body io.Reader
	contentType := cl.contentType
	switch {
	case cl.raw != nil:
		body = cl.raw
	case cl.body != nil:
		b, err := json.Marshal(cl.body)
		if err != nil {
			return nil, fmt.Errorf("encode %s body: %w", cl.op, err)
		}
		body = bytes.NewReader(b)
		contentType = "application/json"
	}

	req, err := http.NewRequestWithContext(ctx, cl.method, c.baseURL+cl.path+cl.query, body)
	if err != nil {
		return nil, fmt.Errorf("build %s request: %w", cl.op, err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	requestID := newRequestID()
	req.Header.Set(common.RequestIDHeaderName, requestID)

	if !cl.public {
		token, err := c.token(ctx)
		if err != nil {
			return nil, c.requestError(cl, http.StatusUnauthorized, "", err)
		}
		req.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn(ctx, "request failed", "method", cl.method, "path", cl.path, "err", err)
		return nil, &NetworkError{Op: cl.op, Resource: cl.endpoint.Plural, Err: err}
	}

	c.log.Debug(ctx, "request done",
		"method", cl.method, "path", cl.path+cl.query, "status", resp.StatusCode,
		"request_id", requestID, "elapsed", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer resp.Body.Close()
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
		var cause error
		if resp.StatusCode == http.StatusUnauthorized {
			cause = common.ErrUnauthorized
		} else if resp.StatusCode == http.StatusNotFound {
			cause = common.ErrNotFound
		}
		re := c.requestError(cl, resp.StatusCode, parseDetail(b), cause)
		c.log.Warn(ctx, "request rejected", "method", cl.method, "path", cl.path,
			"status", resp.StatusCode, "request_id", requestID, "detail", re.Detail)
		return nil, re
	}
	return resp, nil
}

func (c *Client) token(ctx context.Context) (string, error) {
	if c.tokens == nil {
		return "", common.ErrNoSession
	}
	t, err := c.tokens.AccessToken(ctx)
	if err != nil {
		return "", err
	}
	if t == "" {
		return "", common.ErrNoSession
	}
	return t, nil
}

// do performs cl and decodes a JSON response into out (when non-nil).
func (c *Client) do(ctx context.Context, cl call, out any) error {
	resp, err := c.send(ctx, cl)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		// a 2xx with an unreadable body is still a failed call for the user
		return c.requestError(cl, resp.StatusCode, "", fmt.Errorf("decode response: %w", err))
	}
	return nil
}

// Blob is a downloaded file.
type Blob struct {
	Filename    string
	ContentType string
	Data        []byte
}

func (c *Client) download(ctx context.Context, cl call) (Blob, error) {
	resp, err := c.send(ctx, cl)
	if err != nil {
		return Blob{}, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return Blob{}, &NetworkError{Op: cl.op, Resource: cl.endpoint.Plural, Err: err}
	}
	return Blob{ContentType: resp.Header.Get("Content-Type"), Data: data}, nil
}

// ExportFilename is <name>_<export|report>_<YYYY-MM-DD>.<format>: CSV files
// are exports, PDFs are reports.
func ExportFilename(name string, f Format, now time.Time) string {
	kind := "export"
	if f == FormatPDF {
		kind = "report"
	}
	return fmt.Sprintf("%s_%s_%s.%s", name, kind, now.Format(time.DateOnly), f)
}
