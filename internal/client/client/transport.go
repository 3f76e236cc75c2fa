package client

import (
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/ipms/internal/common"
	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

func newRequestID() string {
	return uuid.NewString()
}

// requestIDTransport makes sure every outgoing request carries an
// X-Request-ID, stamping a clone when the caller did not set one.
type requestIDTransport struct {
	next http.RoundTripper
}

func (t *requestIDTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get(common.RequestIDHeaderName) == "" {
		req = req.Clone(req.Context())
		req.Header.Set(common.RequestIDHeaderName, newRequestID())
	}
	return t.next.RoundTrip(req)
}

// rateLimitTransport waits for a token before each request. Waiting honours
// the request context.
type rateLimitTransport struct {
	limiter *rate.Limiter
	next    http.RoundTripper
}

func (t *rateLimitTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if err := t.limiter.Wait(req.Context()); err != nil {
		return nil, fmt.Errorf("rate limit: %w", err)
	}
	return t.next.RoundTrip(req)
}
