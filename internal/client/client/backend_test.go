package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/ipms/internal/common"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
)

// staticTokens is a TokenSource with a fixed token ("" means no session).
type staticTokens string

func (s staticTokens) AccessToken(ctx context.Context) (string, error) {
	if s == "" {
		return "", common.ErrNoSession
	}
	return string(s), nil
}

// recorded is one request seen by the fake backend.
type recorded struct {
	Method   string
	Path     string
	RawQuery string
	Auth     string
	Body     string
	ReqID    string
}

// fakeBackend is an httptest server routed with gorilla/mux.
type fakeBackend struct {
	t      *testing.T
	srv    *httptest.Server
	router *mux.Router

	mu   sync.Mutex
	reqs []recorded
}

func newFakeBackend(t *testing.T) *fakeBackend {
	t.Helper()
	fb := &fakeBackend{t: t, router: mux.NewRouter()}
	fb.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		fb.mu.Lock()
		fb.reqs = append(fb.reqs, recorded{
			Method:   r.Method,
			Path:     r.URL.Path,
			RawQuery: r.URL.RawQuery,
			Auth:     r.Header.Get(common.AuthorizationHeaderName),
			Body:     string(b),
			ReqID:    r.Header.Get(common.RequestIDHeaderName),
		})
		fb.mu.Unlock()
		r.Body = io.NopCloser(bytes.NewReader(b))
		fb.router.ServeHTTP(w, r)
	}))
	t.Cleanup(fb.srv.Close)
	return fb
}

func (fb *fakeBackend) handle(method, path string, h http.HandlerFunc) {
	fb.router.HandleFunc(path, h).Methods(method)
}

// json registers a handler that always replies with status and body.
func (fb *fakeBackend) json(method, path string, status int, body any) {
	fb.handle(method, path, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, status, body)
	})
}

func (fb *fakeBackend) requests() []recorded {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	return append([]recorded(nil), fb.reqs...)
}

func (fb *fakeBackend) last() recorded {
	reqs := fb.requests()
	require.NotEmpty(fb.t, reqs, "no request reached the backend")
	return reqs[len(reqs)-1]
}

func (fb *fakeBackend) client(tokens TokenSource, opts ...Option) *Client {
	opts = append([]Option{WithClock(func() time.Time {
		return time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)
	})}, opts...)
	return New(fb.srv.URL+"/", tokens, opts...)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
