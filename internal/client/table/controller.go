package table

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/ipms/internal/client/client"
	"github.com/dmitrijs2005/ipms/internal/client/debounce"
	"github.com/dmitrijs2005/ipms/internal/common"
	"github.com/dmitrijs2005/ipms/internal/logging"
)

// DefaultQuiet is the search debounce every page uses.
const DefaultQuiet = 400 * time.Millisecond

// Fetcher loads the rows for a filter set.
type Fetcher[T any] func(ctx context.Context, f client.Filters) ([]T, error)

// State is a snapshot of what the table shows.
type State[T any] struct {
	Rows    []T
	Loading bool
	Err     error
	// Filters are the values currently typed in, not necessarily the ones
	// the rows were fetched with while a debounce is pending.
	Filters   client.Filters
	FetchedAt time.Time
	// Generation of the response the rows came from.
	Generation uint64
}

// Filtered reports whether any filter is set, which changes the empty-state
// copy.
func (s State[T]) Filtered() bool { return s.Filters.Active() }

type Config struct {
	// Quiet is the debounce after a filter edit; zero means DefaultQuiet.
	Quiet time.Duration
	// DiscardStale drops a response when a newer fetch has been issued
	// since. Without it the last response to arrive wins.
	DiscardStale bool
	Log          logging.Logger
	// OnStale is told about every dropped response.
	OnStale func(resource string)
	Now     func() time.Time
}

// Controller is safe for concurrent use: filter edits come from the REPL,
// debounced fetches and pollers run on their own goroutines.
type Controller[T any] struct {
	ep    client.Endpoint
	fetch Fetcher[T]
	cfg   Config
	deb   *debounce.Debouncer

	mu       sync.Mutex
	filters  client.Filters
	state    State[T]
	issued   uint64
	inFlight int
	// editCtx is the context of the latest filter edit; the debounced fetch
	// runs under it.
	editCtx  context.Context
	onChange func(State[T])
}

func NewController[T any](ep client.Endpoint, fetch Fetcher[T], cfg Config) *Controller[T] {
	if cfg.Quiet <= 0 {
		cfg.Quiet = DefaultQuiet
	}
	if cfg.Log == nil {
		cfg.Log = logging.Nop()
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	c := &Controller[T]{
		ep:      ep,
		fetch:   fetch,
		cfg:     cfg,
		filters: client.Filters{},
		editCtx: context.Background(),
	}
	c.deb = debounce.New(cfg.Quiet, c.debounced)
	return c
}

// OnChange registers fn to receive every new state. fn must not call back
// into the controller synchronously.
func (c *Controller[T]) OnChange(fn func(State[T])) {
	c.mu.Lock()
	c.onChange = fn
	c.mu.Unlock()
}

func (c *Controller[T]) Endpoint() client.Endpoint { return c.ep }

// SetFilter records one field edit and restarts the quiet period.
func (c *Controller[T]) SetFilter(ctx context.Context, key, value string) error {
	return c.SetFilters(ctx, map[string]string{key: value})
}

// SetFilters records several field edits as one change.
func (c *Controller[T]) SetFilters(ctx context.Context, values map[string]string) error {
	for k, v := range values {
		if err := c.validate(k, v); err != nil {
			return err
		}
	}

	c.mu.Lock()
	for k, v := range values {
		c.filters[k] = v
	}
	c.editCtx = ctx
	c.mu.Unlock()

	c.deb.Trigger()
	c.notify()
	return nil
}

func (c *Controller[T]) validate(key, value string) error {
	if !c.ep.HasFilter(key) {
		return fmt.Errorf("%w %q for %s (have: %s)", common.ErrUnknownFilter, key, c.ep.Plural, strings.Join(c.ep.FilterKeys, ", "))
	}
	if strings.HasSuffix(key, "_date") && value != "" {
		if _, err := time.Parse(time.DateOnly, value); err != nil {
			return fmt.Errorf("%s must be YYYY-MM-DD, got %q", key, value)
		}
	}
	return nil
}

// ClearFilters empties every field and fetches at once.
func (c *Controller[T]) ClearFilters(ctx context.Context) error {
	c.deb.Cancel()
	c.mu.Lock()
	c.filters = client.Filters{}
	c.mu.Unlock()
	return c.load(ctx)
}

// Refresh fetches with the current filters now, superseding a pending
// debounced fetch.
func (c *Controller[T]) Refresh(ctx context.Context) error {
	c.deb.Cancel()
	return c.load(ctx)
}

// Flush issues a pending debounced fetch immediately. It reports whether one
// was pending.
func (c *Controller[T]) Flush() bool {
	return c.deb.Flush()
}

// Pending reports whether a debounced fetch is waiting for the quiet period.
func (c *Controller[T]) Pending() bool { return c.deb.Pending() }

// Mutate runs fn and, when it succeeds, refetches with the filters active at
// that moment. fn's error is returned as is and no refetch happens.
func (c *Controller[T]) Mutate(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := fn(ctx); err != nil {
		return err
	}
	return c.Refresh(ctx)
}

func (c *Controller[T]) Snapshot() State[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

func (c *Controller[T]) snapshotLocked() State[T] {
	s := c.state
	s.Filters = c.filters.Clone()
	s.Loading = c.loadingLocked()
	s.Rows = append([]T(nil), c.state.Rows...)
	return s
}

// loadingLocked reports whether a fetch that would change the rows is still
// out. With the stale guard on, only fetches newer than the applied one
// count: an older one still in flight will be dropped when it lands.
func (c *Controller[T]) loadingLocked() bool {
	if c.cfg.DiscardStale {
		return c.issued > c.state.Generation
	}
	return c.inFlight > 0
}

// Close stops the debouncer; pending fetches are dropped.
func (c *Controller[T]) Close() {
	c.deb.Stop()
}

func (c *Controller[T]) debounced() {
	c.mu.Lock()
	ctx := c.editCtx
	c.mu.Unlock()
	if ctx.Err() != nil {
		return
	}
	_ = c.load(ctx)
}

// load issues one fetch stamped with a new generation and applies the
// result unless the stale guard drops it. The returned error is the fetch
// error even when the response was dropped.
func (c *Controller[T]) load(ctx context.Context) error {
	c.mu.Lock()
	c.issued++
	gen := c.issued
	c.inFlight++
	filters := c.filters.Clone()
	c.mu.Unlock()
	c.notify()

	c.cfg.Log.Debug(ctx, "fetch", "resource", c.ep.Name, "generation", gen, "filters", client.Query(c.ep.FilterKeys, filters))
	rows, err := c.fetch(ctx, filters)

	c.mu.Lock()
	c.inFlight--
	if c.cfg.DiscardStale && gen < c.issued {
		c.mu.Unlock()
		c.cfg.Log.Debug(ctx, "stale response dropped", "resource", c.ep.Name, "generation", gen)
		if c.cfg.OnStale != nil {
			c.cfg.OnStale(c.ep.Name)
		}
		c.notify()
		return err
	}
	if err != nil {
		c.state.Err = err
	} else {
		c.state.Rows = rows
		c.state.Err = nil
		c.state.FetchedAt = c.cfg.Now()
	}
	c.state.Generation = gen
	c.mu.Unlock()
	c.notify()
	return err
}

func (c *Controller[T]) notify() {
	c.mu.Lock()
	fn := c.onChange
	s := c.snapshotLocked()
	c.mu.Unlock()
	if fn != nil {
		fn(s)
	}
}
