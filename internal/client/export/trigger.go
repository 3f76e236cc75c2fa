// Package export saves downloaded or locally generated files.
package export

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/ipms/internal/client/client"
	"github.com/dmitrijs2005/ipms/internal/common"
	"github.com/dmitrijs2005/ipms/internal/logging"
)

// Sink stores a finished blob and returns where it went.
type Sink interface {
	Save(ctx context.Context, blob client.Blob) (string, error)
}

// FetchFunc produces the blob to save.
type FetchFunc func(ctx context.Context) (client.Blob, error)

// Trigger runs at most one export per key at a time. Pages key by format,
// the reports page by resource and format.
type Trigger struct {
	sink Sink
	log  logging.Logger

	mu   sync.Mutex
	busy map[string]bool
}

func NewTrigger(sink Sink, log logging.Logger) *Trigger {
	if log == nil {
		log = logging.Nop()
	}
	return &Trigger{sink: sink, log: log, busy: make(map[string]bool)}
}

// Run fetches and saves one blob. A second Run for a key that is still busy
// returns common.ErrExportInProgress without calling fetch.
func (t *Trigger) Run(ctx context.Context, key string, fetch FetchFunc) (string, error) {
	if err := t.claim(key); err != nil {
		return "", err
	}
	defer t.release(key)
	return t.save(ctx, key, fetch)
}

// Go is Run on a new goroutine. The key is claimed before Go returns, so a
// busy key fails here and done is not called; otherwise done receives the
// outcome.
func (t *Trigger) Go(ctx context.Context, key string, fetch FetchFunc, done func(location string, err error)) error {
	if err := t.claim(key); err != nil {
		return err
	}
	go func() {
		loc, err := t.save(ctx, key, fetch)
		t.release(key)
		done(loc, err)
	}()
	return nil
}

func (t *Trigger) claim(key string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.busy[key] {
		return fmt.Errorf("%s: %w", key, common.ErrExportInProgress)
	}
	t.busy[key] = true
	return nil
}

func (t *Trigger) release(key string) {
	t.mu.Lock()
	delete(t.busy, key)
	t.mu.Unlock()
}

func (t *Trigger) save(ctx context.Context, key string, fetch FetchFunc) (string, error) {
	blob, err := fetch(ctx)
	if err != nil {
		return "", err
	}

	loc, err := t.sink.Save(ctx, blob)
	if err != nil {
		return "", fmt.Errorf("save %s: %w", blob.Filename, err)
	}
	t.log.Info(ctx, "export saved", "key", key, "location", loc, "bytes", len(blob.Data))
	return loc, nil
}

// Busy reports whether an export for key is in flight.
func (t *Trigger) Busy(key string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.busy[key]
}
