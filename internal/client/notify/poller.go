// Package notify keeps the notifications list fresh while its page is open.
package notify

import (
	"context"
	"time"

	"github.com/dmitrijs2005/ipms/internal/logging"
)

// DefaultInterval matches the dashboard's polling period.
const DefaultInterval = 30 * time.Second

// Refresher is anything that can refetch unconditionally, typically a
// table.Controller.
type Refresher interface {
	Refresh(ctx context.Context) error
}

type Poller struct {
	target   Refresher
	interval time.Duration
	log      logging.Logger
}

func NewPoller(target Refresher, interval time.Duration, log logging.Logger) *Poller {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if log == nil {
		log = logging.Nop()
	}
	return &Poller{target: target, interval: interval, log: log}
}

// Run refreshes on every tick until ctx ends. Ticks are not skipped when a
// user-triggered fetch is in flight; failures are logged and polling goes
// on.
func (p *Poller) Run(ctx context.Context) {
	t := time.NewTicker(p.interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if err := p.target.Refresh(ctx); err != nil && ctx.Err() == nil {
				p.log.Warn(ctx, "notification poll failed", "error", err)
			}
		}
	}
}

// Start runs the poller on its own goroutine and returns a stop function
// that waits for it to exit.
func (p *Poller) Start(ctx context.Context) (stop func()) {
	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	go func() {
		defer close(done)
		p.Run(ctx)
	}()
	return func() {
		cancel()
		<-done
	}
}
