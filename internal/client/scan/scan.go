// Package scan reads item codes. Only a simulated camera exists; the
// Scanner interface is where a real device would plug in.
package scan

import (
	"context"
	"time"
)

type Scanner interface {
	// Scan blocks until a code is read or ctx ends.
	Scan(ctx context.Context) (string, error)
}

const (
	DemoSKU   = "HLT-3003"
	DemoDelay = 1200 * time.Millisecond
)

// Simulated always reads the same code after a delay.
type Simulated struct {
	Code  string
	Delay time.Duration
}

func NewSimulated() Simulated {
	return Simulated{Code: DemoSKU, Delay: DemoDelay}
}

func (s Simulated) Scan(ctx context.Context) (string, error) {
	t := time.NewTimer(s.Delay)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-t.C:
		return s.Code, nil
	}
}
