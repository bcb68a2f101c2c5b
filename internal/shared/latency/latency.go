// Package latency simulates the round trip of a remote data source for
// in-process generators.
package latency

import (
	"context"
	"time"
)

// Simulator delays the completion of a request.
// Implementations must return ctx.Err() when the context ends first.
type Simulator interface {
	Wait(ctx context.Context) error
}

// Fixed waits for the same duration on every call.
type Fixed struct {
	delay time.Duration // simulated round trip
}

// NewFixed returns a Simulator that waits delay on every call.
// A non-positive delay returns immediately.
func NewFixed(delay time.Duration) *Fixed {
	return &Fixed{delay: delay}
}

// Wait blocks until the delay elapses or ctx is done.
func (f *Fixed) Wait(ctx context.Context) error {
	if f.delay <= 0 {
		return ctx.Err()
	}

	t := time.NewTimer(f.delay)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// None resolves immediately.
type None struct{}

// Wait returns without blocking.
func (None) Wait(ctx context.Context) error {
	return nil
}
