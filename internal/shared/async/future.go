// Package async provides a one-shot request/response handle for data that is
// produced after a simulated round trip.
package async

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"stock_dashboard/internal/shared/latency"
)

// ErrRequestTimeout is returned when the simulated round trip exceeds the
// per-request timeout.
var ErrRequestTimeout = errors.New("request timed out")

// Future is the pending result of a single request.
// It resolves exactly once; Await may be called any number of times.
type Future[T any] struct {
	id    string
	done  chan struct{}
	value T
	err   error
}

// Go starts a request. The delay runs first, then fn is invoked and always
// runs to completion. timeout <= 0 disables the per-request deadline.
func Go[T any](ctx context.Context, delay latency.Simulator, timeout time.Duration, fn func() (T, error)) *Future[T] {
	f := &Future[T]{
		id:   uuid.NewString(),
		done: make(chan struct{}),
	}

	go func() {
		defer close(f.done)

		rctx := ctx
		if timeout > 0 {
			var cancel context.CancelFunc
			rctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}

		if err := delay.Wait(rctx); err != nil {
			// the caller's own deadline is not ours to rename
			if errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil {
				f.err = fmt.Errorf("request %s: %w", f.id, ErrRequestTimeout)
				return
			}
			f.err = fmt.Errorf("request %s: %w", f.id, err)
			return
		}

		f.value, f.err = fn()
	}()

	return f
}

// Resolved returns a Future that has already completed with v.
func Resolved[T any](v T) *Future[T] {
	f := &Future[T]{id: uuid.NewString(), done: make(chan struct{}), value: v}
	close(f.done)
	return f
}

// Failed returns a Future that has already completed with err.
func Failed[T any](err error) *Future[T] {
	f := &Future[T]{id: uuid.NewString(), done: make(chan struct{}), err: err}
	close(f.done)
	return f
}

// ID identifies the request in logs.
func (f *Future[T]) ID() string {
	return f.id
}

// Done is closed once the result is available.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Await blocks until the result is available or ctx is done. Abandoning a
// Future discards its result; the producing goroutine still finishes.
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}
