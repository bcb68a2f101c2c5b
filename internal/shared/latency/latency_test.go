package latency

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFixed_Wait(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		delay   time.Duration
		minWait time.Duration
	}{
		{name: "zero delay returns immediately", delay: 0, minWait: 0},
		{name: "negative delay returns immediately", delay: -time.Second, minWait: 0},
		{name: "positive delay waits", delay: 20 * time.Millisecond, minWait: 20 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			start := time.Now()
			err := NewFixed(tt.delay).Wait(context.Background())

			assert.NoError(t, err)
			assert.GreaterOrEqual(t, time.Since(start), tt.minWait)
		})
	}
}

func TestFixed_Wait_ContextCanceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	err := NewFixed(time.Minute).Wait(ctx)

	assert.True(t, errors.Is(err, context.Canceled))
	assert.Less(t, time.Since(start), time.Second)
}

func TestFixed_Wait_Deadline(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	err := NewFixed(time.Minute).Wait(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestNone_Wait(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// None never blocks and never reports the context.
	assert.NoError(t, None{}.Wait(ctx))
}
