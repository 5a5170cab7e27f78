package engine

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTickSchedulerRunsAtInterval verifies approximate tick rate and clean cancellation
func TestTickSchedulerRunsAtInterval(t *testing.T) {
	ts := NewTickScheduler(5 * time.Millisecond)
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	var steps atomic.Int32
	err := ts.Run(ctx, func() { steps.Add(1) })

	assert.True(t, errors.Is(err, context.DeadlineExceeded))
	assert.Equal(t, uint64(steps.Load()), ts.TickCount())
	// Nominal 20 ticks; wide bounds for loaded CI machines
	assert.GreaterOrEqual(t, steps.Load(), int32(5))
	assert.LessOrEqual(t, steps.Load(), int32(25))
	assert.False(t, ts.Running())
}

// TestTickSchedulerNoBurstAfterStall verifies a long step does not trigger catch-up bursts
func TestTickSchedulerNoBurstAfterStall(t *testing.T) {
	ts := NewTickScheduler(2 * time.Millisecond)
	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Millisecond)
	defer cancel()

	var stamps []time.Time
	_ = ts.Run(ctx, func() {
		stamps = append(stamps, time.Now())
		if len(stamps) == 1 {
			time.Sleep(40 * time.Millisecond)
		}
	})

	require.Greater(t, len(stamps), 3)
	// A full catch-up would run ~20 ticks back to back after the stall
	fast := 0
	for i := 2; i < len(stamps) && i < 12; i++ {
		if stamps[i].Sub(stamps[i-1]) < 500*time.Microsecond {
			fast++
		}
	}
	assert.LessOrEqual(t, fast, 2)
}

// TestTickSchedulerCancelledBeforeStart verifies immediate return
func TestTickSchedulerCancelledBeforeStart(t *testing.T) {
	ts := NewTickScheduler(time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := ts.Run(ctx, func() { t.Fatal("step must not run") })
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, ts.TickCount())
}

// TestTickSchedulerRejectsBadInterval verifies constructor validation
func TestTickSchedulerRejectsBadInterval(t *testing.T) {
	assert.Panics(t, func() { NewTickScheduler(0) })
}
