package engine

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// TickScheduler drives a step function on a fixed interval
// Deadlines advance by whole intervals so short stalls are caught up;
// falling further behind than maxBehind resets the schedule instead of bursting
type TickScheduler struct {
	interval  time.Duration
	maxBehind time.Duration

	mu               sync.Mutex
	nextTickDeadline time.Time

	tickCount atomic.Uint64
	running   atomic.Bool
}

// NewTickScheduler creates a scheduler; non-positive interval panics
func NewTickScheduler(interval time.Duration) *TickScheduler {
	if interval <= 0 {
		panic("tick interval must be positive")
	}
	return &TickScheduler{
		interval:  interval,
		maxBehind: interval * 2,
	}
}

// Run calls step once per interval until ctx is cancelled
// Blocks; returns ctx.Err() on cancellation
func (ts *TickScheduler) Run(ctx context.Context, step func()) error {
	if !ts.running.CompareAndSwap(false, true) {
		panic("tick scheduler already running")
	}
	defer ts.running.Store(false)

	ts.mu.Lock()
	ts.nextTickDeadline = time.Now().Add(ts.interval)
	ts.mu.Unlock()

	timer := time.NewTimer(0)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		now := time.Now()
		ts.mu.Lock()
		deadline := ts.nextTickDeadline
		ts.mu.Unlock()

		if !now.Before(deadline) {
			step()
			ts.tickCount.Add(1)

			ts.mu.Lock()
			ts.nextTickDeadline = ts.nextTickDeadline.Add(ts.interval)
			if now.Sub(ts.nextTickDeadline) > ts.maxBehind {
				ts.nextTickDeadline = now.Add(ts.interval)
			}
			deadline = ts.nextTickDeadline
			ts.mu.Unlock()
		}

		sleep := time.Until(deadline)
		if sleep <= 0 {
			continue
		}
		timer.Reset(sleep)
		select {
		case <-timer.C:
		case <-ctx.Done():
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			return ctx.Err()
		}
	}
}

// TickCount returns steps executed since creation
func (ts *TickScheduler) TickCount() uint64 {
	return ts.tickCount.Load()
}

// Interval returns the configured tick interval
func (ts *TickScheduler) Interval() time.Duration {
	return ts.interval
}

// Running reports whether Run is active
func (ts *TickScheduler) Running() bool {
	return ts.running.Load()
}
