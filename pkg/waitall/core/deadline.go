package core

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// Outcome is the state of a Deadline.
type Outcome int32

const (
	// Armed: the timer is running and nothing has settled it yet.
	Armed Outcome = iota
	// AllDone: Cancel was called before the timer fired.
	AllDone
	// TimedOut: the timer fired first.
	TimedOut
	// Aborted: the waiting context ended first.
	Aborted
)

func (o Outcome) String() string {
	switch o {
	case Armed:
		return "armed"
	case AllDone:
		return "all_done"
	case TimedOut:
		return "timed_out"
	case Aborted:
		return "aborted"
	default:
		return "unknown"
	}
}

// Deadline is a one-shot timer that settles exactly once, either by Cancel,
// by expiry, or by the waiting context ending. Whichever comes first wins and
// the others are no-ops.
type Deadline struct {
	timer   *time.Timer
	done    chan struct{}
	once    sync.Once
	outcome atomic.Int32
}

// NewDeadline arms a deadline for d. Negative durations are treated as zero.
func NewDeadline(d time.Duration) *Deadline {
	if d < 0 {
		d = 0
	}
	dl := &Deadline{done: make(chan struct{})}
	dl.timer = time.AfterFunc(d, func() {
		dl.settle(TimedOut)
	})
	return dl
}

func (d *Deadline) settle(o Outcome) bool {
	settled := false
	d.once.Do(func() {
		d.outcome.Store(int32(o))
		close(d.done)
		settled = true
	})
	return settled
}

// Cancel wakes the waiter early. It reports whether this call settled the
// deadline; false means it had already expired or been cancelled.
func (d *Deadline) Cancel() bool {
	if !d.settle(AllDone) {
		return false
	}
	d.timer.Stop()
	return true
}

// Wait blocks until the deadline settles or ctx ends.
func (d *Deadline) Wait(ctx context.Context) Outcome {
	select {
	case <-d.done:
	case <-ctx.Done():
		if d.settle(Aborted) {
			d.timer.Stop()
		}
	}
	return d.Outcome()
}

func (d *Deadline) Done() <-chan struct{} {
	return d.done
}

func (d *Deadline) Outcome() Outcome {
	return Outcome(d.outcome.Load())
}

// Stop releases the timer without settling the deadline.
func (d *Deadline) Stop() {
	d.timer.Stop()
}
