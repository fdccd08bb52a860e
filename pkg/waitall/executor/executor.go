package executor

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/ib-77/waitall/pkg/waitall/core"
	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"
)

var ErrInvalidLimit = errors.New("executor: limit must be positive")

// Executor runs tasks detached from the caller.
type Executor interface {
	Go(task func())
}

// Goroutines starts every task on its own goroutine.
type Goroutines struct{}

func (Goroutines) Go(task func()) {
	go task()
}

// Bounded runs at most a fixed number of tasks at once. Extra tasks are
// parked on their own goroutine until a slot frees up.
type Bounded struct {
	sem *semaphore.Weighted
}

func NewBounded(maxWorkers int) (*Bounded, error) {
	if maxWorkers <= 0 {
		return nil, ErrInvalidLimit
	}
	return &Bounded{sem: semaphore.NewWeighted(int64(maxWorkers))}, nil
}

func (b *Bounded) Go(task func()) {
	go func() {
		// Acquire only fails on a done context; Background never is.
		_ = b.sem.Acquire(context.Background(), 1)
		defer b.sem.Release(1)
		task()
	}()
}

// RateLimited delays the start of each task until its limiter grants a token.
type RateLimited struct {
	next    Executor
	limiter *rate.Limiter
}

func NewRateLimited(next Executor, perSecond float64, burst int) (*RateLimited, error) {
	if perSecond <= 0 || burst <= 0 {
		return nil, ErrInvalidLimit
	}
	if next == nil {
		next = Goroutines{}
	}
	return &RateLimited{next: next, limiter: rate.NewLimiter(rate.Limit(perSecond), burst)}, nil
}

func (r *RateLimited) Go(task func()) {
	r.next.Go(func() {
		_ = r.limiter.Wait(context.Background())
		task()
	})
}

// Tracked counts the tasks it has started and not yet finished. Tasks spawned
// by WaitAll may outlive the call; hosts use Wait to drain them on shutdown.
type Tracked struct {
	next    Executor
	wg      sync.WaitGroup
	running atomic.Int64
}

func NewTracked(next Executor) *Tracked {
	if next == nil {
		next = Goroutines{}
	}
	return &Tracked{next: next}
}

func (t *Tracked) Go(task func()) {
	t.wg.Add(1)
	t.running.Add(1)
	t.next.Go(func() {
		defer t.wg.Done()
		defer t.running.Add(-1)
		task()
	})
}

// Running reports how many tasks have been started and not yet finished.
func (t *Tracked) Running() int64 {
	return t.running.Load()
}

// Wait blocks until every tracked task has finished or ctx ends. Call it
// after the host has stopped spawning work.
func (t *Tracked) Wait(ctx context.Context) error {
	drained := make(chan struct{})
	go func() {
		defer close(drained)
		t.wg.Wait()
	}()

	select {
	case <-drained:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// FromContext builds the executor described by the worker options in ctx:
// Bounded for a positive max count, Goroutines otherwise.
func FromContext(ctx context.Context) Executor {
	maxWorkers := core.GetWorkerMaxCount(ctx, 0)
	if maxWorkers > 0 {
		if b, err := NewBounded(maxWorkers); err == nil {
			return b
		}
	}
	return Goroutines{}
}
