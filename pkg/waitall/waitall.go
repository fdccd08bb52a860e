package waitall

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/ib-77/waitall/pkg/waitall/core"
	"github.com/ib-77/waitall/pkg/waitall/executor"
	"go.uber.org/zap"
)

// Report is what WaitAllResults hands back for a single call.
type Report[V any] struct {
	ID uuid.UUID

	// Results holds every operation that finished before the waiter resumed,
	// failures included, in completion order.
	Results []Result[V]
	Outcome core.Outcome
	Elapsed time.Duration
}

// Values returns the values of the successful results in completion order.
func (r Report[V]) Values() []V {
	values := make([]V, 0, len(r.Results))
	for _, res := range r.Results {
		if res.IsSuccess() {
			values = append(values, res.Value())
		}
	}
	return values
}

func (r Report[V]) Errors() error {
	return Errors(r.Results)
}

// TimedOut reports whether the timeout elapsed before every operation
// finished. A call ended by the caller's context is Aborted, not TimedOut.
func (r Report[V]) TimedOut() bool {
	return r.Outcome == core.TimedOut
}

// WaitAll runs ops concurrently on exec and returns once all of them have
// finished or timeout has elapsed, whichever comes first. The result holds the
// values of the operations that succeeded in time, in completion order; it is
// never nil. With no operations WaitAll waits the full timeout.
//
// The timeout bounds the wait, not the work: operations still running when it
// elapses keep running and their values are discarded. Set
// core.WithWaitOptions(ctx, true) to cancel their context instead.
//
// A nil exec means executor.FromContext(ctx).
func WaitAll[V any](ctx context.Context, exec executor.Executor, timeout time.Duration,
	ops ...Operation[V]) []V {
	return run(ctx, exec, timeout, ops).Values()
}

// WaitAllVoid is WaitAll for operations that produce no value.
func WaitAllVoid(ctx context.Context, exec executor.Executor, timeout time.Duration, ops ...Action) {
	wrapped := make([]Operation[struct{}], len(ops))
	for i, a := range ops {
		a := a
		if a != nil {
			wrapped[i] = func(ctx context.Context) (struct{}, error) {
				return struct{}{}, a(ctx)
			}
		}
	}
	run(ctx, exec, timeout, wrapped)
}

// WaitAllResults is WaitAll returning every finished result, failures
// included, so callers can tell failed operations from ones still running.
func WaitAllResults[V any](ctx context.Context, exec executor.Executor, timeout time.Duration,
	ops ...Operation[V]) Report[V] {
	return run(ctx, exec, timeout, ops)
}

// WaitAllAsync starts WaitAll without blocking. The channel delivers the
// values once and is then closed.
func WaitAllAsync[V any](ctx context.Context, exec executor.Executor, timeout time.Duration,
	ops ...Operation[V]) <-chan []V {
	out := make(chan []V, 1)
	go func() {
		defer close(out)
		out <- WaitAll(ctx, exec, timeout, ops...)
	}()
	return out
}

// Await reads the single value delivered on ch, giving up when ctx ends.
func Await[T any](ctx context.Context, ch <-chan T) (T, bool) {
	var zero T
	return core.FromChanFirstOrDefault(ctx, ch, zero)
}

func run[V any](ctx context.Context, exec executor.Executor, timeout time.Duration,
	ops []Operation[V]) Report[V] {

	if exec == nil {
		exec = executor.FromContext(ctx)
	}
	if timeout < 0 {
		timeout = 0
	}

	id := uuid.New()
	n := len(ops)
	start := time.Now()
	observer := core.ObserverFrom(ctx)
	log := core.LoggerFrom(ctx).With(zap.Stringer("call_id", id), zap.Int("operations", n))

	opCtx, cancel := ctx, context.CancelFunc(func() {})
	if core.IsCancelOnTimeoutEnabled(ctx, false) {
		opCtx, cancel = context.WithCancel(ctx)
	}
	defer cancel()

	deadline := core.NewDeadline(timeout)
	defer deadline.Stop()
	buf := core.NewBuffer[Result[V]](n)
	var completed atomic.Int64

	log.Debug("waitall: armed", zap.Duration("timeout", timeout))

	for i, op := range ops {
		i, op := i, op
		exec.Go(func() {
			res := drive(opCtx, op, log).withIndex(i)
			if res.IsFailure() {
				log.Debug("waitall: operation failed", zap.Int("index", i), zap.Error(res.Err()))
			}

			late := !buf.Append(res)
			if completed.Add(1) == int64(n) {
				deadline.Cancel()
			}

			if late {
				log.Debug("waitall: late completion discarded", zap.Int("index", i))
				reportLate(observer, id, log)
			}
		})
	}

	outcome := deadline.Wait(ctx)
	results := buf.Seal()

	report := Report[V]{
		ID:      id,
		Results: results,
		Outcome: outcome,
		Elapsed: time.Since(start),
	}

	collected := 0
	for _, r := range results {
		if r.IsSuccess() {
			collected++
		}
	}

	observer.CallFinished(core.Summary{
		ID:         id,
		Operations: n,
		Completed:  len(results),
		Collected:  collected,
		Outcome:    outcome,
		Timeout:    timeout,
		Elapsed:    report.Elapsed,
	})
	log.Debug("waitall: returned",
		zap.Stringer("outcome", outcome),
		zap.Int("completed", len(results)),
		zap.Int("collected", collected),
		zap.Duration("elapsed", report.Elapsed))

	return report
}

// drive runs a single operation, turning a panic into a failed result.
func drive[V any](ctx context.Context, op Operation[V], log *zap.Logger) (res Result[V]) {
	defer func() {
		if p := recover(); p != nil {
			err := panicError(p)
			log.Error("waitall: operation panicked", zap.Error(err))
			res = Fail[V](err)
		}
	}()

	if op == nil {
		return Fail[V](ErrNilOperation)
	}

	v, err := op(ctx)
	return FromTry(v, err)
}

// reportLate runs on a detached goroutine, so a panicking observer is
// logged instead of taking the process down.
func reportLate(observer core.Observer, id uuid.UUID, log *zap.Logger) {
	defer func() {
		if p := recover(); p != nil {
			log.Error("waitall: observer panicked on late completion", zap.Error(panicError(p)))
		}
	}()
	observer.LateCompletion(id)
}
