package core

import (
	"context"

	"go.uber.org/zap"
)

type OptionKey string

const (
	WaitOptionKey     OptionKey = "wait_options"
	WorkerOptionKey   OptionKey = "worker_options"
	LoggerOptionKey   OptionKey = "logger"
	ObserverOptionKey OptionKey = "observer"
)

type MaxLimitOption struct {
	Value int
}

type WorkerOptions struct {
	MaxCount MaxLimitOption
}

type WaitOptions struct {
	// CancelOnTimeout cancels the context handed to operations once the
	// waiter resumes. Off by default: the deadline only bounds the wait.
	CancelOnTimeout bool
}

func WithWaitOptions(ctx context.Context, cancelOnTimeout bool) context.Context {
	return context.WithValue(ctx, WaitOptionKey, WaitOptions{CancelOnTimeout: cancelOnTimeout})
}

func WithWorkerOptions(ctx context.Context, maxWorkers int) context.Context {
	return context.WithValue(ctx, WorkerOptionKey, WorkerOptions{MaxLimitOption{Value: maxWorkers}})
}

func GetWorkerMaxCount(ctx context.Context, defaultMaxWorkers int) int {
	options, ok := ctx.Value(WorkerOptionKey).(WorkerOptions)
	if ok {
		return options.MaxCount.Value
	}
	return defaultMaxWorkers
}

func IsCancelOnTimeoutEnabled(ctx context.Context, defaultCancelOnTimeout bool) bool {
	options, ok := ctx.Value(WaitOptionKey).(WaitOptions)
	if ok {
		return options.CancelOnTimeout
	}
	return defaultCancelOnTimeout
}

func WithLogger(ctx context.Context, log *zap.Logger) context.Context {
	if log == nil {
		return ctx
	}
	return context.WithValue(ctx, LoggerOptionKey, log)
}

// LoggerFrom returns the logger stored in ctx or a no-op logger.
func LoggerFrom(ctx context.Context) *zap.Logger {
	if log, ok := ctx.Value(LoggerOptionKey).(*zap.Logger); ok {
		return log
	}
	return zap.NewNop()
}

func WithObserver(ctx context.Context, o Observer) context.Context {
	if o == nil {
		return ctx
	}
	return context.WithValue(ctx, ObserverOptionKey, o)
}

func ObserverFrom(ctx context.Context) Observer {
	if o, ok := ctx.Value(ObserverOptionKey).(Observer); ok {
		return o
	}
	return NopObserver{}
}
