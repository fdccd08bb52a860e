// Package waitall runs a fixed set of operations concurrently and resumes the
// caller when all of them have finished or a timeout elapses, whichever comes
// first.
//
// Common usage:
// - WaitAll: collect the values of the operations that succeeded in time
// - WaitAllVoid: the same race for operations without a value
// - WaitAllResults: every finished Result, failures included
// - WaitAllAsync/Await: start the wait without blocking, read it later
//
// Values arrive in completion order, not argument order. The timeout is a
// soft deadline: it bounds the wait, and operations that are still running
// keep running on the executor after the call returns. Their values are
// discarded. Hosts that need the work stopped enable
// core.WithWaitOptions(ctx, true) and honour ctx inside their operations.
//
// A failing operation (an error return or a panic) contributes no value but
// still counts toward completion, so it never holds the caller until the
// timeout.
//
// Operations are spawned on an executor.Executor owned by the host; see
// package executor for bounded, rate limited and tracked executors.
package waitall
