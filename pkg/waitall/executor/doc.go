// Package executor provides the scheduling contexts WaitAll spawns work on.
//
// An Executor accepts a task and runs it detached from the caller. Go must
// not block: implementations that limit concurrency or rate do their waiting
// inside the spawned goroutine. Executors are owned by the host; WaitAll only
// borrows them for the duration of a call.
//
// Available executors:
// - Goroutines: one goroutine per task
// - Bounded: at most N tasks running at once
// - RateLimited: tasks start no faster than a token bucket allows
// - Tracked: counts detached tasks so the host can drain them on shutdown
package executor
