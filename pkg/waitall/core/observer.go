package core

import (
	"time"

	"github.com/google/uuid"
)

// Summary describes one finished WaitAll call.
type Summary struct {
	ID         uuid.UUID
	Operations int

	// Completed is how many operations had finished when the waiter resumed.
	Completed int

	// Collected is how many values the caller received.
	Collected int

	Outcome Outcome
	Timeout time.Duration
	Elapsed time.Duration
}

// Observer receives call summaries. Implementations must be safe for
// concurrent use: LateCompletion is called from detached operations.
type Observer interface {
	CallFinished(s Summary)
	// LateCompletion reports an operation that finished after its call
	// returned; its value was discarded. A panic here is recovered and
	// logged by the caller.
	LateCompletion(id uuid.UUID)
}

type NopObserver struct{}

func (NopObserver) CallFinished(Summary) {}

func (NopObserver) LateCompletion(uuid.UUID) {}
