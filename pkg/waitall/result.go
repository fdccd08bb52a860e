package waitall

import (
	"time"

	"github.com/google/uuid"
)

// Result is the outcome of a single operation handed to WaitAllResults.
type Result[T any] struct {
	id          uuid.UUID
	index       int
	completedAt time.Time
	value       T
	err         error
	isSuccess   bool
	isCancel    bool
}

func Success[T any](v T) Result[T] {
	return Result[T]{
		value:       v,
		isSuccess:   true,
		completedAt: time.Now().UTC(),
		id:          uuid.New(),
	}
}

func Fail[T any](err error) Result[T] {
	return Result[T]{
		err:         err,
		completedAt: time.Now().UTC(),
		id:          uuid.New(),
	}
}

func Cancel[T any](err error) Result[T] {
	return Result[T]{
		err:         err,
		isCancel:    true,
		completedAt: time.Now().UTC(),
		id:          uuid.New(),
	}
}

// FromTry converts the (value, error) pair of an operation into a Result.
// Context cancellation and deadline errors become Cancel, any other error Fail.
func FromTry[T any](v T, err error) Result[T] {
	if err == nil {
		return Success(v)
	}
	if IsCancellationError(err) {
		return Cancel[T](err)
	}
	return Fail[T](err)
}

func (r Result[T]) withIndex(i int) Result[T] {
	r.index = i
	return r
}

func (r Result[T]) Value() T {
	return r.value
}

func (r Result[T]) Err() error {
	return r.err
}

func (r Result[T]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result[T]) IsCancel() bool {
	return r.isCancel
}

func (r Result[T]) IsFailure() bool {
	return !r.isSuccess
}

// Index is the position of the operation in the argument list.
func (r Result[T]) Index() int {
	return r.index
}

func (r Result[T]) CompletedAt() time.Time {
	return r.completedAt
}

func (r Result[T]) Id() uuid.UUID {
	return r.id
}
