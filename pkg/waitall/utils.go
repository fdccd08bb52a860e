package waitall

import (
	"context"
	"errors"
	"fmt"
)

func IsCancellationError(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}

// GetErrors flattens a joined error into its parts.
func GetErrors(err error) []error {
	if err == nil {
		return []error{}
	}

	e, ok := err.(interface{ Unwrap() []error })
	if ok {
		return e.Unwrap()
	}

	return []error{err}
}

// Errors joins the errors of every failed result, nil when all succeeded.
func Errors[T any](results []Result[T]) error {
	var errs []error
	for _, r := range results {
		if r.IsFailure() && r.Err() != nil {
			errs = append(errs, fmt.Errorf("operation %d: %w", r.Index(), r.Err()))
		}
	}
	return errors.Join(errs...)
}

func panicError(p any) error {
	if err, ok := p.(error); ok {
		return fmt.Errorf("%w: %w", ErrPanicked, err)
	}
	return fmt.Errorf("%w: %v", ErrPanicked, p)
}
