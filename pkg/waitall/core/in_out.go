package core

import "context"

// FromChanFirstOrDefault returns the first value received from out, or
// defaultV when out is closed empty or ctx ends first.
func FromChanFirstOrDefault[T any](ctx context.Context, out <-chan T, defaultV T) (T, bool) {
	select {
	case v, ok := <-out:
		if !ok {
			return defaultV, false
		}
		return v, true
	case <-ctx.Done():
		return defaultV, false
	}
}
