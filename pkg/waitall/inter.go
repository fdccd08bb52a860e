package waitall

import "context"

// Operation is a unit of work producing a value of type V. A non-nil error
// means the operation failed and contributes no value.
type Operation[V any] func(ctx context.Context) (V, error)

// Action is an operation without a value.
type Action func(ctx context.Context) error
