package core

import "sync"

// Buffer collects values appended concurrently. Once sealed it rejects
// further appends, so a snapshot handed to a caller is never mutated.
type Buffer[T any] struct {
	mu       sync.Mutex
	values   []T
	capacity int
	sealed   bool
	snapshot []T
}

func NewBuffer[T any](capacity int) *Buffer[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Buffer[T]{
		values:   make([]T, 0, capacity),
		capacity: capacity,
	}
}

// Append adds v unless the buffer is sealed or already holds capacity values.
func (b *Buffer[T]) Append(v T) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.sealed || len(b.values) >= b.capacity {
		return false
	}
	b.values = append(b.values, v)
	return true
}

// Seal stops further appends and returns a copy of the collected values.
// Later calls return the same snapshot.
func (b *Buffer[T]) Seal() []T {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.sealed {
		b.sealed = true
		b.snapshot = make([]T, len(b.values))
		copy(b.snapshot, b.values)
	}
	return b.snapshot
}

func (b *Buffer[T]) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.values)
}
