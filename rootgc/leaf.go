package rootgc

import "fmt"

// Leaf wraps a plain data value as NullTrace: a value the collector can
// treat as opaque, because it structurally contains nothing for it to trace.
//
// Leaf and RawBuffer are the NullTrace types this package defines; a type
// outside the package satisfies NullTrace only by embedding one of them.
// NewLeaf runs validateNullTrace[T] on every call, at construction, so the
// cost of the reflective walk is paid when a Leaf is built rather than on
// every mark. A Leaf written as a composite literal skips that check.
type Leaf[T any] struct {
	noopTrace
	Data T
}

// NewLeaf wraps data as a Leaf, panicking if T could hold a reference the
// collector would need to trace. Panicking (rather than returning an error)
// reflects that a type which cannot soundly be NullTrace is a programming
// error to be caught immediately, not a recoverable runtime condition.
func NewLeaf[T any](data T) Leaf[T] {
	if err := validateNullTrace[T](); err != nil {
		panic(fmt.Errorf("rootgc.NewLeaf: %w", err))
	}
	return Leaf[T]{Data: data}
}

func (l Leaf[T]) isNullTrace() {}

var _ NullTrace = Leaf[int]{}
