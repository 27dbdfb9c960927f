package rootgc

import "github.com/nocturnegc/rootgc/internal/glist"

// header is the type-erased half of an allocation: the part that list
// traversal, marking and sweeping operate on without needing to know T.
//
// Go has no stable fat-pointer layout to split a typed reference out of, so
// instead the operations a vtable would dispatch through are captured as
// closures over the concrete *Allocation[T] at construction time, bound once
// and stored alongside the header.
type header struct {
	link      glist.Node[header]
	marked    bool
	allocator Allocator
	vtable    vtable
}

// vtable holds the type-specific operations for one allocation, bound once at
// construction to the concrete *Allocation[T].
type vtable struct {
	mark           func()
	manage         func(heap *GcState)
	finalize       func()
	disarmFinalize func()
}

// isUnmanaged reports whether this allocation has never been linked into a
// GcState's object list.
func (h *header) isUnmanaged() bool {
	return h.link.IsHead()
}

// mark marks h reachable, tracing its data exactly once even if mark is
// called on it multiple times in the same collection (cycle safety).
func (h *header) mark() {
	if !h.marked {
		h.marked = true
		h.vtable.mark()
	}
}

// markedAndClear reads the mark bit and resets it to false in one step, used
// by sweep to identify survivors and reset their state for the next cycle.
func (h *header) markedAndClear() bool {
	was := h.marked
	h.marked = false
	return was
}
