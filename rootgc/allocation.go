package rootgc

import "runtime"

// Allocation is the typed storage backing one Gc/GcStore value: the
// type-erased header plus the user's data.
//
// The header/data split lets list traversal, marking and sweeping operate on
// the header alone without needing to know T (see header.go).
type Allocation[T Trace] struct {
	header header
	data   T
}

// newAllocation places data on the Go heap, unmanaged: it is reachable only
// through the returned pointer, not yet linked into any GcState's object
// list. A finalizer is armed so that if this allocation is dropped by its
// owner while still unmanaged (scenario: a GcStore built but never rooted),
// Go's own collector still runs data's Finalize exactly once, since Go has
// no destructors to rely on for that case.
func newAllocation[T Trace](allocator Allocator, data T) *Allocation[T] {
	a := &Allocation[T]{data: data}
	a.header.allocator = allocator
	a.header.link.Init(&a.header)
	a.header.vtable = vtable{
		mark: func() {
			a.data.Mark()
		},
		manage: func(heap *GcState) {
			// Guard on isUnmanaged before recursing: data.Manage may
			// reach back to this same allocation through a cycle, and
			// unlike mark there is no separate dirty bit to clear, so
			// the link state itself is what breaks the recursion.
			if !a.header.isUnmanaged() {
				return
			}
			heap.manage(&a.header)
			a.data.Manage(heap)
		},
		finalize: func() {
			if fin, ok := any(a.data).(Finalizer); ok {
				fin.Finalize()
			}
		},
		disarmFinalize: func() {
			runtime.SetFinalizer(a, nil)
		},
	}
	allocator.Acquire()
	runtime.SetFinalizer(a, func(a *Allocation[T]) {
		a.header.vtable.finalize()
		a.header.allocator.Release()
	})
	return a
}

// Finalizer is implemented by user types that need to run cleanup when an
// allocation is reclaimed, whether by Collect (for a managed allocation) or
// by Go's own collector (for one that was never managed). There is only ever
// this one safe hook, since this package never exposes a way to resurrect a
// value mid-finalization.
type Finalizer interface {
	Finalize()
}
