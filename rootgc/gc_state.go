package rootgc

import "github.com/nocturnegc/rootgc/internal/glist"

// GcState is a thread-local heap: a list of managed allocations plus a LIFO
// stack of roots protecting a subset of them from collection.
//
// A GcState must only ever be used from the goroutine that created it.
// Nothing here is synchronized: a collector that may run concurrently with
// the mutator it serves is a different, much harder design this package
// does not attempt.
type GcState struct {
	objects   *glist.Node[header]
	allocator Allocator

	roots   []rootSlot
	nextGen uint64
}

// rootSlot is one entry in the root stack: whether it is still open, and the
// header it currently protects (nil until New roots something into the
// slot).
type rootSlot struct {
	open bool
	h    *header
}

// NewGcState returns a new, empty heap that places newly managed allocations'
// bookkeeping with allocator.
func NewGcState(allocator Allocator) *GcState {
	return &GcState{
		objects:   glist.NewSentinel[header](),
		allocator: allocator,
	}
}

// manage links h into this heap's object list, making it subject to
// Collect. It is idempotent: managing an already-managed allocation is a
// no-op.
func (s *GcState) manage(h *header) {
	if !h.isUnmanaged() {
		return
	}
	h.link.InsertAfter(s.objects)
	h.vtable.disarmFinalize()
}

// CountManagedObjects returns the number of allocations currently linked into
// this heap's object list, managed or not yet swept.
func (s *GcState) CountManagedObjects() int {
	n := 0
	for cur := s.objects.Next(); cur != s.objects; cur = cur.Next() {
		n++
	}
	return n
}

// CountRoots returns the number of currently open roots on this heap's root
// stack.
func (s *GcState) CountRoots() int {
	n := 0
	for _, slot := range s.roots {
		if slot.open {
			n++
		}
	}
	return n
}

// Stats reports the allocator's running totals for this heap.
func (s *GcState) Stats() Stats {
	return s.allocator.Stats()
}

// Collect runs one stop-the-world mark-and-sweep pass: every object reachable
// from an open root is marked, then every unmarked managed object is swept
// (finalized, released to its allocator, and unlinked).
func (s *GcState) Collect() {
	for _, slot := range s.roots {
		if slot.open && slot.h != nil {
			slot.h.mark()
		}
	}

	cur := s.objects.Next()
	for cur != s.objects {
		next := cur.Next()
		h := cur.Owner()
		if h.markedAndClear() {
			cur = next
			continue
		}
		h.vtable.finalize()
		h.allocator.Release()
		cur.Unlink()
		cur = next
	}
}

// newRootSlot pushes a fresh, empty root slot and returns its index and a
// generation stamp unique to this call, never zero and never reused by any
// other slot on this heap. Roots must be popped in LIFO order;
// popRootSlot enforces this.
func (s *GcState) newRootSlot() (idx int, gen uint64) {
	idx = len(s.roots)
	s.nextGen++
	gen = s.nextGen
	s.roots = append(s.roots, rootSlot{open: true})
	return idx, gen
}

// setRootSlot records which allocation root idx is currently protecting.
func (s *GcState) setRootSlot(idx int, h *header) {
	s.roots[idx].h = h
}

// popRootSlot closes the root at idx. idx must be the last slot on the stack;
// popRootSlot panics otherwise, which is how Root.Pop enforces LIFO order.
func (s *GcState) popRootSlot(idx int) {
	if idx != len(s.roots)-1 {
		panic("rootgc: roots must be popped in LIFO order")
	}
	s.roots = s.roots[:idx]
}
