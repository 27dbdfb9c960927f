package rootgc

// Root is a stack-scoped handle protecting exactly one managed allocation
// from collection, for as long as it stays open.
//
// Since Go has no lifetime parameters to brand a reference with, the
// property that a Gc cannot outlive its Root is enforced at runtime instead:
// every Root carries a generation stamped at creation, every Gc obtained
// from it carries a copy of that generation, and Gc.Value compares its
// stamp against the Root's current state, panicking on mismatch. Pop closes
// the Root, and the comparison then always fails.
type Root struct {
	heap *GcState
	idx  int
	gen  uint64
	h    *header
}

// NewRoot opens a new root slot on heap's root stack. The returned Root must
// be popped, in LIFO order relative to any other open Root on the same heap,
// before its stack frame ends — ordinarily via `defer root.Pop()`
// immediately after NewRoot.
func NewRoot(heap *GcState) *Root {
	idx, gen := heap.newRootSlot()
	return &Root{heap: heap, idx: idx, gen: gen}
}

// Pop closes r, releasing whatever allocation it was protecting. r must be
// the most recently opened, not-yet-popped Root on its heap; popping out of
// order panics.
func (r *Root) Pop() {
	r.heap.popRootSlot(r.idx)
	r.h = nil
	r.gen = 0
}

// isOpen reports whether r is still protecting its slot.
func (r *Root) isOpen() bool {
	return r.gen != 0
}

// New roots data: it places data as a fresh, managed allocation on heap and
// binds it to root, returning a Gc that is valid for as long as root stays
// open.
//
// New must be called at most once per Root: calling it again on a Root that
// already holds one panics rather than silently orphaning the first.
func New[T Trace](root *Root, data T) Gc[T] {
	if !root.isOpen() {
		panic("rootgc: New called on a closed Root")
	}
	if root.h != nil {
		panic("rootgc: New called twice on the same Root")
	}

	ptr := gcPtr[T]{alloc: newAllocation[T](root.heap.allocator, data)}
	ptr.manage(root.heap)

	root.h = ptr.header()
	root.heap.setRootSlot(root.idx, root.h)

	return Gc[T]{ptr: ptr, root: root, gen: root.gen}
}

// Reroot rebinds an already-rooted value to a new Root, letting it move
// between two nested root scopes without a fresh allocation: it transfers
// which Root's slot points at g's header and re-stamps g's generation to
// match the new Root.
//
// newRoot must not already hold a value (the same New-at-most-once rule),
// and g must still be valid (its own Root open) at the time of the call.
func Reroot[T Trace](newRoot *Root, g Gc[T]) Gc[T] {
	if !newRoot.isOpen() {
		panic("rootgc: Reroot called on a closed Root")
	}
	if newRoot.h != nil {
		panic("rootgc: Reroot target Root already holds a value")
	}
	h := g.checkedHeader()

	newRoot.h = h
	newRoot.heap.setRootSlot(newRoot.idx, h)

	return Gc[T]{ptr: g.ptr, root: newRoot, gen: newRoot.gen}
}
