package rootgc

// Gc is a rooted reference to a managed allocation: a handle obtained from a
// Root, valid for as long as that Root stays open.
//
// Gc implements Trace so it can appear inside another managed aggregate
// (e.g. a container type holding a Gc[Node]) — marking or managing a Gc
// marks or manages the allocation it points at.
type Gc[T Trace] struct {
	ptr  gcPtr[T]
	root *Root
	gen  uint64
}

// Value returns an accessor to the referenced data, panicking if this Gc's
// Root has since been popped or rebound elsewhere: a Gc that outlives its
// Root fails loudly at the point of use.
func (g Gc[T]) Value() *T {
	g.checkedHeader()
	return g.ptr.data()
}

// checkedHeader validates g's generation against its Root before returning
// the header it wraps; used by Value and by Reroot.
//
// Validity only requires that root is still the same open root g was
// stamped with, not that root directly protects g's own header: a Gc
// obtained from a GcStore field via FieldGc is valid for as long as the
// aggregate's own Root stays open, even though that Root's slot points at
// the aggregate's header, not the field's.
func (g Gc[T]) checkedHeader() *header {
	if !g.root.isOpen() || g.root.gen != g.gen {
		panic("rootgc: Gc used after its Root was popped or rebound")
	}
	return g.ptr.header()
}

func (g Gc[T]) Mark() {
	g.ptr.mark()
}

func (g Gc[T]) Manage(heap *GcState) {
	g.ptr.manage(heap)
}

var _ Trace = Gc[Leaf[int]]{}
