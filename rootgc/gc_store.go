package rootgc

// GcStore is the field-storage counterpart to Gc: the type a managed
// aggregate embeds for each collectable field, before that aggregate has
// ever been rooted.
//
// While unmanaged, a GcStore is uniquely owned by whatever holds it, and
// Get/GetMaybe give direct access to its data. Once its owning aggregate is
// rooted, that direct path closes: the field is now reachable from the
// collector too, and the only sound way to read it is through a Gc obtained
// via FieldGc from a live Gc to the aggregate.
type GcStore[T Trace] struct {
	ptr gcPtr[T]
}

// NewStore places data as a fresh, unmanaged allocation and wraps it as a
// GcStore, ready to be embedded as a field of an aggregate type. It becomes
// managed only once its owning aggregate is itself rooted and its Manage
// method (which must call manage on each GcStore field) runs.
func NewStore[T Trace](heap *GcState, data T) GcStore[T] {
	return GcStore[T]{ptr: gcPtr[T]{alloc: newAllocation[T](heap.allocator, data)}}
}

// Get returns a direct reference to this field's data. It panics once the
// field has been rooted: from that point on, FieldGc is the only safe way
// to reach it.
func (s GcStore[T]) Get() *T {
	if !s.ptr.header().isUnmanaged() {
		panic("rootgc: GcStore.Get called after its owning aggregate was rooted")
	}
	return s.ptr.data()
}

// GetMaybe is Get without the panic: it reports ok=false instead once the
// field has been rooted, for call sites that need to distinguish "now
// managed" from a programming error.
func (s GcStore[T]) GetMaybe() (v *T, ok bool) {
	if !s.ptr.header().isUnmanaged() {
		return nil, false
	}
	return s.ptr.data(), true
}

func (s GcStore[T]) Mark() {
	s.ptr.mark()
}

func (s GcStore[T]) Manage(heap *GcState) {
	s.ptr.manage(heap)
}

var _ Trace = GcStore[Leaf[int]]{}

// FieldGc is the accessor a collectable aggregate uses to reach a rooted
// GcStore field: given a live Gc to the aggregate that owns store, it
// returns a Gc to the field itself, valid for exactly as long as parent is.
// This is the only safe way to read a GcStore field once its aggregate has
// been rooted — requiring parent's Gc, rather than a bare *Root, rules out
// passing a Root unrelated to the aggregate that actually owns store.
//
// FieldGc panics if store has not yet been managed, i.e. if it is called
// before parent's own aggregate was rooted (store's Manage always runs as
// part of rooting the aggregate it belongs to, so this only happens if
// store is not actually a field of parent's value).
func FieldGc[P Trace, T Trace](parent Gc[P], store GcStore[T]) Gc[T] {
	parent.checkedHeader()
	if store.ptr.header().isUnmanaged() {
		panic("rootgc: FieldGc called on a GcStore that has not been rooted")
	}
	return Gc[T]{ptr: store.ptr, root: parent.root, gen: parent.gen}
}
