package rootgc

// This file provides the small set of Trace-aware container types this
// package offers as building blocks: Option (zero-or-one value),
// Pair/Triple/Quad (fixed small tuples), and Slice/Map (variable-length
// homogeneous collections). Go has neither variadic generics nor blanket
// impls over every arity, so this is a fixed family rather than a
// macro-generated one. A caller who needs a different collection shape
// composes it from GcStore fields on their own struct, which is already
// fully general.

// Option holds zero or one Trace value.
type Option[T Trace] struct {
	has   bool
	value T
}

// Some wraps a present value.
func Some[T Trace](v T) Option[T] {
	return Option[T]{has: true, value: v}
}

// None returns an absent Option.
func None[T Trace]() Option[T] {
	return Option[T]{}
}

// Get returns the wrapped value and whether one is present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.has
}

func (o Option[T]) Mark() {
	if o.has {
		o.value.Mark()
	}
}

func (o Option[T]) Manage(heap *GcState) {
	if o.has {
		o.value.Manage(heap)
	}
}

var _ Trace = Option[Leaf[int]]{}

// Pair holds two Trace values, traced together.
type Pair[A, B Trace] struct {
	First  A
	Second B
}

func (p Pair[A, B]) Mark() {
	p.First.Mark()
	p.Second.Mark()
}

func (p Pair[A, B]) Manage(heap *GcState) {
	p.First.Manage(heap)
	p.Second.Manage(heap)
}

var _ Trace = Pair[Leaf[int], Leaf[int]]{}

// Triple holds three Trace values, traced together.
type Triple[A, B, C Trace] struct {
	First  A
	Second B
	Third  C
}

func (t Triple[A, B, C]) Mark() {
	t.First.Mark()
	t.Second.Mark()
	t.Third.Mark()
}

func (t Triple[A, B, C]) Manage(heap *GcState) {
	t.First.Manage(heap)
	t.Second.Manage(heap)
	t.Third.Manage(heap)
}

var _ Trace = Triple[Leaf[int], Leaf[int], Leaf[int]]{}

// Quad holds four Trace values, traced together.
type Quad[A, B, C, D Trace] struct {
	First  A
	Second B
	Third  C
	Fourth D
}

func (q Quad[A, B, C, D]) Mark() {
	q.First.Mark()
	q.Second.Mark()
	q.Third.Mark()
	q.Fourth.Mark()
}

func (q Quad[A, B, C, D]) Manage(heap *GcState) {
	q.First.Manage(heap)
	q.Second.Manage(heap)
	q.Third.Manage(heap)
	q.Fourth.Manage(heap)
}

var _ Trace = Quad[Leaf[int], Leaf[int], Leaf[int], Leaf[int]]{}

// Slice is a Trace-aware, variable-length homogeneous collection.
type Slice[T Trace] struct {
	Items []T
}

// NewSlice wraps items as a Slice.
func NewSlice[T Trace](items ...T) Slice[T] {
	return Slice[T]{Items: items}
}

func (s Slice[T]) Mark() {
	for _, item := range s.Items {
		item.Mark()
	}
}

func (s Slice[T]) Manage(heap *GcState) {
	for _, item := range s.Items {
		item.Manage(heap)
	}
}

var _ Trace = Slice[Leaf[int]]{}

// Map is a Trace-aware map with untraced keys and Trace values. Mark and
// Manage visit the values only. Gc and GcStore are comparable, so either can
// be used as a key; such a key is neither marked nor managed through the Map.
type Map[K comparable, V Trace] struct {
	Items map[K]V
}

// NewMap wraps m as a Map.
func NewMap[K comparable, V Trace](m map[K]V) Map[K, V] {
	if m == nil {
		m = map[K]V{}
	}
	return Map[K, V]{Items: m}
}

func (m Map[K, V]) Mark() {
	for _, v := range m.Items {
		v.Mark()
	}
}

func (m Map[K, V]) Manage(heap *GcState) {
	for _, v := range m.Items {
		v.Manage(heap)
	}
}

var _ Trace = Map[string, Leaf[int]]{}
