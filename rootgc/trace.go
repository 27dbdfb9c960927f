package rootgc

// Trace is implemented by every type that can be stored behind a Gc or
// GcStore. It lets the collector walk a value's outgoing managed references
// without knowing its concrete shape.
//
// Mark must call Mark on every GcStore (and every Gc) value reaches,
// transitively. Manage must call Manage(heap) on the same set, the first time
// the value becomes part of a managed aggregate. Both must be safe to call
// multiple times on the same value: Gc and GcStore themselves dedupe repeat
// calls (a mark bit for Mark, managed-link state for Manage), so a Trace
// implementation only needs to forward the call, never track dedup itself.
type Trace interface {
	Mark()
	Manage(heap *GcState)
}

// NullTrace is a sealed marker asserting that a type's Trace implementation
// is a no-op: the type holds no GcStore or Gc anywhere in its representation,
// directly or transitively.
//
// This is a safety contract, not merely a convention — a type that wrongly
// claims NullTrace will have reachable managed data silently skipped during
// mark, and swept out from under it. Because Go has no unsafe trait, the
// marker method unexported here is the sealing mechanism: this package's
// NullTrace types are Leaf and RawBuffer, and a type outside the package
// satisfies NullTrace only by embedding one of them. NewLeaf runs a
// structural check before admitting a value — see pointer_check.go; a Leaf
// written as a composite literal, or a struct embedding one, is not checked.
type NullTrace interface {
	Trace
	isNullTrace()
}

// noopTrace is embedded by NullTrace implementations to satisfy Trace with
// the required no-op behaviour.
type noopTrace struct{}

func (noopTrace) Mark()           {}
func (noopTrace) Manage(*GcState) {}
