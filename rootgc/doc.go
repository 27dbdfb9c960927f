// Package rootgc implements a precise, single-goroutine, stop-the-world
// mark-and-sweep garbage collector for heap-allocated user objects, together
// with a rooting discipline that prevents a collected pointer from being
// used once its root has gone out of scope.
//
// # Usage
//
// A GcState is a heap: it owns a list of managed allocations and a stack of
// roots. Allocations start out unmanaged — owned solely by the GcStore that
// created them — and only become subject to collection once they are rooted.
//
//	heap := rootgc.NewGcState(rootgc.NewGlobalAllocator())
//
//	root := rootgc.NewRoot(heap)
//	defer root.Pop()
//
//	g := rootgc.New(root, rootgc.NewLeaf(42))
//	fmt.Println(g.Value().Data)
//
//	heap.Collect()
//
// A user aggregate type that should participate in collection embeds its
// collectable fields as GcStore, and hand-implements Mark/Manage/Finalize
// (the derive-macro this is modelled on is explicitly out of scope — see
// cmd/features for a worked, hand-written example):
//
//	type Node struct {
//		Next rootgc.GcStore[*Node]
//	}
//
// Once a Gc[*Node] is obtained from a Root, the Next field is only reachable
// by tracing through rootgc; GcStore.Get panics if called after the store's
// aggregate has been rooted, because at that point the only safe path to
// the field's value is FieldGc(parentGc, node.Next), not direct access.
//
// # Safety
//
// NullTrace is a safety claim: it asserts the implementing type holds no
// Gc or GcStore anywhere in its representation, so Mark and Manage are
// no-ops. A false claim can produce a use-after-free during sweep. NewLeaf
// runs a reflection-based walk before admitting a value — see
// pointer_check.go; a Leaf written as a composite literal skips it.
// RawBuffer is the package's other NullTrace type.
package rootgc
