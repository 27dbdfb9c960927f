// Command features is a worked, hand-written example of a managed aggregate
// type: the Mark/Manage/Finalize methods a derive macro would generate,
// written out by hand, since that macro is out of scope for this package.
package main

import (
	"fmt"

	"github.com/nocturnegc/rootgc"
)

// Foo has one plain field (local), one scalar collectable field (item), a
// slice of collectable fields (vec), and an optional collectable field
// (option) — one example of each shape this package's Trace-aware container
// types cover.
type Foo struct {
	item   rootgc.GcStore[rootgc.Leaf[int]]
	vec    []rootgc.GcStore[rootgc.Leaf[int]]
	option rootgc.Option[rootgc.GcStore[rootgc.Leaf[int]]]
	local  int
}

func newFoo(heap *rootgc.GcState) *Foo {
	return &Foo{
		item: rootgc.NewStore(heap, rootgc.NewLeaf(0)),
		vec: []rootgc.GcStore[rootgc.Leaf[int]]{
			rootgc.NewStore(heap, rootgc.NewLeaf(1)),
			rootgc.NewStore(heap, rootgc.NewLeaf(2)),
			rootgc.NewStore(heap, rootgc.NewLeaf(3)),
		},
		option: rootgc.Some(rootgc.NewStore(heap, rootgc.NewLeaf(4))),
		local:  5,
	}
}

func (f *Foo) Mark() {
	f.item.Mark()
	for _, e := range f.vec {
		e.Mark()
	}
	f.option.Mark()
}

func (f *Foo) Manage(heap *rootgc.GcState) {
	f.item.Manage(heap)
	for _, e := range f.vec {
		e.Manage(heap)
	}
	f.option.Manage(heap)
}

// Finalize runs when Foo is swept, whether by an explicit Collect or by
// being dropped while still unmanaged.
func (f *Foo) Finalize() {
	fmt.Println(f.local)
}

var (
	_ rootgc.Trace     = (*Foo)(nil)
	_ rootgc.Finalizer = (*Foo)(nil)
)

// printNonlocal prints every collectable field reachable from a rooted Foo.
func printNonlocal(g rootgc.Gc[*Foo]) {
	foo := *g.Value()

	fmt.Println(rootgc.FieldGc(g, foo.item).Value().Data)

	for _, e := range foo.vec {
		fmt.Println(rootgc.FieldGc(g, e).Value().Data)
	}

	if thing, ok := foo.option.Get(); ok {
		fmt.Println(rootgc.FieldGc(g, thing).Value().Data)
	}
}

func main() {
	heap := rootgc.NewGcState(rootgc.NewGlobalAllocator())

	func() {
		root := rootgc.NewRoot(heap)
		defer root.Pop()

		g := rootgc.New(root, newFoo(heap))

		heap.Collect()

		printNonlocal(g)
	}()

	heap.Collect()
}
