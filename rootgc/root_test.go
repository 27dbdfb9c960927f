package rootgc_test

import (
	"testing"

	"github.com/nocturnegc/rootgc"
	"github.com/stretchr/testify/assert"
)

func newHeap() *rootgc.GcState {
	return rootgc.NewGcState(rootgc.NewGlobalAllocator())
}

func TestRoot_SimpleRetention(t *testing.T) {
	heap := newHeap()

	root := rootgc.NewRoot(heap)
	g := rootgc.New(root, rootgc.NewLeaf(7))

	heap.Collect()

	assert.Equal(t, 7, g.Value().Data)
	assert.Equal(t, 1, heap.CountManagedObjects())

	root.Pop()
	heap.Collect()
	assert.Equal(t, 0, heap.CountManagedObjects())
}

func TestRoot_UnreachedIsSwept(t *testing.T) {
	heap := newHeap()

	func() {
		root := rootgc.NewRoot(heap)
		defer root.Pop()
		rootgc.New(root, rootgc.NewLeaf("transient"))
		assert.Equal(t, 1, heap.CountManagedObjects())
	}()

	heap.Collect()
	assert.Equal(t, 0, heap.CountManagedObjects())
}

func TestRoot_ValuePanicsAfterPop(t *testing.T) {
	heap := newHeap()

	root := rootgc.NewRoot(heap)
	g := rootgc.New(root, rootgc.NewLeaf(1))
	root.Pop()

	assert.Panics(t, func() {
		g.Value()
	})
}

func TestRoot_PopOutOfOrderPanics(t *testing.T) {
	heap := newHeap()

	outer := rootgc.NewRoot(heap)
	_ = rootgc.NewRoot(heap)

	assert.Panics(t, func() {
		outer.Pop()
	})
}

func TestRoot_NewTwicePanics(t *testing.T) {
	heap := newHeap()

	root := rootgc.NewRoot(heap)
	defer root.Pop()
	rootgc.New(root, rootgc.NewLeaf(1))

	assert.Panics(t, func() {
		rootgc.New(root, rootgc.NewLeaf(2))
	})
}

func TestReroot_TransfersValidity(t *testing.T) {
	heap := newHeap()

	outer := rootgc.NewRoot(heap)
	defer outer.Pop()

	g := func() rootgc.Gc[rootgc.Leaf[int]] {
		inner := rootgc.NewRoot(heap)
		defer inner.Pop()
		g := rootgc.New(inner, rootgc.NewLeaf(99))
		return rootgc.Reroot(outer, g)
	}()

	assert.Equal(t, 99, g.Value().Data)

	heap.Collect()
	assert.Equal(t, 1, heap.CountManagedObjects())
	assert.Equal(t, 99, g.Value().Data)
}

func TestGcStore_GetBeforeRootedSucceeds(t *testing.T) {
	heap := newHeap()
	store := rootgc.NewStore[rootgc.Leaf[int]](heap, rootgc.NewLeaf(3))

	assert.Equal(t, 3, store.Get().Data)

	v, ok := store.GetMaybe()
	assert.True(t, ok)
	assert.Equal(t, 3, v.Data)
}

func TestGcStore_GetAfterRootedPanics(t *testing.T) {
	heap := newHeap()

	root := rootgc.NewRoot(heap)
	defer root.Pop()

	store := rootgc.NewStore[rootgc.Leaf[int]](heap, rootgc.NewLeaf(3))
	g := rootgc.New(root, store)

	assert.Panics(t, func() {
		store.Get()
	})

	_, ok := store.GetMaybe()
	assert.False(t, ok)

	assert.Equal(t, 3, rootgc.FieldGc(g, store).Value().Data)
}
