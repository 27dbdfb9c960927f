package rootgc_test

import (
	"testing"

	"github.com/nocturnegc/rootgc"
	"github.com/stretchr/testify/assert"
)

func TestDefaultHeap_StableWithinOneGoroutine(t *testing.T) {
	defer rootgc.ForgetDefaultHeap()

	a := rootgc.DefaultHeap()
	b := rootgc.DefaultHeap()
	assert.Same(t, a, b)
}

func TestCollect_OperatesOnDefaultHeap(t *testing.T) {
	defer rootgc.ForgetDefaultHeap()

	heap := rootgc.DefaultHeap()
	root := rootgc.NewRoot(heap)
	rootgc.New(root, rootgc.NewLeaf(1))
	root.Pop()

	assert.Equal(t, 1, heap.CountManagedObjects())
	rootgc.Collect()
	assert.Equal(t, 0, heap.CountManagedObjects())
}
