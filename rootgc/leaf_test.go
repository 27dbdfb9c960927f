package rootgc_test

import (
	"fmt"
	"testing"

	"github.com/nocturnegc/rootgc"
	"github.com/stretchr/testify/assert"
)

func ExampleNewLeaf() {
	l := rootgc.NewLeaf(42)
	fmt.Println(l.Data)
	// Output: 42
}

type plainStruct struct {
	A int
	B [4]byte
	C uint
}

func TestNewLeaf_PlainDataSucceeds(t *testing.T) {
	assert.NotPanics(t, func() {
		rootgc.NewLeaf(plainStruct{A: 1, C: 2})
	})
}

// A string, slice, map or plain pointer is safe NullTrace data: none of them
// can hide a rootgc-managed reference, and Go's own collector already keeps
// whatever they point at alive on its own.
func TestNewLeaf_OrdinaryReferenceKindsAreAllowed(t *testing.T) {
	assert.NotPanics(t, func() { rootgc.NewLeaf("a plain string") })
	assert.NotPanics(t, func() { rootgc.NewLeaf([]int{1, 2, 3}) })
	assert.NotPanics(t, func() { rootgc.NewLeaf(map[string]int{"a": 1}) })

	type withPlainPointer struct {
		Next *withPlainPointer
	}
	assert.NotPanics(t, func() { rootgc.NewLeaf(withPlainPointer{}) })
}

func TestNewLeaf_TraceImplementingPointerFieldPanics(t *testing.T) {
	type holdsNode struct {
		N *Node
	}
	assert.Panics(t, func() {
		rootgc.NewLeaf(holdsNode{})
	})
}

func TestNewLeaf_GcFieldPanics(t *testing.T) {
	type holdsGc struct {
		G rootgc.Gc[rootgc.Leaf[int]]
	}
	assert.Panics(t, func() {
		rootgc.NewLeaf(holdsGc{})
	})
}

func TestNewLeaf_GcStoreFieldPanics(t *testing.T) {
	type holdsStore struct {
		S rootgc.GcStore[rootgc.Leaf[int]]
	}
	assert.Panics(t, func() {
		rootgc.NewLeaf(holdsStore{})
	})
}

func TestNewLeaf_InterfaceFieldPanics(t *testing.T) {
	type withInterface struct {
		V any
	}
	assert.Panics(t, func() {
		rootgc.NewLeaf(withInterface{})
	})
}

func TestNewLeaf_ChanAndFuncFieldsPanic(t *testing.T) {
	type withChan struct {
		C chan int
	}
	type withFunc struct {
		F func()
	}
	assert.Panics(t, func() { rootgc.NewLeaf(withChan{}) })
	assert.Panics(t, func() { rootgc.NewLeaf(withFunc{}) })
}

func TestNewLeaf_UintptrFieldAllowed(t *testing.T) {
	type withAddr struct {
		Addr uintptr
	}
	assert.NotPanics(t, func() {
		rootgc.NewLeaf(withAddr{})
	})
}
