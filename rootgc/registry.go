package rootgc

import (
	"sync"

	"github.com/nocturnegc/rootgc/internal/gls"
)

// registry backs the package-level convenience functions (DefaultHeap and
// friends), giving every goroutine its own default GcState the first time it
// asks for one, without making GcState itself carry any implicit global
// state: every method on GcState still takes no receiver other than itself,
// and nothing here is reachable except through these wrappers.
var registry = struct {
	mu     sync.Mutex
	states map[uint64]*GcState
}{states: map[uint64]*GcState{}}

// DefaultHeap returns the calling goroutine's default heap, creating one
// backed by a GlobalAllocator the first time it is called from that
// goroutine.
func DefaultHeap() *GcState {
	id := gls.ID()

	registry.mu.Lock()
	defer registry.mu.Unlock()

	heap, ok := registry.states[id]
	if !ok {
		heap = NewGcState(NewGlobalAllocator())
		registry.states[id] = heap
	}
	return heap
}

// ForgetDefaultHeap drops the calling goroutine's default heap, if any, so a
// subsequent DefaultHeap call starts fresh. Intended for tests that must not
// leak state across goroutine-id reuse.
func ForgetDefaultHeap() {
	id := gls.ID()

	registry.mu.Lock()
	defer registry.mu.Unlock()
	delete(registry.states, id)
}

// Collect runs a collection pass on the calling goroutine's default heap.
func Collect() {
	DefaultHeap().Collect()
}
