package rootgc

import "sync/atomic"

// Allocator owns the bookkeeping for one category of allocation: it is
// notified when an allocation is placed and when it is released, and reports
// stats across its lifetime.
//
// An Allocation's allocator is not responsible for choosing where the
// allocation's memory lives — Go's own allocator always places an
// Allocation[T] on the normal, garbage-collected Go heap, because user Trace
// implementations are ordinary Go code that may legally hold real pointers,
// interfaces, maps and strings inside NullTrace leaves. An Allocator's job
// is purely accounting, plus, for MmapArena, owning the raw OS pages that
// RawBuffer values wrap.
type Allocator interface {
	// Acquire is called once, when an allocation is placed.
	Acquire()

	// Release is called once, when an allocation's storage is about to be
	// freed (either by sweep, for a managed allocation, or by Go's own
	// garbage collector, for one that was discarded while still
	// unmanaged).
	Release()

	// Stats reports the allocator's bookkeeping totals.
	Stats() Stats
}

// Stats reports the running totals an Allocator has observed.
type Stats struct {
	Allocs int
	Frees  int
	Live   int
}

// GlobalAllocator is the default Allocator: a single set of atomic counters
// shared by every allocation that uses it. Grounded on
// pointerstore.Store's allocs/frees/reused atomic counters, simplified
// because there are no slabs to manage — placement is always a plain Go
// allocation.
type GlobalAllocator struct {
	allocs atomic.Uint64
	frees  atomic.Uint64
}

// NewGlobalAllocator returns a fresh GlobalAllocator with zeroed counters.
func NewGlobalAllocator() *GlobalAllocator {
	return &GlobalAllocator{}
}

func (a *GlobalAllocator) Acquire() {
	a.allocs.Add(1)
}

func (a *GlobalAllocator) Release() {
	a.frees.Add(1)
}

func (a *GlobalAllocator) Stats() Stats {
	allocs := a.allocs.Load()
	frees := a.frees.Load()
	return Stats{
		Allocs: int(allocs),
		Frees:  int(frees),
		Live:   int(allocs - frees),
	}
}
