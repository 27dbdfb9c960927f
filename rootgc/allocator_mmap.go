package rootgc

import (
	"fmt"
	"sync"
	"sync/atomic"
	"unsafe"

	"github.com/fmstephe/flib/fmath"
	"golang.org/x/sys/unix"
)

// MmapArena is an Allocator that, in addition to the usual bookkeeping,
// owns a pool of raw OS pages handed out to RawBuffer values: leaf payloads
// that need memory Go's own collector must never scan, because nothing at
// that address is a valid Go value.
//
// Grounded directly on pointerstore's slab allocator: MmapSlab/MunmapSlab's
// use of golang.org/x/sys/unix, and NewAllocConfigBySize's power-of-two
// rounding via flib/fmath, are reused here verbatim for the one case in this
// package where bypassing Go's heap is actually called for.
type MmapArena struct {
	mu      sync.Mutex
	regions []mmapRegion

	allocs atomic.Uint64
	frees  atomic.Uint64
}

type mmapRegion struct {
	addr uintptr
	size int
}

// NewMmapArena returns a fresh, empty MmapArena.
func NewMmapArena() *MmapArena {
	return &MmapArena{}
}

func (a *MmapArena) Acquire() {
	a.allocs.Add(1)
}

func (a *MmapArena) Release() {
	a.frees.Add(1)
}

func (a *MmapArena) Stats() Stats {
	allocs := a.allocs.Load()
	frees := a.frees.Load()
	return Stats{Allocs: int(allocs), Frees: int(frees), Live: int(allocs - frees)}
}

// reserve mmaps a region of at least size bytes, rounded up to the next
// power of two the way NewAllocConfigBySize rounds slab sizes, and returns
// its base address as a uintptr rather than an unsafe.Pointer or slice — the
// address is deliberately stored as an integer everywhere in this package so
// that Go's collector is never asked to follow it, since it was never
// allocated by Go.
func (a *MmapArena) reserve(size int) uintptr {
	rounded := int(fmath.NxtPowerOfTwo(int64(size)))
	if rounded < size {
		rounded = size
	}

	data, err := unix.Mmap(-1, 0, rounded, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		panic(fmt.Errorf("rootgc: mmap %d bytes failed: %w", rounded, err))
	}
	addr := uintptr(unsafe.Pointer(&data[0]))

	a.mu.Lock()
	a.regions = append(a.regions, mmapRegion{addr: addr, size: rounded})
	a.mu.Unlock()

	return addr
}

// release munmaps the region starting at addr.
func (a *MmapArena) release(addr uintptr) {
	a.mu.Lock()
	var region mmapRegion
	kept := a.regions[:0]
	for _, r := range a.regions {
		if r.addr == addr {
			region = r
			continue
		}
		kept = append(kept, r)
	}
	a.regions = kept
	a.mu.Unlock()

	if region.size == 0 {
		return
	}
	b := unsafe.Slice((*byte)(unsafe.Pointer(addr)), region.size)
	if err := unix.Munmap(b); err != nil {
		panic(fmt.Errorf("rootgc: munmap failed: %w", err))
	}
}

// RawBuffer is a NullTrace leaf backed by raw, un-managed OS memory rather
// than a plain Go value. It is released deterministically: unlike an
// ordinary Leaf, whose backing Allocation is reclaimed either by Collect or
// by Go's own collector running a finalizer, a RawBuffer's mmap'd pages are
// only released when its allocation is finalized, so it must always be
// constructed with an MmapArena allocator for the owning Root/GcState.
type RawBuffer struct {
	noopTrace
	arena *MmapArena
	addr  uintptr
	size  int
}

// NewRawBuffer reserves size bytes of raw memory from arena and wraps it as
// a NullTrace leaf.
func NewRawBuffer(arena *MmapArena, size int) RawBuffer {
	return RawBuffer{arena: arena, addr: arena.reserve(size), size: size}
}

func (b RawBuffer) isNullTrace() {}

// Bytes returns a slice viewing the buffer's memory directly. The slice is
// only valid until Finalize runs; callers must not retain it past the
// lifetime of the RawBuffer's owning allocation.
func (b RawBuffer) Bytes() []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(b.addr)), b.size)
}

// Finalize releases the buffer's backing pages. It implements Finalizer so
// newAllocation's finalizer (armed for unmanaged allocations, and run by
// Collect for managed ones) returns this memory to the OS.
func (b RawBuffer) Finalize() {
	b.arena.release(b.addr)
}

var (
	_ NullTrace = RawBuffer{}
	_ Finalizer = RawBuffer{}
)
