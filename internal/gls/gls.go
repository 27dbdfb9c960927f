// Package gls extracts the calling goroutine's runtime-assigned id.
//
// Go deliberately has no goroutine-local storage. This package exists only to
// key the default-heap registry used by rootgc's package-level convenience
// functions (rootgc.DefaultHeap and friends) — every correctness-critical
// path in rootgc instead takes an explicit *rootgc.GcState, the same way
// every operation in the offheap/objectstore packages this module is built
// from takes an explicit *Store. Treat the id returned here as an opaque,
// goroutine-scoped key; it is not guaranteed stable across Go releases.
package gls

import (
	"bytes"
	"runtime"
	"strconv"
)

// ID returns an identifier for the calling goroutine, stable only for the
// lifetime of that goroutine.
func ID() uint64 {
	buf := make([]byte, 64)
	for {
		n := runtime.Stack(buf, false)
		if n < len(buf) {
			buf = buf[:n]
			break
		}
		buf = make([]byte, len(buf)*2)
	}

	id, ok := parseGoroutineID(buf)
	if !ok {
		panic("gls: could not parse goroutine id from runtime.Stack output")
	}
	return id
}

// parseGoroutineID extracts N from a stack trace that begins with
// "goroutine N [running]:".
func parseGoroutineID(stack []byte) (uint64, bool) {
	const prefix = "goroutine "
	if !bytes.HasPrefix(stack, []byte(prefix)) {
		return 0, false
	}
	rest := stack[len(prefix):]
	end := bytes.IndexByte(rest, ' ')
	if end < 0 {
		return 0, false
	}
	id, err := strconv.ParseUint(string(rest[:end]), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
