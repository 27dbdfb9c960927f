package gls

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestID_StableWithinOneCall(t *testing.T) {
	a := ID()
	b := ID()
	assert.Equal(t, a, b)
}

func TestID_DistinctAcrossGoroutines(t *testing.T) {
	const n = 8

	ids := make([]uint64, n)
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		i := i
		go func() {
			defer wg.Done()
			ids[i] = ID()
		}()
	}
	wg.Wait()

	seen := map[uint64]bool{}
	for _, id := range ids {
		assert.False(t, seen[id], "goroutine ids must be distinct")
		seen[id] = true
	}
}
