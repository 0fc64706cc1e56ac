// Package pool_test verifies WorkerPool is safe under concurrent Range calls
// from multiple goroutines sharing the same pool.
package pool_test

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"scaffolder/pool"
)

// TestConcurrentRangeCallsAreSafe runs several Range calls against the same
// pool concurrently and checks every index across every call was visited
// exactly once, with no lost or duplicated work.
func TestConcurrentRangeCallsAreSafe(t *testing.T) {
	p := pool.New(4)
	defer p.Close()

	const calls = 20
	const n = 50

	var wg sync.WaitGroup
	wg.Add(calls)

	counts := make([][]int32, calls)
	for c := range counts {
		counts[c] = make([]int32, n)
	}

	for c := 0; c < calls; c++ {
		go func(c int) {
			defer wg.Done()
			p.Range(0, n, func(i int) {
				atomic.AddInt32(&counts[c][i], 1)
			})
		}(c)
	}
	wg.Wait()

	for c := 0; c < calls; c++ {
		for i := 0; i < n; i++ {
			require.EqualValues(t, 1, counts[c][i], "call %d index %d visited %d times", c, i, counts[c][i])
		}
	}
}
