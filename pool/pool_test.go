package pool

import (
	"sync/atomic"
	"testing"
)

func TestRangeVisitsEveryIndexExactlyOnce(t *testing.T) {
	const n = 500

	p := New(8)
	defer p.Close()

	var seen [n]int32

	p.Range(0, n, func(i int) {
		atomic.AddInt32(&seen[i], 1)
	})

	for i, count := range seen {
		if count != 1 {
			t.Fatalf("index %d visited %d times, want 1", i, count)
		}
	}
}

func TestRangeEmpty(t *testing.T) {
	p := New(4)
	defer p.Close()

	called := false
	p.Range(3, 3, func(int) { called = true })

	if called {
		t.Fatal("fn called on an empty range")
	}
}

func TestNewClampsNonPositiveWorkers(t *testing.T) {
	p := New(0)
	defer p.Close()

	if p.workers != 1 {
		t.Fatalf("workers = %d, want 1", p.workers)
	}
}

func TestSubmitWait(t *testing.T) {
	p := New(3)
	defer p.Close()

	var total int64
	for i := 1; i <= 100; i++ {
		i := int64(i)
		p.Submit(func() { atomic.AddInt64(&total, i) })
	}
	p.Wait()

	if total != 5050 {
		t.Fatalf("total = %d, want 5050", total)
	}
}
