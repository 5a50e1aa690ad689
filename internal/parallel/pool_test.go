package parallel

import (
	"errors"
	"fmt"
	"runtime"
	"sync/atomic"
	"testing"
	"time"
)

func TestPool_Create(t *testing.T) {
	pool := NewPool(4)
	if pool.Workers() != 4 {
		t.Errorf("Workers() = %d, want 4", pool.Workers())
	}
}

func TestPool_CreateDefaultWorkers(t *testing.T) {
	expected := runtime.GOMAXPROCS(0)
	for _, n := range []int{0, -5} {
		if got := NewPool(n).Workers(); got != expected {
			t.Errorf("NewPool(%d).Workers() = %d, want %d (GOMAXPROCS)", n, got, expected)
		}
	}
}

func TestPool_ForEach(t *testing.T) {
	tests := []struct {
		name    string
		workers int
		items   int
	}{
		{"empty", 4, 0},
		{"single item", 4, 1},
		{"single worker", 1, 50},
		{"more workers than items", 16, 3},
		{"many items", 4, 1000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := NewPool(tt.workers)
			seen := make([]atomic.Int32, tt.items)
			err := pool.ForEach(tt.items, func(i int) error {
				seen[i].Add(1)
				return nil
			})
			if err != nil {
				t.Fatalf("ForEach() = %v", err)
			}
			for i := range seen {
				if n := seen[i].Load(); n != 1 {
					t.Errorf("item %d ran %d times, want 1", i, n)
				}
			}
		})
	}
}

func TestPool_ForEachLowestError(t *testing.T) {
	pool := NewPool(8)
	var ran atomic.Int32
	err := pool.ForEach(100, func(i int) error {
		ran.Add(1)
		if i%10 == 7 {
			// Later failures finish first.
			time.Sleep(time.Duration(100-i) * 10 * time.Microsecond)
			return fmt.Errorf("item %d", i)
		}
		return nil
	})
	if err == nil || err.Error() != "item 7" {
		t.Errorf("ForEach() = %v, want item 7", err)
	}
	if ran.Load() != 100 {
		t.Errorf("ran %d items, want 100", ran.Load())
	}
}

func TestPool_ForEachSequentialError(t *testing.T) {
	boom := errors.New("boom")
	err := NewPool(1).ForEach(3, func(i int) error {
		if i == 1 {
			return boom
		}
		return nil
	})
	if !errors.Is(err, boom) {
		t.Errorf("ForEach() = %v, want boom", err)
	}
}

func TestPool_ForEachRunsConcurrently(t *testing.T) {
	if runtime.GOMAXPROCS(0) < 2 {
		t.Skip("needs at least 2 procs")
	}
	pool := NewPool(4)
	var active, peak atomic.Int32
	_ = pool.ForEach(8, func(int) error {
		n := active.Add(1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		time.Sleep(5 * time.Millisecond)
		active.Add(-1)
		return nil
	})
	if peak.Load() < 2 {
		t.Errorf("peak concurrency = %d, want >= 2", peak.Load())
	}
}

func TestPool_ForEachRespectsWorkerLimit(t *testing.T) {
	pool := NewPool(3)
	var active, peak atomic.Int32
	err := pool.ForEach(30, func(int) error {
		n := active.Add(1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		time.Sleep(time.Millisecond)
		active.Add(-1)
		return nil
	})
	if err != nil {
		t.Fatalf("ForEach() = %v", err)
	}
	if peak.Load() > 3 {
		t.Errorf("peak concurrency = %d, want <= 3", peak.Load())
	}
}

func BenchmarkPool_ForEach(b *testing.B) {
	pool := NewPool(0)
	var sink atomic.Int64
	b.ReportAllocs()
	for n := 0; n < b.N; n++ {
		_ = pool.ForEach(256, func(i int) error {
			sink.Add(int64(i))
			return nil
		})
	}
}
