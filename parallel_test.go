package covey

import (
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
)

// ============================================================================
// Coverage Tests
// ============================================================================

func TestForEachIndex_Coverage(t *testing.T) {
	sizes := []int{0, 1, 2, 3, 7, 64, 100, 1000, 1001}

	for _, n := range sizes {
		n := n
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			pool := NewPool()
			pool.Start(4)
			defer pool.Terminate()

			visited := make([]int32, n)
			err := ForEachIndex(pool, n, func(i int) {
				atomic.AddInt32(&visited[i], 1)
			})
			if err != nil {
				t.Fatalf("ForEachIndex() error = %v", err)
			}

			for i, count := range visited {
				if count != 1 {
					t.Errorf("Index %d visited %d times, want exactly once", i, count)
				}
			}
		})
	}
}

func TestForEachIndex_EmptyRange(t *testing.T) {
	pool := NewPool()
	pool.Start(4)
	defer pool.Terminate()

	calls := 0
	if err := ForEachIndex(pool, 0, func(int) { calls++ }); err != nil {
		t.Fatalf("ForEachIndex() error = %v", err)
	}

	if calls != 0 {
		t.Errorf("Expected no calls for empty range, got %d", calls)
	}
	if stats := pool.Stats(); stats.Submitted != 0 {
		t.Errorf("Expected no jobs submitted for empty range, got %d", stats.Submitted)
	}
}

func TestForEachIndex_SequentialFallback(t *testing.T) {
	pool := NewPool()
	pool.Start(4)
	defer pool.Terminate()

	// The whole range fits in one minimum-size chunk, so everything runs
	// on the calling goroutine: no jobs are submitted, and indices are
	// visited strictly in order.
	const n = 50
	var order []int
	err := ForEachIndex(pool, n, func(i int) {
		order = append(order, i)
	}, WithMinChunkSize(100))
	if err != nil {
		t.Fatalf("ForEachIndex() error = %v", err)
	}

	if stats := pool.Stats(); stats.Submitted != 0 {
		t.Errorf("Expected no jobs submitted, got %d", stats.Submitted)
	}
	if len(order) != n {
		t.Fatalf("Expected %d calls, got %d", n, len(order))
	}
	for i, v := range order {
		if v != i {
			t.Fatalf("Sequential fallback out of order at %d: got %d", i, v)
		}
	}
}

// ============================================================================
// Partitioning Tests
// ============================================================================

func TestForEachIndex_ChunkCounts(t *testing.T) {
	tests := []struct {
		name     string
		workers  int
		opts     []ForOption
		n        int
		wantJobs uint64
	}{
		{
			name:     "even split",
			workers:  2,
			n:        10,
			wantJobs: 2,
		},
		{
			name:     "schedule factor multiplies chunks",
			workers:  2,
			opts:     []ForOption{WithScheduleFactor(2)},
			n:        10,
			wantJobs: 5,
		},
		{
			name:     "truncated final chunk",
			workers:  2,
			opts:     []ForOption{WithScheduleFactor(2)},
			n:        11,
			wantJobs: 6,
		},
		{
			name:     "one chunk per worker",
			workers:  4,
			n:        1000,
			wantJobs: 4,
		},
		{
			name:     "min chunk size caps chunk count",
			workers:  4,
			opts:     []ForOption{WithMinChunkSize(4)},
			n:        10,
			wantJobs: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := NewPool()
			pool.Start(tt.workers)
			defer pool.Terminate()

			visited := make([]int32, tt.n)
			err := ForEachIndex(pool, tt.n, func(i int) {
				atomic.AddInt32(&visited[i], 1)
			}, tt.opts...)
			if err != nil {
				t.Fatalf("ForEachIndex() error = %v", err)
			}

			if stats := pool.Stats(); stats.Submitted != tt.wantJobs {
				t.Errorf("Expected %d chunk jobs, got %d", tt.wantJobs, stats.Submitted)
			}
			for i, count := range visited {
				if count != 1 {
					t.Errorf("Index %d visited %d times, want exactly once", i, count)
				}
			}
		})
	}
}

// ============================================================================
// Precondition Tests
// ============================================================================

func TestForEachIndex_ZeroScheduleFactor_Panics(t *testing.T) {
	pool := NewPool()
	pool.Start(2)
	defer pool.Terminate()

	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic on zero schedule factor")
		}
	}()
	ForEachIndex(pool, 10, func(int) {}, WithScheduleFactor(0))
}

func TestForEachIndex_ZeroMinChunkSize_Panics(t *testing.T) {
	pool := NewPool()
	pool.Start(2)
	defer pool.Terminate()

	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic on zero minimum chunk size")
		}
	}()
	ForEachIndex(pool, 10, func(int) {}, WithMinChunkSize(0))
}

func TestForEachIndex_TerminatedPool(t *testing.T) {
	pool := NewPool()
	pool.Start(2)
	pool.Terminate()

	err := ForEachIndex(pool, 100, func(int) {})
	if !errors.Is(err, ErrPoolTerminated) {
		t.Errorf("Expected ErrPoolTerminated, got %v", err)
	}
}

// ============================================================================
// ForEach Tests
// ============================================================================

func TestForEach_SharedCounter(t *testing.T) {
	pool := NewPool()
	pool.Start(4)
	defer pool.Terminate()

	elements := make([]int, 1000)
	var counter atomic.Int64
	err := ForEach(pool, elements, func(*int) {
		counter.Add(1)
	})
	if err != nil {
		t.Fatalf("ForEach() error = %v", err)
	}

	if counter.Load() != 1000 {
		t.Errorf("Expected counter = 1000, got %d", counter.Load())
	}
}

func TestForEach_MutatesElements(t *testing.T) {
	pool := NewPool()
	pool.Start(4)
	defer pool.Terminate()

	values := make([]int, 256)
	for i := range values {
		values[i] = i
	}

	err := ForEach(pool, values, func(v *int) {
		*v *= 2
	})
	if err != nil {
		t.Fatalf("ForEach() error = %v", err)
	}

	for i, v := range values {
		if v != i*2 {
			t.Errorf("values[%d] = %d, want %d", i, v, i*2)
		}
	}
}

func TestForEach_EmptySlice(t *testing.T) {
	pool := NewPool()
	pool.Start(4)
	defer pool.Terminate()

	calls := 0
	if err := ForEach(pool, []string{}, func(*string) { calls++ }); err != nil {
		t.Fatalf("ForEach() error = %v", err)
	}
	if calls != 0 {
		t.Errorf("Expected no calls for empty slice, got %d", calls)
	}
}

func TestForEach_BackToBackCalls(t *testing.T) {
	pool := NewPool()
	pool.Start(4)
	defer pool.Terminate()

	values := make([]int, 500)
	for pass := 0; pass < 3; pass++ {
		err := ForEach(pool, values, func(v *int) {
			*v++
		})
		if err != nil {
			t.Fatalf("ForEach() pass %d error = %v", pass, err)
		}
	}

	for i, v := range values {
		if v != 3 {
			t.Errorf("values[%d] = %d after 3 passes, want 3", i, v)
		}
	}
}
