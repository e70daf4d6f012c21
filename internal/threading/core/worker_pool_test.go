package core

import (
	"sync/atomic"
	"testing"
)

func TestWorkerPool_Submit(t *testing.T) {
	pool := NewWorkerPool(4)
	pool.Start()
	defer pool.Stop()

	if pool.GetNumWorkers() != 4 {
		t.Fatalf("Expected 4 workers, got %d", pool.GetNumWorkers())
	}

	var counter atomic.Int64
	for i := 0; i < 100; i++ {
		pool.Submit(func() { counter.Add(1) })
	}
	pool.Wait()

	if counter.Load() != 100 {
		t.Errorf("Expected 100 completed jobs, got %d", counter.Load())
	}
}

func TestWorkerPool_ParallelFor(t *testing.T) {
	pool := CreateDefaultWorkerPool()
	defer pool.Stop()

	for _, chunk := range []int{0, 1, 7, 32, 500} {
		results := make([]int, 257)
		pool.ParallelFor(0, len(results), chunk, func(i int) {
			results[i] = i * 2
		})

		for i, v := range results {
			if v != i*2 {
				t.Fatalf("chunk=%d: index %d: expected %d, got %d", chunk, i, i*2, v)
			}
		}
	}

	// Empty range is a no-op
	pool.ParallelFor(5, 5, 4, func(int) { t.Error("fn should not run for an empty range") })
}

func TestWorkerPool_StopTwice(t *testing.T) {
	pool := NewWorkerPool(1)
	pool.Start()
	pool.Stop()
	pool.Stop()
}

func TestNewWorkerPool_DefaultsToCPUCount(t *testing.T) {
	pool := NewWorkerPool(0)
	if pool.GetNumWorkers() <= 0 {
		t.Errorf("Expected positive worker count, got %d", pool.GetNumWorkers())
	}
}
