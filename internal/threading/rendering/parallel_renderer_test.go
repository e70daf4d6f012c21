package rendering

import (
	"sync/atomic"
	"testing"

	"consolefps/internal/threading/core"
)

func TestRenderColumns_VisitsEachColumnOnce(t *testing.T) {
	pr := NewParallelRenderer()
	defer pr.Stop()

	for _, n := range []int{0, 1, 8, 9, 120, 1001} {
		visits := make([]atomic.Int32, n)
		pr.RenderColumns(n, func(column int) {
			visits[column].Add(1)
		})
		for i := range visits {
			if got := visits[i].Load(); got != 1 {
				t.Fatalf("n=%d: column %d visited %d times", n, i, got)
			}
		}
	}
}

func TestRenderColumns_SingleWorker(t *testing.T) {
	pool := core.NewWorkerPool(1)
	pool.Start()
	pr := NewParallelRendererWithPool(pool)
	defer pr.Stop()

	out := make([]int, 64)
	pr.RenderColumns(len(out), func(column int) {
		out[column] = column + 1
	})
	for i, v := range out {
		if v != i+1 {
			t.Fatalf("Column %d: expected %d, got %d", i, i+1, v)
		}
	}
}
