package rendering

import (
	"consolefps/internal/mathutil"
	"consolefps/internal/threading/core"
)

// ParallelRenderer spreads per-column work over a worker pool. Each column
// index is handed to exactly one call of the column function, so callers can
// write results into their own slot without locking.
type ParallelRenderer struct {
	workerPool *core.WorkerPool
}

// NewParallelRenderer creates a new parallel renderer with one worker per CPU
func NewParallelRenderer() *ParallelRenderer {
	return NewParallelRendererWithPool(core.CreateDefaultWorkerPool())
}

// NewParallelRendererWithPool wraps an already started pool
func NewParallelRendererWithPool(pool *core.WorkerPool) *ParallelRenderer {
	return &ParallelRenderer{workerPool: pool}
}

// RenderColumns calls columnFunc for every column in [0, numColumns) and
// returns once all of them have finished.
func (pr *ParallelRenderer) RenderColumns(numColumns int, columnFunc func(column int)) {
	// Very small workloads: process inline to avoid synchronization overhead
	if numColumns <= 8 {
		for column := 0; column < numColumns; column++ {
			columnFunc(column)
		}
		return
	}

	// Between 4 and 32 columns per job
	batchSize := mathutil.IntClamp(numColumns/pr.workerPool.GetNumWorkers(), 4, 32)
	pr.workerPool.ParallelFor(0, numColumns, batchSize, columnFunc)
}

// Stop shuts down the parallel renderer
func (pr *ParallelRenderer) Stop() {
	pr.workerPool.Stop()
}
