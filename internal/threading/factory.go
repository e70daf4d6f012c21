package threading

import (
	"log"

	"consolefps/internal/threading/monitoring"
	"consolefps/internal/threading/rendering"
)

// ThreadingComponents holds all threading-related components
type ThreadingComponents struct {
	ParallelRenderer   *rendering.ParallelRenderer // nil when columns render on the caller's goroutine
	PerformanceMonitor *monitoring.PerformanceMonitor
}

// NewThreadingComponents creates the components the render loop needs.
// The worker pool is only started when parallel column rendering is enabled.
func NewThreadingComponents(parallelColumns bool) *ThreadingComponents {
	tc := &ThreadingComponents{
		PerformanceMonitor: monitoring.NewPerformanceMonitor(),
	}
	if parallelColumns {
		tc.ParallelRenderer = rendering.NewParallelRenderer()
		log.Printf("[Threading] Parallel column rendering enabled")
	}
	return tc
}

// Shutdown gracefully shuts down all threading components
func (tc *ThreadingComponents) Shutdown() {
	if tc.ParallelRenderer != nil {
		tc.ParallelRenderer.Stop()
		tc.ParallelRenderer = nil
	}
}
