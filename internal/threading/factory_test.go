package threading

import "testing"

func TestNewThreadingComponents(t *testing.T) {
	tc := NewThreadingComponents(false)
	if tc.ParallelRenderer != nil {
		t.Error("Expected no parallel renderer when parallel columns are disabled")
	}
	if tc.PerformanceMonitor == nil {
		t.Fatal("Expected a performance monitor")
	}
	tc.Shutdown()

	tc = NewThreadingComponents(true)
	if tc.ParallelRenderer == nil {
		t.Fatal("Expected a parallel renderer when parallel columns are enabled")
	}
	tc.Shutdown()
	if tc.ParallelRenderer != nil {
		t.Error("Expected Shutdown to release the parallel renderer")
	}
	tc.Shutdown()
}
