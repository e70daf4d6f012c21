package game

import (
	"log"
	"time"

	"consolefps/internal/threading/monitoring"
)

const (
	perfLowFpsThreshold = 30.0
	perfLowFpsDuration  = 3 * time.Second
	perfLogInterval     = 3 * time.Second
)

// perfWatch logs a snapshot when the frame rate stays below the threshold
// for perfLowFpsDuration. Snapshots are at least perfLogInterval apart.
type perfWatch struct {
	lowFpsSince time.Time
	lastPerfLog time.Time
	logged      int
}

// observe feeds one tick. It reports whether a snapshot was logged.
func (pw *perfWatch) observe(now time.Time, dt float64, monitor *monitoring.PerformanceMonitor, columns int) bool {
	if dt <= 0 {
		return false
	}

	fps := FrameRate(dt)
	if fps >= perfLowFpsThreshold {
		pw.lowFpsSince = time.Time{}
		pw.lastPerfLog = time.Time{}
		return false
	}

	if pw.lowFpsSince.IsZero() {
		pw.lowFpsSince = now
		return false
	}

	if now.Sub(pw.lowFpsSince) < perfLowFpsDuration {
		return false
	}

	if !pw.lastPerfLog.IsZero() && now.Sub(pw.lastPerfLog) < perfLogInterval {
		return false
	}

	pw.lastPerfLog = now
	pw.logged++
	logPerfSnapshot(fps, monitor.GetCurrentMetrics(), columns)
	return true
}

func logPerfSnapshot(fps float64, m monitoring.GameMetrics, columns int) {
	log.Printf("[PERF] FPS<%.0f for >=%s | fps=%.1f columns=%d", perfLowFpsThreshold, perfLowFpsDuration, fps, columns)
	log.Printf("[PERF] frame=%.2fms avg_frame=%.2fms peak_frame=%.2fms raycast=%.2fms budget=%.2fms",
		durationMs(m.LastFrameTime), durationMs(m.AverageFrameTime), durationMs(m.PeakFrameTime),
		durationMs(m.LastRaycastTime), frameBudgetMs(fps))
	log.Printf("[PERF] frames=%d rays=%d collisions=%d mem_alloc=%dMB",
		m.FrameCount, m.RaysCast, m.CollisionsDetected, m.MemoryUsageMB)
}

func frameBudgetMs(fps float64) float64 {
	if fps <= 0 {
		return 0
	}
	return 1000.0 / fps
}

func durationMs(d time.Duration) float64 {
	return float64(d.Microseconds()) / 1000.0
}
