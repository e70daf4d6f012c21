package monitoring

import (
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
	"time"
)

// PerformanceMonitor tracks frame and ray-casting timings for the render loop
type PerformanceMonitor struct {
	// Frame metrics
	frameCount atomic.Uint64
	frameTime  atomic.Uint64 // nanoseconds

	// Rendering metrics
	raycastTime atomic.Uint64
	raysCast    atomic.Uint64

	// Movement metrics
	collisionsDetected atomic.Uint64

	// Statistics
	mutex         sync.RWMutex
	avgFrameTime  float64 // nanoseconds, running mean over all frames
	peakFrameTime uint64
	startTime     time.Time

	// Configuration
	enableDetailed bool
}

// NewPerformanceMonitor creates a new performance monitor
func NewPerformanceMonitor() *PerformanceMonitor {
	return &PerformanceMonitor{
		startTime:      time.Now(),
		enableDetailed: true,
	}
}

// FrameTimer helps measure frame timing
type FrameTimer struct {
	monitor   *PerformanceMonitor
	startTime time.Time
}

// StartFrame begins frame timing
func (pm *PerformanceMonitor) StartFrame() *FrameTimer {
	return &FrameTimer{
		monitor:   pm,
		startTime: time.Now(),
	}
}

// EndFrame completes frame timing
func (ft *FrameTimer) EndFrame() {
	ft.monitor.recordFrame(time.Since(ft.startTime))
}

func (pm *PerformanceMonitor) recordFrame(d time.Duration) {
	ns := uint64(d.Nanoseconds())
	pm.frameTime.Store(ns)
	count := pm.frameCount.Add(1)

	if !pm.enableDetailed {
		return
	}

	pm.mutex.Lock()
	pm.avgFrameTime += (float64(ns) - pm.avgFrameTime) / float64(count)
	if ns > pm.peakFrameTime {
		pm.peakFrameTime = ns
	}
	pm.mutex.Unlock()
}

// RaycastTimer helps measure raycasting performance
type RaycastTimer struct {
	monitor   *PerformanceMonitor
	startTime time.Time
	rays      int
}

// StartRaycast begins timing a pass that casts the given number of rays
func (pm *PerformanceMonitor) StartRaycast(rays int) *RaycastTimer {
	return &RaycastTimer{
		monitor:   pm,
		startTime: time.Now(),
		rays:      rays,
	}
}

// EndRaycast completes raycast timing
func (rt *RaycastTimer) EndRaycast() {
	raycastTime := time.Since(rt.startTime)
	rt.monitor.raycastTime.Store(uint64(raycastTime.Nanoseconds()))
	rt.monitor.raysCast.Add(uint64(rt.rays))
}

// RecordCollision counts a movement step that was reverted by a wall
func (pm *PerformanceMonitor) RecordCollision() {
	pm.collisionsDetected.Add(1)
}

// GameMetrics is a snapshot of the monitor's counters
type GameMetrics struct {
	FrameCount         uint64
	RaysCast           uint64
	CollisionsDetected uint64
	FramesPerSecond    float64
	LastFrameTime      time.Duration
	AverageFrameTime   time.Duration
	PeakFrameTime      time.Duration
	LastRaycastTime    time.Duration
	MemoryUsageMB      uint64
}

// GetCurrentMetrics returns current performance metrics
func (pm *PerformanceMonitor) GetCurrentMetrics() GameMetrics {
	pm.mutex.RLock()
	defer pm.mutex.RUnlock()

	// Calculate FPS
	frameTime := pm.frameTime.Load()
	fps := 0.0
	if frameTime > 0 {
		fps = 1000000000.0 / float64(frameTime) // Convert nanoseconds to FPS
	}

	// Get memory usage
	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)
	memoryMB := memStats.Alloc / 1024 / 1024

	return GameMetrics{
		FrameCount:         pm.frameCount.Load(),
		RaysCast:           pm.raysCast.Load(),
		CollisionsDetected: pm.collisionsDetected.Load(),
		FramesPerSecond:    fps,
		LastFrameTime:      time.Duration(frameTime),
		AverageFrameTime:   time.Duration(pm.avgFrameTime),
		PeakFrameTime:      time.Duration(pm.peakFrameTime),
		LastRaycastTime:    time.Duration(pm.raycastTime.Load()),
		MemoryUsageMB:      memoryMB,
	}
}

// Uptime returns the time since the monitor was created or last reset
func (pm *PerformanceMonitor) Uptime() time.Duration {
	pm.mutex.RLock()
	defer pm.mutex.RUnlock()
	return time.Since(pm.startTime)
}

// Summary formats the counters as a single log line
func (pm *PerformanceMonitor) Summary() string {
	m := pm.GetCurrentMetrics()
	return fmt.Sprintf("frames=%d rays=%d collisions=%d avg_frame=%v peak_frame=%v uptime=%v",
		m.FrameCount, m.RaysCast, m.CollisionsDetected,
		m.AverageFrameTime.Round(time.Microsecond), m.PeakFrameTime.Round(time.Microsecond),
		pm.Uptime().Round(time.Millisecond))
}

// Reset clears all counters
func (pm *PerformanceMonitor) Reset() {
	pm.frameCount.Store(0)
	pm.frameTime.Store(0)
	pm.raycastTime.Store(0)
	pm.raysCast.Store(0)
	pm.collisionsDetected.Store(0)

	pm.mutex.Lock()
	pm.avgFrameTime = 0
	pm.peakFrameTime = 0
	pm.startTime = time.Now()
	pm.mutex.Unlock()
}
