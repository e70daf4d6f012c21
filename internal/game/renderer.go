package game

import (
	"consolefps/internal/config"
	"consolefps/internal/frame"
	"consolefps/internal/threading"
	"consolefps/internal/threading/monitoring"
	"consolefps/internal/threading/rendering"
	"consolefps/internal/world"
)

// Renderer assembles one text frame: a ray per column, shaded into glyphs,
// then the status line and inset map on top.
type Renderer struct {
	caster *Caster
	shader *Shader
	fov    float64

	parallel *rendering.ParallelRenderer // nil renders columns serially
	monitor  *monitoring.PerformanceMonitor

	// Per-column scratch, reused across frames. Each column only touches its own slot.
	hits    []RayHit
	columns [][]rune

	ShowMap   bool
	ShowStats bool
}

// NewRenderer creates a renderer from the camera and render settings. tc may be nil.
func NewRenderer(cfg *config.Config, tc *threading.ThreadingComponents) *Renderer {
	r := &Renderer{
		caster:    NewCaster(cfg.GetViewDistance(), cfg.Camera.StepSize, cfg.Camera.BoundaryThreshold),
		shader:    NewShader(cfg.GetViewDistance()),
		fov:       cfg.GetCameraFOV(),
		ShowMap:   cfg.Render.ShowMap,
		ShowStats: cfg.Render.ShowStats,
	}
	if tc != nil {
		r.parallel = tc.ParallelRenderer
		r.monitor = tc.PerformanceMonitor
	}
	return r
}

// RenderFrame fills buf for the observer's current pose. dt is the elapsed
// time of this tick and only feeds the FPS readout.
func (r *Renderer) RenderFrame(buf *frame.Buffer, grid *world.Grid, obs *Observer, dt float64) {
	width, height := buf.Width(), buf.Height()
	r.ensureScratch(width)

	if r.monitor != nil {
		timer := r.monitor.StartRaycast(width)
		defer timer.EndRaycast()
	}

	renderColumn := func(x int) {
		angle := RayAngle(obs.Angle, r.fov, x, width)
		hit := r.caster.Cast(grid, obs.X, obs.Y, angle)
		column := r.shader.ShadeInto(r.columns[x], hit, height)
		r.hits[x] = hit
		r.columns[x] = column.Glyphs
		_ = buf.SetColumn(x, column.Glyphs) // x is always in range
	}

	if r.parallel != nil {
		r.parallel.RenderColumns(width, renderColumn)
	} else {
		for x := 0; x < width; x++ {
			renderColumn(x)
		}
	}

	if r.ShowStats {
		drawStats(buf, obs, dt)
	}
	if r.ShowMap {
		drawMiniMap(buf, grid, obs)
	}
}

// LastHits returns the ray hits of the most recent frame, one per column
func (r *Renderer) LastHits() []RayHit {
	return r.hits
}

func (r *Renderer) ensureScratch(width int) {
	if len(r.hits) == width {
		return
	}
	r.hits = make([]RayHit, width)
	r.columns = make([][]rune, width)
}
