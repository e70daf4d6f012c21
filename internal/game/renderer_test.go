package game

import (
	"strings"
	"testing"

	"consolefps/internal/config"
	"consolefps/internal/frame"
	"consolefps/internal/threading"
	"consolefps/internal/world"
)

func newTestRenderer(showMap, showStats bool, tc *threading.ThreadingComponents) *Renderer {
	cfg := config.DefaultConfig()
	cfg.Render.ShowMap = showMap
	cfg.Render.ShowStats = showStats
	return NewRenderer(cfg, tc)
}

func TestFrameRate(t *testing.T) {
	if FrameRate(0) != 0 || FrameRate(-1) != 0 {
		t.Error("Expected FPS 0 for non-positive dt")
	}
	if FrameRate(0.5) != 2 {
		t.Errorf("Expected FPS 2, got %v", FrameRate(0.5))
	}
}

func TestRenderFrame_ColumnsMatchShader(t *testing.T) {
	r := newTestRenderer(false, false, nil)
	grid := borderGrid()
	obs := NewObserver(2.5, 2.5, 0.2, 3.0)
	buf := frame.NewBuffer(24, 12)

	r.RenderFrame(buf, grid, obs, 0.1)

	if len(r.LastHits()) != 24 {
		t.Fatalf("Expected 24 hits, got %d", len(r.LastHits()))
	}

	for x := 0; x < buf.Width(); x++ {
		angle := RayAngle(obs.Angle, r.fov, x, buf.Width())
		want := r.shader.Shade(r.caster.Cast(grid, obs.X, obs.Y, angle), buf.Height())
		for y := 0; y < buf.Height(); y++ {
			got, err := buf.At(x, y)
			if err != nil {
				t.Fatal(err)
			}
			if got != want.Glyphs[y] {
				t.Fatalf("Cell (%d, %d): expected %q, got %q", x, y, want.Glyphs[y], got)
			}
		}
	}
}

func TestRenderFrame_ParallelMatchesSerial(t *testing.T) {
	tc := threading.NewThreadingComponents(true)
	defer tc.Shutdown()

	grid := borderGrid()
	obs := NewObserver(2.2, 1.7, -0.9, 3.0)

	serial := frame.NewBuffer(120, 40)
	parallel := frame.NewBuffer(120, 40)

	newTestRenderer(true, true, nil).RenderFrame(serial, grid, obs, 0.016)
	newTestRenderer(true, true, tc).RenderFrame(parallel, grid, obs, 0.016)

	if serial.String() != parallel.String() {
		t.Error("Parallel column rendering produced a different frame")
	}
}

func TestRenderFrame_StatusLine(t *testing.T) {
	r := newTestRenderer(false, true, nil)
	obs := NewObserver(2.5, 2.5, 0, 3.0)
	buf := frame.NewBuffer(60, 10)

	r.RenderFrame(buf, borderGrid(), obs, 0)

	row := string(buf.Row(0))
	if !strings.HasPrefix(row, "X=2.50, Y=2.50, A=0.00 FPS=0.00") {
		t.Errorf("Unexpected status line %q", row)
	}

	r.RenderFrame(buf, borderGrid(), obs, 0.5)
	if row := string(buf.Row(0)); !strings.Contains(row, "FPS=2.00") {
		t.Errorf("Expected FPS=2.00 in %q", row)
	}
}

func TestRenderFrame_StatusLineClipped(t *testing.T) {
	r := newTestRenderer(false, true, nil)
	buf := frame.NewBuffer(10, 4)

	r.RenderFrame(buf, borderGrid(), NewObserver(2.5, 2.5, 0, 3.0), 0)

	if row := string(buf.Row(0)); row != "X=2.50, Y=" {
		t.Errorf("Expected status line clipped to 10 glyphs, got %q", row)
	}
}

func TestRenderFrame_MiniMap(t *testing.T) {
	r := newTestRenderer(true, false, nil)
	grid := borderGrid()
	obs := NewObserver(2.5, 3.5, 0, 3.0)
	buf := frame.NewBuffer(30, 10)

	r.RenderFrame(buf, grid, obs, 0)

	// Grid row r lands on buffer row r+1
	for row, line := range grid.Rows() {
		got := string(buf.Row(row + 1)[:grid.Width()])
		want := line
		if row == 2 {
			want = "#..P#"
		}
		if got != want {
			t.Errorf("Map row %d: expected %q, got %q", row, want, got)
		}
	}
}

func TestRenderFrame_MiniMapClipped(t *testing.T) {
	r := newTestRenderer(true, true, nil)
	buf := frame.NewBuffer(3, 3)

	// Must not panic; only the visible corner of the map is drawn
	r.RenderFrame(buf, borderGrid(), NewObserver(2.5, 2.5, 0, 3.0), 0)

	if g, _ := buf.At(0, 1); g != '#' {
		t.Errorf("Expected wall symbol at (0, 1), got %q", g)
	}
	if g, _ := buf.At(1, 2); g != '.' {
		t.Errorf("Expected empty symbol at (1, 2), got %q", g)
	}
}

func TestRenderFrame_DefaultScene(t *testing.T) {
	cfg := config.DefaultConfig()
	r := NewRenderer(cfg, nil)
	buf := frame.NewBuffer(cfg.GetScreenWidth(), cfg.GetScreenHeight())
	obs := NewObserver(cfg.World.StartX, cfg.World.StartY, cfg.World.StartAngle, cfg.GetMoveSpeed())

	r.RenderFrame(buf, world.NewDefaultGrid(), obs, 0)

	// Observer at (14.7, 5.09) sits in grid row 14, column 5
	if g, _ := buf.At(5, 15); g != MarkerObserver {
		t.Errorf("Expected observer marker at (5, 15), got %q", g)
	}
	if row := string(buf.Row(0)); !strings.HasPrefix(row, "X=14.70, Y=5.09, A=0.00 FPS=0.00") {
		t.Errorf("Unexpected status line %q", row)
	}
}

func TestRenderFrame_OverlayCellsFlagged(t *testing.T) {
	r := newTestRenderer(true, true, nil)
	obs := NewObserver(2.5, 2.5, 0, 3.0)
	buf := frame.NewBuffer(60, 20)

	r.RenderFrame(buf, borderGrid(), obs, 0.1)

	if !buf.IsOverlay(0, 0) {
		t.Error("Status line should be overlay")
	}
	if !buf.IsOverlay(0, 1) || !buf.IsOverlay(2, 3) {
		t.Error("Inset map cells should be overlay")
	}
	// Bottom row is floor, far from the HUD
	if buf.IsOverlay(40, buf.Height()-1) {
		t.Error("Floor glyphs should not be overlay")
	}

	// Hiding the map lets the next frame's columns reclaim its cells
	r.ShowMap = false
	r.RenderFrame(buf, borderGrid(), obs, 0.1)
	if buf.IsOverlay(0, 1) {
		t.Error("Scene columns should clear last frame's map overlay")
	}
}
