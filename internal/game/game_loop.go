package game

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"consolefps/internal/collision"
	"consolefps/internal/config"
	"consolefps/internal/frame"
	"consolefps/internal/game/keytracker"
	"consolefps/internal/input"
	"consolefps/internal/threading"
	"consolefps/internal/world"
)

// ErrQuit is returned by Tick when the quit key was pressed
var ErrQuit = errors.New("quit requested")

// Clock supplies the tick timestamps. It must be monotonic.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// Presenter shows a fully assembled frame. It is called synchronously once per tick.
type Presenter interface {
	Present(buf *frame.Buffer) error
}

// SoundPlayer gives audible feedback for movement events
type SoundPlayer interface {
	PlayBump()
}

// LoopDeps are the collaborators a Loop is driven by. Sound and Threading are optional.
type LoopDeps struct {
	Input     input.Source
	Clock     Clock
	Presenter Presenter
	Sound     SoundPlayer
	Threading *threading.ThreadingComponents
}

// GameLoop owns the observer and frame buffer and advances them one tick at a time
type GameLoop struct {
	grid      *world.Grid
	observer  *Observer
	buffer    *frame.Buffer
	renderer  *Renderer
	movement  *MovementSystem
	collision *collision.CollisionSystem

	input     input.Source
	clock     Clock
	presenter Presenter
	sound     SoundPlayer
	threading *threading.ThreadingComponents
	ownsPool  bool

	lastTick time.Time
	started  bool
	ticks    uint64

	perf *perfWatch // nil unless debug logging is on

	quitKey     keytracker.KeyStateTracker
	mapToggle   keytracker.KeyStateTracker
	statsToggle keytracker.KeyStateTracker
}

// NewGameLoop wires a loop for grid and observer. When deps.Threading is nil
// the loop creates its own components from the render settings and shuts
// them down in Close.
func NewGameLoop(cfg *config.Config, grid *world.Grid, observer *Observer, deps LoopDeps) (*GameLoop, error) {
	switch {
	case grid == nil || observer == nil:
		return nil, errors.New("game loop needs a grid and an observer")
	case deps.Input == nil || deps.Clock == nil || deps.Presenter == nil:
		return nil, errors.New("game loop needs input, clock and presenter")
	}

	gl := &GameLoop{
		grid:      grid,
		observer:  observer,
		buffer:    frame.NewBuffer(cfg.GetScreenWidth(), cfg.GetScreenHeight()),
		input:     deps.Input,
		clock:     deps.Clock,
		presenter: deps.Presenter,
		sound:     deps.Sound,
		threading: deps.Threading,
	}
	if gl.threading == nil {
		gl.threading = threading.NewThreadingComponents(cfg.Render.ParallelColumns)
		gl.ownsPool = true
	}

	if cfg.Logging.Debug {
		gl.perf = &perfWatch{}
	}

	gl.collision = collision.NewCollisionSystem(grid)
	gl.movement = NewMovementSystem(gl.collision, cfg.Movement.RotationRatio)
	gl.renderer = NewRenderer(cfg, gl.threading)

	log.Printf("[Loop] Ready: %dx%d buffer, %dx%d grid, observer at (%.2f, %.2f)",
		gl.buffer.Width(), gl.buffer.Height(), grid.Width(), grid.Height(), observer.X, observer.Y)
	return gl, nil
}

// Tick runs one frame: timing, toggles, movement, rendering and presentation.
// The first tick has dt = 0.
func (gl *GameLoop) Tick() error {
	frameTimer := gl.threading.PerformanceMonitor.StartFrame()
	defer frameTimer.EndFrame()

	now := gl.clock.Now()
	dt := 0.0
	if gl.started {
		dt = now.Sub(gl.lastTick).Seconds()
	}
	gl.lastTick = now
	gl.started = true
	gl.ticks++

	if gl.quitKey.IsKeyJustPressed(gl.input, input.Quit) {
		return ErrQuit
	}
	gl.handleToggles()

	result := gl.movement.Move(gl.observer, input.Sample(gl.input), dt)
	if result.Bumped {
		gl.threading.PerformanceMonitor.RecordCollision()
		if gl.sound != nil {
			gl.sound.PlayBump()
		}
	}

	gl.renderer.RenderFrame(gl.buffer, gl.grid, gl.observer, dt)
	if gl.perf != nil {
		gl.perf.observe(now, dt, gl.threading.PerformanceMonitor, gl.buffer.Width())
	}

	if err := gl.presenter.Present(gl.buffer); err != nil {
		return fmt.Errorf("present frame %d: %w", gl.ticks, err)
	}
	return nil
}

func (gl *GameLoop) handleToggles() {
	if gl.mapToggle.IsKeyJustPressed(gl.input, input.ToggleMap) {
		gl.renderer.ShowMap = !gl.renderer.ShowMap
	}
	if gl.statsToggle.IsKeyJustPressed(gl.input, input.ToggleStats) {
		gl.renderer.ShowStats = !gl.renderer.ShowStats
	}
}

// Run ticks once per value received from ticks until the context is done,
// the channel closes, the quit key is pressed or a tick fails. Only the
// last case returns an error.
func (gl *GameLoop) Run(ctx context.Context, ticks <-chan time.Time) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case _, ok := <-ticks:
			if !ok {
				return nil
			}
			err := gl.Tick()
			if errors.Is(err, ErrQuit) {
				log.Printf("[Loop] Quit after %d ticks", gl.ticks)
				return nil
			}
			if err != nil {
				return err
			}
		}
	}
}

// Observer returns the observer driven by the loop
func (gl *GameLoop) Observer() *Observer {
	return gl.observer
}

// Buffer returns the frame buffer filled by the last tick
func (gl *GameLoop) Buffer() *frame.Buffer {
	return gl.buffer
}

// Renderer returns the frame assembler
func (gl *GameLoop) Renderer() *Renderer {
	return gl.renderer
}

// Ticks returns the number of ticks started so far
func (gl *GameLoop) Ticks() uint64 {
	return gl.ticks
}

// Close logs the performance summary and releases loop-owned workers
func (gl *GameLoop) Close() {
	log.Printf("[Loop] %s reverts=%d", gl.threading.PerformanceMonitor.Summary(), gl.collision.Reverts())
	if gl.ownsPool {
		gl.threading.Shutdown()
	}
}
