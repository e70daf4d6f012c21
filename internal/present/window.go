package present

import (
	"errors"
	"log"

	"consolefps/internal/config"
	"consolefps/internal/frame"
	"consolefps/internal/game"
	"consolefps/internal/input"

	"github.com/hajimehoshi/ebiten/v2"
	ebitext "github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// Window presents frames as a grid of cells in an ebiten window. Present
// stores a snapshot; Draw paints the latest one. Both run on the ebiten
// game goroutine.
type Window struct {
	snapshot *frame.Buffer
	cellW    int
	cellH    int
}

// NewWindow creates a window presenter with the given cell size in pixels
func NewWindow(cellW, cellH int) *Window {
	return &Window{
		snapshot: frame.NewBuffer(0, 0),
		cellW:    cellW,
		cellH:    cellH,
	}
}

// Present copies buf for the next Draw
func (w *Window) Present(buf *frame.Buffer) error {
	w.snapshot.CopyFrom(buf)
	return nil
}

// Draw paints the last presented frame. Wall shades are drawn as filled
// cells; everything else goes through the bitmap font.
func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	face := basicfont.Face7x13
	baselineOffset := (w.cellH + face.Metrics().Ascent.Round()) / 2

	for y := 0; y < w.snapshot.Height(); y++ {
		row := w.snapshot.Row(y)
		py := y * w.cellH
		for x, r := range row {
			px := x * w.cellW
			switch classify(r, w.snapshot.IsOverlay(x, y)) {
			case classBlank:
			case classWall:
				vector.DrawFilledRect(screen, float32(px), float32(py), float32(w.cellW), float32(w.cellH), wallColor(r), false)
			case classFloor:
				ebitext.Draw(screen, string(r), face, px, py+baselineOffset, colorFloor)
			case classMarker:
				ebitext.Draw(screen, string(r), face, px, py+baselineOffset, colorMarker)
			default:
				ebitext.Draw(screen, string(r), face, px, py+baselineOffset, colorText)
			}
		}
	}
}

// windowBindings maps each logical key to the physical keys that trigger it
var windowBindings = map[input.Key][]ebiten.Key{
	input.RotateLeft:  {ebiten.KeyA, ebiten.KeyArrowLeft},
	input.RotateRight: {ebiten.KeyD, ebiten.KeyArrowRight},
	input.Forward:     {ebiten.KeyW, ebiten.KeyArrowUp},
	input.Backward:    {ebiten.KeyS, ebiten.KeyArrowDown},
	input.ToggleMap:   {ebiten.KeyM},
	input.ToggleStats: {ebiten.KeySlash},
	input.Quit:        {ebiten.KeyEscape},
}

// WindowInput reads held keys from ebiten. Only valid inside the ebiten loop.
type WindowInput struct{}

func (WindowInput) IsPressed(key input.Key) bool {
	for _, k := range windowBindings[key] {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

// windowGame adapts a GameLoop to ebiten.Game
type windowGame struct {
	loop   *game.GameLoop
	window *Window
	width  int
	height int
}

func (g *windowGame) Update() error {
	err := g.loop.Tick()
	if errors.Is(err, game.ErrQuit) {
		return ebiten.Termination
	}
	return err
}

func (g *windowGame) Draw(screen *ebiten.Image) {
	g.window.Draw(screen)
}

func (g *windowGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

// RunWindow opens the window and ticks loop once per ebiten update until the
// window closes or the quit key is pressed.
func RunWindow(cfg *config.Config, loop *game.GameLoop, window *Window) error {
	ebiten.SetWindowSize(cfg.GetWindowWidth(), cfg.GetWindowHeight())
	ebiten.SetWindowTitle(cfg.Display.WindowTitle)
	if cfg.Display.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	log.Printf("[Window] Opening %dx%d window", cfg.GetWindowWidth(), cfg.GetWindowHeight())
	return ebiten.RunGame(&windowGame{
		loop:   loop,
		window: window,
		width:  cfg.GetWindowWidth(),
		height: cfg.GetWindowHeight(),
	})
}
