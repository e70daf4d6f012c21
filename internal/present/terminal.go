package present

import (
	"context"
	"log"
	"sync"
	"time"

	"consolefps/internal/config"
	"consolefps/internal/frame"
	"consolefps/internal/game"
	"consolefps/internal/input"

	"github.com/gdamore/tcell/v2"
)

var (
	terminalBaseStyle   = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
	terminalWallStyle   = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorSilver)
	terminalFloorStyle  = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorTan)
	terminalMarkerStyle = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorYellow).Bold(true)
)

func terminalStyle(r rune, overlay bool) tcell.Style {
	switch classify(r, overlay) {
	case classWall:
		return terminalWallStyle
	case classFloor:
		return terminalFloorStyle
	case classMarker:
		return terminalMarkerStyle
	default:
		return terminalBaseStyle
	}
}

// Terminal presents frames on a tcell screen. Frames larger than the screen
// are clipped at the right and bottom edges.
type Terminal struct {
	screen tcell.Screen
}

// NewTerminal wraps an initialized screen
func NewTerminal(screen tcell.Screen) *Terminal {
	screen.SetStyle(terminalBaseStyle)
	screen.HideCursor()
	screen.Clear()
	return &Terminal{screen: screen}
}

// Present writes every visible cell and flushes the screen
func (t *Terminal) Present(buf *frame.Buffer) error {
	sw, sh := t.screen.Size()
	for y := 0; y < buf.Height() && y < sh; y++ {
		row := buf.Row(y)
		for x := 0; x < len(row) && x < sw; x++ {
			t.screen.SetContent(x, y, row[x], nil, terminalStyle(row[x], buf.IsOverlay(x, y)))
		}
	}
	t.screen.Show()
	return nil
}

// TerminalInput turns tcell key events into held-key state. Terminals only
// report presses and auto-repeats, so a key counts as held for a short
// window after its last event.
type TerminalInput struct {
	mu       sync.Mutex
	lastSeen map[input.Key]time.Time
	hold     time.Duration
	now      func() time.Time
}

// NewTerminalInput creates an input source with the given hold window
func NewTerminalInput(hold time.Duration) *TerminalInput {
	return &TerminalInput{
		lastSeen: make(map[input.Key]time.Time),
		hold:     hold,
		now:      time.Now,
	}
}

// IsPressed reports whether key had an event within the hold window
func (ti *TerminalInput) IsPressed(key input.Key) bool {
	ti.mu.Lock()
	defer ti.mu.Unlock()

	seen, ok := ti.lastSeen[key]
	return ok && ti.now().Sub(seen) < ti.hold
}

// HandleEvent records a key event. It returns false for events it ignores.
func (ti *TerminalInput) HandleEvent(ev tcell.Event) bool {
	keyEvent, ok := ev.(*tcell.EventKey)
	if !ok {
		return false
	}

	key, ok := terminalKey(keyEvent)
	if !ok {
		return false
	}

	ti.mu.Lock()
	ti.lastSeen[key] = ti.now()
	ti.mu.Unlock()
	return true
}

// Pump reads events from screen until it is finalized or ctx is done.
// Resize events resync the screen.
func (ti *TerminalInput) Pump(ctx context.Context, screen tcell.Screen) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		if _, ok := ev.(*tcell.EventResize); ok {
			screen.Sync()
			continue
		}
		ti.HandleEvent(ev)

		select {
		case <-ctx.Done():
			return
		default:
		}
	}
}

func terminalKey(ev *tcell.EventKey) (input.Key, bool) {
	switch ev.Key() {
	case tcell.KeyLeft:
		return input.RotateLeft, true
	case tcell.KeyRight:
		return input.RotateRight, true
	case tcell.KeyUp:
		return input.Forward, true
	case tcell.KeyDown:
		return input.Backward, true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return input.Quit, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'a', 'A':
			return input.RotateLeft, true
		case 'd', 'D':
			return input.RotateRight, true
		case 'w', 'W':
			return input.Forward, true
		case 's', 'S':
			return input.Backward, true
		case 'm', 'M':
			return input.ToggleMap, true
		case '/':
			return input.ToggleStats, true
		}
	}
	return 0, false
}

// RunTerminal ticks loop on a fixed interval until ctx is done or the quit key is pressed
func RunTerminal(ctx context.Context, cfg *config.Config, loop *game.GameLoop) error {
	interval := time.Duration(cfg.Terminal.TickMs) * time.Millisecond
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	log.Printf("[Terminal] Ticking every %v", interval)
	return loop.Run(ctx, ticker.C)
}
