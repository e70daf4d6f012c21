package game

import (
	"fmt"

	"consolefps/internal/frame"
	"consolefps/internal/world"
)

// MarkerObserver marks the observer's cell on the inset map
const MarkerObserver = 'P'

// FrameRate converts a tick duration in seconds into frames per second.
// A zero or negative dt reads as 0.
func FrameRate(dt float64) float64 {
	if dt <= 0 {
		return 0
	}
	return 1.0 / dt
}

// StatusLine formats the observer readout shown on the top row
func StatusLine(obs *Observer, dt float64) string {
	return fmt.Sprintf("X=%3.2f, Y=%3.2f, A=%3.2f FPS=%3.2f ", obs.X, obs.Y, obs.Angle, FrameRate(dt))
}

// drawStats writes the status line on row 0, clipped to the buffer width
func drawStats(buf *frame.Buffer, obs *Observer, dt float64) {
	buf.WriteString(0, 0, StatusLine(obs, dt))
}

// drawMiniMap copies the grid into the top-left corner below the status
// line and marks the observer's cell. Anything past the buffer edge is dropped.
func drawMiniMap(buf *frame.Buffer, grid *world.Grid, obs *Observer) {
	for row := 0; row < grid.Height(); row++ {
		for col := 0; col < grid.Width(); col++ {
			cell, err := grid.CellAt(col, row)
			if err != nil {
				continue
			}
			buf.Put(col, row+1, cell.Symbol())
		}
	}

	row, col := CellOf(obs.X, obs.Y)
	buf.Put(col, row+1, MarkerObserver)
}
