// Package frame holds the glyph buffer that the renderer fills and the
// presenters display.
package frame

import (
	"errors"
	"fmt"
	"strings"
)

// Blank is the glyph every cell starts as
const Blank = ' '

// ErrOutOfBounds is returned by Set/At for cells outside the buffer
var ErrOutOfBounds = errors.New("frame cell out of bounds")

// Buffer is a width x height grid of glyphs stored row-major.
// All access goes through bounds-checked methods. Cells written by Put and
// WriteString are flagged as overlay so presenters can tell HUD text from
// scene glyphs that share the same rune.
type Buffer struct {
	width   int
	height  int
	cells   []rune
	overlay []bool
}

// NewBuffer allocates a blank buffer. Non-positive sizes yield an empty buffer.
func NewBuffer(width, height int) *Buffer {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	b := &Buffer{
		width:   width,
		height:  height,
		cells:   make([]rune, width*height),
		overlay: make([]bool, width*height),
	}
	b.Clear()
	return b
}

func (b *Buffer) Width() int  { return b.width }
func (b *Buffer) Height() int { return b.height }

// InBounds reports whether (x, y) addresses a cell
func (b *Buffer) InBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Clear fills the buffer with Blank
func (b *Buffer) Clear() {
	for i := range b.cells {
		b.cells[i] = Blank
		b.overlay[i] = false
	}
}

// Set writes a glyph at column x, row y
func (b *Buffer) Set(x, y int, r rune) error {
	if !b.InBounds(x, y) {
		return fmt.Errorf("%w: (%d, %d) outside %dx%d", ErrOutOfBounds, x, y, b.width, b.height)
	}
	b.cells[y*b.width+x] = r
	b.overlay[y*b.width+x] = false
	return nil
}

// Put is Set for overlays: writes outside the buffer are dropped.
func (b *Buffer) Put(x, y int, r rune) {
	if b.InBounds(x, y) {
		b.cells[y*b.width+x] = r
		b.overlay[y*b.width+x] = true
	}
}

// At returns the glyph at column x, row y
func (b *Buffer) At(x, y int) (rune, error) {
	if !b.InBounds(x, y) {
		return Blank, fmt.Errorf("%w: (%d, %d) outside %dx%d", ErrOutOfBounds, x, y, b.width, b.height)
	}
	return b.cells[y*b.width+x], nil
}

// SetColumn writes glyphs top to bottom into column x. Extra glyphs are ignored.
func (b *Buffer) SetColumn(x int, glyphs []rune) error {
	if x < 0 || x >= b.width {
		return fmt.Errorf("%w: column %d outside width %d", ErrOutOfBounds, x, b.width)
	}
	for y := 0; y < b.height && y < len(glyphs); y++ {
		b.cells[y*b.width+x] = glyphs[y]
		b.overlay[y*b.width+x] = false
	}
	return nil
}

// WriteString writes s starting at (x, y) and clips at the right edge.
// It returns the number of glyphs written.
func (b *Buffer) WriteString(x, y int, s string) int {
	n := 0
	for _, r := range s {
		if x >= b.width {
			break
		}
		if b.InBounds(x, y) {
			b.cells[y*b.width+x] = r
			b.overlay[y*b.width+x] = true
			n++
		}
		x++
	}
	return n
}

// IsOverlay reports whether (x, y) was last written by Put or WriteString
func (b *Buffer) IsOverlay(x, y int) bool {
	return b.InBounds(x, y) && b.overlay[y*b.width+x]
}

// Row returns a copy of row y
func (b *Buffer) Row(y int) []rune {
	if y < 0 || y >= b.height {
		return nil
	}
	row := make([]rune, b.width)
	copy(row, b.cells[y*b.width:(y+1)*b.width])
	return row
}

// String renders the buffer as newline separated rows
func (b *Buffer) String() string {
	var sb strings.Builder
	sb.Grow((b.width + 1) * b.height)
	for y := 0; y < b.height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(string(b.cells[y*b.width : (y+1)*b.width]))
	}
	return sb.String()
}

// CopyFrom resizes b to match src and copies its glyphs and overlay flags
func (b *Buffer) CopyFrom(src *Buffer) {
	if len(b.cells) != len(src.cells) {
		b.cells = make([]rune, len(src.cells))
		b.overlay = make([]bool, len(src.cells))
	}
	b.width = src.width
	b.height = src.height
	copy(b.cells, src.cells)
	copy(b.overlay, src.overlay)
}
