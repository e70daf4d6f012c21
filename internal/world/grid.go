package world

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"
)

// Grid is an immutable tile map stored row-major.
//
// World coordinates follow the historical x-major convention: the observer's
// X selects the grid row and Y selects the column. Probe is the only place
// that converts world coordinates into cell indices, so the ray caster,
// collision and the inset map cannot disagree on the order.
type Grid struct {
	width  int
	height int
	cells  []Cell
}

// NewGrid builds a grid from row-major level rows using '#' and '.'.
func NewGrid(rows []string) (*Grid, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrMalformedLevel)
	}

	width := utf8.RuneCountInString(rows[0])
	if width == 0 {
		return nil, fmt.Errorf("%w: empty first row", ErrMalformedLevel)
	}

	g := &Grid{
		width:  width,
		height: len(rows),
		cells:  make([]Cell, 0, width*len(rows)),
	}

	for y, row := range rows {
		if n := utf8.RuneCountInString(row); n != width {
			return nil, fmt.Errorf("%w: row %d has inconsistent width: expected %d, got %d", ErrMalformedLevel, y+1, width, n)
		}
		for x, r := range []rune(row) {
			switch r {
			case SymbolWall:
				g.cells = append(g.cells, CellWall)
			case SymbolEmpty:
				g.cells = append(g.cells, CellEmpty)
			default:
				return nil, fmt.Errorf("%w: unknown symbol %q at row %d, column %d", ErrMalformedLevel, r, y+1, x+1)
			}
		}
	}

	return g, nil
}

// MustNewGrid is NewGrid for built-in levels; it panics on malformed input.
func MustNewGrid(rows []string) *Grid {
	g, err := NewGrid(rows)
	if err != nil {
		panic(err)
	}
	return g
}

// Width returns the number of columns
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows
func (g *Grid) Height() int {
	return g.height
}

// InBounds reports whether (col, row) addresses a cell
func (g *Grid) InBounds(col, row int) bool {
	return col >= 0 && col < g.width && row >= 0 && row < g.height
}

// CellAt returns the cell at (col, row).
func (g *Grid) CellAt(col, row int) (Cell, error) {
	if !g.InBounds(col, row) {
		return CellEmpty, fmt.Errorf("%w: (%d, %d) outside %dx%d", ErrOutOfBounds, col, row, g.width, g.height)
	}
	return g.cells[row*g.width+col], nil
}

// Probe returns the cell under world position (x, y): row floor(x), column floor(y).
func (g *Grid) Probe(x, y float64) (Cell, error) {
	// Written so NaN fails the check too.
	if !(x >= 0 && x < float64(g.height) && y >= 0 && y < float64(g.width)) {
		return CellEmpty, fmt.Errorf("%w: position (%.3f, %.3f)", ErrOutOfBounds, x, y)
	}
	return g.cells[int(math.Floor(x))*g.width+int(math.Floor(y))], nil
}

// IsWall reports whether the world position is blocked. Positions outside the
// grid count as blocked.
func (g *Grid) IsWall(x, y float64) bool {
	cell, err := g.Probe(x, y)
	return err != nil || cell == CellWall
}

// Rows renders the grid back to level text, one string per row
func (g *Grid) Rows() []string {
	rows := make([]string, g.height)
	var sb strings.Builder
	for row := 0; row < g.height; row++ {
		sb.Reset()
		for col := 0; col < g.width; col++ {
			sb.WriteRune(g.cells[row*g.width+col].Symbol())
		}
		rows[row] = sb.String()
	}
	return rows
}
