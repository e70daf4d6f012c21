package world

import "errors"

// Cell is the content of one grid tile.
type Cell int

const (
	CellEmpty Cell = iota // Walkable open space
	CellWall              // Solid wall, blocks rays and movement
)

// Level symbols, row-major text.
const (
	SymbolWall  = '#'
	SymbolEmpty = '.'
	SymbolStart = 'P' // Map files only: observer start, stored as empty
)

var (
	// ErrOutOfBounds is returned for coordinates outside the grid.
	ErrOutOfBounds = errors.New("cell out of bounds")
	// ErrMalformedLevel is returned when level rows cannot form a grid.
	ErrMalformedLevel = errors.New("malformed level")
)

// String returns the level symbol for the cell
func (c Cell) String() string {
	if c == CellWall {
		return string(SymbolWall)
	}
	return string(SymbolEmpty)
}

// Symbol returns the level rune for the cell
func (c Cell) Symbol() rune {
	if c == CellWall {
		return SymbolWall
	}
	return SymbolEmpty
}
