package game

import "math"

// CellOf returns the integer cell (row, col) containing world position (x, y).
func CellOf(x, y float64) (row, col int) {
	return int(math.Floor(x)), int(math.Floor(y))
}

// clampUnit limits v to [-1, 1] so rounding never pushes math.Acos to NaN.
func clampUnit(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}
