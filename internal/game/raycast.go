package game

import (
	"math"
	"sort"

	"consolefps/internal/world"
)

// Defaults used when a caster is built with unusable parameters
const (
	DefaultStepSize          = 0.01
	DefaultBoundaryThreshold = 0.01
)

// RayHit is the result of casting one ray.
type RayHit struct {
	Distance float64 // Marched length to the first wall, at most the caster depth
	Capped   bool    // No wall within depth, or the ray left the grid
	Boundary bool    // The ray grazes a tile corner; the wall slice is drawn blank
}

// Caster marches rays through a grid in fixed steps.
type Caster struct {
	Depth             float64
	StepSize          float64
	BoundaryThreshold float64
}

// NewCaster creates a caster. A non-positive step or threshold falls back to
// the default because a zero step would never terminate.
func NewCaster(depth, stepSize, boundaryThreshold float64) *Caster {
	if stepSize <= 0 {
		stepSize = DefaultStepSize
	}
	if boundaryThreshold <= 0 {
		boundaryThreshold = DefaultBoundaryThreshold
	}
	return &Caster{
		Depth:             depth,
		StepSize:          stepSize,
		BoundaryThreshold: boundaryThreshold,
	}
}

// Cast marches from (x, y) along (sin(angle), cos(angle)). Leaving the grid
// counts as a hit at full depth.
func (c *Caster) Cast(grid *world.Grid, x, y, angle float64) RayHit {
	eyeX := math.Sin(angle)
	eyeY := math.Cos(angle)

	distance := 0.0
	for distance < c.Depth {
		distance += c.StepSize
		testX := x + eyeX*distance
		testY := y + eyeY*distance

		cell, err := grid.Probe(testX, testY)
		if err != nil {
			return RayHit{Distance: c.Depth, Capped: true}
		}
		if cell != world.CellWall {
			continue
		}

		row, col := CellOf(testX, testY)
		return RayHit{
			Distance: math.Min(distance, c.Depth),
			Boundary: c.isBoundary(x, y, eyeX, eyeY, row, col),
		}
	}

	return RayHit{Distance: c.Depth, Capped: true}
}

type cornerSample struct {
	distance float64
	dot      float64
}

// isBoundary reports whether the ray (eyeX, eyeY) from (x, y) points within
// BoundaryThreshold radians of one of the three corners of cell (row, col)
// nearest to the observer. The farthest corner is hidden behind the cell.
func (c *Caster) isBoundary(x, y, eyeX, eyeY float64, row, col int) bool {
	corners := make([]cornerSample, 0, 4)
	for tx := 0; tx < 2; tx++ {
		for ty := 0; ty < 2; ty++ {
			vx := float64(row+tx) - x
			vy := float64(col+ty) - y
			d := math.Sqrt(vx*vx + vy*vy)
			if d == 0 {
				continue
			}
			corners = append(corners, cornerSample{
				distance: d,
				dot:      eyeX*vx/d + eyeY*vy/d,
			})
		}
	}

	sort.SliceStable(corners, func(i, j int) bool {
		return corners[i].distance < corners[j].distance
	})

	for i := 0; i < len(corners) && i < 3; i++ {
		if math.Acos(clampUnit(corners[i].dot)) < c.BoundaryThreshold {
			return true
		}
	}
	return false
}

// RayAngle returns the angle of screen column x out of width, spreading fov
// evenly around heading from left to right.
func RayAngle(heading, fov float64, x, width int) float64 {
	if width <= 0 {
		return heading
	}
	return (heading - fov/2) + (float64(x)/float64(width))*fov
}
