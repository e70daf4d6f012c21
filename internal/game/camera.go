package game

import (
	"math"
)

// Observer is the viewer's state: position in grid units (X selects the row,
// Y the column), heading in radians and walking speed in cells per second.
// The heading is never wrapped; only its sine and cosine are used.
type Observer struct {
	X, Y  float64
	Angle float64
	Speed float64
}

// NewObserver creates an observer at (x, y) facing angle
func NewObserver(x, y, angle, speed float64) *Observer {
	return &Observer{X: x, Y: y, Angle: angle, Speed: speed}
}

// GetForwardX returns the X component of the forward direction vector
func (o *Observer) GetForwardX() float64 {
	return math.Sin(o.Angle)
}

// GetForwardY returns the Y component of the forward direction vector
func (o *Observer) GetForwardY() float64 {
	return math.Cos(o.Angle)
}

// SetPosition sets the observer's position
func (o *Observer) SetPosition(x, y float64) {
	o.X = x
	o.Y = y
}

// Rotate rotates the observer by the given angle
func (o *Observer) Rotate(angle float64) {
	o.Angle += angle
}

// GetViewDirection returns the current view direction as a normalized vector
func (o *Observer) GetViewDirection() (float64, float64) {
	return o.GetForwardX(), o.GetForwardY()
}
