// keytracker.go - edge detection on top of a polled input.Source.
// Provides IsKeyJustPressed functionality for a single key.
package keytracker

import (
	"consolefps/internal/input"
)

// KeyStateTracker tracks the previous state of a key.
type KeyStateTracker struct {
	prevPressed bool
}

// IsKeyJustPressed returns true if the key was not pressed last frame but is pressed this frame.
func (k *KeyStateTracker) IsKeyJustPressed(src input.Source, key input.Key) bool {
	pressed := src.IsPressed(key)
	justPressed := pressed && !k.prevPressed
	k.prevPressed = pressed
	return justPressed
}
