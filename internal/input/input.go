// Package input defines the keys the renderer reacts to and the polling
// interface presenters implement for them.
package input

// Key is a logical control, independent of the physical key bound to it
type Key int

const (
	RotateLeft Key = iota
	RotateRight
	Forward
	Backward
	ToggleMap
	ToggleStats
	Quit

	keyCount
)

var keyNames = [...]string{
	RotateLeft:  "RotateLeft",
	RotateRight: "RotateRight",
	Forward:     "Forward",
	Backward:    "Backward",
	ToggleMap:   "ToggleMap",
	ToggleStats: "ToggleStats",
	Quit:        "Quit",
}

func (k Key) String() string {
	if k < 0 || k >= keyCount {
		return "Unknown"
	}
	return keyNames[k]
}

// Keys lists every logical key
func Keys() []Key {
	keys := make([]Key, 0, keyCount)
	for k := Key(0); k < keyCount; k++ {
		keys = append(keys, k)
	}
	return keys
}

// Source reports whether a key is held right now. Implementations must not block.
type Source interface {
	IsPressed(key Key) bool
}

// Intents is the movement part of one input sample
type Intents struct {
	RotateLeft  bool
	RotateRight bool
	Forward     bool
	Backward    bool
}

// Any reports whether at least one intent is active
func (i Intents) Any() bool {
	return i.RotateLeft || i.RotateRight || i.Forward || i.Backward
}

// Sample polls src once for the movement keys
func Sample(src Source) Intents {
	return Intents{
		RotateLeft:  src.IsPressed(RotateLeft),
		RotateRight: src.IsPressed(RotateRight),
		Forward:     src.IsPressed(Forward),
		Backward:    src.IsPressed(Backward),
	}
}

// StaticSource is a Source backed by a fixed key set, for tests and scripted runs
type StaticSource map[Key]bool

func (s StaticSource) IsPressed(key Key) bool {
	return s[key]
}
