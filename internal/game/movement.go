package game

import (
	"consolefps/internal/collision"
	"consolefps/internal/input"
)

// MoveResult reports what a call to Move did
type MoveResult struct {
	Rotated bool
	Moved   bool
	Bumped  bool // A forward or backward step was reverted by a wall
}

// MovementSystem turns input intents into observer updates
type MovementSystem struct {
	collision     *collision.CollisionSystem
	rotationRatio float64
}

// NewMovementSystem creates a movement system. rotationRatio scales the
// observer speed into radians per second.
func NewMovementSystem(cs *collision.CollisionSystem, rotationRatio float64) *MovementSystem {
	return &MovementSystem{collision: cs, rotationRatio: rotationRatio}
}

// Move applies one tick of intents scaled by dt seconds. Rotation comes
// first, then the forward step, then the backward step; each step is checked
// and reverted on its own.
func (ms *MovementSystem) Move(obs *Observer, intents input.Intents, dt float64) MoveResult {
	var result MoveResult
	if dt <= 0 || !intents.Any() {
		return result
	}

	rotation := obs.Speed * ms.rotationRatio * dt
	if intents.RotateLeft {
		obs.Rotate(-rotation)
		result.Rotated = true
	}
	if intents.RotateRight {
		obs.Rotate(rotation)
		result.Rotated = true
	}

	step := obs.Speed * dt
	if intents.Forward {
		ms.step(obs, step, &result)
	}
	if intents.Backward {
		ms.step(obs, -step, &result)
	}

	return result
}

func (ms *MovementSystem) step(obs *Observer, distance float64, result *MoveResult) {
	dx := obs.GetForwardX() * distance
	dy := obs.GetForwardY() * distance

	x, y, moved := ms.collision.TryMove(obs.X, obs.Y, dx, dy)
	obs.SetPosition(x, y)
	if moved {
		result.Moved = true
	} else {
		result.Bumped = true
	}
}
