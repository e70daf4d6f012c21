package collision

// TileChecker reports whether a world position is blocked.
// Positions outside the map must report blocked.
type TileChecker interface {
	IsWall(x, y float64) bool
}

// CollisionSystem applies movement deltas against the tile map, reverting any
// step that would end inside a wall.
type CollisionSystem struct {
	tileChecker TileChecker
	reverts     uint64
}

// NewCollisionSystem creates a new collision system
func NewCollisionSystem(tileChecker TileChecker) *CollisionSystem {
	return &CollisionSystem{tileChecker: tileChecker}
}

// CanMoveTo checks if the position is open space
func (cs *CollisionSystem) CanMoveTo(x, y float64) bool {
	return !cs.tileChecker.IsWall(x, y)
}

// TryMove applies (dx, dy) to both axes at once and tests the single resulting
// cell. On a hit it returns the original position unchanged; there is no
// sliding along the wall. A diagonal step can therefore cross a wall corner
// when both the start and end cells are open.
func (cs *CollisionSystem) TryMove(x, y, dx, dy float64) (newX, newY float64, moved bool) {
	newX, newY = x+dx, y+dy
	if !cs.CanMoveTo(newX, newY) {
		cs.reverts++
		return x, y, false
	}
	return newX, newY, true
}

// Reverts returns how many moves were rejected since creation
func (cs *CollisionSystem) Reverts() uint64 {
	return cs.reverts
}
