package chase

import "github.com/vovakirdan/tui-chase/internal/core"

// Actor is a circular moving body.
type Actor struct {
	Pos    core.Vec2
	Vel    core.Vec2
	Radius float64
}

// Integrate advances the position by one frame of velocity.
func (a *Actor) Integrate() {
	a.Pos = a.Pos.Add(a.Vel)
}

// Touches reports whether two actors' circles intersect.
func (a Actor) Touches(o Actor) bool {
	return a.Pos.Dist(o.Pos) < a.Radius+o.Radius
}

// BlockedBy reports whether moving with vel would hit any wall.
func (a Actor) BlockedBy(vel core.Vec2, walls []WallSegment, tileSize float64) bool {
	return Blocked(a.Pos, a.Radius, vel, walls, tileSize)
}

// Tile returns the maze cell containing the actor's center.
func (a Actor) Tile(tileSize float64) (col, row int) {
	return int(a.Pos.X / tileSize), int(a.Pos.Y / tileSize)
}
