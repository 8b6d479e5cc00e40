package chase

import "github.com/vovakirdan/tui-chase/internal/core"

// WallSegment is one tile-sized square of maze wall.
type WallSegment struct {
	Pos  core.Vec2 // top-left corner
	Size float64
	Kind WallKind
}

// Padding is how far a wall's collision box is grown for a circle of the given radius.
// It lets a circle glide through a one-tile corridor while still stopping at walls.
func Padding(tileSize, radius float64) float64 {
	return tileSize/2 - radius - 1
}

// Overlaps reports whether a circle at pos moving by vel would touch the padded wall.
// It only looks at the next position (pos+vel) and never mutates anything, so it is
// safe to call with hypothetical velocities.
func Overlaps(pos core.Vec2, radius float64, vel core.Vec2, w WallSegment, tileSize float64) bool {
	pad := Padding(tileSize, radius)
	next := pos.Add(vel)

	return next.Y-radius <= w.Pos.Y+w.Size+pad &&
		next.X+radius >= w.Pos.X-pad &&
		next.Y+radius >= w.Pos.Y-pad &&
		next.X-radius <= w.Pos.X+w.Size+pad
}

// Blocked reports whether any wall overlaps the circle under vel.
func Blocked(pos core.Vec2, radius float64, vel core.Vec2, walls []WallSegment, tileSize float64) bool {
	for i := range walls {
		if Overlaps(pos, radius, vel, walls[i], tileSize) {
			return true
		}
	}
	return false
}
