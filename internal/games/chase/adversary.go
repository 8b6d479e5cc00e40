package chase

import (
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-chase/internal/core"
)

// Chooser picks an index in [0, n). *rand.Rand satisfies it.
type Chooser interface {
	Intn(n int) int
}

// Adversary is a wandering pursuer.
type Adversary struct {
	Actor
	ID          uuid.UUID
	Speed       float64
	Vulnerable  bool
	Color       core.Color
	PrevBlocked DirSet
	Decisions   int

	// NextSpeed, when positive, replaces Speed at the next junction so the
	// adversary only changes pace on a tile center.
	NextSpeed float64
}

// NewAdversary creates an adversary at pos moving right at speed.
func NewAdversary(pos core.Vec2, radius, speed float64, color core.Color) *Adversary {
	return &Adversary{
		Actor:       Actor{Pos: pos, Vel: core.V(speed, 0), Radius: radius},
		ID:          uuid.New(),
		Speed:       speed,
		Color:       color,
		PrevBlocked: NewDirSet(),
	}
}

// Face points a freshly spawned adversary along an open corridor.
// Right is kept when it is free; otherwise the first unblocked direction wins.
// A spawn with no exit starts stalled.
func (a *Adversary) Face(walls []WallSegment, tileSize float64) {
	blocked := a.BlockedDirections(walls, tileSize)
	if !blocked.Has(DirRight) {
		a.Vel = DirRight.Delta().Scale(a.Speed)
		return
	}
	a.Vel = core.Vec2{}
	for _, d := range AllDirections {
		if !blocked.Has(d) {
			a.Vel = d.Delta().Scale(a.Speed)
			return
		}
	}
}

// Heading returns the direction of travel, false while stalled.
func (a *Adversary) Heading() (Direction, bool) {
	return DirectionOf(a.Vel)
}

// BlockedDirections returns every direction in which a step of the adversary's speed would hit a wall.
func (a *Adversary) BlockedDirections(walls []WallSegment, tileSize float64) DirSet {
	blocked := NewDirSet()
	for _, d := range AllDirections {
		if a.BlockedBy(d.Delta().Scale(a.Speed), walls, tileSize) {
			blocked.Add(d)
		}
	}
	return blocked
}

// Navigate runs one frame of the junction policy: move, test each direction, and when the
// set of blocked directions changes pick a new heading at random among the exits.
// Between junctions the heading never changes.
func (a *Adversary) Navigate(walls []WallSegment, tileSize float64, rng Chooser) {
	a.Integrate()

	blocked := a.BlockedDirections(walls, tileSize)
	if blocked.Len() > a.PrevBlocked.Len() {
		a.PrevBlocked = blocked.Clone()
	}

	heading, moving := a.Heading()
	junction := !blocked.Equal(a.PrevBlocked) ||
		!moving ||
		blocked.Has(heading)
	if !junction {
		return
	}

	if moving {
		a.PrevBlocked.Add(heading)
	}
	open := a.PrevBlocked.Minus(blocked)
	if len(open) == 0 {
		// Dead end: any free direction, which is the way back.
		open = blocked.Complement()
	}
	if len(open) == 0 {
		// Walled in on all sides: hold still and look again next frame.
		a.Vel = core.Vec2{}
		return
	}

	if a.NextSpeed > 0 {
		a.Speed = a.NextSpeed
		a.NextSpeed = 0
	}
	next := open[rng.Intn(len(open))]
	a.Vel = next.Delta().Scale(a.Speed)
	a.PrevBlocked = NewDirSet()
	a.Decisions++
}
