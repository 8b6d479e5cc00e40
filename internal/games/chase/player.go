package chase

import "github.com/vovakirdan/tui-chase/internal/core"

// Mouth animation defaults.
const (
	DefaultMouthMax  = 0.75
	DefaultMouthRate = 0.12
)

// Player is the controlled actor.
type Player struct {
	Actor
	Speed      float64
	MouthAngle float64
	MouthRate  float64
	MouthMax   float64
	Rotation   float64
	Facing     Direction
}

// NewPlayer creates a player at pos facing right.
func NewPlayer(pos core.Vec2, radius, speed float64) *Player {
	return &Player{
		Actor:     Actor{Pos: pos, Radius: radius},
		Speed:     speed,
		MouthRate: DefaultMouthRate,
		MouthMax:  DefaultMouthMax,
		Facing:    DirRight,
	}
}

// Steer turns the active input direction into a velocity.
// The candidate is tested against every wall first; when it collides only the
// axis it moves along is zeroed and the other axis keeps its current value.
func (p *Player) Steer(in *InputState, walls []WallSegment, tileSize float64) {
	dir, ok := in.Active()
	if !ok {
		return
	}

	candidate := dir.Delta().Scale(p.Speed)
	if !p.BlockedBy(candidate, walls, tileSize) {
		p.Vel = candidate
		return
	}
	if dir.Horizontal() {
		p.Vel.X = 0
	} else {
		p.Vel.Y = 0
	}
}

// Clamp stops the player outright when its current velocity would overlap any wall.
func (p *Player) Clamp(walls []WallSegment, tileSize float64) bool {
	if p.Vel.IsZero() {
		return false
	}
	if p.BlockedBy(p.Vel, walls, tileSize) {
		p.Vel = core.Vec2{}
		return true
	}
	return false
}

// Animate advances the mouth and updates the facing from the velocity sign.
func (p *Player) Animate() {
	if p.MouthAngle < 0 || p.MouthAngle > p.MouthMax {
		p.MouthRate = -p.MouthRate
	}
	p.MouthAngle += p.MouthRate

	if d, ok := DirectionOf(p.Vel); ok {
		p.Facing = d
		p.Rotation = d.Rotation()
	}
}

// MouthOpen reports whether the mouth is in the wider half of its swing.
func (p *Player) MouthOpen() bool {
	return p.MouthAngle > p.MouthMax/2
}
