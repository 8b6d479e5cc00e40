package chase

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-chase/internal/core"
)

// corridor is a horizontal one-tile corridor along row 1 with a side opening at column 3.
var corridor = []string{
	"#######",
	"#.....#",
	"###.###",
	"###.###",
	"#######",
}

func TestInputStateLastPressedWins(t *testing.T) {
	var in InputState

	_, ok := in.Active()
	assert.False(t, ok)

	in.Press(DirUp)
	in.Press(DirLeft)
	d, ok := in.Active()
	assert.True(t, ok)
	assert.Equal(t, DirLeft, d)

	// Releasing an older key keeps the newest one active.
	in.Release(DirUp)
	d, _ = in.Active()
	assert.Equal(t, DirLeft, d)

	// Releasing the newest key leaves nothing active even if others are held.
	in.Press(DirDown)
	in.Press(DirRight)
	in.Release(DirRight)
	_, ok = in.Active()
	assert.False(t, ok)
	assert.True(t, in.Held(DirDown))

	in.Reset()
	assert.False(t, in.Held(DirDown))
}

func TestInputStateApplyFrame(t *testing.T) {
	var in InputState
	frame := core.NewInputFrame()
	frame.Set(core.ActionLeft)
	frame.Set(core.ActionPause)
	frame.Set(core.ActionDown)

	in.Apply(frame)

	d, ok := in.Active()
	assert.True(t, ok)
	assert.Equal(t, DirDown, d)
	assert.True(t, in.Held(DirLeft))
}

func TestPlayerSteerOpen(t *testing.T) {
	m := BuildMaze(corridor, 40, DefaultItemSpec())
	p := NewPlayer(core.V(100, 60), 15, 5)
	var in InputState

	in.Press(DirRight)
	p.Steer(&in, m.Walls(), 40)
	assert.Equal(t, core.V(5, 0), p.Vel)

	in.Press(DirLeft)
	p.Steer(&in, m.Walls(), 40)
	assert.Equal(t, core.V(-5, 0), p.Vel)
}

func TestPlayerSteerBlockedKeepsOtherAxis(t *testing.T) {
	m := BuildMaze(corridor, 40, DefaultItemSpec())
	p := NewPlayer(core.V(100, 60), 15, 5)
	p.Vel = core.V(5, 0)
	var in InputState

	// Wall above: only the vertical axis is zeroed, so the player keeps sliding right.
	in.Press(DirUp)
	p.Steer(&in, m.Walls(), 40)
	assert.Equal(t, core.V(5, 0), p.Vel)

	// Down is blocked here too, until the player reaches the opening at x=140.
	in.Press(DirDown)
	for i := 0; i < 8; i++ {
		p.Steer(&in, m.Walls(), 40)
		assert.Equal(t, 0.0, p.Vel.Y, "frame %d", i)
		p.Integrate()
	}
	assert.Equal(t, 140.0, p.Pos.X)
	p.Steer(&in, m.Walls(), 40)
	assert.Equal(t, core.V(0, 5), p.Vel, "turns into the opening once aligned")
}

func TestPlayerReleaseKeepsVelocity(t *testing.T) {
	m := BuildMaze(corridor, 40, DefaultItemSpec())
	p := NewPlayer(core.V(100, 60), 15, 5)
	var in InputState

	in.Press(DirRight)
	p.Steer(&in, m.Walls(), 40)
	in.Release(DirRight)
	p.Steer(&in, m.Walls(), 40)

	assert.Equal(t, core.V(5, 0), p.Vel, "release alone never stops the player")
}

func TestPlayerClamp(t *testing.T) {
	m := BuildMaze(corridor, 40, DefaultItemSpec())
	p := NewPlayer(core.V(220, 60), 15, 5)

	p.Vel = core.V(-5, 0)
	assert.False(t, p.Clamp(m.Walls(), 40))
	assert.Equal(t, core.V(-5, 0), p.Vel)

	p.Vel = core.V(5, 0)
	assert.True(t, p.Clamp(m.Walls(), 40), "column 6 is a wall")
	assert.True(t, p.Vel.IsZero())
}

func TestPlayerAnimate(t *testing.T) {
	p := NewPlayer(core.V(60, 60), 15, 5)

	lo, hi := math.Inf(1), math.Inf(-1)
	for i := 0; i < 200; i++ {
		p.Animate()
		lo = math.Min(lo, p.MouthAngle)
		hi = math.Max(hi, p.MouthAngle)
	}
	assert.GreaterOrEqual(t, lo, -2*DefaultMouthRate)
	assert.LessOrEqual(t, hi, DefaultMouthMax+2*DefaultMouthRate)
	assert.Greater(t, hi, DefaultMouthMax/2, "mouth opens")

	tests := []struct {
		vel    core.Vec2
		facing Direction
		rot    float64
	}{
		{core.V(5, 0), DirRight, 0},
		{core.V(-5, 0), DirLeft, math.Pi},
		{core.V(0, 5), DirDown, math.Pi / 2},
		{core.V(0, -5), DirUp, math.Pi * 1.5},
	}
	for _, tt := range tests {
		p.Vel = tt.vel
		p.Animate()
		assert.Equal(t, tt.facing, p.Facing)
		assert.InDelta(t, tt.rot, p.Rotation, 1e-9)
	}

	// Standing still keeps the last facing.
	p.Vel = core.Vec2{}
	p.Animate()
	assert.Equal(t, DirUp, p.Facing)
}
