package replay

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-chase/internal/config"
	"github.com/vovakirdan/tui-chase/internal/core"
	"github.com/vovakirdan/tui-chase/internal/games/chase"
	"github.com/vovakirdan/tui-chase/internal/games/chase/mazes"
)

var directions = []core.Action{core.ActionRight, core.ActionDown, core.ActionLeft, core.ActionUp}

// recordSession drives a game the way the TUI does and returns the journal.
func recordSession(t *testing.T, frames int) (*Journal, *chase.Game) {
	t.Helper()

	start := time.Unix(1_700_000_000, 0)
	clock := core.NewManualClock(start)
	def := mazes.MustByID("classic")
	cfg := config.DefaultChaseConfig()

	g := chase.New(def.ID, chase.WithDefinition(def), chase.WithConfig(cfg), chase.WithClock(clock))
	rt := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 42}
	g.Reset(rt)
	require.NoError(t, g.Err())

	rec := NewRecorder(g.ID(), def, cfg)
	rec.Begin(rt, clock.Now())

	for i := 0; i < frames; i++ {
		clock.Advance(16 * time.Millisecond)

		switch i {
		case 100:
			rec.Resize(10, 5)
			g.Resize(10, 5)
			rt.ScreenW, rt.ScreenH = 10, 5
		case 150:
			rec.Resize(80, 24)
			g.Resize(80, 24)
			rt.ScreenW, rt.ScreenH = 80, 24
		case 200:
			rt.Seed = 7
			rec.Restart(clock.Now(), rt.Seed)
			g.Reset(rt)
			continue
		}

		in := core.NewInputFrame()
		if i%25 == 0 {
			in.Set(directions[(i/25)%len(directions)])
		}
		rec.Tick(clock.Now(), in)
		g.Step(in)
	}

	final, err := FinalOf(g)
	require.NoError(t, err)
	return rec.Finish(final), g
}

func TestRecordAndPlay(t *testing.T) {
	j, g := recordSession(t, 400)
	assert.Len(t, j.Frames, 400)

	res, err := Play(j)
	require.NoError(t, err)

	assert.True(t, res.Matches, "re-simulation should reproduce the recorded run")
	assert.Equal(t, g.State().Score, res.State.Score)
	assert.Equal(t, g.State().Ticks, res.State.Ticks)
	assert.Equal(t, 1, res.Restarts)
	assert.Equal(t, 400, res.Frames)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	j, _ := recordSession(t, 250)

	path := filepath.Join(t.TempDir(), "run.chase")
	require.NoError(t, j.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, j.Seed, loaded.Seed)
	assert.Equal(t, j.Maze.Layout, loaded.Maze.Layout)
	assert.Equal(t, len(j.Frames), len(loaded.Frames))
	assert.True(t, j.Start.Equal(loaded.Start))

	res, err := Play(loaded)
	require.NoError(t, err)
	assert.True(t, res.Matches)
}

func TestTamperedJournalDoesNotMatch(t *testing.T) {
	j, _ := recordSession(t, 250)
	j.Final.Hash = "0000000000000000"

	res, err := Play(j)
	require.NoError(t, err)
	assert.False(t, res.Matches)
}

func TestRecorderIgnoresFramesBeforeBegin(t *testing.T) {
	rec := NewRecorder("chase", mazes.MustByID("tiny"), config.DefaultChaseConfig())
	assert.False(t, rec.Started())

	rec.Tick(time.Now(), core.NewInputFrame())
	rec.Restart(time.Now(), 3)
	assert.Equal(t, 0, rec.Len())
}

func TestResizeAttachesToNextFrame(t *testing.T) {
	start := time.Unix(100, 0)
	rec := NewRecorder("chase_tiny", mazes.MustByID("tiny"), config.DefaultChaseConfig())
	rec.Begin(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}, start)

	rec.Resize(40, 12)
	in := core.NewInputFrame()
	in.Set(core.ActionLeft)
	in.Set(core.ActionUp)
	rec.Tick(start.Add(time.Second), in)
	rec.Tick(start.Add(2*time.Second), core.NewInputFrame())

	j := rec.Finish(Final{})
	require.Len(t, j.Frames, 2)
	assert.Equal(t, Frame{Elapsed: time.Second, Actions: []core.Action{core.ActionLeft, core.ActionUp}, W: 40, H: 12}, j.Frames[0])
	assert.Equal(t, Frame{Elapsed: 2 * time.Second}, j.Frames[1])
}

func TestDecodeRejectsBadInput(t *testing.T) {
	_, err := Decode([]byte("not msgpack"))
	assert.Error(t, err)

	j := &Journal{Version: Version + 1, Maze: mazes.MustByID("tiny")}
	data, err := j.Encode()
	require.NoError(t, err)
	_, err = Decode(data)
	assert.ErrorContains(t, err, "unsupported journal version")

	_, err = Load(filepath.Join(t.TempDir(), "missing.chase"))
	assert.Error(t, err)
}
