package replay

import (
	"fmt"

	"github.com/vovakirdan/tui-chase/internal/core"
	"github.com/vovakirdan/tui-chase/internal/games/chase"
)

// Result is the outcome of re-simulating a journal.
type Result struct {
	GameID   string
	State    core.GameState
	Hash     string
	Frames   int
	Restarts int
	Events   map[core.Event]int
	World    *chase.World // Final simulation state
	// Matches is true when the journal carried a final state and the
	// re-simulation reproduced its score and snapshot hash.
	Matches bool
}

// NewGame builds the chase game a journal was recorded on, driven by clock.
func NewGame(j *Journal, clock core.Clock) *chase.Game {
	return chase.New(j.Maze.ID,
		chase.WithDefinition(j.Maze),
		chase.WithConfig(j.Config),
		chase.WithClock(clock),
	)
}

// Play re-simulates a journal headlessly.
func Play(j *Journal) (Result, error) {
	clock := core.NewManualClock(j.Start)
	g := NewGame(j, clock)

	rt := j.Runtime()
	g.Reset(rt)
	if err := g.Err(); err != nil {
		return Result{}, fmt.Errorf("replay: %w", err)
	}

	res := Result{GameID: j.GameID, Events: make(map[core.Event]int)}
	for _, f := range j.Frames {
		clock.Set(j.Start.Add(f.Elapsed))
		if f.W > 0 && f.H > 0 {
			rt.ScreenW, rt.ScreenH = f.W, f.H
			g.Resize(f.W, f.H)
		}
		res.Frames++

		if f.Seed != 0 {
			rt.Seed = f.Seed
			g.Reset(rt)
			res.Restarts++
			continue
		}

		in := core.NewInputFrame()
		for _, a := range f.Actions {
			in.Set(a)
		}
		step := g.Step(in)
		for _, e := range step.Events {
			res.Events[e]++
		}
	}

	res.State = g.State()
	res.World = g.World()
	hash, err := res.World.Snapshot().Hash()
	if err != nil {
		return res, err
	}
	res.Hash = hash

	if j.Final != nil {
		res.Matches = j.Final.Hash == hash && j.Final.Score == res.State.Score
	}
	return res, nil
}

// FinalOf captures the final state of a running game for Recorder.Finish.
func FinalOf(g *chase.Game) (Final, error) {
	state := g.State()
	f := Final{Score: state.Score, Won: state.Won, Over: state.GameOver, Ticks: state.Ticks}
	if w := g.World(); w != nil {
		hash, err := w.Snapshot().Hash()
		if err != nil {
			return f, err
		}
		f.Hash = hash
	}
	return f, nil
}
