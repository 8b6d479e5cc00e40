package replay

import (
	"time"

	"github.com/vovakirdan/tui-chase/internal/config"
	"github.com/vovakirdan/tui-chase/internal/core"
	"github.com/vovakirdan/tui-chase/internal/games/chase/mazes"
)

// Recorder collects frames while a session runs.
// It is driven from the Bubble Tea update loop and is not safe for concurrent use.
type Recorder struct {
	journal  Journal
	started  bool
	pendingW int
	pendingH int
}

// NewRecorder prepares a journal for one game on one maze.
func NewRecorder(gameID string, maze mazes.Definition, cfg config.ChaseConfig) *Recorder {
	return &Recorder{
		journal: Journal{
			Version: Version,
			GameID:  gameID,
			Maze:    maze,
			Config:  cfg,
		},
	}
}

// Begin stores the runtime the first Reset used and the clock reading at that moment.
func (r *Recorder) Begin(rt core.RuntimeConfig, start time.Time) {
	r.journal.Seed = rt.Seed
	r.journal.TickRate = rt.TickRate
	r.journal.ScreenW = rt.ScreenW
	r.journal.ScreenH = rt.ScreenH
	r.journal.Start = start
	r.journal.Frames = r.journal.Frames[:0]
	r.started = true
}

// Started reports whether Begin was called.
func (r *Recorder) Started() bool {
	return r.started
}

// Tick records a stepped frame.
func (r *Recorder) Tick(at time.Time, in core.InputFrame) {
	if !r.started {
		return
	}
	f := r.frame(at)
	if len(in.Order) > 0 {
		f.Actions = append([]core.Action(nil), in.Order...)
	}
	r.journal.Frames = append(r.journal.Frames, f)
}

// Restart records a reset with a fresh seed.
func (r *Recorder) Restart(at time.Time, seed int64) {
	if !r.started {
		return
	}
	f := r.frame(at)
	f.Seed = seed
	r.journal.Frames = append(r.journal.Frames, f)
}

// Resize remembers a window change; it is attached to the next frame.
func (r *Recorder) Resize(w, h int) {
	r.pendingW, r.pendingH = w, h
}

func (r *Recorder) frame(at time.Time) Frame {
	f := Frame{Elapsed: at.Sub(r.journal.Start), W: r.pendingW, H: r.pendingH}
	r.pendingW, r.pendingH = 0, 0
	return f
}

// Len returns the number of recorded frames.
func (r *Recorder) Len() int {
	return len(r.journal.Frames)
}

// Finish stamps the final state and returns the completed journal.
func (r *Recorder) Finish(final Final) *Journal {
	r.journal.Final = &final
	r.journal.RecordedAt = time.Now()
	j := r.journal
	j.Frames = append([]Frame(nil), r.journal.Frames...)
	return &j
}
