package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-chase/internal/config"
	"github.com/vovakirdan/tui-chase/internal/core"
	"github.com/vovakirdan/tui-chase/internal/games/chase"
	"github.com/vovakirdan/tui-chase/internal/games/chase/mazes"
	"github.com/vovakirdan/tui-chase/internal/replay"
	"github.com/vovakirdan/tui-chase/internal/storage"
)

// duel puts a monster next to the player in a dead-end corridor.
var duel = mazes.Definition{
	ID:     "duel",
	Title:  "Duel",
	Layout: []string{"-----", "-PG.-", "-----"},
}

type recordingCues struct {
	events []core.Event
}

func (c *recordingCues) Play(events ...core.Event) {
	c.events = append(c.events, events...)
}

func newDuelModel(t *testing.T, hooks Hooks) (Model, *chase.Game) {
	t.Helper()
	game := chase.New("duel", chase.WithDefinition(duel), chase.WithConfig(config.DefaultChaseConfig()))
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 3}
	m := NewModel(game, cfg, hooks)
	if cmd := m.Init(); cmd == nil {
		t.Fatal("Init() should start the tick loop")
	}
	return m, game
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return nm, cmd
}

// playUntilOver ticks until the tick loop stops, failing after limit ticks.
func playUntilOver(t *testing.T, m Model, start time.Time, limit int) (Model, int) {
	t.Helper()
	for i := 1; i <= limit; i++ {
		var cmd tea.Cmd
		m, cmd = update(t, m, TickMsg(start.Add(time.Duration(i)*16*time.Millisecond)))
		if cmd == nil {
			return m, i
		}
	}
	t.Fatalf("game still running after %d ticks", limit)
	return m, limit
}

func TestModelStopsTickingAndRecordsRun(t *testing.T) {
	store, err := storage.OpenSession()
	if err != nil {
		t.Fatalf("OpenSession() error = %v", err)
	}
	defer store.Close()

	cues := &recordingCues{}
	m, game := newDuelModel(t, Hooks{Store: store, Cues: cues, Player: "tester"})

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m, ticks := playUntilOver(t, m, time.Now(), 200)

	if !m.State().GameOver || m.State().Won {
		t.Fatalf("State() = %+v, expected a loss", m.State())
	}
	if game.State().Ticks != ticks {
		t.Errorf("game ran %d ticks for %d platform ticks", game.State().Ticks, ticks)
	}

	runs, err := store.TopRuns(game.ID(), 10)
	if err != nil {
		t.Fatalf("TopRuns() error = %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("recorded %d runs, expected 1", len(runs))
	}
	if runs[0].Outcome != storage.OutcomeLost || runs[0].Player != "tester" {
		t.Errorf("run = %+v, expected a lost run by tester", runs[0])
	}

	if len(cues.events) == 0 || cues.events[len(cues.events)-1] != core.EventLost {
		t.Errorf("cues = %v, expected to end with %q", cues.events, core.EventLost)
	}

	// Quitting after game over must not store the run twice.
	_, cmd := update(t, m, runeKey('q'))
	if cmd == nil {
		t.Error("q should quit")
	}
	if runs, _ := store.TopRuns(game.ID(), 10); len(runs) != 1 {
		t.Errorf("recorded %d runs after quit, expected 1", len(runs))
	}
}

func TestModelRestartReArmsTicks(t *testing.T) {
	rec := replay.NewRecorder("chase_duel", duel, config.DefaultChaseConfig())
	m, game := newDuelModel(t, Hooks{Recorder: rec})

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m, _ = playUntilOver(t, m, time.Now(), 200)
	framesBefore := rec.Len()

	m, cmd := update(t, m, runeKey('r'))
	if cmd == nil {
		t.Fatal("restart should re-arm the tick loop")
	}
	if m.State().GameOver {
		t.Error("State() still over after restart")
	}
	if game.State().Ticks != 0 {
		t.Errorf("game ticks = %d after restart, expected 0", game.State().Ticks)
	}
	if rec.Len() != framesBefore+1 {
		t.Errorf("recorder has %d frames, expected a restart frame after %d", rec.Len(), framesBefore)
	}
}

func TestModelResizeKeepsWorld(t *testing.T) {
	m, game := newDuelModel(t, Hooks{})
	world := game.World()

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if game.World() != world {
		t.Error("resize should not rebuild the world")
	}

	// Too small freezes the simulation.
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 4, Height: 2})
	m, _ = update(t, m, TickMsg(time.Now()))
	if game.State().Ticks != 0 {
		t.Errorf("game ticked %d times in a too-small window", game.State().Ticks)
	}

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	update(t, m, TickMsg(time.Now().Add(time.Second)))
	if game.State().Ticks != 1 {
		t.Errorf("game ticks = %d after growing the window, expected 1", game.State().Ticks)
	}
}

func TestModelUsesTickClock(t *testing.T) {
	m, game := newDuelModel(t, Hooks{})
	at := time.Date(2030, 1, 2, 3, 4, 5, 0, time.UTC)

	update(t, m, TickMsg(at))
	if got := game.World().Now(); !got.Equal(at) {
		t.Errorf("world clock = %v, expected tick time %v", got, at)
	}
}
