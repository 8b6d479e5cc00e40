package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-chase/internal/audio"
	"github.com/vovakirdan/tui-chase/internal/core"
	"github.com/vovakirdan/tui-chase/internal/registry"
	"github.com/vovakirdan/tui-chase/internal/replay"
	"github.com/vovakirdan/tui-chase/internal/storage"
)

// Resizer is implemented by games that can follow a window resize without a reset.
type Resizer interface {
	Resize(w, h int)
}

// Hooks are the optional side channels of a running game. Nil fields are skipped.
type Hooks struct {
	Store    *storage.Store   // Session scoreboard; runs are recorded on game over or quit
	Cues     audio.Cues       // Sound cues for step events
	Recorder *replay.Recorder // Replay journal
	Player   string           // Name stored with each run
	Log      *log.Logger      // Debug log; stdout belongs to Bubble Tea
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	hooks      Hooks
	config     core.RuntimeConfig
	clock      *core.ManualClock
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
	runStart   time.Time
	quitting   bool
	recorded   bool // Whether the current run has been stored
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, hooks Hooks) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if hooks.Cues == nil {
		hooks.Cues = audio.Silent{}
	}
	if hooks.Log == nil {
		hooks.Log = log.New(io.Discard)
	}

	// Game timers follow tick timestamps so a journal can replay them.
	clock := core.NewManualClock(time.Now())
	if cu, ok := game.(registry.ClockUser); ok {
		cu.UseClock(clock)
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		hooks:      hooks,
		config:     cfg,
		clock:      clock,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	if m.hooks.Recorder != nil {
		m.hooks.Recorder.Begin(m.config, m.clock.Now())
	}
	m.hooks.Log.Debug("game started", "game", m.game.ID(), "seed", m.config.Seed)

	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	case "r":
		// The tick loop is stopped after game over; restarting re-arms it.
		if m.gameState.GameOver {
			return m.restart(time.Now())
		}
	}

	if quit := m.keyMapper.MapKeyToFrame(msg, &m.inputFrame); quit {
		if m.gameState.Ticks > 0 {
			m.finishRun(storage.OutcomeQuit)
		}
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(Resizer); ok {
		r.Resize(msg.Width, msg.Height)
		if m.hooks.Recorder != nil {
			m.hooks.Recorder.Resize(msg.Width, msg.Height)
		}
		return m, nil
	}

	// Games without Resize start over with the new dimensions.
	if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	m.clock.Set(now)
	if m.runStart.IsZero() {
		m.runStart = now
	}

	if m.hooks.Recorder != nil {
		m.hooks.Recorder.Tick(now, m.inputFrame)
	}
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	if len(result.Events) > 0 {
		m.hooks.Cues.Play(result.Events...)
	}

	if m.gameState.GameOver {
		outcome := storage.OutcomeLost
		if m.gameState.Won {
			outcome = storage.OutcomeWon
		}
		m.finishRun(outcome)
		return m, nil
	}

	return m, tickCmd(m.config.TickRate)
}

// restart begins a new run with a fresh seed and re-arms the tick loop.
func (m Model) restart(now time.Time) (tea.Model, tea.Cmd) {
	m.clock.Set(now)
	m.config.Seed = now.UnixNano()
	m.game.Reset(m.config)
	if m.hooks.Recorder != nil {
		m.hooks.Recorder.Restart(now, m.config.Seed)
	}

	m.gameState = m.game.State()
	m.runStart = now
	m.recorded = false
	m.inputFrame.Clear()
	m.hooks.Log.Debug("game restarted", "game", m.game.ID(), "seed", m.config.Seed)

	return m, tickCmd(m.config.TickRate)
}

// finishRun stores the current run once.
func (m *Model) finishRun(outcome string) {
	if m.recorded {
		return
	}
	m.recorded = true
	m.hooks.Log.Debug("run finished", "game", m.game.ID(), "outcome", outcome,
		"score", m.gameState.Score, "ticks", m.gameState.Ticks)

	if m.hooks.Store == nil {
		return
	}
	_, err := m.hooks.Store.RecordRun(storage.Run{
		GameID:   m.game.ID(),
		Player:   m.hooks.Player,
		Score:    m.gameState.Score,
		Outcome:  outcome,
		Ticks:    m.gameState.Ticks,
		Duration: m.clock.Now().Sub(m.runStart),
	})
	if err != nil {
		m.hooks.Log.Warn("run not recorded", "err", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".chase", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.hooks.Log.Warn("screenshot failed", "err", err)
		return
	}

	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.hooks.Log.Warn("screenshot failed", "err", err)
		return
	}
	m.hooks.Log.Debug("screenshot saved", "path", path)
}

// State returns the last observed game state.
func (m Model) State() core.GameState {
	return m.gameState
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for one game and returns the final model.
func Run(game registry.Game, cfg core.RuntimeConfig, hooks Hooks) (Model, error) {
	model := NewModel(game, cfg, hooks)

	p := tea.NewProgram(model, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return model, err
	}
	if fm, ok := final.(Model); ok {
		return fm, nil
	}
	return model, nil
}
