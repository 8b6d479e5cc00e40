package tui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-chase/internal/core"
	"github.com/vovakirdan/tui-chase/internal/registry"
	"github.com/vovakirdan/tui-chase/internal/storage"
)

type sessionScreen int

const (
	screenLobby sessionScreen = iota
	screenGame
	screenRuns
)

// SessionModel is a whole chase session in one program: the lobby, the game
// being played and the run log. Leaving a game returns to the lobby; only the
// lobby and the run log end the session.
type SessionModel struct {
	config   core.RuntimeConfig
	hooks    Hooks
	screen   sessionScreen
	lobby    LobbyModel
	game     *Model
	runs     RunsModel
	last     string // maze last played or browsed
	quitting bool
}

// NewSessionModel starts a session in the lobby. A zero cfg.Seed gives every
// game a fresh seed; any other value pins it.
func NewSessionModel(cfg core.RuntimeConfig, hooks Hooks) SessionModel {
	if hooks.Log == nil {
		hooks.Log = log.New(io.Discard)
	}
	return SessionModel{
		config: cfg,
		hooks:  hooks,
		lobby:  NewLobbyModel(hooks.Store, cfg.ScreenW, cfg.ScreenH, ""),
	}
}

// Init implements tea.Model.
func (m SessionModel) Init() tea.Cmd {
	return m.lobby.Init()
}

// Update routes the message to the screen on display.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.screen {
	case screenGame:
		return m.updateGame(msg)
	case screenRuns:
		return m.updateRuns(msg)
	}
	return m.updateLobby(msg)
}

func (m SessionModel) updateLobby(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Ticks left over from a finished game land here and are dropped.
	if _, ok := msg.(TickMsg); ok {
		return m, nil
	}

	next, cmd := m.lobby.Update(msg)
	if lobby, ok := next.(LobbyModel); ok {
		m.lobby = lobby
	}

	switch m.lobby.Choice() {
	case lobbyQuit:
		m.quitting = true
		return m, tea.Quit
	case lobbyRuns:
		m.last = m.lobby.Focused()
		m.runs = NewRunsModel(m.hooks.Store, m.config.ScreenW, m.config.ScreenH, m.last)
		m.screen = screenRuns
		return m, m.runs.Init()
	case lobbyPlay:
		return m.startGame(m.lobby.Focused())
	}
	return m, cmd
}

func (m SessionModel) startGame(gameID string) (tea.Model, tea.Cmd) {
	game, err := registry.Create(gameID)
	if err != nil {
		m.hooks.Log.Error("cannot create game", "game", gameID, "err", err)
		return m.backToLobby()
	}
	gm := NewModel(game, m.config, m.hooks)
	m.game = &gm
	m.last = gameID
	m.screen = screenGame
	return m, m.game.Init()
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	// B leaves a finished or paused game.
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "b" {
		state := m.game.State()
		if state.GameOver || state.Paused {
			if !state.GameOver {
				m.game.finishRun(storage.OutcomeQuit)
			}
			return m.backToLobby()
		}
	}

	next, cmd := m.game.Update(msg)
	if gm, ok := next.(Model); ok {
		m.game = &gm
	}
	// Quitting a game records it and drops its tea.Quit.
	if m.game.quitting {
		return m.backToLobby()
	}
	return m, cmd
}

func (m SessionModel) updateRuns(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(TickMsg); ok {
		return m, nil
	}

	next, cmd := m.runs.Update(msg)
	if rm, ok := next.(RunsModel); ok {
		m.runs = rm
	}
	switch m.runs.exit {
	case runsQuit:
		m.quitting = true
		return m, tea.Quit
	case runsBack:
		m.last = m.runs.GameID()
		return m.backToLobby()
	}
	return m, cmd
}

func (m SessionModel) backToLobby() (tea.Model, tea.Cmd) {
	m.game = nil
	m.screen = screenLobby
	m.lobby = NewLobbyModel(m.hooks.Store, m.config.ScreenW, m.config.ScreenH, m.last)
	return m, m.lobby.Init()
}

// View implements tea.Model.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	switch m.screen {
	case screenGame:
		if m.game != nil {
			return m.game.View()
		}
	case screenRuns:
		return m.runs.View()
	}
	return m.lobby.View()
}

// RunSession runs a full session on the local terminal.
func RunSession(cfg core.RuntimeConfig, hooks Hooks) error {
	_, err := tea.NewProgram(NewSessionModel(cfg, hooks), tea.WithAltScreen()).Run()
	return err
}
