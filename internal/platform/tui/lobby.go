package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-chase/internal/games/chase"
	"github.com/vovakirdan/tui-chase/internal/games/chase/mazes"
	"github.com/vovakirdan/tui-chase/internal/registry"
	"github.com/vovakirdan/tui-chase/internal/storage"
)

// mazeCard is one playable maze with its starting board already rendered.
type mazeCard struct {
	gameID   string
	title    string
	blurb    string
	cols     int
	rows     int
	pellets  int
	powerUps int
	monsters int
	board    string
}

// loadCards lists every registered chase maze in registry order.
func loadCards() []mazeCard {
	var cards []mazeCard
	for _, info := range registry.List() {
		mazeID, ok := chase.MazeID(info.ID)
		if !ok {
			continue
		}
		def, err := mazes.ByID(mazeID)
		if err != nil {
			continue
		}
		screen, w := chase.Preview(def)
		cards = append(cards, mazeCard{
			gameID:   info.ID,
			title:    def.Title,
			blurb:    def.Description,
			cols:     w.Maze.Cols(),
			rows:     w.Maze.Rows(),
			pellets:  w.Pellets.Len(),
			powerUps: w.PowerUps.Len(),
			monsters: len(w.Adversaries),
			board:    RenderScreen(screen),
		})
	}
	return cards
}

// lobbyChoice is what the player decided in the lobby.
type lobbyChoice int

const (
	lobbyBrowsing lobbyChoice = iota
	lobbyPlay
	lobbyRuns
	lobbyQuit
)

var (
	lobbyTitle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))
	lobbyCursor  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	lobbyMuted   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	lobbyPanel   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("19")).Padding(0, 1)
	lobbyWinRate = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
)

// LobbyModel lets the player pick a maze. The highlighted maze is shown in
// its starting position next to how this session has gone on it.
type LobbyModel struct {
	cards  []mazeCard
	cursor int
	stats  map[string]*storage.GameStats
	keys   *KeyMapper
	width  int
	height int
	choice lobbyChoice
}

// NewLobbyModel creates a lobby with the cursor on focus when it is listed.
func NewLobbyModel(store *storage.Store, width, height int, focus string) LobbyModel {
	m := LobbyModel{
		cards:  loadCards(),
		keys:   NewKeyMapper(),
		width:  width,
		height: height,
	}
	if store != nil {
		if stats, err := store.AllStats(); err == nil {
			m.stats = stats
		}
	}
	for i, c := range m.cards {
		if c.gameID == focus {
			m.cursor = i
		}
	}
	return m
}

// Init implements tea.Model.
func (m LobbyModel) Init() tea.Cmd {
	return nil
}

// Update moves the cursor or records a choice. It never quits the program;
// the owner reads Choice after every update.
func (m LobbyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height

	case tea.KeyMsg:
		n := len(m.cards)
		switch m.keys.MapKeyToMenuAction(msg) {
		case MenuActionUp:
			if n > 0 {
				m.cursor = (m.cursor + n - 1) % n
			}
		case MenuActionDown:
			if n > 0 {
				m.cursor = (m.cursor + 1) % n
			}
		case MenuActionSelect:
			if n > 0 {
				m.choice = lobbyPlay
			}
		case MenuActionScoreboard:
			m.choice = lobbyRuns
		case MenuActionQuit:
			m.choice = lobbyQuit
		}
	}
	return m, nil
}

// Choice returns the pending decision.
func (m LobbyModel) Choice() lobbyChoice {
	return m.choice
}

// Focused returns the game id under the cursor, empty when nothing is registered.
func (m LobbyModel) Focused() string {
	if len(m.cards) == 0 {
		return ""
	}
	return m.cards[m.cursor].gameID
}

// record summarizes the session on one maze.
func (m LobbyModel) record(gameID string) string {
	st := m.stats[gameID]
	if st == nil || st.RunsCount == 0 {
		return lobbyMuted.Render("not played")
	}
	return fmt.Sprintf("%s  best %d", lobbyWinRate.Render(fmt.Sprintf("won %d/%d", st.Wins, st.RunsCount)), st.HighScore)
}

func (m LobbyModel) renderList() string {
	var b strings.Builder
	for i, c := range m.cards {
		line := "  " + c.title
		if i == m.cursor {
			line = lobbyCursor.Render("▸ " + c.title)
		}
		fmt.Fprintf(&b, "%s\n    %s\n", line, m.record(c.gameID))
	}
	return b.String()
}

func (m LobbyModel) renderCard(c mazeCard) string {
	facts := fmt.Sprintf("%dx%d   pellets %d   power-ups %d   monsters %d",
		c.cols, c.rows, c.pellets, c.powerUps, c.monsters)
	body := c.board + "\n\n" + facts
	if c.blurb != "" {
		body += "\n" + lobbyMuted.Render(c.blurb)
	}
	return lobbyPanel.Render(body)
}

// View draws the maze list beside the highlighted board, stacked when narrow.
func (m LobbyModel) View() string {
	title := lobbyTitle.Render("C H A S E")
	if len(m.cards) == 0 {
		return title + "\n\nNo mazes registered."
	}

	list := m.renderList()
	card := m.renderCard(m.cards[m.cursor])
	body := lipgloss.JoinHorizontal(lipgloss.Top, list, "   ", card)
	if m.width > 0 && lipgloss.Width(body) > m.width {
		body = lipgloss.JoinVertical(lipgloss.Left, list, card)
	}

	hint := lobbyMuted.Render("up/down choose   enter play   tab runs   q quit")
	page := lipgloss.JoinVertical(lipgloss.Center, title, "", body, "", hint)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, page)
}
