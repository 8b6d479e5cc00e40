package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-chase/internal/games/chase"
	"github.com/vovakirdan/tui-chase/internal/registry"
	"github.com/vovakirdan/tui-chase/internal/storage"
)

const runLimit = 50

// runOrder selects how the run log is sorted.
type runOrder int

const (
	byScore runOrder = iota
	byRecent
)

func (o runOrder) String() string {
	if o == byRecent {
		return "latest first"
	}
	return "best first"
}

type runsKeys struct {
	Prev  key.Binding
	Next  key.Binding
	Order key.Binding
	Back  key.Binding
	Quit  key.Binding
}

func newRunsKeys() runsKeys {
	return runsKeys{
		Prev:  key.NewBinding(key.WithKeys("left", "h", "shift+tab"), key.WithHelp("←", "prev maze")),
		Next:  key.NewBinding(key.WithKeys("right", "l", "tab"), key.WithHelp("→", "next maze")),
		Order: key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "best/latest")),
		Back:  key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("b", "back")),
		Quit:  key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k runsKeys) hint() string {
	parts := make([]string, 0, 5)
	for _, b := range []key.Binding{k.Prev, k.Next, k.Order, k.Back, k.Quit} {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, "   ")
}

type runsExit int

const (
	runsOpen runsExit = iota
	runsBack
	runsQuit
)

// mazeGame is a registered chase game as the run log names it.
type mazeGame struct {
	id    string
	title string
}

func mazeGames() []mazeGame {
	var games []mazeGame
	for _, info := range registry.List() {
		if _, ok := chase.MazeID(info.ID); ok {
			games = append(games, mazeGame{id: info.ID, title: info.Title})
		}
	}
	return games
}

var (
	runsTitle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))
	runsSummary = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	runsMuted   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	runsBox     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("19")).Padding(0, 1)
)

// RunsModel is the run log of one maze: a summary of the session on it and
// every run with its outcome, length and score.
type RunsModel struct {
	games  []mazeGame
	at     int
	order  runOrder
	store  *storage.Store
	stats  *storage.GameStats
	runs   []storage.Run
	table  table.Model
	keys   runsKeys
	width  int
	height int
	exit   runsExit
}

// NewRunsModel opens the run log on gameID, or on the first maze when it is not listed.
func NewRunsModel(store *storage.Store, width, height int, gameID string) RunsModel {
	m := RunsModel{
		games:  mazeGames(),
		store:  store,
		keys:   newRunsKeys(),
		width:  width,
		height: height,
	}
	for i, g := range m.games {
		if g.id == gameID {
			m.at = i
		}
	}
	m.reload()
	return m
}

// GameID returns the maze on display.
func (m RunsModel) GameID() string {
	if len(m.games) == 0 {
		return ""
	}
	return m.games[m.at].id
}

func (m *RunsModel) reload() {
	m.runs, m.stats = nil, nil
	id := m.GameID()
	if m.store != nil && id != "" {
		var err error
		if m.order == byRecent {
			m.runs, err = m.store.RecentRuns(id, runLimit)
		} else {
			m.runs, err = m.store.TopRuns(id, runLimit)
		}
		if err != nil {
			m.runs = nil
		}
		if st, err := m.store.Stats(id); err == nil {
			m.stats = st
		}
	}
	m.table = m.buildTable()
}

func (m RunsModel) buildTable() table.Model {
	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		rows[i] = table.Row{
			outcomeLabel(r.Outcome),
			strconv.Itoa(r.Score),
			strconv.Itoa(r.Ticks),
			formatDuration(r.Duration),
			r.Player,
			r.CreatedAt.Format("15:04:05"),
		}
	}

	// Title, summary, borders and the hint take ten rows; the header takes two.
	height := max(4, min(len(rows)+3, m.height-10))

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Outcome", Width: 8},
			{Title: "Score", Width: 7},
			{Title: "Ticks", Width: 7},
			{Title: "Time", Width: 6},
			{Title: "Player", Width: 12},
			{Title: "At", Width: 8},
		}),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height),
	)
	st := table.DefaultStyles()
	st.Header = st.Header.Bold(true).BorderStyle(lipgloss.NormalBorder()).BorderBottom(true).BorderForeground(lipgloss.Color("19"))
	st.Selected = st.Selected.Foreground(lipgloss.Color("0")).Background(lipgloss.Color("3"))
	t.SetStyles(st)
	return t
}

func outcomeLabel(outcome string) string {
	switch outcome {
	case storage.OutcomeWon:
		return "✓ won"
	case storage.OutcomeLost:
		return "✗ lost"
	default:
		return "· " + outcome
	}
}

// formatDuration renders a run length as m:ss.
func formatDuration(d time.Duration) string {
	secs := int(d.Round(time.Second).Seconds())
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

// Init implements tea.Model.
func (m RunsModel) Init() tea.Cmd {
	return nil
}

// Update switches mazes and ordering; other keys scroll the table.
func (m RunsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.table = m.buildTable()
		return m, nil

	case tea.KeyMsg:
		n := len(m.games)
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.exit = runsQuit
			return m, nil
		case key.Matches(msg, m.keys.Back):
			m.exit = runsBack
			return m, nil
		case key.Matches(msg, m.keys.Next) && n > 0:
			m.at = (m.at + 1) % n
			m.reload()
			return m, nil
		case key.Matches(msg, m.keys.Prev) && n > 0:
			m.at = (m.at + n - 1) % n
			m.reload()
			return m, nil
		case key.Matches(msg, m.keys.Order):
			m.order = 1 - m.order
			m.reload()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m RunsModel) summary() string {
	st := m.stats
	if st == nil || st.RunsCount == 0 {
		return runsMuted.Render("No runs on this maze yet. Runs are kept until you quit.")
	}
	rate := 100 * st.Wins / st.RunsCount
	return runsSummary.Render(fmt.Sprintf("%d runs   %d won (%d%%)   best %d   avg %.0f   %s",
		st.RunsCount, st.Wins, rate, st.HighScore, st.AvgScore, m.order))
}

// View implements tea.Model.
func (m RunsModel) View() string {
	if len(m.games) == 0 {
		return "No mazes registered."
	}
	title := runsTitle.Render("RUNS  " + m.games[m.at].title)

	body := m.summary()
	if len(m.runs) > 0 {
		body += "\n\n" + m.table.View()
	}

	page := lipgloss.JoinVertical(lipgloss.Center,
		title, "", runsBox.Render(body), "", runsMuted.Render(m.keys.hint()))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Top, page)
}
