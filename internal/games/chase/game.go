package chase

import (
	"math/rand"
	"strings"
	"time"

	"github.com/vovakirdan/tui-chase/internal/config"
	"github.com/vovakirdan/tui-chase/internal/core"
	"github.com/vovakirdan/tui-chase/internal/games/chase/mazes"
	"github.com/vovakirdan/tui-chase/internal/registry"
)

// Package-level settings applied by the CLI before games are created.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	mazePath         string
)

// SetConfigPath sets the custom config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset (easy, normal, hard, fixed).
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.DifficultyPreset(preset)
}

// SetMazePath makes every chase game load its layout from a YAML file.
func SetMazePath(path string) {
	mazePath = path
}

// Game adapts a World to the registry's Game interface.
type Game struct {
	id     string
	mazeID string

	// Overrides set through options; they win over the package settings.
	fixedDef *mazes.Definition
	fixedCfg *config.ChaseConfig

	runtime    core.RuntimeConfig
	clock      core.Clock
	def        mazes.Definition
	cfg        config.ChaseConfig
	difficulty *config.DifficultyManager
	world      *World
	input      InputState

	paused   bool
	tooSmall bool
	minW     int
	minH     int
	loadErr  error
}

// Option customizes a Game.
type Option func(*Game)

// WithClock sets the time source for vulnerability timers.
func WithClock(c core.Clock) Option {
	return func(g *Game) { g.clock = c }
}

// WithConfig uses cfg instead of loading one from disk.
func WithConfig(cfg config.ChaseConfig) Option {
	return func(g *Game) { g.fixedCfg = &cfg }
}

// WithDefinition plays the given maze instead of the built-in one.
func WithDefinition(def mazes.Definition) Option {
	return func(g *Game) { g.fixedDef = &def }
}

// New creates a chase game on a built-in maze. The registry id is "chase"
// for the classic maze and "chase_<maze>" for the others.
func New(mazeID string, opts ...Option) *Game {
	g := &Game{id: GameID(mazeID), mazeID: mazeID, clock: core.SystemClock{}}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// GameID returns the registry id that plays a built-in maze.
func GameID(mazeID string) string {
	if mazeID == "classic" {
		return "chase"
	}
	return "chase_" + mazeID
}

// MazeID is the inverse of GameID.
func MazeID(gameID string) (string, bool) {
	if gameID == "chase" {
		return "classic", true
	}
	mazeID, ok := strings.CutPrefix(gameID, "chase_")
	return mazeID, ok && mazeID != ""
}

func init() {
	for _, id := range []string{"classic", "tiny", "cross"} {
		mazeID := id
		registry.Register(GameID(mazeID), func() registry.Game {
			return New(mazeID)
		})
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.fixedDef != nil && g.fixedDef.Title != "" {
		return "Chase: " + g.fixedDef.Title
	}
	if def, err := mazes.ByID(g.mazeID); err == nil {
		return "Chase: " + def.Title
	}
	return "Chase"
}

// UseClock implements registry.ClockUser.
func (g *Game) UseClock(c core.Clock) {
	if c == nil {
		return
	}
	g.clock = c
	if g.world != nil {
		g.world.SetClock(c)
	}
}

// Reset builds a fresh world from the maze and config.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.paused = false
	g.input.Reset()
	g.loadErr = nil

	g.cfg = g.loadConfig()
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)

	def, err := g.loadDefinition()
	if err != nil {
		g.loadErr = err
		g.world = nil
		return
	}
	g.def = def

	maze := BuildMaze(def.Layout, g.cfg.World.TileSize, itemSpec(g.cfg))
	tuning := TuningFromConfig(g.cfg, def)
	tuning.AdversarySpeed = g.adversarySpeed(0, 0)

	g.world = NewWorld(maze, tuning, g.clock, rand.New(rand.NewSource(runtime.Seed)))
	g.world.SetSpeedFunc(g.adversarySpeed)

	// One row of HUD above the maze and one hint row below it.
	g.minW = maze.Cols() * 2
	g.minH = maze.Rows() + 2
	g.tooSmall = runtime.ScreenW < g.minW || runtime.ScreenH < g.minH
}

func (g *Game) loadConfig() config.ChaseConfig {
	if g.fixedCfg != nil {
		return *g.fixedCfg
	}
	cfg, err := config.LoadChase(configPath)
	if err != nil {
		cfg = config.DefaultChaseConfig()
	}
	config.ApplyChasePreset(&cfg, difficultyPreset)
	return cfg
}

func (g *Game) loadDefinition() (mazes.Definition, error) {
	if g.fixedDef != nil {
		return *g.fixedDef, nil
	}
	if mazePath != "" {
		return mazes.LoadFile(mazePath)
	}
	return mazes.ByID(g.mazeID)
}

func (g *Game) adversarySpeed(score, ticks int) float64 {
	return g.difficulty.AdversarySpeed(g.cfg.Adversary.Speed, g.cfg.World.TileSize, score, ticks)
}

func itemSpec(cfg config.ChaseConfig) ItemSpec {
	return ItemSpec{
		PelletRadius:  cfg.Items.PelletRadius,
		PelletValue:   cfg.Items.PelletValue,
		PowerUpRadius: cfg.Items.PowerUpRadius,
		PowerUpValue:  cfg.Items.PowerUpValue,
	}
}

// TuningFromConfig derives the world constants from a config and maze definition.
func TuningFromConfig(cfg config.ChaseConfig, def mazes.Definition) Tuning {
	t := Tuning{
		TileSize:        cfg.World.TileSize,
		PlayerSpeed:     cfg.Player.Speed,
		PlayerRadius:    cfg.Player.Radius,
		AdversarySpeed:  cfg.Adversary.Speed,
		AdversaryRadius: cfg.Adversary.Radius,
		Items:           itemSpec(cfg),
		VulnerableFor:   time.Duration(cfg.Items.VulnerableMS) * time.Millisecond,
		MouthMax:        cfg.Animation.MouthMax,
		MouthRate:       cfg.Animation.MouthRate,
	}
	for _, name := range def.Colors {
		if c, ok := core.ParseColor(name); ok {
			t.AdversaryColors = append(t.AdversaryColors, c)
		}
	}
	if len(t.AdversaryColors) == 0 {
		t.AdversaryColors = DefaultTuning().AdversaryColors
	}
	return t
}

// Step advances the simulation by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.world == nil {
		return core.StepResult{State: g.State()}
	}
	if g.tooSmall {
		g.world.Freeze()
		return core.StepResult{State: g.State()}
	}

	terminal := g.world.State.Phase.Terminal()
	if in.Has(core.ActionRestart) && terminal {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !terminal {
		g.paused = !g.paused
	}
	if g.paused {
		g.world.Freeze()
	}
	if g.paused || terminal {
		return core.StepResult{State: g.State()}
	}

	g.input.Apply(in)
	events := g.world.Tick(&g.input)
	return core.StepResult{State: g.State(), Events: events}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.world == nil {
		return core.GameState{}
	}
	phase := g.world.State.Phase
	return core.GameState{
		Score:    g.world.State.Score,
		GameOver: phase.Terminal(),
		Won:      phase == PhaseWon,
		Paused:   g.paused,
		Ticks:    g.world.Ticks,
	}
}

// World exposes the simulation, nil until Reset succeeds.
func (g *Game) World() *World {
	return g.world
}

// Definition returns the maze in play.
func (g *Game) Definition() mazes.Definition {
	return g.def
}

// Config returns the effective configuration.
func (g *Game) Config() config.ChaseConfig {
	return g.cfg
}

// Err reports why the last Reset could not build a world.
func (g *Game) Err() error {
	return g.loadErr
}

// MinSize returns the smallest screen that fits the maze.
func (g *Game) MinSize() (w, h int) {
	return g.minW, g.minH
}

// Resize updates the screen size without touching the simulation.
// A window that becomes too small freezes the run until it grows again.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
	if g.world != nil {
		g.tooSmall = w < g.minW || h < g.minH
	}
}
