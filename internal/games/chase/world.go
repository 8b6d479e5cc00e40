package chase

import (
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/tui-chase/internal/core"
)

// Phase is the run state. It leaves Running exactly once.
type Phase int

const (
	PhaseRunning Phase = iota
	PhaseWon
	PhaseLost
)

func (p Phase) String() string {
	switch p {
	case PhaseWon:
		return "won"
	case PhaseLost:
		return "lost"
	default:
		return "running"
	}
}

// Terminal reports whether the run is over.
func (p Phase) Terminal() bool {
	return p != PhaseRunning
}

// GameState is the score and phase of a run.
type GameState struct {
	Score int
	Phase Phase
}

// Tuning holds the physical constants of a run.
type Tuning struct {
	TileSize        float64
	PlayerSpeed     float64
	PlayerRadius    float64
	AdversarySpeed  float64
	AdversaryRadius float64
	Items           ItemSpec
	VulnerableFor   time.Duration
	MouthMax        float64
	MouthRate       float64
	AdversaryColors []core.Color
}

// DefaultTuning returns the stock constants.
func DefaultTuning() Tuning {
	return Tuning{
		TileSize:        40,
		PlayerSpeed:     5,
		PlayerRadius:    15,
		AdversarySpeed:  2,
		AdversaryRadius: 15,
		Items:           DefaultItemSpec(),
		VulnerableFor:   DefaultVulnerableFor,
		MouthMax:        DefaultMouthMax,
		MouthRate:       DefaultMouthRate,
		AdversaryColors: []core.Color{core.ColorRed, core.ColorPink, core.ColorCyan, core.ColorYellow},
	}
}

// SpeedFunc returns the adversary speed to adopt at the next junction.
type SpeedFunc func(score, ticks int) float64

// World is the whole simulation: maze, actors, collectibles and state.
// It is driven one frame at a time by Tick and never reads globals.
type World struct {
	Maze        *Maze
	Tuning      Tuning
	State       GameState
	Player      *Player
	Adversaries []*Adversary
	Pellets     *Collectibles
	PowerUps    *Collectibles
	Vuln        *Vulnerability
	Ticks       int

	clock    core.Clock
	rng      Chooser
	speed    SpeedFunc
	frozenAt time.Time
}

// NewWorld builds a world from a maze. rng drives every random decision.
func NewWorld(m *Maze, t Tuning, clock core.Clock, rng Chooser) *World {
	if clock == nil {
		clock = core.SystemClock{}
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	w := &World{
		Maze:     m,
		Tuning:   t,
		Player:   NewPlayer(m.PlayerSpawn(), t.PlayerRadius, t.PlayerSpeed),
		Pellets:  NewCollectibles(m.Pellets()),
		PowerUps: NewCollectibles(m.PowerUps()),
		Vuln:     NewVulnerability(t.VulnerableFor),
		clock:    clock,
		rng:      rng,
	}
	if t.MouthMax > 0 {
		w.Player.MouthMax = t.MouthMax
	}
	if t.MouthRate > 0 {
		w.Player.MouthRate = t.MouthRate
	}
	for i, pos := range m.AdversarySpawns() {
		color := core.ColorRed
		if len(t.AdversaryColors) > 0 {
			color = t.AdversaryColors[i%len(t.AdversaryColors)]
		}
		a := NewAdversary(pos, t.AdversaryRadius, t.AdversarySpeed, color)
		a.Face(m.Walls(), m.TileSize())
		w.Adversaries = append(w.Adversaries, a)
	}
	return w
}

// SetSpeedFunc installs a difficulty curve for adversary speed.
func (w *World) SetSpeedFunc(f SpeedFunc) {
	w.speed = f
}

// SetClock swaps the time source used for vulnerability timers.
func (w *World) SetClock(c core.Clock) {
	if c != nil {
		w.clock = c
	}
}

// Now returns the world's clock reading.
func (w *World) Now() time.Time {
	return w.clock.Now()
}

// Freeze stops the vulnerability timers. Repeated calls keep the first freeze time.
func (w *World) Freeze() {
	if w.frozenAt.IsZero() {
		w.frozenAt = w.clock.Now()
	}
}

// Thaw resumes the timers, pushing every expiry back by the frozen span.
func (w *World) Thaw() {
	if w.frozenAt.IsZero() {
		return
	}
	w.Vuln.Delay(w.clock.Now().Sub(w.frozenAt))
	w.frozenAt = time.Time{}
}

// Frozen reports whether the timers are stopped.
func (w *World) Frozen() bool {
	return !w.frozenAt.IsZero()
}

// TimerNow is the instant timers are measured against: the freeze time
// while frozen, the clock otherwise.
func (w *World) TimerNow() time.Time {
	if w.Frozen() {
		return w.frozenAt
	}
	return w.clock.Now()
}

// Adversary finds a live adversary by id.
func (w *World) Adversary(id uuid.UUID) *Adversary {
	for _, a := range w.Adversaries {
		if a.ID == id {
			return a
		}
	}
	return nil
}

// AnyVulnerable reports whether at least one live adversary is vulnerable.
func (w *World) AnyVulnerable() bool {
	for _, a := range w.Adversaries {
		if a.Vulnerable {
			return true
		}
	}
	return false
}

// Tick runs one frame. It does nothing once the phase is terminal.
func (w *World) Tick(in *InputState) []core.Event {
	if w.State.Phase.Terminal() {
		return nil
	}
	w.Thaw()
	w.Ticks++

	walls := w.Maze.Walls()
	tile := w.Tuning.TileSize
	now := w.clock.Now()
	var events []core.Event

	w.Vuln.Poll(now, w.Adversary)

	w.Player.Steer(in, walls, tile)

	for i := len(w.Adversaries) - 1; i >= 0; i-- {
		a := w.Adversaries[i]
		if !a.Touches(w.Player.Actor) {
			continue
		}
		if a.Vulnerable {
			w.Adversaries = append(w.Adversaries[:i], w.Adversaries[i+1:]...)
			w.Vuln.Forget(a.ID)
			events = append(events, core.EventAdversaryEaten)
			continue
		}
		w.State.Phase = PhaseLost
		return append(events, core.EventLost)
	}

	for _, it := range w.PowerUps.Consume(w.Player.Actor) {
		w.State.Score += it.Value
		w.Vuln.Grant(now, w.Adversaries)
		events = append(events, core.EventPowerUp)
	}
	for _, it := range w.Pellets.Consume(w.Player.Actor) {
		w.State.Score += it.Value
		events = append(events, core.EventPellet)
	}

	w.Player.Clamp(walls, tile)
	w.Player.Integrate()
	w.Player.Animate()

	for _, a := range w.Adversaries {
		if w.speed != nil {
			a.NextSpeed = w.speed(w.State.Score, w.Ticks)
		}
		a.Navigate(walls, tile, w.rng)
	}

	if w.Pellets.Len() == 0 {
		w.State.Phase = PhaseWon
		events = append(events, core.EventWon)
	}
	return events
}
