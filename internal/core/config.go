package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for adversary decisions
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState is what the platform needs to know about a running game.
type GameState struct {
	Score    int  // Current score
	GameOver bool // The run reached a terminal phase
	Won      bool // Terminal phase was a win (only meaningful with GameOver)
	Paused   bool // Whether the game is paused
	Ticks    int  // Simulated ticks since reset
}

// Event is a notable thing that happened during a tick.
// The platform uses events for sound cues and logging.
type Event string

const (
	EventPellet         Event = "pellet"
	EventPowerUp        Event = "power_up"
	EventAdversaryEaten Event = "adversary_eaten"
	EventWon            Event = "won"
	EventLost           Event = "lost"
)

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State  GameState
	Events []Event
}

// Has reports whether the result carries the given event.
func (r StepResult) Has(e Event) bool {
	for _, got := range r.Events {
		if got == e {
			return true
		}
	}
	return false
}
