// Package replay records chase sessions as msgpack journals and re-simulates them.
//
// A journal holds everything a run depends on: the maze, the config, the RNG
// seed and, per tick, the wall-clock offset and the actions that arrived.
// Feeding the same frames to a fresh game through a manual clock reproduces
// the run tick for tick.
package replay

import (
	"fmt"
	"os"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/vovakirdan/tui-chase/internal/config"
	"github.com/vovakirdan/tui-chase/internal/core"
	"github.com/vovakirdan/tui-chase/internal/games/chase/mazes"
)

// Version is the journal format revision written by this package.
const Version = 1

// Frame is one platform tick.
type Frame struct {
	// Elapsed is the tick timestamp relative to Journal.Start.
	Elapsed time.Duration `msgpack:"t"`
	Actions []core.Action `msgpack:"a,omitempty"`
	// Seed is set when the tick restarted the run instead of stepping it.
	Seed int64 `msgpack:"seed,omitempty"`
	// W and H are set when the window was resized before the tick.
	W int `msgpack:"w,omitempty"`
	H int `msgpack:"h,omitempty"`
}

// Final is the state observed when recording stopped.
type Final struct {
	Score int    `msgpack:"score"`
	Won   bool   `msgpack:"won"`
	Over  bool   `msgpack:"over"`
	Ticks int    `msgpack:"ticks"`
	Hash  string `msgpack:"hash"`
}

// Journal is a recorded session.
type Journal struct {
	Version    int                `msgpack:"version"`
	GameID     string             `msgpack:"game_id"`
	Maze       mazes.Definition   `msgpack:"maze"`
	Config     config.ChaseConfig `msgpack:"config"`
	Seed       int64              `msgpack:"seed"`
	TickRate   int                `msgpack:"tick_rate"`
	ScreenW    int                `msgpack:"screen_w"`
	ScreenH    int                `msgpack:"screen_h"`
	Start      time.Time          `msgpack:"start"`
	Frames     []Frame            `msgpack:"frames"`
	Final      *Final             `msgpack:"final,omitempty"`
	RecordedAt time.Time          `msgpack:"recorded_at"`
}

// Runtime returns the runtime config the recording started with.
func (j *Journal) Runtime() core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  j.ScreenW,
		ScreenH:  j.ScreenH,
		TickRate: j.TickRate,
		Seed:     j.Seed,
	}
}

// Encode serializes the journal.
func (j *Journal) Encode() ([]byte, error) {
	data, err := msgpack.Marshal(j)
	if err != nil {
		return nil, fmt.Errorf("replay: encode journal: %w", err)
	}
	return data, nil
}

// Decode parses a serialized journal.
func Decode(data []byte) (*Journal, error) {
	var j Journal
	if err := msgpack.Unmarshal(data, &j); err != nil {
		return nil, fmt.Errorf("replay: decode journal: %w", err)
	}
	if j.Version != Version {
		return nil, fmt.Errorf("replay: unsupported journal version %d", j.Version)
	}
	if err := j.Maze.Validate(); err != nil {
		return nil, fmt.Errorf("replay: %w", err)
	}
	return &j, nil
}

// Save writes the journal to path.
func (j *Journal) Save(path string) error {
	data, err := j.Encode()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("replay: write %s: %w", path, err)
	}
	return nil
}

// Load reads a journal from path.
func Load(path string) (*Journal, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("replay: read %s: %w", path, err)
	}
	return Decode(data)
}
