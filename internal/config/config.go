// Package config provides YAML-based game configuration loading and
// difficulty management for the chase game.
package config

// ChaseConfig contains all configuration for the chase game.
type ChaseConfig struct {
	World      WorldConfig      `yaml:"world"`
	Player     ActorConfig      `yaml:"player"`
	Adversary  ActorConfig      `yaml:"adversary"`
	Items      ItemsConfig      `yaml:"items"`
	Animation  AnimationConfig  `yaml:"animation"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// WorldConfig defines the maze grid.
type WorldConfig struct {
	TileSize float64 `yaml:"tile_size"`
}

// ActorConfig defines the movement of one kind of actor.
type ActorConfig struct {
	Speed  float64 `yaml:"speed"`  // World units per tick
	Radius float64 `yaml:"radius"` // Collision circle radius
}

// ItemsConfig defines pellets, power-ups and the vulnerability window.
type ItemsConfig struct {
	PelletRadius  float64 `yaml:"pellet_radius"`
	PelletValue   int     `yaml:"pellet_value"`
	PowerUpRadius float64 `yaml:"power_up_radius"`
	PowerUpValue  int     `yaml:"power_up_value"`
	VulnerableMS  int     `yaml:"vulnerable_ms"`
}

// AnimationConfig defines the player's mouth animation.
type AnimationConfig struct {
	MouthMax  float64 `yaml:"mouth_max"`
	MouthRate float64 `yaml:"mouth_rate"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to adversary speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. The empty string means no preset.
func ParsePreset(name string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(name); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	}
	return "", false
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
