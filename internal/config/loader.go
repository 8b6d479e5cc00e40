package config

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadChase loads the chase configuration.
// Search order: customPath -> ~/.chase/configs/chase.yaml -> ./configs/chase.yaml -> embedded default
func LoadChase(customPath string) (ChaseConfig, error) {
	// Start from defaults so a partial file only overrides what it names.
	cfg := DefaultChaseConfig()

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath("chase.yaml"); userCfgPath != "" {
		if c, ok := tryLoad(userCfgPath); ok {
			return c, nil
		}
	}

	if c, ok := tryLoad(filepath.Join("configs", "chase.yaml")); ok {
		return c, nil
	}

	cfg = DefaultChaseConfig()
	if err := yaml.Unmarshal(defaultChaseYAML, &cfg); err != nil {
		return DefaultChaseConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// tryLoad reads an optional config file; unreadable or invalid files are skipped.
func tryLoad(path string) (ChaseConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ChaseConfig{}, false
	}
	cfg := DefaultChaseConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return ChaseConfig{}, false
	}
	if err := cfg.Validate(); err != nil {
		return ChaseConfig{}, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".chase", "configs", filename)
}

// ApplyChasePreset modifies the config based on a difficulty preset.
func ApplyChasePreset(cfg *ChaseConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}
}

// Validate checks that the values describe a playable game.
func (c ChaseConfig) Validate() error {
	tile := c.World.TileSize
	if tile <= 0 {
		return fmt.Errorf("world.tile_size must be positive, got %v", tile)
	}
	actors := []struct {
		name string
		cfg  ActorConfig
	}{{"player", c.Player}, {"adversary", c.Adversary}}
	for _, actor := range actors {
		name, a := actor.name, actor.cfg
		if a.Speed <= 0 {
			return fmt.Errorf("%s.speed must be positive, got %v", name, a.Speed)
		}
		if a.Radius <= 0 || tile/2-a.Radius-1 < 0 {
			return fmt.Errorf("%s.radius must be in (0, %v], got %v", name, tile/2-1, a.Radius)
		}
		if !divides(a.Speed, tile/2) {
			return fmt.Errorf("%s.speed %v must divide half a tile (%v)", name, a.Speed, tile/2)
		}
	}
	if c.Items.VulnerableMS <= 0 {
		return fmt.Errorf("items.vulnerable_ms must be positive, got %d", c.Items.VulnerableMS)
	}
	if c.Items.PelletValue < 0 || c.Items.PowerUpValue < 0 {
		return fmt.Errorf("item values must not be negative")
	}
	switch c.Difficulty.Progression.Type {
	case "", "score", "time", "none":
	default:
		return fmt.Errorf("difficulty.progression.type %q is not one of score, time, none", c.Difficulty.Progression.Type)
	}
	return nil
}

func divides(step, span float64) bool {
	n := span / step
	return math.Abs(n-math.Round(n)) < 1e-9
}
