package config

import (
	_ "embed"
)

//go:embed defaults/chase.yaml
var defaultChaseYAML []byte

// DefaultChaseConfig returns the default chase configuration.
func DefaultChaseConfig() ChaseConfig {
	return ChaseConfig{
		World: WorldConfig{
			TileSize: 40,
		},
		Player: ActorConfig{
			Speed:  5,
			Radius: 15,
		},
		Adversary: ActorConfig{
			Speed:  2,
			Radius: 15,
		},
		Items: ItemsConfig{
			PelletRadius:  3,
			PelletValue:   10,
			PowerUpRadius: 8,
			PowerUpValue:  50,
			VulnerableMS:  3000,
		},
		Animation: AnimationConfig{
			MouthMax:  0.75,
			MouthRate: 0.12,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 2000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.5,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "chase":
		return defaultChaseYAML
	default:
		return nil
	}
}
