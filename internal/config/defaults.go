package config

import (
	_ "embed"
)

//go:embed defaults/shooter.yaml
var defaultShooterYAML []byte

// DefaultShooterConfig returns the built-in configuration.
// It matches defaults/shooter.yaml and is used if the embedded file is unreadable.
func DefaultShooterConfig() ShooterConfig {
	return ShooterConfig{
		Field: FieldConfig{
			Width:  800,
			Height: 600,
		},
		Player: PlayerConfig{
			Width:       50,
			Height:      38,
			Speed:       5,
			StartOffset: 60,
		},
		Projectile: ProjectileConfig{
			Width:  5,
			Height: 10,
			Speed:  7,
		},
		Obstacle: ObstacleConfig{
			Width:    100,
			Height:   100,
			MinSpeed: 3,
			MaxSpeed: 6,
		},
		Spawn: SpawnConfig{
			InitialInterval: 1000,
			Step:            20,
			Floor:           300,
		},
		Input: InputConfig{
			HoldTicks: 8,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultShooterYAML
}
