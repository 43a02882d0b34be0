// Package config provides YAML-based game configuration loading, difficulty
// presets and validation for the shooter.
package config

// ShooterConfig contains all configuration for the game. It is treated as an
// immutable value once a session has been constructed from it.
type ShooterConfig struct {
	Field      FieldConfig      `yaml:"field"`
	Player     PlayerConfig     `yaml:"player"`
	Projectile ProjectileConfig `yaml:"projectile"`
	Obstacle   ObstacleConfig   `yaml:"obstacle"`
	Spawn      SpawnConfig      `yaml:"spawn"`
	Input      InputConfig      `yaml:"input"`
}

// FieldConfig defines the play field in field units (pixels of the original
// 800x600 window). Frontends scale the field into the terminal.
type FieldConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PlayerConfig defines the player ship.
type PlayerConfig struct {
	Width       int `yaml:"width"`
	Height      int `yaml:"height"`
	Speed       int `yaml:"speed"`        // Field units per tick, per axis
	StartOffset int `yaml:"start_offset"` // Distance from the field bottom to the ship top at spawn
}

// ProjectileConfig defines the bullets fired by the player.
type ProjectileConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Speed  int `yaml:"speed"` // Upward field units per tick
}

// ObstacleConfig defines the descending asteroids.
type ObstacleConfig struct {
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
	MinSpeed int `yaml:"min_speed"` // Inclusive lower bound of the per-obstacle speed
	MaxSpeed int `yaml:"max_speed"` // Inclusive upper bound of the per-obstacle speed
}

// SpawnConfig defines the obstacle spawn ramp. All values are milliseconds.
type SpawnConfig struct {
	InitialInterval int64 `yaml:"initial_interval_ms"`
	Step            int64 `yaml:"step_ms"`  // Interval decrease per spawn
	Floor           int64 `yaml:"floor_ms"` // Interval never drops below this
}

// InputConfig defines terminal input handling.
type InputConfig struct {
	HoldTicks int `yaml:"hold_ticks"` // Ticks a direction stays held after a key press
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string to a preset. Empty input stays empty,
// meaning the loaded config is used unchanged.
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch DifficultyPreset(s) {
	case "":
		return "", true
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), true
	default:
		return "", false
	}
}

// ApplyPreset modifies the spawn ramp based on a difficulty preset.
// The normal preset keeps the loaded values; fixed disables the ramp.
func ApplyPreset(cfg *ShooterConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Spawn.InitialInterval = 1300
		cfg.Spawn.Step = 15
		cfg.Spawn.Floor = 450
		cfg.Obstacle.MaxSpeed = cfg.Obstacle.MinSpeed + (cfg.Obstacle.MaxSpeed-cfg.Obstacle.MinSpeed)/2
	case DifficultyHard:
		cfg.Spawn.InitialInterval = 800
		cfg.Spawn.Step = 25
		cfg.Spawn.Floor = 200
		cfg.Obstacle.MaxSpeed++
	case DifficultyFixed:
		cfg.Spawn.Step = 0
	}
}
