package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every error returned from Validate.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Validate checks the configuration for values a session cannot run with.
// Every problem found is reported, joined into one error wrapping ErrInvalidConfig.
func (c ShooterConfig) Validate() error {
	var problems []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			problems = append(problems, fmt.Errorf(format, args...))
		}
	}

	check(c.Field.Width > 0 && c.Field.Height > 0,
		"field: size must be positive, got %dx%d", c.Field.Width, c.Field.Height)

	check(c.Player.Width > 0 && c.Player.Height > 0,
		"player: size must be positive, got %dx%d", c.Player.Width, c.Player.Height)
	check(c.Player.Width <= c.Field.Width && c.Player.Height <= c.Field.Height,
		"player: %dx%d does not fit the %dx%d field", c.Player.Width, c.Player.Height, c.Field.Width, c.Field.Height)
	check(c.Player.Speed > 0, "player: speed must be positive, got %d", c.Player.Speed)
	check(c.Player.StartOffset >= c.Player.Height && c.Player.StartOffset <= c.Field.Height,
		"player: start_offset %d must be within [%d, %d]", c.Player.StartOffset, c.Player.Height, c.Field.Height)

	check(c.Projectile.Width > 0 && c.Projectile.Height > 0,
		"projectile: size must be positive, got %dx%d", c.Projectile.Width, c.Projectile.Height)
	check(c.Projectile.Speed > 0, "projectile: speed must be positive, got %d", c.Projectile.Speed)

	check(c.Obstacle.Width > 0 && c.Obstacle.Height > 0,
		"obstacle: size must be positive, got %dx%d", c.Obstacle.Width, c.Obstacle.Height)
	check(c.Obstacle.Width <= c.Field.Width,
		"obstacle: width %d exceeds field width %d", c.Obstacle.Width, c.Field.Width)
	check(c.Obstacle.MinSpeed > 0, "obstacle: min_speed must be positive, got %d", c.Obstacle.MinSpeed)
	check(c.Obstacle.MinSpeed <= c.Obstacle.MaxSpeed,
		"obstacle: min_speed %d exceeds max_speed %d", c.Obstacle.MinSpeed, c.Obstacle.MaxSpeed)

	check(c.Spawn.Floor > 0, "spawn: floor_ms must be positive, got %d", c.Spawn.Floor)
	check(c.Spawn.Floor <= c.Spawn.InitialInterval,
		"spawn: floor_ms %d exceeds initial_interval_ms %d", c.Spawn.Floor, c.Spawn.InitialInterval)
	check(c.Spawn.Step >= 0, "spawn: step_ms must not be negative, got %d", c.Spawn.Step)

	check(c.Input.HoldTicks > 0, "input: hold_ticks must be positive, got %d", c.Input.HoldTicks)

	if len(problems) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(problems...))
}
