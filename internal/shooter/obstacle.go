package shooter

import (
	"math/rand"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
)

// Obstacle is an asteroid falling straight down at a speed fixed at spawn.
type Obstacle struct {
	Body
	speed     int
	destroyed bool
}

// NewObstacle creates an obstacle with an explicit box and speed.
func NewObstacle(rect core.Rect, speed int) *Obstacle {
	return &Obstacle{
		Body:  Body{rect: rect},
		speed: speed,
	}
}

// spawnObstacle creates an obstacle just above the field at a uniformly
// random horizontal offset, with a speed drawn uniformly from the
// configured inclusive range.
func spawnObstacle(rng *rand.Rand, cfg config.ObstacleConfig, field core.Rect) *Obstacle {
	x := field.X + rng.Intn(field.W-cfg.Width+1)
	speed := cfg.MinSpeed + rng.Intn(cfg.MaxSpeed-cfg.MinSpeed+1)
	return NewObstacle(core.NewRect(x, field.Y-cfg.Height, cfg.Width, cfg.Height), speed)
}

// Speed returns the obstacle's downward speed in field units per tick.
func (o *Obstacle) Speed() int {
	return o.speed
}

// Update moves the obstacle down by its speed.
func (o *Obstacle) Update() {
	o.rect.Y += o.speed
}

// Expired reports whether the obstacle's top edge is below the field bottom.
func (o *Obstacle) Expired(field core.Rect) bool {
	return o.rect.Y > field.Bottom()
}

// Destroyed reports whether a projectile hit the obstacle.
func (o *Obstacle) Destroyed() bool {
	return o.destroyed
}

// MarkDestroyed flags the obstacle for removal.
func (o *Obstacle) MarkDestroyed() {
	o.destroyed = true
}
