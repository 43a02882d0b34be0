package shooter

import (
	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
)

// Projectile is a bullet travelling straight up at a constant speed.
type Projectile struct {
	Body
	speed     int
	destroyed bool
}

// NewProjectile creates a projectile horizontally centered on muzzleX with
// its top edge at muzzleY.
func NewProjectile(cfg config.ProjectileConfig, muzzleX, muzzleY int) *Projectile {
	return &Projectile{
		Body:  Body{rect: core.NewRect(muzzleX-cfg.Width/2, muzzleY, cfg.Width, cfg.Height)},
		speed: cfg.Speed,
	}
}

// Update moves the projectile up by its speed.
func (p *Projectile) Update() {
	p.rect.Y -= p.speed
}

// Expired reports whether the projectile's bottom edge is above the field top.
func (p *Projectile) Expired(field core.Rect) bool {
	return p.rect.Bottom() < field.Y
}

// Destroyed reports whether the projectile hit an obstacle.
func (p *Projectile) Destroyed() bool {
	return p.destroyed
}

// MarkDestroyed flags the projectile for removal.
func (p *Projectile) MarkDestroyed() {
	p.destroyed = true
}
