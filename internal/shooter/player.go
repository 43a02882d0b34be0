package shooter

import (
	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
)

// Player is the ship controlled by the user.
type Player struct {
	Body
	speed int
	start core.Rect
}

// NewPlayer creates the ship at its spawn position: horizontally centered,
// with its top edge start_offset units above the field bottom.
func NewPlayer(cfg config.PlayerConfig, field core.Rect) *Player {
	start := core.NewRect(
		field.X+field.W/2-cfg.Width/2,
		field.Bottom()-cfg.StartOffset,
		cfg.Width,
		cfg.Height,
	)
	return &Player{
		Body:  Body{rect: start},
		speed: cfg.Speed,
		start: start,
	}
}

// Move shifts the ship by speed along every held direction, keeping it
// inside bounds. Axes are resolved independently, so pushing into a wall
// on one axis never blocks motion on the other. Opposite directions held
// together cancel out.
func (p *Player) Move(held core.Directions, bounds core.Rect) {
	dx, dy := 0, 0
	if held.Left {
		dx -= p.speed
	}
	if held.Right {
		dx += p.speed
	}
	if held.Up {
		dy -= p.speed
	}
	if held.Down {
		dy += p.speed
	}

	if dx != 0 {
		p.rect.X = core.Clamp(p.rect.X+dx, bounds.X, bounds.Right()-p.rect.W)
	}
	if dy != 0 {
		p.rect.Y = core.Clamp(p.rect.Y+dy, bounds.Y, bounds.Bottom()-p.rect.H)
	}
}

// Update is a no-op; the ship only moves in response to input.
func (p *Player) Update() {}

// Muzzle returns the top-center point projectiles are fired from.
func (p *Player) Muzzle() (int, int) {
	cx, _ := p.rect.Center()
	return cx, p.rect.Y
}

// reset returns the ship to its spawn position.
func (p *Player) reset() {
	p.rect = p.start
}
