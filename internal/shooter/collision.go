package shooter

import "github.com/vovakirdan/tui-shooter/internal/core"

// CollisionResult summarizes one pass of collision resolution.
type CollisionResult struct {
	PlayerHit bool // The ship overlaps an obstacle
	Destroyed int  // Projectile-obstacle pairs removed this tick
}

// ResolveCollisions tests the ship and every projectile against the
// obstacles, all against the same pre-removal obstacle set.
//
// A ship hit ends the pass immediately. Otherwise each obstacle, in order,
// is paired with the first live projectile overlapping it; both are marked
// destroyed, so neither can be paired again this tick. Marked entities are
// removed by the caller.
func ResolveCollisions(player core.Rect, projectiles []*Projectile, obstacles []*Obstacle) CollisionResult {
	var res CollisionResult

	for _, o := range obstacles {
		if player.Intersects(o.Box()) {
			res.PlayerHit = true
			return res
		}
	}

	for _, o := range obstacles {
		box := o.Box()
		for _, p := range projectiles {
			if p.Destroyed() {
				continue
			}
			if p.Box().Intersects(box) {
				p.MarkDestroyed()
				o.MarkDestroyed()
				res.Destroyed++
				break
			}
		}
	}

	return res
}
