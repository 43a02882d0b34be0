// Package shooter implements a vertical space shooter.
// The player steers a ship around the bottom of the field and shoots
// asteroids that fall from above at a steadily increasing rate.
package shooter

import "github.com/vovakirdan/tui-shooter/internal/core"

// Entity is the capability set shared by everything on the field.
type Entity interface {
	// Box returns the entity's bounding box in field units.
	Box() core.Rect
	// Update advances the entity by one tick.
	Update()
}

// Body holds the bounding box of an entity. It is embedded by the
// concrete entity types, each owning its box exclusively.
type Body struct {
	rect core.Rect
}

// Box returns the bounding box.
func (b *Body) Box() core.Rect {
	return b.rect
}

// mover is an entity with a finite life on the field.
type mover interface {
	Entity
	// Expired reports whether the entity has left the field for good.
	Expired(field core.Rect) bool
	// Destroyed reports whether a collision has consumed the entity.
	Destroyed() bool
}

// prune drops expired and destroyed entities in place, preserving the order
// of the survivors. The tail of the backing array is cleared so removed
// entities can be collected.
func prune[M mover](items []M, field core.Rect) []M {
	kept := items[:0]
	for _, m := range items {
		if !m.Destroyed() && !m.Expired(field) {
			kept = append(kept, m)
		}
	}
	clear(items[len(kept):])
	return kept
}

// boxes copies the bounding boxes of a slice of entities.
func boxes[E Entity](items []E) []core.Rect {
	out := make([]core.Rect, len(items))
	for i, e := range items {
		out[i] = e.Box()
	}
	return out
}
