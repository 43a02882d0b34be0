package shooter

import "github.com/vovakirdan/tui-shooter/internal/core"

// State is the session's position in its lifecycle.
type State int

const (
	StateRunning State = iota // Ticks advance the simulation
	StateLost                 // The ship was hit; only Reset leaves this state
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateRunning:
		return "Running"
	case StateLost:
		return "Lost"
	default:
		return "Unknown"
	}
}

// Events counts what happened during a single tick.
type Events struct {
	Fired     int  // Projectiles added
	Spawned   int  // Obstacles added
	Destroyed int  // Projectile-obstacle pairs removed
	Lost      bool // The session entered StateLost this tick
}

// Stats accumulates counters over one round (reset to reset).
type Stats struct {
	Ticks     int // Running ticks simulated
	Shots     int // Projectiles fired
	Spawned   int // Obstacles spawned
	Destroyed int // Obstacles shot down
}

// Snapshot is a read-only copy of the session after a tick.
// Boxes are copies; mutating them does not affect the session.
type Snapshot struct {
	Field       core.Rect
	Player      core.Rect
	Projectiles []core.Rect
	Obstacles   []core.Rect
	Score       int
	State       State
	Interval    int64   // Current spawn interval in milliseconds
	Level       float64 // Spawn ramp progress in [0, 1]
	Events      Events
	Stats       Stats
}
