package shooter

import "github.com/vovakirdan/tui-shooter/internal/config"

// SpawnController decides when obstacles spawn. The interval between spawns
// shrinks by a fixed step after every spawn until it reaches the floor.
type SpawnController struct {
	initial   int64
	step      int64
	floor     int64
	interval  int64
	lastSpawn int64
	anchored  bool
}

// NewSpawnController creates a controller from a validated spawn config.
func NewSpawnController(cfg config.SpawnConfig) *SpawnController {
	c := &SpawnController{
		initial: cfg.InitialInterval,
		step:    cfg.Step,
		floor:   cfg.Floor,
	}
	c.Reset()
	return c
}

// Reset restores the initial interval. The spawn clock is re-anchored on the
// next call to Due.
func (c *SpawnController) Reset() {
	c.interval = c.initial
	c.lastSpawn = 0
	c.anchored = false
}

// Due reports whether an obstacle should spawn at now (milliseconds) and,
// if so, records the spawn and tightens the interval. At most one spawn is
// reported per call. The first call after a reset only starts the clock.
func (c *SpawnController) Due(now int64) bool {
	if !c.anchored {
		c.lastSpawn = now
		c.anchored = true
		return false
	}
	if now-c.lastSpawn < c.interval {
		return false
	}

	c.lastSpawn = now
	if c.interval > c.floor {
		c.interval = max(c.interval-c.step, c.floor)
	}
	return true
}

// Interval returns the current spawn interval in milliseconds.
func (c *SpawnController) Interval() int64 {
	return c.interval
}

// Level returns how far the ramp has progressed, from 0 (initial interval)
// to 1 (floor reached). A ramp without range reports 0.
func (c *SpawnController) Level() float64 {
	span := c.initial - c.floor
	if span <= 0 {
		return 0
	}
	return float64(c.initial-c.interval) / float64(span)
}
