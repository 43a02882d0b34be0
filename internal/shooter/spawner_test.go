package shooter

import (
	"testing"

	"github.com/vovakirdan/tui-shooter/internal/config"
)

func TestSpawnControllerSchedule(t *testing.T) {
	c := NewSpawnController(config.SpawnConfig{InitialInterval: 1000, Step: 20, Floor: 300})

	steps := []struct {
		now      int64
		due      bool
		interval int64
	}{
		{now: 0, due: false, interval: 1000}, // anchors the clock
		{now: 999, due: false, interval: 1000},
		{now: 1000, due: true, interval: 980},
		{now: 1000, due: false, interval: 980},
		{now: 1979, due: false, interval: 980},
		{now: 1980, due: true, interval: 960},
		{now: 5000, due: true, interval: 940}, // one spawn per call even when late
		{now: 5000, due: false, interval: 940},
	}

	for i, s := range steps {
		if got := c.Due(s.now); got != s.due {
			t.Errorf("step %d: Due(%d) = %v, expected %v", i, s.now, got, s.due)
		}
		if c.Interval() != s.interval {
			t.Errorf("step %d: Interval() = %d, expected %d", i, c.Interval(), s.interval)
		}
	}
}

func TestSpawnControllerFloor(t *testing.T) {
	tests := []struct {
		name     string
		cfg      config.SpawnConfig
		expected []int64 // interval after each spawn
	}{
		{
			name:     "step divides range",
			cfg:      config.SpawnConfig{InitialInterval: 340, Step: 20, Floor: 300},
			expected: []int64{320, 300, 300, 300},
		},
		{
			name:     "step overshoots floor",
			cfg:      config.SpawnConfig{InitialInterval: 310, Step: 20, Floor: 300},
			expected: []int64{300, 300},
		},
		{
			name:     "zero step",
			cfg:      config.SpawnConfig{InitialInterval: 500, Step: 0, Floor: 300},
			expected: []int64{500, 500, 500},
		},
		{
			name:     "initial equals floor",
			cfg:      config.SpawnConfig{InitialInterval: 300, Step: 20, Floor: 300},
			expected: []int64{300, 300},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewSpawnController(tt.cfg)
			now := int64(0)
			c.Due(now)
			for i, want := range tt.expected {
				now += c.Interval()
				if !c.Due(now) {
					t.Fatalf("spawn %d: Due(%d) = false, expected true", i, now)
				}
				if c.Interval() != want {
					t.Errorf("spawn %d: Interval() = %d, expected %d", i, c.Interval(), want)
				}
			}
		})
	}
}

func TestSpawnIntervalMonotonic(t *testing.T) {
	cfg := config.DefaultShooterConfig().Spawn
	c := NewSpawnController(cfg)
	prev := c.Interval()
	spawns := 0

	for tick := int64(0); tick < 60*120; tick++ {
		if c.Due(tick * 1000 / 60) {
			spawns++
		}
		if c.Interval() > prev {
			t.Fatalf("tick %d: interval grew from %d to %d", tick, prev, c.Interval())
		}
		if c.Interval() < cfg.Floor {
			t.Fatalf("tick %d: interval %d below floor %d", tick, c.Interval(), cfg.Floor)
		}
		prev = c.Interval()
	}

	if spawns == 0 {
		t.Fatal("no spawns in two simulated minutes")
	}
	if c.Interval() != cfg.Floor {
		t.Errorf("Interval() after two minutes = %d, expected floor %d", c.Interval(), cfg.Floor)
	}
	if c.Level() != 1 {
		t.Errorf("Level() at floor = %v, expected 1", c.Level())
	}
}

func TestSpawnControllerReset(t *testing.T) {
	c := NewSpawnController(config.SpawnConfig{InitialInterval: 1000, Step: 100, Floor: 300})
	c.Due(0)
	c.Due(1000)
	c.Due(1900)
	if c.Interval() != 800 {
		t.Fatalf("Interval() = %d, expected 800", c.Interval())
	}
	if c.Level() == 0 {
		t.Errorf("Level() = 0 after two spawns")
	}

	c.Reset()
	if c.Interval() != 1000 {
		t.Errorf("Interval() after Reset = %d, expected 1000", c.Interval())
	}
	if c.Level() != 0 {
		t.Errorf("Level() after Reset = %v, expected 0", c.Level())
	}

	// The clock re-anchors on the first call after a reset.
	if c.Due(50000) {
		t.Error("Due() right after Reset should only anchor the clock")
	}
	if !c.Due(51000) {
		t.Error("Due() one interval after the anchor should spawn")
	}
}
