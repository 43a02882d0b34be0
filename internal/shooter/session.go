package shooter

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
)

// Input is what the frontend supplies for one tick.
type Input struct {
	Held core.Directions // Directions currently held
	Fire bool            // A fire key went down since the previous tick
}

// Session owns every entity of one game and advances them tick by tick.
// It is single-threaded: callers must not use it from several goroutines.
type Session struct {
	cfg         config.ShooterConfig
	field       core.Rect
	rng         *rand.Rand
	player      *Player
	projectiles []*Projectile
	obstacles   []*Obstacle
	spawner     *SpawnController
	score       int
	state       State
	stats       Stats
	events      Events
}

// NewSession validates cfg and creates a running session.
// The seed drives obstacle placement and speed.
func NewSession(cfg config.ShooterConfig, seed int64) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("shooter: cannot create session: %w", err)
	}

	field := core.NewRect(0, 0, cfg.Field.Width, cfg.Field.Height)
	return &Session{
		cfg:         cfg,
		field:       field,
		rng:         rand.New(rand.NewSource(seed)),
		player:      NewPlayer(cfg.Player, field),
		projectiles: make([]*Projectile, 0, 16),
		obstacles:   make([]*Obstacle, 0, 16),
		spawner:     NewSpawnController(cfg.Spawn),
		state:       StateRunning,
	}, nil
}

// Reset returns the session to its initial state: ship at spawn, no
// projectiles or obstacles, zero score, initial spawn interval, Running.
// The RNG keeps its sequence, so a new round differs from the last.
func (s *Session) Reset() {
	s.player.reset()
	clear(s.projectiles)
	s.projectiles = s.projectiles[:0]
	clear(s.obstacles)
	s.obstacles = s.obstacles[:0]
	s.spawner.Reset()
	s.score = 0
	s.state = StateRunning
	s.stats = Stats{}
	s.events = Events{}
}

// Fire adds one projectile at the ship's muzzle.
// Returns false and does nothing unless the session is running.
func (s *Session) Fire() bool {
	if s.state != StateRunning {
		return false
	}
	x, y := s.player.Muzzle()
	s.projectiles = append(s.projectiles, NewProjectile(s.cfg.Projectile, x, y))
	s.stats.Shots++
	s.events.Fired++
	return true
}

// Tick advances the simulation by one step at time now (milliseconds,
// monotonically increasing). Order: fire, move ship, age and prune
// projectiles, spawn then age and prune obstacles, resolve collisions.
// A lost session is left untouched.
func (s *Session) Tick(in Input, now int64) Snapshot {
	if s.state != StateRunning {
		s.events = Events{}
		return s.Snapshot()
	}

	if in.Fire {
		s.Fire()
	}

	s.player.Move(in.Held, s.field)

	for _, p := range s.projectiles {
		p.Update()
	}
	s.projectiles = prune(s.projectiles, s.field)

	if s.spawner.Due(now) {
		s.obstacles = append(s.obstacles, spawnObstacle(s.rng, s.cfg.Obstacle, s.field))
		s.stats.Spawned++
		s.events.Spawned++
	}
	for _, o := range s.obstacles {
		o.Update()
	}
	s.obstacles = prune(s.obstacles, s.field)

	res := ResolveCollisions(s.player.Box(), s.projectiles, s.obstacles)
	if res.PlayerHit {
		s.state = StateLost
		s.events.Lost = true
	} else if res.Destroyed > 0 {
		s.score += res.Destroyed
		s.stats.Destroyed += res.Destroyed
		s.events.Destroyed += res.Destroyed
		s.projectiles = prune(s.projectiles, s.field)
		s.obstacles = prune(s.obstacles, s.field)
	}

	s.stats.Ticks++
	snap := s.Snapshot()
	s.events = Events{}
	return snap
}

// Snapshot returns a copy of the current session state, including the
// events accumulated since the last tick.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Field:       s.field,
		Player:      s.player.Box(),
		Projectiles: boxes(s.projectiles),
		Obstacles:   boxes(s.obstacles),
		Score:       s.score,
		State:       s.state,
		Interval:    s.spawner.Interval(),
		Level:       s.spawner.Level(),
		Events:      s.events,
		Stats:       s.stats,
	}
}

// State returns the session state.
func (s *Session) State() State {
	return s.state
}

// Score returns the current score.
func (s *Session) Score() int {
	return s.score
}

// Field returns the play field rectangle.
func (s *Session) Field() core.Rect {
	return s.field
}
