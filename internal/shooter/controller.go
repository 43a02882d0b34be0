package shooter

import (
	"fmt"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
)

// Phase is the top-level screen the controller is showing.
type Phase int

const (
	PhaseAwaitingStart Phase = iota // Title screen, waiting for Confirm
	PhaseRunning                    // Session is being ticked
	PhaseLost                       // Game over, waiting for Confirm or Quit
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseAwaitingStart:
		return "AwaitingStart"
	case PhaseRunning:
		return "Running"
	case PhaseLost:
		return "Lost"
	default:
		return "Unknown"
	}
}

// RoundResult describes one finished round.
type RoundResult struct {
	Round     int // 1-based round number within the run
	Score     int
	Shots     int
	Destroyed int
	Ticks     int
}

// RoundRecorder stores finished rounds for the current run.
type RoundRecorder interface {
	RecordRound(r RoundResult) error
	BestScore() (int, error)
}

// StepResult is returned by Controller.Step after each frame.
type StepResult struct {
	Phase     Phase
	Paused    bool
	Quit      bool // The user asked to exit
	Snapshot  Snapshot
	Round     *RoundResult // Set on the frame a round ends
	RecordErr error        // Best-effort history failure, for the frontend to log

	ticked bool
}

// Controller drives a Session through the title, playing and game-over
// screens. It turns discrete key-down actions into held directions, derives
// the simulation clock from the frame counter and renders into a core.Screen.
type Controller struct {
	session  *Session
	runtime  core.RuntimeConfig
	holds    *core.HoldTracker
	recorder RoundRecorder
	phase    Phase
	paused   bool
	ticks    int64 // Running frames simulated, drives the clock
	round    int
	best     int
	last     Snapshot
}

// NewController validates cfg and creates a controller on the title screen.
// recorder may be nil.
func NewController(cfg config.ShooterConfig, rt core.RuntimeConfig, recorder RoundRecorder) (*Controller, error) {
	session, err := NewSession(cfg, rt.Seed)
	if err != nil {
		return nil, err
	}

	c := &Controller{
		session:  session,
		runtime:  rt,
		holds:    core.NewHoldTracker(cfg.Input.HoldTicks),
		recorder: recorder,
		phase:    PhaseAwaitingStart,
	}
	c.last = session.Snapshot()
	return c, nil
}

// ID returns the identifier used for screenshots and logs.
func (c *Controller) ID() string {
	return "shooter"
}

// Title returns the display name of the game.
func (c *Controller) Title() string {
	return "Space Shooter"
}

// Resize updates the runtime screen dimensions. The field is fixed, so the
// simulation is unaffected.
func (c *Controller) Resize(width, height int) {
	c.runtime.ScreenW = width
	c.runtime.ScreenH = height
}

// Now returns the simulation clock in milliseconds.
func (c *Controller) Now() int64 {
	return int64(float64(c.ticks) * c.runtime.TickMillis())
}

// Phase returns the current phase.
func (c *Controller) Phase() Phase {
	return c.phase
}

// Step processes one frame of input.
func (c *Controller) Step(in core.InputFrame) StepResult {
	if in.Has(core.ActionQuit) {
		return c.result(true)
	}

	var res StepResult
	switch c.phase {
	case PhaseAwaitingStart:
		if in.Has(core.ActionConfirm) {
			c.phase = PhaseRunning
		}

	case PhaseRunning:
		if in.Has(core.ActionPause) {
			c.paused = !c.paused
			c.holds.Release()
		}
		if c.paused {
			break
		}
		res = c.tick(in)

	case PhaseLost:
		if in.Has(core.ActionConfirm) {
			c.session.Reset()
			c.last = c.session.Snapshot()
			c.phase = PhaseRunning
			c.paused = false
		}
	}

	out := c.result(false)
	out.Round = res.Round
	out.RecordErr = res.RecordErr
	if !res.ticked {
		out.Snapshot.Events = Events{}
	}
	return out
}

// tick advances the session by one step.
func (c *Controller) tick(in core.InputFrame) StepResult {
	for a := core.ActionLeft; a <= core.ActionDown; a++ {
		if in.Has(a) {
			c.holds.Press(a)
		}
	}
	held := c.holds.Held()
	held.Left = held.Left || in.Held.Left
	held.Right = held.Right || in.Held.Right
	held.Up = held.Up || in.Held.Up
	held.Down = held.Down || in.Held.Down

	c.ticks++
	c.last = c.session.Tick(Input{Held: held, Fire: in.Has(core.ActionFire)}, c.Now())
	c.holds.Advance()

	res := StepResult{ticked: true}
	if c.last.State == StateLost {
		c.phase = PhaseLost
		c.holds.Release()
		round := c.finishRound()
		res.Round = &round
		res.RecordErr = c.record(round)
	}
	return res
}

// finishRound builds the result of the round that just ended.
func (c *Controller) finishRound() RoundResult {
	c.round++
	if c.last.Score > c.best {
		c.best = c.last.Score
	}
	return RoundResult{
		Round:     c.round,
		Score:     c.last.Score,
		Shots:     c.last.Stats.Shots,
		Destroyed: c.last.Stats.Destroyed,
		Ticks:     c.last.Stats.Ticks,
	}
}

// record stores the round and refreshes the best score of the run.
func (c *Controller) record(round RoundResult) error {
	if c.recorder == nil {
		return nil
	}
	if err := c.recorder.RecordRound(round); err != nil {
		return fmt.Errorf("shooter: record round %d: %w", round.Round, err)
	}
	best, err := c.recorder.BestScore()
	if err != nil {
		return fmt.Errorf("shooter: best score: %w", err)
	}
	c.best = max(c.best, best)
	return nil
}

func (c *Controller) result(quit bool) StepResult {
	return StepResult{
		Phase:    c.phase,
		Paused:   c.paused,
		Quit:     quit,
		Snapshot: c.last,
	}
}

// Best returns the best score of the run so far.
func (c *Controller) Best() int {
	return c.best
}
