package shooter

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
)

type fakeRecorder struct {
	rounds []RoundResult
	best   int
	err    error
}

func (f *fakeRecorder) RecordRound(r RoundResult) error {
	if f.err != nil {
		return f.err
	}
	f.rounds = append(f.rounds, r)
	f.best = max(f.best, r.Score)
	return nil
}

func (f *fakeRecorder) BestScore() (int, error) {
	return f.best, f.err
}

func newTestController(t *testing.T, rec RoundRecorder) *Controller {
	t.Helper()
	c, err := NewController(config.DefaultShooterConfig(), core.DefaultConfig(), rec)
	if err != nil {
		t.Fatalf("NewController() error = %v", err)
	}
	return c
}

func frame(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

// crash places an obstacle on top of the ship so the next tick loses.
func crash(c *Controller) {
	c.session.obstacles = append(c.session.obstacles, NewObstacle(core.NewRect(350, 500, 100, 100), 3))
}

func TestControllerStartsOnTitle(t *testing.T) {
	c := newTestController(t, nil)

	if c.Phase() != PhaseAwaitingStart {
		t.Fatalf("Phase() = %v, expected AwaitingStart", c.Phase())
	}
	for i := 0; i < 10; i++ {
		res := c.Step(frame(core.ActionFire, core.ActionLeft))
		if res.Phase != PhaseAwaitingStart {
			t.Fatalf("Step() without Confirm left the title screen")
		}
	}
	if c.Now() != 0 {
		t.Errorf("Now() = %d on the title screen, expected 0", c.Now())
	}

	res := c.Step(frame(core.ActionConfirm))
	if res.Phase != PhaseRunning {
		t.Errorf("Phase after Confirm = %v, expected Running", res.Phase)
	}
}

func TestControllerQuit(t *testing.T) {
	c := newTestController(t, nil)
	if res := c.Step(frame(core.ActionQuit)); !res.Quit {
		t.Error("Quit on title screen not reported")
	}

	c.Step(frame(core.ActionConfirm))
	if res := c.Step(frame(core.ActionQuit)); !res.Quit {
		t.Error("Quit while running not reported")
	}
}

func TestControllerClock(t *testing.T) {
	c := newTestController(t, nil)
	c.Step(frame(core.ActionConfirm))

	for i := 0; i < 60; i++ {
		c.Step(frame())
	}
	if c.Now() != 1000 {
		t.Errorf("Now() after 60 ticks at 60 Hz = %d, expected 1000", c.Now())
	}
}

func TestControllerHeldKeys(t *testing.T) {
	c := newTestController(t, nil)
	c.Step(frame(core.ActionConfirm))

	// One key-down keeps the ship moving for the hold window.
	c.Step(frame(core.ActionRight))
	var res StepResult
	for i := 0; i < 20; i++ {
		res = c.Step(frame())
	}
	holdTicks := config.DefaultShooterConfig().Input.HoldTicks
	expected := 375 + 5*holdTicks
	if res.Snapshot.Player.X != expected {
		t.Errorf("Player.X = %d, expected %d", res.Snapshot.Player.X, expected)
	}

	// Pressing the opposite direction releases the first immediately.
	c.Step(frame(core.ActionRight))
	res = c.Step(frame(core.ActionLeft))
	if res.Snapshot.Player.X != expected {
		t.Errorf("Player.X after right then left = %d, expected %d", res.Snapshot.Player.X, expected)
	}
}

func TestControllerPause(t *testing.T) {
	c := newTestController(t, nil)
	c.Step(frame(core.ActionConfirm))
	c.Step(frame())

	res := c.Step(frame(core.ActionPause))
	if !res.Paused {
		t.Fatal("Pause not reported")
	}
	ticks := res.Snapshot.Stats.Ticks
	now := c.Now()
	for i := 0; i < 30; i++ {
		res = c.Step(frame(core.ActionFire))
	}
	if res.Snapshot.Stats.Ticks != ticks || c.Now() != now {
		t.Errorf("simulation advanced while paused: ticks %d -> %d", ticks, res.Snapshot.Stats.Ticks)
	}
	if len(res.Snapshot.Projectiles) != 0 {
		t.Error("fired while paused")
	}

	res = c.Step(frame(core.ActionPause))
	if res.Paused {
		t.Error("second Pause did not resume")
	}
	if res.Snapshot.Stats.Ticks != ticks+1 {
		t.Errorf("Ticks after resume = %d, expected %d", res.Snapshot.Stats.Ticks, ticks+1)
	}
}

func TestControllerRecordsRoundOnce(t *testing.T) {
	rec := &fakeRecorder{best: 7}
	c := newTestController(t, rec)
	c.Step(frame(core.ActionConfirm))
	c.Step(frame(core.ActionFire))
	crash(c)

	res := c.Step(frame())
	if res.Phase != PhaseLost {
		t.Fatalf("Phase = %v, expected Lost", res.Phase)
	}
	if res.Round == nil {
		t.Fatal("Round not reported on the losing frame")
	}
	if res.Round.Round != 1 || res.Round.Shots != 1 || res.Round.Ticks != 2 {
		t.Errorf("Round = %+v, expected round 1 with 1 shot over 2 ticks", *res.Round)
	}
	if res.RecordErr != nil {
		t.Errorf("RecordErr = %v", res.RecordErr)
	}
	if c.Best() != 7 {
		t.Errorf("Best() = %d, expected 7 from the recorder", c.Best())
	}

	for i := 0; i < 10; i++ {
		if res = c.Step(frame(core.ActionFire)); res.Round != nil {
			t.Fatal("round reported twice")
		}
	}
	if len(rec.rounds) != 1 {
		t.Errorf("recorded %d rounds, expected 1", len(rec.rounds))
	}
}

func TestControllerRestart(t *testing.T) {
	rec := &fakeRecorder{}
	c := newTestController(t, rec)
	c.Step(frame(core.ActionConfirm))
	crash(c)
	c.Step(frame())

	res := c.Step(frame(core.ActionConfirm))
	if res.Phase != PhaseRunning {
		t.Fatalf("Phase after restart = %v, expected Running", res.Phase)
	}
	if res.Snapshot.Score != 0 || len(res.Snapshot.Obstacles) != 0 {
		t.Errorf("restart did not reset the session: %+v", res.Snapshot)
	}

	crash(c)
	res = c.Step(frame())
	if res.Round == nil || res.Round.Round != 2 {
		t.Errorf("second round = %+v, expected round 2", res.Round)
	}
}

func TestControllerRecordError(t *testing.T) {
	sentinel := errors.New("disk on fire")
	c := newTestController(t, &fakeRecorder{err: sentinel})
	c.Step(frame(core.ActionConfirm))
	crash(c)

	res := c.Step(frame())
	if !errors.Is(res.RecordErr, sentinel) {
		t.Errorf("RecordErr = %v, expected wrapped sentinel", res.RecordErr)
	}
	if res.Phase != PhaseLost {
		t.Errorf("Phase = %v, expected Lost despite the history failure", res.Phase)
	}
}

func TestNewControllerInvalidConfig(t *testing.T) {
	cfg := config.DefaultShooterConfig()
	cfg.Obstacle.MinSpeed = 0

	if _, err := NewController(cfg, core.DefaultConfig(), nil); !errors.Is(err, config.ErrInvalidConfig) {
		t.Errorf("NewController() error = %v, expected ErrInvalidConfig", err)
	}
}

func TestControllerEventsOnlyOnTicks(t *testing.T) {
	c := newTestController(t, nil)
	c.Step(frame(core.ActionConfirm))

	res := c.Step(frame(core.ActionFire))
	if res.Snapshot.Events.Fired != 1 {
		t.Fatalf("Events.Fired = %d, expected 1", res.Snapshot.Events.Fired)
	}

	res = c.Step(frame(core.ActionPause))
	if res.Snapshot.Events != (Events{}) {
		t.Errorf("paused frame repeated events: %+v", res.Snapshot.Events)
	}
}
