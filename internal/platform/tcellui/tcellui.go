// Package tcellui runs the shooter directly on a tcell screen, without
// Bubble Tea. Events are polled on a goroutine and applied on a fixed
// ticker, one controller step per tick.
package tcellui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-shooter/internal/audio"
	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/shooter"
)

const statusLine = " ←↑→↓/WASD move  space fire  enter start  p pause  q quit"

// Options configures optional collaborators of the runner.
type Options struct {
	Sounds *audio.Board // nil plays nothing
	Logger *log.Logger  // nil discards
}

// canvas is the part of tcell.Screen the renderer draws on.
type canvas interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

type runner struct {
	ctrl   *shooter.Controller
	buf    *core.Screen
	config core.RuntimeConfig
	opts   Options
	logger *log.Logger
	input  core.InputFrame
}

func newRunner(ctrl *shooter.Controller, cfg core.RuntimeConfig, opts Options) *runner {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &runner{
		ctrl:   ctrl,
		buf:    core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 1)),
		config: cfg,
		opts:   opts,
		logger: logger,
		input:  core.NewInputFrame(),
	}
}

// Run takes over the terminal and blocks until the user quits.
func Run(ctrl *shooter.Controller, cfg core.RuntimeConfig, opts Options) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("tcellui: cannot create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("tcellui: cannot initialize screen: %w", err)
	}
	defer screen.Fini()

	r := newRunner(ctrl, cfg, opts)
	w, h := screen.Size()
	r.resize(w, h)
	r.loop(screen)
	return nil
}

func (r *runner) loop(screen tcell.Screen) {
	rate := r.config.TickRate
	if rate < 1 {
		rate = 60
	}
	ticker := time.NewTicker(time.Second / time.Duration(rate))
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if !r.handleKey(ev.Key(), ev.Rune()) {
					return
				}
			case *tcell.EventResize:
				w, h := ev.Size()
				r.resize(w, h)
				screen.Sync()
			}

		case <-ticker.C:
			if !r.tick() {
				return
			}
			screen.Clear()
			r.draw(screen)
			screen.Show()
		}
	}
}

// handleKey queues the action for a key event.
// Returns false when the runner should exit at once.
func (r *runner) handleKey(key tcell.Key, ch rune) bool {
	if key == tcell.KeyCtrlC {
		return false
	}
	if a := actionFor(key, ch); a != core.ActionNone {
		r.input.Set(a)
	}
	return true
}

// tick advances the controller by one frame.
// Returns false when the user asked to quit.
func (r *runner) tick() bool {
	res := r.ctrl.Step(r.input)
	r.input.Clear()
	if res.Quit {
		return false
	}

	r.opts.Sounds.Events(res.Snapshot.Events)
	if round := res.Round; round != nil {
		r.logger.Info("round over", "round", round.Round, "score", round.Score, "shots", round.Shots)
	}
	if res.RecordErr != nil {
		r.logger.Warn("round not recorded", "err", res.RecordErr)
	}
	return true
}

func (r *runner) resize(w, h int) {
	r.config.ScreenW = w
	r.config.ScreenH = h
	r.buf.Resize(w, max(h-1, 1))
	r.ctrl.Resize(w, h)
}

// draw renders the controller and the status line onto c.
func (r *runner) draw(c canvas) {
	r.ctrl.Render(r.buf)
	for y := range r.buf.Height() {
		for x := range r.buf.Width() {
			cell := r.buf.GetCell(x, y)
			c.SetContent(x, y, cell.Rune, nil, styleFor(cell.Color))
		}
	}

	status := tcell.StyleDefault.Foreground(tcell.PaletteColor(core.ColorGray.ANSI()))
	x := 0
	for _, ch := range statusLine {
		if x >= r.buf.Width() {
			break
		}
		c.SetContent(x, r.buf.Height(), ch, nil, status)
		x++
	}
}

// styleFor maps a cell color onto the terminal palette.
func styleFor(c core.Color) tcell.Style {
	code := c.ANSI()
	if code < 0 {
		return tcell.StyleDefault
	}
	return tcell.StyleDefault.Foreground(tcell.PaletteColor(code))
}

// actionFor maps a key event to a game action.
func actionFor(key tcell.Key, ch rune) core.Action {
	switch key {
	case tcell.KeyLeft:
		return core.ActionLeft
	case tcell.KeyRight:
		return core.ActionRight
	case tcell.KeyUp:
		return core.ActionUp
	case tcell.KeyDown:
		return core.ActionDown
	case tcell.KeyEnter:
		return core.ActionConfirm
	case tcell.KeyEscape:
		return core.ActionQuit
	case tcell.KeyRune:
		switch ch {
		case 'a', 'A':
			return core.ActionLeft
		case 'd', 'D':
			return core.ActionRight
		case 'w', 'W':
			return core.ActionUp
		case 's', 'S':
			return core.ActionDown
		case ' ':
			return core.ActionFire
		case 'p', 'P':
			return core.ActionPause
		case 'q', 'Q':
			return core.ActionQuit
		}
	}
	return core.ActionNone
}
