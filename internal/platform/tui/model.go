package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-shooter/internal/audio"
	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/shooter"
)

// Options configures optional collaborators of the model.
type Options struct {
	Sounds        *audio.Board // nil plays nothing
	Rounds        RoundSource  // nil hides the rounds view
	Logger        *log.Logger  // nil discards
	ScreenshotDir string       // empty means ~/.arcade/screenshots
}

// Model is the Bubble Tea model for the shooter.
type Model struct {
	ctrl       *shooter.Controller
	screen     *core.Screen
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	opts       Options
	logger     *log.Logger
	inputFrame core.InputFrame
	rounds     roundsView
	showRounds bool
	last       shooter.StepResult
	quitting   bool
}

// NewModel creates a model around ctrl. The screen keeps one row free for
// the help line.
func NewModel(ctrl *shooter.Controller, cfg core.RuntimeConfig, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	keys := DefaultKeyMap()
	keys.Mute.SetEnabled(opts.Sounds != nil)
	keys.Rounds.SetEnabled(opts.Rounds != nil)

	return Model{
		ctrl:       ctrl,
		screen:     core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 1)),
		config:     cfg,
		keys:       keys,
		help:       help.New(),
		opts:       opts,
		logger:     logger,
		inputFrame: core.NewInputFrame(),
		rounds:     newRoundsView(opts.Rounds, cfg.ScreenW, cfg.ScreenH, cfg.TickMillis()),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	if m.showRounds {
		open, cmd := m.rounds.update(msg)
		m.showRounds = open
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil

	case key.Matches(msg, m.keys.Mute):
		m.opts.Sounds.SetMuted(!m.opts.Sounds.Muted())
		m.logger.Debug("sound toggled", "muted", m.opts.Sounds.Muted())
		return m, nil

	case key.Matches(msg, m.keys.Rounds):
		if m.ctrl.Phase() == shooter.PhaseRunning && !m.last.Paused {
			m.inputFrame.Set(core.ActionPause)
		}
		m.rounds.reload()
		m.showRounds = true
		return m, nil
	}

	if action := m.keys.Action(msg); action != core.ActionNone {
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleResize processes window resize events.
// The field is fixed, so the round goes on at the new scale.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-1, 1))
	m.ctrl.Resize(msg.Width, msg.Height)
	m.help.Width = msg.Width
	m.rounds.resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	prev := m.ctrl.Phase()
	res := m.ctrl.Step(m.inputFrame)
	m.inputFrame.Clear()
	m.last = res

	if res.Quit {
		m.quitting = true
		return m, tea.Quit
	}

	m.opts.Sounds.Events(res.Snapshot.Events)

	if res.Phase != prev {
		m.logger.Debug("phase changed", "from", prev, "to", res.Phase)
	}
	if r := res.Round; r != nil {
		m.logger.Info("round over", "round", r.Round, "score", r.Score, "shots", r.Shots, "ticks", r.Ticks)
	}
	if res.RecordErr != nil {
		m.logger.Warn("round not recorded", "err", res.RecordErr)
	}

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot writes the current screen as plain text.
func (m *Model) saveScreenshot() {
	path, err := m.writeScreenshot(time.Now())
	if err != nil {
		m.logger.Warn("screenshot failed", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

func (m *Model) writeScreenshot(at time.Time) (string, error) {
	m.ctrl.Render(m.screen)

	dir := m.opts.ScreenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("tui: cannot find home directory: %w", err)
		}
		dir = filepath.Join(home, ".arcade", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: cannot create %s: %w", dir, err)
	}

	filename := fmt.Sprintf("%s_%s.txt", m.ctrl.ID(), at.Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: cannot write screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.showRounds {
		return m.rounds.view()
	}

	m.ctrl.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program and blocks until the user quits.
func Run(ctrl *shooter.Controller, cfg core.RuntimeConfig, opts Options) error {
	p := tea.NewProgram(
		NewModel(ctrl, cfg, opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
