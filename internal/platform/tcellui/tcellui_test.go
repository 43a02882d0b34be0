package tcellui

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/shooter"
)

// MockCanvas records SetContent calls.
type MockCanvas struct {
	cells map[[2]int]rune
	style map[[2]int]tcell.Style
}

func newMockCanvas() *MockCanvas {
	return &MockCanvas{cells: make(map[[2]int]rune), style: make(map[[2]int]tcell.Style)}
}

func (m *MockCanvas) SetContent(x, y int, mainc rune, combc []rune, style tcell.Style) {
	m.cells[[2]int{x, y}] = mainc
	m.style[[2]int{x, y}] = style
}

func (m *MockCanvas) row(y, width int) string {
	out := make([]rune, width)
	for x := range out {
		out[x] = m.cells[[2]int{x, y}]
	}
	return string(out)
}

func newTestRunner(t *testing.T) *runner {
	t.Helper()
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 25, TickRate: 60, Seed: 3}
	ctrl, err := shooter.NewController(config.DefaultShooterConfig(), cfg, nil)
	if err != nil {
		t.Fatalf("NewController() error = %v", err)
	}
	return newRunner(ctrl, cfg, Options{})
}

func TestActionFor(t *testing.T) {
	tests := []struct {
		name     string
		key      tcell.Key
		ch       rune
		expected core.Action
	}{
		{"left arrow", tcell.KeyLeft, 0, core.ActionLeft},
		{"right arrow", tcell.KeyRight, 0, core.ActionRight},
		{"up arrow", tcell.KeyUp, 0, core.ActionUp},
		{"down arrow", tcell.KeyDown, 0, core.ActionDown},
		{"a", tcell.KeyRune, 'a', core.ActionLeft},
		{"D", tcell.KeyRune, 'D', core.ActionRight},
		{"w", tcell.KeyRune, 'w', core.ActionUp},
		{"s", tcell.KeyRune, 's', core.ActionDown},
		{"space", tcell.KeyRune, ' ', core.ActionFire},
		{"enter", tcell.KeyEnter, 0, core.ActionConfirm},
		{"p", tcell.KeyRune, 'p', core.ActionPause},
		{"q", tcell.KeyRune, 'q', core.ActionQuit},
		{"esc", tcell.KeyEscape, 0, core.ActionQuit},
		{"unbound rune", tcell.KeyRune, 'x', core.ActionNone},
		{"unbound key", tcell.KeyF1, 0, core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := actionFor(tt.key, tt.ch); got != tt.expected {
				t.Errorf("actionFor(%v, %q) = %v, expected %v", tt.key, tt.ch, got, tt.expected)
			}
		})
	}
}

func TestRunnerTicks(t *testing.T) {
	r := newTestRunner(t)

	if !r.handleKey(tcell.KeyEnter, 0) || !r.tick() {
		t.Fatal("runner stopped on enter")
	}
	if r.ctrl.Phase() != shooter.PhaseRunning {
		t.Fatalf("Phase() = %v, expected Running", r.ctrl.Phase())
	}

	r.handleKey(tcell.KeyRune, 'q')
	if r.tick() {
		t.Error("tick after q should stop the runner")
	}
}

func TestRunnerCtrlC(t *testing.T) {
	r := newTestRunner(t)
	if r.handleKey(tcell.KeyCtrlC, 0) {
		t.Error("ctrl+c should stop the runner immediately")
	}
}

func TestRunnerDraw(t *testing.T) {
	r := newTestRunner(t)
	r.handleKey(tcell.KeyEnter, 0)
	r.tick()

	c := newMockCanvas()
	r.draw(c)

	if got := c.cells[[2]int{40, 23}]; got != '▲' {
		t.Errorf("cell under ship = %q, expected '▲'", got)
	}
	if c.style[[2]int{40, 23}] != styleFor(core.ColorBrightCyan) {
		t.Error("ship not drawn in bright cyan")
	}
	if row := c.row(24, 12); row != " ←↑→↓/WASD m" {
		t.Errorf("status row = %q", row)
	}
}

func TestRunnerResize(t *testing.T) {
	r := newTestRunner(t)
	r.resize(100, 30)

	if r.buf.Width() != 100 || r.buf.Height() != 29 {
		t.Errorf("buffer = %dx%d, expected 100x29", r.buf.Width(), r.buf.Height())
	}
}

func TestStyleFor(t *testing.T) {
	if styleFor(core.ColorDefault) != tcell.StyleDefault {
		t.Error("default color should use the default style")
	}
	if styleFor(core.ColorOrange) != tcell.StyleDefault.Foreground(tcell.PaletteColor(208)) {
		t.Error("orange should map to palette color 208")
	}
}
