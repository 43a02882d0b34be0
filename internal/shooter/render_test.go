package shooter

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

func TestViewportProject(t *testing.T) {
	vp := viewport{
		field: core.NewRect(0, 0, 800, 600),
		area:  core.NewRect(0, 1, 80, 24),
	}

	tests := []struct {
		name     string
		box      core.Rect
		expected core.Rect
		visible  bool
	}{
		{
			name:     "player at spawn",
			box:      core.NewRect(375, 540, 50, 38),
			expected: core.NewRect(37, 22, 6, 3),
			visible:  true,
		},
		{
			name:    "obstacle above field",
			box:     core.NewRect(0, -100, 100, 100),
			visible: false,
		},
		{
			name:     "obstacle entering field",
			box:      core.NewRect(0, -50, 100, 100),
			expected: core.NewRect(0, 1, 10, 2),
			visible:  true,
		},
		{
			name:     "projectile narrower than a cell",
			box:      core.NewRect(398, 300, 5, 10),
			expected: core.NewRect(39, 13, 2, 1),
			visible:  true,
		},
		{
			name:    "obstacle below field",
			box:     core.NewRect(0, 605, 100, 100),
			visible: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := vp.project(tt.box)
			if ok != tt.visible {
				t.Fatalf("project(%+v) visible = %v, expected %v", tt.box, ok, tt.visible)
			}
			if ok && got != tt.expected {
				t.Errorf("project(%+v) = %+v, expected %+v", tt.box, got, tt.expected)
			}
		})
	}
}

func TestDivRounding(t *testing.T) {
	tests := []struct {
		a, b        int
		floor, ceil int
	}{
		{7, 2, 3, 4},
		{-7, 2, -4, -3},
		{8, 2, 4, 4},
		{0, 5, 0, 0},
		{-4, 2, -2, -2},
	}
	for _, tt := range tests {
		if got := floorDiv(tt.a, tt.b); got != tt.floor {
			t.Errorf("floorDiv(%d, %d) = %d, expected %d", tt.a, tt.b, got, tt.floor)
		}
		if got := ceilDiv(tt.a, tt.b); got != tt.ceil {
			t.Errorf("ceilDiv(%d, %d) = %d, expected %d", tt.a, tt.b, got, tt.ceil)
		}
	}
}

func TestRenderPhases(t *testing.T) {
	c := newTestController(t, nil)
	screen := core.NewScreen(80, 25)

	c.Render(screen)
	if !strings.Contains(screen.String(), "SPACE SHOOTER") || !strings.Contains(screen.String(), "Press ENTER to start") {
		t.Errorf("title screen missing text:\n%s", screen.String())
	}

	c.Step(frame(core.ActionConfirm))
	c.Render(screen)
	if !strings.Contains(screen.Row(0), "Score: 0") {
		t.Errorf("HUD row = %q, expected score", screen.Row(0))
	}
	if cell := screen.GetCell(40, 23); cell.Rune != glyphPlayer || cell.Color != core.ColorBrightCyan {
		t.Errorf("cell under ship = %+v, expected cyan %q", cell, glyphPlayer)
	}

	c.Step(frame(core.ActionPause))
	c.Render(screen)
	if !strings.Contains(screen.String(), "PAUSED") {
		t.Error("pause overlay missing")
	}
	c.Step(frame(core.ActionPause))

	crash(c)
	c.Step(frame())
	c.Render(screen)
	out := screen.String()
	if !strings.Contains(out, "GAME OVER") || !strings.Contains(out, "Score: 0   Best: 0") {
		t.Errorf("game over screen missing text:\n%s", out)
	}
}

func TestRenderTooSmall(t *testing.T) {
	c := newTestController(t, nil)
	screen := core.NewScreen(19, 5)

	c.Render(screen)
	if !strings.Contains(screen.String(), "Terminal too small") {
		t.Errorf("expected size warning, got:\n%s", screen.String())
	}
}
