package shooter

import (
	"fmt"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

const (
	glyphPlayer     = '▲'
	glyphProjectile = '│'
	glyphObstacle   = '▓'
	hudRows         = 1
)

// viewport maps field coordinates onto a rectangle of screen cells.
type viewport struct {
	field core.Rect
	area  core.Rect
}

// project converts a field rectangle into cells. Any visible sliver of an
// entity covers at least one cell. The result is clipped to the area.
func (v viewport) project(r core.Rect) (core.Rect, bool) {
	x0 := v.area.X + floorDiv((r.X-v.field.X)*v.area.W, v.field.W)
	x1 := v.area.X + ceilDiv((r.Right()-v.field.X)*v.area.W, v.field.W)
	y0 := v.area.Y + floorDiv((r.Y-v.field.Y)*v.area.H, v.field.H)
	y1 := v.area.Y + ceilDiv((r.Bottom()-v.field.Y)*v.area.H, v.field.H)

	x0 = max(x0, v.area.X)
	y0 = max(y0, v.area.Y)
	x1 = min(x1, v.area.Right())
	y1 = min(y1, v.area.Bottom())
	if x1 <= x0 || y1 <= y0 {
		return core.Rect{}, false
	}
	return core.NewRect(x0, y0, x1-x0, y1-y0), true
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func ceilDiv(a, b int) int {
	return -floorDiv(-a, b)
}

// Render draws the current phase into dst. The top row holds the HUD and
// the rest of the screen shows the field scaled to fit.
func (c *Controller) Render(dst *core.Screen) {
	dst.Clear()
	if dst.Width() < 20 || dst.Height() < 6 {
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small", core.ColorBrightRed)
		return
	}

	snap := c.last
	c.drawHUD(dst, snap)

	vp := viewport{
		field: snap.Field,
		area:  core.NewRect(0, hudRows, dst.Width(), dst.Height()-hudRows),
	}

	switch c.phase {
	case PhaseAwaitingStart:
		drawOverlay(dst, []overlayLine{
			{"SPACE SHOOTER", core.ColorBrightCyan},
			{"", core.ColorDefault},
			{"Arrows/WASD move   Space fire", core.ColorWhite},
			{"P pause   Q quit", core.ColorWhite},
			{"", core.ColorDefault},
			{"Press ENTER to start", core.ColorBrightYellow},
		})
		return

	case PhaseRunning:
		drawField(dst, vp, snap)
		if c.paused {
			drawOverlay(dst, []overlayLine{
				{"PAUSED", core.ColorBrightYellow},
				{"P to resume", core.ColorWhite},
			})
		}

	case PhaseLost:
		drawField(dst, vp, snap)
		drawOverlay(dst, []overlayLine{
			{"GAME OVER", core.ColorBrightRed},
			{"", core.ColorDefault},
			{fmt.Sprintf("Score: %d   Best: %d", snap.Score, c.best), core.ColorBrightWhite},
			{"", core.ColorDefault},
			{"ENTER restart   Q quit", core.ColorWhite},
		})
	}
}

func (c *Controller) drawHUD(dst *core.Screen, snap Snapshot) {
	left := fmt.Sprintf(" Score: %d", snap.Score)
	right := fmt.Sprintf("Spawn: %dms  Level: %3.0f%% ", snap.Interval, snap.Level*100)
	dst.DrawHLine(0, 0, dst.Width(), ' ', core.ColorDefault)
	dst.DrawTextColor(0, 0, left, core.ColorBrightWhite)
	dst.DrawTextColor(dst.Width()-len(right), 0, right, core.ColorGray)
}

func drawField(dst *core.Screen, vp viewport, snap Snapshot) {
	for _, o := range snap.Obstacles {
		if r, ok := vp.project(o); ok {
			dst.FillRect(r, glyphObstacle, core.ColorOrange)
		}
	}
	for _, p := range snap.Projectiles {
		if r, ok := vp.project(p); ok {
			dst.FillRect(r, glyphProjectile, core.ColorBrightYellow)
		}
	}
	if r, ok := vp.project(snap.Player); ok {
		color := core.ColorBrightCyan
		if snap.State == StateLost {
			color = core.ColorBrightRed
		}
		dst.FillRect(r, glyphPlayer, color)
	}
}

type overlayLine struct {
	text  string
	color core.Color
}

// drawOverlay draws a bordered, centered box containing the given lines.
func drawOverlay(dst *core.Screen, lines []overlayLine) {
	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l.text)))
	}
	box := core.NewRect(0, 0, width+6, len(lines)+4)
	box.X = (dst.Width() - box.W) / 2
	box.Y = (dst.Height() - box.H) / 2

	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorCyan)
	for i, l := range lines {
		dst.DrawTextCentered(box.Y+2+i, l.text, l.color)
	}
}
