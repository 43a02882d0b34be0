package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-shooter/internal/storage"
)

// RoundSource lists the rounds played so far.
type RoundSource interface {
	Rounds() ([]storage.RoundEntry, error)
}

// roundsKeyMap defines the key bindings of the rounds view.
type roundsKeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Close key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k roundsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Close}
}

// FullHelp returns key bindings for the full help view.
func (k roundsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Close}}
}

func defaultRoundsKeyMap() roundsKeyMap {
	return roundsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Close: key.NewBinding(
			key.WithKeys("tab", "esc", "b"),
			key.WithHelp("tab/esc", "back"),
		),
	}
}

// roundsView shows this run's rounds in a table.
type roundsView struct {
	source RoundSource
	rounds []storage.RoundEntry
	err    error
	table  table.Model
	help   help.Model
	keys   roundsKeyMap
	width  int
	height int
	tickMs float64
}

func newRoundsView(source RoundSource, width, height int, tickMs float64) roundsView {
	v := roundsView{
		source: source,
		help:   help.New(),
		keys:   defaultRoundsKeyMap(),
		width:  width,
		height: height,
		tickMs: tickMs,
	}
	v.table = v.createTable()
	return v
}

// createTable builds the table for the current size.
func (v *roundsView) createTable() table.Model {
	columns := []table.Column{
		{Title: "Round", Width: 6},
		{Title: "Score", Width: 7},
		{Title: "Shots", Width: 7},
		{Title: "Hits", Width: 6},
		{Title: "Acc", Width: 6},
		{Title: "Time", Width: 8},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(v.height-8, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// reload fetches the rounds, newest first.
func (v *roundsView) reload() {
	v.rounds, v.err = nil, nil
	if v.source != nil {
		rounds, err := v.source.Rounds()
		if err != nil {
			v.err = err
		}
		for i := len(rounds) - 1; i >= 0; i-- {
			v.rounds = append(v.rounds, rounds[i])
		}
	}

	rows := make([]table.Row, len(v.rounds))
	for i, r := range v.rounds {
		played := time.Duration(float64(r.Ticks) * v.tickMs * float64(time.Millisecond))
		rows[i] = table.Row{
			fmt.Sprintf("#%d", r.Round),
			fmt.Sprintf("%d", r.Score),
			fmt.Sprintf("%d", r.Shots),
			fmt.Sprintf("%d", r.Destroyed),
			fmt.Sprintf("%.0f%%", r.Accuracy()*100),
			played.Round(100 * time.Millisecond).String(),
		}
	}
	v.table.SetRows(rows)
	v.table.GotoTop()
}

// resize rebuilds the table for a new terminal size.
func (v *roundsView) resize(width, height int) {
	v.width = width
	v.height = height
	v.help.Width = width
	v.table = v.createTable()
	v.reload()
}

// update handles a key while the view is open.
// Returns false when the view should close.
func (v *roundsView) update(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keys.Close):
		return false, nil
	case key.Matches(msg, v.keys.Up), key.Matches(msg, v.keys.Down):
		var cmd tea.Cmd
		v.table, cmd = v.table.Update(msg)
		return true, cmd
	}
	return true, nil
}

// view renders the rounds screen.
func (v roundsView) view() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(centerText(titleStyle.Render("ROUNDS THIS RUN"), v.width))
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	var content string
	switch {
	case v.err != nil:
		content = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9")).
			Render("Cannot load rounds: " + v.err.Error())
	case len(v.rounds) == 0:
		content = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(1, 4).
			Render("No rounds finished yet.")
	default:
		content = v.table.View()
	}
	b.WriteString(centerText(boxStyle.Render(content), v.width))

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(v.help.View(v.keys)))

	return b.String()
}

// centerText pads every line of s to center it within width.
func centerText(s string, width int) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if pad := (width - lipgloss.Width(line)) / 2; pad > 0 {
			lines[i] = strings.Repeat(" ", pad) + line
		}
	}
	return strings.Join(lines, "\n")
}
