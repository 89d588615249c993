package player

import (
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/katalvlaran/kruskalview/core"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#e0e0e0")).
			Background(lipgloss.Color("#1d3557")).
			Bold(true)

	messageStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#f1fa8c"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6c7a89"))

	errStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ff5555")).
			Bold(true)

	// Link styles per status.
	linkStyles = map[core.Status]lipgloss.Style{
		core.StatusNormal:   lipgloss.NewStyle().Foreground(lipgloss.Color("#50fa7b")),
		core.StatusActive:   lipgloss.NewStyle().Foreground(lipgloss.Color("#ffb86c")).Bold(true),
		core.StatusInactive: lipgloss.NewStyle().Foreground(lipgloss.Color("#44475a")),
	}

	// groupColors cycles for colour groups beyond its length.
	groupColors = []color.Color{
		lipgloss.Color("#8be9fd"),
		lipgloss.Color("#ff79c6"),
		lipgloss.Color("#bd93f9"),
		lipgloss.Color("#50fa7b"),
		lipgloss.Color("#ffb86c"),
		lipgloss.Color("#f1fa8c"),
		lipgloss.Color("#ff5555"),
		lipgloss.Color("#6272a4"),
		lipgloss.Color("#a4ffff"),
		lipgloss.Color("#d6acff"),
	}
)

const helpLine = "[space] play/pause  [←/→] step  [home/end] jump  [+/-] speed  [r]ecompute  [a]dd  [d]elete  [g]enerate  [q]uit"

// fixedRows counts the view lines that are not link rows.
const fixedRows = 10

// View implements tea.Model.
func (m Model) View() tea.View {
	if m.Width == 0 || m.Height == 0 {
		return tea.NewView("")
	}

	v := tea.NewView(m.render())
	v.AltScreen = true
	return v
}

// render builds the full screen as a string.
func (m Model) render() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(" Kruskal MST " + m.header() + " "))
	b.WriteString("\n")
	if m.Cursor != nil {
		if p, ok := m.Cursor.Current(); ok {
			b.WriteString(messageStyle.Render(p.Message))
		}
	}
	b.WriteString("\n\n")

	b.WriteString("Nodes\n ")
	for _, n := range m.Graph.Nodes {
		c := groupColors[n.ColorGroup%len(groupColors)]
		b.WriteString(" ")
		b.WriteString(lipgloss.NewStyle().Foreground(c).Render(fmt.Sprintf("●%d", n.ID)))
	}
	b.WriteString("\n\nLinks\n")

	limit := len(m.Graph.Links)
	if m.Height > fixedRows && limit > m.Height-fixedRows {
		limit = m.Height - fixedRows
	}
	accepted, weight := 0, 0.0
	for i, l := range m.Graph.Links {
		if l.Status == core.StatusNormal && m.Cursor != nil {
			accepted++
			weight += l.Weight
		}
		if i >= limit {
			continue
		}
		row := fmt.Sprintf("  %2d ─ %-2d  w=%-6g %s", l.Source, l.Target, l.Weight, statusLabel(l.Status, m.Cursor != nil))
		b.WriteString(linkStyles[l.Status].Render(row))
		b.WriteString("\n")
	}
	if hidden := len(m.Graph.Links) - limit; hidden > 0 {
		b.WriteString(fmt.Sprintf("  … %d more\n", hidden))
	}

	b.WriteString(fmt.Sprintf("\ncomponents: %d  accepted: %d  weight: %g\n", m.Graph.ColorGroups(), accepted, weight))
	b.WriteString(helpStyle.Render(helpLine))
	b.WriteString("\n")
	switch {
	case m.Err != nil:
		b.WriteString(errStyle.Render(m.Err.Error()))
	case m.Status != "":
		b.WriteString(helpStyle.Render(m.Status))
	}

	return b.String()
}

func (m Model) header() string {
	if m.Cursor == nil {
		return "│ stale"
	}
	state := "paused"
	if m.Playing {
		state = "playing"
	}
	return fmt.Sprintf("│ step %d/%d │ %s │ %s", m.Cursor.Index()+1, m.Cursor.Len(), state, m.Interval)
}

// statusLabel names a link state. Without a history every link is just
// "normal" input.
func statusLabel(s core.Status, recorded bool) string {
	if !recorded {
		return ""
	}
	switch s {
	case core.StatusActive:
		return "considering"
	case core.StatusNormal:
		return "in tree"
	default:
		return "-"
	}
}
