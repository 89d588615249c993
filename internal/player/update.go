package player

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height

	case tickMsg:
		return m.handleTick(msg)

	case tea.KeyMsg:
		return m.handleKey(msg.String())
	}

	return m, nil
}

func (m Model) handleTick(msg tickMsg) (tea.Model, tea.Cmd) {
	if !m.Playing || msg.id != m.tick || m.Cursor == nil {
		return m, nil
	}
	m.Cursor.Next()
	m.Err = m.seek()
	if m.Err != nil || m.Cursor.AtEnd() {
		m.Playing = false
		return m, nil
	}

	return m, m.scheduleTick()
}

// handleKey processes keyboard input.
func (m Model) handleKey(key string) (tea.Model, tea.Cmd) {
	m.Err = nil

	switch key {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "space", " ":
		if m.Cursor == nil {
			m.Status = "history is stale, press r to recompute"
			return m, nil
		}
		m.tick++
		m.Playing = !m.Playing
		if !m.Playing {
			return m, nil
		}
		if m.Cursor.AtEnd() {
			m.Cursor.Reset()
			m.Err = m.seek()
		}
		return m, m.scheduleTick()

	// Stepping
	case "right", "l":
		m.step(func() { m.Cursor.Next() })
	case "left", "h":
		m.step(func() { m.Cursor.Prev() })
	case "home":
		m.step(m.cursorReset)
	case "end":
		m.step(m.cursorEnd)

	// Speed
	case "+", "=":
		m.Interval = clampInterval(m.Interval / 2)
	case "-", "_":
		m.Interval = clampInterval(m.Interval * 2)

	// Editing
	case "r":
		m.Playing = false
		m.tick++
		if m.Err = m.recompute(); m.Err == nil {
			m.Status = "recomputed"
		}
	case "a":
		n := m.Graph.AddNode(0, 0)
		m.invalidate(fmt.Sprintf("added node %d", n.ID))
	case "d":
		n, err := m.Graph.RemoveLastNode()
		if err != nil {
			m.Err = err
			return m, nil
		}
		m.invalidate(fmt.Sprintf("removed node %d", n.ID))
	case "g":
		if m.Err = m.regenerate(); m.Err == nil {
			m.Status = "regenerated"
		}
	}

	return m, nil
}

// step moves the cursor with move and syncs the graph. Manual steps pause
// autoplay.
func (m *Model) step(move func()) {
	if m.Cursor == nil {
		m.Status = "history is stale, press r to recompute"
		return
	}
	m.Playing = false
	m.tick++
	move()
	m.Err = m.seek()
}

func (m *Model) cursorReset() { m.Cursor.Reset() }
func (m *Model) cursorEnd()   { m.Cursor.End() }
