package sticky

import (
	"fmt"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/andyrewlee/enterexit/internal/logging"
	"github.com/andyrewlee/enterexit/internal/ui/common"
)

// Update handles input, checks and config reloads.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.syncViewport()
		return m, m.scheduleCheck()
	case checkMsg:
		m.check()
	case ConfigChangedMsg:
		return m, m.applyConfig(msg.Config)
	case copiedMsg:
		if msg.err != nil {
			logging.WithError(msg.err, "copy event log")
			m.status = "copy failed: " + msg.err.Error()
		} else {
			m.status = fmt.Sprintf("copied %d events", msg.count)
		}
	case tea.KeyPressMsg:
		return m.handleKey(msg)
	case tea.MouseWheelMsg:
		return m.handleMouseWheel(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	page := common.ScrollDeltaForHeight(m.viewHeight(), 2)
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.Close()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Down):
		return m, m.scrollBy(1, 0)
	case key.Matches(msg, m.keys.Up):
		return m, m.scrollBy(-1, 0)
	case key.Matches(msg, m.keys.PageDown):
		return m, m.scrollBy(page, 0)
	case key.Matches(msg, m.keys.PageUp):
		return m, m.scrollBy(-page, 0)
	case key.Matches(msg, m.keys.Left):
		return m, m.scrollBy(0, -horizontalStep)
	case key.Matches(msg, m.keys.Right):
		return m, m.scrollBy(0, horizontalStep)
	case key.Matches(msg, m.keys.Home):
		return m, m.scrollBy(-m.yOffset, -m.xOffset)
	case key.Matches(msg, m.keys.Touching):
		m.touching = !m.touching
		m.rewatch()
		return m, m.scheduleCheck()
	case key.Matches(msg, m.keys.Copy):
		text, count, copyFn := m.eventLog(), len(m.events), m.copyFn
		return m, func() tea.Msg {
			return copiedMsg{count: count, err: copyFn(text)}
		}
	}
	return m, nil
}

func (m *Model) handleMouseWheel(msg tea.MouseWheelMsg) (tea.Model, tea.Cmd) {
	switch msg.Button {
	case tea.MouseWheelUp:
		return m, m.scrollBy(-1, 0)
	case tea.MouseWheelDown:
		return m, m.scrollBy(1, 0)
	case tea.MouseWheelLeft:
		return m, m.scrollBy(0, -horizontalStep)
	case tea.MouseWheelRight:
		return m, m.scrollBy(0, horizontalStep)
	}
	return m, nil
}
