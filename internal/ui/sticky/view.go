package sticky

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/andyrewlee/enterexit/internal/ui/common"
)

// View renders the header, the visible slice of the document and the
// status and help lines.
func (m *Model) View() tea.View {
	var view tea.View
	view.AltScreen = true
	view.MouseMode = tea.MouseModeCellMotion
	view.BackgroundColor = common.ColorBackground
	view.ForegroundColor = common.ColorForeground
	if m.quitting {
		view.SetContent("")
		return view
	}
	view.SetContent(m.render())
	return view
}

func (m *Model) render() string {
	width := m.viewWidth()
	body := make([]string, 0, m.viewHeight())
	for row := 0; row < m.viewHeight(); row++ {
		idx := m.yOffset + row
		line := ""
		if idx >= 0 && idx < len(m.content) {
			line = m.content[idx]
		}
		body = append(body, m.slice(line, width))
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.headerLine(width),
		strings.Join(body, "\n"),
		m.statusLine(width),
		m.helpLine(width),
	)
}

// slice cuts the visible columns out of a document line.
func (m *Model) slice(line string, width int) string {
	if m.xOffset >= 0 {
		return ansi.Cut(line, m.xOffset, m.xOffset+width)
	}
	pad := -m.xOffset
	if pad >= width {
		return ""
	}
	return strings.Repeat(" ", pad) + ansi.Truncate(line, width-pad, "")
}

func (m *Model) headerLine(width int) string {
	if m.sticky {
		text := " ▲ tracked block is above the viewport"
		if n := width - ansi.StringWidth(text); n > 0 {
			text += strings.Repeat(" ", n)
		}
		return m.styles.Sticky.Render(ansi.Truncate(text, width, "…"))
	}
	title := m.styles.Title.Render("enterexit")
	info := m.styles.Muted.Render(fmt.Sprintf("  touching=%v  offset=%d,%d", m.touching, m.xOffset, m.yOffset))
	return ansi.Truncate(title+info, width, "…")
}

func (m *Model) statusLine(width int) string {
	var parts []string
	if n := len(m.events); n > 0 {
		ev := m.events[n-1]
		parts = append(parts, common.EventLabel(ev.Type.String()),
			m.styles.Body.Render(fmt.Sprintf("side=%s position=(%d,%d)", ev.Side, ev.Position.X, ev.Position.Y)))
	} else {
		parts = append(parts, m.styles.Muted.Render("waiting for first notification"))
	}
	if m.rootNote != "" {
		parts = append(parts, m.styles.Error.Render(m.rootNote))
	}
	if m.status != "" {
		parts = append(parts, m.styles.Muted.Render(m.status))
	}
	return ansi.Truncate(strings.Join(parts, "  "), width, "…")
}

func (m *Model) helpLine(width int) string {
	var parts []string
	for _, b := range m.keys.help() {
		h := b.Help()
		parts = append(parts, m.styles.HelpKey.Render(h.Key)+" "+m.styles.Help.Render(h.Desc))
	}
	return ansi.Truncate(strings.Join(parts, "  "), width, "…")
}
