// Package sticky is a scrollable document with one tracked block. A header
// sticks to the top of the screen while the block is above the viewport.
package sticky

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/andyrewlee/enterexit/internal/config"
	"github.com/andyrewlee/enterexit/internal/enterexit"
	"github.com/andyrewlee/enterexit/internal/geom"
	"github.com/andyrewlee/enterexit/internal/logging"
	"github.com/andyrewlee/enterexit/internal/ui/common"
	"github.com/andyrewlee/enterexit/internal/zonesource"
)

const (
	targetZoneID = "target"

	blockIndent = 12
	blockWidth  = 30
	blockHeight = 5

	// header plus status and help lines
	chromeRows = 3

	horizontalStep = 4
	maxLogEntries  = 200
	checkDelay     = 16 * time.Millisecond
)

// Zones marks rendered output and resolves where marks ended up.
// *zone.Manager satisfies it.
type Zones interface {
	zonesource.Locator
	Mark(id, v string) string
	Scan(v string) string
}

// checkMsg asks the source to compare zones against the viewport. Zone
// positions settle after Scan, so checks run on a short tick.
type checkMsg struct{}

type copiedMsg struct {
	count int
	err   error
}

// ConfigChangedMsg carries a reloaded configuration.
type ConfigChangedMsg struct {
	Config *config.Config
}

// Model is the demo's bubbletea model.
type Model struct {
	zones  Zones
	keys   keyMap
	styles common.Styles

	touching    bool
	root        string
	rootNote    string
	fillerLines int
	logLevel    string

	observer *enterexit.Observer
	source   *zonesource.Source

	width   int
	height  int
	yOffset int
	xOffset int

	content      []string
	contentWidth int
	blockTop     int
	marked       map[string]bool

	events []enterexit.Event
	sticky bool
	status string

	copyFn   func(string) error
	quitting bool
}

// New builds the document, marks the block with zones and starts watching it.
func New(cfg *config.Config, zones Zones) *Model {
	m := &Model{
		zones:       zones,
		keys:        defaultKeyMap(),
		styles:      common.DefaultStyles(),
		touching:    cfg.Touching,
		root:        cfg.Root,
		fillerLines: cfg.FillerLines,
		logLevel:    cfg.LogLevel,
		copyFn:      common.CopyToClipboard,
	}
	m.buildContent()
	m.rewatch()
	return m
}

// Init schedules the first check.
func (m *Model) Init() tea.Cmd { return m.scheduleCheck() }

// Events returns the events received so far, oldest first.
func (m *Model) Events() []enterexit.Event { return m.events }

// Sticky reports whether the header is pinned.
func (m *Model) Sticky() bool { return m.sticky }

// Close cancels the watch.
func (m *Model) Close() {
	if m.observer != nil {
		m.observer.Close()
	}
}

func (m *Model) rewatch() {
	m.Close()
	m.observer = enterexit.New(
		zonesource.Factory(m.zones, &m.source),
		enterexit.WithRoot(m.observedRoot()),
		enterexit.WithTouching(m.touching),
	)
	m.sticky = false
	m.syncViewport()
	m.observer.Watch(targetZoneID, m.onEvent)
}

// observedRoot resolves the configured root against the zones this document
// marks. A name the document never renders would silence every check, so it
// falls back to the viewport.
func (m *Model) observedRoot() string {
	m.rootNote = ""
	if m.root == "" || m.marked[m.root] {
		return m.root
	}
	logging.Warn("sticky: root zone %q is not in the document, using the viewport", m.root)
	m.rootNote = fmt.Sprintf("root %q not found, using viewport", m.root)
	return ""
}

func (m *Model) onEvent(ev enterexit.Event, _ enterexit.Notification) {
	m.events = append(m.events, ev)
	if len(m.events) > maxLogEntries {
		m.events = m.events[len(m.events)-maxLogEntries:]
	}
	m.sticky = ev.Position.Y == geom.Before
	m.status = ""
	logging.Debug("sticky: %s", ev)
}

func fillerLine(i int) string {
	return fmt.Sprintf("%4d  %s", i+1, strings.Repeat("· ", 48))
}

func (m *Model) blockLines() []string {
	inner := blockWidth - 2
	label := fmt.Sprintf(" %-*s", inner-1, "tracked block")
	lines := []string{"╭" + strings.Repeat("─", inner) + "╮"}
	for row := 1; row < blockHeight-1; row++ {
		text := strings.Repeat(" ", inner)
		if row == 1 {
			text = label
		}
		lines = append(lines, "│"+text+"│")
	}
	lines = append(lines, "╰"+strings.Repeat("─", inner)+"╯")
	for i, line := range lines {
		lines[i] = m.styles.Target.Render(line)
	}
	return lines
}

func (m *Model) mark(id, v string) string {
	m.marked[id] = true
	return m.zones.Mark(id, v)
}

func (m *Model) buildContent() {
	m.marked = make(map[string]bool)
	var lines []string
	for i := 0; i < m.fillerLines; i++ {
		lines = append(lines, fillerLine(i))
	}

	m.blockTop = len(lines)
	marked := m.mark(targetZoneID, strings.Join(m.blockLines(), "\n"))
	indent := strings.Repeat(" ", blockIndent)
	for _, line := range strings.Split(marked, "\n") {
		lines = append(lines, indent+line)
	}

	for i := 0; i < m.fillerLines; i++ {
		lines = append(lines, fillerLine(m.fillerLines+i))
	}

	scanned := m.zones.Scan(strings.Join(lines, "\n"))
	m.content = strings.Split(scanned, "\n")
	m.contentWidth = 0
	for _, line := range m.content {
		if w := ansi.StringWidth(line); w > m.contentWidth {
			m.contentWidth = w
		}
	}
}

func (m *Model) viewHeight() int {
	if h := m.height - chromeRows; h > 0 {
		return h
	}
	return 1
}

func (m *Model) viewWidth() int {
	if m.width > 0 {
		return m.width
	}
	return 1
}

// syncViewport hands the visible window, in document coordinates, to the
// source. Nothing is set until the terminal size is known.
func (m *Model) syncViewport() {
	if m.source == nil || m.width <= 0 {
		return
	}
	view := geom.XYWH(0, 0, float64(m.viewWidth()), float64(m.viewHeight()))
	m.source.SetViewport(view.Offset(float64(m.xOffset), float64(m.yOffset)))
}

func (m *Model) scheduleCheck() tea.Cmd {
	return tea.Tick(checkDelay, func(time.Time) tea.Msg { return checkMsg{} })
}

func (m *Model) check() {
	if m.source != nil {
		m.source.Check()
	}
}

// scrollBy moves the viewport. The block may be scrolled fully past every
// edge so that each side can be exited.
func (m *Model) scrollBy(dy, dx int) tea.Cmd {
	vh, vw := m.viewHeight(), m.viewWidth()
	m.yOffset = common.ClampOffset(m.yOffset+dy, -vh, len(m.content))
	m.xOffset = common.ClampOffset(m.xOffset+dx, -vw, m.contentWidth)
	m.syncViewport()
	return m.scheduleCheck()
}

// applyConfig applies a reloaded config. The log level changes in place; a
// new filler length rebuilds the document; any change to the document or the
// observer options rewatches. Non-positive filler keeps the current document.
func (m *Model) applyConfig(cfg *config.Config) tea.Cmd {
	if cfg == nil {
		return nil
	}
	if cfg.LogLevel != "" && cfg.LogLevel != m.logLevel {
		m.logLevel = cfg.LogLevel
		logging.SetLevel(logging.ParseLevel(cfg.LogLevel))
	}

	rebuild := cfg.FillerLines > 0 && cfg.FillerLines != m.fillerLines
	if !rebuild && cfg.Touching == m.touching && cfg.Root == m.root {
		return nil
	}
	logging.Info("sticky: config changed (touching=%v root=%q filler=%d)", cfg.Touching, cfg.Root, cfg.FillerLines)
	m.touching = cfg.Touching
	m.root = cfg.Root
	if rebuild {
		m.fillerLines = cfg.FillerLines
		m.buildContent()
		m.yOffset = common.ClampOffset(m.yOffset, -m.viewHeight(), len(m.content))
		m.xOffset = common.ClampOffset(m.xOffset, -m.viewWidth(), m.contentWidth)
	}
	m.rewatch()
	return m.scheduleCheck()
}

func (m *Model) eventLog() string {
	var b strings.Builder
	for _, ev := range m.events {
		b.WriteString(ev.String())
		b.WriteString("\n")
	}
	return b.String()
}
