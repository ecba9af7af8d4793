package sticky

import (
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	zone "github.com/lrstanley/bubblezone"

	"github.com/andyrewlee/enterexit/internal/config"
	"github.com/andyrewlee/enterexit/internal/enterexit"
	"github.com/andyrewlee/enterexit/internal/geom"
)

type fakeZones struct {
	info   map[string]*zone.ZoneInfo
	marked []string
}

func (f *fakeZones) Mark(id, v string) string {
	f.marked = append(f.marked, id)
	return v
}

func (f *fakeZones) Scan(v string) string { return v }

func (f *fakeZones) Get(id string) *zone.ZoneInfo { return f.info[id] }

func newTestModel(t *testing.T, touching bool) *Model {
	t.Helper()
	f := &fakeZones{info: map[string]*zone.ZoneInfo{}}
	m := New(&config.Config{FillerLines: 40, Touching: touching}, f)
	f.info[targetZoneID] = &zone.ZoneInfo{
		StartX: blockIndent,
		StartY: m.blockTop,
		EndX:   blockIndent + blockWidth - 1,
		EndY:   m.blockTop + blockHeight - 1,
	}
	if len(f.marked) != 1 || f.marked[0] != targetZoneID {
		t.Fatalf("marked zones = %v", f.marked)
	}
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m.Update(checkMsg{})
	return m
}

func lastEvent(t *testing.T, m *Model) enterexit.Event {
	t.Helper()
	evs := m.Events()
	if len(evs) == 0 {
		t.Fatal("no events")
	}
	return evs[len(evs)-1]
}

// scrollTo moves the viewport to an absolute offset and runs a check.
func scrollTo(m *Model, y, x int) {
	m.scrollBy(y-m.yOffset, x-m.xOffset)
	m.Update(checkMsg{})
}

func TestNoEventsBeforeSizeKnown(t *testing.T) {
	f := &fakeZones{info: map[string]*zone.ZoneInfo{
		targetZoneID: {StartX: 0, StartY: 0, EndX: 1, EndY: 1},
	}}
	m := New(&config.Config{FillerLines: 5}, f)
	m.Update(checkMsg{})
	if len(m.Events()) != 0 {
		t.Fatalf("events before WindowSizeMsg: %+v", m.Events())
	}
}

func TestInitialEventBelowViewport(t *testing.T) {
	m := newTestModel(t, false)
	ev := lastEvent(t, m)
	if ev.Type != enterexit.EventInit || ev.Side != geom.SideBottom {
		t.Fatalf("got %s %q, want init bottom", ev.Type, ev.Side)
	}
	if m.Sticky() {
		t.Fatal("header should not be sticky")
	}
}

func TestScrollingProducesDirectionalEvents(t *testing.T) {
	m := newTestModel(t, false)

	scrollTo(m, 30, 0)
	if ev := lastEvent(t, m); ev.Type != enterexit.EventEnter || ev.Side != geom.SideBottom {
		t.Fatalf("got %s %q, want enter bottom", ev.Type, ev.Side)
	}

	scrollTo(m, 60, 0)
	if ev := lastEvent(t, m); ev.Type != enterexit.EventExit || ev.Side != geom.SideTop {
		t.Fatalf("got %s %q, want exit top", ev.Type, ev.Side)
	}
	if !m.Sticky() {
		t.Fatal("header should stick once the block is above")
	}
	if !strings.Contains(m.render(), "above the viewport") {
		t.Fatal("sticky header not rendered")
	}

	scrollTo(m, 30, 0)
	if ev := lastEvent(t, m); ev.Type != enterexit.EventEnter || ev.Side != geom.SideTop {
		t.Fatalf("got %s %q, want enter top", ev.Type, ev.Side)
	}
	if m.Sticky() {
		t.Fatal("header still sticky after re-entering")
	}

	scrollTo(m, 30, 60)
	if ev := lastEvent(t, m); ev.Type != enterexit.EventExit || ev.Side != geom.SideLeft {
		t.Fatalf("got %s %q, want exit left", ev.Type, ev.Side)
	}
}

func TestScrollWithinRegionIsQuiet(t *testing.T) {
	m := newTestModel(t, false)
	scrollTo(m, 30, 0)
	n := len(m.Events())
	scrollTo(m, 31, 0)
	scrollTo(m, 28, 4)
	if len(m.Events()) != n {
		t.Fatalf("moving inside the region produced events: %+v", m.Events()[n:])
	}
}

func TestScrollClamp(t *testing.T) {
	m := newTestModel(t, false)
	m.scrollBy(-1000, -1000)
	if m.yOffset != -m.viewHeight() || m.xOffset != -m.viewWidth() {
		t.Fatalf("offset = %d,%d", m.xOffset, m.yOffset)
	}
	m.scrollBy(5000, 5000)
	if m.yOffset != len(m.content) || m.xOffset != m.contentWidth {
		t.Fatalf("offset = %d,%d", m.xOffset, m.yOffset)
	}
}

func TestKeyScroll(t *testing.T) {
	m := newTestModel(t, false)
	_, cmd := m.Update(tea.KeyPressMsg{Code: 'j', Text: "j"})
	if cmd == nil || m.yOffset != 1 {
		t.Fatalf("j: yOffset = %d, cmd = %v", m.yOffset, cmd)
	}
	m.Update(tea.KeyPressMsg{Code: 'l', Text: "l"})
	if m.xOffset != horizontalStep {
		t.Fatalf("l: xOffset = %d", m.xOffset)
	}
	m.Update(tea.KeyPressMsg{Code: 'g', Text: "g"})
	if m.xOffset != 0 || m.yOffset != 0 {
		t.Fatalf("g: offset = %d,%d", m.xOffset, m.yOffset)
	}
}

func TestToggleTouchingRestartsTracking(t *testing.T) {
	m := newTestModel(t, false)
	before := len(m.Events())

	m.Update(tea.KeyPressMsg{Code: 't', Text: "t"})
	if !m.touching {
		t.Fatal("touching not toggled")
	}
	if !m.observer.Options().Touching {
		t.Fatal("observer not rebuilt with touching")
	}
	m.Update(checkMsg{})
	evs := m.Events()
	if len(evs) != before+1 || evs[len(evs)-1].Type != enterexit.EventInit {
		t.Fatalf("expected a fresh init, got %+v", evs[before:])
	}
}

func TestTouchingEdgeAdjacency(t *testing.T) {
	tests := []struct {
		touching bool
		want     enterexit.EventType
	}{
		{false, enterexit.EventInit},
		{true, enterexit.EventEnter},
	}
	for _, tt := range tests {
		m := newTestModel(t, tt.touching)
		// The viewport starts on the row right below the block.
		scrollTo(m, m.blockTop+blockHeight, 0)
		if ev := lastEvent(t, m); ev.Type != tt.want {
			t.Errorf("touching=%v: last event %s, want %s", tt.touching, ev.Type, tt.want)
		}
	}
}

func TestConfigChangedRewatches(t *testing.T) {
	m := newTestModel(t, false)
	oldObserver := m.observer

	_, cmd := m.Update(ConfigChangedMsg{Config: &config.Config{Touching: false}})
	if cmd != nil || m.observer != oldObserver {
		t.Fatal("unchanged config should not rewatch")
	}

	_, cmd = m.Update(ConfigChangedMsg{Config: &config.Config{Touching: true}})
	if cmd == nil || m.observer == oldObserver || !m.touching {
		t.Fatal("changed config should rewatch")
	}
	if oldObserver.Watching() != 0 {
		t.Fatal("old observer still watching")
	}
}

func TestCopyEventLog(t *testing.T) {
	m := newTestModel(t, false)
	var copied string
	m.copyFn = func(s string) error {
		copied = s
		return nil
	}

	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Text: "c"})
	if cmd == nil {
		t.Fatal("copy returned no command")
	}
	m.Update(cmd())
	if !strings.Contains(copied, "target init bottom (0,1)") {
		t.Fatalf("copied %q", copied)
	}
	if m.status != "copied 1 events" {
		t.Fatalf("status = %q", m.status)
	}

	m.copyFn = func(string) error { return errors.New("no clipboard") }
	_, cmd = m.Update(tea.KeyPressMsg{Code: 'c', Text: "c"})
	m.Update(cmd())
	if !strings.Contains(m.status, "no clipboard") {
		t.Fatalf("status = %q", m.status)
	}
}

func TestQuitCancelsWatch(t *testing.T) {
	m := newTestModel(t, false)
	_, cmd := m.Update(tea.KeyPressMsg{Code: 'q', Text: "q"})
	if cmd == nil || !m.quitting {
		t.Fatal("q did not quit")
	}
	if m.observer.Watching() != 0 {
		t.Fatal("watch survived quit")
	}
}

func TestRenderHeight(t *testing.T) {
	m := newTestModel(t, false)
	lines := strings.Split(m.render(), "\n")
	if len(lines) != 24 {
		t.Fatalf("rendered %d lines, want 24", len(lines))
	}
}

func TestSliceNegativeOffset(t *testing.T) {
	m := newTestModel(t, false)
	m.xOffset = -3
	if got := m.slice("abcdef", 5); got != "   ab" {
		t.Fatalf("slice = %q", got)
	}
	m.xOffset = -10
	if got := m.slice("abcdef", 5); got != "" {
		t.Fatalf("slice = %q", got)
	}
	m.xOffset = 2
	if got := m.slice("abcdef", 3); got != "cde" {
		t.Fatalf("slice = %q", got)
	}
}

func TestUnknownRootFallsBackToViewport(t *testing.T) {
	f := &fakeZones{info: map[string]*zone.ZoneInfo{}}
	m := New(&config.Config{FillerLines: 40, Root: "pane"}, f)
	f.info[targetZoneID] = &zone.ZoneInfo{
		StartX: blockIndent,
		StartY: m.blockTop,
		EndX:   blockIndent + blockWidth - 1,
		EndY:   m.blockTop + blockHeight - 1,
	}
	if got := m.observer.Options().Root; got != "" {
		t.Fatalf("observer root = %q, want viewport", got)
	}
	if !strings.Contains(m.rootNote, `"pane"`) {
		t.Fatalf("rootNote = %q", m.rootNote)
	}

	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m.Update(checkMsg{})
	for y := 1; y <= 20; y++ {
		scrollTo(m, y, 0)
	}
	if len(m.Events()) < 2 {
		t.Fatalf("events = %+v, want init and enter", m.Events())
	}
	if ev := lastEvent(t, m); ev.Type != enterexit.EventEnter || ev.Side != geom.SideBottom {
		t.Fatalf("last event %s %q, want enter bottom", ev.Type, ev.Side)
	}
	if !strings.Contains(m.statusLine(200), "not found") {
		t.Fatalf("status line lacks root note: %q", m.statusLine(200))
	}
}

func TestMarkedRootIsUsed(t *testing.T) {
	m := newTestModel(t, false)
	m.Update(ConfigChangedMsg{Config: &config.Config{Root: targetZoneID}})
	if got := m.observer.Options().Root; got != targetZoneID {
		t.Fatalf("observer root = %q, want %q", got, targetZoneID)
	}
	if m.rootNote != "" {
		t.Fatalf("rootNote = %q", m.rootNote)
	}

	m.Update(ConfigChangedMsg{Config: &config.Config{Root: "missing"}})
	if got := m.observer.Options().Root; got != "" {
		t.Fatalf("observer root = %q, want viewport", got)
	}
	if m.rootNote == "" {
		t.Fatal("missing root not reported")
	}
}

func TestConfigChangedRebuildsDocument(t *testing.T) {
	m := newTestModel(t, false)
	f := m.zones.(*fakeZones)
	oldObserver := m.observer
	oldLen := len(m.content)

	_, cmd := m.Update(ConfigChangedMsg{Config: &config.Config{FillerLines: 10}})
	if cmd == nil || m.observer == oldObserver {
		t.Fatal("filler change should rewatch")
	}
	if m.fillerLines != 10 || m.blockTop != 10 {
		t.Fatalf("fillerLines = %d blockTop = %d", m.fillerLines, m.blockTop)
	}
	if len(m.content) >= oldLen {
		t.Fatalf("content not rebuilt: %d lines, was %d", len(m.content), oldLen)
	}
	if !m.marked[targetZoneID] {
		t.Fatal("target not marked after rebuild")
	}

	// The block now starts inside the first screen.
	f.info[targetZoneID] = &zone.ZoneInfo{
		StartX: blockIndent,
		StartY: m.blockTop,
		EndX:   blockIndent + blockWidth - 1,
		EndY:   m.blockTop + blockHeight - 1,
	}
	m.Update(checkMsg{})
	ev := lastEvent(t, m)
	if ev.Type != enterexit.EventInit || !ev.Position.Inside() {
		t.Fatalf("got %s %+v, want init inside", ev.Type, ev.Position)
	}
}

func TestConfigChangedLogLevelOnly(t *testing.T) {
	m := newTestModel(t, false)
	oldObserver := m.observer
	_, cmd := m.Update(ConfigChangedMsg{Config: &config.Config{FillerLines: 40, LogLevel: "debug"}})
	if cmd != nil || m.observer != oldObserver {
		t.Fatal("log level change should not rewatch")
	}
	if m.logLevel != "debug" {
		t.Fatalf("logLevel = %q", m.logLevel)
	}
}
