// Package zonesource feeds enterexit from bubblezone markers: every marked
// zone is a potential target and the reference region is either another
// zone or a viewport rectangle supplied by the caller.
package zonesource

import (
	"sync"

	zone "github.com/lrstanley/bubblezone"

	"github.com/andyrewlee/enterexit/internal/enterexit"
	"github.com/andyrewlee/enterexit/internal/geom"
)

// Locator resolves a zone id to where it was last rendered.
// *zone.Manager satisfies it.
type Locator interface {
	Get(id string) *zone.ZoneInfo
}

type entry struct {
	id          string
	deliver     func(enterexit.Notification)
	notified    bool
	overlapping bool
}

// Source notifies each watched zone on first sight and whenever its overlap
// with the reference region flips.
type Source struct {
	mu          sync.Mutex
	locator     Locator
	cfg         enterexit.SourceConfig
	viewport    geom.Rect
	hasViewport bool
	entries     []*entry
}

var _ enterexit.Source = (*Source)(nil)

// New returns a source reading zone positions from locator.
func New(locator Locator, cfg enterexit.SourceConfig) *Source {
	return &Source{locator: locator, cfg: cfg}
}

// Factory adapts New for enterexit.New. The created source is also stored
// in *out when out is non-nil, so callers can drive Check.
func Factory(locator Locator, out **Source) enterexit.SourceFactory {
	return func(cfg enterexit.SourceConfig) enterexit.Source {
		s := New(locator, cfg)
		if out != nil {
			*out = s
		}
		return s
	}
}

// SetViewport sets the default reference region, in the same coordinate
// space as the zones. It is ignored when the config names a root zone.
func (s *Source) SetViewport(r geom.Rect) {
	s.mu.Lock()
	s.viewport = r
	s.hasViewport = true
	s.mu.Unlock()
}

// Observe registers target. Registering it again resets its delivery state.
func (s *Source) Observe(target string, deliver func(enterexit.Notification)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range s.entries {
		if e.id == target {
			e.deliver = deliver
			e.notified = false
			e.overlapping = false
			return
		}
	}
	s.entries = append(s.entries, &entry{id: target, deliver: deliver})
}

// Unobserve drops target. Unknown targets are ignored.
func (s *Source) Unobserve(target string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, e := range s.entries {
		if e.id == target {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return
		}
	}
}

// Watched lists registered targets in registration order.
func (s *Source) Watched() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]string, len(s.entries))
	for i, e := range s.entries {
		ids[i] = e.id
	}
	return ids
}

func (s *Source) rootLocked() (geom.Rect, bool) {
	if s.cfg.Root != "" {
		z := s.lookup(s.cfg.Root)
		if z == nil {
			return geom.Rect{}, false
		}
		return geom.CellSpan(z.StartX, z.StartY, z.EndX, z.EndY), true
	}
	return s.viewport, s.hasViewport
}

func (s *Source) lookup(id string) *zone.ZoneInfo {
	if s.locator == nil {
		return nil
	}
	return s.locator.Get(id)
}

type pending struct {
	deliver func(enterexit.Notification)
	note    enterexit.Notification
}

// Check compares every watched zone against the reference region and
// delivers the due notifications on the calling goroutine, in registration
// order. Zones that have not been rendered are skipped. It returns the
// number of notifications delivered.
func (s *Source) Check() int {
	s.mu.Lock()
	root, ok := s.rootLocked()
	if !ok {
		s.mu.Unlock()
		return 0
	}
	root = root.Expand(s.cfg.Margin)

	var due []pending
	for _, e := range s.entries {
		z := s.lookup(e.id)
		if z == nil {
			continue
		}
		rect := geom.CellSpan(z.StartX, z.StartY, z.EndX, z.EndY)
		overlapping := rect.Overlaps(root)
		if e.notified && overlapping == e.overlapping {
			continue
		}
		e.notified = true
		e.overlapping = overlapping
		due = append(due, pending{
			deliver: e.deliver,
			note: enterexit.Notification{
				Target:        e.id,
				TargetRect:    rect,
				RootRect:      root,
				IsOverlapping: overlapping,
			},
		})
	}
	s.mu.Unlock()

	for _, p := range due {
		if p.deliver != nil {
			p.deliver(p.note)
		}
	}
	return len(due)
}
