package scenario

import (
	"github.com/andyrewlee/enterexit/internal/enterexit"
	"github.com/andyrewlee/enterexit/internal/geom"
)

type stageEntry struct {
	deliver     func(enterexit.Notification)
	notified    bool
	overlapping bool
}

// Stage is an in-memory source with a single fixed reference region.
// Targets are positioned explicitly with Move.
type Stage struct {
	root    geom.Rect
	entries map[string]*stageEntry
}

var _ enterexit.Source = (*Stage)(nil)

// NewStage returns a stage whose region is root adjusted by cfg.Margin.
// cfg.Root is ignored; a stage has exactly one region.
func NewStage(root geom.Rect, cfg enterexit.SourceConfig) *Stage {
	return &Stage{
		root:    root.Expand(cfg.Margin),
		entries: make(map[string]*stageEntry),
	}
}

// StageFactory adapts NewStage for enterexit.New and stores the stage in
// *out.
func StageFactory(root geom.Rect, out **Stage) enterexit.SourceFactory {
	return func(cfg enterexit.SourceConfig) enterexit.Source {
		st := NewStage(root, cfg)
		if out != nil {
			*out = st
		}
		return st
	}
}

// Root returns the margin-adjusted region.
func (st *Stage) Root() geom.Rect { return st.root }

func (st *Stage) Observe(target string, deliver func(enterexit.Notification)) {
	st.entries[target] = &stageEntry{deliver: deliver}
}

func (st *Stage) Unobserve(target string) {
	delete(st.entries, target)
}

// Move places target at rect and delivers a notification when this is the
// first placement or the overlap flipped. It reports whether it delivered.
func (st *Stage) Move(target string, rect geom.Rect) bool {
	e, ok := st.entries[target]
	if !ok {
		return false
	}
	overlapping := rect.Overlaps(st.root)
	if e.notified && overlapping == e.overlapping {
		return false
	}
	e.notified = true
	e.overlapping = overlapping
	e.deliver(enterexit.Notification{
		Target:        target,
		TargetRect:    rect,
		RootRect:      st.root,
		IsOverlapping: overlapping,
	})
	return true
}
