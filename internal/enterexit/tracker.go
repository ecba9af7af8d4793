package enterexit

import (
	"sync"

	"github.com/andyrewlee/enterexit/internal/geom"
)

type transition int

const (
	transitionInit transition = iota
	transitionEnter
	transitionExit
)

// Tracker holds the last classified position of a single target.
// Notifications must arrive in order from one sequence; Cancel may be
// called from any goroutine.
type Tracker struct {
	mu        sync.Mutex
	target    string
	last      geom.Position
	seen      bool
	cancelled bool
}

// NewTracker returns a tracker with no position recorded yet.
func NewTracker(target string) *Tracker {
	return &Tracker{target: target}
}

// State returns the last recorded position and whether one exists.
func (t *Tracker) State() (geom.Position, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.last, t.seen
}

// Cancel stops the tracker. Notifications that arrive after it returns
// are dropped.
func (t *Tracker) Cancel() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.cancelled = true
	t.seen = false
	t.last = geom.Position{}
}

// Cancelled reports whether Cancel was called.
func (t *Tracker) Cancelled() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.cancelled
}

func (t *Tracker) next(n Notification) transition {
	switch {
	case !t.seen:
		return transitionInit
	case n.IsOverlapping:
		return transitionEnter
	default:
		return transitionExit
	}
}

// OnNotification derives the event for n and then records the new
// position. It returns false, leaving state untouched, once cancelled.
func (t *Tracker) OnNotification(n Notification) (Event, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.cancelled {
		return Event{}, false
	}

	position := geom.Locate(n.TargetRect, n.RootRect)
	ev := Event{Position: position, Target: t.target}

	// enter names the side it came from, exit the side it is heading to.
	switch t.next(n) {
	case transitionInit:
		ev.Type = EventInit
		ev.Side = geom.NameSide(position)
	case transitionEnter:
		ev.Type = EventEnter
		ev.Side = geom.NameSide(t.last)
	case transitionExit:
		ev.Type = EventExit
		ev.Side = geom.NameSide(position)
	}

	t.last = position
	t.seen = true
	return ev, true
}
