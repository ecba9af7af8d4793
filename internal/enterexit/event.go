// Package enterexit turns a stream of overlap notifications for a watched
// target into init, enter and exit events that say which side of the
// reference region the target crossed.
package enterexit

import (
	"fmt"

	"github.com/andyrewlee/enterexit/internal/geom"
)

// EventType identifies the kind of transition.
type EventType int

const (
	EventInit EventType = iota
	EventEnter
	EventExit
)

func (t EventType) String() string {
	switch t {
	case EventInit:
		return "init"
	case EventEnter:
		return "enter"
	case EventExit:
		return "exit"
	default:
		return "unknown"
	}
}

// ParseEventType is the inverse of EventType.String.
func ParseEventType(s string) (EventType, error) {
	switch s {
	case "init":
		return EventInit, nil
	case "enter":
		return EventEnter, nil
	case "exit":
		return EventExit, nil
	}
	return 0, fmt.Errorf("unknown event type %q", s)
}

// Notification is one delivery from a Source for a watched target.
type Notification struct {
	Target     string
	TargetRect geom.Rect
	// RootRect is the reference region after the source applied its margin.
	RootRect geom.Rect
	// IsOverlapping is computed by the source and is authoritative for
	// enter versus exit.
	IsOverlapping bool
}

// Event describes one transition of a watched target.
type Event struct {
	Type     EventType
	Side     geom.Side
	Position geom.Position
	Target   string
}

func (e Event) String() string {
	return fmt.Sprintf("%s %s %s (%d,%d)", e.Target, e.Type, e.Side, e.Position.X, e.Position.Y)
}

// Listener receives each event along with the notification it came from.
// It runs inside the source's delivery call; panics are not recovered.
type Listener func(Event, Notification)
