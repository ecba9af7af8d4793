package scenario

import (
	"errors"
	"fmt"

	"github.com/andyrewlee/enterexit/internal/enterexit"
	"github.com/andyrewlee/enterexit/internal/geom"
	"github.com/andyrewlee/enterexit/internal/logging"
)

// ErrMismatch is wrapped by Verify when an event differs from its step's
// expectation.
var ErrMismatch = errors.New("scenario mismatch")

// Result is an event tagged with the step that produced it.
type Result struct {
	Step  int
	Event enterexit.Event
}

// Run replays the script's steps and returns the events in order.
func Run(s *Script) ([]Result, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	var stage *Stage
	ob := enterexit.New(StageFactory(s.Root.Rect(), &stage), enterexit.WithTouching(s.Touching))

	var (
		results []Result
		current int
	)
	cancel := ob.Watch(s.Target, func(ev enterexit.Event, _ enterexit.Notification) {
		results = append(results, Result{Step: current, Event: ev})
	})
	defer cancel()

	for i, step := range s.Steps {
		current = i
		stage.Move(s.Target, step.Rect.Rect())
	}
	logging.Debug("scenario %q: %d steps, %d events", s.Name, len(s.Steps), len(results))
	return results, nil
}

// Verify checks results against each step's expectation.
func Verify(s *Script, results []Result) error {
	byStep := make(map[int]enterexit.Event, len(results))
	for _, r := range results {
		byStep[r.Step] = r.Event
	}
	for i, step := range s.Steps {
		ev, fired := byStep[i]
		switch {
		case step.Expect == nil && fired:
			return fmt.Errorf("%w: step %d: unexpected %s", ErrMismatch, i, ev)
		case step.Expect == nil:
			continue
		case !fired:
			return fmt.Errorf("%w: step %d: expected %s, got no event", ErrMismatch, i, step.Expect.Type)
		}
		if err := match(*step.Expect, ev); err != nil {
			return fmt.Errorf("%w: step %d: %v", ErrMismatch, i, err)
		}
	}
	return nil
}

func match(want Expect, ev enterexit.Event) error {
	if ev.Type.String() != want.Type {
		return fmt.Errorf("type %s, want %s", ev.Type, want.Type)
	}
	if ev.Side != geom.Side(want.Side) {
		return fmt.Errorf("side %s, want %s", ev.Side, geom.Side(want.Side))
	}
	if want.Position != nil && ev.Position != *want.Position {
		return fmt.Errorf("position (%d,%d), want (%d,%d)",
			ev.Position.X, ev.Position.Y, want.Position.X, want.Position.Y)
	}
	return nil
}
