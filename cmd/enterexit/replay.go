package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/mattn/go-runewidth"

	"github.com/andyrewlee/enterexit/internal/logging"
	"github.com/andyrewlee/enterexit/internal/scenario"
)

const (
	stepColumn = 6
	typeColumn = 7
	sideColumn = 14
)

// runReplay plays each scenario file and prints its events. It returns 1 if
// any scenario fails to load or to match its expectations.
func runReplay(paths []string, stdout, stderr io.Writer) int {
	if len(paths) == 0 {
		fmt.Fprintln(stderr, "enterexit replay: no scenario files given")
		return 2
	}
	logging.InitializeWriter(stderr, logging.LevelWarn)

	failed := false
	for _, path := range paths {
		if err := replayFile(path, stdout); err != nil {
			failed = true
			if errors.Is(err, scenario.ErrMismatch) {
				fmt.Fprintf(stdout, "FAIL %s: %v\n", path, err)
			} else {
				fmt.Fprintf(stderr, "enterexit replay: %s: %v\n", path, err)
			}
			continue
		}
		fmt.Fprintf(stdout, "PASS %s\n", path)
	}
	if failed {
		return 1
	}
	return 0
}

func replayFile(path string, stdout io.Writer) error {
	s, err := scenario.Load(path)
	if err != nil {
		return err
	}
	results, err := scenario.Run(s)
	if err != nil {
		return err
	}

	name := s.Name
	if name == "" {
		name = path
	}
	fmt.Fprintf(stdout, "# %s (target %s, touching=%v)\n", name, s.Target, s.Touching)
	for _, r := range results {
		ev := r.Event
		fmt.Fprintf(stdout, "  %s%s%s(%d,%d)\n",
			runewidth.FillRight(fmt.Sprintf("#%d", r.Step), stepColumn),
			runewidth.FillRight(ev.Type.String(), typeColumn),
			runewidth.FillRight(ev.Side.String(), sideColumn),
			ev.Position.X, ev.Position.Y)
	}
	return scenario.Verify(s, results)
}
