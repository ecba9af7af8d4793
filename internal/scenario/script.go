// Package scenario replays scripted target movements against a fixed
// reference region and checks the resulting enter/exit events.
package scenario

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/andyrewlee/enterexit/internal/enterexit"
	"github.com/andyrewlee/enterexit/internal/geom"
)

// Box is a rectangle as written in scenario files.
type Box struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Rect converts the box to edges.
func (b Box) Rect() geom.Rect {
	return geom.XYWH(b.X, b.Y, b.Width, b.Height)
}

// Expect is the event a step must produce.
type Expect struct {
	Type     string         `yaml:"type"`
	Side     string         `yaml:"side,omitempty"`
	Position *geom.Position `yaml:"position,omitempty"`
}

// Step moves the target to Rect. A step without Expect must not produce
// an event.
type Step struct {
	Rect   Box     `yaml:"rect"`
	Expect *Expect `yaml:"expect,omitempty"`
}

// Script is one scenario file.
type Script struct {
	Name     string `yaml:"name"`
	Touching bool   `yaml:"touching"`
	Root     Box    `yaml:"root"`
	Target   string `yaml:"target"`
	Steps    []Step `yaml:"steps"`
}

var validSides = map[geom.Side]bool{
	geom.SideNone: true, geom.SideTop: true, geom.SideRight: true,
	geom.SideBottom: true, geom.SideLeft: true, geom.SideTopLeft: true,
	geom.SideTopRight: true, geom.SideBottomRight: true, geom.SideBottomLeft: true,
}

// Validate checks the script is runnable.
func (s *Script) Validate() error {
	if s.Target == "" {
		return errors.New("target is required")
	}
	if s.Root.Width <= 0 || s.Root.Height <= 0 {
		return errors.New("root must have a positive size")
	}
	if len(s.Steps) == 0 {
		return errors.New("at least one step is required")
	}
	for i, step := range s.Steps {
		if step.Expect == nil {
			continue
		}
		if _, err := enterexit.ParseEventType(step.Expect.Type); err != nil {
			return fmt.Errorf("step %d: %w", i, err)
		}
		if !validSides[geom.Side(step.Expect.Side)] {
			return fmt.Errorf("step %d: unknown side %q", i, step.Expect.Side)
		}
	}
	return nil
}

// Parse decodes and validates a scenario.
func Parse(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scenario %q: %w", s.Name, err)
	}
	return &s, nil
}

// Load reads a scenario file.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	return Parse(data)
}
