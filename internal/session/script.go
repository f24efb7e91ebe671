// Package session replays a scripted input timeline against a menu.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Event kinds.
const (
	Open   = "open"
	Close  = "close"
	Wheel  = "wheel"
	Down   = "down"
	Move   = "move"
	Up     = "up"
	Click  = "click"
	Hover  = "hover"
	Resize = "resize"
)

const DefaultFPS = 60

var (
	ErrUnknownEvent = errors.New("unknown event type")
	ErrBadTime      = errors.New("event time out of order")
	ErrBadSize      = errors.New("resize needs a positive width and height")
	ErrBadFormat    = errors.New("unsupported script format")
)

// Event is one timed input. T is seconds from the start of the session.
type Event struct {
	T      float64 `json:"t" yaml:"t"`
	Type   string  `json:"type" yaml:"type"`
	DeltaY float64 `json:"delta_y,omitempty" yaml:"delta_y,omitempty"`
	X      float64 `json:"x,omitempty" yaml:"x,omitempty"`
	Y      float64 `json:"y,omitempty" yaml:"y,omitempty"`
	Width  int     `json:"width,omitempty" yaml:"width,omitempty"`
	Height int     `json:"height,omitempty" yaml:"height,omitempty"`
}

// At returns the event time as a duration.
func (e Event) At() time.Duration {
	return seconds(e.T)
}

// Script is a timeline of events. Duration is the run length in seconds;
// zero runs one second past the last event.
type Script struct {
	FPS      int     `json:"fps" yaml:"fps"`
	Duration float64 `json:"duration" yaml:"duration"`
	Events   []Event `json:"events" yaml:"events"`
}

// Load reads a script from a .json, .yaml or .yml file.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("session: read %s: %w", path, err)
	}

	var s Script
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = json.Unmarshal(data, &s)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &s)
	default:
		return nil, fmt.Errorf("session: %s: %w", path, ErrBadFormat)
	}
	if err != nil {
		return nil, fmt.Errorf("session: parse %s: %w", path, err)
	}

	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("session: %s: %w", path, err)
	}
	return &s, nil
}

// Validate checks every event and fills defaults.
func (s *Script) Validate() error {
	if s.FPS <= 0 {
		s.FPS = DefaultFPS
	}
	last := 0.0
	for i, e := range s.Events {
		switch e.Type {
		case Open, Close, Wheel, Down, Move, Up, Click, Hover:
		case Resize:
			if e.Width <= 0 || e.Height <= 0 {
				return fmt.Errorf("event %d: %w", i, ErrBadSize)
			}
		default:
			return fmt.Errorf("event %d: %w %q", i, ErrUnknownEvent, e.Type)
		}
		if e.T < last {
			return fmt.Errorf("event %d at %gs: %w", i, e.T, ErrBadTime)
		}
		last = e.T
	}
	if s.Duration <= 0 {
		s.Duration = last + 1
	}
	return nil
}

// Step is the time between frames.
func (s *Script) Step() time.Duration {
	fps := s.FPS
	if fps <= 0 {
		fps = DefaultFPS
	}
	return time.Second / time.Duration(fps)
}

// Frames returns how many frames the script runs for.
func (s *Script) Frames() int {
	step := s.Step()
	total := seconds(s.Duration)
	n := int(total / step)
	if total%step != 0 {
		n++
	}
	return n
}

func seconds(v float64) time.Duration {
	return time.Duration(v * float64(time.Second))
}
