// Package motion integrates the scroll position of a looping list.
package motion

import (
	"errors"
	"math"
	"time"

	"stretch-menu/internal/mathutil"
)

const (
	frameUnit  = 16 * time.Millisecond
	maxElapsed = 32 * time.Millisecond

	decay    = 0.95
	approach = 0.06
)

// ErrEmptyLoop is returned when the loop height is not positive.
var ErrEmptyLoop = errors.New("motion: loop height must be positive")

// State is the scroll state shared by every item of the menu.
// Position stays within [0, LoopHeight) after every update; Target may
// leave that range between wraps but always moves by the same multiple
// of LoopHeight as Position.
type State struct {
	Position   float64
	Velocity   float64
	Target     float64
	LoopHeight float64
}

// New creates a state for a loop of the given height.
func New(loopHeight float64) (*State, error) {
	if !(loopHeight > 0) || math.IsInf(loopHeight, 0) {
		return nil, ErrEmptyLoop
	}
	return &State{LoopHeight: loopHeight}, nil
}

// FrameDelta converts wall-clock elapsed time into 16ms frame units,
// capping stalls (tab switches, debugger pauses) at two frames.
func FrameDelta(elapsed time.Duration) float64 {
	if elapsed < 0 {
		elapsed = 0
	}
	if elapsed > maxElapsed {
		elapsed = maxElapsed
	}
	return float64(elapsed) / float64(frameUnit)
}

// Advance runs one integration step.
func (s *State) Advance(elapsed time.Duration) {
	dt := FrameDelta(elapsed)

	s.Velocity *= decay
	s.Target += s.Velocity * dt
	s.Position += (s.Target - s.Position) * approach

	s.wrap()
}

// wrap moves Position into range and shifts Target by the same amount,
// keeping their difference intact across the seam.
func (s *State) wrap() {
	shift := math.Floor(s.Position/s.LoopHeight) * s.LoopHeight
	s.Position -= shift
	s.Target -= shift
	if s.Position >= s.LoopHeight {
		s.Position -= s.LoopHeight
		s.Target -= s.LoopHeight
	}
	if s.Position < 0 {
		s.Position = 0
	}
}

// SetPosition places the list directly, collapsing any pending eased motion.
func (s *State) SetPosition(p float64) {
	s.Position = mathutil.Wrap(p, s.LoopHeight)
	s.Target = s.Position
}

// Offset is the eased motion still pending between Position and Target.
func (s *State) Offset() float64 {
	return s.Target - s.Position
}

// Stop discards residual momentum. Calling it repeatedly is harmless.
func (s *State) Stop() {
	s.Velocity = 0
	s.Target = s.Position
}
