// Package stretch computes the elastic vertical deformation of items
// under scroll momentum.
package stretch

import (
	"math"

	"stretch-menu/internal/mathutil"
)

const (
	// Rest is the undistorted factor.
	Rest = 1.0

	minVelocity = 0.01
	maxVelocity = 10.0
	velocityDiv = 40.0
	strength    = 1.5
	maxFactor   = 10.0

	// Smoothing is the per-frame interpolation weight toward the target.
	Smoothing = 0.15
)

// Side tells which half of the viewport an item is on relative to the
// scroll direction.
type Side int

const (
	// Trailing items lag behind the motion and stretch.
	Trailing Side = iota
	// Leading items are ahead of the motion and compress.
	Leading
)

func (s Side) String() string {
	if s == Leading {
		return "leading"
	}
	return "trailing"
}

// SideOf classifies an item at viewportY for a scroll direction of -1 or 1.
// An item exactly at the centre is trailing.
func SideOf(direction, viewportY float64) Side {
	if direction > 0 && viewportY > 0 {
		return Leading
	}
	if direction < 0 && viewportY < 0 {
		return Leading
	}
	return Trailing
}

// Target returns the unsmoothed stretch factor for an item at viewportY,
// always within [0, 10].
func Target(viewportY, velocity, viewportHeight float64) float64 {
	if math.Abs(velocity) <= minVelocity || viewportHeight <= 0 {
		return Rest
	}

	nv := math.Min(math.Abs(velocity), maxVelocity) / velocityDiv
	ratio := math.Min(math.Abs(viewportY)/viewportHeight, 1)

	var f float64
	switch SideOf(mathutil.Sign(velocity), viewportY) {
	case Leading:
		f = Rest - ratio*strength*nv
	default:
		f = Rest + (1-ratio)*strength*nv
	}
	return mathutil.Clamp(f, 0, maxFactor)
}

// Smoother carries one item's displayed factor from frame to frame.
type Smoother struct {
	Value float64
}

// NewSmoother starts at rest.
func NewSmoother() Smoother {
	return Smoother{Value: Rest}
}

// Step moves the displayed factor toward target and returns it.
func (s *Smoother) Step(target float64) float64 {
	s.Value = mathutil.Lerp(s.Value, target, Smoothing)
	return s.Value
}
