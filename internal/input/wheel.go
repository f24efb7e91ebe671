// Package input turns wheel and drag events into scroll motion.
package input

import (
	"math"
	"time"

	"stretch-menu/internal/mathutil"
	"stretch-menu/internal/motion"
)

// Wheel tuning. Deltas are in device-reported units.
const (
	FastThreshold = 50.0

	fastMultiplier = 0.156
	slowMultiplier = 0.084
	fastPower      = 0.88
	slowPower      = 0.95
	fastMaxSpeed   = 35.0
	slowMaxSpeed   = 18.0

	eventUnit     = 16 * time.Millisecond
	maxTimeWeight = 2.0

	// IdleDelay is how long the wheel must stay quiet before the taper fires.
	IdleDelay = 100 * time.Millisecond
	idleTaper = 0.96
)

// Wheel aggregates wheel events into velocity.
//
// The idle taper is a single deadline: each event replaces it, and Poll
// fires it at most once after the wheel goes quiet. Poll runs on the
// frame loop so the taper never races event handling.
type Wheel struct {
	accumulated float64
	lastEvent   time.Time
	deadline    time.Time
	pending     bool
}

// NewWheel creates an idle wheel aggregator.
func NewWheel() *Wheel {
	return &Wheel{}
}

// IsFast reports whether a delta counts as a fast gesture.
func IsFast(deltaY float64) bool {
	return math.Abs(deltaY) > FastThreshold
}

// TimeWeight scales a delta by how long ago the previous event arrived.
func TimeWeight(sinceLast time.Duration) float64 {
	w := float64(sinceLast) / float64(eventUnit)
	if w > maxTimeWeight {
		w = maxTimeWeight
	}
	if w < 0 {
		w = 0
	}
	return w
}

// Ease applies the power-law easing curve for the gesture class and
// returns the velocity contribution of an accumulated delta.
func Ease(accumulated float64, fast bool) float64 {
	mult, pow := slowMultiplier, slowPower
	if fast {
		mult, pow = fastMultiplier, fastPower
	}
	v := accumulated * mult
	return mathutil.Sign(v) * math.Pow(math.Abs(v), pow)
}

// Apply feeds one wheel event into st.
func (w *Wheel) Apply(deltaY float64, now time.Time, st *motion.State) {
	weight := maxTimeWeight
	if !w.lastEvent.IsZero() {
		weight = TimeWeight(now.Sub(w.lastEvent))
	}
	w.lastEvent = now
	w.accumulated += deltaY * weight

	fast := IsFast(deltaY)
	st.Velocity += Ease(w.accumulated, fast)

	limit := slowMaxSpeed
	if fast {
		limit = fastMaxSpeed
	}
	st.Velocity = mathutil.ClampAbs(st.Velocity, limit)

	w.accumulated = 0

	w.deadline = now.Add(IdleDelay)
	w.pending = true
}

// Poll fires the idle taper if its deadline has passed. It reports
// whether the taper fired.
func (w *Wheel) Poll(now time.Time, st *motion.State) bool {
	if !w.pending || now.Before(w.deadline) {
		return false
	}
	w.pending = false
	st.Velocity *= idleTaper
	return true
}

// Pending reports whether an idle taper is scheduled.
func (w *Wheel) Pending() bool {
	return w.pending
}

// Cancel drops a scheduled idle taper.
func (w *Wheel) Cancel() {
	w.pending = false
}
