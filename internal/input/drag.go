package input

import (
	"time"

	"stretch-menu/internal/mathutil"
	"stretch-menu/internal/motion"
)

const (
	// DragHistory is how many recent velocity samples a drag keeps.
	DragHistory = 5

	dragGain        = 1.5
	grabDamping     = 0.3
	sampleScale     = 40.0
	releaseScale    = 0.7
	maxReleaseSpeed = 50.0
	minSampleTime   = time.Millisecond
)

// Drag drives the scroll position directly from a pointer while the
// button is held, then hands the averaged gesture speed to velocity.
type Drag struct {
	active        bool
	startY        float64
	startPosition float64
	lastY         float64
	lastTime      time.Time
	samples       *Ring
}

// NewDrag creates an idle drag tracker.
func NewDrag() *Drag {
	return &Drag{samples: NewRing(DragHistory)}
}

// Active reports whether a drag is in progress.
func (d *Drag) Active() bool {
	return d.active
}

// Samples returns the number of velocity samples recorded so far.
func (d *Drag) Samples() int {
	return d.samples.Len()
}

// Begin grabs the list at pointer y, interrupting residual momentum.
func (d *Drag) Begin(y float64, now time.Time, st *motion.State) {
	d.active = true
	d.startY = y
	d.startPosition = st.Position
	d.lastY = y
	d.lastTime = now
	d.samples.Reset()

	st.Velocity *= grabDamping
	st.Target = st.Position
}

// Move follows the pointer to y. It is a no-op unless a drag is active.
func (d *Drag) Move(y float64, now time.Time, st *motion.State) {
	if !d.active {
		return
	}

	elapsed := now.Sub(d.lastTime)
	if elapsed < minSampleTime {
		elapsed = minSampleTime
	}
	ms := float64(elapsed) / float64(time.Millisecond)
	d.samples.Push((d.lastY - y) / ms * sampleScale)

	st.SetPosition(d.startPosition + (d.startY-y)*dragGain)

	d.lastY = y
	d.lastTime = now
}

// End releases the drag. The release velocity replaces the current one
// only when the drag recorded movement.
func (d *Drag) End(st *motion.State) {
	if !d.active {
		return
	}
	if d.samples.Len() > 0 {
		st.Velocity = mathutil.ClampAbs(d.samples.Mean()*releaseScale, maxReleaseSpeed)
	}
	d.active = false
}
