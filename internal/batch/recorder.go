package batch

import (
	"time"

	"stretch-menu/internal/scene"
)

// Frame is one recorded scene plus the menu state it was drawn from.
type Frame struct {
	Index    int
	Time     time.Duration
	Scene    *scene.Scene
	Position float64
	Velocity float64
	Hovered  int
}

// Recorder collects frames from a renderer sink.
type Recorder struct {
	frames    []Frame
	annotated int
}

// Record is a raster.Sink.
func (r *Recorder) Record(index int, sc *scene.Scene) {
	r.frames = append(r.frames, Frame{Index: index, Scene: sc, Hovered: -1})
}

// Annotate stamps every frame recorded since the previous call.
func (r *Recorder) Annotate(at time.Duration, position, velocity float64, hovered int) {
	for i := r.annotated; i < len(r.frames); i++ {
		f := &r.frames[i]
		f.Time = at
		f.Position = position
		f.Velocity = velocity
		f.Hovered = hovered
	}
	r.annotated = len(r.frames)
}

// Frames returns the recorded frames.
func (r *Recorder) Frames() []Frame {
	return r.frames
}

// Len returns the number of recorded frames.
func (r *Recorder) Len() int {
	return len(r.frames)
}
