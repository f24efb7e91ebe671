// Package scene describes one frame handed to the renderer: textured item
// quads on the z=0 plane, hover preview images, and the overlay.
package scene

import (
	"image"
	"image/color"
	"math"

	"stretch-menu/internal/camera"
	"stretch-menu/internal/mathutil"
)

// Item plane size in world units.
const (
	PlaneWidth  = 5.0
	PlaneHeight = 1.2
)

// Quad is one item surface. Stretch scales view-space y at draw time
// only; hit-testing uses the undeformed geometry.
type Quad struct {
	Index   int
	Center  mathutil.Vec3
	Width   float64
	Height  float64
	Stretch float64
	Texture *image.NRGBA
}

// Preview is a hover image drawn behind the items. Scale and Opacity are
// driven by the hover tweens.
type Preview struct {
	Index   int
	Image   *image.NRGBA
	Scale   float64
	Opacity float64
}

// Overlay is the full-screen container the menu slides in and out with.
// Offset is a fraction of the screen height (0 shown, 1 pushed below).
type Overlay struct {
	Offset  float64
	Alpha   float64
	Visible bool
}

// Scene is everything needed to draw one frame.
type Scene struct {
	Camera     camera.Camera
	Width      int
	Height     int
	Background color.NRGBA
	Quads      []Quad
	Previews   []Preview
	Overlay    Overlay
}

// Clone returns a copy that shares textures but not slices.
func (s *Scene) Clone() *Scene {
	c := *s
	c.Quads = append([]Quad(nil), s.Quads...)
	c.Previews = append([]Preview(nil), s.Previews...)
	return &c
}

// Contains reports whether the world-space point p on the quad's plane
// falls inside its undeformed rectangle.
func (q *Quad) Contains(p mathutil.Vec3) bool {
	return math.Abs(p[0]-q.Center[0]) <= q.Width/2 &&
		math.Abs(p[1]-q.Center[1]) <= q.Height/2
}

// Intersect casts r against every quad and returns the index of the
// nearest one hit. Equal distances resolve to the quad listed first.
func (s *Scene) Intersect(r mathutil.Ray) (int, bool) {
	best := -1
	bestT := math.Inf(1)
	for i := range s.Quads {
		q := &s.Quads[i]
		t, ok := r.IntersectPlaneZ(q.Center[2])
		if !ok || t < s.Camera.Near || t > s.Camera.Far {
			continue
		}
		if !q.Contains(r.At(t)) {
			continue
		}
		if t < bestT {
			best, bestT = i, t
		}
	}
	if best < 0 {
		return 0, false
	}
	return s.Quads[best].Index, true
}
