// Package camera models the perspective camera looking at the item plane.
package camera

import (
	"math"

	"stretch-menu/internal/mathutil"
)

// Defaults matching the menu's scene setup.
const (
	DefaultFOV  = 50.0 // vertical, degrees
	DefaultZ    = 5.0
	DefaultNear = 0.1
	DefaultFar  = 1000.0
)

// Viewport is the visible extent of the z=0 plane in world units.
type Viewport struct {
	Width  float64
	Height float64
}

// Camera sits on the +Z axis looking toward the origin.
type Camera struct {
	FOV    float64 // vertical, degrees
	Z      float64
	Near   float64
	Far    float64
	Aspect float64
}

// New creates a camera with the default lens for a w×h viewport.
func New(w, h float64) Camera {
	c := Camera{FOV: DefaultFOV, Z: DefaultZ, Near: DefaultNear, Far: DefaultFar}
	c.SetSize(w, h)
	return c
}

// SetSize updates the aspect ratio. A zero height leaves it unchanged.
func (c *Camera) SetSize(w, h float64) {
	if h > 0 {
		c.Aspect = w / h
	}
}

func (c Camera) tanHalf() float64 {
	return math.Tan(mathutil.Deg2Rad(c.FOV) / 2)
}

// Viewport returns the visible size of the z=0 plane.
func (c Camera) Viewport() Viewport {
	h := 2 * c.tanHalf() * c.Z
	return Viewport{Width: h * c.Aspect, Height: h}
}

// Position is the camera origin in world space.
func (c Camera) Position() mathutil.Vec3 {
	return mathutil.Vec3{0, 0, c.Z}
}

// View transforms world space into camera space.
func (c Camera) View() mathutil.Mat4 {
	return mathutil.Translation(mathutil.Vec3{0, 0, -c.Z})
}

// Projection returns the perspective projection matrix.
func (c Camera) Projection() mathutil.Mat4 {
	return mathutil.Perspective(mathutil.Deg2Rad(c.FOV), c.Aspect, c.Near, c.Far)
}

// NDC maps a pointer position in a w×h area to normalized device
// coordinates (x right, y up, both in [-1, 1]).
func NDC(px, py, w, h float64) (x, y float64) {
	return px/w*2 - 1, -(py/h)*2 + 1
}

// ToPixel maps normalized device coordinates onto a w×h raster.
func ToPixel(x, y, w, h float64) (px, py float64) {
	return (x + 1) / 2 * w, (1 - y) / 2 * h
}

// Ray returns the world-space ray through the given NDC point.
func (c Camera) Ray(ndcX, ndcY float64) mathutil.Ray {
	t := c.tanHalf()
	dir := mathutil.Vec3{ndcX * t * c.Aspect, ndcY * t, -1}
	return mathutil.Ray{Origin: c.Position(), Dir: dir.Normalize()}
}
