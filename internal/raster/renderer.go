// Package raster is a software renderer for menu scenes.
package raster

import (
	"image"
	"math"

	"stretch-menu/internal/camera"
	"stretch-menu/internal/mathutil"
	"stretch-menu/internal/scene"
)

// Rasterize renders sc at supersample× its pixel size.
func Rasterize(sc *scene.Scene, supersample int) *image.NRGBA {
	if supersample < 1 {
		supersample = 1
	}
	w := sc.Width * supersample
	h := sc.Height * supersample
	if w <= 0 || h <= 0 {
		return image.NewNRGBA(image.Rect(0, 0, 0, 0))
	}
	if !sc.Overlay.Visible || sc.Overlay.Alpha <= 0 {
		return image.NewNRGBA(image.Rect(0, 0, w, h))
	}

	fb := NewFrameBuffer(w, h, sc.Background)

	for i := range sc.Previews {
		drawPreview(fb, &sc.Previews[i], supersample)
	}

	proj := sc.Camera.Projection()
	view := sc.Camera.View()
	for i := range sc.Quads {
		drawQuad(fb, &sc.Quads[i], view, proj)
	}

	return applyOverlay(fb, sc.Overlay)
}

// drawQuad projects the quad with its view-space height scaled by the
// stretch factor, mirroring the item vertex shader.
func drawQuad(fb *FrameBuffer, q *scene.Quad, view, proj mathutil.Mat4) {
	if q.Texture == nil {
		return
	}
	hw, hh := q.Width/2, q.Height/2
	tl, ok1 := projectStretched(mathutil.Vec3{q.Center[0] - hw, q.Center[1] + hh, q.Center[2]}, q.Stretch, view, proj, fb)
	br, ok2 := projectStretched(mathutil.Vec3{q.Center[0] + hw, q.Center[1] - hh, q.Center[2]}, q.Stretch, view, proj, fb)
	if !ok1 || !ok2 {
		return
	}
	RasterizeQuad(fb, tl[0], tl[1], br[0], br[1], q.Texture, 1)
}

func projectStretched(world mathutil.Vec3, stretch float64, view, proj mathutil.Mat4, fb *FrameBuffer) ([2]float64, bool) {
	v := view.MulPoint(world)
	v[1] *= stretch
	ndc, ok := proj.Project(v)
	if !ok {
		return [2]float64{}, false
	}
	x, y := camera.ToPixel(ndc[0], ndc[1], float64(fb.Width), float64(fb.Height))
	return [2]float64{x, y}, true
}

// drawPreview centres a hover image on screen at its tweened scale.
func drawPreview(fb *FrameBuffer, p *scene.Preview, supersample int) {
	if p.Image == nil || p.Scale <= 0 || p.Opacity <= 0 {
		return
	}
	b := p.Image.Bounds()
	w := float64(b.Dx()*supersample) * p.Scale
	h := float64(b.Dy()*supersample) * p.Scale
	cx := float64(fb.Width) / 2
	cy := float64(fb.Height) / 2
	RasterizeQuad(fb, cx-w/2, cy-h/2, cx+w/2, cy+h/2, p.Image, math.Min(p.Opacity, 1))
}

// applyOverlay slides the rendered layer down by the overlay offset and
// fades it by the overlay alpha.
func applyOverlay(fb *FrameBuffer, o scene.Overlay) *image.NRGBA {
	alpha := math.Min(o.Alpha, 1)
	if o.Offset == 0 && alpha >= 1 {
		return fb.Image()
	}

	img := image.NewNRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	dy := int(math.Round(o.Offset * float64(fb.Height)))
	for y := 0; y < fb.Height; y++ {
		sy := y - dy
		if sy < 0 || sy >= fb.Height {
			continue
		}
		src := fb.Color[sy*fb.Width*4 : (sy+1)*fb.Width*4]
		dst := img.Pix[y*img.Stride : y*img.Stride+fb.Width*4]
		copy(dst, src)
		if alpha < 1 {
			for i := 3; i < len(dst); i += 4 {
				dst[i] = clamp255(float64(dst[i]) * alpha)
			}
		}
	}
	return img
}

// Sink receives every frame handed to a Renderer.
type Sink func(frame int, sc *scene.Scene)

// Renderer is the menu's drawing surface. It remembers the last frame
// for hit-testing and forwards each frame to an optional sink, which
// may rasterize immediately (live preview) or record it (batch export).
type Renderer struct {
	width  int
	height int
	frames int
	last   *scene.Scene
	sink   Sink
}

// NewRenderer creates a renderer for a w×h surface.
func NewRenderer(w, h int, sink Sink) *Renderer {
	return &Renderer{width: w, height: h, sink: sink}
}

// Resize changes the drawing surface size.
func (r *Renderer) Resize(w, h int) {
	r.width, r.height = w, h
}

// Size returns the drawing surface size.
func (r *Renderer) Size() (int, int) {
	return r.width, r.height
}

// Frames returns how many frames have been rendered.
func (r *Renderer) Frames() int {
	return r.frames
}

// Last returns the most recent frame, or nil.
func (r *Renderer) Last() *scene.Scene {
	return r.last
}

// RenderFrame takes ownership of a copy of sc sized to the surface.
func (r *Renderer) RenderFrame(sc *scene.Scene) {
	c := sc.Clone()
	c.Width, c.Height = r.width, r.height
	r.last = c
	if r.sink != nil {
		r.sink(r.frames, c)
	}
	r.frames++
}

// HitTest returns the item index of the nearest quad under the ray in
// the last rendered frame.
func (r *Renderer) HitTest(ray mathutil.Ray) (int, bool) {
	if r.last == nil {
		return 0, false
	}
	return r.last.Intersect(ray)
}
