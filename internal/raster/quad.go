package raster

import (
	"image"
	"math"
)

// alphaCutoff discards texels the way the item fragment shader does
// (alpha < 0.1).
const alphaCutoff = 26

// RasterizeQuad fills the screen-aligned rectangle [x0,x1)×[y0,y1) with
// tex, sampling at pixel centres and blending over the buffer. Planes
// facing the camera project to such rectangles even when stretched, so
// no general triangle setup is needed. opacity scales texel alpha after
// the cutoff test.
//
// This is the HOT PATH — no allocation in the pixel loop.
func RasterizeQuad(fb *FrameBuffer, x0, y0, x1, y1 float64, tex *image.NRGBA, opacity float64) {
	if tex == nil || opacity <= 0 {
		return
	}
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	w := x1 - x0
	h := y1 - y0
	if w < 1e-8 || h < 1e-8 {
		return
	}
	invW := 1 / w
	invH := 1 / h

	// Pixels whose centres fall inside the rectangle
	minX := int(math.Ceil(x0 - 0.5))
	maxX := int(math.Ceil(x1-0.5)) - 1
	minY := int(math.Ceil(y0 - 0.5))
	maxY := int(math.Ceil(y1-0.5)) - 1

	if minX < 0 {
		minX = 0
	}
	if maxX > fb.Width-1 {
		maxX = fb.Width - 1
	}
	if minY < 0 {
		minY = 0
	}
	if maxY > fb.Height-1 {
		maxY = fb.Height - 1
	}

	for sy := minY; sy <= maxY; sy++ {
		v := (float64(sy) + 0.5 - y0) * invH
		for sx := minX; sx <= maxX; sx++ {
			u := (float64(sx) + 0.5 - x0) * invW
			cr, cg, cb, ca := SampleTexture(tex, u, v)
			if ca < alphaCutoff {
				continue
			}
			if opacity < 1 {
				ca = clamp255(float64(ca) * opacity)
			}
			fb.Blend(sx, sy, cr, cg, cb, ca)
		}
	}
}
