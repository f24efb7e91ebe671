package raster

import (
	"image"
	"image/color"
)

// FrameBuffer holds the rendering target as a flat slice for cache locality.
type FrameBuffer struct {
	Width  int
	Height int
	Color  []uint8 // NRGBA interleaved, len = W*H*4
}

// NewFrameBuffer allocates a buffer filled with bg.
func NewFrameBuffer(w, h int, bg color.NRGBA) *FrameBuffer {
	fb := &FrameBuffer{Width: w, Height: h, Color: make([]uint8, w*h*4)}
	if bg.A != 0 {
		for i := 0; i < len(fb.Color); i += 4 {
			fb.Color[i] = bg.R
			fb.Color[i+1] = bg.G
			fb.Color[i+2] = bg.B
			fb.Color[i+3] = bg.A
		}
	}
	return fb
}

// Blend composites a straight-alpha colour over the pixel at (x, y).
func (fb *FrameBuffer) Blend(x, y int, r, g, b, a uint8) {
	if a == 0 {
		return
	}
	i := (y*fb.Width + x) * 4
	if a == 255 {
		fb.Color[i], fb.Color[i+1], fb.Color[i+2], fb.Color[i+3] = r, g, b, 255
		return
	}
	sa := float64(a) / 255
	da := float64(fb.Color[i+3]) / 255
	oa := sa + da*(1-sa)
	if oa <= 0 {
		return
	}
	mix := func(s, d uint8) uint8 {
		return clamp255((float64(s)*sa + float64(d)*da*(1-sa)) / oa)
	}
	fb.Color[i] = mix(r, fb.Color[i])
	fb.Color[i+1] = mix(g, fb.Color[i+1])
	fb.Color[i+2] = mix(b, fb.Color[i+2])
	fb.Color[i+3] = clamp255(oa * 255)
}

// Image copies the buffer into an NRGBA image.
func (fb *FrameBuffer) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	copy(img.Pix, fb.Color)
	return img
}

func clamp255(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
