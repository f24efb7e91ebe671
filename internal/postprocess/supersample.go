// Package postprocess finishes rasterized frames.
package postprocess

import (
	"image"

	"golang.org/x/image/draw"
)

// Downsample scales a supersampled frame down to w×h. Filtering happens on
// premultiplied colour so transparent texels around label glyphs do not
// bleed black into the edges.
func Downsample(img *image.NRGBA, w, h int) *image.NRGBA {
	b := img.Bounds()
	if w <= 0 || h <= 0 || (b.Dx() <= w && b.Dy() <= h) {
		return img
	}

	small := image.NewRGBA(image.Rect(0, 0, w, h))
	src := premultiply(img)
	draw.CatmullRom.Scale(small, small.Bounds(), src, src.Bounds(), draw.Src, nil)
	return straighten(small)
}

func premultiply(img *image.NRGBA) *image.RGBA {
	b := img.Bounds()
	out := image.NewRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		src := img.Pix[img.PixOffset(b.Min.X, y):]
		dst := out.Pix[out.PixOffset(b.Min.X, y):]
		for i := 0; i < b.Dx()*4; i += 4 {
			a := float64(src[i+3]) / 255
			dst[i] = uint8(float64(src[i])*a + 0.5)
			dst[i+1] = uint8(float64(src[i+1])*a + 0.5)
			dst[i+2] = uint8(float64(src[i+2])*a + 0.5)
			dst[i+3] = src[i+3]
		}
	}
	return out
}

// straighten undoes premultiplication. Near-transparent texels stay black.
func straighten(img *image.RGBA) *image.NRGBA {
	b := img.Bounds()
	out := image.NewNRGBA(b)
	for i := 0; i+3 < len(img.Pix); i += 4 {
		a := img.Pix[i+3]
		out.Pix[i+3] = a
		if a <= 1 {
			continue
		}
		k := 255 / float64(a)
		out.Pix[i] = clamp8(float64(img.Pix[i]) * k)
		out.Pix[i+1] = clamp8(float64(img.Pix[i+1]) * k)
		out.Pix[i+2] = clamp8(float64(img.Pix[i+2]) * k)
	}
	return out
}

func clamp8(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 255:
		return 255
	}
	return uint8(v + 0.5)
}
