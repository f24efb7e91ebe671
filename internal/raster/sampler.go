package raster

import "image"

// SampleTexture performs bilinear filtering with edge clamping.
// Returns straight-alpha RGBA. Accesses tex.Pix directly for performance.
func SampleTexture(tex *image.NRGBA, u, v float64) (r, g, b, a uint8) {
	w := tex.Rect.Dx()
	h := tex.Rect.Dy()
	if w == 0 || h == 0 {
		return 0, 0, 0, 0
	}

	u = clamp01(u)
	v = clamp01(v)

	fx := u * float64(w-1)
	fy := v * float64(h-1)
	x0 := int(fx)
	y0 := int(fy)
	x1 := min(x0+1, w-1)
	y1 := min(y0+1, h-1)
	dx := fx - float64(x0)
	dy := fy - float64(y0)

	stride := tex.Stride
	pix := tex.Pix

	// Four texels
	i00 := y0*stride + x0*4
	i10 := y0*stride + x1*4
	i01 := y1*stride + x0*4
	i11 := y1*stride + x1*4

	w00 := (1 - dx) * (1 - dy)
	w10 := dx * (1 - dy)
	w01 := (1 - dx) * dy
	w11 := dx * dy

	// Weight colour by alpha so transparent texels don't bleed dark fringes.
	a00 := float64(pix[i00+3]) * w00
	a10 := float64(pix[i10+3]) * w10
	a01 := float64(pix[i01+3]) * w01
	a11 := float64(pix[i11+3]) * w11
	fa := a00 + a10 + a01 + a11
	if fa < 0.5 {
		return 0, 0, 0, 0
	}

	fr := (float64(pix[i00])*a00 + float64(pix[i10])*a10 + float64(pix[i01])*a01 + float64(pix[i11])*a11) / fa
	fg := (float64(pix[i00+1])*a00 + float64(pix[i10+1])*a10 + float64(pix[i01+1])*a01 + float64(pix[i11+1])*a11) / fa
	fb := (float64(pix[i00+2])*a00 + float64(pix[i10+2])*a10 + float64(pix[i01+2])*a01 + float64(pix[i11+2])*a11) / fa

	return clamp255(fr), clamp255(fg), clamp255(fb), clamp255(fa)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
