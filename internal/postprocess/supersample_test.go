package postprocess

import (
	"image"
	"testing"
)

func TestDownsampleSize(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 400, 200))
	for i := 0; i < len(src.Pix); i += 4 {
		src.Pix[i], src.Pix[i+3] = 255, 255
	}
	out := Downsample(src, 200, 100)
	if out.Rect.Dx() != 200 || out.Rect.Dy() != 100 {
		t.Fatalf("size = %v", out.Rect)
	}
	i := out.PixOffset(100, 50)
	if out.Pix[i] != 255 || out.Pix[i+3] != 255 {
		t.Errorf("interior pixel = %v", out.Pix[i:i+4])
	}
}

func TestDownsampleNoHalo(t *testing.T) {
	// White opaque left half, fully transparent black right half.
	src := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 4; x++ {
			i := src.PixOffset(x, y)
			src.Pix[i], src.Pix[i+1], src.Pix[i+2], src.Pix[i+3] = 255, 255, 255, 255
		}
	}
	out := Downsample(src, 4, 4)
	for x := 0; x < 4; x++ {
		i := out.PixOffset(x, 2)
		if out.Pix[i+3] > 8 && out.Pix[i] < 240 {
			t.Errorf("edge pixel %d darkened: %v", x, out.Pix[i:i+4])
		}
	}
}

func TestDownsampleNoopWhenSmaller(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 10, 10))
	if Downsample(src, 20, 20) != src {
		t.Error("expected the source image back")
	}
}
