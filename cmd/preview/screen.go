package main

import (
	"image"

	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

const halfBlock = '▀'

// blend composites a straight-alpha pixel over bg.
func blend(bg colorful.Color, r, g, b, a uint8) tcell.Color {
	c := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
	out := bg.BlendRgb(c, float64(a)/255).Clamped()
	cr, cg, cb := out.RGB255()
	return tcell.NewRGBColor(int32(cr), int32(cg), int32(cb))
}

// drawFrame paints img onto the screen two pixel rows per cell: the top
// pixel is the foreground of an upper half block, the bottom pixel its
// background.
func drawFrame(s tcell.Screen, img *image.NRGBA, bg colorful.Color) {
	cols, rows := s.Size()
	b := img.Bounds()
	for cy := 0; cy < rows; cy++ {
		for cx := 0; cx < cols; cx++ {
			top := pixel(img, b.Min.X+cx, b.Min.Y+cy*2, bg)
			bottom := pixel(img, b.Min.X+cx, b.Min.Y+cy*2+1, bg)
			s.SetContent(cx, cy, halfBlock, nil, tcell.StyleDefault.Foreground(top).Background(bottom))
		}
	}
}

func pixel(img *image.NRGBA, x, y int, bg colorful.Color) tcell.Color {
	if !(image.Point{x, y}.In(img.Rect)) {
		return blend(bg, 0, 0, 0, 0)
	}
	i := img.PixOffset(x, y)
	return blend(bg, img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3])
}

// drawText writes text centred on row y and returns its display width.
func drawText(s tcell.Screen, y int, text string, style tcell.Style) int {
	cols, _ := s.Size()
	w := uniseg.StringWidth(text)
	x := (cols - w) / 2
	if x < 0 {
		x = 0
	}
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		runes := gr.Runes()
		if x >= cols {
			break
		}
		s.SetContent(x, y, runes[0], runes[1:], style)
		x += max(gr.Width(), 1)
	}
	return w
}

// fill fills the screen with the background colour.
func fill(s tcell.Screen, bg colorful.Color) {
	r, g, b := bg.RGB255()
	style := tcell.StyleDefault.Background(tcell.NewRGBColor(int32(r), int32(g), int32(b)))
	cols, rows := s.Size()
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			s.SetContent(x, y, ' ', nil, style)
		}
	}
}
