package texture

import (
	"fmt"
	"image"
	"image/color"
	"strings"
	"sync"

	colorful "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Label texture layout.
const (
	LabelWidth    = 512
	LabelHeight   = 128
	LabelTextX    = 90
	LabelFontSize = 60
)

// Provider returns the texture for a label drawn in a colour.
type Provider interface {
	Texture(text, color string) *image.NRGBA
}

type labelKey struct {
	text  string
	color string
}

// Labels rasterizes and caches label textures keyed by (text, colour).
// Entries are never evicted; the label set is fixed and small.
type Labels struct {
	mu    sync.RWMutex
	items map[labelKey]*image.NRGBA
	face  font.Face
}

// NewLabels creates an empty label cache.
func NewLabels() *Labels {
	return &Labels{
		items: make(map[labelKey]*image.NRGBA),
		face:  basicfont.Face7x13,
	}
}

// Texture returns the cached texture for (text, colour), drawing it on
// first use. Unparseable colours fall back to white.
func (l *Labels) Texture(text, col string) *image.NRGBA {
	key := labelKey{text: text, color: col}

	l.mu.RLock()
	if img, ok := l.items[key]; ok {
		l.mu.RUnlock()
		return img
	}
	l.mu.RUnlock()

	c, err := ParseColor(col)
	if err != nil {
		c = color.NRGBA{255, 255, 255, 255}
	}
	img := drawLabel(l.face, strings.ToUpper(text), c)

	l.mu.Lock()
	defer l.mu.Unlock()
	if existing, ok := l.items[key]; ok {
		return existing
	}
	l.items[key] = img
	return img
}

// Len returns the number of cached textures.
func (l *Labels) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.items)
}

// drawLabel renders text with the bitmap face, then scales it up to the
// label font size, left-aligned at LabelTextX and vertically centred.
func drawLabel(face font.Face, text string, c color.NRGBA) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, LabelWidth, LabelHeight))
	if text == "" {
		return dst
	}

	m := face.Metrics()
	ascent := m.Ascent.Ceil()
	lineH := ascent + m.Descent.Ceil()
	textW := font.MeasureString(face, text).Ceil()
	if textW <= 0 || lineH <= 0 {
		return dst
	}

	glyphs := image.NewNRGBA(image.Rect(0, 0, textW, lineH))
	d := font.Drawer{
		Dst:  glyphs,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(0, ascent),
	}
	d.DrawString(text)

	scale := float64(LabelFontSize) / float64(lineH)
	w := int(float64(textW)*scale + 0.5)
	h := int(float64(lineH)*scale + 0.5)
	top := (LabelHeight - h) / 2
	r := image.Rect(LabelTextX, top, LabelTextX+w, top+h)

	draw.ApproxBiLinear.Scale(dst, r, glyphs, glyphs.Bounds(), draw.Over, nil)
	return dst
}

var namedColors = map[string]string{
	"white":   "#ffffff",
	"black":   "#000000",
	"red":     "#ff0000",
	"green":   "#008000",
	"blue":    "#0000ff",
	"yellow":  "#ffff00",
	"gray":    "#808080",
	"grey":    "#808080",
	"orange":  "#ffa500",
	"magenta": "#ff00ff",
	"cyan":    "#00ffff",
}

// ParseColor accepts a CSS colour name or a #rgb / #rrggbb hex string.
func ParseColor(s string) (color.NRGBA, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if hex, ok := namedColors[s]; ok {
		s = hex
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("texture: parse colour %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{r, g, b, 255}, nil
}
