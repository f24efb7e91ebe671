package menu

import (
	"fmt"
	"image"

	"stretch-menu/internal/layout"
	"stretch-menu/internal/motion"
	"stretch-menu/internal/stretch"
	"stretch-menu/internal/tween"
)

// Item is one label of the list. Identity is the index; labels may repeat.
type Item struct {
	Index   int
	Text    string
	Hovered bool

	// Stretch is the displayed deformation, eased toward the policy
	// target every frame.
	Stretch stretch.Smoother

	// ViewportY is the item's vertical offset on the z=0 plane.
	ViewportY float64

	preview *tween.Element
	image   *image.NRGBA
}

func newItem(index int, text string) *Item {
	return &Item{
		Index:   index,
		Text:    text,
		Stretch: stretch.NewSmoother(),
		preview: tween.NewElement(fmt.Sprintf("preview/%04d", index), map[string]float64{
			"scale":   0,
			"opacity": 0,
		}),
	}
}

// update lays the item out for the current scroll state and steps its
// stretch toward the policy target.
func (it *Item) update(st *motion.State, itemHeight, screenHeight, viewportHeight float64) {
	y := layout.Offset(it.Index, itemHeight, st.Position, st.LoopHeight)
	it.ViewportY = layout.ToViewport(y, screenHeight, viewportHeight)
	it.Stretch.Step(stretch.Target(it.ViewportY, st.Velocity, viewportHeight))
}

// itemFlags lets the hover manager flip item flags.
type itemFlags []*Item

func (f itemFlags) SetHovered(index int, hovered bool) {
	if index >= 0 && index < len(f) {
		f[index].Hovered = hovered
	}
}

// ItemState is a read-only view of an item.
type ItemState struct {
	Index     int
	Text      string
	ViewportY float64
	Stretch   float64
	Hovered   bool
	Preview   PreviewState
}

// PreviewState is the tweened state of an item's hover preview.
type PreviewState struct {
	Scale   float64
	Opacity float64
}
