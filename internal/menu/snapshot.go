package menu

import (
	"stretch-menu/internal/camera"
	"stretch-menu/internal/hover"
	"stretch-menu/internal/scene"
)

// Snapshot is a copy of the menu's observable state.
type Snapshot struct {
	Position float64
	Velocity float64
	Target   float64

	// Hovered is hover.None when nothing is hovered.
	Hovered int

	Open    bool
	Running bool
	Reduced bool
	Mobile  bool
	Overlay scene.Overlay
	Items   []ItemState
}

// Snapshot captures the current state.
func (m *Menu) Snapshot() Snapshot {
	h, ok := m.hover.Hovered()
	if !ok {
		h = hover.None
	}
	s := Snapshot{
		Position: m.state.Position,
		Velocity: m.state.Velocity,
		Target:   m.state.Target,
		Hovered:  h,
		Open:     m.open,
		Running:  m.running,
		Reduced:  m.reduced,
		Mobile:   m.mobile,
		Overlay: scene.Overlay{
			Offset:  m.overlay.Get("y"),
			Alpha:   m.overlay.Get("alpha"),
			Visible: m.overlayVisible,
		},
		Items: make([]ItemState, len(m.items)),
	}
	for i, it := range m.items {
		s.Items[i] = ItemState{
			Index:     it.Index,
			Text:      it.Text,
			ViewportY: it.ViewportY,
			Stretch:   it.Stretch.Value,
			Hovered:   it.Hovered,
			Preview: PreviewState{
				Scale:   it.preview.Get("scale"),
				Opacity: it.preview.Get("opacity"),
			},
		}
	}
	return s
}

// Camera returns the menu's camera.
func (m *Menu) Camera() camera.Camera {
	return m.cam
}

// Size returns the current viewport size in pixels.
func (m *Menu) Size() (int, int) {
	return m.width, m.height
}

// Labels returns the item labels in index order.
func (m *Menu) Labels() []string {
	out := make([]string, len(m.items))
	for i, it := range m.items {
		out[i] = it.Text
	}
	return out
}

// Colors returns the idle and hover text colours.
func (m *Menu) Colors() (text, hovered string) {
	return m.cfg.TextColor, m.cfg.HoverColor
}
