// Package menu is the full-screen stretch menu: a looping list of labels
// scrolled by wheel and drag, deformed by scroll speed, with hover
// previews and a slide-in overlay.
package menu

import (
	"errors"
	"fmt"
	"image/color"
	"log/slog"
	"math"
	"os"
	"time"

	"stretch-menu/internal/camera"
	"stretch-menu/internal/clock"
	"stretch-menu/internal/hover"
	"stretch-menu/internal/input"
	"stretch-menu/internal/mathutil"
	"stretch-menu/internal/motion"
	"stretch-menu/internal/scene"
	"stretch-menu/internal/texture"
	"stretch-menu/internal/tween"
)

var logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

// SetLogger replaces the package logger.
func SetLogger(l *slog.Logger) {
	if l != nil {
		logger = l
	}
}

var (
	ErrNoItems       = errors.New("menu: no labels")
	ErrBadItemHeight = errors.New("menu: item height must be positive")
	ErrZeroViewport  = errors.New("menu: viewport has zero size")
)

// Defaults.
const (
	DefaultItemHeight       = 70.0
	DefaultMobileBreakpoint = 768
	DefaultTextColor        = "white"
	DefaultHoverColor       = "#ff0000"
)

// Overlay and hover animation timings.
const (
	openDuration  = 1200 * time.Millisecond
	closeDuration = 800 * time.Millisecond
	closeDelay    = 300 * time.Millisecond
	enterDuration = 300 * time.Millisecond
	leaveDuration = 200 * time.Millisecond
)

// DefaultLabels returns the stock 30-entry label list.
func DefaultLabels() []string {
	base := []string{"Home", "About", "Gallery", "Events", "Contact"}
	out := make([]string, 0, len(base)*6)
	for i := 0; i < 6; i++ {
		out = append(out, base...)
	}
	return out
}

// Renderer draws scenes and answers hit tests against the last one drawn.
type Renderer interface {
	RenderFrame(sc *scene.Scene)
	Resize(w, h int)
	HitTest(ray mathutil.Ray) (int, bool)
}

// Config describes the menu. Zero values take the defaults above.
type Config struct {
	Labels           []string
	ItemHeight       float64
	Width            int
	Height           int
	FOV              float64
	CameraZ          float64
	TextColor        string
	HoverColor       string
	Background       color.NRGBA
	MobileBreakpoint int
}

// Deps are the collaborators. Renderer nil forces reduced mode; Textures
// nil gets a label cache owned by the menu; Clock nil reads the wall clock.
type Deps struct {
	Renderer Renderer
	Textures texture.Provider
	Previews texture.Resolver
	Clock    clock.Clock
}

// Menu owns the items, the scroll state and the overlay. It is driven
// from one goroutine: input methods run to completion, then Tick
// integrates their effect.
type Menu struct {
	cfg      Config
	items    []*Item
	state    *motion.State
	wheel    *input.Wheel
	drag     *input.Drag
	hover    *hover.Manager
	tweens   *tween.Engine
	overlay  *tween.Element
	cam      camera.Camera
	renderer Renderer
	textures texture.Provider
	clock    clock.Clock

	width  int
	height int

	// reduced is fixed at construction: no 3D scene exists.
	reduced bool
	mobile  bool

	open           bool
	overlayVisible bool
	running        bool
	lastTick       time.Time
	lastFrame      time.Time
}

// New builds the menu. Invalid sizes are rejected here so that nothing
// divides by zero later.
func New(cfg Config, deps Deps) (*Menu, error) {
	if len(cfg.Labels) == 0 {
		return nil, ErrNoItems
	}
	if cfg.ItemHeight == 0 {
		cfg.ItemHeight = DefaultItemHeight
	}
	if !(cfg.ItemHeight > 0) || math.IsInf(cfg.ItemHeight, 0) {
		return nil, fmt.Errorf("%w: %v", ErrBadItemHeight, cfg.ItemHeight)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrZeroViewport, cfg.Width, cfg.Height)
	}
	if cfg.MobileBreakpoint == 0 {
		cfg.MobileBreakpoint = DefaultMobileBreakpoint
	}
	if cfg.TextColor == "" {
		cfg.TextColor = DefaultTextColor
	}
	if cfg.HoverColor == "" {
		cfg.HoverColor = DefaultHoverColor
	}

	st, err := motion.New(cfg.ItemHeight * float64(len(cfg.Labels)))
	if err != nil {
		return nil, fmt.Errorf("menu: new: %w", err)
	}

	m := &Menu{
		cfg:      cfg,
		state:    st,
		wheel:    input.NewWheel(),
		drag:     input.NewDrag(),
		tweens:   tween.NewEngine(),
		overlay:  tween.NewElement("overlay", map[string]float64{"y": 1, "alpha": 0}),
		renderer: deps.Renderer,
		textures: deps.Textures,
		clock:    deps.Clock,
		width:    cfg.Width,
		height:   cfg.Height,
	}
	if m.textures == nil {
		m.textures = texture.NewLabels()
	}
	if m.clock == nil {
		m.clock = clock.Real{}
	}
	m.lastTick = m.clock.Now()

	m.mobile = cfg.Width < cfg.MobileBreakpoint
	m.reduced = m.mobile || m.renderer == nil

	m.cam = camera.New(float64(cfg.Width), float64(cfg.Height))
	if cfg.FOV > 0 {
		m.cam.FOV = cfg.FOV
	}
	if cfg.CameraZ > 0 {
		m.cam.Z = cfg.CameraZ
	}

	m.items = make([]*Item, len(cfg.Labels))
	for i, text := range cfg.Labels {
		it := newItem(i, text)
		if deps.Previews != nil {
			it.image = deps.Previews.Resolve(text)
		}
		m.items[i] = it
	}
	m.hover = hover.NewManager(itemFlags(m.items), previewTransitions{m})

	if m.reduced {
		logger.Info("menu reduced mode", "width", cfg.Width, "breakpoint", cfg.MobileBreakpoint, "renderer", m.renderer != nil)
	} else {
		m.renderer.Resize(cfg.Width, cfg.Height)
	}
	return m, nil
}

// Open reveals the overlay and slides it in. The animation loop starts
// when the slide begins.
func (m *Menu) Open() {
	m.open = true
	m.overlayVisible = true
	logger.Info("menu open", "reduced", m.reduced)

	m.animate(m.overlay, map[string]float64{"y": 0, "alpha": 1}, openDuration, "power3.out", tween.Options{
		OnStart: func() {
			if !m.mobile && !m.reduced {
				m.start()
			}
		},
	})
}

// Close stops the loop and slides the overlay out, hiding it when done.
func (m *Menu) Close() {
	m.open = false
	if m.drag.Active() {
		m.drag.End(m.state)
	}
	m.wheel.Cancel()
	m.Stop()
	m.hover.Reset()
	logger.Info("menu close")

	m.animate(m.overlay, map[string]float64{"y": 1, "alpha": 0}, closeDuration, "power3.in", tween.Options{
		Delay: closeDelay,
		OnComplete: func() {
			m.overlayVisible = false
		},
	})
}

func (m *Menu) start() {
	if m.running {
		return
	}
	m.running = true
	m.lastFrame = m.clock.Now()
	m.state.Target = m.state.Position
	logger.Debug("animation start", "position", m.state.Position)
}

// Stop halts the animation loop and discards residual momentum. Calling
// it again has no further effect.
func (m *Menu) Stop() {
	if m.running {
		logger.Debug("animation stop", "position", m.state.Position)
	}
	m.running = false
	m.state.Stop()
}

// Tick runs one display frame.
func (m *Menu) Tick() {
	now := m.clock.Now()
	dt := now.Sub(m.lastTick)
	m.lastTick = now

	m.tweens.Advance(dt)
	m.wheel.Poll(now, m.state)

	if m.reduced {
		return
	}
	if m.running {
		// A held list follows the pointer only.
		if !m.drag.Active() {
			m.state.Advance(now.Sub(m.lastFrame))
		}
		m.lastFrame = now

		vp := m.cam.Viewport()
		for _, it := range m.items {
			it.update(m.state, m.cfg.ItemHeight, float64(m.height), vp.Height)
		}
	}
	if m.overlayVisible {
		m.renderer.RenderFrame(m.buildScene())
	}
}

// Wheel feeds a wheel event. Ignored while closed.
func (m *Menu) Wheel(deltaY float64) {
	if !m.open || m.reduced {
		return
	}
	m.wheel.Apply(deltaY, m.clock.Now(), m.state)
}

// PointerDown starts a drag at pixel (x, y).
func (m *Menu) PointerDown(x, y float64) {
	if !m.open || m.reduced {
		return
	}
	m.drag.Begin(y, m.clock.Now(), m.state)
}

// PointerMove drags the list while a drag is active and updates hover.
// Hover stays cleared while the closing overlay slides out.
func (m *Menu) PointerMove(x, y float64) {
	if !m.open || m.reduced {
		return
	}
	if m.drag.Active() {
		m.drag.Move(y, m.clock.Now(), m.state)
	}
	m.hover.Update(m.hitTest(x, y))
}

// PointerUp releases a drag, flinging the list with the gesture speed.
func (m *Menu) PointerUp(x, y float64) {
	if !m.drag.Active() {
		return
	}
	m.drag.End(m.state)
}

// Click closes the menu when it lands on an item. In reduced mode the
// items are a plain list of ItemHeight-tall rows.
func (m *Menu) Click(x, y float64) {
	if !m.open {
		return
	}
	if m.reduced {
		if _, ok := m.ListRow(x, y); ok {
			m.Close()
		}
		return
	}
	if _, ok := m.hitTest(x, y); ok {
		m.Close()
	}
}

// ListRow returns the reduced-mode list row at pixel (x, y).
func (m *Menu) ListRow(x, y float64) (int, bool) {
	if x < 0 || x >= float64(m.width) || y < 0 {
		return 0, false
	}
	row := int(y / m.cfg.ItemHeight)
	if row >= len(m.items) {
		return 0, false
	}
	return row, true
}

// Resize adapts to a new viewport. Zero sizes are ignored.
func (m *Menu) Resize(w, h int) {
	if w <= 0 || h <= 0 {
		logger.Warn("ignoring zero-size resize", "width", w, "height", h)
		return
	}
	m.width, m.height = w, h
	m.mobile = w < m.cfg.MobileBreakpoint
	if m.reduced {
		return
	}
	m.cam.SetSize(float64(w), float64(h))
	m.renderer.Resize(w, h)
	logger.Debug("menu resize", "width", w, "height", h, "mobile", m.mobile)
}

func (m *Menu) hitTest(x, y float64) (int, bool) {
	nx, ny := camera.NDC(x, y, float64(m.width), float64(m.height))
	return m.renderer.HitTest(m.cam.Ray(nx, ny))
}

func (m *Menu) buildScene() *scene.Scene {
	sc := &scene.Scene{
		Camera:     m.cam,
		Width:      m.width,
		Height:     m.height,
		Background: m.cfg.Background,
		Quads:      make([]scene.Quad, 0, len(m.items)),
		Overlay: scene.Overlay{
			Offset:  m.overlay.Get("y"),
			Alpha:   m.overlay.Get("alpha"),
			Visible: m.overlayVisible,
		},
	}
	for _, it := range m.items {
		col := m.cfg.TextColor
		if it.Hovered {
			col = m.cfg.HoverColor
		}
		sc.Quads = append(sc.Quads, scene.Quad{
			Index:   it.Index,
			Center:  mathutil.Vec3{0, it.ViewportY, 0},
			Width:   scene.PlaneWidth,
			Height:  scene.PlaneHeight,
			Stretch: it.Stretch.Value,
			Texture: m.textures.Texture(it.Text, col),
		})

		scale, opacity := it.preview.Get("scale"), it.preview.Get("opacity")
		if it.image != nil && scale > 0 && opacity > 0 {
			sc.Previews = append(sc.Previews, scene.Preview{
				Index:   it.Index,
				Image:   it.image,
				Scale:   scale,
				Opacity: opacity,
			})
		}
	}
	return sc
}

func (m *Menu) animate(el *tween.Element, props map[string]float64, d time.Duration, ease string, opts tween.Options) {
	if err := m.tweens.To(el, props, d, ease, opts); err != nil {
		logger.Error("tween rejected", "element", el.Name, "err", err)
	}
}

// previewTransitions plays the hover preview animations.
type previewTransitions struct {
	m *Menu
}

func (p previewTransitions) Enter(index int) {
	if p.m.mobile {
		return
	}
	el := p.m.items[index].preview
	p.m.tweens.Set(el, map[string]float64{"scale": 0, "opacity": 0})
	p.m.animate(el, map[string]float64{"scale": 1, "opacity": 1}, enterDuration, "power2.out", tween.Options{})
}

func (p previewTransitions) Leave(index int) {
	if p.m.mobile {
		return
	}
	el := p.m.items[index].preview
	p.m.animate(el, map[string]float64{"scale": 0, "opacity": 0}, leaveDuration, "power2.in", tween.Options{})
}
