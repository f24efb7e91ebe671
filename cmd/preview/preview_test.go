package main

import (
	"fmt"
	"image"
	"testing"

	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"

	"stretch-menu/internal/config"
)

func simScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatal(err)
	}
	s.SetSize(w, h)
	t.Cleanup(s.Fini)
	return s
}

var black = colorful.Color{}

func TestBlend(t *testing.T) {
	if got := blend(black, 255, 0, 0, 255); got != tcell.NewRGBColor(255, 0, 0) {
		t.Errorf("opaque red = %v", got)
	}
	if got := blend(black, 255, 255, 255, 0); got != tcell.NewRGBColor(0, 0, 0) {
		t.Errorf("transparent = %v, want background", got)
	}
	white := colorful.Color{R: 1, G: 1, B: 1}
	if got := blend(white, 0, 0, 0, 0); got != tcell.NewRGBColor(255, 255, 255) {
		t.Errorf("transparent over white = %v", got)
	}
}

func TestDrawFrameHalfBlocks(t *testing.T) {
	s := simScreen(t, 2, 1)
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	// Top row opaque red, bottom row transparent.
	for x := 0; x < 2; x++ {
		i := img.PixOffset(x, 0)
		img.Pix[i], img.Pix[i+3] = 255, 255
	}
	drawFrame(s, img, black)

	r, _, style, _ := s.GetContent(0, 0)
	if r != halfBlock {
		t.Fatalf("rune = %q", r)
	}
	fg, bg, _ := style.Decompose()
	if fg != tcell.NewRGBColor(255, 0, 0) || bg != tcell.NewRGBColor(0, 0, 0) {
		t.Errorf("fg = %v bg = %v", fg, bg)
	}
}

func TestDrawTextCentred(t *testing.T) {
	s := simScreen(t, 20, 3)
	w := drawText(s, 1, "HOME", tcell.StyleDefault)
	if w != 4 {
		t.Errorf("width = %d", w)
	}
	for i, want := range "HOME" {
		if r, _, _, _ := s.GetContent(8+i, 1); r != want {
			t.Errorf("cell %d = %q, want %q", 8+i, r, want)
		}
	}
}

type calls []string

func (c *calls) Wheel(d float64)          { *c = append(*c, fmt.Sprintf("wheel %g", d)) }
func (c *calls) PointerDown(x, y float64) { *c = append(*c, fmt.Sprintf("down %g,%g", x, y)) }
func (c *calls) PointerMove(x, y float64) { *c = append(*c, fmt.Sprintf("move %g,%g", x, y)) }
func (c *calls) PointerUp(x, y float64)   { *c = append(*c, fmt.Sprintf("up %g,%g", x, y)) }
func (c *calls) Click(x, y float64)       { *c = append(*c, fmt.Sprintf("click %g,%g", x, y)) }

func mouse(x, y int, b tcell.ButtonMask) *tcell.EventMouse {
	return tcell.NewEventMouse(x, y, b, tcell.ModNone)
}

func TestMouseRouter(t *testing.T) {
	var got calls
	r := &mouseRouter{target: &got, scale: 10, wheelStep: 100}

	r.handle(mouse(2, 1, tcell.ButtonNone))
	r.handle(mouse(2, 1, tcell.ButtonPrimary))
	r.handle(mouse(2, 1, tcell.ButtonNone))
	r.handle(mouse(3, 0, tcell.ButtonPrimary))
	r.handle(mouse(3, 2, tcell.ButtonPrimary))
	r.handle(mouse(3, 2, tcell.ButtonNone))
	r.handle(mouse(0, 0, tcell.WheelUp))
	r.handle(mouse(0, 0, tcell.WheelDown))

	want := []string{
		"move 25,30",
		"down 25,30",
		"up 25,30",
		"click 25,30",
		"down 35,10",
		"move 35,50",
		"up 35,50",
		"wheel -100",
		"wheel 100",
	}
	if len(got) != len(want) {
		t.Fatalf("calls = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("call %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func testConfig() config.Config {
	var cfg config.Config
	cfg.Resolve(config.Flags{})
	return cfg
}

func TestPreviewRendersMenu(t *testing.T) {
	s := simScreen(t, 80, 25)
	p, err := newPreview(s, testConfig(), 16, 100, nil)
	if err != nil {
		t.Fatal(err)
	}
	if w, h := p.menu.Size(); w != 1280 || h != 800 {
		t.Fatalf("menu size = %dx%d", w, h)
	}

	p.tick()
	if r, _, _, _ := s.GetContent(40, 5); r != ' ' {
		t.Errorf("closed menu drew %q", r)
	}

	p.menu.Open()
	p.tick()
	if !p.drawn {
		t.Fatal("open menu drew no frame")
	}
	if r, _, _, _ := s.GetContent(40, 12); r != halfBlock {
		t.Errorf("centre cell = %q", r)
	}
}

func TestPreviewReducedList(t *testing.T) {
	s := simScreen(t, 40, 25)
	p, err := newPreview(s, testConfig(), 8, 100, nil)
	if err != nil {
		t.Fatal(err)
	}
	p.menu.Open()
	p.tick()
	if p.drawn {
		t.Fatal("reduced menu rendered a 3D frame")
	}
	// Label 0 is centred on menu pixel 35, which is cell row 2.
	if r, _, _, _ := s.GetContent(18, 2); r != 'H' {
		t.Errorf("row 2 starts with %q, want H", r)
	}
}

func TestPreviewKeys(t *testing.T) {
	s := simScreen(t, 80, 25)
	p, err := newPreview(s, testConfig(), 16, 100, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !p.handleInput(tcell.NewEventKey(tcell.KeyRune, 'o', tcell.ModNone)) || !p.menu.Snapshot().Open {
		t.Error("o did not open the menu")
	}
	if !p.handleInput(tcell.NewEventKey(tcell.KeyRune, 'c', tcell.ModNone)) || p.menu.Snapshot().Open {
		t.Error("c did not close the menu")
	}
	if p.handleInput(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)) {
		t.Error("escape did not quit")
	}
}
