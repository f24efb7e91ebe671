package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"

	"stretch-menu/internal/clock"
	"stretch-menu/internal/config"
	"stretch-menu/internal/menu"
	"stretch-menu/internal/postprocess"
	"stretch-menu/internal/raster"
	"stretch-menu/internal/scene"
	"stretch-menu/internal/texture"
)

type preview struct {
	screen     tcell.Screen
	menu       *menu.Menu
	mouse      *mouseRouter
	bg         colorful.Color
	scale      int
	labels     []string
	itemHeight float64
	drawn      bool
}

func newPreview(screen tcell.Screen, cfg config.Config, scale int, wheelStep float64, previews texture.Resolver) (*preview, error) {
	cols, rows := screen.Size()
	cfg.Width = cols * scale
	cfg.Height = rows * 2 * scale

	p := &preview{
		screen:     screen,
		scale:      scale,
		itemHeight: cfg.ItemHeight,
	}
	if cfg.Background != "" {
		if c, err := texture.ParseColor(cfg.Background); err == nil {
			p.bg = colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
		}
	}

	m, err := menu.New(cfg.Menu(), menu.Deps{
		Renderer: raster.NewRenderer(cfg.Width, cfg.Height, p.present),
		Textures: texture.NewLabels(),
		Previews: previews,
		Clock:    clock.Real{},
	})
	if err != nil {
		return nil, err
	}
	p.menu = m
	p.labels = m.Labels()
	p.mouse = &mouseRouter{target: m, scale: float64(scale), wheelStep: wheelStep}
	return p, nil
}

// present is the renderer sink: it rasterizes at terminal resolution.
func (p *preview) present(frame int, sc *scene.Scene) {
	cols, rows := p.screen.Size()
	c := sc.Clone()
	ratio := float64(cols) / float64(sc.Width)
	c.Width, c.Height = cols, rows*2
	for i := range c.Previews {
		c.Previews[i].Scale *= ratio
	}
	img := raster.Rasterize(c, 2)
	img = postprocess.Downsample(img, c.Width, c.Height)
	drawFrame(p.screen, img, p.bg)
	p.drawn = true
}

func (p *preview) tick() {
	p.drawn = false
	p.menu.Tick()
	if !p.drawn {
		fill(p.screen, p.bg)
		s := p.menu.Snapshot()
		switch {
		case s.Reduced && s.Overlay.Visible:
			p.drawList()
		case !s.Overlay.Visible:
			_, rows := p.screen.Size()
			drawText(p.screen, rows/2, "o: open   q: quit", tcell.StyleDefault.Foreground(tcell.ColorGray))
		}
	}
	p.screen.Show()
}

// drawList lays the labels out as the plain list used below the mobile
// breakpoint, one label per ItemHeight of menu pixels.
func (p *preview) drawList() {
	_, rows := p.screen.Size()
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for i, l := range p.labels {
		cy := int((float64(i) + 0.5) * p.itemHeight / float64(2*p.scale))
		if cy >= rows {
			break
		}
		drawText(p.screen, cy, strings.ToUpper(l), style)
	}
}

func (p *preview) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() == tcell.KeyRune {
			switch ev.Rune() {
			case 'q':
				return false
			case 'o':
				p.menu.Open()
			case 'c':
				p.menu.Close()
			}
		}

	case *tcell.EventMouse:
		p.mouse.handle(ev)

	case *tcell.EventResize:
		p.screen.Sync()
		cols, rows := ev.Size()
		p.menu.Resize(cols*p.scale, rows*2*p.scale)
	}

	return true
}

func (p *preview) run() {
	ticker := time.NewTicker(16 * time.Millisecond) // ~60 FPS
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			eventChan <- p.screen.PollEvent()
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if ev == nil || !p.handleInput(ev) {
				return
			}

		case <-ticker.C:
			p.tick()
		}
	}
}

func main() {
	configFile := flag.String("config", "", "Path to config file (.json, .yaml)")
	scale := flag.Int("scale", 8, "Menu pixels per terminal column")
	wheelStep := flag.Float64("wheel", 100, "Wheel delta per notch")
	hoverDir := flag.String("hover-images", "", "Directory of hover preview images named after labels")
	flag.Parse()

	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}
	cfg.Resolve(config.Flags{HoverImageDir: *hoverDir})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *scale < 1 {
		*scale = 1
	}

	var previews texture.Resolver
	if cfg.HoverImageDir != "" {
		previews = texture.NewCache(texture.BuildIndex(cfg.HoverImageDir))
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()
	screen.EnableMouse()

	p, err := newPreview(screen, cfg, *scale, *wheelStep, previews)
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	p.menu.Open()
	p.run()
}
