package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"stretch-menu/internal/batch"
	"stretch-menu/internal/clock"
	"stretch-menu/internal/config"
	"stretch-menu/internal/menu"
	"stretch-menu/internal/raster"
	"stretch-menu/internal/session"
	"stretch-menu/internal/texture"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config file (.json, .yaml)")
	scriptFile := flag.String("script", "", "Path to session script (default: built-in demo)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	outputDir := flag.String("output", "", "Output directory (default: renders)")
	width := flag.Int("width", 0, "Viewport width in pixels (default: 1280)")
	height := flag.Int("height", 0, "Viewport height in pixels (default: 800)")
	fps := flag.Int("fps", 0, "Frames per second (default: 60)")
	supersample := flag.Int("supersample", 0, "Supersample factor (default: 2)")
	hoverDir := flag.String("hover-images", "", "Directory of hover preview images named after labels")
	verbose := flag.Bool("v", false, "Log menu and session events")

	flag.Parse()

	if *verbose {
		l := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		menu.SetLogger(l)
		session.SetLogger(l)
		texture.SetLogger(l)
	}

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		Width:         *width,
		Height:        *height,
		FPS:           *fps,
		Supersample:   *supersample,
		Workers:       *workers,
		OutputDir:     *outputDir,
		HoverImageDir: *hoverDir,
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Load script
	var script *session.Script
	if *scriptFile != "" {
		var err error
		script, err = session.Load(*scriptFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading script: %v\n", err)
			os.Exit(1)
		}
		if *fps > 0 {
			script.FPS = *fps
		}
	} else {
		script = session.Demo(cfg.Width, cfg.Height)
		script.FPS = cfg.FPS
	}

	// Hover images
	var previews texture.Resolver
	if cfg.HoverImageDir != "" {
		idx := texture.BuildIndex(cfg.HoverImageDir)
		previews = texture.NewCache(idx)
		fmt.Printf("Hover images: %d indexed\n", idx.Len())
	}

	rec := &batch.Recorder{}
	clk := clock.NewMock(time.Unix(0, 0))
	m, err := menu.New(cfg.Menu(), menu.Deps{
		Renderer: raster.NewRenderer(cfg.Width, cfg.Height, rec.Record),
		Textures: texture.NewLabels(),
		Previews: previews,
		Clock:    clk,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Stretch menu → WebP")
	fmt.Printf("Items: %d, Viewport: %dx%d, FPS: %d, Frames: %d\n",
		len(cfg.Labels), cfg.Width, cfg.Height, script.FPS, script.Frames())
	if m.Snapshot().Reduced {
		fmt.Println("Viewport is below the mobile breakpoint: nothing will be drawn.")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err = session.Run(ctx, m, clk, script, func(frame int, at time.Duration) {
		s := m.Snapshot()
		rec.Annotate(at, s.Position, s.Velocity, s.Hovered)
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: replay: %v\n", err)
		os.Exit(1)
	}

	frames := rec.Frames()
	if len(frames) == 0 {
		fmt.Println("No frames to render.")
		os.Exit(0)
	}

	fmt.Printf("Recorded: %d frames, Workers: %d\n", len(frames), cfg.Workers)
	fmt.Printf("Output: %s\n", cfg.OutputDir)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()

	results := batch.Run(batch.Config{
		OutputDir:   cfg.OutputDir,
		Supersample: cfg.Supersample,
		Workers:     cfg.Workers,
	}, frames)

	elapsed := time.Since(start)
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())

	// Count results
	success, failed := 0, 0
	var errors []batch.Result
	for _, r := range results {
		if r.Success {
			success++
		} else {
			failed++
			errors = append(errors, r)
		}
	}

	fmt.Printf("Rendered: %d/%d\n", success, len(frames))

	if len(errors) > 0 {
		fmt.Printf("\nFailed (%d):\n", failed)
		limit := 20
		if len(errors) < limit {
			limit = len(errors)
		}
		for _, e := range errors[:limit] {
			fmt.Printf("  frame %d: %s\n", e.Frame, e.Error)
		}
	}

	// Write manifest
	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	os.MkdirAll(cfg.OutputDir, 0755)
	if err := batch.WriteManifest(manifestPath, frames, results); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}

	if failed > 0 {
		os.Exit(1)
	}
}
