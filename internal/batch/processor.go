package batch

import (
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"stretch-menu/internal/postprocess"
	"stretch-menu/internal/raster"

	"github.com/HugoSmits86/nativewebp"
)

// Config holds all shared settings for a batch run.
type Config struct {
	OutputDir   string
	Supersample int
	Workers     int

	// Progress is called every ProgressEvery with the frames done so far.
	// Nil prints to stdout.
	Progress      func(done, total int, rate float64)
	ProgressEvery time.Duration
}

// Result holds the outcome of encoding one frame.
type Result struct {
	Frame   int
	Image   string
	Success bool
	Error   string
}

// FramePath is the output path of frame i relative to the output directory.
func FramePath(i int) string {
	return filepath.Join("frames", fmt.Sprintf("%05d.webp", i))
}

// Run rasterizes and encodes all frames using a worker pool.
func Run(cfg Config, frames []Frame) []Result {
	total := len(frames)
	results := make([]Result, total)
	var processed atomic.Int64

	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}
	every := cfg.ProgressEvery
	if every <= 0 {
		every = 2 * time.Second
	}
	progress := cfg.Progress
	if progress == nil {
		progress = func(done, total int, rate float64) {
			fmt.Printf("  [%d/%d] %.1f frames/sec\n", done, total, rate)
		}
	}

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	var reporter sync.WaitGroup
	reporter.Add(1)
	go func() {
		defer reporter.Done()
		ticker := time.NewTicker(every)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := processed.Load()
				if p > 0 {
					elapsed := time.Since(start).Seconds()
					progress(int(p), total, float64(p)/elapsed)
				}
			}
		}
	}()

	// Worker pool
	frameChan := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range frameChan {
				results[idx] = processFrame(cfg, frames[idx])
				processed.Add(1)
			}
		}()
	}

	// Send work
	for i := range frames {
		frameChan <- i
	}
	close(frameChan)

	wg.Wait()
	close(done)
	reporter.Wait()

	return results
}

func processFrame(cfg Config, f Frame) Result {
	rel := FramePath(f.Index)
	res := Result{Frame: f.Index, Image: filepath.ToSlash(rel)}

	if f.Scene == nil {
		res.Error = "no scene recorded"
		return res
	}

	ss := cfg.Supersample
	if ss < 1 {
		ss = 1
	}
	img := raster.Rasterize(f.Scene, ss)

	// Post-processing: supersample downsample
	if ss > 1 {
		img = postprocess.Downsample(img, f.Scene.Width, f.Scene.Height)
	}

	outPath := filepath.Join(cfg.OutputDir, rel)
	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		res.Error = err.Error()
		return res
	}

	out, err := os.Create(outPath)
	if err != nil {
		res.Error = err.Error()
		return res
	}
	if err := writeWebP(out, img); err != nil {
		res.Error = err.Error()
		return res
	}

	res.Success = true
	return res
}

// writeWebP encodes img to out and closes it. A failed close means the
// file is incomplete and is reported like an encode error.
func writeWebP(out io.WriteCloser, img image.Image) error {
	if err := nativewebp.Encode(out, img, nil); err != nil {
		out.Close()
		return fmt.Errorf("WebP encode: %w", err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("close: %w", err)
	}
	return nil
}
