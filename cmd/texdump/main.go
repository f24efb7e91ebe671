package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"

	"stretch-menu/internal/config"
	"stretch-menu/internal/texture"
)

type texFile struct {
	label   string
	color   string
	dstName string
}

func dumpTexture(labels *texture.Labels, dir string, f texFile) error {
	img := labels.Texture(f.label, f.color)

	dst := filepath.Join(dir, f.dstName)
	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("create %s: %w", dst, err)
	}
	defer out.Close()

	if err := nativewebp.Encode(out, img, nil); err != nil {
		return fmt.Errorf("encode %s: %w", dst, err)
	}
	fmt.Printf("OK  %-10s %-8s -> %s  (%dx%d)\n",
		f.label, f.color, f.dstName, img.Rect.Dx(), img.Rect.Dy())
	return nil
}

func fileStem(label string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(label)), " ", "_")
}

func main() {
	configFile := flag.String("config", "", "Path to config file (.json, .yaml)")
	outputDir := flag.String("output", "textures", "Output directory")
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
	cfg.Resolve(config.Flags{})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Labels repeat; each distinct text is drawn once per colour.
	var files []texFile
	seen := make(map[string]bool)
	for _, l := range cfg.Labels {
		stem := fileStem(l)
		if seen[stem] {
			continue
		}
		seen[stem] = true
		files = append(files,
			texFile{label: l, color: cfg.TextColor, dstName: stem + ".webp"},
			texFile{label: l, color: cfg.HoverColor, dstName: stem + "_hover.webp"},
		)
	}

	labels := texture.NewLabels()
	errors := 0
	for _, f := range files {
		if err := dumpTexture(labels, *outputDir, f); err != nil {
			fmt.Fprintf(os.Stderr, "ERR %v\n", err)
			errors++
		}
	}
	if errors > 0 {
		fmt.Printf("\nDone with %d error(s).\n", errors)
		os.Exit(1)
	}
	fmt.Printf("\nDone. %d textures written, %d cached.\n", len(files), labels.Len())
}
