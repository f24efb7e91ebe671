package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"

	"stretch-menu/internal/menu"
	"stretch-menu/internal/texture"
)

var (
	ErrBadSize   = errors.New("config: width and height must be positive")
	ErrBadFormat = errors.New("config: unsupported file format")
)

// Config holds menu, camera and export settings.
type Config struct {
	// Menu
	Labels           []string `json:"labels" yaml:"labels"`
	ItemHeight       float64  `json:"item_height" yaml:"item_height"`
	TextColor        string   `json:"text_color" yaml:"text_color"`
	HoverColor       string   `json:"hover_color" yaml:"hover_color"`
	Background       string   `json:"background" yaml:"background"`
	MobileBreakpoint int      `json:"mobile_breakpoint" yaml:"mobile_breakpoint"`

	// Viewport and camera
	Width   int     `json:"width" yaml:"width"`
	Height  int     `json:"height" yaml:"height"`
	FOV     float64 `json:"fov" yaml:"fov"`
	CameraZ float64 `json:"camera_z" yaml:"camera_z"`

	// Export
	FPS           int    `json:"fps" yaml:"fps"`
	Supersample   int    `json:"supersample" yaml:"supersample"`
	Workers       int    `json:"workers" yaml:"workers"`
	OutputDir     string `json:"output_dir" yaml:"output_dir"`
	HoverImageDir string `json:"hover_image_dir" yaml:"hover_image_dir"`
}

// Load reads a JSON or YAML config file, chosen by extension.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = json.Unmarshal(data, &cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		return Config{}, fmt.Errorf("%w: %s", ErrBadFormat, path)
	}
	if err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	Width         int
	Height        int
	FPS           int
	Supersample   int
	Workers       int
	OutputDir     string
	HoverImageDir string
}

// Resolve applies CLI overrides, then fills any empty fields with defaults.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.Width > 0 {
		c.Width = flags.Width
	}
	if flags.Height > 0 {
		c.Height = flags.Height
	}
	if flags.FPS > 0 {
		c.FPS = flags.FPS
	}
	if flags.Supersample > 0 {
		c.Supersample = flags.Supersample
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.HoverImageDir != "" {
		c.HoverImageDir = flags.HoverImageDir
	}

	if len(c.Labels) == 0 {
		c.Labels = menu.DefaultLabels()
	}
	if c.ItemHeight == 0 {
		c.ItemHeight = menu.DefaultItemHeight
	}
	if c.TextColor == "" {
		c.TextColor = menu.DefaultTextColor
	}
	if c.HoverColor == "" {
		c.HoverColor = menu.DefaultHoverColor
	}
	if c.MobileBreakpoint <= 0 {
		c.MobileBreakpoint = menu.DefaultMobileBreakpoint
	}
	if c.Width == 0 {
		c.Width = 1280
	}
	if c.Height == 0 {
		c.Height = 800
	}
	if c.FPS <= 0 {
		c.FPS = 60
	}
	if c.Supersample <= 0 {
		c.Supersample = 2
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.OutputDir == "" {
		c.OutputDir = "renders"
	}
}

// Validate rejects settings the menu cannot be built from.
func (c *Config) Validate() error {
	if len(c.Labels) == 0 {
		return menu.ErrNoItems
	}
	if !(c.ItemHeight > 0) {
		return fmt.Errorf("%w: %v", menu.ErrBadItemHeight, c.ItemHeight)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrBadSize, c.Width, c.Height)
	}
	for _, col := range []string{c.TextColor, c.HoverColor, c.Background} {
		if col == "" {
			continue
		}
		if _, err := texture.ParseColor(col); err != nil {
			return fmt.Errorf("config: %w", err)
		}
	}
	return nil
}

// Menu converts the settings into a menu configuration.
func (c *Config) Menu() menu.Config {
	var bg color.NRGBA
	if c.Background != "" {
		bg, _ = texture.ParseColor(c.Background)
	}
	return menu.Config{
		Labels:           c.Labels,
		ItemHeight:       c.ItemHeight,
		Width:            c.Width,
		Height:           c.Height,
		FOV:              c.FOV,
		CameraZ:          c.CameraZ,
		TextColor:        c.TextColor,
		HoverColor:       c.HoverColor,
		Background:       bg,
		MobileBreakpoint: c.MobileBreakpoint,
	}
}
