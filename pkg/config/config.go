package config

import (
	"errors"
	"fmt"
	"image/color"
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

// Seed modes used by the space-bar reseed
const (
	SeedRandom = "random"
	SeedNoise  = "noise"
)

// Config holds everything the front-ends need to build and draw a board
type Config struct {
	Rows    int `yaml:"rows"`
	Columns int `yaml:"columns"`

	Window WindowConfig `yaml:"window"`
	Seed   SeedConfig   `yaml:"seed"`
	Colors ColorConfig  `yaml:"colors"`

	// TicksPerSecond is both the ebiten TPS and the terminal step rate
	TicksPerSecond int `yaml:"ticksPerSecond"`

	// AppName names the per-user storage directory for saved boards
	AppName string `yaml:"appName"`
}

// WindowConfig describes the graphics window
type WindowConfig struct {
	Width    int    `yaml:"width"`
	Height   int    `yaml:"height"`
	Title    string `yaml:"title"`
	IconPath string `yaml:"iconPath"`
	ShowHUD  bool   `yaml:"showHud"`
}

// SeedConfig controls how boards are reseeded
type SeedConfig struct {
	Mode    string  `yaml:"mode"`    // "random" or "noise"
	Value   int64   `yaml:"value"`   // 0 seeds from the clock
	Density float64 `yaml:"density"` // Probability of alive for random mode

	NoiseScale     float64 `yaml:"noiseScale"`
	NoiseThreshold float64 `yaml:"noiseThreshold"`
}

// ColorConfig holds cell tints as hex strings (#rrggbb or #rrggbbaa)
type ColorConfig struct {
	Stable     string `yaml:"stable"`     // Live cell that had 2 or 3 neighbours
	Unstable   string `yaml:"unstable"`   // Any other live cell
	Background string `yaml:"background"`
}

// Default returns the settings of the classic 200x200 board
func Default() *Config {
	return &Config{
		Rows:    200,
		Columns: 200,
		Window: WindowConfig{
			Width:    1280,
			Height:   1024,
			Title:    "Game of Life",
			IconPath: "assets/icon.png",
			ShowHUD:  true,
		},
		Seed: SeedConfig{
			Mode:           SeedRandom,
			Density:        0.5,
			NoiseScale:     0.08,
			NoiseThreshold: 0.0,
		},
		Colors: ColorConfig{
			Stable:     "#00ff00",
			Unstable:   "#ff0000",
			Background: "#000000",
		},
		TicksPerSecond: 60,
		AppName:        "lifegrid",
	}
}

// Load reads a YAML file on top of the defaults. A missing file is not an
// error: the defaults are returned as they are.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Printf("[Config] %s not found, using defaults", path)
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	log.Printf("[Config] Loaded %s (%dx%d cells)", path, cfg.Rows, cfg.Columns)
	return cfg, nil
}

// Validate checks ranges and enumerations
func (c *Config) Validate() error {
	if c.Rows <= 0 || c.Columns <= 0 {
		return fmt.Errorf("grid size must be positive, got %dx%d", c.Rows, c.Columns)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.TicksPerSecond <= 0 {
		return fmt.Errorf("ticksPerSecond must be positive, got %d", c.TicksPerSecond)
	}
	if c.Seed.Density < 0 || c.Seed.Density > 1 {
		return fmt.Errorf("seed density must be within [0,1], got %v", c.Seed.Density)
	}
	switch c.Seed.Mode {
	case SeedRandom, SeedNoise:
	default:
		return fmt.Errorf("unknown seed mode %q", c.Seed.Mode)
	}
	for name, hex := range map[string]string{
		"stable":     c.Colors.Stable,
		"unstable":   c.Colors.Unstable,
		"background": c.Colors.Background,
	} {
		if _, err := ParseColor(hex); err != nil {
			return fmt.Errorf("colors.%s: %w", name, err)
		}
	}
	return nil
}

// ParseColor converts #rrggbb or #rrggbbaa into a color
func ParseColor(hex string) (color.RGBA, error) {
	c := color.RGBA{A: 0xff}
	var err error
	switch len(hex) {
	case 7:
		_, err = fmt.Sscanf(hex, "#%02x%02x%02x", &c.R, &c.G, &c.B)
	case 9:
		_, err = fmt.Sscanf(hex, "#%02x%02x%02x%02x", &c.R, &c.G, &c.B, &c.A)
	default:
		err = fmt.Errorf("bad length %d", len(hex))
	}
	if err != nil {
		return color.RGBA{}, fmt.Errorf("failed to parse color %q: %w", hex, err)
	}
	return c, nil
}

// MustColor is ParseColor for values that already passed Validate
func MustColor(hex string) color.RGBA {
	c, err := ParseColor(hex)
	if err != nil {
		panic(err)
	}
	return c
}
