// Package config loads game settings from YAML, an optional .env file and
// BLOCKFIT_* environment variables, in that order of precedence (lowest first).
package config

import (
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/plus3/blockfit/board"
	"github.com/plus3/blockfit/shape"
)

var ErrInvalidConfig = errors.New("invalid config")

type Board struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type Vec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

func (v Vec) vec2() board.Vec2 { return board.Vec2{X: v.X, Y: v.Y} }

type Geometry struct {
	CellSize   Vec `yaml:"cell_size"`
	CellGap    Vec `yaml:"cell_gap"`
	GridOffset Vec `yaml:"grid_offset"`
	Origin     Vec `yaml:"origin"`
}

// Config is the full set of game settings.
type Config struct {
	Board    Board    `yaml:"board"`
	Geometry Geometry `yaml:"geometry"`
	Slots    int      `yaml:"slots"`
	// Palette lists one "#rrggbb" colour per shape bucket in play.
	Palette  []string `yaml:"palette"`
	Seed     uint64   `yaml:"seed"`
	LogLevel string   `yaml:"log_level"`
	// Shapes optionally replaces the built-in catalog. Each bucket is a list
	// of shapes, each shape a list of '#'/'.' rows.
	Shapes [][][]string `yaml:"shapes,omitempty"`
}

// Default returns the stock 8x8 game with three slots and four colours.
func Default() *Config {
	g := board.DefaultGeometry()
	return &Config{
		Board: Board{Width: 8, Height: 8},
		Geometry: Geometry{
			CellSize:   Vec{g.CellSize.X, g.CellSize.Y},
			CellGap:    Vec{g.CellGap.X, g.CellGap.Y},
			GridOffset: Vec{g.GridOffset.X, g.GridOffset.Y},
			Origin:     Vec{g.Origin.X, g.Origin.Y},
		},
		Slots:    3,
		Palette:  []string{"#e74c3c", "#3498db", "#2ecc71", "#f1c40f"},
		LogLevel: "info",
	}
}

// LoadDotEnv loads variables from a .env file into the process environment.
// Variables that are already set win. A missing file is not an error.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// Load reads the YAML file at path on top of Default, applies environment
// overrides and validates the result. An empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, path, err)
		}
	}

	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv overrides fields from BLOCKFIT_WIDTH, BLOCKFIT_HEIGHT,
// BLOCKFIT_SLOTS, BLOCKFIT_SEED and BLOCKFIT_LOG_LEVEL.
func (c *Config) ApplyEnv() error {
	ints := []struct {
		key string
		dst *int
	}{
		{"BLOCKFIT_WIDTH", &c.Board.Width},
		{"BLOCKFIT_HEIGHT", &c.Board.Height},
		{"BLOCKFIT_SLOTS", &c.Slots},
	}
	for _, v := range ints {
		s, ok := os.LookupEnv(v.key)
		if !ok || s == "" {
			continue
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrInvalidConfig, v.key, err)
		}
		*v.dst = n
	}

	if s := os.Getenv("BLOCKFIT_SEED"); s != "" {
		seed, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: BLOCKFIT_SEED: %w", ErrInvalidConfig, err)
		}
		c.Seed = seed
	}
	if s := os.Getenv("BLOCKFIT_LOG_LEVEL"); s != "" {
		c.LogLevel = s
	}
	return nil
}

// Validate checks the settings for consistency.
func (c *Config) Validate() error {
	var errs []error

	if c.Board.Width <= 0 || c.Board.Height <= 0 {
		errs = append(errs, fmt.Errorf("board must be at least 1x1, got %dx%d", c.Board.Width, c.Board.Height))
	}
	if c.Slots <= 0 {
		errs = append(errs, fmt.Errorf("slots must be positive, got %d", c.Slots))
	}
	if len(c.Palette) == 0 {
		errs = append(errs, errors.New("palette is empty"))
	}
	if _, err := c.Colors(); err != nil {
		errs = append(errs, err)
	}
	if step := c.BoardGeometry().Step(); step.X <= 0 || step.Y <= 0 {
		errs = append(errs, errors.New("cell size plus gap must be positive"))
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}

	catalog, err := c.Catalog()
	if err != nil {
		errs = append(errs, err)
	} else if available := min(catalog.NumColors(), len(c.Palette)); c.Slots > available {
		errs = append(errs, fmt.Errorf("%d slots need distinct colours but only %d are available", c.Slots, available))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}

// BoardGeometry converts the geometry section for board.New.
func (c *Config) BoardGeometry() board.Geometry {
	return board.Geometry{
		CellSize:   c.Geometry.CellSize.vec2(),
		CellGap:    c.Geometry.CellGap.vec2(),
		GridOffset: c.Geometry.GridOffset.vec2(),
		Origin:     c.Geometry.Origin.vec2(),
	}
}

// Catalog returns the custom catalog, or the built-in one when none is set.
func (c *Config) Catalog() (*shape.Catalog, error) {
	if len(c.Shapes) == 0 {
		return shape.Default(), nil
	}
	catalog, err := shape.ParseCatalog(c.Shapes)
	if err != nil {
		return nil, fmt.Errorf("shapes: %w", err)
	}
	return catalog, nil
}

// Colors parses the palette.
func (c *Config) Colors() ([]color.RGBA, error) {
	out := make([]color.RGBA, len(c.Palette))
	for i, hex := range c.Palette {
		rgba, err := parseHex(hex)
		if err != nil {
			return nil, fmt.Errorf("palette[%d]: %w", i, err)
		}
		out[i] = rgba
	}
	return out, nil
}

func parseHex(s string) (color.RGBA, error) {
	h := strings.TrimPrefix(s, "#")
	if len(h) != 6 {
		return color.RGBA{}, fmt.Errorf("colour %q is not #rrggbb", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("colour %q is not #rrggbb", s)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

// Level returns the parsed log level, falling back to info.
func (c *Config) Level() logrus.Level {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}

// NewLogger builds a text logger at the configured level.
func (c *Config) NewLogger() *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	log.SetLevel(c.Level())
	return log
}
