// Package config holds the settings shared by every frontend: grid
// dimensions, seed pattern, pacing and colours. Values come from defaults, an
// optional YAML file and command-line flags, in increasing precedence.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"mad-squares/internal/core"
	"mad-squares/internal/render"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

const (
	DefaultRows     = 12
	DefaultCols     = 16
	DefaultCellSize = 32
	DefaultTPS      = 60
	DefaultGenRate  = 4
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Colors are "#rrggbb" or "#rrggbbaa" strings.
type Colors struct {
	Background  string `yaml:"background"`
	Cursor      string `yaml:"cursor"`
	CursorInner string `yaml:"cursor_inner"`
	Contour     string `yaml:"contour"`
	Cells       string `yaml:"cells"`
}

// Config represents the settings for a run.
type Config struct {
	Rows     int    `yaml:"rows"`
	Cols     int    `yaml:"cols"`
	CellSize int    `yaml:"cell_size"`
	Pattern  string `yaml:"pattern"`
	Seed     int64  `yaml:"seed"`
	Wrap     bool   `yaml:"wrap"`

	TPS     int `yaml:"tps"`
	GenRate int `yaml:"generations_per_second"`

	ShowCells bool    `yaml:"show_cells"`
	LineWidth float64 `yaml:"line_width"`
	Colors    Colors  `yaml:"colors"`

	LogLevel string `yaml:"log_level"`
}

// Default returns a Config populated with the reference settings.
func Default() *Config {
	return &Config{
		Rows:      DefaultRows,
		Cols:      DefaultCols,
		CellSize:  DefaultCellSize,
		Pattern:   core.DefaultPattern,
		Seed:      42,
		TPS:       DefaultTPS,
		GenRate:   DefaultGenRate,
		LineWidth: 2,
		Colors: Colors{
			Background:  "#ffffff",
			Cursor:      "#00cc00",
			CursorInner: "#ffffff",
			Contour:     "#000000",
			Cells:       "#dce4f0",
		},
		LogLevel: "info",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *pflag.FlagSet) {
	fs.IntVar(&c.Rows, "rows", c.Rows, "grid rows")
	fs.IntVar(&c.Cols, "cols", c.Cols, "grid columns")
	fs.IntVar(&c.CellSize, "cell-size", c.CellSize, "cell size in pixels")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "seed pattern ("+strings.Join(core.PatternNames(), ", ")+")")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the random pattern")
	fs.BoolVar(&c.Wrap, "wrap", c.Wrap, "wrap the life neighbourhood around the grid edges")
	fs.IntVar(&c.GenRate, "gps", c.GenRate, "generations per second while evolving")
	fs.BoolVar(&c.ShowCells, "show-cells", c.ShowCells, "shade live cells under the contour")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level (debug, info, warn, error)")
}

// LoadFile merges a YAML file into c while keeping every flag of fs that was
// set explicitly on the command line.
func (c *Config) LoadFile(path string, fs *pflag.FlagSet) error {
	changed := map[string]string{}
	if fs != nil {
		fs.Visit(func(f *pflag.Flag) { changed[f.Name] = f.Value.String() })
	}
	if err := c.merge(path); err != nil {
		return err
	}
	for name, v := range changed {
		if err := fs.Set(name, v); err != nil {
			return fmt.Errorf("reapply --%s: %w", name, err)
		}
	}
	return nil
}

func (c *Config) merge(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// WriteYAML encodes c as YAML to w.
func (c *Config) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return enc.Close()
}

// Save writes c as YAML to path.
func Save(path string, c *Config) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create config: %w", err)
	}
	if err := c.WriteYAML(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Validate reports the first setting that cannot be used.
func (c *Config) Validate() error {
	switch {
	case c.Rows <= 0 || c.Cols <= 0:
		return fmt.Errorf("%w: grid must be at least 1x1, got %dx%d", ErrInvalid, c.Rows, c.Cols)
	case c.CellSize <= 0:
		return fmt.Errorf("%w: cell size must be positive, got %d", ErrInvalid, c.CellSize)
	case c.TPS <= 0:
		return fmt.Errorf("%w: tps must be positive, got %d", ErrInvalid, c.TPS)
	case c.GenRate <= 0:
		return fmt.Errorf("%w: generations per second must be positive, got %d", ErrInvalid, c.GenRate)
	case c.LineWidth <= 0:
		return fmt.Errorf("%w: line width must be positive, got %g", ErrInvalid, c.LineWidth)
	}
	if _, ok := core.Patterns()[c.Pattern]; !ok {
		return fmt.Errorf("%w: unknown pattern %q", ErrInvalid, c.Pattern)
	}
	if _, err := c.level(); err != nil {
		return err
	}
	_, err := c.Style()
	return err
}

// Style converts the colour settings into a render style.
func (c *Config) Style() (render.Style, error) {
	st := render.DefaultStyle()
	st.LineWidth = c.LineWidth
	st.ShowCells = c.ShowCells
	fields := []struct {
		name string
		hex  string
		dst  *color.RGBA
	}{
		{"background", c.Colors.Background, &st.Background},
		{"cursor", c.Colors.Cursor, &st.Cursor},
		{"cursor_inner", c.Colors.CursorInner, &st.CursorInner},
		{"contour", c.Colors.Contour, &st.Contour},
		{"cells", c.Colors.Cells, &st.Cells},
	}
	for _, f := range fields {
		if f.hex == "" {
			continue
		}
		col, err := ParseHex(f.hex)
		if err != nil {
			return st, fmt.Errorf("%w: colors.%s: %v", ErrInvalid, f.name, err)
		}
		*f.dst = col
	}
	return st, nil
}

// ParseHex parses "#rrggbb" or "#rrggbbaa". Every character after the
// optional '#' must be a hex digit.
func ParseHex(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("bad colour %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("bad colour %q", s)
	}
	if len(hex) == 6 {
		v = v<<8 | 0xff
	}
	return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

func (c *Config) level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return lvl, fmt.Errorf("%w: log level %q", ErrInvalid, c.LogLevel)
	}
	return lvl, nil
}

// Logger returns a text logger writing to w at the configured level. Unknown
// levels fall back to info.
func (c *Config) Logger(w io.Writer) *slog.Logger {
	lvl, err := c.level()
	if err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}
