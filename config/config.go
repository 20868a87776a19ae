package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/they4kman/xox/render"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	LogLevel string   `yaml:"log-level" env:"XOX_LOG_LEVEL" env-default:"info"`
	Window   Window   `yaml:"window"`
	Colors   Colors   `yaml:"colors"`
	Grid     Grid     `yaml:"grid"`
	Board    Board    `yaml:"board"`
	Director Director `yaml:"director"`
}

// Window sizes are logical pixels; the window is Scale times larger.
//
// Sizes and spacings carry no env-default: cleanenv applies defaults to zero
// fields, which would hide an explicit 0 from Validate. Their defaults come
// from newConfig instead.
type Window struct {
	Title     string `yaml:"title" env:"XOX_WINDOW_TITLE" env-default:"XOX"`
	Width     int    `yaml:"width" env:"XOX_WINDOW_WIDTH"`
	Height    int    `yaml:"height" env:"XOX_WINDOW_HEIGHT"`
	Scale     int    `yaml:"scale" env:"XOX_WINDOW_SCALE"`
	Resizable bool   `yaml:"resizable" env:"XOX_WINDOW_RESIZABLE" env-default:"false"`
}

// Colors are SVG color names or RRGGBB[AA] hex values.
type Colors struct {
	Background string `yaml:"background" env:"XOX_COLOR_BACKGROUND" env-default:"eeeeeeff"`
	Line       string `yaml:"line" env:"XOX_COLOR_LINE" env-default:"6655bbff"`
	Grid       string `yaml:"grid" env:"XOX_COLOR_GRID" env-default:"334455ff"`
	Board      string `yaml:"board" env:"XOX_COLOR_BOARD" env-default:"black"`
	Cross      string `yaml:"cross" env:"XOX_COLOR_CROSS" env-default:"crimson"`
	Circle     string `yaml:"circle" env:"XOX_COLOR_CIRCLE" env-default:"royalblue"`
	Text       string `yaml:"text" env:"XOX_COLOR_TEXT" env-default:"black"`
}

type Grid struct {
	SpacingX int `yaml:"spacing-x" env:"XOX_GRID_SPACING_X"`
	SpacingY int `yaml:"spacing-y" env:"XOX_GRID_SPACING_Y"`
}

func (grid Grid) Spacing() render.Spacing {
	return render.Spacing{X: grid.SpacingX, Y: grid.SpacingY}
}

type Board struct {
	CellSize int `yaml:"cell-size" env:"XOX_BOARD_CELL_SIZE"`
}

type Director struct {
	Interval time.Duration `yaml:"interval" env:"XOX_DIRECTOR_INTERVAL" env-default:"500ms"`
}

// Palette is Colors parsed into packed render colors.
type Palette struct {
	Background, Line, Grid, Board, Cross, Circle, Text render.Color
}

func newConfig() *Config {
	return &Config{
		Window: Window{Width: 320, Height: 240, Scale: 3},
		Grid:   Grid{SpacingX: 10, SpacingY: 10},
		Board:  Board{CellSize: 48},
	}
}

// Load reads the YAML file at path, if any, then XOX_* environment variables,
// and validates the result.
func Load(path string) (*Config, error) {
	config := newConfig()

	var err error
	if path != "" {
		err = cleanenv.ReadConfig(path, config)
	} else {
		err = cleanenv.ReadEnv(config)
	}
	if err != nil {
		return nil, fmt.Errorf("unable to load config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func (config *Config) Validate() error {
	if config.Window.Width <= 0 || config.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, config.Window.Width, config.Window.Height)
	}
	if config.Window.Scale <= 0 {
		return fmt.Errorf("%w: window scale %d", ErrInvalidConfig, config.Window.Scale)
	}
	if config.Board.CellSize <= 0 {
		return fmt.Errorf("%w: board cell size %d", ErrInvalidConfig, config.Board.CellSize)
	}
	if err := config.Grid.Spacing().Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if _, err := config.Palette(); err != nil {
		return err
	}
	return nil
}

func (config *Config) Palette() (Palette, error) {
	var palette Palette

	colors := []struct {
		name  string
		value string
		dst   *render.Color
	}{
		{"background", config.Colors.Background, &palette.Background},
		{"line", config.Colors.Line, &palette.Line},
		{"grid", config.Colors.Grid, &palette.Grid},
		{"board", config.Colors.Board, &palette.Board},
		{"cross", config.Colors.Cross, &palette.Cross},
		{"circle", config.Colors.Circle, &palette.Circle},
		{"text", config.Colors.Text, &palette.Text},
	}
	for _, c := range colors {
		color, err := render.ParseColor(c.value)
		if err != nil {
			return Palette{}, fmt.Errorf("%w: %s color: %v", ErrInvalidConfig, c.name, err)
		}
		*c.dst = color
	}

	return palette, nil
}
