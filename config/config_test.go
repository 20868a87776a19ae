package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/they4kman/xox/render"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	// When: loading without a file
	conf, err := Load("")

	// Then: the defaults apply
	require.NoError(t, err)
	assert.Equal(t, "info", conf.LogLevel)
	assert.Equal(t, Window{Title: "XOX", Width: 320, Height: 240, Scale: 3}, conf.Window)
	assert.Equal(t, render.Spacing{X: 10, Y: 10}, conf.Grid.Spacing())
	assert.Equal(t, 48, conf.Board.CellSize)
	assert.Equal(t, 500*time.Millisecond, conf.Director.Interval)

	palette, err := conf.Palette()
	require.NoError(t, err)
	assert.Equal(t, render.Color(0xeeeeeeff), palette.Background)
	assert.Equal(t, render.Color(0x6655bbff), palette.Line)
	assert.Equal(t, render.Color(0x334455ff), palette.Grid)
	assert.Equal(t, render.Color(0x000000ff), palette.Text)
}

func TestLoad_File(t *testing.T) {
	// Given: a config file overriding a few values
	path := writeConfig(t, `
log-level: debug
window:
  width: 160
  scale: 2
grid:
  spacing-x: 16
colors:
  background: gainsboro
director:
  interval: 1s
`)

	// When: loading it
	conf, err := Load(path)

	// Then: the file wins over the defaults, which fill the rest
	require.NoError(t, err)
	assert.Equal(t, "debug", conf.LogLevel)
	assert.Equal(t, 160, conf.Window.Width)
	assert.Equal(t, 240, conf.Window.Height)
	assert.Equal(t, 2, conf.Window.Scale)
	assert.Equal(t, render.Spacing{X: 16, Y: 10}, conf.Grid.Spacing())
	assert.Equal(t, time.Second, conf.Director.Interval)

	palette, err := conf.Palette()
	require.NoError(t, err)
	assert.Equal(t, render.Color(0xdcdcdcff), palette.Background)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("XOX_WINDOW_SCALE", "4")
	t.Setenv("XOX_COLOR_CROSS", "#112233")

	conf, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, 4, conf.Window.Scale)
	palette, err := conf.Palette()
	require.NoError(t, err)
	assert.Equal(t, render.Color(0x112233ff), palette.Cross)
}

func TestLoad_Invalid(t *testing.T) {
	tests := map[string]string{
		"zero grid spacing":     "grid:\n  spacing-x: 0\n",
		"negative grid spacing": "grid:\n  spacing-y: -5\n",
		"zero scale":            "window:\n  scale: 0\n",
		"zero height":           "window:\n  height: 0\n",
		"zero cell size":        "board:\n  cell-size: 0\n",
		"negative scale":        "window:\n  scale: -1\n",
		"negative width":        "window:\n  width: -1\n",
		"negative cell size":    "board:\n  cell-size: -3\n",
		"unknown color":         "colors:\n  line: notacolor\n",
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, body))
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
		assert.Error(t, err)
	})
}

func TestLoad_EnvZeroSpacing(t *testing.T) {
	// Given: the grid spacing zeroed through the environment
	t.Setenv("XOX_GRID_SPACING_Y", "0")

	// When: loading without a file
	_, err := Load("")

	// Then: the zero is rejected rather than replaced by the default
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestConfig_Validate_ZeroSpacing(t *testing.T) {
	// Given: valid defaults with the grid spacing zeroed
	conf, err := Load("")
	require.NoError(t, err)
	conf.Grid.SpacingX = 0

	// When: validating
	err = conf.Validate()

	// Then: it is reported as a configuration error
	assert.ErrorIs(t, err, ErrInvalidConfig)
}
