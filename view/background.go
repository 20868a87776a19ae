package view

import (
	"math"
	"time"

	"github.com/they4kman/xox/config"
	"github.com/they4kman/xox/render"
)

// Background is the per-frame draw list behind the board: clear, the
// animated line, then the grid overlay.
func Background(palette config.Palette, spacing render.Spacing, elapsed time.Duration) render.Frame {
	return render.Frame{
		Clear:     palette.Background,
		Lines:     []render.Line{SpinnerLine(elapsed, palette.Line)},
		Grid:      &spacing,
		GridColor: palette.Grid,
	}
}

// SpinnerLine is a segment whose ends orbit two fixed points, the outer end at
// half the angular speed of the inner one.
func SpinnerLine(elapsed time.Duration, color render.Color) render.Line {
	t := elapsed.Seconds()
	return render.Line{
		X0:    int(math.Cos(t*2)*30 + 50),
		Y0:    int(math.Sin(t*2)*20 + 30),
		X1:    int(math.Cos(t)*100 + 150),
		Y1:    int(math.Sin(t)*50 + 100),
		Color: color,
	}
}
