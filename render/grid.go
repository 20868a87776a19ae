package render

import "fmt"

// Spacing is the distance in pixels between grid lines on each axis.
type Spacing struct {
	X, Y int
}

// Validate reports spacings DrawGrid cannot honour.
func (spacing Spacing) Validate() error {
	if spacing.X <= 0 || spacing.Y <= 0 {
		return fmt.Errorf("grid spacing must be positive, got %dx%d", spacing.X, spacing.Y)
	}
	return nil
}

// DrawGrid draws a vertical line at every multiple of spacing.X and a
// horizontal line at every multiple of spacing.Y across the whole surface.
// It panics on a spacing that fails Validate.
func DrawGrid(surface *Surface, color Color, spacing Spacing) {
	if err := spacing.Validate(); err != nil {
		panic(err)
	}
	if surface.width == 0 || surface.height == 0 {
		return
	}

	right, bottom := surface.width-1, surface.height-1
	for x := 0; x < surface.width; x += spacing.X {
		surface.DrawLine(x, 0, x, bottom, color)
	}
	for y := 0; y < surface.height; y += spacing.Y {
		surface.DrawLine(0, y, right, y, color)
	}
}
