package render

// Line is a segment between two integer points.
type Line struct {
	X0, Y0, X1, Y1 int
	Color          Color
}

// DrawLine rasterizes the segment (x0, y0)-(x1, y1) with integer error
// accumulation, one pixel wide and 8-connected. Pixels off the surface are
// clamped to its border.
//
// Ref: http://members.chello.at/~easyfilter/Bresenham.pdf
func (surface *Surface) DrawLine(x0, y0, x1, y1 int, color Color) {
	rgba := Decompose(color)

	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 >= x1 {
		sx = -1
	}
	if y0 >= y1 {
		sy = -1
	}
	err := dx + dy

	x, y := x0, y0
	for {
		surface.SetPixel(x, y, rgba)

		e2 := 2 * err
		if e2 >= dy {
			if x == x1 {
				break
			}
			err += dy
			x += sx
		}
		if e2 <= dx {
			if y == y1 {
				break
			}
			err += dx
			y += sy
		}
	}
}

func (surface *Surface) drawLine(line Line) {
	surface.DrawLine(line.X0, line.Y0, line.X1, line.Y1, line.Color)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
