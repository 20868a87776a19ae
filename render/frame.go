package render

// Frame is the set of draw commands for one frame, applied in order:
// clear, lines, then the grid overlay.
type Frame struct {
	Clear Color
	Lines []Line

	// Grid is skipped when nil.
	Grid      *Spacing
	GridColor Color
}

// Render overwrites the surface with frame.
func (surface *Surface) Render(frame Frame) {
	surface.Clear(frame.Clear)
	for _, line := range frame.Lines {
		surface.drawLine(line)
	}
	if frame.Grid != nil {
		DrawGrid(surface, frame.GridColor, *frame.Grid)
	}
}
