package render

import (
	"fmt"
	"image"
)

// Surface is a software RGBA frame buffer. It is not safe for concurrent use;
// the goroutine driving the render step owns it.
type Surface struct {
	width, height int
	pix           []byte // RGBA, row-major, top-left origin

	sink Presenter
}

// NewSurface allocates a width x height surface presenting to sink. A nil sink
// discards presented frames.
func NewSurface(width, height int, sink Presenter) *Surface {
	if sink == nil {
		sink = discardSink{}
	}
	surface := &Surface{sink: sink}
	surface.alloc(width, height)
	return surface
}

func (surface *Surface) alloc(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	surface.width, surface.height = width, height
	surface.pix = make([]byte, width*height*4)
}

func (surface *Surface) Width() int {
	return surface.width
}

func (surface *Surface) Height() int {
	return surface.height
}

// Pix returns the backing buffer. It is invalidated by Resize.
func (surface *Surface) Pix() []byte {
	return surface.pix
}

// Image wraps the backing buffer without copying. It is invalidated by Resize.
func (surface *Surface) Image() *image.RGBA {
	return &image.RGBA{
		Pix:    surface.pix,
		Stride: surface.width * 4,
		Rect:   image.Rect(0, 0, surface.width, surface.height),
	}
}

// Clear fills every pixel with color.
func (surface *Surface) Clear(color Color) {
	rgba := Decompose(color)
	for i := 0; i < len(surface.pix); i += 4 {
		copy(surface.pix[i:i+4], rgba[:])
	}
}

// SetPixel writes rgba at (x, y). Coordinates outside the surface are clamped
// to the nearest edge pixel.
func (surface *Surface) SetPixel(x, y int, rgba [4]byte) {
	if len(surface.pix) == 0 {
		return
	}
	x = clamp(x, 0, surface.width-1)
	y = clamp(y, 0, surface.height-1)

	idx := (y*surface.width + x) * 4
	copy(surface.pix[idx:idx+4], rgba[:])
}

// PixelAt returns the bytes at (x, y), clamped like SetPixel.
func (surface *Surface) PixelAt(x, y int) [4]byte {
	var rgba [4]byte
	if len(surface.pix) == 0 {
		return rgba
	}
	x = clamp(x, 0, surface.width-1)
	y = clamp(y, 0, surface.height-1)

	idx := (y*surface.width + x) * 4
	copy(rgba[:], surface.pix[idx:idx+4])
	return rgba
}

// Resize reallocates the buffer for the new logical size and tells the sink.
// Previous contents are dropped.
func (surface *Surface) Resize(width, height int) error {
	surface.alloc(width, height)
	if err := surface.sink.Resize(surface.width, surface.height); err != nil {
		return fmt.Errorf("resize surface to %dx%d: %w", surface.width, surface.height, err)
	}
	return nil
}

// Present hands the current frame to the sink. An error here means the
// display is gone and the render loop must stop.
func (surface *Surface) Present() error {
	if err := surface.sink.Present(surface.Image()); err != nil {
		return fmt.Errorf("present frame: %w", err)
	}
	return nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
