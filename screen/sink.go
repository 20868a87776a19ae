package screen

import (
	"errors"
	"image"
	"math"

	"github.com/faiface/pixel"
	"github.com/faiface/pixel/pixelgl"
	"github.com/they4kman/xox/render"
	"golang.org/x/image/colornames"
)

var ErrWindowClosed = errors.New("window is closed")

// windowSink presents frames into a pixelgl window, scaled up and centred.
// Frames are uploaded into one canvas texture, recreated only when the frame
// size changes.
type windowSink struct {
	win   *pixelgl.Window
	scale float64

	width, height int // logical size of the last resize

	canvas *pixelgl.Canvas
	pixels []byte
}

func (sink *windowSink) Present(frame *image.RGBA) error {
	if sink.win.Closed() {
		return ErrWindowClosed
	}

	sink.win.Clear(colornames.Black)
	if !frame.Rect.Empty() {
		bounds := pixel.R(0, 0, float64(frame.Rect.Dx()), float64(frame.Rect.Dy()))
		if sink.canvas == nil {
			sink.canvas = pixelgl.NewCanvas(bounds)
		} else if sink.canvas.Bounds() != bounds {
			sink.canvas.SetBounds(bounds)
		}

		sink.pixels = render.BottomUp(sink.pixels, frame)
		sink.canvas.SetPixels(sink.pixels)
		sink.canvas.Draw(sink.win, pixel.IM.Scaled(pixel.ZV, sink.scale).Moved(sink.win.Bounds().Center()))
	}
	sink.win.Update()

	return nil
}

func (sink *windowSink) Resize(width, height int) error {
	if sink.win.Closed() {
		return ErrWindowClosed
	}
	sink.width, sink.height = width, height
	return nil
}

// logicalSize is the surface size that fits the window at the sink's scale.
func (sink *windowSink) logicalSize() (int, int) {
	bounds := sink.win.Bounds()
	return int(bounds.W() / sink.scale), int(bounds.H() / sink.scale)
}

// toSurface converts a window position (origin bottom-left) to surface pixel
// coordinates (origin top-left).
func (sink *windowSink) toSurface(pos pixel.Vec) (int, int) {
	center := sink.win.Bounds().Center()
	left := center.X - float64(sink.width)*sink.scale/2
	top := center.Y + float64(sink.height)*sink.scale/2

	x := math.Floor((pos.X - left) / sink.scale)
	y := math.Floor((top - pos.Y) / sink.scale)
	return int(x), int(y)
}
