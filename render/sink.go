package render

import (
	"image"
	"image/png"
	"io"
)

// Presenter is the display boundary a Surface flushes into.
type Presenter interface {
	Present(frame *image.RGBA) error
	Resize(width, height int) error
}

type discardSink struct{}

func (discardSink) Present(*image.RGBA) error { return nil }
func (discardSink) Resize(int, int) error     { return nil }

// PNGSink encodes every presented frame as a PNG into W.
type PNGSink struct {
	W io.Writer

	Frames int
}

func (sink *PNGSink) Present(frame *image.RGBA) error {
	if err := png.Encode(sink.W, frame); err != nil {
		return err
	}
	sink.Frames++
	return nil
}

func (sink *PNGSink) Resize(width, height int) error {
	return nil
}

// BottomUp copies frame's pixels into dst with the rows reversed, as GL
// textures expect. dst is reused when it has the right length.
func BottomUp(dst []byte, frame *image.RGBA) []byte {
	width, height := frame.Rect.Dx(), frame.Rect.Dy()
	rowLen := width * 4
	if len(dst) != rowLen*height {
		dst = make([]byte, rowLen*height)
	}

	for y := 0; y < height; y++ {
		src := frame.Pix[y*frame.Stride : y*frame.Stride+rowLen]
		copy(dst[(height-1-y)*rowLen:], src)
	}
	return dst
}
