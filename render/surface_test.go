package render

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSink struct {
	presented int
	sizes     [][2]int
	err       error
}

func (sink *recordingSink) Present(*image.RGBA) error {
	sink.presented++
	return sink.err
}

func (sink *recordingSink) Resize(width, height int) error {
	sink.sizes = append(sink.sizes, [2]int{width, height})
	return sink.err
}

func TestNewSurface(t *testing.T) {
	surface := NewSurface(320, 240, nil)

	assert.Equal(t, 320, surface.Width())
	assert.Equal(t, 240, surface.Height())
	assert.Len(t, surface.Pix(), 320*240*4)
}

func TestSurface_Clear(t *testing.T) {
	// Given: a fresh surface
	surface := NewSurface(7, 5, nil)

	// When: clearing it
	surface.Clear(0xeeeeeeff)

	// Then: every pixel reads back as the decomposed color
	want := Decompose(0xeeeeeeff)
	for y := 0; y < 5; y++ {
		for x := 0; x < 7; x++ {
			require.Equal(t, want, surface.PixelAt(x, y), "pixel (%d, %d)", x, y)
		}
	}
}

func TestSurface_SetPixel(t *testing.T) {
	red := [4]byte{0xff, 0, 0, 0xff}

	t.Run("writes at the row-major offset", func(t *testing.T) {
		surface := NewSurface(4, 3, nil)

		surface.SetPixel(2, 1, red)

		idx := (1*4 + 2) * 4
		assert.Equal(t, red[:], surface.Pix()[idx:idx+4])
	})

	t.Run("clamps out-of-range coordinates to the edge", func(t *testing.T) {
		surface := NewSurface(4, 3, nil)

		surface.SetPixel(-10, 100, red)
		surface.SetPixel(99, -1, red)

		assert.Equal(t, red, surface.PixelAt(0, 2))
		assert.Equal(t, red, surface.PixelAt(3, 0))
		assert.Equal(t, [4]byte{}, surface.PixelAt(1, 1))
	})

	t.Run("ignores writes on an empty surface", func(t *testing.T) {
		surface := NewSurface(0, 0, nil)

		assert.NotPanics(t, func() { surface.SetPixel(0, 0, red) })
	})
}

func TestSurface_Resize(t *testing.T) {
	// Given: a surface with content
	sink := &recordingSink{}
	surface := NewSurface(4, 4, sink)
	surface.Clear(0xffffffff)

	// When: resizing it
	err := surface.Resize(10, 2)

	// Then: the buffer matches the new size and the sink was told
	require.NoError(t, err)
	assert.Len(t, surface.Pix(), 10*2*4)
	assert.Equal(t, [][2]int{{10, 2}}, sink.sizes)
	assert.Equal(t, [4]byte{}, surface.PixelAt(0, 0))
}

func TestSurface_Present(t *testing.T) {
	t.Run("hands the frame to the sink", func(t *testing.T) {
		sink := &recordingSink{}
		surface := NewSurface(2, 2, sink)

		require.NoError(t, surface.Present())
		assert.Equal(t, 1, sink.presented)
	})

	t.Run("propagates sink failures", func(t *testing.T) {
		errGone := errors.New("display gone")
		surface := NewSurface(2, 2, &recordingSink{err: errGone})

		assert.ErrorIs(t, surface.Present(), errGone)
		assert.ErrorIs(t, surface.Resize(3, 3), errGone)
	})

	t.Run("png sink encodes the buffer", func(t *testing.T) {
		var out bytes.Buffer
		sink := &PNGSink{W: &out}
		surface := NewSurface(3, 2, sink)
		surface.Clear(0x6655bbff)

		require.NoError(t, surface.Present())

		img, err := png.Decode(&out)
		require.NoError(t, err)
		assert.Equal(t, image.Rect(0, 0, 3, 2), img.Bounds())
		assert.Equal(t, FromColor(img.At(2, 1)), Color(0x6655bbff))
		assert.Equal(t, 1, sink.Frames)
	})
}
