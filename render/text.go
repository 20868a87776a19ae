package render

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// TextHeight is the line height of DrawText's face, in pixels.
const TextHeight = 13

// DrawText draws s with its top-left corner at (x, y). Glyphs are clipped at
// the surface edges.
func DrawText(surface *Surface, x, y int, s string, color Color) {
	face := basicfont.Face7x13
	drawer := font.Drawer{
		Dst:  surface.Image(),
		Src:  image.NewUniform(color),
		Face: face,
		Dot:  fixed.P(x, y+face.Ascent),
	}
	drawer.DrawString(s)
}

// TextWidth is the advance of s in pixels.
func TextWidth(s string) int {
	return font.MeasureString(basicfont.Face7x13, s).Ceil()
}
