package render

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// Color packs four 8-bit channels as 0xRRGGBBAA.
type Color uint32

// Decompose splits color into its channel bytes, most significant first.
func Decompose(color Color) [4]byte {
	return [4]byte{
		byte(color >> 24),
		byte(color >> 16),
		byte(color >> 8),
		byte(color),
	}
}

func (c Color) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

func (c Color) NRGBA() color.NRGBA {
	rgba := Decompose(c)
	return color.NRGBA{R: rgba[0], G: rgba[1], B: rgba[2], A: rgba[3]}
}

func (c Color) String() string {
	return fmt.Sprintf("%08x", uint32(c))
}

// FromColor packs any standard library color, un-premultiplying alpha.
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color(uint32(n.R)<<24 | uint32(n.G)<<16 | uint32(n.B)<<8 | uint32(n.A))
}

// ParseColor accepts an SVG color name ("gainsboro") or a hex value in the
// form RRGGBB or RRGGBBAA, optionally prefixed with "#" or "0x".
func ParseColor(s string) (Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if named, ok := colornames.Map[s]; ok {
		return FromColor(named), nil
	}

	hex := strings.TrimPrefix(strings.TrimPrefix(s, "#"), "0x")
	switch len(hex) {
	case 6:
		hex += "ff"
	case 8:
	default:
		return 0, fmt.Errorf("invalid color %q", s)
	}

	value, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return Color(value), nil
}
