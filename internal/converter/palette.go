package converter

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"

	"stylans/internal/types"
)

// palette256 holds the xterm 256-color palette: the 16 VGA entries, the
// 6x6x6 color cube, then the 24-step grayscale ramp.
var palette256 [256]colorful.Color

func init() {
	for i := 0; i < 16; i++ {
		rgb := types.VGAPalette[i]
		palette256[i] = toColorful(rgb[0], rgb[1], rgb[2])
	}

	levels := [6]uint8{0, 95, 135, 175, 215, 255}
	for i := 16; i < 232; i++ {
		n := i - 16
		palette256[i] = toColorful(levels[n/36], levels[n/6%6], levels[n%6])
	}

	for i := 232; i < 256; i++ {
		v := uint8(8 + 10*(i-232))
		palette256[i] = toColorful(v, v, v)
	}
}

func toColorful(r, g, b uint8) colorful.Color {
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

// Quantize256 maps an RGB color onto the nearest entry of the 256-color
// palette by Lab distance. Ties keep the lowest index. Non-RGB colors pass
// through unchanged.
func Quantize256(c types.Color) types.Color {
	if c.Type != types.ColorRGB {
		return c
	}

	target := toColorful(c.R, c.G, c.B)
	best := 0
	bestDist := math.MaxFloat64
	for i, entry := range palette256 {
		if d := target.DistanceLab(entry); d < bestDist {
			best, bestDist = i, d
		}
	}

	return types.Ansi256(uint8(best))
}

// Quantize256Style downconverts every RGB color field of a style.
func Quantize256Style(s types.Style) types.Style {
	s.Fg = Quantize256(s.Fg)
	s.Bg = Quantize256(s.Bg)
	s.Ul = Quantize256(s.Ul)
	return s
}
