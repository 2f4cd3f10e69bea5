package types

// Sources :
// - https://wezterm.org/escape-sequences.html#graphic-rendition-sgr
// - https://invisible-island.net/xterm/ctlseqs/ctlseqs.html
// - https://ecma-international.org/wp-content/uploads/ECMA-48_5th_edition_june_1991.pdf

import (
	"fmt"
	"strconv"
	"strings"

	"stylans/internal/params"
)

/////////////////////////////////////////////////////////////////////////////
// COLOR
/////////////////////////////////////////////////////////////////////////////

type ColorType int

const (
	ColorDefault ColorType = iota
	ColorAnsi              // 0-15 (codes 30-37, 90-97, 40-47, 100-107)
	ColorIndexed           // 0-255 (ESC[38;5;n)
	ColorRGB               // RGB (ESC[38;2;r;g;b)
)

type Color struct {
	Type    ColorType
	Index   uint8
	R, G, B uint8
}

// Ansi returns one of the 16 standard palette colors.
func Ansi(index uint8) Color {
	return Color{Type: ColorAnsi, Index: index}
}

// Ansi256 returns an indexed color from the 256-color palette.
func Ansi256(index uint8) Color {
	return Color{Type: ColorIndexed, Index: index}
}

// RGB returns a 24-bit true color.
func RGB(r, g, b uint8) Color {
	return Color{Type: ColorRGB, R: r, G: g, B: b}
}

func (c Color) IsDefault() bool {
	return c.Type == ColorDefault
}

func (c Color) String() string {
	switch c.Type {
	case ColorDefault:
		return "default"
	case ColorAnsi:
		return fmt.Sprintf("ansi:%d", c.Index)
	case ColorIndexed:
		return fmt.Sprintf("idx:%d", c.Index)
	case ColorRGB:
		return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B)
	}
	return "unknown"
}

// VGA Palette with exact VGA hardware color values, used as the reference
// values for the first 16 entries of the 256-color palette.
var VGAPalette = [16][3]uint8{
	{0x00, 0x00, 0x00}, // 0: Black
	{0xAA, 0x00, 0x00}, // 1: Red
	{0x00, 0xAA, 0x00}, // 2: Green
	{0xAA, 0x55, 0x00}, // 3: Yellow/Brown
	{0x00, 0x00, 0xAA}, // 4: Blue
	{0xAA, 0x00, 0xAA}, // 5: Magenta
	{0x00, 0xAA, 0xAA}, // 6: Cyan
	{0xAA, 0xAA, 0xAA}, // 7: White/Light Gray
	{0x55, 0x55, 0x55}, // 8: Bright Black (Dark Gray)
	{0xFF, 0x55, 0x55}, // 9: Bright Red
	{0x55, 0xFF, 0x55}, // 10: Bright Green
	{0xFF, 0xFF, 0x55}, // 11: Bright Yellow
	{0x55, 0x55, 0xFF}, // 12: Bright Blue
	{0xFF, 0x55, 0xFF}, // 13: Bright Magenta
	{0x55, 0xFF, 0xFF}, // 14: Bright Cyan
	{0xFF, 0xFF, 0xFF}, // 15: Bright White
}

/////////////////////////////////////////////////////////////////////////////
// STYLE
/////////////////////////////////////////////////////////////////////////////

// Style holds the graphic rendition in effect at one point of a text stream:
// foreground, background and underline colors plus the effect flags. The
// zero value is the default style. Callers own their Style values; nothing
// here keeps hidden state between calls.
type Style struct {
	Fg Color
	Bg Color
	Ul Color // underline color (ESC[58...m), independent of the Underline flag

	Bold          bool
	Faint         bool
	Italic        bool
	Underline     bool
	Blink         bool
	Reverse       bool
	Hidden        bool
	Strikethrough bool
}

func (s *Style) Reset() {
	*s = Style{}
}

func (s Style) IsDefault() bool {
	return s == Style{}
}

// String returns a canonical, order-independent debug form: the three color
// fields followed by only the effect flags that are set.
func (s Style) String() string {
	parts := []string{
		"fg:" + s.Fg.String(),
		"bg:" + s.Bg.String(),
		"ul:" + s.Ul.String(),
	}

	if s.Bold {
		parts = append(parts, "bold")
	}
	if s.Faint {
		parts = append(parts, "faint")
	}
	if s.Italic {
		parts = append(parts, "italic")
	}
	if s.Underline {
		parts = append(parts, "underline")
	}
	if s.Blink {
		parts = append(parts, "blink")
	}
	if s.Reverse {
		parts = append(parts, "reverse")
	}
	if s.Hidden {
		parts = append(parts, "hidden")
	}
	if s.Strikethrough {
		parts = append(parts, "strikethrough")
	}

	return strings.Join(parts, ", ")
}

/////////////////////////////////////////////////////////////////////////////
// SGR INTERPRETER
/////////////////////////////////////////////////////////////////////////////

// ApplyParams folds the parameter groups of one completed CSI...m sequence
// into the style. An empty parameter list is a full reset. Unknown codes and
// malformed extended-color sequences are skipped and interpretation continues
// with the remaining groups.
func (s *Style) ApplyParams(p *params.Parameters) {
	if p.Len() == 0 {
		s.Reset()
		return
	}

	groups := p.Groups()
	for {
		group, ok := groups.Next()
		if !ok {
			return
		}

		switch group[0] {
		case 0:
			s.Reset()

		case 1:
			s.Bold = true
		case 2:
			s.Faint = true
		case 3:
			s.Italic = true
		case 4:
			s.Underline = true
		case 5:
			s.Blink = true
		case 7:
			s.Reverse = true
		case 8:
			s.Hidden = true
		case 9:
			s.Strikethrough = true

		case 22:
			s.Bold = false
			s.Faint = false
		case 23:
			s.Italic = false
		case 24:
			s.Underline = false
		case 25:
			s.Blink = false
		case 27:
			s.Reverse = false
		case 28:
			s.Hidden = false
		case 29:
			s.Strikethrough = false

		case 30, 31, 32, 33, 34, 35, 36, 37:
			s.Fg = Ansi(uint8(group[0] - 30))
		case 38: // foreground extended
			applyExtendedColor(&s.Fg, group, &groups)
		case 39:
			s.Fg = Color{}

		case 40, 41, 42, 43, 44, 45, 46, 47:
			s.Bg = Ansi(uint8(group[0] - 40))
		case 48: // background extended
			applyExtendedColor(&s.Bg, group, &groups)
		case 49:
			s.Bg = Color{}

		case 58: // underline extended
			applyExtendedColor(&s.Ul, group, &groups)
		case 59:
			s.Ul = Color{}

		case 90, 91, 92, 93, 94, 95, 96, 97:
			s.Fg = Ansi(uint8(group[0] - 90 + 8))
		case 100, 101, 102, 103, 104, 105, 106, 107:
			s.Bg = Ansi(uint8(group[0] - 100 + 8))
		}
	}
}

// applyExtendedColor handles the 38/48/58 forms. The colon variant carries
// selector and components as subparameters of the introducer group; the
// semicolon variant spreads them over the following groups, which are
// consumed from the cursor. Both normalize to the same Color. A missing or
// unknown selector, missing components or a component above 255 leaves the
// target unchanged.
func applyExtendedColor(target *Color, group []uint16, groups *params.Cursor) {
	if len(group) > 1 {
		switch group[1] {
		case 5:
			if len(group) > 2 && group[2] <= 255 {
				*target = Ansi256(uint8(group[2]))
			}
		case 2:
			if len(group) > 4 && group[2] <= 255 && group[3] <= 255 && group[4] <= 255 {
				*target = RGB(uint8(group[2]), uint8(group[3]), uint8(group[4]))
			}
		}
		return
	}

	selector, ok := groups.Next()
	if !ok {
		return
	}

	switch selector[0] {
	case 5:
		index, ok := groups.Next()
		if ok && index[0] <= 255 {
			*target = Ansi256(uint8(index[0]))
		}
	case 2:
		r, okR := groups.Next()
		g, okG := groups.Next()
		b, okB := groups.Next()
		if okR && okG && okB && r[0] <= 255 && g[0] <= 255 && b[0] <= 255 {
			*target = RGB(uint8(r[0]), uint8(g[0]), uint8(b[0]))
		}
	}
}

/////////////////////////////////////////////////////////////////////////////
// RENDER
/////////////////////////////////////////////////////////////////////////////

// ToANSI renders the escape sequence selecting exactly the attributes set on
// the style. The code order is fixed: foreground, background, underline
// color, then effect codes 1,2,3,4,5,7,8,9. Numeric values carry no leading
// zeros. The default style renders as the empty string.
func (s Style) ToANSI() string {
	codes := s.toCodes()
	if len(codes) == 0 {
		return ""
	}
	return "\x1b[" + joinCodes(codes) + "m"
}

// ResetANSI returns the full reset sequence when the style differs from
// default, and the empty string otherwise.
func (s Style) ResetANSI() string {
	if s.IsDefault() {
		return ""
	}
	return "\x1b[0m"
}

func (s Style) toCodes() []int {
	var codes []int

	if !s.Fg.IsDefault() {
		codes = append(codes, fgCodes(s.Fg)...)
	}
	if !s.Bg.IsDefault() {
		codes = append(codes, bgCodes(s.Bg)...)
	}
	if !s.Ul.IsDefault() {
		codes = append(codes, ulCodes(s.Ul)...)
	}

	if s.Bold {
		codes = append(codes, 1)
	}
	if s.Faint {
		codes = append(codes, 2)
	}
	if s.Italic {
		codes = append(codes, 3)
	}
	if s.Underline {
		codes = append(codes, 4)
	}
	if s.Blink {
		codes = append(codes, 5)
	}
	if s.Reverse {
		codes = append(codes, 7)
	}
	if s.Hidden {
		codes = append(codes, 8)
	}
	if s.Strikethrough {
		codes = append(codes, 9)
	}

	return codes
}

func fgCodes(c Color) []int {
	switch c.Type {
	case ColorAnsi:
		if c.Index < 8 {
			return []int{30 + int(c.Index)}
		}
		return []int{90 + int(c.Index) - 8}
	case ColorIndexed:
		return []int{38, 5, int(c.Index)}
	case ColorRGB:
		return []int{38, 2, int(c.R), int(c.G), int(c.B)}
	}
	return nil
}

func bgCodes(c Color) []int {
	switch c.Type {
	case ColorAnsi:
		if c.Index < 8 {
			return []int{40 + int(c.Index)}
		}
		return []int{100 + int(c.Index) - 8}
	case ColorIndexed:
		return []int{48, 5, int(c.Index)}
	case ColorRGB:
		return []int{48, 2, int(c.R), int(c.G), int(c.B)}
	}
	return nil
}

// ulCodes renders underline colors. There is no short form for them, so
// standard palette indexes go through the indexed variant.
func ulCodes(c Color) []int {
	switch c.Type {
	case ColorAnsi, ColorIndexed:
		return []int{58, 5, int(c.Index)}
	case ColorRGB:
		return []int{58, 2, int(c.R), int(c.G), int(c.B)}
	}
	return nil
}

func joinCodes(codes []int) string {
	parts := make([]string, 0, len(codes))
	for _, code := range codes {
		parts = append(parts, strconv.Itoa(code))
	}
	return strings.Join(parts, ";")
}

/////////////////////////////////////////////////////////////////////////////
// DIFFERENTIAL SGR ENCODING
/////////////////////////////////////////////////////////////////////////////

// Diff returns the minimal SGR codes transitioning from previous to the
// current style, using the per-attribute OFF codes (22, 23, 24, 25, 27, 28,
// 29, 39, 49, 59). Equal styles yield nil; a transition back to the default
// style yields a single 0. Code order matches ToANSI.
func (s Style) Diff(previous Style) []int {
	if s == previous {
		return nil
	}
	if s.IsDefault() {
		return []int{0}
	}

	var codes []int

	if s.Fg != previous.Fg {
		if s.Fg.IsDefault() {
			codes = append(codes, 39)
		} else {
			codes = append(codes, fgCodes(s.Fg)...)
		}
	}
	if s.Bg != previous.Bg {
		if s.Bg.IsDefault() {
			codes = append(codes, 49)
		} else {
			codes = append(codes, bgCodes(s.Bg)...)
		}
	}
	if s.Ul != previous.Ul {
		if s.Ul.IsDefault() {
			codes = append(codes, 59)
		} else {
			codes = append(codes, ulCodes(s.Ul)...)
		}
	}

	// 22 clears both intensity flags, so re-add whichever survives.
	if s.Bold != previous.Bold || s.Faint != previous.Faint {
		if (previous.Bold && !s.Bold) || (previous.Faint && !s.Faint) {
			codes = append(codes, 22)
			if s.Bold {
				codes = append(codes, 1)
			}
			if s.Faint {
				codes = append(codes, 2)
			}
		} else {
			if s.Bold && !previous.Bold {
				codes = append(codes, 1)
			}
			if s.Faint && !previous.Faint {
				codes = append(codes, 2)
			}
		}
	}

	if s.Italic != previous.Italic {
		codes = append(codes, onOff(s.Italic, 3, 23))
	}
	if s.Underline != previous.Underline {
		codes = append(codes, onOff(s.Underline, 4, 24))
	}
	if s.Blink != previous.Blink {
		codes = append(codes, onOff(s.Blink, 5, 25))
	}
	if s.Reverse != previous.Reverse {
		codes = append(codes, onOff(s.Reverse, 7, 27))
	}
	if s.Hidden != previous.Hidden {
		codes = append(codes, onOff(s.Hidden, 8, 28))
	}
	if s.Strikethrough != previous.Strikethrough {
		codes = append(codes, onOff(s.Strikethrough, 9, 29))
	}

	return codes
}

func onOff(set bool, on, off int) int {
	if set {
		return on
	}
	return off
}

// DiffANSI renders Diff as an escape sequence, or "" when nothing changed.
func (s Style) DiffANSI(previous Style) string {
	codes := s.Diff(previous)
	if len(codes) == 0 {
		return ""
	}
	return "\x1b[" + joinCodes(codes) + "m"
}
