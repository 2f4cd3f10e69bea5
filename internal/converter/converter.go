package converter

import (
	"github.com/gdamore/tcell/v2"

	"stylans/internal/categorizer"
	"stylans/internal/types"
)

// Span is one styled run in the shape the tcell-based renderer consumes.
type Span struct {
	Text  string
	Style tcell.Style
}

// ToSpans maps categorized slices onto tcell spans in document order. The
// mapping is pure data reshaping: no parsing, no new styling semantics.
func ToSpans(slices []categorizer.Slice) []Span {
	spans := make([]Span, 0, len(slices))
	for _, s := range slices {
		spans = append(spans, Span{Text: s.Text, Style: ToTcellStyle(s.Style)})
	}
	return spans
}

// ToSpans256 is ToSpans for terminals without true-color support: RGB values
// are quantized to the 256-color palette first.
func ToSpans256(slices []categorizer.Slice) []Span {
	spans := make([]Span, 0, len(slices))
	for _, s := range slices {
		spans = append(spans, Span{Text: s.Text, Style: ToTcellStyle(Quantize256Style(s.Style))})
	}
	return spans
}

// ToTcellStyle maps a style onto tcell's style model.
func ToTcellStyle(s types.Style) tcell.Style {
	style := tcell.StyleDefault

	if !s.Fg.IsDefault() {
		style = style.Foreground(toTcellColor(s.Fg))
	}
	if !s.Bg.IsDefault() {
		style = style.Background(toTcellColor(s.Bg))
	}

	if !s.Ul.IsDefault() {
		style = style.Underline(s.Underline, toTcellColor(s.Ul))
	} else if s.Underline {
		style = style.Underline(true)
	}

	if s.Bold {
		style = style.Bold(true)
	}
	if s.Faint {
		style = style.Dim(true)
	}
	if s.Italic {
		style = style.Italic(true)
	}
	if s.Blink {
		style = style.Blink(true)
	}
	if s.Reverse {
		style = style.Reverse(true)
	}
	if s.Strikethrough {
		style = style.StrikeThrough(true)
	}
	// tcell has no concealed attribute; Hidden does not survive conversion

	return style
}

func toTcellColor(c types.Color) tcell.Color {
	switch c.Type {
	case types.ColorAnsi, types.ColorIndexed:
		return tcell.PaletteColor(int(c.Index))
	case types.ColorRGB:
		return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
	}
	return tcell.ColorDefault
}
