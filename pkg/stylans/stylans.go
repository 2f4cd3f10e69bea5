// Package stylans provides a public API for splitting ANSI-styled text into
// style-tagged slices and rendering styles back to escape bytes.
//
// This package provides functions to:
//   - Categorise text containing SGR escape sequences into (text, style) slices
//   - Reconstruct plain text or a normalized minimal escape stream
//   - Convert between character encodings (CP437, CP850, ISO-8859-1, UTF-8)
//   - Convert slices to tcell spans for terminal UIs
//
// Example usage:
//
//	data, _ := os.ReadFile("capture.log")
//	utf8Data, _ := stylans.ConvertToUTF8(data, "cp437")
//	slices := stylans.Categorise(string(utf8Data))
//	plain := stylans.TextNoCodes(slices)
package stylans

import (
	"bytes"
	"fmt"
	"io"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"stylans/internal/categorizer"
	"stylans/internal/converter"
	"stylans/internal/exporter"
	"stylans/internal/params"
	"stylans/internal/types"
)

// Type aliases for public API
type (
	// Style holds the graphic rendition in effect at one point of the text
	Style = types.Style

	// Color represents a color (standard, indexed, or RGB)
	Color = types.Color

	// ColorType represents the type of color encoding
	ColorType = types.ColorType

	// Parameters is the fixed-capacity parameter list of one CSI sequence
	Parameters = params.Parameters

	// Slice is a run of visible text tagged with its style
	Slice = categorizer.Slice

	// Match is the byte range of one recognized SGR sequence
	Match = categorizer.Match

	// Span is a styled run in the shape a tcell consumer expects
	Span = converter.Span

	// Stats summarizes one categorization run
	Stats = exporter.Stats
)

// Color type constants
const (
	ColorDefault = types.ColorDefault
	ColorAnsi    = types.ColorAnsi
	ColorIndexed = types.ColorIndexed
	ColorRGB     = types.ColorRGB
)

// VGAPalette contains the 16 standard VGA colors
var VGAPalette = types.VGAPalette

// Ansi returns one of the 16 standard palette colors.
func Ansi(index uint8) Color {
	return types.Ansi(index)
}

// Ansi256 returns an indexed color from the 256-color palette.
func Ansi256(index uint8) Color {
	return types.Ansi256(index)
}

// RGB returns a 24-bit true color.
func RGB(r, g, b uint8) Color {
	return types.RGB(r, g, b)
}

// Categorise splits text into style-tagged slices. Concatenating the slice
// texts in order yields the input with every matched SGR sequence removed.
func Categorise(text string) []Slice {
	return categorizer.Categorise(text)
}

// Parse returns the byte ranges of every well-formed SGR sequence in text.
func Parse(text string) []Match {
	return categorizer.Parse(text)
}

// TextNoCodes concatenates the slice texts into escape-free plain text.
func TextNoCodes(slices []Slice) string {
	return categorizer.TextNoCodes(slices)
}

// SplitLines re-splits slices at newline boundaries, propagating styles.
func SplitLines(slices []Slice) []Slice {
	return categorizer.SplitLines(slices)
}

// Strip removes every well-formed SGR sequence from s, leaving all other
// bytes untouched.
func Strip(s string) string {
	return categorizer.TextNoCodes(categorizer.Categorise(s))
}

// Normalize re-emits s as a minimal escape stream with a trailing reset.
func Normalize(s string) string {
	return exporter.ExportANSI(categorizer.Categorise(s))
}

// ToSpans converts slices to tcell spans.
func ToSpans(slices []Slice) []Span {
	return converter.ToSpans(slices)
}

// ToSpans256 converts slices to tcell spans, quantizing RGB colors to the
// 256-color palette.
func ToSpans256(slices []Slice) []Span {
	return converter.ToSpans256(slices)
}

// CollectStats summarizes a categorization run.
func CollectStats(slices []Slice) Stats {
	return exporter.CollectStats(slices)
}

// UTF-8 BOM (Byte Order Mark) sequence
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// stripUTF8BOM removes the UTF-8 BOM if present at the beginning of the data
func stripUTF8BOM(data []byte) []byte {
	if len(data) >= 3 && bytes.Equal(data[:3], utf8BOM) {
		return data[3:]
	}
	return data
}

// ConvertToUTF8 converts byte data from a source encoding to UTF-8.
// Supported encodings: "utf8", "cp437", "cp850", "iso-8859-1"
// The UTF-8 BOM (Byte Order Mark) is automatically stripped if present.
func ConvertToUTF8(data []byte, sourceEncoding string) ([]byte, error) {
	if sourceEncoding == "utf8" {
		return stripUTF8BOM(data), nil
	}

	cm, err := charmapFor(sourceEncoding)
	if err != nil {
		return nil, err
	}

	reader := transform.NewReader(bytes.NewReader(data), cm.NewDecoder())
	utf8Data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("encoding conversion error: %w", err)
	}

	// Strip BOM if present after conversion
	return stripUTF8BOM(utf8Data), nil
}

// ConvertToEncoding converts UTF-8 data to the target encoding.
// Supported encodings: "utf8", "cp437", "cp850", "iso-8859-1"
func ConvertToEncoding(data []byte, targetEncoding string) ([]byte, error) {
	if targetEncoding == "utf8" {
		return data, nil
	}

	cm, err := charmapFor(targetEncoding)
	if err != nil {
		return nil, err
	}

	reader := transform.NewReader(bytes.NewReader(data), cm.NewEncoder())
	encodedData, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("encoding conversion error: %w", err)
	}

	return encodedData, nil
}

func charmapFor(name string) (*charmap.Charmap, error) {
	switch name {
	case "cp437":
		return charmap.CodePage437, nil
	case "cp850":
		return charmap.CodePage850, nil
	case "iso-8859-1":
		return charmap.ISO8859_1, nil
	}
	return nil, fmt.Errorf("unsupported encoding: %s", name)
}
