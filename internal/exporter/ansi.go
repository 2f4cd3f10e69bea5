package exporter

import (
	"strings"

	"stylans/internal/categorizer"
	"stylans/internal/types"
)

// ExportANSI re-emits slices as a normalized escape stream: each slice is
// prefixed with the minimal codes transitioning from the previous style, and
// a trailing reset is appended when the last style is not default. Feeding
// the output back through the categorizer yields the same slices.
func ExportANSI(slices []categorizer.Slice) string {
	var builder strings.Builder

	var previous types.Style
	for _, s := range slices {
		builder.WriteString(s.Style.DiffANSI(previous))
		builder.WriteString(s.Text)
		previous = s.Style
	}
	builder.WriteString(previous.ResetANSI())

	return builder.String()
}
