package exporter

import (
	"fmt"
	"io"

	"stylans/internal/categorizer"
)

// ExportText returns the plain text of slices, escape sequences removed.
func ExportText(slices []categorizer.Slice) string {
	return categorizer.TextNoCodes(slices)
}

// WriteText writes the plain text of slices to writer.
func WriteText(writer io.Writer, slices []categorizer.Slice) error {
	if _, err := io.WriteString(writer, categorizer.TextNoCodes(slices)); err != nil {
		return fmt.Errorf("error writing text: %w", err)
	}
	return nil
}
