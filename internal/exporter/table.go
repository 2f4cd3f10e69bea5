package exporter

import (
	"fmt"
	"io"

	"github.com/mattn/go-runewidth"

	"stylans/internal/categorizer"
)

// ExportTable writes slices as a box-drawing table: index, display width,
// style summary and quoted text.
func ExportTable(slices []categorizer.Slice, writer io.Writer) error {
	fmt.Fprintln(writer, "┌───────┬───────┬──────────────────────────────────────────┬──────────────────────────────────────────┐")
	fmt.Fprintf(writer, "│ %-5s │ %-5s │ %-40s │ %-40s │\n", "Slice", "Width", "Style", "Text")
	fmt.Fprintln(writer, "├───────┼───────┼──────────────────────────────────────────┼──────────────────────────────────────────┤")

	for i, s := range slices {
		fmt.Fprintf(writer, "│ %-5d │ %-5d │ %-40s │ %-40s │\n",
			i, s.Width(),
			truncate(s.Style.String(), 40),
			truncate(fmt.Sprintf("%q", s.Text), 40))
	}

	fmt.Fprintln(writer, "└───────┴───────┴──────────────────────────────────────────┴──────────────────────────────────────────┘")
	return nil
}

// truncate shortens s to max display cells, appending "..." when cut.
func truncate(s string, max int) string {
	if runewidth.StringWidth(s) <= max {
		return s
	}
	return runewidth.Truncate(s, max, "...")
}
