package exporter

import (
	"encoding/json"
	"fmt"

	"stylans/internal/categorizer"
	"stylans/internal/types"
)

// SliceRecord is the JSON shape of one categorized slice. Color fields use
// the canonical debug form ("ansi:1", "idx:123", "rgb(1,2,3)") and are
// omitted when default; effects lists only the set flags.
type SliceRecord struct {
	Text    string   `json:"text"`
	Fg      string   `json:"fg,omitempty"`
	Bg      string   `json:"bg,omitempty"`
	Ul      string   `json:"underline,omitempty"`
	Effects []string `json:"effects,omitempty"`
}

func toRecord(s categorizer.Slice) SliceRecord {
	record := SliceRecord{
		Text:    s.Text,
		Effects: effectNames(s.Style),
	}
	if !s.Style.Fg.IsDefault() {
		record.Fg = s.Style.Fg.String()
	}
	if !s.Style.Bg.IsDefault() {
		record.Bg = s.Style.Bg.String()
	}
	if !s.Style.Ul.IsDefault() {
		record.Ul = s.Style.Ul.String()
	}
	return record
}

func effectNames(s types.Style) []string {
	var names []string
	if s.Bold {
		names = append(names, "bold")
	}
	if s.Faint {
		names = append(names, "faint")
	}
	if s.Italic {
		names = append(names, "italic")
	}
	if s.Underline {
		names = append(names, "underline")
	}
	if s.Blink {
		names = append(names, "blink")
	}
	if s.Reverse {
		names = append(names, "reverse")
	}
	if s.Hidden {
		names = append(names, "hidden")
	}
	if s.Strikethrough {
		names = append(names, "strikethrough")
	}
	return names
}

// ExportJSON serializes slices to indented JSON.
func ExportJSON(slices []categorizer.Slice) (string, error) {
	records := make([]SliceRecord, 0, len(slices))
	for _, s := range slices {
		records = append(records, toRecord(s))
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return "", fmt.Errorf("JSON serialization error: %w", err)
	}

	return string(data), nil
}
