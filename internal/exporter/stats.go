package exporter

import (
	"fmt"
	"sort"

	"stylans/internal/categorizer"
	"stylans/internal/types"
)

// Stats summarizes one categorization run.
type Stats struct {
	Slices      int            `json:"slices"`
	Lines       int            `json:"lines"`
	TextLength  int            `json:"text_length"`
	Effects     map[string]int `json:"effects,omitempty"`
	ColorModels map[string]int `json:"color_models,omitempty"`
}

// CollectStats counts slices, line fragments, visible bytes, effect usage
// and color-model usage over the given slices.
func CollectStats(slices []categorizer.Slice) Stats {
	stats := Stats{
		Slices:      len(slices),
		Lines:       len(categorizer.SplitLines(slices)),
		Effects:     make(map[string]int),
		ColorModels: make(map[string]int),
	}

	for _, s := range slices {
		stats.TextLength += len(s.Text)

		for _, name := range effectNames(s.Style) {
			stats.Effects[name]++
		}
		countColorModel(stats.ColorModels, "fg", s.Style.Fg)
		countColorModel(stats.ColorModels, "bg", s.Style.Bg)
		countColorModel(stats.ColorModels, "ul", s.Style.Ul)
	}

	return stats
}

func countColorModel(counts map[string]int, field string, c types.Color) {
	switch c.Type {
	case types.ColorAnsi:
		counts[field+":ansi"]++
	case types.ColorIndexed:
		counts[field+":indexed"]++
	case types.ColorRGB:
		counts[field+":rgb"]++
	}
}

// DisplayStats prints the statistics in descending count order.
func DisplayStats(stats Stats) {
	fmt.Println("=== Slice Statistics ===")
	fmt.Printf("  Slices: %d\n", stats.Slices)
	fmt.Printf("  Lines: %d\n", stats.Lines)
	fmt.Printf("  Visible text: %d bytes\n", stats.TextLength)

	if len(stats.Effects) > 0 {
		fmt.Println("\n--- Effects")
		displayCounts(stats.Effects)
	}

	if len(stats.ColorModels) > 0 {
		fmt.Println("\n--- Color Models")
		displayCounts(stats.ColorModels)
	}
}

func displayCounts(counts map[string]int) {
	type entry struct {
		Name  string
		Count int
	}

	entries := make([]entry, 0, len(counts))
	for name, count := range counts {
		entries = append(entries, entry{name, count})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Name < entries[j].Name
	})

	for _, e := range entries {
		fmt.Printf("  %-20s: %5d\n", e.Name, e.Count)
	}
}
