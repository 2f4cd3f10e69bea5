package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"golang.org/x/term"

	"stylans/internal/categorizer"
	"stylans/internal/converter"
	"stylans/internal/exporter"
	"stylans/pkg/stylans"
)

var cli struct {
	File string `arg:"" optional:"" help:"ANSI text file to read. Reads from stdin when omitted."`

	Encoding string `help:"Input encoding." enum:"utf8,cp437,cp850,iso-8859-1" default:"utf8"`

	JSON      bool `short:"j" help:"Display slices in JSON format."`
	Table     bool `short:"t" help:"Display slices in table format."`
	Stats     bool `short:"s" help:"Display slice and style usage statistics."`
	Strip     bool `help:"Display plain text with escape sequences removed."`
	Normalize bool `help:"Re-emit the input as a minimal escape stream."`

	Preview bool `help:"Render through a simulated terminal and print its contents."`
	Width   int  `help:"Simulated terminal width." default:"80"`
	Height  int  `help:"Simulated terminal height." default:"25"`

	Colors string `help:"Color depth for styled output." enum:"truecolor,256" default:"truecolor"`
	Color  string `help:"When to emit styled output." enum:"auto,always,never" default:"auto"`

	Debug bool `short:"d" help:"Print each slice and its style to stderr."`
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("stylans"),
		kong.Description("Split ANSI styled text into style-tagged slices."),
		kong.UsageOnError(),
	)

	data, err := readInput()
	ctx.FatalIfErrorf(err)

	utf8Data, err := stylans.ConvertToUTF8(data, cli.Encoding)
	ctx.FatalIfErrorf(err)

	slices := categorizer.Categorise(string(utf8Data))

	if cli.Debug {
		for i, s := range slices {
			fmt.Fprintf(os.Stderr, "slice %d: %q style=%s\n", i, s.Text, s.Style)
		}
	}

	if cli.Colors == "256" {
		for i := range slices {
			slices[i].Style = converter.Quantize256Style(slices[i].Style)
		}
	}

	switch {
	case cli.JSON:
		output, err := exporter.ExportJSON(slices)
		ctx.FatalIfErrorf(err)
		fmt.Println(output)

	case cli.Table:
		err := exporter.ExportTable(slices, os.Stdout)
		ctx.FatalIfErrorf(err)

	case cli.Stats:
		exporter.DisplayStats(exporter.CollectStats(slices))

	case cli.Strip:
		fmt.Print(categorizer.TextNoCodes(slices))

	case cli.Normalize:
		fmt.Print(exporter.ExportANSI(slices))

	case cli.Preview:
		err := preview(slices)
		ctx.FatalIfErrorf(err)

	default:
		if colorize() {
			fmt.Print(exporter.ExportANSI(slices))
		} else {
			fmt.Print(categorizer.TextNoCodes(slices))
		}
	}
}

// readInput reads the input file, or stdin when no file was given and
// stdin is a pipe.
func readInput() ([]byte, error) {
	if cli.File != "" {
		data, err := os.ReadFile(cli.File)
		if err != nil {
			return nil, fmt.Errorf("reading file: %w", err)
		}
		return data, nil
	}

	stat, err := os.Stdin.Stat()
	if err != nil {
		return nil, fmt.Errorf("checking stdin: %w", err)
	}
	if (stat.Mode() & os.ModeCharDevice) != 0 {
		return nil, fmt.Errorf("no input file and stdin is not a pipe")
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, fmt.Errorf("reading stdin: %w", err)
	}
	return data, nil
}

// colorize decides whether default output keeps its escape sequences.
func colorize() bool {
	switch cli.Color {
	case "always":
		return true
	case "never":
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// preview renders the slices through a simulated terminal and prints
// the visible character grid.
func preview(slices []categorizer.Slice) error {
	screen, err := exporter.NewScreen(cli.Width, cli.Height)
	if err != nil {
		return fmt.Errorf("creating preview screen: %w", err)
	}
	defer screen.Close()

	screen.DrawSpans(converter.ToSpans(slices))
	fmt.Println(screen.PlainText())
	return nil
}
