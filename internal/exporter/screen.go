package exporter

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"stylans/internal/converter"
)

// Screen previews spans on a tcell simulation screen. Text flows left to
// right and wraps at the screen width; there is no cursor addressing, only
// '\n' and '\r' are honored as line controls.
type Screen struct {
	screen  tcell.SimulationScreen
	width   int
	height  int
	cursorX int
	cursorY int
}

func NewScreen(width, height int) (*Screen, error) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("screen init error: %w", err)
	}
	screen.SetSize(width, height)

	return &Screen{
		screen: screen,
		width:  width,
		height: height,
	}, nil
}

// DrawSpans draws the spans in order from the current cursor position.
func (sc *Screen) DrawSpans(spans []converter.Span) {
	for _, span := range spans {
		sc.drawSpan(span)
	}
	sc.screen.Show()
}

func (sc *Screen) drawSpan(span converter.Span) {
	for _, r := range span.Text {
		if r == '\n' {
			sc.cursorX = 0
			sc.cursorY++
			continue
		}
		if r == '\r' {
			sc.cursorX = 0
			continue
		}

		w := runewidth.RuneWidth(r)
		if w == 0 {
			w = 1
		}
		if sc.cursorX+w > sc.width {
			sc.cursorX = 0
			sc.cursorY++
		}
		if sc.cursorY >= sc.height {
			sc.cursorY = sc.height - 1
		}

		sc.screen.SetContent(sc.cursorX, sc.cursorY, r, nil, span.Style)
		sc.cursorX += w
	}
}

// PlainText returns the visible screen content up to the last occupied row,
// one line per row, trailing blanks trimmed.
func (sc *Screen) PlainText() string {
	var builder strings.Builder

	height := sc.ActualHeight()
	for y := 0; y < height; y++ {
		var line strings.Builder
		for x := 0; x < sc.width; x++ {
			mainc, _, _, _ := sc.screen.GetContent(x, y)
			if mainc == 0 {
				mainc = ' '
			}
			line.WriteRune(mainc)
		}
		builder.WriteString(strings.TrimRight(line.String(), " "))
		if y < height-1 {
			builder.WriteString("\n")
		}
	}

	return builder.String()
}

// ActualWidth returns the rightmost occupied column plus one.
func (sc *Screen) ActualWidth() int {
	maxWidth := 0
	for y := 0; y < sc.height; y++ {
		for x := sc.width - 1; x >= 0; x-- {
			mainc, _, _, _ := sc.screen.GetContent(x, y)
			if mainc != 0 && mainc != ' ' {
				if x+1 > maxWidth {
					maxWidth = x + 1
				}
				break
			}
		}
	}
	return maxWidth
}

// ActualHeight returns the lowest occupied row plus one.
func (sc *Screen) ActualHeight() int {
	for y := sc.height - 1; y >= 0; y-- {
		for x := 0; x < sc.width; x++ {
			mainc, _, _, _ := sc.screen.GetContent(x, y)
			if mainc != 0 && mainc != ' ' {
				return y + 1
			}
		}
	}
	return 0
}

func (sc *Screen) Close() {
	sc.screen.Fini()
}
