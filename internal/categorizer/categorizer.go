package categorizer

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"stylans/internal/params"
	"stylans/internal/types"
)

/////////////////////////////////////////////////////////////////////////////
// SLICE
/////////////////////////////////////////////////////////////////////////////

// Slice is a run of visible text tagged with the style in effect where it
// appeared. Concatenating slice texts in order reproduces the input with
// every matched escape sequence removed.
type Slice struct {
	Text  string
	Style types.Style
}

// Width reports the display width of the slice text in terminal cells.
func (s Slice) Width() int {
	return runewidth.StringWidth(s.Text)
}

// Match is the byte range [Start,End) of one recognized SGR sequence.
type Match struct {
	Start int
	End   int
}

/////////////////////////////////////////////////////////////////////////////
// SCANNER
/////////////////////////////////////////////////////////////////////////////

// Parse returns the byte ranges of every well-formed SGR sequence in text:
// ESC '[' followed only by digits, ';' and ':', terminated by 'm'. Anything
// else, including other CSI finals, is literal text and never matched.
func Parse(text string) []Match {
	matches := make([]Match, 0)

	for i := 0; i+1 < len(text); i++ {
		if text[i] != 0x1B || text[i+1] != '[' {
			continue
		}
		end, ok := scanBody(text, i+2)
		if !ok {
			continue
		}
		matches = append(matches, Match{Start: i, End: end})
		i = end - 1
	}

	return matches
}

// scanBody walks the numeric body starting at pos and returns the index one
// past the final 'm', or false when the bytes do not match the SGR grammar.
func scanBody(text string, pos int) (int, bool) {
	for pos < len(text) {
		b := text[pos]
		if (b >= '0' && b <= '9') || b == ';' || b == ':' {
			pos++
			continue
		}
		if b == 'm' {
			return pos + 1, true
		}
		return 0, false
	}
	return 0, false
}

// collectParams tokenizes one sequence body into parameters: ';' separates
// parameters, ':' separates subparameters, empty fields default to 0.
func collectParams(p *params.Parameters, body string) {
	if body == "" {
		return
	}

	value := 0
	extend := false
	for k := 0; k < len(body); k++ {
		switch b := body[k]; {
		case b >= '0' && b <= '9':
			value = value*10 + int(b-'0')
			if value > params.MaxValue {
				value = params.MaxValue
			}
		case b == ';':
			pushValue(p, value, extend)
			value, extend = 0, false
		case b == ':':
			pushValue(p, value, extend)
			value, extend = 0, true
		}
	}
	pushValue(p, value, extend)
}

func pushValue(p *params.Parameters, value int, extend bool) {
	if extend {
		p.Extend(value)
	} else {
		p.Push(value)
	}
}

/////////////////////////////////////////////////////////////////////////////
// CATEGORIZER
/////////////////////////////////////////////////////////////////////////////

// Categorise walks text once, folds every SGR sequence into a running style
// and emits one slice per run of visible bytes. Styling persists across
// sequences until reset or end of input. Zero-length runs emit no slice.
func Categorise(text string) []Slice {
	slices := make([]Slice, 0)

	var style types.Style
	var prm params.Parameters

	start := 0 // beginning of the pending visible run
	for i := 0; i+1 < len(text); i++ {
		if text[i] != 0x1B || text[i+1] != '[' {
			continue
		}
		end, ok := scanBody(text, i+2)
		if !ok {
			continue
		}

		if i > start {
			slices = append(slices, Slice{Text: text[start:i], Style: style})
		}

		prm.Clear()
		collectParams(&prm, text[i+2:end-1])
		style.ApplyParams(&prm)

		i = end - 1
		start = end
	}

	if start < len(text) {
		slices = append(slices, Slice{Text: text[start:], Style: style})
	}

	return slices
}

// TextNoCodes concatenates the slice texts: the original input with every
// matched escape sequence removed.
func TextNoCodes(slices []Slice) string {
	var builder strings.Builder
	for _, s := range slices {
		builder.WriteString(s.Text)
	}
	return builder.String()
}

// SplitLines re-splits slices at newline boundaries so that no fragment
// contains an interior '\n'; a trailing newline stays attached to its
// fragment. Every fragment keeps the style of the slice it came from.
func SplitLines(slices []Slice) []Slice {
	fragments := make([]Slice, 0, len(slices))

	for _, s := range slices {
		text := s.Text
		for {
			i := strings.IndexByte(text, '\n')
			if i < 0 || i == len(text)-1 {
				break
			}
			fragments = append(fragments, Slice{Text: text[:i+1], Style: s.Style})
			text = text[i+1:]
		}
		if len(text) > 0 {
			fragments = append(fragments, Slice{Text: text, Style: s.Style})
		}
	}

	return fragments
}
