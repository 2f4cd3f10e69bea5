package categorizer

import (
	"fmt"
	"reflect"
	"strings"
	"testing"

	"stylans/internal/types"
)

func TestCategorisePlainText(t *testing.T) {
	slices := Categorise("Hello World")

	if len(slices) != 1 {
		t.Fatalf("Expected 1 slice, got %d", len(slices))
	}
	if slices[0].Text != "Hello World" {
		t.Errorf("Expected 'Hello World', got %q", slices[0].Text)
	}
	if !slices[0].Style.IsDefault() {
		t.Errorf("Expected default style, got %v", slices[0].Style)
	}
}

func TestCategoriseEmpty(t *testing.T) {
	if slices := Categorise(""); len(slices) != 0 {
		t.Errorf("Expected no slices for empty input, got %v", slices)
	}
}

func TestCategoriseErrorScenario(t *testing.T) {
	slices := Categorise("\x1b[1;31;4mError:\x1b[0m text")

	expected := []Slice{
		{Text: "Error:", Style: types.Style{Fg: types.Ansi(1), Bold: true, Underline: true}},
		{Text: " text", Style: types.Style{}},
	}

	if !reflect.DeepEqual(slices, expected) {
		t.Errorf("Expected %v, got %v", expected, slices)
	}
}

func TestCategoriseRGBScenario(t *testing.T) {
	slices := Categorise("\x1b[38;2;225;192;203mPink\x1b[0m")

	if len(slices) != 1 {
		t.Fatalf("Expected 1 slice, got %d", len(slices))
	}
	if slices[0].Text != "Pink" {
		t.Errorf("Expected 'Pink', got %q", slices[0].Text)
	}
	if slices[0].Style.Fg != types.RGB(225, 192, 203) {
		t.Errorf("Expected fg rgb(225,192,203), got %v", slices[0].Style.Fg)
	}
}

func TestCategoriseHelloWorldScenario(t *testing.T) {
	slices := Categorise("\x1b[31mHello\x1b[0m, \x1b[32mWorld\x1b[0m!")

	expected := []Slice{
		{Text: "Hello", Style: types.Style{Fg: types.Ansi(1)}},
		{Text: ", ", Style: types.Style{}},
		{Text: "World", Style: types.Style{Fg: types.Ansi(2)}},
		{Text: "!", Style: types.Style{}},
	}

	if !reflect.DeepEqual(slices, expected) {
		t.Errorf("Expected %v, got %v", expected, slices)
	}
}

// A buffer starting with escape sequences must not emit an empty leading
// slice, and back-to-back sequences must not emit empty slices between them.
func TestCategoriseNoEmptySlices(t *testing.T) {
	slices := Categorise("\x1b[1m\x1b[31mX")

	expected := []Slice{
		{Text: "X", Style: types.Style{Fg: types.Ansi(1), Bold: true}},
	}

	if !reflect.DeepEqual(slices, expected) {
		t.Errorf("Expected %v, got %v", expected, slices)
	}
}

func TestCategoriseStylePersistsAcrossSequences(t *testing.T) {
	slices := Categorise("\x1b[1mbold\x1b[31mbold red")

	expected := []Slice{
		{Text: "bold", Style: types.Style{Bold: true}},
		{Text: "bold red", Style: types.Style{Fg: types.Ansi(1), Bold: true}},
	}

	if !reflect.DeepEqual(slices, expected) {
		t.Errorf("Expected %v, got %v", expected, slices)
	}
}

func TestCategoriseColonForm(t *testing.T) {
	for _, index := range []int{0, 5, 16, 255} {
		t.Run(fmt.Sprintf("Index%d", index), func(t *testing.T) {
			flat := Categorise(fmt.Sprintf("\x1b[38;5;%dmX", index))
			colon := Categorise(fmt.Sprintf("\x1b[38:5:%dmX", index))

			if !reflect.DeepEqual(flat, colon) {
				t.Fatalf("Expected identical slices, got %v and %v", flat, colon)
			}
			if flat[0].Style.Fg != types.Ansi256(uint8(index)) {
				t.Errorf("Expected fg idx:%d, got %v", index, flat[0].Style.Fg)
			}
		})
	}
}

func TestCategoriseEmptyFieldsDefaultToZero(t *testing.T) {
	// leading empty field is parameter 0: reset, then red
	slices := Categorise("\x1b[1m\x1b[;31mX")

	expected := []Slice{
		{Text: "X", Style: types.Style{Fg: types.Ansi(1)}},
	}

	if !reflect.DeepEqual(slices, expected) {
		t.Errorf("Expected %v, got %v", expected, slices)
	}

	// bare ESC[m resets too
	slices = Categorise("\x1b[1mA\x1b[mB")
	if len(slices) != 2 || !slices[1].Style.IsDefault() {
		t.Errorf("Expected default style after ESC[m, got %v", slices)
	}
}

// Sequences not matching the strict SGR grammar stay in the text untouched.
func TestCategoriseInvalidSequencesAreLiteral(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"OtherCSIFinal", "move\x1b[2Jhere"},
		{"InterruptedByControl", "a\x1b[31\nb"},
		{"BareEscape", "a\x1bz"},
		{"TruncatedAtEnd", "abc\x1b["},
		{"IntermediateByte", "a\x1b[?25hm"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slices := Categorise(tt.input)
			if got := TextNoCodes(slices); got != tt.input {
				t.Errorf("Expected literal passthrough %q, got %q", tt.input, got)
			}
			for _, s := range slices {
				if !s.Style.IsDefault() {
					t.Errorf("Expected default style, got %v", s.Style)
				}
			}
		})
	}
}

func TestTextNoCodesRoundTrip(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Plain", "no codes here", "no codes here"},
		{"Simple", "\x1b[31mHello\x1b[0m, \x1b[32mWorld\x1b[0m!", "Hello, World!"},
		{"OnlySequences", "\x1b[1m\x1b[0m", ""},
		{"MixedValidity", "a\x1b[31mb\x1b[2Jc\x1b[0md", "ab\x1b[2Jcd"},
		{"Multiline", "\x1b[44mtop\nbottom\x1b[0m\n", "top\nbottom\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TextNoCodes(Categorise(tt.input)); got != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestParse(t *testing.T) {
	text := "a\x1b[31mb\x1b[2Jc\x1b[38:5:16md"
	matches := Parse(text)

	expected := []Match{
		{Start: 1, End: 6},
		{Start: 12, End: 22},
	}

	if !reflect.DeepEqual(matches, expected) {
		t.Fatalf("Expected %v, got %v", expected, matches)
	}

	for _, m := range matches {
		raw := text[m.Start:m.End]
		if !strings.HasPrefix(raw, "\x1b[") || !strings.HasSuffix(raw, "m") {
			t.Errorf("Match %v does not cover a full sequence: %q", m, raw)
		}
	}
}

// A body with more than 32 numeric groups parses without error using only
// the first 32 slots.
func TestCategoriseParameterOverflow(t *testing.T) {
	// 32 no-op fillers, then a red that must be dropped
	body := strings.Repeat("1;", 31) + "1;31"
	slices := Categorise("\x1b[" + body + "mX")

	if len(slices) != 1 {
		t.Fatalf("Expected 1 slice, got %d", len(slices))
	}
	if slices[0].Style.Fg != (types.Color{}) {
		t.Errorf("Expected fg default after truncation, got %v", slices[0].Style.Fg)
	}
	if !slices[0].Style.Bold {
		t.Error("Expected bold from the retained parameters")
	}

	// same sequence one parameter shorter keeps the red
	body = strings.Repeat("1;", 30) + "1;31"
	slices = Categorise("\x1b[" + body + "mX")
	if slices[0].Style.Fg != types.Ansi(1) {
		t.Errorf("Expected fg ansi:1, got %v", slices[0].Style.Fg)
	}
}

func TestSplitLines(t *testing.T) {
	slices := Categorise("\x1b[31mab\ncd\nef\x1b[0m gh")
	fragments := SplitLines(slices)

	red := types.Style{Fg: types.Ansi(1)}
	expected := []Slice{
		{Text: "ab\n", Style: red},
		{Text: "cd\n", Style: red},
		{Text: "ef", Style: red},
		{Text: " gh", Style: types.Style{}},
	}

	if !reflect.DeepEqual(fragments, expected) {
		t.Errorf("Expected %v, got %v", expected, fragments)
	}

	for _, f := range fragments {
		if i := strings.IndexByte(f.Text, '\n'); i >= 0 && i != len(f.Text)-1 {
			t.Errorf("Fragment %q contains interior newline", f.Text)
		}
	}
}

func TestSplitLinesTrailingNewline(t *testing.T) {
	fragments := SplitLines([]Slice{{Text: "one\n"}})

	expected := []Slice{{Text: "one\n"}}
	if !reflect.DeepEqual(fragments, expected) {
		t.Errorf("Expected %v, got %v", expected, fragments)
	}
}

func TestSliceWidth(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected int
	}{
		{"ASCII", "hello", 5},
		{"Accented", "héllo", 5},
		{"FullWidth", "日本", 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Slice{Text: tt.text}
			if got := s.Width(); got != tt.expected {
				t.Errorf("Expected width %d, got %d", tt.expected, got)
			}
		})
	}
}
