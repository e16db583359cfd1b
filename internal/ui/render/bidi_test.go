package render

import "testing"

func TestBidi(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty", input: "", want: ""},
		{name: "latin unchanged", input: "Daft Punk", want: "Daft Punk"},
		{name: "cjk unchanged", input: "坂本龍一", want: "坂本龍一"},
		{name: "hebrew reversed", input: "אבג", want: "גבא"},
		{name: "latin then hebrew", input: "abc אבג", want: "abc גבא"},
		{name: "hebrew then bracketed latin and digits", input: "שלום (world) 123", want: "123 (world) םולש"},
		{name: "digits before hebrew", input: "1 2 3 שלום", want: "םולש 3 2 1"},
		{name: "hebrew then bracketed latin", input: "אבג (abc)", want: "(abc) גבא"},
		{name: "latin then bracketed hebrew", input: "abc (אבג)", want: "abc (גבא)"},
		{name: "arabic year keeps digit order", input: "عام 2024", want: "2024 ماع"},
		{name: "each line is its own paragraph", input: "abc\nאבג", want: "abc\nגבא"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Bidi(tt.input)
			if got != tt.want {
				t.Errorf("Bidi(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestBidi_PreservesRunes(t *testing.T) {
	input := "مرحبا world"
	got := Bidi(input)
	if len([]rune(got)) != len([]rune(input)) {
		t.Errorf("Bidi(%q) = %q, rune count changed", input, got)
	}
}

func TestBidi_KeepsEveryRune(t *testing.T) {
	inputs := []string{
		"שלום (world) 123",
		"[אבג] {def} (123)",
		"Track – שיר ((nested)) 4:20",
	}
	for _, input := range inputs {
		got := Bidi(input)
		if !sameRunes(got, input) {
			t.Errorf("Bidi(%q) = %q, runes differ from input", input, got)
		}
	}
}

// sameRunes compares the rune multisets of a and b, treating mirrored
// bracket pairs as equal.
func sameRunes(a, b string) bool {
	count := map[rune]int{}
	norm := func(r rune) rune {
		switch r {
		case ')':
			return '('
		case ']':
			return '['
		case '}':
			return '{'
		}
		return r
	}
	for _, r := range a {
		count[norm(r)]++
	}
	for _, r := range b {
		count[norm(r)]--
	}
	for _, n := range count {
		if n != 0 {
			return false
		}
	}
	return true
}
