package main

import (
	"strings"
	"testing"
)

func TestRenderGlyphs(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantRows int
	}{
		{
			name:     "single letter",
			input:    "A",
			wantRows: glyphHeight,
		},
		{
			name:     "word with punctuation",
			input:    "HELLO!",
			wantRows: glyphHeight,
		},
		{
			name:     "mixed alphanumeric",
			input:    "USER123",
			wantRows: glyphHeight,
		},
		{
			name:     "lowercase converts to uppercase",
			input:    "abc",
			wantRows: glyphHeight,
		},
		{
			name:     "long input keeps fixed height",
			input:    "THE QUICK BROWN FOX 0123456789",
			wantRows: glyphHeight,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := renderGlyphs(tt.input)

			lines := strings.Split(result, "\n")
			if len(lines) != tt.wantRows {
				t.Errorf("renderGlyphs(%q) returned %d lines, want %d", tt.input, len(lines), tt.wantRows)
			}

			if result == "" {
				t.Errorf("renderGlyphs(%q) returned empty string", tt.input)
			}
		})
	}
}

func TestRenderGlyphsRowAlignment(t *testing.T) {
	// Every row must have the same width so character blocks stay
	// column-aligned when concatenated horizontally
	result := renderGlyphs("Hi")

	lines := strings.Split(result, "\n")
	if len(lines) != glyphHeight {
		t.Fatalf("expected %d lines, got %d", glyphHeight, len(lines))
	}

	// Two glyphs plus one separator column
	wantWidth := glyphWidth*2 + 1
	for i, line := range lines {
		if len(line) != wantWidth {
			t.Errorf("line %d has width %d, want %d: %q", i, len(line), wantWidth, line)
		}
	}

	// Row 2 of H is the crossbar, row 0 of I is the full top bar
	if lines[2][:glyphWidth] != "HHHHH" {
		t.Errorf("H crossbar row = %q, want %q", lines[2][:glyphWidth], "HHHHH")
	}
	if lines[0][glyphWidth+1:] != "IIIII" {
		t.Errorf("I top row = %q, want %q", lines[0][glyphWidth+1:], "IIIII")
	}
}

func TestRenderGlyphsUnknownCharacter(t *testing.T) {
	// Unknown characters render as blank blocks of the same height
	result := renderGlyphs("#")

	lines := strings.Split(result, "\n")
	if len(lines) != glyphHeight {
		t.Fatalf("expected %d lines, got %d", glyphHeight, len(lines))
	}
	for i, line := range lines {
		if strings.TrimSpace(line) != "" {
			t.Errorf("line %d should be blank for unknown char, got %q", i, line)
		}
		if len(line) != glyphWidth {
			t.Errorf("line %d has width %d, want %d", i, len(line), glyphWidth)
		}
	}
}

func TestGlyphIndex(t *testing.T) {
	tests := []struct {
		name string
		char rune
		want int
	}{
		{"letter A", 'A', 0},
		{"letter Z", 'Z', 25},
		{"digit 0", '0', 26},
		{"digit 9", '9', 35},
		{"space", ' ', 36},
		{"exclamation", '!', 37},
		{"question mark", '?', 38},
		{"period", '.', 39},
		{"comma", ',', 40},
		{"unknown char", '#', -1},
		{"lowercase a", 'a', -1}, // glyphIndex doesn't handle lowercase (renderGlyphs does ToUpper)
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := glyphIndex(tt.char)
			if got != tt.want {
				t.Errorf("glyphIndex(%q) = %d, want %d", tt.char, got, tt.want)
			}
		})
	}
}

func TestGlyphTableComplete(t *testing.T) {
	// The embedded table must carry 41 glyphs of glyphHeight rows each
	wantRows := 41 * glyphHeight
	if len(glyphRows) != wantRows {
		t.Errorf("glyph table has %d rows, want %d", len(glyphRows), wantRows)
	}

	for i, row := range glyphRows {
		if len(row) != glyphWidth {
			t.Errorf("glyph row %d has width %d, want %d: %q", i, len(row), glyphWidth, row)
		}
	}
}

func TestRenderGlyphsVisualOutput(t *testing.T) {
	// Visual test - prints output for manual inspection
	input := "TEXT ART"
	result := renderGlyphs(input)

	t.Logf("ASCII art for %q:\n%s", input, result)

	lines := strings.Split(result, "\n")
	if len(lines) != glyphHeight {
		t.Errorf("Expected %d lines, got %d", glyphHeight, len(lines))
	}
}
