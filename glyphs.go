package main

import (
	_ "embed"
	"strings"
)

// Builtin glyph font: A-Z, 0-9, space, !, ?, period, comma (5 rows each)
//
//go:embed glyphs.txt
var glyphData string

const (
	glyphHeight = 5
	glyphWidth  = 5
)

var glyphRows []string

func init() {
	glyphRows = strings.Split(strings.TrimRight(glyphData, "\n"), "\n")

	// Normalize every row to the fixed glyph width so horizontal
	// concatenation stays column-aligned even when the data file has
	// trailing spaces stripped.
	for i, row := range glyphRows {
		if len(row) < glyphWidth {
			glyphRows[i] = row + strings.Repeat(" ", glyphWidth-len(row))
		}
	}
}

// renderGlyphs converts text to ASCII art using the builtin glyph table.
// Characters are case-normalized; unknown characters render as blank
// blocks of the same height. Output is always glyphHeight rows.
func renderGlyphs(text string) string {
	text = strings.ToUpper(text)
	blank := strings.Repeat(" ", glyphWidth)

	rows := make([][]string, glyphHeight)
	for _, char := range text {
		index := glyphIndex(char)
		for i := 0; i < glyphHeight; i++ {
			if index == -1 {
				rows[i] = append(rows[i], blank)
				continue
			}
			rows[i] = append(rows[i], glyphRows[index*glyphHeight+i])
		}
	}

	lines := make([]string, glyphHeight)
	for i := range rows {
		lines[i] = strings.Join(rows[i], " ")
	}
	return strings.Join(lines, "\n")
}

// glyphIndex returns the glyph table index for a character.
// Order: A-Z (0-25), 0-9 (26-35), space (36), ! (37), ? (38), . (39), , (40)
func glyphIndex(char rune) int {
	switch {
	case char >= 'A' && char <= 'Z':
		return int(char - 'A')
	case char >= '0' && char <= '9':
		return 26 + int(char-'0')
	case char == ' ':
		return 36
	case char == '!':
		return 37
	case char == '?':
		return 38
	case char == '.':
		return 39
	case char == ',':
		return 40
	default:
		return -1 // Unknown character
	}
}
