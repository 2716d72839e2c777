package main

import (
	"strings"
	"unicode"
)

// cleanText normalizes input before rendering: collapses whitespace runs
// to single spaces and drops control characters.
func cleanText(text string) string {
	fields := strings.FieldsFunc(text, unicode.IsSpace)
	joined := strings.Join(fields, " ")

	var b strings.Builder
	for _, r := range joined {
		if unicode.IsControl(r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// sanitizeFilename makes a name safe for saving: invalid filename
// characters become underscores, underscore/space runs collapse, length
// is capped, and an empty result falls back to "ascii_art".
func sanitizeFilename(name string) string {
	name = strings.TrimSpace(name)

	var b strings.Builder
	for _, r := range name {
		switch {
		case strings.ContainsRune(`<>:"/\|?*`, r) || unicode.IsControl(r):
			b.WriteRune('_')
		case unicode.IsSpace(r):
			b.WriteRune('_')
		default:
			b.WriteRune(r)
		}
	}

	cleaned := b.String()
	for strings.Contains(cleaned, "__") {
		cleaned = strings.ReplaceAll(cleaned, "__", "_")
	}
	cleaned = strings.Trim(cleaned, "_")

	if len(cleaned) > 100 {
		cleaned = cleaned[:100]
	}
	if cleaned == "" {
		return "ascii_art"
	}
	return cleaned
}

// addBorder frames multi-line art with a border character.
func addBorder(art string, border rune) string {
	lines := strings.Split(art, "\n")

	maxWidth := 0
	for _, line := range lines {
		if len(line) > maxWidth {
			maxWidth = len(line)
		}
	}

	edge := strings.Repeat(string(border), maxWidth+4)
	bordered := make([]string, 0, len(lines)+2)
	bordered = append(bordered, edge)
	for _, line := range lines {
		bordered = append(bordered, string(border)+" "+padRight(line, maxWidth)+" "+string(border))
	}
	bordered = append(bordered, edge)

	return strings.Join(bordered, "\n")
}

// centerArt centers each line of multi-line art within a given width.
// Lines already wider than the width are left alone.
func centerArt(art string, width int) string {
	lines := strings.Split(art, "\n")
	for i, line := range lines {
		if len(line) < width {
			lines[i] = strings.Repeat(" ", (width-len(line))/2) + line
		}
	}
	return strings.Join(lines, "\n")
}

// separator builds a horizontal rule of the given character and width.
func separator(char rune, width int) string {
	return strings.Repeat(string(char), width)
}

// truncate shortens text to maxLen, ending with an ellipsis.
func truncate(text string, maxLen int) string {
	if len(text) <= maxLen {
		return text
	}
	if maxLen <= 3 {
		return text[:maxLen]
	}
	return text[:maxLen-3] + "..."
}

// padRight pads a string with spaces to the given width.
func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
