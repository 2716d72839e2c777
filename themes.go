package main

import (
	"sort"

	goghthemes "github.com/willyv3/gogh-themes"
)

// Theme provides all colors for the application.
type Theme struct {
	Background string
	Foreground string
	Subtle     string

	// Primary ANSI colors (0-7)
	Black   string
	Red     string
	Green   string
	Yellow  string
	Blue    string
	Magenta string
	Cyan    string
	White   string

	// Bright ANSI colors (8-15)
	BrightBlack   string
	BrightRed     string
	BrightGreen   string
	BrightYellow  string
	BrightBlue    string
	BrightMagenta string
	BrightCyan    string
	BrightWhite   string

	// Semantic aliases for convenience
	Purple string // Alias for Magenta
	Gray   string // Alias for White
	Dark   string // Alias for Black
}

// themes registry - gogh-themes plus any custom YAML themes
var themes = make(map[string]Theme)

// CurrentTheme is the active theme
var CurrentTheme Theme

// currentThemeName tracks the current theme name for cycling
var currentThemeName string

// themeOrder defines the order for cycling through themes
var themeOrder []string

// InitTheme initializes the theme system. Custom themes from themeDir
// (if any) override gogh themes with the same name. An unknown initial
// name falls back to the default, then to the first available theme.
func InitTheme(name, themeDir string) {
	loadGoghThemes()

	if themeDir != "" {
		if custom, err := LoadCustomThemes(themeDir); err == nil {
			for themeName, theme := range custom {
				themes[themeName] = theme
			}
		}
	}

	buildThemeOrder()

	if name == "" {
		name = "Dracula" // Default theme
	}

	theme, exists := themes[name]
	if !exists {
		if len(themeOrder) > 0 {
			name = themeOrder[0]
			theme = themes[name]
		}
	}

	CurrentTheme = theme
	currentThemeName = name
}

// loadGoghThemes fills the registry from the gogh-themes package
func loadGoghThemes() {
	for name, gogh := range goghthemes.All() {
		themes[name] = Theme{
			Background: gogh.Background,
			Foreground: gogh.Foreground,
			Subtle:     generateShade(gogh.Background, 1.3), // 30% brighter

			Black:   gogh.Black,
			Red:     gogh.Red,
			Green:   gogh.Green,
			Yellow:  gogh.Yellow,
			Blue:    gogh.Blue,
			Magenta: gogh.Magenta,
			Cyan:    gogh.Cyan,
			White:   gogh.White,

			BrightBlack:   gogh.BrightBlack,
			BrightRed:     gogh.BrightRed,
			BrightGreen:   gogh.BrightGreen,
			BrightYellow:  gogh.BrightYellow,
			BrightBlue:    gogh.BrightBlue,
			BrightMagenta: gogh.BrightMagenta,
			BrightCyan:    gogh.BrightCyan,
			BrightWhite:   gogh.BrightWhite,

			Purple: gogh.Magenta,
			Gray:   gogh.White,
			Dark:   gogh.Black,
		}
	}
}

// buildThemeOrder creates alphabetically sorted theme cycling order
func buildThemeOrder() {
	themeOrder = make([]string, 0, len(themes))
	for name := range themes {
		themeOrder = append(themeOrder, name)
	}
	sort.Strings(themeOrder)
}

// NextTheme cycles to the next theme in the rotation
func NextTheme() string {
	currentIndex := 0
	for i, name := range themeOrder {
		if name == currentThemeName {
			currentIndex = i
			break
		}
	}

	nextIndex := (currentIndex + 1) % len(themeOrder)
	nextThemeName := themeOrder[nextIndex]

	CurrentTheme = themes[nextThemeName]
	currentThemeName = nextThemeName

	return nextThemeName
}

// GetCurrentThemeName returns the name of the active theme
func GetCurrentThemeName() string {
	return currentThemeName
}

// GetThemeCount returns the total number of available themes
func GetThemeCount() int {
	return len(themes)
}

// generateShade generates a lighter or darker shade of a hex color
// factor < 1.0 = darker, factor > 1.0 = brighter
func generateShade(hexColor string, factor float64) string {
	if len(hexColor) > 0 && hexColor[0] == '#' {
		hexColor = hexColor[1:]
	}
	if len(hexColor) != 6 {
		return "#000000"
	}

	r := int64(float64(parseHex(hexColor[0:2])) * factor)
	g := int64(float64(parseHex(hexColor[2:4])) * factor)
	b := int64(float64(parseHex(hexColor[4:6])) * factor)

	if r > 255 {
		r = 255
	}
	if g > 255 {
		g = 255
	}
	if b > 255 {
		b = 255
	}

	return "#" + toHex(r) + toHex(g) + toHex(b)
}

// parseHex parses a 2-character hex string
func parseHex(s string) int64 {
	var result int64
	for i := 0; i < len(s); i++ {
		result *= 16
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
			result += int64(c - '0')
		case c >= 'a' && c <= 'f':
			result += int64(c - 'a' + 10)
		case c >= 'A' && c <= 'F':
			result += int64(c - 'A' + 10)
		}
	}
	return result
}

// toHex converts a number to 2-digit hex
func toHex(n int64) string {
	const hexDigits = "0123456789ABCDEF"
	return string([]byte{hexDigits[n/16], hexDigits[n%16]})
}
