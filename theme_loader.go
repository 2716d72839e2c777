package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// YAMLTheme is the on-disk shape of a custom theme file. These follow
// the terminal color scheme convention: 16 ANSI colors plus base colors.
type YAMLTheme struct {
	Name       string `yaml:"name"`
	Author     string `yaml:"author"`
	Variant    string `yaml:"variant"` // dark or light
	Background string `yaml:"background"`
	Foreground string `yaml:"foreground"`
	Cursor     string `yaml:"cursor"`

	// 16 ANSI colors (color_01 through color_16)
	Color01 string `yaml:"color_01"` // Black
	Color02 string `yaml:"color_02"` // Red
	Color03 string `yaml:"color_03"` // Green
	Color04 string `yaml:"color_04"` // Yellow
	Color05 string `yaml:"color_05"` // Blue
	Color06 string `yaml:"color_06"` // Magenta
	Color07 string `yaml:"color_07"` // Cyan
	Color08 string `yaml:"color_08"` // White
	Color09 string `yaml:"color_09"` // Bright Black
	Color10 string `yaml:"color_10"` // Bright Red
	Color11 string `yaml:"color_11"` // Bright Green
	Color12 string `yaml:"color_12"` // Bright Yellow
	Color13 string `yaml:"color_13"` // Bright Blue
	Color14 string `yaml:"color_14"` // Bright Magenta
	Color15 string `yaml:"color_15"` // Bright Cyan
	Color16 string `yaml:"color_16"` // Bright White
}

// ConvertToTheme maps a YAML theme onto the internal Theme structure.
func (yt *YAMLTheme) ConvertToTheme() Theme {
	return Theme{
		Background: yt.Background,
		Foreground: yt.Foreground,
		Subtle:     generateShade(yt.Background, 1.3), // Slightly lighter than background

		Black:   yt.Color01,
		Red:     yt.Color02,
		Green:   yt.Color03,
		Yellow:  yt.Color04,
		Blue:    yt.Color05,
		Magenta: yt.Color06,
		Cyan:    yt.Color07,
		White:   yt.Color08,

		BrightBlack:   yt.Color09,
		BrightRed:     yt.Color10,
		BrightGreen:   yt.Color11,
		BrightYellow:  yt.Color12,
		BrightBlue:    yt.Color13,
		BrightMagenta: yt.Color14,
		BrightCyan:    yt.Color15,
		BrightWhite:   yt.Color16,

		Purple: yt.Color06,
		Gray:   yt.Color08,
		Dark:   yt.Color01,
	}
}

// LoadThemeFromYAML loads a single YAML theme file
func LoadThemeFromYAML(filePath string) (*YAMLTheme, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme file: %w", err)
	}

	var yamlTheme YAMLTheme
	if err := yaml.Unmarshal(data, &yamlTheme); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	return &yamlTheme, nil
}

// LoadCustomThemes loads all YAML themes from a directory.
// Returns a map of theme-name -> Theme
func LoadCustomThemes(themesDir string) (map[string]Theme, error) {
	themeMap := make(map[string]Theme)

	files, err := filepath.Glob(filepath.Join(themesDir, "*.yml"))
	if err != nil {
		return nil, fmt.Errorf("failed to list theme files: %w", err)
	}

	for _, file := range files {
		yamlTheme, err := LoadThemeFromYAML(file)
		if err != nil {
			// Skip invalid themes, don't fail entire load
			continue
		}
		if yamlTheme.Name == "" {
			continue
		}

		// Use lowercase name with spaces replaced by hyphens for consistency
		themeName := strings.ToLower(strings.ReplaceAll(yamlTheme.Name, " ", "-"))
		themeMap[themeName] = yamlTheme.ConvertToTheme()
	}

	return themeMap, nil
}
