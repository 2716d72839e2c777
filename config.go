package main

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config controls startup behavior. Values come from defaults, then an
// optional YAML config file, then environment variables.
type Config struct {
	OutputDir string `yaml:"output_dir"` // where artifacts are saved
	Font      string `yaml:"font"`       // initial font selection
	Theme     string `yaml:"theme"`      // initial color theme name
	ThemeDir  string `yaml:"theme_dir"`  // directory of custom theme YAML files
	Builtin   bool   `yaml:"builtin"`    // force the builtin glyph renderer
}

func defaultConfig() Config {
	return Config{
		OutputDir: "ascii_art",
		Font:      defaultFont,
	}
}

// LoadConfig resolves the effective configuration. A missing or invalid
// config file is not an error; defaults apply.
func LoadConfig() Config {
	cfg := defaultConfig()

	if path := configPath(); path != "" {
		if data, err := os.ReadFile(path); err == nil {
			// Invalid YAML falls through to defaults, same as a
			// missing file.
			_ = yaml.Unmarshal(data, &cfg)
		}
	}

	if v := os.Getenv("TEXTART_OUTPUT_DIR"); v != "" {
		cfg.OutputDir = v
	}
	if v := os.Getenv("TEXTART_FONT"); v != "" {
		cfg.Font = v
	}
	if v := os.Getenv("TEXTART_THEME"); v != "" {
		cfg.Theme = v
	}
	if v := os.Getenv("TEXTART_THEME_DIR"); v != "" {
		cfg.ThemeDir = v
	}
	if v := os.Getenv("TEXTART_BUILTIN"); v == "1" || v == "true" {
		cfg.Builtin = true
	}

	return cfg
}

// configPath returns the config file location: $TEXTART_CONFIG if set,
// else <user config dir>/textart/config.yml.
func configPath() string {
	if path := os.Getenv("TEXTART_CONFIG"); path != "" {
		return path
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "textart", "config.yml")
}
