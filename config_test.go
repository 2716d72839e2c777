package main

import (
	"os"
	"path/filepath"
	"testing"
)

func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"TEXTART_CONFIG", "TEXTART_OUTPUT_DIR", "TEXTART_FONT",
		"TEXTART_THEME", "TEXTART_THEME_DIR", "TEXTART_BUILTIN",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
	// Point the config file lookup somewhere empty
	t.Setenv("TEXTART_CONFIG", filepath.Join(t.TempDir(), "missing.yml"))
}

func TestLoadConfigDefaults(t *testing.T) {
	clearConfigEnv(t)

	cfg := LoadConfig()
	if cfg.OutputDir != "ascii_art" {
		t.Errorf("OutputDir = %q, want ascii_art", cfg.OutputDir)
	}
	if cfg.Font != "standard" {
		t.Errorf("Font = %q, want standard", cfg.Font)
	}
	if cfg.Builtin {
		t.Error("Builtin should default to false")
	}
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("TEXTART_OUTPUT_DIR", "/tmp/banners")
	t.Setenv("TEXTART_FONT", "slant")
	t.Setenv("TEXTART_THEME", "Nord")
	t.Setenv("TEXTART_BUILTIN", "1")

	cfg := LoadConfig()
	if cfg.OutputDir != "/tmp/banners" {
		t.Errorf("OutputDir = %q, want /tmp/banners", cfg.OutputDir)
	}
	if cfg.Font != "slant" {
		t.Errorf("Font = %q, want slant", cfg.Font)
	}
	if cfg.Theme != "Nord" {
		t.Errorf("Theme = %q, want Nord", cfg.Theme)
	}
	if !cfg.Builtin {
		t.Error("Builtin = false, want true")
	}
}

func TestLoadConfigFile(t *testing.T) {
	clearConfigEnv(t)

	path := filepath.Join(t.TempDir(), "config.yml")
	content := "output_dir: saved\nfont: mini\nbuiltin: true\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("TEXTART_CONFIG", path)

	cfg := LoadConfig()
	if cfg.OutputDir != "saved" {
		t.Errorf("OutputDir = %q, want saved", cfg.OutputDir)
	}
	if cfg.Font != "mini" {
		t.Errorf("Font = %q, want mini", cfg.Font)
	}
	if !cfg.Builtin {
		t.Error("Builtin = false, want true")
	}
}

func TestLoadConfigEnvBeatsFile(t *testing.T) {
	clearConfigEnv(t)

	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte("font: mini\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("TEXTART_CONFIG", path)
	t.Setenv("TEXTART_FONT", "shadow")

	cfg := LoadConfig()
	if cfg.Font != "shadow" {
		t.Errorf("Font = %q, want shadow (env should override file)", cfg.Font)
	}
}
