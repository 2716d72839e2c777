package main

import (
	"errors"
	"strings"
	"testing"
)

func TestBuiltinRendererValidation(t *testing.T) {
	r := &BuiltinRenderer{}

	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"empty string", "", true},
		{"whitespace only", "   \t  ", true},
		{"valid text", "Hi", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := r.Render(tt.input, "standard")
			if tt.wantErr {
				if !errors.Is(err, ErrEmptyText) {
					t.Errorf("Render(%q) error = %v, want ErrEmptyText", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Render(%q) unexpected error: %v", tt.input, err)
			}
			if out == "" {
				t.Errorf("Render(%q) returned empty output", tt.input)
			}
		})
	}
}

func TestBuiltinRendererFixedHeight(t *testing.T) {
	r := &BuiltinRenderer{}

	for _, input := range []string{"A", "Hello", "A MUCH LONGER INPUT STRING 123"} {
		out, err := r.Render(input, "anything")
		if err != nil {
			t.Fatalf("Render(%q) unexpected error: %v", input, err)
		}
		if got := len(strings.Split(out, "\n")); got != glyphHeight {
			t.Errorf("Render(%q) produced %d rows, want %d", input, got, glyphHeight)
		}
	}
}

func TestFigletRendererDeterministic(t *testing.T) {
	catalog := NewCatalog(false)
	r := &FigletRenderer{catalog: catalog}

	first, err := r.Render("Hello", "standard")
	if err != nil {
		t.Fatalf("first render failed: %v", err)
	}
	second, err := r.Render("Hello", "standard")
	if err != nil {
		t.Fatalf("second render failed: %v", err)
	}

	if first != second {
		t.Errorf("rendering the same text and font twice produced different output:\n%s\n---\n%s", first, second)
	}
	if !strings.Contains(first, "\n") {
		t.Errorf("expected multi-line output, got %q", first)
	}
}

func TestFigletRendererUnknownFontSubstitutesDefault(t *testing.T) {
	catalog := NewCatalog(false)
	r := &FigletRenderer{catalog: catalog}

	unknown, err := r.Render("Hi", "definitely-not-a-font")
	if err != nil {
		t.Fatalf("unknown font should not error, got: %v", err)
	}

	standard, err := r.Render("Hi", catalog.Default())
	if err != nil {
		t.Fatalf("default font render failed: %v", err)
	}

	if unknown != standard {
		t.Errorf("unknown font output differs from default font output")
	}
}

func TestFigletRendererEmptyText(t *testing.T) {
	catalog := NewCatalog(false)
	r := &FigletRenderer{catalog: catalog}

	if _, err := r.Render("  ", "standard"); !errors.Is(err, ErrEmptyText) {
		t.Errorf("Render on whitespace = %v, want ErrEmptyText", err)
	}
}

func TestNewRendererSelection(t *testing.T) {
	tests := []struct {
		name     string
		builtin  bool
		wantName string
	}{
		{"figlet catalog picks figlet", false, "figlet"},
		{"builtin catalog picks builtin", true, "builtin"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRenderer(NewCatalog(tt.builtin))
			if r.Name() != tt.wantName {
				t.Errorf("NewRenderer selected %q, want %q", r.Name(), tt.wantName)
			}
		})
	}
}
