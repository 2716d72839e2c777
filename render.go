package main

import (
	"errors"
	"strings"
	"time"

	"github.com/common-nighthawk/go-figure"
)

// ErrEmptyText is returned when the input is empty after trimming.
var ErrEmptyText = errors.New("text is empty")

// Artifact is a single generated ASCII-art result.
type Artifact struct {
	Text      string
	Font      string
	Renderer  string
	Output    string
	CreatedAt time.Time
}

// Renderer converts text into a multi-line ASCII-art string.
// Implementations never fail on an unknown font; they substitute the
// default instead. The only render error is empty input.
type Renderer interface {
	// Render returns the banner for text in the given font.
	Render(text, font string) (string, error)
	// Name identifies the rendering backend.
	Name() string
}

// NewRenderer selects the rendering backend once at startup: the
// figlet-backed renderer when the catalog carries figlet fonts, the
// builtin glyph renderer otherwise.
func NewRenderer(catalog *Catalog) Renderer {
	if catalog.Builtin() {
		return &BuiltinRenderer{}
	}
	return &FigletRenderer{catalog: catalog}
}

// FigletRenderer delegates to the go-figure library.
type FigletRenderer struct {
	catalog *Catalog
}

func (r *FigletRenderer) Name() string { return "figlet" }

// Render delegates to go-figure with the resolved font. An unknown font
// is replaced by the default before rendering.
func (r *FigletRenderer) Render(text, font string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrEmptyText
	}
	if !r.catalog.Contains(font) {
		font = r.catalog.Default()
	}
	return strings.TrimRight(figure.NewFigure(text, font, false).String(), "\n"), nil
}

// BuiltinRenderer maps characters through the embedded glyph table.
// The font identifier is accepted but ignored: one table exists.
type BuiltinRenderer struct{}

func (r *BuiltinRenderer) Name() string { return "builtin" }

func (r *BuiltinRenderer) Render(text, font string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrEmptyText
	}
	return renderGlyphs(text), nil
}
