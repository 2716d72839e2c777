package main

import (
	"fmt"
	"strings"
	"time"
)

// Session carries all state for one run of the application: the font
// catalog, the selected rendering backend, the file store, the current
// font, and the artifacts generated so far.
type Session struct {
	catalog  *Catalog
	renderer Renderer
	store    *Store
	font     string
	last     *Artifact
	history  []Artifact
}

// NewSession wires up the catalog, renderer, and store from config.
// Failing to create the output directory is the one fatal condition.
func NewSession(cfg Config) (*Session, error) {
	catalog := NewCatalog(cfg.Builtin)

	store, err := NewStore(cfg.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	font := cfg.Font
	if font == "" || !catalog.Contains(font) {
		font = catalog.Default()
	}

	return &Session{
		catalog:  catalog,
		renderer: NewRenderer(catalog),
		store:    store,
		font:     font,
	}, nil
}

// Render generates an artifact from text using the current font and
// records it as the last result.
func (s *Session) Render(text string) (*Artifact, error) {
	return s.RenderWith(text, s.font)
}

// RenderWith generates an artifact in an explicit font.
func (s *Session) RenderWith(text, font string) (*Artifact, error) {
	output, err := s.renderer.Render(cleanText(text), font)
	if err != nil {
		return nil, err
	}

	art := Artifact{
		Text:      strings.TrimSpace(text),
		Font:      font,
		Renderer:  s.renderer.Name(),
		Output:    output,
		CreatedAt: time.Now(),
	}
	s.last = &art
	s.history = append(s.history, art)
	return &art, nil
}

// SetFont changes the current font. Unknown fonts are rejected so the
// picker can report the failure; render-time resolution still
// substitutes the default if state ever drifts.
func (s *Session) SetFont(name string) bool {
	if !s.catalog.Contains(name) {
		return false
	}
	s.font = name
	return true
}

// Font returns the current font identifier.
func (s *Session) Font() string { return s.font }

// Last returns the most recent artifact, or nil before the first render.
func (s *Session) Last() *Artifact { return s.last }

// History returns every artifact generated this session, oldest first.
func (s *Session) History() []Artifact { return s.history }

// Preview renders the sample text in every popular font. Fonts that
// fail to render are skipped. Entries keep catalog order.
func (s *Session) Preview(sample string) []Artifact {
	if strings.TrimSpace(sample) == "" {
		sample = "Sample"
	}

	var previews []Artifact
	for _, font := range s.catalog.Popular() {
		output, err := s.renderer.Render(cleanText(sample), font)
		if err != nil {
			continue
		}
		previews = append(previews, Artifact{
			Text:      sample,
			Font:      font,
			Renderer:  s.renderer.Name(),
			Output:    output,
			CreatedAt: time.Now(),
		})
	}
	return previews
}
