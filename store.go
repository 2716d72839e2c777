package main

import (
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const timestampLayout = "20060102_150405"

// Store persists artifacts under a single output directory.
type Store struct {
	dir string
}

// NewStore creates the output directory if it does not exist.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", dir, err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the output directory path.
func (s *Store) Dir() string { return s.dir }

// artifactMeta is the sidecar metadata written next to saved artifacts.
type artifactMeta struct {
	Text      string    `yaml:"source_text"`
	Font      string    `yaml:"font"`
	Renderer  string    `yaml:"renderer"`
	CreatedAt time.Time `yaml:"created_at"`
}

// Save writes the artifact to a timestamp-named .txt file plus a YAML
// metadata sidecar, and returns the text file's path. An existing file
// with the same name is renamed to a backup first.
func (s *Store) Save(art *Artifact, name string) (string, error) {
	base := fmt.Sprintf("%s_%s", sanitizeFilename(name), time.Now().Format(timestampLayout))
	path := filepath.Join(s.dir, base+".txt")

	if err := s.writeFile(path, art.Output+"\n"); err != nil {
		return "", err
	}

	meta := artifactMeta{
		Text:      art.Text,
		Font:      art.Font,
		Renderer:  art.Renderer,
		CreatedAt: art.CreatedAt,
	}
	data, err := yaml.Marshal(&meta)
	if err != nil {
		return "", fmt.Errorf("failed to encode metadata: %w", err)
	}
	if err := s.writeFile(filepath.Join(s.dir, base+".meta.yaml"), string(data)); err != nil {
		return "", err
	}

	return path, nil
}

// Load reads raw text from an arbitrary file path for re-conversion.
func (s *Store) Load(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	text := strings.Trim(string(data), "\r\n")
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%s: %w", path, ErrEmptyText)
	}
	return text, nil
}

// BatchExport appends every artifact into one timestamp-named file,
// separated by headers, and returns its path.
func (s *Store) BatchExport(arts []Artifact, name string) (string, error) {
	if len(arts) == 0 {
		return "", fmt.Errorf("no artifacts to export")
	}

	var b strings.Builder
	for i, art := range arts {
		fmt.Fprintf(&b, "%s\n", separator('=', 60))
		fmt.Fprintf(&b, "#%d  %q  font: %s  (%s)\n", i+1, art.Text, art.Font, art.CreatedAt.Format(time.RFC3339))
		fmt.Fprintf(&b, "%s\n", separator('=', 60))
		b.WriteString(art.Output)
		b.WriteString("\n\n")
	}

	path := filepath.Join(s.dir, fmt.Sprintf("%s_%s.txt", sanitizeFilename(name), time.Now().Format(timestampLayout)))
	if err := s.writeFile(path, b.String()); err != nil {
		return "", err
	}
	return path, nil
}

// ExportHTML writes the artifact as a minimal standalone HTML page.
func (s *Store) ExportHTML(art *Artifact, name string) (string, error) {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n")
	fmt.Fprintf(&b, "<title>%s</title>\n", html.EscapeString(art.Text))
	b.WriteString("<style>pre { font-family: monospace; line-height: 1; }</style>\n")
	b.WriteString("</head>\n<body>\n<pre>\n")
	b.WriteString(html.EscapeString(art.Output))
	b.WriteString("\n</pre>\n")
	fmt.Fprintf(&b, "<p>font: %s | generated: %s</p>\n",
		html.EscapeString(art.Font), art.CreatedAt.Format(time.RFC3339))
	b.WriteString("</body>\n</html>\n")

	path := filepath.Join(s.dir, fmt.Sprintf("%s_%s.html", sanitizeFilename(name), time.Now().Format(timestampLayout)))
	if err := s.writeFile(path, b.String()); err != nil {
		return "", err
	}
	return path, nil
}

// ExportFontList writes the numbered font catalog to a file.
func (s *Store) ExportFontList(fonts []string) (string, error) {
	var b strings.Builder
	b.WriteString("Available ASCII Fonts\n")
	b.WriteString(separator('=', 30) + "\n\n")
	for i, font := range fonts {
		fmt.Fprintf(&b, "%3d. %s\n", i+1, font)
	}
	fmt.Fprintf(&b, "\nTotal fonts: %d\n", len(fonts))

	path := filepath.Join(s.dir, fmt.Sprintf("fonts_%s.txt", time.Now().Format(timestampLayout)))
	if err := s.writeFile(path, b.String()); err != nil {
		return "", err
	}
	return path, nil
}

// writeFile writes content, moving any existing file aside as a backup
// instead of overwriting it.
func (s *Store) writeFile(path, content string) error {
	if _, err := os.Stat(path); err == nil {
		if err := os.Rename(path, backupName(path, time.Now())); err != nil {
			return fmt.Errorf("failed to back up %s: %w", path, err)
		}
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// backupName derives a timestamped backup filename for an existing file.
func backupName(path string, t time.Time) string {
	ext := filepath.Ext(path)
	base := strings.TrimSuffix(path, ext)
	return fmt.Sprintf("%s_backup_%s%s", base, t.Format(timestampLayout), ext)
}
