package main

import (
	"math/rand"
	"sort"
	"strings"

	"github.com/common-nighthawk/go-figure"
)

// defaultFont is substituted whenever a requested font does not resolve.
const defaultFont = "standard"

// builtinFonts is the catalog when figlet rendering is disabled.
var builtinFonts = []string{"standard", "block", "bubble", "digital", "lean"}

// popularFonts are the recommended fonts shown by the preview screen.
var popularFonts = []string{
	"standard", "slant", "block", "bubble", "digital",
	"lean", "mini", "script", "shadow", "small",
}

// Catalog enumerates the font identifiers available for rendering.
type Catalog struct {
	fonts   []string
	builtin bool
}

// NewCatalog builds the font catalog. With figlet enabled it lists the
// library's embedded fonts; otherwise (or when that list comes back
// empty) it falls back to the builtin set.
func NewCatalog(builtinOnly bool) *Catalog {
	if builtinOnly {
		return &Catalog{fonts: append([]string(nil), builtinFonts...), builtin: true}
	}

	var fonts []string
	for _, asset := range figure.AssetNames() {
		name := strings.TrimPrefix(asset, "fonts/")
		name = strings.TrimSuffix(name, ".flf")
		if name != "" {
			fonts = append(fonts, name)
		}
	}

	if len(fonts) == 0 {
		return &Catalog{fonts: append([]string(nil), builtinFonts...), builtin: true}
	}

	sort.Strings(fonts)
	return &Catalog{fonts: fonts}
}

// Fonts returns all available font identifiers. The figlet set is
// sorted; the builtin set keeps its curated order.
func (c *Catalog) Fonts() []string {
	return c.fonts
}

// Builtin reports whether the catalog is the builtin fallback set.
func (c *Catalog) Builtin() bool {
	return c.builtin
}

// Contains reports whether a font identifier is available.
func (c *Catalog) Contains(name string) bool {
	for _, font := range c.fonts {
		if font == name {
			return true
		}
	}
	return false
}

// Default returns the default font identifier, always resolvable.
func (c *Catalog) Default() string {
	if c.Contains(defaultFont) {
		return defaultFont
	}
	return c.fonts[0]
}

// Popular returns the recommended fonts that are actually available.
// When none of them are, the first few catalog entries stand in.
func (c *Catalog) Popular() []string {
	var available []string
	for _, font := range popularFonts {
		if c.Contains(font) {
			available = append(available, font)
		}
	}
	if len(available) == 0 {
		if len(c.fonts) > 10 {
			return c.fonts[:10]
		}
		return c.fonts
	}
	return available
}

// Search returns fonts whose name contains the keyword, case-insensitive.
func (c *Catalog) Search(keyword string) []string {
	keyword = strings.ToLower(strings.TrimSpace(keyword))
	if keyword == "" {
		return c.fonts
	}

	var matches []string
	for _, font := range c.fonts {
		if strings.Contains(strings.ToLower(font), keyword) {
			matches = append(matches, font)
		}
	}
	return matches
}

// Random picks a random font from the catalog.
func (c *Catalog) Random() string {
	if len(c.fonts) == 0 {
		return defaultFont
	}
	return c.fonts[rand.Intn(len(c.fonts))]
}

// CatalogStats summarizes the catalog for the font list screen.
type CatalogStats struct {
	Total   int
	Popular int
	Source  string
}

// Stats returns catalog statistics.
func (c *Catalog) Stats() CatalogStats {
	source := "figlet"
	if c.builtin {
		source = "builtin"
	}
	return CatalogStats{
		Total:   len(c.fonts),
		Popular: len(c.Popular()),
		Source:  source,
	}
}
