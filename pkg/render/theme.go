package render

import (
	"fmt"
	"sync"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-notecanvas/pkg/model"
	"github.com/goliatone/go-notecanvas/pkg/template"
)

// Palette color roles exposed as theme tokens and CSS variables.
const (
	tokenBackground = "note-bg"
	tokenText       = "note-text"
	tokenBorder     = "note-border"
	tokenHeader     = "note-header"
	tokenAccent     = "note-accent"
)

// PaletteSelector adapts template palettes to the go-theme selector
// contract: each template becomes a manifest whose base tokens come from the
// light palette, with every other palette exposed as a named variant.
type PaletteSelector struct {
	mu        sync.RWMutex
	manifests map[string]*theme.Manifest
}

var _ theme.ThemeSelector = (*PaletteSelector)(nil)

// NewPaletteSelector returns an empty selector.
func NewPaletteSelector() *PaletteSelector {
	return &PaletteSelector{manifests: make(map[string]*theme.Manifest)}
}

// RegisterTemplate (re)builds the manifest for a template's palettes.
func (s *PaletteSelector) RegisterTemplate(t *template.Template) {
	if t == nil || t.ID == "" {
		return
	}
	manifest := &theme.Manifest{
		Name:    t.ID,
		Version: "1.0.0",
		Tokens:  paletteTokens(t.ThemeStyles(template.ThemeLight)),
	}
	if len(t.Themes) > 1 {
		manifest.Variants = make(map[string]theme.Variant, len(t.Themes)-1)
		for name, palette := range t.Themes {
			if name == template.ThemeLight {
				continue
			}
			manifest.Variants[name] = theme.Variant{Tokens: paletteTokens(palette)}
		}
	}

	s.mu.Lock()
	s.manifests[t.ID] = manifest
	s.mu.Unlock()
}

// Select resolves a template's manifest for the requested variant. Unknown
// template names error; unknown variants fall back to the base (light)
// tokens, matching the palette fallback the descriptor itself applies.
func (s *PaletteSelector) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	s.mu.RLock()
	manifest, ok := s.manifests[name]
	s.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("render: theme manifest %q not found", name)
	}
	return &theme.Selection{
		Theme:    name,
		Variant:  variant,
		Manifest: manifest,
	}, nil
}

// Tokens returns the effective token set for a selection, overlaying the
// variant tokens over the manifest base.
func Tokens(selection *theme.Selection) map[string]string {
	if selection == nil || selection.Manifest == nil {
		return nil
	}
	out := make(map[string]string, len(selection.Manifest.Tokens))
	for key, value := range selection.Manifest.Tokens {
		out[key] = value
	}
	if variant, ok := selection.Manifest.Variants[selection.Variant]; ok {
		for key, value := range variant.Tokens {
			out[key] = value
		}
	}
	return out
}

// CSSVars derives inline CSS custom properties from resolved tokens.
func CSSVars(tokens map[string]string) string {
	order := []string{tokenBackground, tokenText, tokenBorder, tokenHeader, tokenAccent}
	out := ""
	for _, key := range order {
		if value, ok := tokens[key]; ok && value != "" {
			out += fmt.Sprintf("--%s: %s; ", key, value)
		}
	}
	return out
}

func paletteTokens(p model.Palette) map[string]string {
	return map[string]string{
		tokenBackground: p.Background,
		tokenText:       p.Text,
		tokenBorder:     p.Border,
		tokenHeader:     p.Header,
		tokenAccent:     p.Accent,
	}
}
