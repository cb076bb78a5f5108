package render

import (
	"strings"
	"testing"

	"github.com/goliatone/go-notecanvas/pkg/template"
)

func TestPaletteSelector_ResolvesVariants(t *testing.T) {
	selector := NewPaletteSelector()
	selector.RegisterTemplate(template.New("plain", "Plain", ""))

	light, err := selector.Select("plain", template.ThemeLight)
	if err != nil {
		t.Fatalf("select light: %v", err)
	}
	if got := Tokens(light)["note-bg"]; got != "#ffffff" {
		t.Fatalf("light background token = %q", got)
	}

	dark, err := selector.Select("plain", template.ThemeDark)
	if err != nil {
		t.Fatalf("select dark: %v", err)
	}
	if got := Tokens(dark)["note-bg"]; got != "#2d2d2d" {
		t.Fatalf("dark background token = %q", got)
	}
	if got := Tokens(dark)["note-accent"]; got != "#6272a4" {
		t.Fatalf("dark accent token = %q", got)
	}
}

func TestPaletteSelector_UnknownVariantFallsBackToBase(t *testing.T) {
	selector := NewPaletteSelector()
	selector.RegisterTemplate(template.New("plain", "Plain", ""))

	selection, err := selector.Select("plain", "sepia")
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if got := Tokens(selection)["note-bg"]; got != "#ffffff" {
		t.Fatalf("unknown variant should resolve base tokens, got %q", got)
	}
}

func TestPaletteSelector_UnknownTemplateErrors(t *testing.T) {
	selector := NewPaletteSelector()
	if _, err := selector.Select("nope", ""); err == nil {
		t.Fatalf("unknown template should error")
	}
}

func TestCSSVars_EmitsCustomProperties(t *testing.T) {
	vars := CSSVars(map[string]string{
		"note-bg":   "#fff",
		"note-text": "#333",
	})
	if !strings.Contains(vars, "--note-bg: #fff;") || !strings.Contains(vars, "--note-text: #333;") {
		t.Fatalf("unexpected css vars: %q", vars)
	}
}
