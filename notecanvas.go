// Package notecanvas exposes the canvas library's main entry points from the
// module root: templates, the registry, the note manager, and full-canvas
// rendering.
package notecanvas

import (
	"context"

	"github.com/goliatone/go-notecanvas/pkg/canvas"
	"github.com/goliatone/go-notecanvas/pkg/model"
	"github.com/goliatone/go-notecanvas/pkg/notes"
	"github.com/goliatone/go-notecanvas/pkg/registry"
	"github.com/goliatone/go-notecanvas/pkg/storage"
	"github.com/goliatone/go-notecanvas/pkg/template"
)

// Note is a placed canvas item.
type Note = model.Note

// NotePatch is a partial note update.
type NotePatch = model.NotePatch

// Position locates a note on the canvas.
type Position = model.Position

// Size is a note footprint in pixels.
type Size = model.Size

// Template is a reusable note descriptor.
type Template = template.Template

// Canvas composes the registry, manager, and renderer.
type Canvas = canvas.Canvas

// Registry stores templates by id.
type Registry = registry.Registry

// Manager owns the note collection.
type Manager = notes.Manager

// Store persists notes and custom templates.
type Store = storage.Store

// NewCanvas exposes the canvas constructor from the top-level module.
func NewCanvas(options ...canvas.Option) *canvas.Canvas {
	return canvas.New(options...)
}

// NewTemplate builds a template descriptor with defaults applied.
func NewTemplate(id, name, description string, options ...template.Option) *template.Template {
	return template.New(id, name, description, options...)
}

// NewFileStore opens directory-backed persistence.
func NewFileStore(dir string) (*storage.FileStore, error) {
	return storage.NewFileStore(dir)
}

// RenderHTML loads persisted state and renders the full canvas. It is the
// simplest entry point for callers that just want markup.
func RenderHTML(ctx context.Context, options ...canvas.Option) (string, error) {
	cv := canvas.New(options...)
	if err := cv.Load(ctx); err != nil {
		return "", err
	}
	return cv.Render(ctx)
}

// WithStore forwards the canvas store option.
func WithStore(store storage.Store) canvas.Option {
	return canvas.WithStore(store)
}

// WithRegistry forwards the canvas registry option.
func WithRegistry(reg *registry.Registry) canvas.Option {
	return canvas.WithRegistry(reg)
}
