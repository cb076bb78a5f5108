package template

import (
	"context"
	"fmt"
	"sync"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-notecanvas/pkg/model"
)

// RenderContext carries everything a custom renderer may need: the note
// snapshot, its resolved template, selection state, and the callback set the
// dispatch layer owns.
type RenderContext struct {
	Note      model.Note
	Template  *Template
	Selected  bool
	Behaviors model.Behaviors
	Palette   model.Palette
	Scale     float64

	Update        model.UpdateFunc
	Select        func()
	Delete        func()
	ContentChange func(content string)
}

// RenderFunc is a built-in custom renderer: a pure function from render
// context to an HTML fragment.
type RenderFunc func(ctx context.Context, rc RenderContext) (string, error)

// Renderer is the tagged variant behind a template's custom renderer:
// either Builtin (a function reference) or Sourced (raw authored source,
// compiled lazily on first render, with the compile result cached — including
// failure, which becomes a persistent per-template error state).
type Renderer struct {
	fn     RenderFunc
	source string

	once       sync.Once
	compiled   *pongo2.Template
	compileErr error
}

// NewRenderer wraps a built-in render function.
func NewRenderer(fn RenderFunc) *Renderer {
	if fn == nil {
		return nil
	}
	return &Renderer{fn: fn}
}

// NewSourcedRenderer stores authored renderer source for deferred
// compilation. The source is not validated here; compilation happens on
// first render.
func NewSourcedRenderer(source string) *Renderer {
	return &Renderer{source: source}
}

// Sourced reports whether this renderer carries authored source.
func (r *Renderer) Sourced() bool {
	return r != nil && r.fn == nil
}

// Source returns the raw authored source, empty for built-in renderers.
func (r *Renderer) Source() string {
	if r == nil {
		return ""
	}
	return r.source
}

// Render produces the note's content fragment. Failures — a panicking
// built-in, a source that does not compile, or an evaluation error — are
// returned as errors scoped to this renderer; they never propagate as panics.
func (r *Renderer) Render(ctx context.Context, rc RenderContext) (out string, err error) {
	if r == nil {
		return "", fmt.Errorf("template: renderer is nil")
	}
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("template: renderer panic: %v", rec)
		}
	}()

	if r.fn != nil {
		return r.fn(ctx, rc)
	}

	r.once.Do(func() {
		r.compiled, r.compileErr = pongo2.FromString(r.source)
	})
	if r.compileErr != nil {
		return "", fmt.Errorf("template: compile renderer source: %w", r.compileErr)
	}

	result, err := r.compiled.Execute(pongo2.Context{
		"note":     rc.Note,
		"content":  rc.Note.Content,
		"selected": rc.Selected,
		"palette":  rc.Palette,
		"metadata": rc.Note.Metadata,
		"theme":    rc.Note.Theme,
	})
	if err != nil {
		return "", fmt.Errorf("template: execute renderer source: %w", err)
	}
	return result, nil
}
