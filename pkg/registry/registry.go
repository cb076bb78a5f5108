// Package registry holds the authoritative in-memory mapping of template id
// to descriptor. It is the single shared read model consumed by every note
// creation and rendering path.
package registry

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/goliatone/go-notecanvas/pkg/template"
)

// Registry stores templates by id, preserving registration order so callers
// can fall back to the first registered template.
type Registry struct {
	mu        sync.RWMutex
	templates map[string]*template.Template
	order     []string
	custom    map[string]bool
	log       zerolog.Logger
}

// Option customises the registry.
type Option func(*Registry)

// WithLogger injects a logger; the default discards everything.
func WithLogger(log zerolog.Logger) Option {
	return func(r *Registry) {
		r.log = log
	}
}

// New constructs an empty registry.
func New(options ...Option) *Registry {
	r := &Registry{
		templates: make(map[string]*template.Template),
		custom:    make(map[string]bool),
		log:       zerolog.Nop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r
}

// Register adds or updates a template. It returns false — non-fatally — when
// the descriptor is nil or lacks an id. Re-registering an existing id
// shallow-merges the supplied fields over the prior record: zero-valued
// fields of the incoming descriptor leave the stored ones untouched.
func (r *Registry) Register(t *template.Template) bool {
	if t == nil || t.ID == "" {
		r.log.Error().Msg("cannot register template: invalid template or missing ID")
		return false
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.templates[t.ID]
	if !ok {
		r.templates[t.ID] = t
		r.order = append(r.order, t.ID)
		return true
	}
	r.templates[t.ID] = mergeTemplates(existing, t)
	return true
}

// RegisterCustom registers a user-authored template and tags it so it can be
// cleared independently of built-ins.
func (r *Registry) RegisterCustom(t *template.Template) bool {
	if !r.Register(t) {
		return false
	}
	r.mu.Lock()
	r.custom[t.ID] = true
	r.mu.Unlock()
	return true
}

// Get returns the descriptor for an id. Callers must handle absence.
func (r *Registry) Get(id string) (*template.Template, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.templates[id]
	return t, ok
}

// Remove drops a template. Unknown ids are a no-op, not an error.
func (r *Registry) Remove(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.templates[id]; !ok {
		r.log.Warn().Str("template", id).Msg("template not found")
		return
	}
	delete(r.templates, id)
	delete(r.custom, id)
	for idx, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:idx], r.order[idx+1:]...)
			break
		}
	}
}

// List returns every registered template in registration order.
func (r *Registry) List() []*template.Template {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*template.Template, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.templates[id])
	}
	return out
}

// First returns the earliest registered template, the fallback used when a
// note references an unknown template id.
func (r *Registry) First() (*template.Template, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if len(r.order) == 0 {
		return nil, false
	}
	return r.templates[r.order[0]], true
}

// Len reports the number of registered templates.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.templates)
}

// IsCustom reports whether the id was registered as a user-authored template.
func (r *Registry) IsCustom(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.custom[id]
}

// mergeTemplates overlays the non-zero fields of next over prior, matching
// the template-model precedence: the newest registration wins per field.
func mergeTemplates(prior, next *template.Template) *template.Template {
	merged := *prior
	merged.ID = next.ID
	if next.Name != "" {
		merged.Name = next.Name
	}
	if next.Description != "" {
		merged.Description = next.Description
	}
	if next.DefaultSize.Width > 0 && next.DefaultSize.Height > 0 {
		merged.DefaultSize = next.DefaultSize
	}
	if next.DefaultContent != "" {
		merged.DefaultContent = next.DefaultContent
	}
	if next.Renderer != nil {
		merged.Renderer = next.Renderer
	}
	if next.CanvasComponent != nil {
		merged.CanvasComponent = next.CanvasComponent
	}
	if len(next.CustomControls) > 0 {
		merged.CustomControls = next.CustomControls
	}
	if len(next.Behaviors) > 0 {
		merged.Behaviors = next.Behaviors
	}
	merged.Handlers = prior.Handlers.Merged(next.Handlers)
	if len(next.Styles) > 0 {
		merged.Styles = next.Styles
	}
	if len(next.Themes) > 0 {
		merged.Themes = next.Themes
	}
	if len(next.Animations) > 0 {
		merged.Animations = next.Animations
	}
	if next.Accessibility.AriaLabels != nil || next.Accessibility.TextZoom > 0 {
		merged.Accessibility = next.Accessibility
	}
	return &merged
}
