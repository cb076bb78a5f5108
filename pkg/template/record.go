package template

import "github.com/goliatone/go-notecanvas/pkg/model"

// Record is the serialisable form of a descriptor: everything except live
// function values. Authored renderers survive as raw source and are rebuilt
// as sourced renderers — still uncompiled — when the record is hydrated.
type Record struct {
	ID             string                     `json:"id" yaml:"id"`
	Name           string                     `json:"name" yaml:"name"`
	Description    string                     `json:"description,omitempty" yaml:"description,omitempty"`
	DefaultSize    model.Size                 `json:"defaultSize" yaml:"defaultSize"`
	DefaultContent string                     `json:"defaultContent,omitempty" yaml:"defaultContent,omitempty"`
	Behaviors      model.Behaviors            `json:"behaviors,omitempty" yaml:"behaviors,omitempty"`
	Styles         map[string]string          `json:"styles,omitempty" yaml:"styles,omitempty"`
	Themes         map[string]model.Palette   `json:"themes,omitempty" yaml:"themes,omitempty"`
	Animations     map[string]model.Animation `json:"animations,omitempty" yaml:"animations,omitempty"`
	Accessibility  *model.Accessibility       `json:"accessibility,omitempty" yaml:"accessibility,omitempty"`
	RendererSource string                     `json:"rendererSource,omitempty" yaml:"rendererSource,omitempty"`
	Advanced       bool                       `json:"advanced,omitempty" yaml:"advanced,omitempty"`
}

// NewRecord captures a descriptor's serialisable state. Built-in renderer
// functions and handler hooks do not round-trip; sourced renderers keep
// their raw text.
func NewRecord(t *Template) Record {
	if t == nil {
		return Record{}
	}
	rec := Record{
		ID:             t.ID,
		Name:           t.Name,
		Description:    t.Description,
		DefaultSize:    t.DefaultSize,
		DefaultContent: t.DefaultContent,
		Behaviors:      t.Behaviors.Clone(),
		Styles:         cloneStyles(t.Styles),
		Themes:         clonePalettes(t.Themes),
		Animations:     cloneAnimations(t.Animations),
	}
	a11y := t.Accessibility
	rec.Accessibility = &a11y
	if t.Renderer.Sourced() {
		rec.RendererSource = t.Renderer.Source()
		rec.Advanced = true
	}
	return rec
}

// Template hydrates the record into a live descriptor, reapplying the
// documented defaults underneath the recorded values. Advanced records get a
// sourced renderer whose compilation stays deferred until first render.
func (r Record) Template() *Template {
	options := []Option{
		WithDefaultSize(r.DefaultSize),
		WithDefaultContent(r.DefaultContent),
	}
	if r.Behaviors != nil {
		options = append(options, WithBehaviors(r.Behaviors))
	}
	if r.Styles != nil {
		options = append(options, WithStyles(r.Styles))
	}
	if r.Themes != nil {
		options = append(options, WithThemes(r.Themes))
	}
	if r.Animations != nil {
		options = append(options, WithAnimations(r.Animations))
	}
	if r.Accessibility != nil {
		options = append(options, WithAccessibility(*r.Accessibility))
	}
	if r.Advanced && r.RendererSource != "" {
		options = append(options, WithRenderer(NewSourcedRenderer(r.RendererSource)))
	}
	return New(r.ID, r.Name, r.Description, options...)
}

func clonePalettes(in map[string]model.Palette) map[string]model.Palette {
	if in == nil {
		return nil
	}
	out := make(map[string]model.Palette, len(in))
	for name, palette := range in {
		out[name] = palette
	}
	return out
}

func cloneAnimations(in map[string]model.Animation) map[string]model.Animation {
	if in == nil {
		return nil
	}
	out := make(map[string]model.Animation, len(in))
	for name, animation := range in {
		out[name] = animation
	}
	return out
}
