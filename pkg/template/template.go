package template

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-notecanvas/pkg/model"
)

// Template is a reusable descriptor defining a note's defaults, styling,
// behavior flags, lifecycle handlers, and optional custom renderer. Once
// registered it is treated as immutable; re-registration replaces fields
// wholesale through the registry's merge.
type Template struct {
	ID          string
	Name        string
	Description string

	DefaultSize    model.Size
	DefaultContent string
	DefaultTheme   string

	Renderer        *Renderer
	CanvasComponent RenderFunc
	CustomControls  model.Controls

	Behaviors     model.Behaviors
	Handlers      Handlers
	Styles        map[string]string
	Themes        map[string]model.Palette
	Animations    map[string]model.Animation
	Accessibility model.Accessibility
}

// Option customises a descriptor during construction.
type Option func(*Template)

// WithDefaultSize sets the template's default note footprint.
func WithDefaultSize(size model.Size) Option {
	return func(t *Template) {
		if size.Width > 0 && size.Height > 0 {
			t.DefaultSize = size
		}
	}
}

// WithDefaultContent sets the content new notes start with.
func WithDefaultContent(content string) Option {
	return func(t *Template) {
		t.DefaultContent = content
	}
}

// WithDefaultTheme sets the theme new notes start with. Unset templates
// default to light.
func WithDefaultTheme(name string) Option {
	return func(t *Template) {
		if name != "" {
			t.DefaultTheme = name
		}
	}
}

// WithRenderer attaches a custom renderer.
func WithRenderer(renderer *Renderer) Option {
	return func(t *Template) {
		t.Renderer = renderer
	}
}

// WithCanvasComponent attaches a renderable injected once at canvas level.
func WithCanvasComponent(fn RenderFunc) Option {
	return func(t *Template) {
		t.CanvasComponent = fn
	}
}

// WithCustomControls overlays footer controls by id.
func WithCustomControls(controls model.Controls) Option {
	return func(t *Template) {
		for id, control := range controls {
			t.CustomControls[id] = control
		}
	}
}

// WithBehaviors overlays capability flags key-by-key over the defaults.
func WithBehaviors(behaviors model.Behaviors) Option {
	return func(t *Template) {
		for key, value := range behaviors {
			t.Behaviors[key] = value
		}
	}
}

// WithHandlers overlays lifecycle hooks field-by-field over the defaults.
func WithHandlers(handlers Handlers) Option {
	return func(t *Template) {
		t.Handlers = t.Handlers.Merged(handlers)
	}
}

// WithStyles overlays presentational hints key-by-key.
func WithStyles(styles map[string]string) Option {
	return func(t *Template) {
		for key, value := range styles {
			t.Styles[key] = value
		}
	}
}

// WithThemes merges custom palettes over the defaults by theme name. The
// stock light/dark palettes survive unless a custom palette shares the name.
func WithThemes(themes map[string]model.Palette) Option {
	return func(t *Template) {
		for name, palette := range themes {
			t.Themes[name] = palette
		}
	}
}

// WithAnimations overlays animation hints by lifecycle name.
func WithAnimations(animations map[string]model.Animation) Option {
	return func(t *Template) {
		for name, animation := range animations {
			t.Animations[name] = animation
		}
	}
}

// WithAccessibility merges assistive hints: map entries key-by-key, scalar
// fields replaced.
func WithAccessibility(a11y model.Accessibility) Option {
	return func(t *Template) {
		for key, value := range a11y.AriaLabels {
			t.Accessibility.AriaLabels[key] = value
		}
		for key, value := range a11y.KeyboardShortcuts {
			t.Accessibility.KeyboardShortcuts[key] = value
		}
		t.Accessibility.HighContrast = a11y.HighContrast
		if a11y.TextZoom > 0 {
			t.Accessibility.TextZoom = a11y.TextZoom
		}
	}
}

// New constructs a descriptor, applying the documented defaults for every
// omitted behaviors/handlers/themes/animations/accessibility key and then
// overlaying caller-supplied values key-by-key.
func New(id, name, description string, options ...Option) *Template {
	t := &Template{
		ID:             id,
		Name:           name,
		Description:    description,
		DefaultSize:    DefaultSize,
		CustomControls: model.Controls{},
		Behaviors:      DefaultBehaviors(),
		Handlers:       DefaultHandlers(),
		Styles:         map[string]string{},
		Themes:         DefaultThemes(),
		Animations:     DefaultAnimations(),
		Accessibility:  DefaultAccessibility(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(t)
	}
	return t
}

// NoteOptions tune note creation beyond id and position.
type NoteOptions struct {
	Content   string
	Size      *model.Size
	Theme     string
	Metadata  map[string]any
	Locked    bool
	Minimized bool
}

// NewNote is the factory producing a note instance from this template. The
// id is generated when empty, the position defaults to {100,100}, and every
// mutable container — including the template's own default size — is cloned
// so later note mutation never aliases template state.
func (t *Template) NewNote(id string, pos *model.Position, opts NoteOptions) *model.Note {
	if id == "" {
		id = "note-" + uuid.NewString()
	}
	position := DefaultPosition
	if pos != nil {
		position = *pos
	}
	content := opts.Content
	if content == "" {
		content = t.DefaultContent
	}
	size := t.DefaultSize
	if opts.Size != nil {
		size = *opts.Size
	}
	theme := opts.Theme
	if theme == "" {
		theme = t.DefaultTheme
	}
	if theme == "" {
		theme = ThemeLight
	}
	metadata := make(map[string]any, len(opts.Metadata))
	for key, value := range opts.Metadata {
		metadata[key] = value
	}
	now := time.Now().UTC()

	return &model.Note{
		ID:             id,
		TemplateID:     t.ID,
		Position:       position,
		Size:           size,
		Content:        content,
		Behaviors:      t.Behaviors.Clone(),
		CustomControls: t.CustomControls.Clone(),
		Styles:         cloneStyles(t.Styles),
		Theme:          theme,
		Locked:         opts.Locked,
		Minimized:      opts.Minimized,
		Metadata:       metadata,
		History:        model.History{Past: []string{}, Future: []string{}},
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// ThemeStyles resolves a palette by name, falling back to light.
func (t *Template) ThemeStyles(name string) model.Palette {
	if palette, ok := t.Themes[name]; ok {
		return palette
	}
	return t.Themes[ThemeLight]
}

// Validate reports whether the descriptor can be registered.
func (t *Template) Validate() error {
	if t == nil {
		return fmt.Errorf("template: descriptor is nil")
	}
	if t.ID == "" {
		return fmt.Errorf("template: id is required")
	}
	return nil
}

func cloneStyles(in map[string]string) map[string]string {
	if in == nil {
		return nil
	}
	out := make(map[string]string, len(in))
	for key, value := range in {
		out[key] = value
	}
	return out
}
