// Package authoring implements the custom-template editor: a small state
// machine over basic and advanced drafts that terminates in a registry
// registration or a cancel.
package authoring

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/goliatone/go-notecanvas/pkg/model"
	"github.com/goliatone/go-notecanvas/pkg/registry"
	"github.com/goliatone/go-notecanvas/pkg/render"
	"github.com/goliatone/go-notecanvas/pkg/storage"
	"github.com/goliatone/go-notecanvas/pkg/template"
)

// Mode is the editor's current surface.
type Mode int

const (
	// ModeBasicEdit shows the basic markup buffer for editing.
	ModeBasicEdit Mode = iota
	// ModeBasicPreview shows the basic markup rendered, read-only.
	ModeBasicPreview
	// ModeAdvancedEdit shows the renderer-source buffer for editing.
	ModeAdvancedEdit
)

func (m Mode) String() string {
	switch m {
	case ModeBasicEdit:
		return "basic-edit"
	case ModeBasicPreview:
		return "basic-preview"
	case ModeAdvancedEdit:
		return "advanced-edit"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Draft holds the fields shared across modes plus one buffer per mode.
// Switching modes never touches the other mode's buffer.
type Draft struct {
	ID          string
	Name        string
	Description string
	Width       int
	Height      int

	BasicMarkup    string
	AdvancedSource string
}

// Option configures an Editor.
type Option func(*Editor)

// WithStore enables custom-template persistence on save.
func WithStore(store storage.Store) Option {
	return func(e *Editor) {
		e.store = store
	}
}

// WithLogger sets the editor logger.
func WithLogger(log zerolog.Logger) Option {
	return func(e *Editor) {
		e.log = log
	}
}

// Editor drives one authoring session. It opens in basic-edit with a
// suggested unique id and stays open until Save succeeds or Cancel is
// called; a failed save surfaces a dismissible error and keeps the session
// alive.
type Editor struct {
	registry *registry.Registry
	store    storage.Store
	log      zerolog.Logger

	mode    Mode
	open    bool
	draft   Draft
	lastErr string
}

// NewEditor opens an authoring session against a registry.
func NewEditor(reg *registry.Registry, options ...Option) (*Editor, error) {
	if reg == nil {
		return nil, errors.New("authoring: registry is required")
	}
	editor := &Editor{
		registry: reg,
		log:      zerolog.Nop(),
		mode:     ModeBasicEdit,
		open:     true,
		draft: Draft{
			ID:             SuggestID(reg),
			Width:          DefaultWidth,
			Height:         DefaultHeight,
			BasicMarkup:    DefaultBasicMarkup,
			AdvancedSource: DefaultAdvancedSource,
		},
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(editor)
	}
	return editor, nil
}

// SuggestID proposes a custom template id not present in the registry.
func SuggestID(reg *registry.Registry) string {
	for {
		id := "custom-" + uuid.NewString()[:8]
		if _, exists := reg.Get(id); !exists {
			return id
		}
	}
}

// Mode returns the current editor mode.
func (e *Editor) Mode() Mode {
	return e.mode
}

// Open reports whether the session is still live.
func (e *Editor) Open() bool {
	return e.open
}

// Draft returns the current draft snapshot.
func (e *Editor) Draft() Draft {
	return e.draft
}

// Err returns the last save error, empty when none is pending.
func (e *Editor) Err() string {
	return e.lastErr
}

// DismissError clears a pending save error.
func (e *Editor) DismissError() {
	e.lastErr = ""
}

// SetDetails updates the shared draft fields. Blank values leave fields
// untouched so partial updates compose.
func (e *Editor) SetDetails(id, name, description string) {
	if strings.TrimSpace(id) != "" {
		e.draft.ID = strings.TrimSpace(id)
	}
	if strings.TrimSpace(name) != "" {
		e.draft.Name = strings.TrimSpace(name)
	}
	if description != "" {
		e.draft.Description = description
	}
}

// SetSize updates the default note footprint of the draft.
func (e *Editor) SetSize(width, height int) {
	if width > 0 {
		e.draft.Width = width
	}
	if height > 0 {
		e.draft.Height = height
	}
}

// SetBasicMarkup replaces the basic-mode buffer.
func (e *Editor) SetBasicMarkup(markup string) {
	e.draft.BasicMarkup = markup
}

// SetAdvancedSource replaces the advanced-mode buffer.
func (e *Editor) SetAdvancedSource(source string) {
	e.draft.AdvancedSource = source
}

// TogglePreview flips between basic-edit and basic-preview. It is a no-op in
// advanced mode, which has no preview surface.
func (e *Editor) TogglePreview() {
	switch e.mode {
	case ModeBasicEdit:
		e.mode = ModeBasicPreview
	case ModeBasicPreview:
		e.mode = ModeBasicEdit
	}
}

// ToggleAdvanced switches between the basic surfaces and advanced-edit. Both
// buffers survive the switch.
func (e *Editor) ToggleAdvanced() {
	if e.mode == ModeAdvancedEdit {
		e.mode = ModeBasicEdit
		return
	}
	e.mode = ModeAdvancedEdit
}

// Preview renders the basic buffer for display, sanitized.
func (e *Editor) Preview() string {
	return render.SanitizeMarkup(e.draft.BasicMarkup)
}

// Save validates the draft, registers it as a custom template, persists the
// custom set when a store is attached, and closes the session. Validation and
// registration failures keep the session open with a dismissible error; a
// persistence failure is logged and does not block the save.
func (e *Editor) Save(ctx context.Context) error {
	if !e.open {
		return errors.New("authoring: session is closed")
	}
	if err := e.validate(); err != nil {
		e.lastErr = err.Error()
		return err
	}

	tpl := e.buildTemplate()
	if !e.registry.RegisterCustom(tpl) {
		err := fmt.Errorf("authoring: register template %q failed", e.draft.ID)
		e.lastErr = err.Error()
		return err
	}

	if e.store != nil {
		if err := e.registry.SaveCustom(ctx, e.store); err != nil {
			e.log.Warn().Err(err).Str("template", e.draft.ID).
				Msg("persist custom templates failed")
		}
	}

	e.lastErr = ""
	e.open = false
	return nil
}

// Cancel closes the session without registering.
func (e *Editor) Cancel() {
	e.open = false
}

func (e *Editor) validate() error {
	if strings.TrimSpace(e.draft.ID) == "" {
		return errors.New("authoring: template id is required")
	}
	if strings.TrimSpace(e.draft.Name) == "" {
		return errors.New("authoring: template name is required")
	}
	if _, exists := e.registry.Get(e.draft.ID); exists {
		return fmt.Errorf("authoring: template id %q already exists", e.draft.ID)
	}
	return nil
}

// buildTemplate materialises the draft. In advanced mode the authored source
// is attached unevaluated; it only compiles when the template first renders.
func (e *Editor) buildTemplate() *template.Template {
	options := []template.Option{
		template.WithDefaultSize(model.Size{Width: e.draft.Width, Height: e.draft.Height}),
	}
	if e.mode == ModeAdvancedEdit {
		options = append(options,
			template.WithRenderer(template.NewSourcedRenderer(e.draft.AdvancedSource)))
	} else {
		options = append(options, template.WithDefaultContent(e.draft.BasicMarkup))
	}
	return template.New(e.draft.ID, e.draft.Name, e.draft.Description, options...)
}
