package render

import (
	"context"
	"errors"
	"fmt"
	"html"
	"sort"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/goliatone/go-notecanvas/pkg/model"
	"github.com/goliatone/go-notecanvas/pkg/notes"
	"github.com/goliatone/go-notecanvas/pkg/registry"
	"github.com/goliatone/go-notecanvas/pkg/template"
)

// Chrome template names resolved against the embedded bundle.
const (
	noteTemplate   = "note"
	errorTemplate  = "error"
	canvasTemplate = "canvas"
)

// Options carries per-render state the dispatch layer does not own.
type Options struct {
	Selected bool
	Scale    float64

	Update        model.UpdateFunc
	Select        func()
	Delete        func()
	ContentChange func(content string)
}

// Dispatcher resolves notes against the registry and renders either the
// template's custom markup or the generic note chrome. A note whose template
// is missing renders as a deletable error placeholder, never a failure.
type Dispatcher struct {
	registry *registry.Registry
	manager  *notes.Manager
	engine   TemplateRenderer
	themes   *PaletteSelector
	log      zerolog.Logger
}

// DispatcherOption configures a Dispatcher during construction.
type DispatcherOption func(*Dispatcher)

// WithRegistry sets the template registry notes resolve against.
func WithRegistry(reg *registry.Registry) DispatcherOption {
	return func(d *Dispatcher) {
		d.registry = reg
	}
}

// WithManager attaches the note manager used by id-based rendering and
// gesture commits.
func WithManager(manager *notes.Manager) DispatcherOption {
	return func(d *Dispatcher) {
		d.manager = manager
	}
}

// WithEngine overrides the chrome template engine.
func WithEngine(engine TemplateRenderer) DispatcherOption {
	return func(d *Dispatcher) {
		if engine != nil {
			d.engine = engine
		}
	}
}

// WithThemeSelector attaches a palette selector; without one palettes come
// straight from the descriptor.
func WithThemeSelector(selector *PaletteSelector) DispatcherOption {
	return func(d *Dispatcher) {
		d.themes = selector
	}
}

// WithLogger sets the dispatch logger.
func WithLogger(log zerolog.Logger) DispatcherOption {
	return func(d *Dispatcher) {
		d.log = log
	}
}

// NewDispatcher builds a dispatcher over the embedded chrome templates.
func NewDispatcher(options ...DispatcherOption) (*Dispatcher, error) {
	dispatcher := &Dispatcher{log: zerolog.Nop()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(dispatcher)
	}
	if dispatcher.registry == nil {
		return nil, errors.New("render: dispatcher needs a registry")
	}
	if dispatcher.engine == nil {
		engine, err := NewEngine(WithEngineFS(TemplatesFS()))
		if err != nil {
			return nil, fmt.Errorf("render: build chrome engine: %w", err)
		}
		dispatcher.engine = engine
	}
	return dispatcher, nil
}

// RenderNoteByID renders a managed note by id.
func (d *Dispatcher) RenderNoteByID(ctx context.Context, id string, opts Options) (string, error) {
	if d.manager == nil {
		return "", errors.New("render: dispatcher has no manager")
	}
	note, ok := d.manager.Get(id)
	if !ok {
		return "", fmt.Errorf("render: note %q not found", id)
	}
	return d.RenderNote(ctx, note, opts)
}

// RenderNote renders one note. A missing template yields the error chrome; a
// failing custom renderer yields an inline error inside an otherwise intact
// note shell. Only chrome engine failures surface as errors.
func (d *Dispatcher) RenderNote(ctx context.Context, note model.Note, opts Options) (string, error) {
	tpl, ok := d.registry.Get(note.TemplateID)
	if !ok {
		d.log.Warn().Str("note", note.ID).Str("template", note.TemplateID).
			Msg("template not found, rendering error placeholder")
		return d.engine.RenderTemplate(errorTemplate, map[string]any{
			"id":          note.ID,
			"template_id": note.TemplateID,
			"x":           fmtCoord(note.Position.X),
			"y":           fmtCoord(note.Position.Y),
			"width":       strconv.Itoa(note.Size.Width),
			"height":      strconv.Itoa(note.Size.Height),
			"z":           strconv.Itoa(note.ZIndex),
		})
	}

	behaviors := ResolveBehaviors(DispatchBehaviors(), tpl.Behaviors, note.Behaviors)
	palette := d.resolvePalette(tpl, note.Theme)

	data := map[string]any{
		"id":             note.ID,
		"template_id":    tpl.ID,
		"title":          tpl.Name,
		"selected":       opts.Selected,
		"draggable_attr": boolAttr(behaviors[model.BehaviorDraggable] && !note.Locked),
		"resizable_attr": boolAttr(behaviors[model.BehaviorResizable] && !note.Locked),
		"resizable":      behaviors[model.BehaviorResizable] && !note.Locked,
		"closable":       behaviors[model.BehaviorClosable],
		"editable":       behaviors[model.BehaviorEditable] && !note.Locked,
		"min_width":      strconv.Itoa(EnvelopeMinDimension),
		"min_height":     strconv.Itoa(EnvelopeMinDimension),
		"max_width":      strconv.Itoa(EnvelopeMaxDimension),
		"max_height":     strconv.Itoa(EnvelopeMaxDimension),
		"x":              fmtCoord(note.Position.X),
		"y":              fmtCoord(note.Position.Y),
		"width":          strconv.Itoa(note.Size.Width),
		"height":         strconv.Itoa(note.Size.Height),
		"z":              strconv.Itoa(note.ZIndex),
		"style":          d.inlineStyle(tpl, note, palette),
		"content":        note.Content,
		"content_html":   contentHTML(note.Content),
		"controls":       controlList(tpl, note),
		"aria_close":     ariaLabel(tpl, "close", "Close note"),
		"aria_resize":    ariaLabel(tpl, "resize", "Resize note"),
		"custom":         false,
	}

	if tpl.Renderer != nil {
		fragment, err := tpl.Renderer.Render(ctx, template.RenderContext{
			Note:          note,
			Template:      tpl,
			Selected:      opts.Selected,
			Behaviors:     behaviors,
			Palette:       palette,
			Scale:         opts.Scale,
			Update:        opts.Update,
			Select:        opts.Select,
			Delete:        opts.Delete,
			ContentChange: opts.ContentChange,
		})
		data["custom"] = true
		if err != nil {
			d.log.Warn().Err(err).Str("note", note.ID).Str("template", tpl.ID).
				Msg("custom renderer failed")
			data["custom_html"] = fmt.Sprintf(
				`<div class="note-render-error">Renderer error: %s</div>`,
				html.EscapeString(err.Error()),
			)
		} else {
			data["custom_html"] = SanitizeMarkup(fragment)
		}
	}

	return d.engine.RenderTemplate(noteTemplate, data)
}

func (d *Dispatcher) resolvePalette(tpl *template.Template, themeName string) model.Palette {
	if themeName == "" {
		themeName = template.ThemeLight
	}
	if d.themes != nil {
		if selection, err := d.themes.Select(tpl.ID, themeName); err == nil {
			if palette, ok := paletteFromTokens(Tokens(selection)); ok {
				return palette
			}
		}
	}
	return tpl.ThemeStyles(themeName)
}

func (d *Dispatcher) inlineStyle(tpl *template.Template, note model.Note, palette model.Palette) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "background-color: %s; color: %s; border: 1px solid %s; ",
		palette.Background, palette.Text, palette.Border)
	sb.WriteString(CSSVars(paletteTokens(palette)))

	for _, styles := range []map[string]string{tpl.Styles, note.Styles} {
		keys := make([]string, 0, len(styles))
		for key := range styles {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			fmt.Fprintf(&sb, "%s: %s; ", key, styles[key])
		}
	}
	return strings.TrimSpace(sb.String())
}

func paletteFromTokens(tokens map[string]string) (model.Palette, bool) {
	if len(tokens) == 0 {
		return model.Palette{}, false
	}
	return model.Palette{
		Background: tokens[tokenBackground],
		Text:       tokens[tokenText],
		Border:     tokens[tokenBorder],
		Header:     tokens[tokenHeader],
		Accent:     tokens[tokenAccent],
	}, true
}

func controlList(tpl *template.Template, note model.Note) []map[string]any {
	merged := make(map[string]model.Control, len(tpl.CustomControls)+len(note.CustomControls))
	for id, control := range tpl.CustomControls {
		merged[id] = control
	}
	for id, control := range note.CustomControls {
		merged[id] = control
	}
	ids := make([]string, 0, len(merged))
	for id := range merged {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	out := make([]map[string]any, 0, len(ids))
	for _, id := range ids {
		out = append(out, map[string]any{"id": id, "label": merged[id].Label})
	}
	return out
}

func ariaLabel(tpl *template.Template, key, fallback string) string {
	if label, ok := tpl.Accessibility.AriaLabels[key]; ok && label != "" {
		return label
	}
	return fallback
}

func contentHTML(content string) string {
	escaped := html.EscapeString(content)
	return strings.ReplaceAll(escaped, "\n", "<br>")
}

func boolAttr(v bool) string {
	if v {
		return "true"
	}
	return "false"
}

func fmtCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
