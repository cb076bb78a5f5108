// Package canvas wires the registry, note manager, and render dispatcher into
// a single entry point mirroring the way applications consume the library.
package canvas

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/goliatone/go-notecanvas/pkg/model"
	"github.com/goliatone/go-notecanvas/pkg/notes"
	"github.com/goliatone/go-notecanvas/pkg/registry"
	"github.com/goliatone/go-notecanvas/pkg/render"
	"github.com/goliatone/go-notecanvas/pkg/storage"
	"github.com/goliatone/go-notecanvas/pkg/template"
)

// Option configures a Canvas during construction.
type Option func(*Canvas)

// WithRegistry supplies a pre-built template registry. Without it the canvas
// seeds a registry with the built-in templates.
func WithRegistry(reg *registry.Registry) Option {
	return func(c *Canvas) {
		c.registry = reg
	}
}

// WithStore attaches persistence for notes and custom templates.
func WithStore(store storage.Store) Option {
	return func(c *Canvas) {
		c.store = store
	}
}

// WithScale sets the canvas zoom factor.
func WithScale(scale float64) Option {
	return func(c *Canvas) {
		if scale > 0 {
			c.scale = scale
		}
	}
}

// WithLogger sets the logger shared by the canvas components.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Canvas) {
		c.log = log
	}
}

// WithInitialNotes seeds the manager for first runs and failed loads.
func WithInitialNotes(seed []model.Note) Option {
	return func(c *Canvas) {
		c.seed = seed
	}
}

// Canvas coordinates the template registry, note manager, theme selection,
// and render dispatch. Missing dependencies are initialised with the built-in
// implementations so callers can start with a single constructor call.
type Canvas struct {
	registry *registry.Registry
	manager  *notes.Manager
	renderer *render.Dispatcher
	engine   render.TemplateRenderer
	themes   *render.PaletteSelector
	store    storage.Store
	log      zerolog.Logger
	scale    float64
	seed     []model.Note

	initialiseErr error
}

// New constructs a Canvas applying any provided options.
func New(options ...Option) *Canvas {
	c := &Canvas{
		log:   zerolog.Nop(),
		scale: 1.0,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(c)
	}
	c.applyDefaults()
	return c
}

func (c *Canvas) applyDefaults() {
	if c.registry == nil {
		c.registry = registry.New(registry.WithLogger(c.log))
		c.registry.Seed()
	}

	managerOptions := []notes.Option{notes.WithLogger(c.log)}
	if c.store != nil {
		managerOptions = append(managerOptions, notes.WithStore(c.store))
	}
	if len(c.seed) > 0 {
		managerOptions = append(managerOptions, notes.WithInitialNotes(c.seed))
	}
	c.manager = notes.NewManager(c.registry, managerOptions...)

	c.themes = render.NewPaletteSelector()
	for _, tpl := range c.registry.List() {
		c.themes.RegisterTemplate(tpl)
	}

	engine, err := render.NewEngine(render.WithEngineFS(render.TemplatesFS()))
	if err != nil {
		c.initialiseErr = fmt.Errorf("canvas: build engine: %w", err)
		return
	}
	c.engine = engine

	dispatcher, err := render.NewDispatcher(
		render.WithEngine(engine),
		render.WithRegistry(c.registry),
		render.WithManager(c.manager),
		render.WithThemeSelector(c.themes),
		render.WithLogger(c.log),
	)
	if err != nil {
		c.initialiseErr = fmt.Errorf("canvas: build dispatcher: %w", err)
		return
	}
	c.renderer = dispatcher
}

// Registry exposes the template registry.
func (c *Canvas) Registry() *registry.Registry {
	return c.registry
}

// Notes exposes the note manager.
func (c *Canvas) Notes() *notes.Manager {
	return c.manager
}

// Dispatcher exposes the render dispatcher for gesture commits.
func (c *Canvas) Dispatcher() *render.Dispatcher {
	return c.renderer
}

// Load restores persisted notes and custom templates. Safe to call without a
// store: the manager then starts from the seed.
func (c *Canvas) Load(ctx context.Context) error {
	if err := c.initialiseErr; err != nil {
		return err
	}
	if c.store != nil {
		if err := c.registry.LoadCustom(ctx, c.store); err != nil {
			return fmt.Errorf("canvas: load custom templates: %w", err)
		}
		for _, tpl := range c.registry.List() {
			c.themes.RegisterTemplate(tpl)
		}
	}
	c.manager.Load(ctx)
	return nil
}

// AddNote creates a note from a template at the given position and returns
// its id.
func (c *Canvas) AddNote(ctx context.Context, pos model.Position, templateID string) (string, error) {
	if err := c.initialiseErr; err != nil {
		return "", err
	}
	return c.manager.Add(ctx, pos, templateID)
}

// RegisterTemplate registers a template and refreshes its theme manifest.
func (c *Canvas) RegisterTemplate(tpl *template.Template) bool {
	if !c.registry.Register(tpl) {
		return false
	}
	c.themes.RegisterTemplate(tpl)
	return true
}

// Render produces the full canvas markup: every note by ascending z-index,
// followed by one canvas component fragment per template that declares one.
func (c *Canvas) Render(ctx context.Context) (string, error) {
	if ctx == nil {
		return "", errors.New("canvas: context is required")
	}
	if err := c.initialiseErr; err != nil {
		return "", err
	}

	ordered := c.manager.Notes()
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].ZIndex < ordered[j].ZIndex
	})

	selected := c.manager.Selected()
	fragments := make([]string, 0, len(ordered))
	for _, note := range ordered {
		fragment, err := c.renderer.RenderNote(ctx, note, render.Options{
			Selected: note.ID == selected,
			Scale:    c.scale,
		})
		if err != nil {
			return "", fmt.Errorf("canvas: render note %q: %w", note.ID, err)
		}
		fragments = append(fragments, fragment)
	}

	components := c.renderComponents(ctx)

	return c.engine.RenderTemplate("canvas", map[string]any{
		"scale":      strconv.FormatFloat(c.scale, 'f', -1, 64),
		"notes":      fragments,
		"components": components,
	})
}

// renderComponents renders each template's canvas component once, regardless
// of how many notes reference the template. A failing component is skipped,
// it never takes the canvas down.
func (c *Canvas) renderComponents(ctx context.Context) []string {
	var fragments []string
	for _, tpl := range c.registry.List() {
		if tpl.CanvasComponent == nil {
			continue
		}
		fragment, err := tpl.CanvasComponent(ctx, template.RenderContext{
			Template: tpl,
			Scale:    c.scale,
		})
		if err != nil {
			c.log.Warn().Err(err).Str("template", tpl.ID).Msg("canvas component failed")
			continue
		}
		fragments = append(fragments, render.SanitizeMarkup(fragment))
	}
	return fragments
}
