// Package notes owns the note collection: creation, partial-update merge,
// deletion, selection, and best-effort persistence to durable storage.
package notes

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/goliatone/go-notecanvas/pkg/model"
	"github.com/goliatone/go-notecanvas/pkg/registry"
	"github.com/goliatone/go-notecanvas/pkg/storage"
	"github.com/goliatone/go-notecanvas/pkg/template"
)

// StandardSize pins every freshly added note to a predictable footprint
// regardless of the template's own default size. Template defaults still
// apply to content, behaviors, and controls.
var StandardSize = model.Size{Width: 250, Height: 150}

// ErrNoTemplates is returned by Add when the registry is empty; nothing is
// created and the collection is untouched.
var ErrNoTemplates = errors.New("notes: no templates available")

// Manager is the single owner of the note collection. All mutations are
// synchronous and atomic with respect to the in-memory slice; other
// components receive read-only snapshots plus callbacks.
type Manager struct {
	mu       sync.Mutex
	registry *registry.Registry
	store    storage.Store
	log      zerolog.Logger

	notes    []*model.Note
	selected string
	state    LoadState
	seed     []model.Note
}

// Option customises the manager.
type Option func(*Manager)

// WithStore wires durable storage; without it the manager is memory-only.
func WithStore(store storage.Store) Option {
	return func(m *Manager) {
		m.store = store
	}
}

// WithInitialNotes seeds the collection used when no saved data exists or
// the saved payload cannot be read.
func WithInitialNotes(seed []model.Note) Option {
	return func(m *Manager) {
		m.seed = seed
	}
}

// WithLogger injects a logger; the default discards everything.
func WithLogger(log zerolog.Logger) Option {
	return func(m *Manager) {
		m.log = log
	}
}

// NewManager constructs a manager bound to a template registry.
func NewManager(reg *registry.Registry, options ...Option) *Manager {
	m := &Manager{
		registry: reg,
		log:      zerolog.Nop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(m)
	}
	return m
}

// Load reads the saved collection exactly once. An absent or unparsable
// payload falls back to the initial seed; repeated calls are no-ops. After
// Load completes, every collection change is written back best-effort.
func (m *Manager) Load(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state != LoadUninitialized {
		return
	}

	if m.store == nil {
		m.applySeedLocked()
		m.state = Loaded
		return
	}

	data, err := m.store.Load(ctx, storage.KeyNotes)
	if errors.Is(err, storage.ErrNotFound) {
		m.applySeedLocked()
		m.state = Loaded
		return
	}
	if err != nil {
		m.log.Error().Err(err).Msg("error loading notes")
		m.applySeedLocked()
		m.state = LoadFailed
		return
	}

	var saved []model.Note
	if err := json.Unmarshal(data, &saved); err != nil {
		m.log.Error().Err(err).Msg("error parsing saved notes")
		m.applySeedLocked()
		m.state = LoadFailed
		return
	}
	m.notes = m.notes[:0]
	for idx := range saved {
		note := saved[idx].Clone()
		m.notes = append(m.notes, &note)
	}
	m.state = Loaded
}

func (m *Manager) applySeedLocked() {
	m.notes = m.notes[:0]
	for idx := range m.seed {
		note := m.seed[idx].Clone()
		m.notes = append(m.notes, &note)
	}
}

// State reports the load lifecycle phase.
func (m *Manager) State() LoadState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Add creates a note at the given position. The template id is resolved in
// the registry; an unknown id falls back to the first registered template,
// and an empty registry fails side-effect-free with ErrNoTemplates. The new
// note's size is pinned to StandardSize and its zIndex to count+1 (never
// re-normalised on deletion — acceptable drift).
func (m *Manager) Add(ctx context.Context, pos model.Position, templateID string) (string, error) {
	tpl, ok := m.registry.Get(templateID)
	if !ok {
		if templateID != "" {
			m.log.Warn().Str("template", templateID).Msg("template not found, falling back to first available")
		}
		tpl, ok = m.registry.First()
	}
	if !ok {
		m.log.Error().Msg("no templates available to create a note")
		return "", ErrNoTemplates
	}

	size := StandardSize
	note := tpl.NewNote("", &pos, template.NoteOptions{Size: &size})

	m.mu.Lock()
	note.ZIndex = len(m.notes) + 1
	m.notes = append(m.notes, note)
	m.mu.Unlock()

	m.persist(ctx)
	return note.ID, nil
}

// Update shallow-merges a partial update into the matching note. A patch
// without an id is logged and dropped; an unknown id is a no-op.
func (m *Manager) Update(ctx context.Context, patch model.NotePatch) {
	if patch.ID == "" {
		m.log.Error().Msg("cannot update note: invalid update or missing ID")
		return
	}
	m.mu.Lock()
	changed := false
	for _, note := range m.notes {
		if note.ID == patch.ID {
			patch.Apply(note)
			changed = true
			break
		}
	}
	m.mu.Unlock()
	if changed {
		m.persist(ctx)
	}
}

// Delete removes the note; deleting the selected note clears selection.
func (m *Manager) Delete(ctx context.Context, id string) {
	m.mu.Lock()
	removed := false
	for idx, note := range m.notes {
		if note.ID == id {
			m.notes = append(m.notes[:idx], m.notes[idx+1:]...)
			removed = true
			break
		}
	}
	if m.selected == id {
		m.selected = ""
	}
	m.mu.Unlock()
	if removed {
		m.persist(ctx)
	}
}

// Select sets the single global selection pointer.
func (m *Manager) Select(id string) {
	m.mu.Lock()
	m.selected = id
	m.mu.Unlock()
}

// Selected returns the currently selected note id, empty when none.
func (m *Manager) Selected() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.selected
}

// Get returns a snapshot of one note.
func (m *Manager) Get(id string) (model.Note, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, note := range m.notes {
		if note.ID == id {
			return note.Clone(), true
		}
	}
	return model.Note{}, false
}

// Notes returns snapshots of the whole collection in insertion order.
func (m *Manager) Notes() []model.Note {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]model.Note, 0, len(m.notes))
	for _, note := range m.notes {
		out = append(out, note.Clone())
	}
	return out
}

// Len reports the collection size.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.notes)
}

// persist writes the full collection best-effort. Failures are logged and
// in-memory state stays authoritative; saves are suppressed until the
// initial load has completed so the fallback seed can never clobber data.
func (m *Manager) persist(ctx context.Context) {
	if m.store == nil {
		return
	}
	m.mu.Lock()
	if m.state == LoadUninitialized {
		m.mu.Unlock()
		return
	}
	snapshot := make([]model.Note, 0, len(m.notes))
	for _, note := range m.notes {
		snapshot = append(snapshot, note.Clone())
	}
	m.mu.Unlock()

	data, err := json.Marshal(snapshot)
	if err != nil {
		m.log.Error().Err(err).Msg("error encoding notes")
		return
	}
	if err := m.store.Save(ctx, storage.KeyNotes, data); err != nil {
		m.log.Error().Err(err).Msg("error saving notes")
	}
}

// Export delegates to the note's template, which owns the format semantics.
func (m *Manager) Export(id, format string) (string, error) {
	note, ok := m.Get(id)
	if !ok {
		return "", fmt.Errorf("notes: note %q not found", id)
	}
	tpl, ok := m.registry.Get(note.TemplateID)
	if !ok {
		return "", fmt.Errorf("notes: template %q not found", note.TemplateID)
	}
	return tpl.Export(note, format)
}

// ExportFile exports a note along with its template's suggested filename.
func (m *Manager) ExportFile(id, format string) (name, content string, err error) {
	note, ok := m.Get(id)
	if !ok {
		return "", "", fmt.Errorf("notes: note %q not found", id)
	}
	tpl, ok := m.registry.Get(note.TemplateID)
	if !ok {
		return "", "", fmt.Errorf("notes: template %q not found", note.TemplateID)
	}
	content, err = tpl.Export(note, format)
	if err != nil {
		return "", "", err
	}
	return tpl.ExportName(note, format), content, nil
}

// Duplicate clones a note through its template and adds the copy to the
// collection with the next zIndex.
func (m *Manager) Duplicate(ctx context.Context, id string) (string, error) {
	note, ok := m.Get(id)
	if !ok {
		return "", fmt.Errorf("notes: note %q not found", id)
	}
	tpl, ok := m.registry.Get(note.TemplateID)
	if !ok {
		return "", fmt.Errorf("notes: template %q not found", note.TemplateID)
	}
	dup := tpl.Duplicate(note)

	m.mu.Lock()
	dup.ZIndex = len(m.notes) + 1
	m.notes = append(m.notes, dup)
	m.mu.Unlock()

	m.persist(ctx)
	return dup.ID, nil
}
