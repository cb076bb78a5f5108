package registry

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/goliatone/go-notecanvas/pkg/storage"
	"github.com/goliatone/go-notecanvas/pkg/template"
)

// LoadCustom hydrates user-authored templates persisted under the fixed
// custom-templates key. An absent key is not an error; unparsable data is.
func (r *Registry) LoadCustom(ctx context.Context, store storage.Store) error {
	if store == nil {
		return nil
	}
	data, err := store.Load(ctx, storage.KeyTemplates)
	if errors.Is(err, storage.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("registry: load custom templates: %w", err)
	}
	var records []template.Record
	if err := json.Unmarshal(data, &records); err != nil {
		return fmt.Errorf("registry: parse custom templates: %w", err)
	}
	for _, rec := range records {
		if rec.ID == "" {
			continue
		}
		r.RegisterCustom(rec.Template())
	}
	return nil
}

// SaveCustom persists every custom template as serialisable records.
func (r *Registry) SaveCustom(ctx context.Context, store storage.Store) error {
	if store == nil {
		return nil
	}
	r.mu.RLock()
	records := make([]template.Record, 0, len(r.custom))
	for _, id := range r.order {
		if !r.custom[id] {
			continue
		}
		records = append(records, template.NewRecord(r.templates[id]))
	}
	r.mu.RUnlock()

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("registry: encode custom templates: %w", err)
	}
	if err := store.Save(ctx, storage.KeyTemplates, data); err != nil {
		return fmt.Errorf("registry: save custom templates: %w", err)
	}
	return nil
}

// ResetCustom removes every custom template and clears the persisted key,
// leaving built-ins untouched.
func (r *Registry) ResetCustom(ctx context.Context, store storage.Store) error {
	r.mu.Lock()
	for id := range r.custom {
		delete(r.templates, id)
		for idx, existing := range r.order {
			if existing == id {
				r.order = append(r.order[:idx], r.order[idx+1:]...)
				break
			}
		}
	}
	r.custom = make(map[string]bool)
	r.mu.Unlock()

	if store == nil {
		return nil
	}
	if err := store.Delete(ctx, storage.KeyTemplates); err != nil {
		return fmt.Errorf("registry: clear custom templates: %w", err)
	}
	return nil
}
