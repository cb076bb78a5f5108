package render

import (
	"context"
	"errors"
	"fmt"

	"github.com/goliatone/go-notecanvas/pkg/model"
	"github.com/goliatone/go-notecanvas/pkg/template"
)

// Dispatch-level resize envelope. Wider than the stock handler's clamp on
// purpose: templates opt into tighter ranges through OnResizeEnd, the
// envelope only stops runaway gestures.
const (
	EnvelopeMinDimension = 100
	EnvelopeMaxDimension = 1000
)

// CommitDrag commits a drag gesture. The gesture position is authoritative:
// it is written to the note as-is, and the template's OnDragEnd runs for side
// effects only, after the commit. Locked notes ignore drags.
func (d *Dispatcher) CommitDrag(ctx context.Context, id string, pos model.Position) error {
	note, tpl, err := d.gestureTarget(id)
	if err != nil {
		return err
	}
	if note.Locked {
		return nil
	}

	d.manager.Update(ctx, model.NotePatch{ID: id, Position: &pos})

	if tpl != nil && tpl.Handlers.OnDragEnd != nil {
		if updated, ok := d.manager.Get(id); ok {
			tpl.Handlers.OnDragEnd(&updated, pos)
		}
	}
	return nil
}

// CommitResize commits a resize gesture. When the template's OnResizeEnd
// returns a size, that size is committed verbatim; when the handler is absent
// or returns nil, the gesture size is clamped to the dispatch envelope.
// Locked notes ignore resizes.
func (d *Dispatcher) CommitResize(ctx context.Context, id string, size model.Size) error {
	note, tpl, err := d.gestureTarget(id)
	if err != nil {
		return err
	}
	if note.Locked {
		return nil
	}

	final := clampEnvelope(size)
	if tpl != nil && tpl.Handlers.OnResizeEnd != nil {
		snapshot := note
		if adjusted := tpl.Handlers.OnResizeEnd(&snapshot, size); adjusted != nil {
			final = *adjusted
		}
	}

	d.manager.Update(ctx, model.NotePatch{ID: id, Size: &final})
	return nil
}

func (d *Dispatcher) gestureTarget(id string) (model.Note, *template.Template, error) {
	if d.manager == nil {
		return model.Note{}, nil, errors.New("render: dispatcher has no manager")
	}
	note, ok := d.manager.Get(id)
	if !ok {
		return model.Note{}, nil, fmt.Errorf("render: note %q not found", id)
	}
	tpl, _ := d.registry.Get(note.TemplateID)
	return note, tpl, nil
}

func clampEnvelope(size model.Size) model.Size {
	return model.Size{
		Width:  clampDimension(size.Width),
		Height: clampDimension(size.Height),
	}
}

func clampDimension(v int) int {
	if v < EnvelopeMinDimension {
		return EnvelopeMinDimension
	}
	if v > EnvelopeMaxDimension {
		return EnvelopeMaxDimension
	}
	return v
}
