package render

import (
	"context"
	"testing"

	"github.com/goliatone/go-notecanvas/pkg/model"
	"github.com/goliatone/go-notecanvas/pkg/registry"
	"github.com/goliatone/go-notecanvas/pkg/template"
)

func TestCommitResize_ClampsToEnvelope(t *testing.T) {
	reg := registry.New()
	// No OnResizeEnd: the dispatch envelope applies.
	reg.Register(&template.Template{ID: "bare", Name: "Bare"})
	d, manager := testDispatcher(t, reg)

	ctx := context.Background()
	id, _ := manager.Add(ctx, model.Position{}, "bare")

	if err := d.CommitResize(ctx, id, model.Size{Width: 5, Height: 5}); err != nil {
		t.Fatalf("commit resize: %v", err)
	}
	note, _ := manager.Get(id)
	if note.Size != (model.Size{Width: 100, Height: 100}) {
		t.Fatalf("size = %+v, want the envelope minimum {100 100}", note.Size)
	}

	if err := d.CommitResize(ctx, id, model.Size{Width: 5000, Height: 5000}); err != nil {
		t.Fatalf("commit resize: %v", err)
	}
	note, _ = manager.Get(id)
	if note.Size != (model.Size{Width: 1000, Height: 1000}) {
		t.Fatalf("size = %+v, want the envelope maximum {1000 1000}", note.Size)
	}
}

func TestCommitResize_HandlerResultWins(t *testing.T) {
	reg := registry.New()
	reg.Register(template.New("strict", "Strict", "",
		template.WithHandlers(template.Handlers{
			OnResizeEnd: func(note *model.Note, size model.Size) *model.Size {
				// Snap to a fixed grid regardless of the gesture.
				return &model.Size{Width: 240, Height: 180}
			},
		}),
	))
	d, manager := testDispatcher(t, reg)

	ctx := context.Background()
	id, _ := manager.Add(ctx, model.Position{}, "strict")

	if err := d.CommitResize(ctx, id, model.Size{Width: 999, Height: 999}); err != nil {
		t.Fatalf("commit resize: %v", err)
	}
	note, _ := manager.Get(id)
	if note.Size != (model.Size{Width: 240, Height: 180}) {
		t.Fatalf("handler result must be committed verbatim, got %+v", note.Size)
	}
}

func TestCommitResize_NilHandlerResultFallsBackToEnvelope(t *testing.T) {
	reg := registry.New()
	reg.Register(template.New("lenient", "Lenient", "",
		template.WithHandlers(template.Handlers{
			OnResizeEnd: func(note *model.Note, size model.Size) *model.Size {
				return nil // accept the gesture
			},
		}),
	))
	d, manager := testDispatcher(t, reg)

	ctx := context.Background()
	id, _ := manager.Add(ctx, model.Position{}, "lenient")

	if err := d.CommitResize(ctx, id, model.Size{Width: 5, Height: 2000}); err != nil {
		t.Fatalf("commit resize: %v", err)
	}
	note, _ := manager.Get(id)
	if note.Size != (model.Size{Width: 100, Height: 1000}) {
		t.Fatalf("nil handler result should clamp the gesture, got %+v", note.Size)
	}
}

func TestCommitDrag_PositionIsAuthoritative(t *testing.T) {
	var hookPos model.Position
	reg := registry.New()
	reg.Register(template.New("tracked", "Tracked", "",
		template.WithHandlers(template.Handlers{
			OnDragEnd: func(note *model.Note, pos model.Position) {
				// Side effects only: whatever this does, the commit stands.
				hookPos = pos
			},
		}),
	))
	d, manager := testDispatcher(t, reg)

	ctx := context.Background()
	id, _ := manager.Add(ctx, model.Position{X: 1, Y: 1}, "tracked")

	target := model.Position{X: -50, Y: 9999}
	if err := d.CommitDrag(ctx, id, target); err != nil {
		t.Fatalf("commit drag: %v", err)
	}

	note, _ := manager.Get(id)
	if note.Position != target {
		t.Fatalf("gesture position must be committed as-is, got %+v", note.Position)
	}
	if hookPos != target {
		t.Fatalf("OnDragEnd should observe the committed position, got %+v", hookPos)
	}
}

func TestCommitGestures_LockedNoteIsUntouched(t *testing.T) {
	reg := registry.New()
	reg.Register(template.New("plain", "Plain", ""))
	d, manager := testDispatcher(t, reg)

	ctx := context.Background()
	id, _ := manager.Add(ctx, model.Position{X: 10, Y: 10}, "plain")
	manager.Update(ctx, model.NotePatch{ID: id, Locked: model.Ptr(true)})
	before, _ := manager.Get(id)

	if err := d.CommitDrag(ctx, id, model.Position{X: 500, Y: 500}); err != nil {
		t.Fatalf("commit drag: %v", err)
	}
	if err := d.CommitResize(ctx, id, model.Size{Width: 500, Height: 500}); err != nil {
		t.Fatalf("commit resize: %v", err)
	}

	after, _ := manager.Get(id)
	if after.Position != before.Position || after.Size != before.Size {
		t.Fatalf("locked note moved: before %+v/%+v after %+v/%+v",
			before.Position, before.Size, after.Position, after.Size)
	}
}

func TestCommitGestures_UnknownNoteErrors(t *testing.T) {
	reg := registry.New()
	reg.Register(template.New("plain", "Plain", ""))
	d, _ := testDispatcher(t, reg)

	ctx := context.Background()
	if err := d.CommitDrag(ctx, "ghost", model.Position{}); err == nil {
		t.Fatalf("drag on unknown note should error")
	}
	if err := d.CommitResize(ctx, "ghost", model.Size{}); err == nil {
		t.Fatalf("resize on unknown note should error")
	}
}
