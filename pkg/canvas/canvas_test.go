package canvas

import (
	"context"
	"strings"
	"testing"

	"github.com/goliatone/go-notecanvas/pkg/model"
	"github.com/goliatone/go-notecanvas/pkg/registry"
	"github.com/goliatone/go-notecanvas/pkg/storage"
	"github.com/goliatone/go-notecanvas/pkg/template"
)

func TestNew_SeedsBuiltinsByDefault(t *testing.T) {
	cv := New()

	if cv.Registry().Len() != 3 {
		t.Fatalf("expected the 3 built-in templates, got %d", cv.Registry().Len())
	}
	if _, ok := cv.Registry().Get(registry.TemplateTextNote); !ok {
		t.Fatalf("text-note built-in missing")
	}
}

func TestRender_OrdersNotesByZIndex(t *testing.T) {
	ctx := context.Background()
	cv := New()
	if err := cv.Load(ctx); err != nil {
		t.Fatalf("load: %v", err)
	}

	first, _ := cv.AddNote(ctx, model.Position{X: 1, Y: 1}, registry.TemplateTextNote)
	second, _ := cv.AddNote(ctx, model.Position{X: 2, Y: 2}, registry.TemplateTextNote)

	// Raise the first note above the second.
	cv.Notes().Update(ctx, model.NotePatch{ID: first, ZIndex: model.Ptr(10)})

	out, err := cv.Render(ctx)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(out, `class="canvas"`) {
		t.Fatalf("canvas wrapper missing: %s", out)
	}
	if strings.Index(out, second) > strings.Index(out, first) {
		t.Fatalf("notes should render in ascending z-index order")
	}
}

func TestRender_IncludesCanvasComponentsOnce(t *testing.T) {
	ctx := context.Background()
	reg := registry.New()
	reg.Register(template.New("widget", "Widget", "",
		template.WithCanvasComponent(func(ctx context.Context, rc template.RenderContext) (string, error) {
			return `<div class="widget-toolbar">toolbar</div>`, nil
		}),
	))
	cv := New(WithRegistry(reg))
	if err := cv.Load(ctx); err != nil {
		t.Fatalf("load: %v", err)
	}

	// Two notes, one declaring template: the component renders once.
	if _, err := cv.AddNote(ctx, model.Position{}, "widget"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := cv.AddNote(ctx, model.Position{}, "widget"); err != nil {
		t.Fatalf("add: %v", err)
	}

	out, err := cv.Render(ctx)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got := strings.Count(out, "widget-toolbar"); got != 1 {
		t.Fatalf("canvas component should appear exactly once, got %d", got)
	}
}

func TestLoad_RestoresNotesAndCustomTemplates(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()

	// First session: author a custom template and place a note.
	first := New(WithStore(store))
	if err := first.Load(ctx); err != nil {
		t.Fatalf("load: %v", err)
	}
	first.RegisterTemplate(template.New("custom-x", "Custom X", ""))
	first.Registry().RegisterCustom(template.New("custom-y", "Custom Y", ""))
	if err := first.Registry().SaveCustom(ctx, store); err != nil {
		t.Fatalf("save custom: %v", err)
	}
	id, err := first.AddNote(ctx, model.Position{X: 9, Y: 9}, registry.TemplateTextNote)
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	// Second session restores both collections.
	second := New(WithStore(store))
	if err := second.Load(ctx); err != nil {
		t.Fatalf("reload: %v", err)
	}
	if _, ok := second.Registry().Get("custom-y"); !ok {
		t.Fatalf("custom template should be restored")
	}
	note, ok := second.Notes().Get(id)
	if !ok {
		t.Fatalf("note should be restored")
	}
	if note.Position != (model.Position{X: 9, Y: 9}) {
		t.Fatalf("restored position = %+v", note.Position)
	}
}

func TestAddNote_EmptyRegistryPropagatesError(t *testing.T) {
	ctx := context.Background()
	cv := New(WithRegistry(registry.New()))
	if err := cv.Load(ctx); err != nil {
		t.Fatalf("load: %v", err)
	}
	if _, err := cv.AddNote(ctx, model.Position{}, "any"); err == nil {
		t.Fatalf("empty registry should fail note creation")
	}
}
