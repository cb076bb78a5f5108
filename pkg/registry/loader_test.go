package registry

import (
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-notecanvas/pkg/model"
)

func TestLoadFS_RegistersJSONAndYAMLDocuments(t *testing.T) {
	fsys := fstest.MapFS{
		"bundle.json": &fstest.MapFile{Data: []byte(`{
			"templates": [
				{"id": "recipe", "name": "Recipe", "defaultSize": {"width": 320, "height": 240}},
				{"id": "quote", "name": "Quote", "defaultContent": "..."}
			]
		}`)},
		"extra/sticker.yaml": &fstest.MapFile{Data: []byte(
			"id: sticker\nname: Sticker\ndefaultSize:\n  width: 120\n  height: 120\n")},
		"notes.txt": &fstest.MapFile{Data: []byte("ignored")},
	}

	reg := New()
	if err := reg.LoadFS(fsys); err != nil {
		t.Fatalf("load fs: %v", err)
	}

	if reg.Len() != 3 {
		t.Fatalf("expected 3 templates, got %d", reg.Len())
	}
	recipe, ok := reg.Get("recipe")
	if !ok || recipe.DefaultSize != (model.Size{Width: 320, Height: 240}) {
		t.Fatalf("recipe template wrong: %+v", recipe)
	}
	sticker, ok := reg.Get("sticker")
	if !ok || sticker.Name != "Sticker" {
		t.Fatalf("bare yaml record should register: %+v", sticker)
	}
	// Hydration applies descriptor defaults underneath partial documents.
	if !sticker.Behaviors[model.BehaviorDraggable] {
		t.Fatalf("hydrated template should carry default behaviors")
	}
}

func TestLoadFS_BareJSONRecord(t *testing.T) {
	fsys := fstest.MapFS{
		"single.json": &fstest.MapFile{Data: []byte(`{"id": "solo", "name": "Solo"}`)},
	}

	reg := New()
	if err := reg.LoadFS(fsys); err != nil {
		t.Fatalf("load fs: %v", err)
	}
	if _, ok := reg.Get("solo"); !ok {
		t.Fatalf("bare record should register")
	}
}

func TestLoadFS_MissingIDFails(t *testing.T) {
	fsys := fstest.MapFS{
		"bad.json": &fstest.MapFile{Data: []byte(`{"templates": [{"name": "anonymous"}]}`)},
	}

	reg := New()
	if err := reg.LoadFS(fsys); err == nil {
		t.Fatalf("template without id should fail the load")
	}
}

func TestSeed_RegistersBuiltins(t *testing.T) {
	reg := New()
	reg.Seed()

	for _, id := range []string{TemplateTextNote, TemplateTaskList, TemplateCodeNote} {
		if _, ok := reg.Get(id); !ok {
			t.Fatalf("built-in %q missing", id)
		}
	}
	first, ok := reg.First()
	if !ok || first.ID != TemplateTextNote {
		t.Fatalf("text-note should be the fallback template, got %v", first)
	}
}
