package render

import (
	"strings"
	"testing"
	"testing/fstest"
)

func TestEngine_RenderTemplateFromFS(t *testing.T) {
	fsys := fstest.MapFS{
		"greet.tmpl": &fstest.MapFile{Data: []byte(`Hello {{ name }}!`)},
	}
	engine, err := NewEngine(WithEngineFS(fsys))
	if err != nil {
		t.Fatalf("engine: %v", err)
	}

	out, err := engine.RenderTemplate("greet", map[string]any{"name": "canvas"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != "Hello canvas!" {
		t.Fatalf("render = %q", out)
	}
}

func TestEngine_RenderStringAndGlobals(t *testing.T) {
	engine, err := NewEngine(
		WithEngineFS(fstest.MapFS{}),
		WithEngineGlobalData(map[string]any{"app": "notecanvas"}),
	)
	if err != nil {
		t.Fatalf("engine: %v", err)
	}

	out, err := engine.RenderString(`{{ app }}:{{ version }}`, map[string]any{"version": "1"})
	if err != nil {
		t.Fatalf("render string: %v", err)
	}
	if out != "notecanvas:1" {
		t.Fatalf("render = %q", out)
	}
}

func TestEngine_MissingTemplateErrors(t *testing.T) {
	engine, err := NewEngine(WithEngineFS(fstest.MapFS{}))
	if err != nil {
		t.Fatalf("engine: %v", err)
	}
	if _, err := engine.RenderTemplate("absent", nil); err == nil {
		t.Fatalf("missing template should error")
	}
}

func TestEngine_EmbeddedChromeBundleLoads(t *testing.T) {
	engine, err := NewEngine(WithEngineFS(TemplatesFS()))
	if err != nil {
		t.Fatalf("engine: %v", err)
	}
	out, err := engine.RenderTemplate("error", map[string]any{
		"id": "n1", "template_id": "gone",
		"x": "0", "y": "0", "width": "100", "height": "100", "z": "1",
	})
	if err != nil {
		t.Fatalf("render embedded error chrome: %v", err)
	}
	if !strings.Contains(out, "note-error") {
		t.Fatalf("unexpected chrome: %s", out)
	}
}
