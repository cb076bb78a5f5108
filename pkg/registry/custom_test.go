package registry

import (
	"context"
	"testing"

	"github.com/goliatone/go-notecanvas/pkg/storage"
	"github.com/goliatone/go-notecanvas/pkg/template"
)

func TestCustomTemplates_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()

	reg := New()
	reg.Seed()
	reg.RegisterCustom(template.New("custom-basic", "Basic Custom", "plain markup",
		template.WithDefaultContent("<p>hello</p>"),
	))
	reg.RegisterCustom(template.New("custom-adv", "Advanced Custom", "",
		template.WithRenderer(template.NewSourcedRenderer(`<p>{{ content }}</p>`)),
	))

	if err := reg.SaveCustom(ctx, store); err != nil {
		t.Fatalf("save custom: %v", err)
	}

	restored := New()
	restored.Seed()
	if err := restored.LoadCustom(ctx, store); err != nil {
		t.Fatalf("load custom: %v", err)
	}

	basic, ok := restored.Get("custom-basic")
	if !ok || basic.DefaultContent != "<p>hello</p>" {
		t.Fatalf("basic custom template did not round trip: %+v", basic)
	}
	adv, ok := restored.Get("custom-adv")
	if !ok {
		t.Fatalf("advanced custom template missing")
	}
	if !adv.Renderer.Sourced() || adv.Renderer.Source() != `<p>{{ content }}</p>` {
		t.Fatalf("authored renderer source did not round trip")
	}
	if !restored.IsCustom("custom-adv") {
		t.Fatalf("restored templates should stay tagged custom")
	}
}

func TestLoadCustom_MissingKeyIsNotAnError(t *testing.T) {
	reg := New()
	if err := reg.LoadCustom(context.Background(), storage.NewMemoryStore()); err != nil {
		t.Fatalf("absent key should be fine: %v", err)
	}
}

func TestLoadCustom_CorruptDataErrors(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	if err := store.Save(ctx, storage.KeyTemplates, []byte("{not json")); err != nil {
		t.Fatalf("seed store: %v", err)
	}

	reg := New()
	if err := reg.LoadCustom(ctx, store); err == nil {
		t.Fatalf("corrupt payload must surface an error")
	}
}

func TestResetCustom_LeavesBuiltinsAlone(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()

	reg := New()
	reg.Seed()
	reg.RegisterCustom(template.New("custom-1", "Mine", ""))
	if err := reg.SaveCustom(ctx, store); err != nil {
		t.Fatalf("save custom: %v", err)
	}

	if err := reg.ResetCustom(ctx, store); err != nil {
		t.Fatalf("reset custom: %v", err)
	}

	if _, ok := reg.Get("custom-1"); ok {
		t.Fatalf("custom template should be gone")
	}
	if _, ok := reg.Get(TemplateTextNote); !ok {
		t.Fatalf("built-in templates must survive a reset")
	}
	if _, err := store.Load(ctx, storage.KeyTemplates); err == nil {
		t.Fatalf("persisted custom key should be cleared")
	}
}
