package registry

import (
	"testing"

	"github.com/goliatone/go-notecanvas/pkg/model"
	"github.com/goliatone/go-notecanvas/pkg/template"
)

func TestRegister_ThenGetReturnsRecord(t *testing.T) {
	reg := New()

	if !reg.Register(template.New("t1", "T1", "")) {
		t.Fatalf("register should succeed")
	}

	got, ok := reg.Get("t1")
	if !ok {
		t.Fatalf("registered template not found")
	}
	if got.Name != "T1" {
		t.Fatalf("name = %q, want T1", got.Name)
	}
}

func TestRegister_RejectsInvalidDescriptors(t *testing.T) {
	reg := New()

	if reg.Register(nil) {
		t.Fatalf("nil template must be rejected")
	}
	if reg.Register(&template.Template{Name: "no id"}) {
		t.Fatalf("template without id must be rejected")
	}
	if reg.Len() != 0 {
		t.Fatalf("rejected registrations must not grow the registry")
	}
}

func TestRegister_PartialReRegistrationMerges(t *testing.T) {
	reg := New()
	reg.Register(template.New("t1", "T1", "first",
		template.WithDefaultSize(model.Size{Width: 300, Height: 200}),
		template.WithDefaultContent("seed content"),
	))

	// A partial literal: only the name is set, everything else zero.
	reg.Register(&template.Template{ID: "t1", Name: "T1 renamed"})

	got, ok := reg.Get("t1")
	if !ok {
		t.Fatalf("template missing after re-registration")
	}
	if got.Name != "T1 renamed" {
		t.Fatalf("name = %q, want the re-registered value", got.Name)
	}
	if got.DefaultSize != (model.Size{Width: 300, Height: 200}) {
		t.Fatalf("default size should survive a partial re-registration, got %+v", got.DefaultSize)
	}
	if got.DefaultContent != "seed content" {
		t.Fatalf("default content should survive, got %q", got.DefaultContent)
	}
	if reg.Len() != 1 {
		t.Fatalf("re-registration must not duplicate entries, len = %d", reg.Len())
	}
}

func TestRemove_UnknownIDIsNoOp(t *testing.T) {
	reg := New()
	reg.Register(template.New("t1", "T1", ""))

	reg.Remove("does-not-exist")

	if reg.Len() != 1 {
		t.Fatalf("removing an unknown id must not change the registry")
	}
	reg.Remove("t1")
	if reg.Len() != 0 {
		t.Fatalf("known id should be removed")
	}
	if _, ok := reg.First(); ok {
		t.Fatalf("empty registry has no first template")
	}
}

func TestList_PreservesRegistrationOrder(t *testing.T) {
	reg := New()
	for _, id := range []string{"c", "a", "b"} {
		reg.Register(template.New(id, id, ""))
	}

	var got []string
	for _, tpl := range reg.List() {
		got = append(got, tpl.ID)
	}
	want := []string{"c", "a", "b"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("list order = %v, want %v", got, want)
		}
	}

	first, ok := reg.First()
	if !ok || first.ID != "c" {
		t.Fatalf("first = %v, want c", first)
	}
}

func TestRegisterCustom_TagsTemplate(t *testing.T) {
	reg := New()
	reg.Seed()
	reg.RegisterCustom(template.New("custom-1", "Mine", ""))

	if !reg.IsCustom("custom-1") {
		t.Fatalf("custom template should be tagged")
	}
	if reg.IsCustom(TemplateTextNote) {
		t.Fatalf("built-ins must not be tagged custom")
	}
}
