package model

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestPatchApply_MergesOnlyCarriedFields(t *testing.T) {
	created := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	note := Note{
		ID:        "n1",
		Position:  Position{X: 1, Y: 2},
		Size:      Size{Width: 250, Height: 150},
		Content:   "before",
		Theme:     "light",
		ZIndex:    3,
		CreatedAt: created,
		UpdatedAt: created,
	}

	patch := NotePatch{
		ID:      "n1",
		Content: Ptr("after"),
		Locked:  Ptr(true),
	}
	patch.Apply(&note)

	if note.Content != "after" || !note.Locked {
		t.Fatalf("patched fields not applied: %+v", note)
	}
	if note.Position != (Position{X: 1, Y: 2}) || note.Size != (Size{Width: 250, Height: 150}) {
		t.Fatalf("untouched fields changed: %+v", note)
	}
	if note.Theme != "light" || note.ZIndex != 3 {
		t.Fatalf("untouched fields changed: %+v", note)
	}
	if !note.UpdatedAt.After(created) {
		t.Fatalf("UpdatedAt should be bumped")
	}
	if note.CreatedAt != created {
		t.Fatalf("CreatedAt must never change")
	}
}

func TestPatchApply_MapFieldsReplaceWithCopies(t *testing.T) {
	note := Note{ID: "n1"}
	meta := map[string]any{"k": "v"}

	NotePatch{ID: "n1", Metadata: meta}.Apply(&note)
	meta["k"] = "mutated"

	if note.Metadata["k"] != "v" {
		t.Fatalf("patch must copy maps, got %v", note.Metadata)
	}
}

func TestNoteClone_IsolatesMutableContainers(t *testing.T) {
	note := Note{
		ID:        "n1",
		Behaviors: Behaviors{"draggable": true},
		Styles:    map[string]string{"color": "#333"},
		Metadata:  map[string]any{"nested": "x"},
		History:   History{Past: []string{"a"}, Future: []string{}},
	}

	clone := note.Clone()
	clone.Behaviors["draggable"] = false
	clone.Styles["color"] = "#000"
	clone.Metadata["nested"] = "y"
	clone.History.Past[0] = "b"

	if !note.Behaviors["draggable"] || note.Styles["color"] != "#333" || note.Metadata["nested"] != "x" {
		t.Fatalf("clone aliases the original: %+v", note)
	}
	if note.History.Past[0] != "a" {
		t.Fatalf("history should be deep-copied")
	}
}

func TestBehaviorsClone(t *testing.T) {
	original := Behaviors{"draggable": true, "resizable": false}
	clone := original.Clone()

	if diff := cmp.Diff(original, clone); diff != "" {
		t.Fatalf("clone mismatch (-want +got):\n%s", diff)
	}
	clone["draggable"] = false
	if !original["draggable"] {
		t.Fatalf("clone must not alias the source map")
	}
}
