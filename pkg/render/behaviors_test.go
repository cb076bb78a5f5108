package render

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-notecanvas/pkg/model"
)

func TestResolveBehaviors_LayersInOrder(t *testing.T) {
	defaults := model.Behaviors{"draggable": true, "resizable": true}
	templateLayer := model.Behaviors{"resizable": false, "closable": true}
	noteLayer := model.Behaviors{"closable": false}

	got := ResolveBehaviors(defaults, templateLayer, noteLayer)

	want := model.Behaviors{
		"draggable": true,  // untouched default
		"resizable": false, // template override
		"closable":  false, // note override wins over template
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("resolved behaviors mismatch (-want +got):\n%s", diff)
	}
}

func TestResolveBehaviors_DoesNotMutateLayers(t *testing.T) {
	defaults := DispatchBehaviors()
	templateLayer := model.Behaviors{"draggable": false}

	_ = ResolveBehaviors(defaults, templateLayer, nil)

	if !DispatchBehaviors()["draggable"] {
		t.Fatalf("dispatch defaults must be stable")
	}
	if len(templateLayer) != 1 {
		t.Fatalf("input layers must not be mutated: %v", templateLayer)
	}
}

func TestDispatchBehaviors_GenericChromeDefaults(t *testing.T) {
	got := DispatchBehaviors()
	for _, key := range []string{"draggable", "resizable", "closable", "editable"} {
		if !got[key] {
			t.Fatalf("%s should default to true at the dispatch layer", key)
		}
	}
}
