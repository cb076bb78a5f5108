package render

import "github.com/goliatone/go-notecanvas/pkg/model"

// DispatchBehaviors are the flags the dispatch layer consults when no other
// layer supplies them.
func DispatchBehaviors() model.Behaviors {
	return model.Behaviors{
		model.BehaviorDraggable: true,
		model.BehaviorResizable: true,
		model.BehaviorClosable:  true,
		model.BehaviorEditable:  true,
	}
}

// ResolveBehaviors applies the layered override deterministically at read
// time: defaults < template values < note values, key by key. None of the
// input layers is mutated.
func ResolveBehaviors(defaults, templateLayer, noteLayer model.Behaviors) model.Behaviors {
	out := make(model.Behaviors, len(defaults)+len(templateLayer)+len(noteLayer))
	for key, value := range defaults {
		out[key] = value
	}
	for key, value := range templateLayer {
		out[key] = value
	}
	for key, value := range noteLayer {
		out[key] = value
	}
	return out
}
