package template

import "github.com/goliatone/go-notecanvas/pkg/model"

// Theme names every descriptor ships with. Custom palettes merge over these
// per name, they never replace the whole set.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Default resize envelope enforced by the stock OnResizeEnd handler.
const (
	defaultMinWidth  = 100
	defaultMinHeight = 100
	defaultMaxWidth  = 600
	defaultMaxHeight = 600
)

// DefaultSize is applied when a descriptor omits its own default footprint.
var DefaultSize = model.Size{Width: 250, Height: 150}

// DefaultPosition is used when a note is created without an explicit position.
var DefaultPosition = model.Position{X: 100, Y: 100}

// DefaultBehaviors returns the documented capability defaults every template
// starts from.
func DefaultBehaviors() model.Behaviors {
	return model.Behaviors{
		model.BehaviorDraggable:      true,
		model.BehaviorResizable:      true,
		model.BehaviorDeletable:      true,
		model.BehaviorMinimizable:    true,
		model.BehaviorCanCreateNotes: false,
		model.BehaviorLockable:       true,
		model.BehaviorExportable:     true,
		model.BehaviorDuplicatable:   true,
		model.BehaviorThemeable:      true,
		model.BehaviorUndoable:       false,
	}
}

// DefaultThemes returns the stock light and dark palettes.
func DefaultThemes() map[string]model.Palette {
	return map[string]model.Palette{
		ThemeLight: {
			Background: "#ffffff",
			Text:       "#333333",
			Border:     "#dddddd",
			Header:     "#f5f5f5",
			Accent:     "#4a90e2",
		},
		ThemeDark: {
			Background: "#2d2d2d",
			Text:       "#f8f8f2",
			Border:     "#555555",
			Header:     "#383838",
			Accent:     "#6272a4",
		},
	}
}

// DefaultAnimations returns the lifecycle animation hints renderers consume.
func DefaultAnimations() map[string]model.Animation {
	return map[string]model.Animation{
		"create":   {Type: "fade-in", Duration: 300},
		"delete":   {Type: "fade-out", Duration: 300},
		"minimize": {Type: "slide-up", Duration: 200},
		"maximize": {Type: "slide-down", Duration: 200},
	}
}

// DefaultAccessibility returns the stock assistive-tech hints.
func DefaultAccessibility() model.Accessibility {
	return model.Accessibility{
		AriaLabels: map[string]string{
			"close":    "Close note",
			"minimize": "Minimize note",
			"maximize": "Maximize note",
			"resize":   "Resize note",
		},
		KeyboardShortcuts: map[string]string{
			"close": "Escape",
			"save":  "Ctrl+S",
			"undo":  "Ctrl+Z",
		},
		HighContrast: false,
		TextZoom:     100,
	}
}
