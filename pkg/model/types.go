package model

import "time"

// Position locates a note in canvas (world) coordinates, not screen space.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Size describes a note footprint in pixels.
type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Behaviors maps named capability flags to booleans. Resolution is layered:
// built-in defaults < template values < note values, always key-by-key.
type Behaviors map[string]bool

// Well-known behavior flags. Templates may add their own keys (for example
// "checkboxToggle" on task lists); unknown keys flow through resolution
// untouched.
const (
	BehaviorDraggable      = "draggable"
	BehaviorResizable      = "resizable"
	BehaviorClosable       = "closable"
	BehaviorEditable       = "editable"
	BehaviorDeletable      = "deletable"
	BehaviorMinimizable    = "minimizable"
	BehaviorCanCreateNotes = "canCreateNotes"
	BehaviorLockable       = "lockable"
	BehaviorExportable     = "exportable"
	BehaviorDuplicatable   = "duplicatable"
	BehaviorThemeable      = "themeable"
	BehaviorUndoable       = "undoable"
)

// Clone returns an independent copy so note-level mutation never aliases
// template state.
func (b Behaviors) Clone() Behaviors {
	if b == nil {
		return nil
	}
	out := make(Behaviors, len(b))
	for key, value := range b {
		out[key] = value
	}
	return out
}

// UpdateFunc commits a partial note update back to the owning manager.
type UpdateFunc func(patch NotePatch)

// Control is a template-supplied footer button. OnClick receives the note and
// an update callback; it never mutates the note directly.
type Control struct {
	Label   string                          `json:"label"`
	OnClick func(note *Note, up UpdateFunc) `json:"-"`
}

// Controls maps control ids to their specs.
type Controls map[string]Control

// Clone copies the control map (specs are value types).
func (c Controls) Clone() Controls {
	if c == nil {
		return nil
	}
	out := make(Controls, len(c))
	for id, control := range c {
		out[id] = control
	}
	return out
}

// Palette is a named theme's fixed set of color roles.
type Palette struct {
	Background string `json:"backgroundColor"`
	Text       string `json:"textColor"`
	Border     string `json:"borderColor"`
	Header     string `json:"headerColor"`
	Accent     string `json:"accentColor"`
}

// Animation is declarative metadata consumed by renderers; the core never
// enforces it.
type Animation struct {
	Type     string `json:"type"`
	Duration int    `json:"duration"`
}

// Accessibility carries declarative hints for assistive tech. Map fields merge
// key-by-key during template construction.
type Accessibility struct {
	AriaLabels        map[string]string `json:"ariaLabels,omitempty"`
	KeyboardShortcuts map[string]string `json:"keyboardShortcuts,omitempty"`
	HighContrast      bool              `json:"highContrast"`
	TextZoom          int               `json:"textZoom"`
}

// History scaffolds undo/redo. It is persisted but never replayed; undo
// semantics are out of scope.
type History struct {
	Past   []string `json:"past"`
	Future []string `json:"future"`
}

// Note is a placed, mutable canvas item referencing exactly one template.
type Note struct {
	ID             string            `json:"id"`
	TemplateID     string            `json:"templateId"`
	Position       Position          `json:"position"`
	Size           Size              `json:"size"`
	Content        string            `json:"content"`
	Behaviors      Behaviors         `json:"behaviors,omitempty"`
	CustomControls Controls          `json:"customControls,omitempty"`
	Styles         map[string]string `json:"styles,omitempty"`
	Theme          string            `json:"theme"`
	Locked         bool              `json:"isLocked"`
	Minimized      bool              `json:"isMinimized"`
	Metadata       map[string]any    `json:"metadata,omitempty"`
	ZIndex         int               `json:"zIndex"`
	History        History           `json:"history"`
	CreatedAt      time.Time         `json:"createdAt"`
	UpdatedAt      time.Time         `json:"updatedAt"`
}

// Clone returns a deep-enough copy of the note: every mutable container is
// duplicated so callers can hand out snapshots.
func (n Note) Clone() Note {
	out := n
	out.Behaviors = n.Behaviors.Clone()
	out.CustomControls = n.CustomControls.Clone()
	out.Styles = cloneStringMap(n.Styles)
	out.Metadata = cloneAnyMap(n.Metadata)
	out.History.Past = append([]string(nil), n.History.Past...)
	out.History.Future = append([]string(nil), n.History.Future...)
	return out
}

func cloneStringMap(in map[string]string) map[string]string {
	if in == nil {
		return nil
	}
	out := make(map[string]string, len(in))
	for key, value := range in {
		out[key] = value
	}
	return out
}

func cloneAnyMap(in map[string]any) map[string]any {
	if in == nil {
		return nil
	}
	out := make(map[string]any, len(in))
	for key, value := range in {
		out[key] = value
	}
	return out
}
