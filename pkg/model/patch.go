package model

import "time"

// NotePatch is a partial note update. Nil fields leave the matching note
// field untouched; Apply performs the shallow merge the manager relies on.
type NotePatch struct {
	ID             string         `json:"id"`
	Position       *Position      `json:"position,omitempty"`
	Size           *Size          `json:"size,omitempty"`
	Content        *string        `json:"content,omitempty"`
	Theme          *string        `json:"theme,omitempty"`
	Locked         *bool          `json:"isLocked,omitempty"`
	Minimized      *bool          `json:"isMinimized,omitempty"`
	Behaviors      Behaviors      `json:"behaviors,omitempty"`
	CustomControls Controls       `json:"customControls,omitempty"`
	Metadata       map[string]any `json:"metadata,omitempty"`
	ZIndex         *int           `json:"zIndex,omitempty"`
}

// Apply merges the patch into the note, replacing only the fields the patch
// carries, and bumps UpdatedAt.
func (p NotePatch) Apply(note *Note) {
	if note == nil {
		return
	}
	if p.Position != nil {
		note.Position = *p.Position
	}
	if p.Size != nil {
		note.Size = *p.Size
	}
	if p.Content != nil {
		note.Content = *p.Content
	}
	if p.Theme != nil {
		note.Theme = *p.Theme
	}
	if p.Locked != nil {
		note.Locked = *p.Locked
	}
	if p.Minimized != nil {
		note.Minimized = *p.Minimized
	}
	if p.Behaviors != nil {
		note.Behaviors = p.Behaviors.Clone()
	}
	if p.CustomControls != nil {
		note.CustomControls = p.CustomControls.Clone()
	}
	if p.Metadata != nil {
		note.Metadata = cloneAnyMap(p.Metadata)
	}
	if p.ZIndex != nil {
		note.ZIndex = *p.ZIndex
	}
	note.UpdatedAt = time.Now().UTC()
}

// Ptr is a small helper for building patches from literals.
func Ptr[T any](v T) *T {
	return &v
}
