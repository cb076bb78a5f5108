package template

import "github.com/goliatone/go-notecanvas/pkg/model"

// DragEndFunc observes a completed drag. The committed position always comes
// from the gesture; the hook runs for side effects only.
type DragEndFunc func(note *model.Note, pos model.Position)

// ResizeEndFunc may constrain a completed resize. Returning a non-nil size
// overrides the gesture's size before commit; nil accepts it unchanged.
type ResizeEndFunc func(note *model.Note, size model.Size) *model.Size

// NoteHook is a side-effect-only lifecycle observer.
type NoteHook func(note *model.Note)

// ContentChangeFunc observes content edits.
type ContentChangeFunc func(note *model.Note, content string)

// ExportFunc may replace the default export output for a format. Returning
// ok=false falls through to the built-in formats.
type ExportFunc func(note *model.Note, format string) (string, bool)

// ExportNameFunc may replace the suggested filename for an export. Returning
// ok=false falls through to the built-in naming.
type ExportNameFunc func(note *model.Note, format string) (string, bool)

// ThemeChangeFunc observes theme switches.
type ThemeChangeFunc func(note *model.Note, theme string)

// Handlers holds the optional lifecycle hooks a template may supply. Nil
// fields resolve to the documented defaults when the descriptor is built.
type Handlers struct {
	OnDragEnd       DragEndFunc
	OnResizeEnd     ResizeEndFunc
	OnDelete        NoteHook
	OnSelect        NoteHook
	OnDeselect      NoteHook
	OnMinimize      NoteHook
	OnMaximize      NoteHook
	OnContentChange ContentChangeFunc
	OnExport        ExportFunc
	OnExportName    ExportNameFunc
	OnDuplicate     NoteHook
	OnThemeChange   ThemeChangeFunc
	OnLock          NoteHook
	OnUnlock        NoteHook
}

// DefaultHandlers returns the stock hook set: a no-op drag observer and a
// resize constraint that clamps into the default envelope, returning nil when
// the gesture size already fits.
func DefaultHandlers() Handlers {
	return Handlers{
		OnDragEnd:   func(*model.Note, model.Position) {},
		OnResizeEnd: defaultResizeEnd,
	}
}

func defaultResizeEnd(_ *model.Note, size model.Size) *model.Size {
	constrained := model.Size{
		Width:  clamp(size.Width, defaultMinWidth, defaultMaxWidth),
		Height: clamp(size.Height, defaultMinHeight, defaultMaxHeight),
	}
	if constrained == size {
		return nil
	}
	return &constrained
}

// ClampResizeEnd builds a ResizeEndFunc that enforces the given bounds,
// mirroring the default handler's nil-when-unchanged contract.
func ClampResizeEnd(minW, minH, maxW, maxH int) ResizeEndFunc {
	return func(_ *model.Note, size model.Size) *model.Size {
		constrained := model.Size{
			Width:  clamp(size.Width, minW, maxW),
			Height: clamp(size.Height, minH, maxH),
		}
		if constrained == size {
			return nil
		}
		return &constrained
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Merged overlays non-nil hooks over the receiver, field by field.
func (h Handlers) Merged(overrides Handlers) Handlers {
	out := h
	if overrides.OnDragEnd != nil {
		out.OnDragEnd = overrides.OnDragEnd
	}
	if overrides.OnResizeEnd != nil {
		out.OnResizeEnd = overrides.OnResizeEnd
	}
	if overrides.OnDelete != nil {
		out.OnDelete = overrides.OnDelete
	}
	if overrides.OnSelect != nil {
		out.OnSelect = overrides.OnSelect
	}
	if overrides.OnDeselect != nil {
		out.OnDeselect = overrides.OnDeselect
	}
	if overrides.OnMinimize != nil {
		out.OnMinimize = overrides.OnMinimize
	}
	if overrides.OnMaximize != nil {
		out.OnMaximize = overrides.OnMaximize
	}
	if overrides.OnContentChange != nil {
		out.OnContentChange = overrides.OnContentChange
	}
	if overrides.OnExport != nil {
		out.OnExport = overrides.OnExport
	}
	if overrides.OnExportName != nil {
		out.OnExportName = overrides.OnExportName
	}
	if overrides.OnDuplicate != nil {
		out.OnDuplicate = overrides.OnDuplicate
	}
	if overrides.OnThemeChange != nil {
		out.OnThemeChange = overrides.OnThemeChange
	}
	if overrides.OnLock != nil {
		out.OnLock = overrides.OnLock
	}
	if overrides.OnUnlock != nil {
		out.OnUnlock = overrides.OnUnlock
	}
	return out
}
