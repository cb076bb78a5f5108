package template

import (
	"encoding/json"
	"fmt"

	"github.com/goliatone/go-notecanvas/pkg/model"
)

// Export formats understood by every template.
const (
	FormatJSON     = "json"
	FormatMarkdown = "markdown"
	FormatHTML     = "html"
)

// Export serialises a note deterministically. A template's OnExport hook may
// take over a format entirely; otherwise json (2-space indentation),
// markdown, and html are produced, with unknown formats falling back to json.
func (t *Template) Export(note model.Note, format string) (string, error) {
	if t.Handlers.OnExport != nil {
		if out, ok := t.Handlers.OnExport(&note, format); ok {
			return out, nil
		}
	}
	switch format {
	case FormatMarkdown:
		return fmt.Sprintf("# %s\n\n%s", t.Name, note.Content), nil
	case FormatHTML:
		return fmt.Sprintf("<div class=\"note\">\n  <h2>%s</h2>\n  <div>%s</div>\n</div>", t.Name, note.Content), nil
	default:
		data, err := json.MarshalIndent(note, "", "  ")
		if err != nil {
			return "", fmt.Errorf("template: export note %s: %w", note.ID, err)
		}
		return string(data), nil
	}
}

// ExportName suggests a filename for an exported note. A template's
// OnExportName hook may take over; otherwise the name is the template id with
// an extension derived from the format.
func (t *Template) ExportName(note model.Note, format string) string {
	if t.Handlers.OnExportName != nil {
		if name, ok := t.Handlers.OnExportName(&note, format); ok {
			return name
		}
	}
	return t.ID + "." + formatExtension(format)
}

func formatExtension(format string) string {
	switch format {
	case FormatMarkdown:
		return "md"
	case FormatHTML:
		return "html"
	default:
		return "json"
	}
}

// Duplicate returns a fresh instance offset by {+20,+20}, preserving content,
// size, theme, and metadata under a newly generated id.
func (t *Template) Duplicate(note model.Note) *model.Note {
	offset := model.Position{X: note.Position.X + 20, Y: note.Position.Y + 20}
	size := note.Size
	dup := t.NewNote("", &offset, NoteOptions{
		Content:  note.Content,
		Size:     &size,
		Theme:    note.Theme,
		Metadata: note.Metadata,
	})
	if t.Handlers.OnDuplicate != nil {
		t.Handlers.OnDuplicate(dup)
	}
	return dup
}
