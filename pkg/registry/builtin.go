package registry

import (
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/goliatone/go-notecanvas/pkg/model"
	"github.com/goliatone/go-notecanvas/pkg/template"
)

// Built-in template ids seeded at session start.
const (
	TemplateTextNote = "text-note"
	TemplateTaskList = "task-list"
	TemplateCodeNote = "code-note"
)

// Seed registers the built-in templates. Built-ins have no persistence of
// their own; they are re-seeded every session.
func (r *Registry) Seed() {
	for _, t := range BuiltinTemplates() {
		r.Register(t)
	}
}

// BuiltinTemplates returns fresh descriptors for the stock template set.
func BuiltinTemplates() []*template.Template {
	return []*template.Template{
		textNoteTemplate(),
		taskListTemplate(),
		codeNoteTemplate(),
	}
}

func textNoteTemplate() *template.Template {
	return template.New(TemplateTextNote, "Text Note", "A simple editable text note",
		template.WithDefaultSize(model.Size{Width: 300, Height: 200}),
		template.WithDefaultContent("Add your content here..."),
		template.WithBehaviors(model.Behaviors{
			model.BehaviorDraggable: true,
			model.BehaviorResizable: true,
			model.BehaviorEditable:  true,
			model.BehaviorClosable:  true,
		}),
		template.WithStyles(map[string]string{
			"backgroundColor": "#fff",
			"color":           "#333",
			"border":          "1px solid #ddd",
			"borderRadius":    "4px",
			"boxShadow":       "0 2px 8px rgba(0, 0, 0, 0.1)",
		}),
	)
}

func taskListTemplate() *template.Template {
	return template.New(TemplateTaskList, "Task List", "A checklist with toggleable items",
		template.WithDefaultSize(model.Size{Width: 300, Height: 250}),
		template.WithDefaultContent("- [ ] Task 1\n- [ ] Task 2\n- [ ] Task 3"),
		template.WithBehaviors(model.Behaviors{
			model.BehaviorDraggable: true,
			model.BehaviorResizable: true,
			model.BehaviorEditable:  true,
			model.BehaviorClosable:  true,
			"checkboxToggle":        true,
		}),
		template.WithStyles(map[string]string{
			"backgroundColor": "#f9f7e8",
			"color":           "#555",
			"border":          "1px solid #e6e2c9",
			"borderRadius":    "4px",
			"boxShadow":       "0 2px 8px rgba(0, 0, 0, 0.1)",
		}),
		template.WithRenderer(template.NewRenderer(renderTaskList)),
	)
}

func codeNoteTemplate() *template.Template {
	return template.New(TemplateCodeNote, "Code Snippet", "A code note with syntax-aware rendering",
		template.WithDefaultSize(model.Size{Width: 400, Height: 300}),
		template.WithDefaultContent("// Your code here\n\n"),
		template.WithDefaultTheme(template.ThemeDark),
		template.WithBehaviors(model.Behaviors{
			model.BehaviorDraggable: true,
			model.BehaviorResizable: true,
			model.BehaviorEditable:  true,
			model.BehaviorClosable:  true,
			"codeHighlighting":      true,
		}),
		template.WithStyles(map[string]string{
			"backgroundColor": "#2d2d2d",
			"color":           "#f8f8f2",
			"border":          "1px solid #555",
			"borderRadius":    "4px",
			"fontFamily":      "monospace",
			"boxShadow":       "0 4px 12px rgba(0, 0, 0, 0.2)",
		}),
		template.WithHandlers(template.Handlers{
			// Code notes keep a tighter footprint than the generic envelope.
			OnResizeEnd:  template.ClampResizeEnd(150, 100, 600, 600),
			OnExport:     exportCodeNote,
			OnExportName: exportCodeNoteName,
		}),
		template.WithCustomControls(model.Controls{
			"toggle-language": {
				Label: "Lang",
				OnClick: func(note *model.Note, up model.UpdateFunc) {
					next := nextLanguage(noteLanguage(note))
					meta := map[string]any{}
					for key, value := range note.Metadata {
						meta[key] = value
					}
					meta["language"] = next
					up(model.NotePatch{ID: note.ID, Metadata: meta})
				},
			},
		}),
		template.WithRenderer(template.NewRenderer(renderCodeNote)),
	)
}

func renderTaskList(_ context.Context, rc template.RenderContext) (string, error) {
	var b strings.Builder
	b.WriteString(`<ul class="note-tasks">`)
	for _, line := range strings.Split(rc.Note.Content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		checked := strings.HasPrefix(trimmed, "- [x]") || strings.HasPrefix(trimmed, "- [X]")
		label := trimmed
		if checked {
			label = strings.TrimSpace(trimmed[5:])
		} else if strings.HasPrefix(trimmed, "- [ ]") {
			label = strings.TrimSpace(trimmed[5:])
		}
		mark := ""
		if checked {
			mark = " checked"
		}
		fmt.Fprintf(&b, `<li><input type="checkbox"%s disabled> %s</li>`, mark, html.EscapeString(label))
	}
	b.WriteString(`</ul>`)
	return b.String(), nil
}

// ToggleTask flips the checkbox on one content line of a task-list note,
// counting raw content lines. It returns ok=false for locked notes, indexes
// out of range, and lines that are not task items.
func ToggleTask(note model.Note, lineIndex int) (model.NotePatch, bool) {
	if note.Locked {
		return model.NotePatch{}, false
	}
	lines := strings.Split(note.Content, "\n")
	if lineIndex < 0 || lineIndex >= len(lines) {
		return model.NotePatch{}, false
	}
	line := lines[lineIndex]
	trimmed := strings.TrimSpace(line)
	switch {
	case strings.HasPrefix(trimmed, "- [ ]"):
		lines[lineIndex] = strings.Replace(line, "- [ ]", "- [x]", 1)
	case strings.HasPrefix(trimmed, "- [x]"):
		lines[lineIndex] = strings.Replace(line, "- [x]", "- [ ]", 1)
	case strings.HasPrefix(trimmed, "- [X]"):
		lines[lineIndex] = strings.Replace(line, "- [X]", "- [ ]", 1)
	default:
		return model.NotePatch{}, false
	}
	content := strings.Join(lines, "\n")
	return model.NotePatch{ID: note.ID, Content: model.Ptr(content)}, true
}

func renderCodeNote(_ context.Context, rc template.RenderContext) (string, error) {
	lang := noteLanguage(&rc.Note)
	return fmt.Sprintf(`<pre class="note-code"><code class="language-%s">%s</code></pre>`,
		html.EscapeString(lang), html.EscapeString(rc.Note.Content)), nil
}

func exportCodeNote(note *model.Note, format string) (string, bool) {
	if format != template.FormatMarkdown {
		return "", false
	}
	lang := noteLanguage(note)
	return fmt.Sprintf("# Code Snippet\n\n```%s\n%s\n```", lang, note.Content), true
}

// exportCodeNoteName suggests code-snippet.<ext> with the extension derived
// from the note's language, whatever the export format.
func exportCodeNoteName(note *model.Note, _ string) (string, bool) {
	return "code-snippet." + languageExtension(noteLanguage(note)), true
}

var codeLanguages = []string{"javascript", "python", "go", "html", "css", "json"}

var languageExtensions = map[string]string{
	"javascript": "js",
	"python":     "py",
	"go":         "go",
	"html":       "html",
	"css":        "css",
	"json":       "json",
}

func languageExtension(lang string) string {
	if ext, ok := languageExtensions[lang]; ok {
		return ext
	}
	return "txt"
}

func noteLanguage(note *model.Note) string {
	if note != nil {
		if lang, ok := note.Metadata["language"].(string); ok && lang != "" {
			return lang
		}
	}
	return "javascript"
}

func nextLanguage(current string) string {
	for idx, lang := range codeLanguages {
		if lang == current {
			return codeLanguages[(idx+1)%len(codeLanguages)]
		}
	}
	return codeLanguages[0]
}
