package authoring

// DefaultWidth and DefaultHeight pre-fill the size inputs of a fresh draft.
const (
	DefaultWidth  = 300
	DefaultHeight = 200
)

// DefaultBasicMarkup seeds the basic-mode content buffer.
const DefaultBasicMarkup = `<div class="custom-note-content">
  <p>New custom note</p>
</div>
`

// DefaultAdvancedSource seeds the advanced-mode buffer with a minimal
// renderer template so authors start from working source.
const DefaultAdvancedSource = `<div class="custom-note-content">
  <h4>{{ note.TemplateID }}</h4>
  {% if content %}
  <p>{{ content }}</p>
  {% else %}
  <p><em>Empty note</em></p>
  {% endif %}
</div>
`
