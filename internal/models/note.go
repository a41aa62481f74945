// ABOUTME: Note model representing one sticky note on the board.
// ABOUTME: Provides constructors for committed notes and the creation draft.

package models

import "strings"

// DraftID marks a note that has not been committed to the board yet.
const DraftID = -1

type Note struct {
	ID      int    `json:"id" yaml:"id"`
	Title   string `json:"title" yaml:"title"`
	Content string `json:"content" yaml:"content"`
	Label   Label  `json:"label" yaml:"label"`
}

func NewNote(id int, title, content string, label Label) Note {
	return Note{
		ID:      id,
		Title:   title,
		Content: content,
		Label:   NormalizeLabel(label),
	}
}

// NewDraft returns the empty note shown in the creation form.
func NewDraft() Note {
	return Note{ID: DraftID, Label: LabelOther}
}

// Complete reports whether both title and content have non-blank text.
func (n Note) Complete() bool {
	return strings.TrimSpace(n.Title) != "" && strings.TrimSpace(n.Content) != ""
}

// Field names an editable part of a note.
type Field string

const (
	FieldTitle   Field = "title"
	FieldContent Field = "content"
	FieldLabel   Field = "label"
)

// With returns a copy of n with field set to value. Unknown fields and
// label values outside the enum leave n unchanged.
func (n Note) With(field Field, value string) Note {
	switch field {
	case FieldTitle:
		n.Title = value
	case FieldContent:
		n.Content = value
	case FieldLabel:
		if l, ok := ParseLabel(value); ok {
			n.Label = l
		}
	}
	return n
}
