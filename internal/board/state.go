// ABOUTME: Board state and the pure reducers that transition it.
// ABOUTME: Each reducer takes a prior State and returns the next one without mutating it.

package board

import (
	"slices"

	"github.com/harper/stickies/internal/models"
)

// NoSelection is the Selected value when no note is being edited.
const NoSelection = -1

// State is everything the board holds. Notes are ordered most-recent-first.
type State struct {
	Notes     []models.Note `json:"notes" yaml:"notes"`
	Draft     models.Note   `json:"draft" yaml:"draft"`
	Selected  int           `json:"selected" yaml:"selected"`
	Favorites []string      `json:"favorites" yaml:"favorites"`
}

// NewState returns a board holding notes in the given order, with an empty
// draft and nothing selected.
func NewState(notes []models.Note) State {
	held := make([]models.Note, len(notes))
	for i, n := range notes {
		n.Label = models.NormalizeLabel(n.Label)
		held[i] = n
	}
	return State{
		Notes:    held,
		Draft:    models.NewDraft(),
		Selected: NoSelection,
	}
}

// Find returns the held note with id.
func (s State) Find(id int) (models.Note, bool) {
	i := s.index(id)
	if i < 0 {
		return models.Note{}, false
	}
	return s.Notes[i], true
}

func (s State) index(id int) int {
	return slices.IndexFunc(s.Notes, func(n models.Note) bool { return n.ID == id })
}

// IsSelected reports whether id is the note currently open for editing.
func (s State) IsSelected(id int) bool {
	return s.Selected != NoSelection && s.Selected == id
}

// IsFavorite reports whether title is starred.
func (s State) IsFavorite(title string) bool {
	return slices.Contains(s.Favorites, title)
}

// nextID is len(Notes)+1, bumped past any id that is still held.
func (s State) nextID() int {
	id := len(s.Notes) + 1
	for s.index(id) >= 0 {
		id++
	}
	return id
}

// CreateNote commits draft to the front of the board and resets the draft.
// A draft with a blank title or content is ignored.
func CreateNote(s State, draft models.Note) State {
	if !draft.Complete() {
		return s
	}

	note := models.NewNote(s.nextID(), draft.Title, draft.Content, draft.Label)
	notes := make([]models.Note, 0, len(s.Notes)+1)
	notes = append(notes, note)
	notes = append(notes, s.Notes...)

	s.Notes = notes
	s.Draft = models.NewDraft()
	return s
}

// UpdateDraft sets one field of the creation draft.
func UpdateDraft(s State, field models.Field, value string) State {
	s.Draft = s.Draft.With(field, value)
	return s
}

// DeleteNote removes the note with id. Deleting the selected note clears
// the selection.
func DeleteNote(s State, id int) State {
	if s.index(id) < 0 {
		return s
	}
	s.Notes = slices.DeleteFunc(slices.Clone(s.Notes), func(n models.Note) bool { return n.ID == id })
	if s.Selected == id {
		s.Selected = NoSelection
	}
	return s
}

// SelectNote opens id for editing. NoSelection closes the current one;
// an id that is not held leaves the selection as it was.
func SelectNote(s State, id int) State {
	if id != NoSelection && s.index(id) < 0 {
		return s
	}
	s.Selected = id
	return s
}

// UpdateField edits one field of the note with id. Only the selected note
// accepts edits.
func UpdateField(s State, id int, field models.Field, value string) State {
	if !s.IsSelected(id) {
		return s
	}
	i := s.index(id)
	if i < 0 {
		return s
	}
	notes := slices.Clone(s.Notes)
	notes[i] = notes[i].With(field, value)
	s.Notes = notes
	return s
}

// Blur commits the text an editable title or content region holds when it
// loses focus.
func Blur(s State, id int, field models.Field, text string) State {
	if field != models.FieldTitle && field != models.FieldContent {
		return s
	}
	return UpdateField(s, id, field, text)
}

// ChangeLabel commits a label selection immediately.
func ChangeLabel(s State, id int, label models.Label) State {
	return UpdateField(s, id, models.FieldLabel, string(label))
}

// ToggleFavorite stars title if it is not starred and unstars it otherwise.
// Favorites are keyed by title, so notes sharing a title share the star.
func ToggleFavorite(s State, title string) State {
	if s.IsFavorite(title) {
		s.Favorites = slices.DeleteFunc(slices.Clone(s.Favorites), func(t string) bool { return t == title })
		return s
	}
	favorites := make([]string, 0, len(s.Favorites)+1)
	favorites = append(favorites, s.Favorites...)
	s.Favorites = append(favorites, title)
	return s
}
