// ABOUTME: Board controller that owns one State and applies reducers to it.
// ABOUTME: Serializes operations and logs transitions and favorite changes.

package board

import (
	"io"
	"slices"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/harper/stickies/internal/models"
)

// Board is the single owner of a notes board. All operations run to
// completion under one lock, so callers on several goroutines (the MCP
// transport) observe the same sequence of transitions a UI would.
type Board struct {
	mu      sync.Mutex
	state   State
	session uuid.UUID
	logger  *log.Logger
}

// Option configures a Board.
type Option func(*Board)

// WithLogger sets the logger used for transition and favorite events.
func WithLogger(logger *log.Logger) Option {
	return func(b *Board) {
		b.logger = logger
	}
}

// WithNotes seeds the board. Notes are held in the order given.
func WithNotes(notes []models.Note) Option {
	return func(b *Board) {
		b.state = NewState(notes)
	}
}

// New creates an empty board unless seeded with WithNotes.
func New(opts ...Option) *Board {
	b := &Board{
		state:   NewState(nil),
		session: uuid.New(),
		logger:  log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(b)
	}
	b.logger = b.logger.With("board", b.session.String()[:8])
	return b
}

// Session identifies this board instance for its lifetime.
func (b *Board) Session() uuid.UUID {
	return b.session
}

// Snapshot returns a copy of the current state.
func (b *Board) Snapshot() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return cloneState(b.state)
}

// Notes returns the held notes, most recent first.
func (b *Board) Notes() []models.Note {
	return b.Snapshot().Notes
}

// Find returns the held note with id.
func (b *Board) Find(id int) (models.Note, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state.Find(id)
}

// Draft returns the note under composition.
func (b *Board) Draft() models.Note {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state.Draft
}

// Favorites returns the starred titles in the order they were starred.
func (b *Board) Favorites() []string {
	return b.Snapshot().Favorites
}

// UpdateDraft sets one field of the creation form.
func (b *Board) UpdateDraft(field models.Field, value string) {
	b.apply("draft", func(s State) State { return UpdateDraft(s, field, value) })
}

// Submit commits the current draft. It reports the created note, or false
// when the draft was incomplete and nothing changed.
func (b *Board) Submit() (models.Note, bool) {
	return b.create(func(s State) models.Note { return s.Draft }, false)
}

// CreateNote commits draft and reports the created note, or false when the
// draft was incomplete and nothing changed. The pending draft of the
// creation form is left as it was.
func (b *Board) CreateNote(draft models.Note) (models.Note, bool) {
	return b.create(func(State) models.Note { return draft }, true)
}

func (b *Board) create(pick func(State) models.Note, keepDraft bool) (models.Note, bool) {
	var created models.Note
	var ok bool
	b.apply("create", func(s State) State {
		next := CreateNote(s, pick(s))
		if len(next.Notes) > len(s.Notes) {
			created, ok = next.Notes[0], true
			if keepDraft {
				next.Draft = s.Draft
			}
		}
		return next
	})
	if ok {
		b.logger.Debug("note created", "id", created.ID, "label", created.Label)
	} else {
		b.logger.Debug("incomplete draft ignored")
	}
	return created, ok
}

// DeleteNote removes the note with id. It reports whether a note was removed.
func (b *Board) DeleteNote(id int) bool {
	var removed bool
	b.apply("delete", func(s State) State {
		next := DeleteNote(s, id)
		removed = len(next.Notes) < len(s.Notes)
		return next
	})
	return removed
}

// SelectNote opens id for editing. It reports whether id is now selected.
func (b *Board) SelectNote(id int) bool {
	var selected bool
	b.apply("select", func(s State) State {
		next := SelectNote(s, id)
		selected = next.Selected == id
		return next
	})
	return selected
}

// Selected returns the id open for editing, or NoSelection.
func (b *Board) Selected() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state.Selected
}

// UpdateField edits a field of the selected note. It reports whether the
// note accepted the edit.
func (b *Board) UpdateField(id int, field models.Field, value string) bool {
	var accepted bool
	b.apply("update", func(s State) State {
		accepted = s.IsSelected(id)
		return UpdateField(s, id, field, value)
	})
	return accepted
}

// Blur commits the text of a title or content region that lost focus.
func (b *Board) Blur(id int, field models.Field, text string) {
	b.apply("blur", func(s State) State { return Blur(s, id, field, text) })
}

// ChangeLabel commits a label selection for the selected note.
func (b *Board) ChangeLabel(id int, label models.Label) {
	b.apply("label", func(s State) State { return ChangeLabel(s, id, label) })
}

// ToggleFavorite flips the star on title and reports whether it is now starred.
func (b *Board) ToggleFavorite(title string) bool {
	var starred bool
	var favorites []string
	b.apply("favorite", func(s State) State {
		next := ToggleFavorite(s, title)
		starred = next.IsFavorite(title)
		favorites = slices.Clone(next.Favorites)
		return next
	})
	b.logger.Info("favorite notes", "favorites", favorites)
	return starred
}

// Replay applies events in order as one transition. Events before the
// first unknown one stay applied.
func (b *Board) Replay(events []Event) error {
	var err error
	b.apply("replay", func(s State) State {
		var next State
		next, err = Replay(s, events)
		return next
	})
	if slices.ContainsFunc(events, func(e Event) bool { return e.Type == EventFavorite }) {
		b.logger.Info("favorite notes", "favorites", b.Favorites())
	}
	return err
}

// Dispatch applies a recorded event.
func (b *Board) Dispatch(e Event) error {
	var err error
	b.apply(string(e.Type), func(s State) State {
		var next State
		next, err = Apply(s, e)
		return next
	})
	if err == nil && e.Type == EventFavorite {
		b.logger.Info("favorite notes", "favorites", b.Favorites())
	}
	return err
}

func (b *Board) apply(op string, reduce func(State) State) {
	b.mu.Lock()
	b.state = reduce(b.state)
	count, selected := len(b.state.Notes), b.state.Selected
	b.mu.Unlock()

	b.logger.Debug("transition", "op", op, "notes", count, "selected", selected)
}

func cloneState(s State) State {
	s.Notes = slices.Clone(s.Notes)
	s.Favorites = slices.Clone(s.Favorites)
	return s
}
