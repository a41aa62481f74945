// ABOUTME: Tests for the Board controller.
// ABOUTME: Checks reported outcomes, logging and concurrent use.

package board

import (
	"bytes"
	"fmt"
	"sync"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/harper/stickies/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoardSubmit(t *testing.T) {
	b := New()

	_, ok := b.Submit()
	assert.False(t, ok)

	b.UpdateDraft(models.FieldTitle, "Groceries")
	b.UpdateDraft(models.FieldContent, "milk")
	b.UpdateDraft(models.FieldLabel, "personal")

	note, ok := b.Submit()
	require.True(t, ok)
	assert.Equal(t, 1, note.ID)
	assert.Equal(t, models.LabelPersonal, note.Label)
	assert.Equal(t, models.NewDraft(), b.Draft())
}

func TestBoardEditFlow(t *testing.T) {
	b := New(WithNotes(DefaultSeed()))

	assert.False(t, b.UpdateField(1, models.FieldTitle, "x"), "unselected note rejects edits")
	assert.True(t, b.SelectNote(1))
	assert.True(t, b.UpdateField(1, models.FieldTitle, "x"))

	b.Blur(1, models.FieldContent, "new body")
	b.ChangeLabel(1, models.LabelWork)

	n, ok := b.Find(1)
	require.True(t, ok)
	assert.Equal(t, "x", n.Title)
	assert.Equal(t, "new body", n.Content)
	assert.Equal(t, models.LabelWork, n.Label)

	assert.False(t, b.SelectNote(99))
	assert.Equal(t, 1, b.Selected())
}

func TestBoardDeleteReportsRemoval(t *testing.T) {
	b := New(WithNotes(DefaultSeed()))

	assert.True(t, b.DeleteNote(3))
	assert.False(t, b.DeleteNote(3))
	assert.Len(t, b.Notes(), len(DefaultSeed())-1)
}

func TestBoardSnapshotIsCopy(t *testing.T) {
	b := New(WithNotes(DefaultSeed()))

	snap := b.Snapshot()
	snap.Notes[0].Title = "mutated"

	n, _ := b.Find(snap.Notes[0].ID)
	assert.NotEqual(t, "mutated", n.Title)
}

func TestBoardLogsFavorites(t *testing.T) {
	var buf bytes.Buffer
	b := New(WithLogger(log.New(&buf)))

	assert.True(t, b.ToggleFavorite("Note 1"))
	assert.Contains(t, buf.String(), "favorite notes")
	assert.Contains(t, buf.String(), "Note 1")

	assert.False(t, b.ToggleFavorite("Note 1"))
	assert.Empty(t, b.Favorites())
}

func TestBoardDispatch(t *testing.T) {
	b := New()

	require.NoError(t, b.Dispatch(Event{Type: EventCreate, Title: "T", Content: "C"}))
	require.NoError(t, b.Dispatch(Event{Type: EventFavorite, Title: "T"}))

	err := b.Dispatch(Event{Type: "explode"})
	require.ErrorIs(t, err, ErrUnknownEvent)

	assert.Len(t, b.Notes(), 1)
	assert.Equal(t, []string{"T"}, b.Favorites())
}

func TestBoardConcurrentCreates(t *testing.T) {
	b := New()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			b.CreateNote(draft(fmt.Sprintf("n%d", i), "body"))
		}(i)
	}
	wg.Wait()

	notes := b.Notes()
	require.Len(t, notes, 50)
	seen := map[int]bool{}
	for _, n := range notes {
		assert.False(t, seen[n.ID], "duplicate id %d", n.ID)
		seen[n.ID] = true
	}
}

func TestBoardCreateNoteKeepsPendingDraft(t *testing.T) {
	b := New()
	b.UpdateDraft(models.FieldTitle, "Typing")

	_, ok := b.CreateNote(draft("From agent", "body"))
	require.True(t, ok)
	assert.Equal(t, "Typing", b.Draft().Title)

	b.UpdateDraft(models.FieldContent, "done")
	note, ok := b.Submit()
	require.True(t, ok)
	assert.Equal(t, "Typing", note.Title)
	assert.Equal(t, models.NewDraft(), b.Draft())
}

func TestBoardReplay(t *testing.T) {
	var buf bytes.Buffer
	b := New(WithNotes(DefaultSeed()), WithLogger(log.New(&buf)))

	err := b.Replay([]Event{
		{Type: EventCreate, Title: "T", Content: "C"},
		{Type: EventFavorite, Title: "T"},
		{Type: "undo"},
		{Type: EventDelete, ID: 1},
	})
	require.ErrorIs(t, err, ErrUnknownEvent)
	assert.Contains(t, err.Error(), "event 3")

	assert.Len(t, b.Notes(), 7, "events after the failure are not applied")
	assert.Equal(t, []string{"T"}, b.Favorites())
	assert.Contains(t, buf.String(), "favorite notes")
}

func TestBoardConcurrentMixedOperations(t *testing.T) {
	b := New(WithNotes(DefaultSeed()))

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(4)
		go func(i int) {
			defer wg.Done()
			b.CreateNote(draft(fmt.Sprintf("c%d", i), "body"))
		}(i)
		go func() {
			defer wg.Done()
			b.ToggleFavorite("shared")
		}()
		go func(i int) {
			defer wg.Done()
			b.UpdateDraft(models.FieldTitle, fmt.Sprintf("d%d", i))
			b.UpdateDraft(models.FieldContent, "x")
			b.Submit()
		}(i)
		go func() {
			defer wg.Done()
			_ = b.Snapshot()
			_ = b.Favorites()
		}()
	}
	wg.Wait()

	notes := b.Notes()
	seen := map[int]bool{}
	for _, n := range notes {
		assert.False(t, seen[n.ID], "duplicate id %d", n.ID)
		seen[n.ID] = true
	}
	// 20 toggles of one title leave it unstarred.
	assert.Empty(t, b.Favorites())
	assert.GreaterOrEqual(t, len(notes), len(DefaultSeed())+20)
}
