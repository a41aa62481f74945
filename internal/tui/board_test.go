// ABOUTME: Tests for the interactive board model.
// ABOUTME: Drives the model with key messages and checks board state.

package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/harper/stickies/internal/board"
	"github.com/harper/stickies/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	tab   = tea.KeyMsg{Type: tea.KeyTab}
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	esc   = tea.KeyMsg{Type: tea.KeyEsc}
	space = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
)

func send(t *testing.T, m BoardModel, msgs ...tea.Msg) BoardModel {
	t.Helper()
	for _, msg := range msgs {
		updated, _ := m.Update(msg)
		var ok bool
		m, ok = updated.(BoardModel)
		require.True(t, ok)
	}
	return m
}

func seededBoard() *board.Board {
	return board.New(board.WithNotes([]models.Note{
		models.NewNote(2, "Plan", "gym", models.LabelPersonal),
		models.NewNote(1, "Lecture", "chapter 4", models.LabelStudy),
	}))
}

func TestBoardModelCreatesNote(t *testing.T) {
	b := board.New()
	m := NewBoardModel(b, false)

	m = send(t, m, runes("n"), runes("New Note"), tab, runes("Note content"), tab, space, enter)

	notes := b.Notes()
	require.Len(t, notes, 1)
	assert.Equal(t, "New Note", notes[0].Title)
	assert.Equal(t, "Note content", notes[0].Content)
	assert.Equal(t, models.LabelPersonal, notes[0].Label)
	assert.Equal(t, modeBrowse, m.mode)
	assert.Equal(t, models.NewDraft(), b.Draft())
	assert.Contains(t, m.View(), "New Note")
}

func TestBoardModelIgnoresIncompleteDraft(t *testing.T) {
	b := board.New()
	m := NewBoardModel(b, false)

	m = send(t, m, runes("n"), runes("Only a title"), enter)

	assert.Empty(t, b.Notes())
	assert.Equal(t, modeCompose, m.mode)
	assert.Equal(t, "Only a title", b.Draft().Title)
}

func TestBoardModelCancelKeepsDraft(t *testing.T) {
	b := board.New()
	m := NewBoardModel(b, false)

	m = send(t, m, runes("n"), runes("half"), esc)
	assert.Equal(t, modeBrowse, m.mode)

	m = send(t, m, runes("n"))
	assert.Equal(t, "half", m.title.Value())
}

func TestBoardModelEditCommitsOnBlur(t *testing.T) {
	b := seededBoard()
	m := NewBoardModel(b, false)

	m = send(t, m, runes("e"), runes("!"))
	require.Equal(t, modeEdit, m.mode)
	assert.Equal(t, 2, b.Selected())

	n, _ := b.Find(2)
	assert.Equal(t, "Plan", n.Title, "title is not committed before blur")

	m = send(t, m, tab)
	n, _ = b.Find(2)
	assert.Equal(t, "Plan!", n.Title)

	other, _ := b.Find(1)
	assert.Equal(t, "Lecture", other.Title)

	m = send(t, m, tab, space)
	n, _ = b.Find(2)
	assert.Equal(t, models.LabelStudy, n.Label, "label commits immediately")

	m = send(t, m, esc)
	assert.Equal(t, modeBrowse, m.mode)
	assert.Equal(t, board.NoSelection, b.Selected())
}

func TestBoardModelFavoriteAndDelete(t *testing.T) {
	b := seededBoard()
	m := NewBoardModel(b, false)

	m = send(t, m, runes("j"), runes("f"))
	assert.Equal(t, []string{"Lecture"}, b.Favorites())
	view := m.View()
	favIdx := strings.Index(view, "List of favorites:")
	require.GreaterOrEqual(t, favIdx, 0)
	assert.Contains(t, view[favIdx:], "Lecture")

	m = send(t, m, runes("d"))
	notes := b.Notes()
	require.Len(t, notes, 1)
	assert.Equal(t, "Plan", notes[0].Title)
	assert.Equal(t, 0, m.cursor)
}

func TestBoardModelThemeToggle(t *testing.T) {
	b := seededBoard()
	m := NewBoardModel(b, false)
	before := b.Snapshot()

	m = send(t, m, runes("t"))
	assert.Equal(t, "dark", m.theme.Name)
	m = send(t, m, runes("t"))
	assert.Equal(t, "light", m.theme.Name)

	assert.Equal(t, before, b.Snapshot())
}

func TestBoardModelEmptyBoard(t *testing.T) {
	m := NewBoardModel(board.New(), true)

	m = send(t, m, runes("e"), runes("d"), runes("f"))

	assert.Equal(t, modeBrowse, m.mode)
	assert.Contains(t, m.View(), "No notes yet")
}

func TestBoardModelQuit(t *testing.T) {
	m := NewBoardModel(board.New(), false)

	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestBoardModelClickCounter(t *testing.T) {
	b := seededBoard()
	m := NewBoardModel(b, false)
	before := b.Snapshot()

	assert.Contains(t, m.View(), "You clicked 0 times")

	m = send(t, m, runes("c"), runes("t"))
	updated, cmd := m.Update(runes("c"))
	m = updated.(BoardModel)

	assert.NotNil(t, cmd, "click updates the window title")
	assert.Equal(t, 2, m.clicks)
	assert.Contains(t, m.View(), "You clicked 2 times")
	assert.Equal(t, "dark", m.theme.Name, "counter and theme are independent")
	assert.Equal(t, before, b.Snapshot())
}
