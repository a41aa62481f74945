// ABOUTME: Interactive sticky-notes board built on bubbletea.
// ABOUTME: Translates key presses into board operations and renders the result.

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/harper/stickies/internal/board"
	"github.com/harper/stickies/internal/models"
)

type mode int

const (
	modeBrowse mode = iota
	modeCompose
	modeEdit
)

// Form fields in focus order.
const (
	focusTitle = iota
	focusContent
	focusLabel
	focusCount
)

// BoardModel is the bubbletea model for the notes board. The board owns all
// note state; the model only tracks the cursor, the form inputs and the theme.
type BoardModel struct {
	board  *board.Board
	keys   KeyMap
	theme  Theme
	dark   bool
	cursor int
	mode   mode
	focus  int
	title  textinput.Model
	body   textinput.Model
	status string
	width  int
	clicks int
}

// NewBoardModel creates a model over b.
func NewBoardModel(b *board.Board, dark bool) BoardModel {
	title := textinput.New()
	title.Placeholder = "Note Title"
	title.CharLimit = 120
	title.Width = 40

	body := textinput.New()
	body.Placeholder = "Note Content"
	body.CharLimit = 1000
	body.Width = 60

	return BoardModel{
		board: b,
		keys:  DefaultKeyMap,
		theme: ThemeFor(dark),
		dark:  dark,
		title: title,
		body:  body,
	}
}

// RunBoard runs the board until the user quits.
func RunBoard(b *board.Board, dark bool) error {
	_, err := tea.NewProgram(NewBoardModel(b, dark), tea.WithAltScreen()).Run()
	return err
}

func (m BoardModel) Init() tea.Cmd {
	return nil
}

func (m BoardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.mode {
		case modeCompose:
			return m.updateCompose(msg)
		case modeEdit:
			return m.updateEdit(msg)
		default:
			return m.updateBrowse(msg)
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.body.Width = max(msg.Width-20, 20)
	}
	return m, nil
}

func (m BoardModel) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	notes := m.board.Notes()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Down):
		m.cursor = clampCursor(m.cursor+1, len(notes))
	case key.Matches(msg, m.keys.Up):
		m.cursor = clampCursor(m.cursor-1, len(notes))
	case key.Matches(msg, m.keys.Theme):
		m.dark = !m.dark
		m.theme = ThemeFor(m.dark)
	case key.Matches(msg, m.keys.Click):
		m.clicks++
		return m, tea.SetWindowTitle(m.clickText())
	case key.Matches(msg, m.keys.New):
		draft := m.board.Draft()
		m.title.SetValue(draft.Title)
		m.body.SetValue(draft.Content)
		m.mode = modeCompose
		m.status = ""
		return m, m.focusField(focusTitle)
	case len(notes) == 0:
		return m, nil
	case key.Matches(msg, m.keys.Edit):
		note := notes[m.cursor]
		if !m.board.SelectNote(note.ID) {
			return m, nil
		}
		m.title.SetValue(note.Title)
		m.body.SetValue(note.Content)
		m.mode = modeEdit
		m.status = fmt.Sprintf("Editing #%d", note.ID)
		return m, m.focusField(focusTitle)
	case key.Matches(msg, m.keys.Favorite):
		m.board.ToggleFavorite(notes[m.cursor].Title)
	case key.Matches(msg, m.keys.Delete):
		note := notes[m.cursor]
		if m.board.DeleteNote(note.ID) {
			m.status = fmt.Sprintf("Deleted #%d", note.ID)
		}
		m.cursor = clampCursor(m.cursor, len(notes)-1)
	}
	return m, nil
}

func (m BoardModel) updateCompose(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.mode = modeBrowse
		m.blurInputs()
		return m, nil
	case key.Matches(msg, m.keys.NextField):
		return m, m.focusField((m.focus + 1) % focusCount)
	case key.Matches(msg, m.keys.PrevField):
		return m, m.focusField((m.focus + focusCount - 1) % focusCount)
	case key.Matches(msg, m.keys.Submit):
		// An incomplete draft is ignored and the form stays open.
		note, ok := m.board.Submit()
		if !ok {
			return m, nil
		}
		m.title.SetValue("")
		m.body.SetValue("")
		m.blurInputs()
		m.mode = modeBrowse
		m.cursor = 0
		m.status = fmt.Sprintf("Created #%d", note.ID)
		return m, nil
	case m.focus == focusLabel:
		if key.Matches(msg, m.keys.LabelNext) {
			m.board.UpdateDraft(models.FieldLabel, string(m.board.Draft().Label.Next()))
		}
		return m, nil
	}

	var cmd tea.Cmd
	if m.focus == focusTitle {
		m.title, cmd = m.title.Update(msg)
		m.board.UpdateDraft(models.FieldTitle, m.title.Value())
	} else {
		m.body, cmd = m.body.Update(msg)
		m.board.UpdateDraft(models.FieldContent, m.body.Value())
	}
	return m, cmd
}

func (m BoardModel) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	id := m.board.Selected()
	note, ok := m.board.Find(id)
	if !ok {
		m.mode = modeBrowse
		m.blurInputs()
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Cancel), key.Matches(msg, m.keys.Submit):
		m.commitFocused(id)
		m.board.SelectNote(board.NoSelection)
		m.blurInputs()
		m.mode = modeBrowse
		m.status = fmt.Sprintf("Saved #%d", id)
		return m, nil
	case key.Matches(msg, m.keys.NextField):
		m.commitFocused(id)
		return m, m.focusField((m.focus + 1) % focusCount)
	case key.Matches(msg, m.keys.PrevField):
		m.commitFocused(id)
		return m, m.focusField((m.focus + focusCount - 1) % focusCount)
	case m.focus == focusLabel:
		if key.Matches(msg, m.keys.LabelNext) {
			m.board.ChangeLabel(id, note.Label.Next())
		}
		return m, nil
	}

	var cmd tea.Cmd
	if m.focus == focusTitle {
		m.title, cmd = m.title.Update(msg)
	} else {
		m.body, cmd = m.body.Update(msg)
	}
	return m, cmd
}

// commitFocused is the blur of the field losing focus: its current text is
// written to the note.
func (m *BoardModel) commitFocused(id int) {
	switch m.focus {
	case focusTitle:
		m.board.Blur(id, models.FieldTitle, m.title.Value())
	case focusContent:
		m.board.Blur(id, models.FieldContent, m.body.Value())
	}
}

func (m *BoardModel) focusField(f int) tea.Cmd {
	m.focus = f
	m.blurInputs()
	switch f {
	case focusTitle:
		return m.title.Focus()
	case focusContent:
		return m.body.Focus()
	}
	return nil
}

func (m *BoardModel) blurInputs() {
	m.title.Blur()
	m.body.Blur()
}

func (m BoardModel) View() string {
	t := m.theme
	var sb strings.Builder

	sb.WriteString(t.title().Render("Sticky Notes") + " " + t.button().Render("Toggle Theme ("+t.Name+")") + "\n")
	sb.WriteString(t.button().Render("Click me") + " " + t.faint().Render(m.clickText()) + "\n\n")

	if m.mode == modeCompose {
		sb.WriteString(m.viewForm(m.board.Draft().Label, "Create Note"))
		sb.WriteString("\n")
	}

	s := m.board.Snapshot()
	if len(s.Notes) == 0 {
		sb.WriteString(t.faint().Render("No notes yet. Press n to create one.") + "\n")
	}
	for i, n := range s.Notes {
		sb.WriteString(m.viewNote(n, i == m.cursor, s.IsSelected(n.ID), s.IsFavorite(n.Title)))
	}

	sb.WriteString("\n" + t.title().Render("List of favorites:") + "\n")
	for _, title := range s.Favorites {
		sb.WriteString("  " + t.favorite().Render("♥") + " " + title + "\n")
	}

	if m.status != "" {
		sb.WriteString("\n" + t.accent().Render(m.status) + "\n")
	}
	sb.WriteString("\n" + t.faint().Render(m.help()) + "\n")
	return sb.String()
}

func (m BoardModel) viewForm(label models.Label, action string) string {
	t := m.theme
	var sb strings.Builder
	sb.WriteString(m.title.View() + "\n")
	sb.WriteString(m.body.View() + "\n")

	var options []string
	for _, l := range models.Labels {
		opt := l.Display()
		if l == label {
			opt = t.selected().Render(opt)
		}
		options = append(options, opt)
	}
	labelLine := "Label: " + strings.Join(options, " ")
	if m.focus == focusLabel {
		labelLine = t.accent().Render("> ") + labelLine
	}
	sb.WriteString(labelLine + "\n")
	if action != "" {
		sb.WriteString(t.button().Render(action) + "\n")
	}
	return sb.String()
}

func (m BoardModel) viewNote(n models.Note, cursor, selected, favorite bool) string {
	t := m.theme

	if selected && m.mode == modeEdit {
		return lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(t.Accent).
			Render(fmt.Sprintf("#%d\n", n.ID)+m.viewForm(n.Label, "")) + "\n"
	}

	heart := t.faint().Render("♡")
	if favorite {
		heart = t.favorite().Render("♥")
	}
	head := fmt.Sprintf("#%-3d %s %s", n.ID, heart, n.Title)
	if cursor {
		head = t.selected().Render(head)
	} else {
		head = t.title().Render(head)
	}

	return fmt.Sprintf("%s\n     %s\n     %s\n",
		head,
		n.Content,
		t.accent().Render(n.Label.Display()))
}

// clickText is the counter line, also used as the window title.
func (m BoardModel) clickText() string {
	return fmt.Sprintf("You clicked %d times", m.clicks)
}

func (m BoardModel) help() string {
	var bindings []key.Binding
	switch m.mode {
	case modeCompose:
		bindings = []key.Binding{m.keys.NextField, m.keys.LabelNext, m.keys.Submit, m.keys.Cancel}
	case modeEdit:
		bindings = []key.Binding{m.keys.NextField, m.keys.LabelNext, m.keys.Submit}
	default:
		bindings = []key.Binding{m.keys.New, m.keys.Edit, m.keys.Favorite, m.keys.Delete, m.keys.Theme, m.keys.Click, m.keys.Quit}
	}
	parts := make([]string, len(bindings))
	for i, b := range bindings {
		parts[i] = b.Help().Key + " " + b.Help().Desc
	}
	return strings.Join(parts, " • ")
}

func clampCursor(cursor, length int) int {
	if length <= 0 || cursor < 0 {
		return 0
	}
	if cursor >= length {
		return length - 1
	}
	return cursor
}
