// ABOUTME: Interactive grocery checklist built on bubbletea.
// ABOUTME: Shows the bought-items header above a toggleable list.

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/harper/stickies/internal/todo"
)

type ChecklistModel struct {
	list   *todo.Checklist
	keys   KeyMap
	theme  Theme
	dark   bool
	cursor int
}

func NewChecklistModel(list *todo.Checklist, dark bool) ChecklistModel {
	return ChecklistModel{
		list:  list,
		keys:  DefaultKeyMap,
		theme: ThemeFor(dark),
		dark:  dark,
	}
}

// RunChecklist runs the checklist until the user quits.
func RunChecklist(list *todo.Checklist, dark bool) error {
	_, err := tea.NewProgram(NewChecklistModel(list, dark)).Run()
	return err
}

func (m ChecklistModel) Init() tea.Cmd {
	return nil
}

func (m ChecklistModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Down):
		m.cursor = clampCursor(m.cursor+1, m.list.Len())
	case key.Matches(keyMsg, m.keys.Up):
		m.cursor = clampCursor(m.cursor-1, m.list.Len())
	case key.Matches(keyMsg, m.keys.Toggle):
		m.list.ToggleAt(m.cursor)
	case key.Matches(keyMsg, m.keys.Theme):
		m.dark = !m.dark
		m.theme = ThemeFor(m.dark)
	}
	return m, nil
}

func (m ChecklistModel) View() string {
	t := m.theme
	var sb strings.Builder

	sb.WriteString(t.title().Render(m.list.Header()) + "\n\n")
	for i, it := range m.list.Items() {
		box := "[ ]"
		if it.Purchased {
			box = "[x]"
		}
		line := box + " " + it.Name
		if i == m.cursor {
			line = t.selected().Render(line)
		}
		sb.WriteString("  " + line + "\n")
	}

	help := []key.Binding{m.keys.Toggle, m.keys.Theme, m.keys.Quit}
	parts := make([]string, len(help))
	for i, b := range help {
		parts[i] = b.Help().Key + " " + b.Help().Desc
	}
	sb.WriteString("\n" + t.faint().Render(strings.Join(parts, " • ")) + "\n")
	return sb.String()
}
