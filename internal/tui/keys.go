// ABOUTME: Key bindings for the board and checklist views.
// ABOUTME: Vim-style navigation alongside arrow keys.

package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings of the interactive views.
type KeyMap struct {
	Up   key.Binding
	Down key.Binding

	// Board actions on the note under the cursor.
	New      key.Binding
	Edit     key.Binding
	Favorite key.Binding
	Delete   key.Binding

	// Form navigation. Moving focus commits the field being left.
	NextField key.Binding
	PrevField key.Binding
	Submit    key.Binding
	Cancel    key.Binding

	// Label selector (active when the label field has focus).
	LabelNext key.Binding

	// Checklist.
	Toggle key.Binding

	Theme key.Binding
	Click key.Binding
	Quit  key.Binding
}

// DefaultKeyMap is the built-in key binding set.
var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	New: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "new note"),
	),
	Edit: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "edit"),
	),
	Favorite: key.NewBinding(
		key.WithKeys("f"),
		key.WithHelp("f", "favorite"),
	),
	Delete: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "delete"),
	),
	NextField: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next field"),
	),
	PrevField: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift+tab", "previous field"),
	),
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "save"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "close"),
	),
	LabelNext: key.NewBinding(
		key.WithKeys(" ", "right"),
		key.WithHelp("space", "change label"),
	),
	Toggle: key.NewBinding(
		key.WithKeys(" ", "x"),
		key.WithHelp("space", "bought"),
	),
	Theme: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "toggle theme"),
	),
	Click: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "click"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
