// ABOUTME: Light and dark style sets for the interactive views.
// ABOUTME: Toggling the theme is presentational and never touches board state.

package tui

import "github.com/charmbracelet/lipgloss"

// Theme is one named palette plus the styles derived from it.
type Theme struct {
	Name       string
	Foreground lipgloss.Color
	Background lipgloss.Color
	Accent     lipgloss.Color
	Faint      lipgloss.Color
	Favorite   lipgloss.Color
}

var (
	LightTheme = Theme{
		Name:       "light",
		Foreground: lipgloss.Color("#000000"),
		Background: lipgloss.Color("#eeeeee"),
		Accent:     lipgloss.Color("25"),
		Faint:      lipgloss.Color("245"),
		Favorite:   lipgloss.Color("160"),
	}
	DarkTheme = Theme{
		Name:       "dark",
		Foreground: lipgloss.Color("#ffffff"),
		Background: lipgloss.Color("#222222"),
		Accent:     lipgloss.Color("117"),
		Faint:      lipgloss.Color("240"),
		Favorite:   lipgloss.Color("203"),
	}
)

// ThemeFor picks the dark or light theme.
func ThemeFor(dark bool) Theme {
	if dark {
		return DarkTheme
	}
	return LightTheme
}

func (t Theme) base() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Foreground).Background(t.Background)
}

func (t Theme) title() lipgloss.Style {
	return t.base().Bold(true)
}

func (t Theme) faint() lipgloss.Style {
	return t.base().Foreground(t.Faint)
}

func (t Theme) accent() lipgloss.Style {
	return t.base().Foreground(t.Accent)
}

func (t Theme) favorite() lipgloss.Style {
	return t.base().Foreground(t.Favorite)
}

// selected inverts the palette for the row under the cursor.
func (t Theme) selected() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Background).Background(t.Foreground).Bold(true)
}

// button renders controls with the palette swapped.
func (t Theme) button() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Background).Background(t.Foreground).Padding(0, 1)
}
