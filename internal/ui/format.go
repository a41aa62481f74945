// ABOUTME: Terminal formatting for stickies output.
// ABOUTME: Uses glamour for markdown and fatih/color for styling.

package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/fatih/color"
	"github.com/harper/stickies/internal/models"
)

var (
	faint = color.New(color.Faint).SprintFunc()
	bold  = color.New(color.Bold).SprintFunc()
	cyan  = color.New(color.FgCyan).SprintFunc()
	red   = color.New(color.FgRed).SprintFunc()
)

const (
	heartFull  = "♥"
	heartEmpty = "♡"
)

// Heart returns the favorite marker for a note.
func Heart(favorite bool) string {
	if favorite {
		return heartFull
	}
	return heartEmpty
}

func FormatNoteListItem(note models.Note, favorite bool, selected bool) string {
	var sb strings.Builder

	marker := " "
	if selected {
		marker = ">"
	}
	heart := faint(Heart(favorite))
	if favorite {
		heart = red(Heart(favorite))
	}

	// Id, favorite marker and title
	sb.WriteString(fmt.Sprintf("%s %s %s  %s\n", marker, faint(fmt.Sprintf("#%-3d", note.ID)), heart, bold(note.Title)))

	sb.WriteString(fmt.Sprintf("         %s %s\n", faint("Label:"), cyan(note.Label.Display())))

	for _, line := range strings.Split(strings.TrimRight(note.Content, "\n"), "\n") {
		sb.WriteString(fmt.Sprintf("         %s\n", line))
	}

	return sb.String()
}

func FormatNoteContent(content string) (string, error) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		// Fallback to raw content if renderer fails
		return content, nil //nolint:nilerr // Intentional fallback
	}

	out, err := renderer.Render(content)
	if err != nil {
		// Fallback to raw content if rendering fails
		return content, nil //nolint:nilerr // Intentional fallback
	}
	return out, nil
}

func FormatNoteHeader(note models.Note, favorite bool) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%s %s\n", bold(note.Title), Heart(favorite)))
	sb.WriteString(fmt.Sprintf("%s %s\n", faint("ID:"), faint(fmt.Sprint(note.ID))))
	sb.WriteString(fmt.Sprintf("%s %s\n", faint("Label:"), cyan(note.Label.Display())))

	sb.WriteString(Separator())
	return sb.String()
}

// FormatFavorites renders the favorites list shown under the board.
func FormatFavorites(titles []string) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("\n%s\n", bold("List of favorites:")))
	if len(titles) == 0 {
		sb.WriteString(faint("  (none)") + "\n")
		return sb.String()
	}
	for _, t := range titles {
		sb.WriteString(fmt.Sprintf("  %s %s\n", red(heartFull), t))
	}

	return sb.String()
}

func FormatChecklist(header string, items []models.Item) string {
	var sb strings.Builder

	sb.WriteString(bold(header) + "\n")
	for _, it := range items {
		box := "[ ]"
		if it.Purchased {
			box = "[x]"
		}
		sb.WriteString(fmt.Sprintf("  %s %s\n", cyan(box), it.Name))
	}

	return sb.String()
}

func Separator() string {
	return faint(strings.Repeat("─", 50)) + "\n"
}

func Success(msg string) string {
	return color.New(color.FgGreen).Sprint("✓ ") + msg
}

func Error(msg string) string {
	return color.New(color.FgRed).Sprint("✗ ") + msg
}
