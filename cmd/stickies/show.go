// ABOUTME: Show command for displaying a single note.
// ABOUTME: Renders markdown content with glamour.

package main

import (
	"fmt"
	"strconv"

	"github.com/harper/stickies/internal/ui"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a note",
	Long:  `Display a note from the starting board with rendered markdown.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid note id %q: %w", args[0], err)
		}

		note, ok := notesBoard.Find(id)
		if !ok {
			return fmt.Errorf("note %d not found", id)
		}

		out := cmd.OutOrStdout()
		fmt.Fprint(out, ui.FormatNoteHeader(note, notesBoard.Snapshot().IsFavorite(note.Title)))

		content, _ := ui.FormatNoteContent(note.Content)
		fmt.Fprint(out, content)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
