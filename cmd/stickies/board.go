// ABOUTME: Board command for the interactive sticky-notes view.
// ABOUTME: Same as running stickies with no subcommand.

package main

import (
	"github.com/harper/stickies/internal/tui"
	"github.com/spf13/cobra"
)

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Open the interactive board",
	Long: `Open the sticky-notes board. Press n to compose a note, e to edit the note
under the cursor (edits are saved when a field loses focus), f to star, d to
delete and t to switch between the light and dark theme.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dark, _ := cmd.Flags().GetBool("dark")
		return tui.RunBoard(notesBoard, dark || cfg.Dark())
	},
}

func init() {
	boardCmd.Flags().Bool("dark", false, "start with the dark theme")
	rootCmd.AddCommand(boardCmd)
}
