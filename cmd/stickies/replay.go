// ABOUTME: Replay command for applying a recorded event script.
// ABOUTME: Prints the resulting board, or an export of it with --format.

package main

import (
	"fmt"
	"io"
	"time"

	"github.com/harper/stickies/internal/board"
	"github.com/harper/stickies/internal/export"
	"github.com/harper/stickies/internal/ui"
	"github.com/spf13/cobra"
)

var replayCmd = &cobra.Command{
	Use:   "replay <events.yaml>",
	Short: "Replay an event script",
	Long: `Apply a YAML list of board events (draft, create, delete, select, blur,
label, favorite) to the starting board and print the result.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")

		events, err := board.LoadEvents(args[0])
		if err != nil {
			return fmt.Errorf("failed to load events: %w", err)
		}

		if err := notesBoard.Replay(events); err != nil {
			return fmt.Errorf("failed to replay events: %w", err)
		}
		logger.Debug("replay finished", "events", len(events))

		out := cmd.OutOrStdout()
		switch format {
		case "":
			printBoard(out, notesBoard.Snapshot())
			fmt.Fprintln(out, ui.Success(fmt.Sprintf("Replayed %d events", len(events))))
			return nil
		case "json":
			return export.WriteJSON(out, export.Build(notesBoard.Session(), notesBoard.Snapshot(), time.Now()))
		case "md":
			return export.WriteMarkdown(out, export.Build(notesBoard.Session(), notesBoard.Snapshot(), time.Now()))
		default:
			return fmt.Errorf("unknown format: %s", format)
		}
	},
}

func printBoard(out io.Writer, s board.State) {
	if len(s.Notes) == 0 {
		fmt.Fprintln(out, "No notes.")
	}
	for _, n := range s.Notes {
		fmt.Fprint(out, ui.FormatNoteListItem(n, s.IsFavorite(n.Title), s.IsSelected(n.ID)))
	}
	fmt.Fprint(out, ui.FormatFavorites(s.Favorites))
}

func init() {
	replayCmd.Flags().StringP("format", "f", "", "print an export instead (json|md)")
	rootCmd.AddCommand(replayCmd)
}
