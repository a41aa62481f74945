// ABOUTME: Export command for snapshotting the starting board.
// ABOUTME: Supports JSON and markdown export formats.

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/harper/stickies/internal/export"
	"github.com/harper/stickies/internal/ui"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export notes",
	Long:  `Export the starting board to JSON or markdown. Markdown with --output writes one file per note.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		outputPath, _ := cmd.Flags().GetString("output")

		out := cmd.OutOrStdout()
		data := export.Build(notesBoard.Session(), notesBoard.Snapshot(), time.Now())

		switch format {
		case "json":
			if outputPath == "" || outputPath == "-" {
				return export.WriteJSON(out, data)
			}
			f, err := os.Create(outputPath) //nolint:gosec // User-specified output path
			if err != nil {
				return fmt.Errorf("failed to create output: %w", err)
			}
			if err := export.WriteJSON(f, data); err != nil {
				_ = f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
		case "md":
			if outputPath == "" || outputPath == "-" {
				return export.WriteMarkdown(out, data)
			}
			if _, err := export.WriteMarkdownDir(outputPath, data); err != nil {
				return fmt.Errorf("failed to export markdown: %w", err)
			}
		default:
			return fmt.Errorf("unknown format: %s", format)
		}

		fmt.Fprintln(out, ui.Success(fmt.Sprintf("Exported %d notes to %s", len(data.Notes), outputPath)))
		return nil
	},
}

func init() {
	exportCmd.Flags().StringP("format", "f", "json", "export format (json|md)")
	exportCmd.Flags().StringP("output", "o", "", "output path")
	rootCmd.AddCommand(exportCmd)
}
