// ABOUTME: Todo command for the grocery checklist.
// ABOUTME: Runs interactively, or prints the list with --print.

package main

import (
	"fmt"

	"github.com/harper/stickies/internal/todo"
	"github.com/harper/stickies/internal/tui"
	"github.com/harper/stickies/internal/ui"
	"github.com/spf13/cobra"
)

var todoCmd = &cobra.Command{
	Use:   "todo",
	Short: "Open the grocery checklist",
	Long:  `Tick off groceries. The header counts how many items are bought.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		printFlag, _ := cmd.Flags().GetBool("print")
		toggles, _ := cmd.Flags().GetStringSlice("toggle")
		list := todo.New(todo.DefaultItems())

		for _, name := range toggles {
			if !list.Toggle(name) {
				return fmt.Errorf("no item named %q", name)
			}
		}

		if printFlag {
			fmt.Fprint(cmd.OutOrStdout(), ui.FormatChecklist(list.Header(), list.Items()))
			return nil
		}
		return tui.RunChecklist(list, cfg.Dark())
	},
}

func init() {
	todoCmd.Flags().Bool("print", false, "print the list and exit")
	todoCmd.Flags().StringSlice("toggle", nil, "flip these items before showing the list")
	rootCmd.AddCommand(todoCmd)
}
