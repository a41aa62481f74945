// ABOUTME: Config command for showing and changing settings.
// ABOUTME: Writes the JSON config file under the XDG config directory.

package main

import (
	"fmt"

	"github.com/harper/stickies/internal/config"
	"github.com/harper/stickies/internal/ui"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change settings",
	Long: `Show the current settings, write a default config file with --init,
or change a setting with --theme, --log-level or --seed-path.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		initFlag, _ := cmd.Flags().GetBool("init")
		force, _ := cmd.Flags().GetBool("force")

		if initFlag {
			if config.Exists(configPath) && !force {
				return fmt.Errorf("config already exists at %s (use --force to overwrite)", configPath)
			}
			if err := config.Save(configPath, config.DefaultConfig()); err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}
			fmt.Fprintln(out, ui.Success("Wrote "+configPath))
			return nil
		}

		changed := false
		if cmd.Flags().Changed("theme") {
			cfg.Theme, _ = cmd.Flags().GetString("theme")
			changed = true
		}
		if cmd.Flags().Changed("log-level") {
			cfg.LogLevel, _ = cmd.Flags().GetString("log-level")
			changed = true
		}
		if cmd.Flags().Changed("seed-path") {
			cfg.SeedPath, _ = cmd.Flags().GetString("seed-path")
			changed = true
		}

		if changed {
			if err := cfg.Validate(); err != nil {
				return err
			}
			if err := config.Save(configPath, cfg); err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}
			fmt.Fprintln(out, ui.Success("Saved "+configPath))
		}

		seed := cfg.SeedPath
		if seed == "" {
			seed = "(built-in)"
		}
		fmt.Fprintf(out, "config:    %s\n", configPath)
		fmt.Fprintf(out, "theme:     %s\n", cfg.Theme)
		fmt.Fprintf(out, "log level: %s\n", cfg.LogLevel)
		fmt.Fprintf(out, "seed:      %s\n", seed)
		return nil
	},
}

func init() {
	configCmd.Flags().Bool("init", false, "write a default config file")
	configCmd.Flags().Bool("force", false, "overwrite an existing config with --init")
	configCmd.Flags().String("theme", "", "starting theme (light|dark)")
	configCmd.Flags().String("log-level", "", "log level (debug|info|warn|error)")
	configCmd.Flags().String("seed-path", "", "YAML file of notes to start with")
	rootCmd.AddCommand(configCmd)
}
