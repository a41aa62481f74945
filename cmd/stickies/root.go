// ABOUTME: Root command wiring configuration, logging and the seeded board.
// ABOUTME: Subcommands share the board built in PersistentPreRunE.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/harper/stickies/internal/board"
	"github.com/harper/stickies/internal/config"
	"github.com/harper/stickies/internal/models"
	"github.com/harper/stickies/internal/tui"
	"github.com/spf13/cobra"
)

var (
	configPath string
	seedPath   string
	logFile    string
	emptyBoard bool
	verbose    bool

	cfg        *config.Config
	logger     *log.Logger
	notesBoard *board.Board
	logOutput  io.Closer
)

var rootCmd = &cobra.Command{
	Use:   "stickies",
	Short: "A sticky-notes board for the terminal",
	Long: `Stickies keeps a board of labeled sticky notes in memory for one session.
Create, edit, star and delete notes interactively, replay recorded sessions,
or expose the board to AI agents over MCP.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logger, err = newLogger()
		if err != nil {
			return err
		}

		notes, err := loadSeed()
		if err != nil {
			return fmt.Errorf("failed to load seed: %w", err)
		}
		notesBoard = board.New(board.WithNotes(notes), board.WithLogger(logger))
		logger.Debug("board ready", "notes", len(notes), "session", notesBoard.Session())
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if logOutput != nil {
			return logOutput.Close()
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return tui.RunBoard(notesBoard, cfg.Dark())
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func newLogger() (*log.Logger, error) {
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}
	if verbose {
		level = log.DebugLevel
	}

	var out io.Writer = os.Stderr
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600) //nolint:gosec // User-specified log path
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		out = f
		logOutput = f
	}

	return log.NewWithOptions(out, log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          "stickies",
	}), nil
}

func loadSeed() ([]models.Note, error) {
	if emptyBoard {
		return nil, nil
	}
	path := seedPath
	if path == "" {
		path = cfg.SeedPath
	}
	if path == "" {
		return board.DefaultSeed(), nil
	}
	return board.LoadSeed(path)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.Path(), "config file")
	rootCmd.PersistentFlags().StringVar(&seedPath, "seed", "", "YAML file of notes to start with")
	rootCmd.PersistentFlags().BoolVar(&emptyBoard, "empty", false, "start with an empty board")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "write logs to this file instead of stderr")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}
