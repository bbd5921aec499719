package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// version is stamped at build time via -ldflags "-X ...cmd.version=v1.2.3".
var version = "dev"

var (
	flagConfig  string
	flagFormat  string
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:   "pomobar",
	Short: "Pomodoro timer for Waybar",
	Long: `pomobar is a single-binary pomodoro timer driven entirely by the status
bar that polls it. Each invocation loads the persisted timer state, advances
it by wall-clock time, applies at most one command, persists the result and
prints a single status record.

Invoked without a command it reports status, which is what a Waybar custom
module should call on its polling interval.`,
	Version:          version,
	Args:             cobra.NoArgs,
	PersistentPreRun: setup,
	RunE:             runStatus,
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "",
		"Config file (default: pomobar/config.yaml in the user config dir)")
	rootCmd.PersistentFlags().StringVar(&flagFormat, "format", "",
		"Output format: waybar or plain (default: plain on a terminal, waybar otherwise)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false,
		"Enable debug logging on stderr")

	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(toggleCmd)
	rootCmd.AddCommand(skipCmd)
	rootCmd.AddCommand(stopCmd)
	rootCmd.AddCommand(resetCmd)
}

// setup wires logging and optional dotenv overrides before any command runs.
// All logs go to stderr; stdout carries nothing but the status record.
func setup(cmd *cobra.Command, args []string) {
	if dir, err := os.UserConfigDir(); err == nil {
		_ = godotenv.Load(filepath.Join(dir, "pomobar", "pomobar.env"))
	}

	level := slog.LevelInfo
	if debugActive() {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	if level == slog.LevelDebug {
		// One id per invocation so interleaved poller logs can be told apart.
		logger = logger.With("run", uuid.NewString())
	}
	slog.SetDefault(logger)
}

// debugActive reports whether this invocation runs in debug mode, which also
// suppresses desktop notifications.
func debugActive() bool {
	if flagVerbose {
		return true
	}
	switch os.Getenv("POMOBAR_DEBUG") {
	case "1", "true", "True", "TRUE":
		return true
	}
	return false
}
