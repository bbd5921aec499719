package cmd

import (
	"github.com/spf13/cobra"

	"github.com/pomobar/pomobar/internal/model"
)

var toggleCmd = &cobra.Command{
	Use:   "toggle",
	Short: "Start the timer from idle, or pause/resume the running phase",
	Args:  cobra.NoArgs,
	RunE:  runToggle,
}

func runToggle(cmd *cobra.Command, args []string) error {
	return runTimer(model.CmdToggle)
}
