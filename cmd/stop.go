package cmd

import (
	"github.com/spf13/cobra"

	"github.com/pomobar/pomobar/internal/model"
)

var stopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Return the timer to idle, keeping the pomodoro count",
	Args:  cobra.NoArgs,
	RunE:  runStop,
}

func runStop(cmd *cobra.Command, args []string) error {
	return runTimer(model.CmdStop)
}
