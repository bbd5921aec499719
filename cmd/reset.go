package cmd

import (
	"github.com/spf13/cobra"

	"github.com/pomobar/pomobar/internal/model"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Return the timer to idle and clear the pomodoro count",
	Args:  cobra.NoArgs,
	RunE:  runReset,
}

func runReset(cmd *cobra.Command, args []string) error {
	return runTimer(model.CmdReset)
}
