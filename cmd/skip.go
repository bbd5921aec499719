package cmd

import (
	"github.com/spf13/cobra"

	"github.com/pomobar/pomobar/internal/model"
)

var skipCmd = &cobra.Command{
	Use:   "skip",
	Short: "Skip ahead to the next phase immediately",
	Args:  cobra.NoArgs,
	RunE:  runSkip,
}

func runSkip(cmd *cobra.Command, args []string) error {
	return runTimer(model.CmdSkip)
}
