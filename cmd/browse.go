package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/yakustat/internal/browse"
)

var browseCmd = &cobra.Command{
	Use:   "browse [run-id]",
	Short: "Browse stored runs in an interactive terminal UI",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		var runID string
		if len(args) == 1 {
			runID = args[0]
		}
		return browse.Run(cmd.Context(), s.RunRepo(), runID)
	},
}
