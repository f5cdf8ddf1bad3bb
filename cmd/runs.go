package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List stored analysis runs, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
		defer cancel()

		runs, err := s.RunRepo().List(ctx, limit)
		if err != nil {
			return fmt.Errorf("list runs: %w", err)
		}
		if len(runs) == 0 {
			fmt.Println("No runs recorded yet.")
			return nil
		}

		fmt.Printf("%-5s %-8s %-20s %-6s %-7s %12s %10s  %s\n",
			"#", "ID", "Started", "Family", "Reveal", "Records", "Average", "Corpus")
		for _, r := range runs {
			reveal := "no"
			if r.Reveal {
				reveal = "yes"
			}
			fmt.Printf("%-5d %-8s %-20s %-6s %-7s %12d %10.4f  %s\n",
				r.Sequence,
				shortID(r.ID),
				r.StartedAt.Local().Format(time.DateTime),
				r.Variant,
				reveal,
				r.Summary.Records,
				r.Summary.Average(),
				r.Corpus,
			)
		}
		return nil
	},
}

func init() {
	runsCmd.Flags().Int("limit", 20, "Maximum number of runs to list")
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
