package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/yakustat/internal/corpus"
)

var generateCmd = &cobra.Command{
	Use:   "generate <out>",
	Short: "Write every winning hand of the selected shapes as a corpus file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := currentVariant()
		if err != nil {
			return err
		}
		raw, _ := cmd.Flags().GetString("shapes")
		shapes, err := corpus.ParseShapes(raw)
		if err != nil {
			return err
		}

		started := time.Now()
		records, err := v.Generate(shapes)
		if err != nil {
			return err
		}
		if err := corpus.WriteFile(args[0], records); err != nil {
			return err
		}
		logger.Info("corpus written",
			"path", args[0],
			"variant", v.Name(),
			"records", len(records),
			"elapsed", time.Since(started).Round(time.Millisecond),
		)
		return nil
	},
}

func init() {
	names := make([]string, len(corpus.Shapes))
	for i, sh := range corpus.Shapes {
		names[i] = string(sh)
	}
	generateCmd.Flags().String("shapes", string(corpus.Grouped),
		fmt.Sprintf("Comma separated shapes to emit (%s)", strings.Join(names, ", ")))
}
