package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/yakustat/internal/ui/theme"
	"github.com/abhisek/yakustat/internal/yaku"
)

var classifyCmd = &cobra.Command{
	Use:   "classify <tiles>",
	Short: "Show every decomposition of one hand and its categories",
	Long: "classify takes one hand written in corpus tile codes (spaces are ignored)\n" +
		"and prints each decomposition with the categories it scores.",
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := currentVariant()
		if err != nil {
			return err
		}
		record := []byte(strings.Join(strings.Fields(strings.Join(args, " ")), ""))

		opts := yaku.Options{Reveal: cfg.Reveal, SeatWind: cfg.SeatWindCode()}
		if cmd.Flags().Changed("reveal") {
			opts.Reveal, _ = cmd.Flags().GetBool("reveal")
		}
		if sw, _ := cmd.Flags().GetString("seat-wind"); sw != "" {
			opts.SeatWind = sw[0]
		}

		explained, err := v.Explain(record, opts)
		if err != nil {
			return fmt.Errorf("classify %q: %w", record, err)
		}
		if len(explained) == 0 {
			fmt.Println(theme.Warn.Render("No pair-and-melds decomposition."))
			return nil
		}

		c := v.Catalogue()
		fmt.Println(theme.Title.Render(fmt.Sprintf("%s · %d decompositions", v.Name(), len(explained))))
		for _, e := range explained {
			fmt.Printf("%s\n", theme.Highlight.Render(e.Set))
			fmt.Printf("  %-12s %s\n", "categories", e.List.Format(c))
			fmt.Printf("  %-12s %d\n", "score", e.Score)
			fmt.Printf("  %-12s %d\n", "weight", e.Weight)
		}
		return nil
	},
}

func init() {
	classifyCmd.Flags().Bool("reveal", false, "Expand revealed, concealed and kong alternatives")
	classifyCmd.Flags().String("seat-wind", "", "Corpus code of the seat wind tile")
}
