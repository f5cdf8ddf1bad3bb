package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/yakustat/internal/report"
	"github.com/abhisek/yakustat/internal/store"
	"github.com/abhisek/yakustat/internal/variant"
)

var reportCmd = &cobra.Command{
	Use:   "report [run-id]",
	Short: "Show the category table of a stored run (default: latest)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
		defer cancel()

		repo := s.RunRepo()
		var run *store.Run
		if len(args) == 1 {
			run, err = repo.Get(ctx, args[0])
		} else {
			run, err = repo.Latest(ctx)
		}
		if err != nil {
			return fmt.Errorf("load run: %w", err)
		}
		if run == nil {
			fmt.Println("No runs recorded yet. Run 'yakustat analyze <corpus>' first.")
			return nil
		}

		v, err := variant.Lookup(run.Variant)
		if err != nil {
			return err
		}
		if err := printRun(cmd, run); err != nil {
			return err
		}
		return writeJSON(cmd, run, report.Lines(run.Summary, v.Catalogue()))
	},
}

func init() {
	reportCmd.Flags().String("json", "", "Write the report as JSON to this path (- for stdout)")
	reportCmd.Flags().Bool("local", false, "Show traditional category names")
	reportCmd.Flags().Bool("all", false, "Include categories no hand reached")
}

// printRun renders the category table of run to stdout, unless the JSON
// document is going there instead.
func printRun(cmd *cobra.Command, run *store.Run) error {
	if dest, _ := cmd.Flags().GetString("json"); dest == "-" {
		return nil
	}
	v, err := variant.Lookup(run.Variant)
	if err != nil {
		return err
	}
	local, _ := cmd.Flags().GetBool("local")
	all, _ := cmd.Flags().GetBool("all")

	title := fmt.Sprintf("%s · %s", run.Variant, run.Corpus)
	if run.Reveal {
		title += " · reveal"
	}
	if run.ID != "" {
		title += fmt.Sprintf(" · run #%d", run.Sequence)
	}
	return report.RenderTable(os.Stdout, report.Lines(run.Summary, v.Catalogue()), run.Summary, report.TableOptions{
		Title:     title,
		Local:     local,
		HideEmpty: !all,
	})
}

// writeJSON honours --json. An empty flag writes nothing.
func writeJSON(cmd *cobra.Command, run *store.Run, lines []report.Line) error {
	dest, _ := cmd.Flags().GetString("json")
	if dest == "" {
		return nil
	}
	doc := report.NewDocument(run.Variant, run.Corpus, run.Reveal, run.StartedAt, run.Duration, run.Summary, lines)
	doc.RunID = run.ID

	var w io.Writer = os.Stdout
	if dest != "-" {
		f, err := os.Create(dest)
		if err != nil {
			return fmt.Errorf("create %s: %w", dest, err)
		}
		defer f.Close()
		w = f
	}
	if err := report.WriteJSON(w, doc); err != nil {
		return err
	}
	if dest != "-" {
		logger.Info("report written", "path", dest)
	}
	return nil
}
