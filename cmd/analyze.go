package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/yakustat/internal/corpus"
	"github.com/abhisek/yakustat/internal/report"
	"github.com/abhisek/yakustat/internal/stats"
	"github.com/abhisek/yakustat/internal/store"
	"github.com/abhisek/yakustat/internal/yaku"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <corpus>",
	Short: "Decompose and classify every hand in a corpus file",
	Args:  cobra.ExactArgs(1),
	RunE:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().Int("workers", 0, "Number of worker goroutines (0 = one per CPU)")
	analyzeCmd.Flags().Bool("reveal", false, "Expand revealed, concealed and kong alternatives")
	analyzeCmd.Flags().String("seat-wind", "", "Corpus code of the seat wind tile")
	analyzeCmd.Flags().String("json", "", "Also write the report as JSON to this path (- for stdout)")
	analyzeCmd.Flags().Bool("no-save", false, "Do not record the run in the database")
	analyzeCmd.Flags().Bool("local", false, "Show traditional category names")
	analyzeCmd.Flags().Bool("all", false, "Include categories no hand reached")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	v, err := currentVariant()
	if err != nil {
		return err
	}

	opts := yaku.Options{Reveal: cfg.Reveal, SeatWind: cfg.SeatWindCode()}
	if cmd.Flags().Changed("reveal") {
		opts.Reveal, _ = cmd.Flags().GetBool("reveal")
	}
	if cmd.Flags().Changed("seat-wind") {
		sw, _ := cmd.Flags().GetString("seat-wind")
		if len(sw) != 1 {
			return fmt.Errorf("--seat-wind must be a single tile code, got %q", sw)
		}
		opts.SeatWind = sw[0]
	}
	workers := cfg.Workers
	if cmd.Flags().Changed("workers") {
		workers, _ = cmd.Flags().GetInt("workers")
	}

	// Fail on a bad seat wind before reading the corpus.
	if _, err := v.NewAnalyzer(opts); err != nil {
		return err
	}

	path := args[0]
	c, err := corpus.Open(path, v.RecordSize())
	if err != nil {
		return err
	}
	logger.Info("corpus loaded", "path", path, "records", c.Len(), "variant", v.Name())

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	runner := &stats.Runner{
		NewAnalyzer:   func() (stats.Analyzer, error) { return v.NewAnalyzer(opts) },
		Workers:       workers,
		Logger:        logger,
		ProgressEvery: max(c.Len()/20, 1000),
		Progress: func(done, total int) {
			logger.Info("progress", "done", done, "total", total)
		},
	}

	started := time.Now()
	tally, err := runner.Run(ctx, c)
	if err != nil {
		return fmt.Errorf("analyze %s: %w", path, err)
	}
	elapsed := time.Since(started)

	summary := stats.Summarize(tally, v.Catalogue())
	lines := report.Lines(summary, v.Catalogue())
	logger.Info("analysis finished",
		"records", summary.Records,
		"undecomposed", summary.Undecomposed,
		"patterns", summary.Patterns,
		"elapsed", elapsed.Round(time.Millisecond),
	)

	run := &store.Run{
		Variant:   v.Name(),
		Corpus:    filepath.Base(path),
		Reveal:    opts.Reveal,
		Workers:   workers,
		StartedAt: started,
		Duration:  elapsed,
		Summary:   summary,
	}
	if noSave, _ := cmd.Flags().GetBool("no-save"); !noSave {
		if err := saveRun(cmd, run); err != nil {
			return err
		}
	}

	if err := printRun(cmd, run); err != nil {
		return err
	}
	return writeJSON(cmd, run, lines)
}

func saveRun(cmd *cobra.Command, run *store.Run) error {
	s, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
	defer cancel()
	if err := s.RunRepo().Save(ctx, run); err != nil {
		return fmt.Errorf("save run: %w", err)
	}
	logger.Info("run saved", "id", run.ID, "sequence", run.Sequence)
	return nil
}
