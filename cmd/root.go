package cmd

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/abhisek/yakustat/internal/config"
	"github.com/abhisek/yakustat/internal/logging"
	"github.com/abhisek/yakustat/internal/store"
	"github.com/abhisek/yakustat/internal/variant"
)

var (
	cfg    config.Config
	logger = log.Default()
)

var rootCmd = &cobra.Command{
	Use:   "yakustat",
	Short: "Mahjong hand decomposition and scoring statistics",
	Long: "yakustat decomposes every hand of a winning-hand corpus into pair and melds,\n" +
		"classifies each decomposition against a scoring table and reports how often\n" +
		"each hand category occurs and what it scores on average.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		envFile, _ := cmd.Flags().GetString("env-file")
		var err error
		if envFile != "" {
			cfg, err = config.Load(envFile)
		} else {
			cfg, err = config.Load()
		}
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("log-level") {
			cfg.LogLevel, _ = cmd.Flags().GetString("log-level")
		}
		if cmd.Flags().Changed("variant") {
			cfg.Variant, _ = cmd.Flags().GetString("variant")
		}
		logger = logging.New(os.Stderr, cfg.LogLevel)
		return nil
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides YAKUSTAT_DB env var)")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().String("variant", "four", "Rule family: four or three")
	rootCmd.PersistentFlags().String("env-file", "", "Load settings from this dotenv file instead of ./.env")

	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(classifyCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then YAKUSTAT_DB, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg.DB != "" {
		return cfg.DB, store.EnsureDir(cfg.DB)
	}
	return store.DefaultDBPath()
}

// openStore opens the run database chosen by resolveDBPath.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, err
	}
	logger.Debug("opening database", "path", dbPath)
	return store.Open(dbPath)
}

func currentVariant() (variant.Variant, error) {
	return variant.Lookup(cfg.Variant)
}
