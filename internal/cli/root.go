// Package cli implements the moodlog CLI commands.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nazma5979/moodlog/internal/analytics"
	"github.com/nazma5979/moodlog/internal/config"
	"github.com/nazma5979/moodlog/internal/store"
	"github.com/nazma5979/moodlog/internal/taxonomy"
)

var (
	dbPath     string
	configPath string
	formatFlag string
	verbose    bool

	logger = zap.NewNop()
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "moodlog",
	Short: "Local mood journal with pattern insights",
	Long:  "A personal mood journal. Structured check-ins in, statistical insights out. SQLite-backed, single binary.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			cfg := zap.NewDevelopmentConfig()
			if l, err := cfg.Build(); err == nil {
				logger = l
			}
		}
	},
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&dbPath, "db", "d", "", "Database path (default: MOODLOG_DB_PATH or config db_path)")
	RootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config path (default: ~/.moodlog/config.yaml)")
	RootCmd.PersistentFlags().StringVarP(&formatFlag, "format", "f", "text", "Output format: json or text")
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Debug logging to stderr")
}

func loadConfig() *config.Config {
	cfg, err := config.Load(configPath)
	if err != nil {
		exitErr("load config", err)
	}
	if dbPath != "" {
		cfg.DBPath = dbPath
	}
	return cfg
}

func openStore(cfg *config.Config) *store.SQLiteStore {
	s, err := store.NewSQLiteStore(cfg.DBPath)
	if err != nil {
		exitErr("open store", err)
	}
	logger.Debug("store opened", zap.String("db", cfg.DBPath))
	return s
}

func newEngine() *analytics.Engine {
	return analytics.New(taxonomy.Default())
}

func jsonOut() bool {
	return formatFlag == "json"
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}
