package commands

import (
	"context"
	"fmt"
	"os"

	"travel-scraper/config"
	"travel-scraper/utils"

	"github.com/spf13/cobra"
)

var (
	cfg    *config.Config
	logger *utils.Logger

	debug   bool
	csvOnly bool
)

var rootCmd = &cobra.Command{
	Use:          "travel-scraper",
	Short:        "Extracts activities, hotels and flights into CSV files and PostgreSQL.",
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cfg = config.Load()
		logger = utils.NewLogger(cfg.LogLevel)
		if debug {
			logger.SetDebug(true)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Print debug output, including every field that fell back to missing.")
	rootCmd.PersistentFlags().BoolVar(&csvOnly, "csv-only", false, "Only write CSV files, skip PostgreSQL.")
}

func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
