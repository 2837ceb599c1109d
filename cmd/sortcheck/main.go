package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/iamNilotpal/sortcheck/config"
	errs "github.com/iamNilotpal/sortcheck/pkg/errors"
	"github.com/iamNilotpal/sortcheck/pkg/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// errRejected makes the process exit with status 1 after a false verdict.
var errRejected = errors.New("output rejected")

var (
	// Global flags
	configPath string
	logLevel   string
	jsonOutput bool

	cfg *config.Config
	log *zap.SugaredLogger
)

var rootCmd = &cobra.Command{
	Use:   "sortcheck",
	Short: "Probabilistic checker for sort and permutation output",
	Long: `sortcheck verifies that the output of a sort is a permutation of its input
and is in order, using per-shard hash fingerprints instead of storing or
re-sorting the data.

A correct output is never rejected. An incorrect one is accepted only on a
hash collision.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg = config.DefaultConfig()
		if configPath != "" {
			loaded, err := config.LoadConfig(configPath)
			if err != nil {
				return err
			}
			cfg = loaded
		}

		if cmd.Flags().Changed("log-level") {
			cfg.Log.Level = logLevel
		}

		var err error
		log, err = logger.NewWithLevel("sortcheck", cfg.Log.Level)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if log != nil {
			_ = log.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to a YAML config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "print the report as JSON")

	rootCmd.AddCommand(checkCmd, snapshotCmd, mergeCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errRejected) {
			if ve := errs.AsValidationError(err); ve != nil {
				fmt.Fprintf(os.Stderr, "[%v] invalid %s (%v): %v\n", ve.Category(), ve.Field, ve.Value, ve.Err)
			} else {
				fmt.Fprintln(os.Stderr, "error:", err)
			}
		}
		os.Exit(1)
	}
}
