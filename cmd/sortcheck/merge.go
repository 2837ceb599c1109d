package main

import (
	"fmt"

	"github.com/iamNilotpal/sortcheck/internal/adapters/encoding"
	"github.com/iamNilotpal/sortcheck/internal/core/services/checker"
	"github.com/iamNilotpal/sortcheck/internal/core/services/snapshot"
	"github.com/spf13/cobra"
)

var (
	mergeDir             string
	mergeShards          int
	mergeClear           bool
	mergePermutationOnly bool
)

var mergeCmd = &cobra.Command{
	Use:   "merge",
	Short: "Aggregate stored shard snapshots into one verdict",
	Long: `Loads every snapshot in the snapshot directory, orders them by shard rank
and reports whether the shards together hold the input in sorted order.
Shards must be numbered 0..n-1 without gaps; pass --shards to also catch
missing trailing shards.

Example:
  sortcheck merge --dir ./snapshots --clear`,
	RunE: runMerge,
}

func init() {
	mergeCmd.Flags().StringVar(&mergeDir, "dir", "", "snapshot directory (overrides config)")
	mergeCmd.Flags().IntVar(&mergeShards, "shards", 0, "number of shards expected (0 = highest shard found + 1)")
	mergeCmd.Flags().BoolVar(&mergeClear, "clear", false, "delete the snapshots after merging")
	mergeCmd.Flags().BoolVar(&mergePermutationOnly, "permutation-only", false, "only check the permutation")
}

func runMerge(cmd *cobra.Command, args []string) error {
	opts := cfg.SnapshotOptions()
	if mergeDir != "" {
		opts.Directory = mergeDir
	}

	store, err := snapshot.NewStore(opts, log)
	if err != nil {
		return err
	}
	defer store.Close()

	snaps, err := store.LoadAll(cmd.Context())
	if err != nil {
		return err
	}
	if len(snaps) == 0 {
		return fmt.Errorf("no snapshots found in %s", store.Directory())
	}
	if err := snapshot.CheckComplete(snaps, mergeShards); err != nil {
		return err
	}

	checkers := make([]*checker.Checker[int64], len(snaps))
	for i, snap := range snaps {
		c, err := checker.New[int64](encoding.Integer[int64](), cfg.CheckerOptions())
		if err != nil {
			return err
		}
		if err := c.Restore(snap); err != nil {
			return fmt.Errorf("shard %d: %w", snap.Shard, err)
		}
		checkers[i] = c
	}

	report := checker.Inspect(checkers, less)
	log.Infow("snapshots merged", "shards", len(checkers), "permuted", report.Permuted, "sorted", report.Sorted)

	if err := printReport(cmd.OutOrStdout(), report, mergePermutationOnly); err != nil {
		return err
	}

	if mergeClear {
		return store.Clear()
	}
	return nil
}
