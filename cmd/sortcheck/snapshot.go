package main

import (
	"fmt"

	"github.com/iamNilotpal/sortcheck/internal/adapters/encoding"
	"github.com/iamNilotpal/sortcheck/internal/core/services/checker"
	"github.com/iamNilotpal/sortcheck/internal/core/services/snapshot"
	"github.com/spf13/cobra"
)

var (
	snapshotShard  uint32
	snapshotInput  string
	snapshotOutput string
	snapshotDir    string
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Fingerprint one shard and store its snapshot",
	Long: `Streams this shard's slice of the input (--input, any order) and its slice
of the sorted output (--output, in emission order) through a checker and
stores the resulting snapshot. Run once per shard, possibly on different
machines sharing the same config, then combine with "sortcheck merge".

Either file may be omitted when the shard has no elements of that phase, and
either may be zstd-compressed.

Example:
  sortcheck snapshot --shard 0 --input part-0.txt --output sorted-0.txt`,
	RunE: runSnapshot,
}

func init() {
	snapshotCmd.Flags().Uint32Var(&snapshotShard, "shard", 0, "rank of this shard in the sorted output")
	snapshotCmd.Flags().StringVarP(&snapshotInput, "input", "i", "", "this shard's input values")
	snapshotCmd.Flags().StringVarP(&snapshotOutput, "output", "o", "", "this shard's output values, in order")
	snapshotCmd.Flags().StringVar(&snapshotDir, "dir", "", "snapshot directory (overrides config)")
	_ = snapshotCmd.MarkFlagRequired("shard")
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	if snapshotInput == "" && snapshotOutput == "" {
		return fmt.Errorf("at least one of --input or --output is required")
	}

	c, err := checker.New[int64](encoding.Integer[int64](), cfg.CheckerOptions())
	if err != nil {
		return err
	}

	var pre, post int
	if snapshotInput != "" {
		if pre, err = streamValues(snapshotInput, c.AddPre); err != nil {
			return err
		}
	}
	if snapshotOutput != "" {
		if post, err = streamValues(snapshotOutput, func(v int64) { c.AddPost(v, less) }); err != nil {
			return err
		}
	}

	snap, err := c.Snapshot(snapshotShard)
	if err != nil {
		return err
	}

	opts := cfg.SnapshotOptions()
	if snapshotDir != "" {
		opts.Directory = snapshotDir
	}

	store, err := snapshot.NewStore(opts, log)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Save(cmd.Context(), snap); err != nil {
		return err
	}

	log.Infow(
		"shard fingerprinted",
		"shard", snapshotShard,
		"pre", pre,
		"post", post,
		"locallySorted", c.LocallySorted(),
		"directory", store.Directory(),
	)
	return nil
}
