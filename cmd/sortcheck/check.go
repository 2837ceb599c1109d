package main

import (
	"github.com/iamNilotpal/sortcheck/internal/adapters/encoding"
	"github.com/iamNilotpal/sortcheck/internal/core/services/verify"
	"github.com/spf13/cobra"
)

var (
	checkInput           string
	checkOutput          string
	checkShards          int
	checkPermutationOnly bool
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify an output file against its input file",
	Long: `Reads newline-delimited int64 values from --input and --output, splits both
into contiguous shards checked in parallel, and reports whether the output is
the input in ascending order. Either file may be zstd-compressed.

Example:
  sortcheck check --input data.txt --output sorted.txt --shards 8`,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().StringVarP(&checkInput, "input", "i", "", "file with the values before sorting")
	checkCmd.Flags().StringVarP(&checkOutput, "output", "o", "", "file with the values after sorting")
	checkCmd.Flags().IntVar(&checkShards, "shards", 0, "number of shards (overrides config)")
	checkCmd.Flags().BoolVar(&checkPermutationOnly, "permutation-only", false, "only check that output is a permutation of input")
	_ = checkCmd.MarkFlagRequired("input")
	_ = checkCmd.MarkFlagRequired("output")
}

func runCheck(cmd *cobra.Command, args []string) error {
	input, err := readValues(checkInput)
	if err != nil {
		return err
	}

	output, err := readValues(checkOutput)
	if err != nil {
		return err
	}

	opts := cfg.VerifyOptions()
	if checkShards > 0 {
		opts.Shards = checkShards
	}
	opts.Logger = log

	verifier, err := verify.New[int64](encoding.Integer[int64](), less, opts)
	if err != nil {
		return err
	}

	log.Infow("checking", "input", checkInput, "output", checkOutput, "shards", opts.Shards)

	report, err := verifier.Verify(cmd.Context(), input, output)
	if err != nil {
		return err
	}

	return printReport(cmd.OutOrStdout(), report, checkPermutationOnly)
}
