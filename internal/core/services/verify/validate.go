package verify

import (
	"fmt"

	validation "github.com/iamNilotpal/sortcheck/pkg/errors"
)

// MaxShards bounds the number of checkers a single run creates. Every
// checker owns its hash tables; with tabulation over 8-byte values that is
// 16 KiB per shard, so the cap holds one run to 64 MiB of tables.
const MaxShards = 1 << 12

func Validate(opts *Options) error {
	if opts.Shards < 1 || opts.Shards > MaxShards {
		return validation.NewValidationError(
			"shards", opts.Shards, fmt.Errorf("shards must be between 1 and %d, got %d", MaxShards, opts.Shards),
		)
	}

	if opts.Concurrency < 1 {
		return validation.NewValidationError(
			"concurrency", opts.Concurrency, fmt.Errorf("concurrency must be at least 1, got %d", opts.Concurrency),
		)
	}

	return nil
}
