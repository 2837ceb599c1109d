package verify

import (
	"runtime"

	"github.com/iamNilotpal/sortcheck/internal/core/domain"
	"github.com/iamNilotpal/sortcheck/pkg/logger"
)

const (
	DefaultShards = 4

	// checkEvery is how many elements a shard worker processes between
	// context checks.
	checkEvery = 4096
)

// DefaultOptions returns options for a four-shard run using every CPU.
func DefaultOptions() *Options {
	return &Options{
		Shards:      DefaultShards,
		Concurrency: runtime.GOMAXPROCS(0),
	}
}

func prepareDefaults(opts *Options) *Options {
	if opts == nil {
		opts = DefaultOptions()
	}

	prepared := *opts
	if prepared.Shards == 0 {
		prepared.Shards = DefaultShards
	}

	if prepared.Concurrency == 0 {
		prepared.Concurrency = runtime.GOMAXPROCS(0)
	}

	if prepared.CheckerOptions == nil {
		prepared.CheckerOptions = &domain.CheckerOptions{}
	}

	prepared.Logger = logger.OrNop(prepared.Logger)
	return &prepared
}
