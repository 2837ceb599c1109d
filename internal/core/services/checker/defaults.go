package checker

import (
	"github.com/iamNilotpal/sortcheck/internal/adapters/hash"
	"github.com/iamNilotpal/sortcheck/internal/core/domain"
)

// DefaultOptions returns options using seeded tabulation hashing with seed 0.
func DefaultOptions() *domain.CheckerOptions {
	return &domain.CheckerOptions{HashOptions: hash.DefaultOptions()}
}

func prepareDefaults(opts *domain.CheckerOptions) *domain.CheckerOptions {
	if opts == nil {
		return DefaultOptions()
	}

	prepared := *opts
	if prepared.HashOptions == nil {
		prepared.HashOptions = hash.DefaultOptions()
	} else if prepared.HashOptions.Algorithm == "" && prepared.HashOptions.Custom == nil {
		hashOpts := *prepared.HashOptions
		hashOpts.Algorithm = hash.Tabulation
		prepared.HashOptions = &hashOpts
	}

	return &prepared
}
