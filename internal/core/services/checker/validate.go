package checker

import (
	"github.com/iamNilotpal/sortcheck/internal/adapters/hash"
	"github.com/iamNilotpal/sortcheck/internal/core/domain"
)

// Validate checks options after defaults have been applied.
func Validate(opts *domain.CheckerOptions) error {
	return hash.Validate(opts.HashOptions)
}
