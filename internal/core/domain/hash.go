package domain

import (
	"github.com/iamNilotpal/sortcheck/internal/core/ports"
)

// HashAlgorithm represents supported hash algorithms.
type HashAlgorithm string

// HashOptions defines how a checker hashes the values it observes.
type HashOptions struct {
	// Algorithm specifies which hash algorithm to use.
	// Defaults to tabulation hashing if not specified.
	Algorithm HashAlgorithm

	// Seed initializes randomized algorithms. Seedless algorithms ignore it.
	// Checkers whose fingerprints are aggregated together must share
	// the same algorithm and seed.
	//
	// Default: 0
	Seed uint64

	// Custom allows using a custom Hasher implementation.
	// If provided, it takes precedence over Algorithm.
	Custom ports.Hasher
}
