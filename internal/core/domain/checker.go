// Package domain defines the core types and configurations for the checker.
package domain

// CheckerOptions defines the configuration parameters of a shard checker.
type CheckerOptions struct {
	// HashOptions selects the hash function owned by the checker.
	// The hash instance is built once and survives Reset, so a reused
	// checker keeps producing comparable fingerprints.
	HashOptions *HashOptions
}
