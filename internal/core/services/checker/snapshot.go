package checker

import (
	"errors"
	"fmt"

	"github.com/iamNilotpal/sortcheck/internal/core/domain"
	validation "github.com/iamNilotpal/sortcheck/pkg/errors"
)

// ErrNoEncoder is returned by Snapshot and Restore on checkers built with
// NewWithHasher, which have no way to serialize their boundary values.
var ErrNoEncoder = errors.New("checker has no value encoder")

// Snapshot captures the checker's own contributions so they can be
// aggregated elsewhere. Combined views are not included.
func (c *Checker[T]) Snapshot(shard uint32) (*domain.Snapshot, error) {
	if c.encoder == nil {
		return nil, ErrNoEncoder
	}

	s := &domain.Snapshot{
		Version:       domain.SnapshotVersion,
		Shard:         shard,
		Algorithm:     c.algorithm,
		Seed:          c.seed,
		Pre:           c.pre.local,
		Post:          c.post.local,
		BoundarySet:   c.boundarySet,
		LocallySorted: c.locallySorted,
	}

	if c.boundarySet {
		s.Left = c.encoder.Append(nil, c.left)
		s.Right = c.encoder.Append(nil, c.right)
	}

	return s, nil
}

// Restore replaces the checker's state with the one captured in s. The
// snapshot must come from a checker with the same hash algorithm and seed.
func (c *Checker[T]) Restore(s *domain.Snapshot) error {
	if c.encoder == nil {
		return ErrNoEncoder
	}

	if s.Algorithm != c.algorithm {
		return validation.NewValidationError(
			"algorithm", s.Algorithm, fmt.Errorf("snapshot hashed with %s, checker uses %s", s.Algorithm, c.algorithm),
		)
	}

	if s.Seed != c.seed {
		return validation.NewValidationError(
			"seed", s.Seed, fmt.Errorf("snapshot seed %d differs from checker seed %d", s.Seed, c.seed),
		)
	}

	var left, right T
	if s.BoundarySet {
		var err error
		if left, err = c.encoder.Decode(s.Left); err != nil {
			return fmt.Errorf("decoding left boundary: %w", err)
		}
		if right, err = c.encoder.Decode(s.Right); err != nil {
			return fmt.Errorf("decoding right boundary: %w", err)
		}
	}

	c.pre = phase{local: s.Pre, view: s.Pre}
	c.post = phase{local: s.Post, view: s.Post}
	c.left, c.right = left, right
	c.boundarySet = s.BoundarySet
	c.locallySorted = s.LocallySorted

	return nil
}
