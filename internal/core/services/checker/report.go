package checker

import (
	"github.com/iamNilotpal/sortcheck/internal/core/domain"
)

// Report explains the verdict over a collection of checkers.
type Report struct {
	// Permuted and Sorted match IsLikelyPermuted and IsLikelySorted.
	Permuted bool `json:"permuted"`
	Sorted   bool `json:"sorted"`

	// Pre and Post are the aggregate fingerprints.
	Pre  domain.Fingerprint `json:"pre"`
	Post domain.Fingerprint `json:"post"`

	// CountMismatch is certain evidence that the output is not a permutation.
	CountMismatch bool `json:"countMismatch"`
	SumMismatch   bool `json:"sumMismatch"`

	// Unsorted lists checkers whose own post phase was out of order.
	Unsorted []int `json:"unsorted,omitempty"`

	// BoundaryViolations lists checkers whose first element strictly
	// precedes the last element of the previous non-empty checker.
	BoundaryViolations []int `json:"boundaryViolations,omitempty"`

	Shards      int `json:"shards"`
	EmptyShards int `json:"emptyShards"`
}

// Inspect evaluates the same conditions as IsLikelySorted without stopping
// at the first failure and records which shards broke them.
func Inspect[T any](checkers []*Checker[T], less Less[T]) *Report {
	r := &Report{Shards: len(checkers)}
	r.Pre, r.Post = totals(checkers)
	r.CountMismatch = r.Pre.Count != r.Post.Count
	r.SumMismatch = r.Pre.Sum != r.Post.Sum
	r.Permuted = !r.CountMismatch && !r.SumMismatch

	var prev *Checker[T]
	for i, c := range checkers {
		if !c.locallySorted {
			r.Unsorted = append(r.Unsorted, i)
		}
		if !c.boundarySet {
			r.EmptyShards++
			continue
		}
		if prev != nil && less(c.left, prev.right) {
			r.BoundaryViolations = append(r.BoundaryViolations, i)
		}
		prev = c
	}

	r.Sorted = r.Permuted && len(r.Unsorted) == 0 && len(r.BoundaryViolations) == 0
	return r
}
