package checker

import (
	"github.com/iamNilotpal/sortcheck/internal/core/domain"
)

// The functions below read or write every checker in a collection. Callers
// must make sure no owner is still calling AddPre or AddPost on any of them.
// The collection order is the rank order of the shards: shard i must hold
// only elements that do not follow any element of shard i+1.

// IsLikelyPermuted reports whether the union of all post phases is probably a
// permutation of the union of all pre phases. How elements were spread over
// the checkers does not matter.
func IsLikelyPermuted[T any](checkers []*Checker[T]) bool {
	pre, post := totals(checkers)
	return pre.Equal(post)
}

// IsLikelySorted reports whether the concatenated post phases are probably
// the pre phases in sorted order: the permutation check passes, every
// checker is locally sorted, and the last element of each non-empty checker
// does not follow the first element of the next non-empty one. Checkers with
// an empty post phase are skipped.
func IsLikelySorted[T any](checkers []*Checker[T], less Less[T]) bool {
	if !IsLikelyPermuted(checkers) {
		return false
	}

	var prev *Checker[T]
	for _, c := range checkers {
		if !c.locallySorted {
			return false
		}
		if !c.boundarySet {
			continue
		}
		if prev != nil && less(c.left, prev.right) {
			return false
		}
		prev = c
	}

	return true
}

// CombinePre sums the pre-phase contributions of all checkers and stores the
// aggregate as every checker's pre-phase fingerprint. Boundaries and local
// order flags are left alone. Calling it again without new additions changes
// nothing.
func CombinePre[T any](checkers []*Checker[T]) {
	var agg domain.Fingerprint
	for _, c := range checkers {
		agg.Merge(c.pre.local)
	}

	for _, c := range checkers {
		c.pre.view = agg
	}
}

// CombinePost is CombinePre for the post phase.
func CombinePost[T any](checkers []*Checker[T]) {
	var agg domain.Fingerprint
	for _, c := range checkers {
		agg.Merge(c.post.local)
	}

	for _, c := range checkers {
		c.post.view = agg
	}
}

func totals[T any](checkers []*Checker[T]) (pre, post domain.Fingerprint) {
	for _, c := range checkers {
		pre.Merge(c.pre.local)
		post.Merge(c.post.local)
	}
	return pre, post
}
