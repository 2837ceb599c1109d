// Package checker implements a probabilistic checker for sort and permutation
// algorithms.
//
// Each shard of a (possibly parallel) sort owns one Checker. The shard feeds
// its input through AddPre and its output, in emission order, through
// AddPost. The checker keeps a (count, hash-sum) fingerprint per phase and
// the first and last output element, so it never stores the data. Fingerprints
// of many checkers are then combined by IsLikelyPermuted, IsLikelySorted or
// Inspect.
//
// The test has one-sided error: a correct output is never rejected, while an
// incorrect one is accepted only on a hash collision.
//
// A Checker is not safe for concurrent use. Only its owning goroutine may
// mutate it, and every owner must be done before the checkers are aggregated.
package checker

import (
	"github.com/iamNilotpal/sortcheck/internal/adapters/hash"
	"github.com/iamNilotpal/sortcheck/internal/core/domain"
	"github.com/iamNilotpal/sortcheck/internal/core/ports"
)

// Less reports whether a strictly precedes b.
type Less[T any] func(a, b T) bool

// phase accumulates one side of the permutation. local holds this checker's
// own additions; view is what the checker reports and equals local until a
// combine overwrites it with the aggregate of a whole collection.
type phase struct {
	local domain.Fingerprint
	view  domain.Fingerprint
}

func (p *phase) add(h uint64) {
	p.local.Add(h)
	p.view.Add(h)
}

// Checker verifies one shard of a sort or permutation.
type Checker[T any] struct {
	pre  phase
	post phase

	left, right   T
	boundarySet   bool
	locallySorted bool

	hasher    ports.ValueHasher[T]
	encoder   ports.Encoder[T]
	algorithm domain.HashAlgorithm
	seed      uint64
}

// New creates an empty checker hashing values encoded by enc with the hash
// function selected by opts. A nil opts uses DefaultOptions.
//
// Every checker whose fingerprints are aggregated together must be built
// with the same hash options.
func New[T any](enc ports.Encoder[T], opts *domain.CheckerOptions) (*Checker[T], error) {
	opts = prepareDefaults(opts)
	if err := Validate(opts); err != nil {
		return nil, err
	}

	h, err := hash.New(opts.HashOptions, enc.Width())
	if err != nil {
		return nil, err
	}

	c := &Checker[T]{
		hasher:    hash.Bind(enc, h),
		encoder:   enc,
		algorithm: domain.HashAlgorithm(h.Name()),
		seed:      opts.HashOptions.Seed,
	}
	c.Reset()

	return c, nil
}

// NewWithHasher creates an empty checker around any value hasher.
// Checkers built this way cannot produce snapshots.
func NewWithHasher[T any](h ports.ValueHasher[T]) *Checker[T] {
	c := &Checker[T]{hasher: h}
	c.Reset()
	return c
}

// Reset returns the checker to its empty state. The hash function is kept,
// so fingerprints taken before and after a reset stay comparable.
func (c *Checker[T]) Reset() {
	var zero T

	c.pre = phase{}
	c.post = phase{}
	c.left = zero
	c.right = zero
	c.boundarySet = false
	c.locallySorted = true
}

// AddPre accounts for one input element. Calls may come in any order.
func (c *Checker[T]) AddPre(v T) {
	c.pre.add(c.hasher.Hash(v))
}

// AddPost accounts for one output element. Calls must follow the exact order
// in which the shard emitted its output; an element that strictly precedes
// its predecessor marks the shard as unsorted for good.
func (c *Checker[T]) AddPost(v T, less Less[T]) {
	c.post.add(c.hasher.Hash(v))

	if !c.boundarySet {
		c.left = v
		c.boundarySet = true
	} else if less(v, c.right) {
		c.locallySorted = false
	}
	c.right = v
}

// IsLikelyPermuted reports whether the post phase is probably a permutation
// of the pre phase. Differing counts are always detected.
func (c *Checker[T]) IsLikelyPermuted() bool {
	return c.pre.view.Equal(c.post.view)
}

// IsLikelySorted reports whether the post phase is probably the pre phase in
// sorted order.
func (c *Checker[T]) IsLikelySorted() bool {
	return c.IsLikelyPermuted() && c.locallySorted
}

// Pre returns the reported pre-phase fingerprint.
func (c *Checker[T]) Pre() domain.Fingerprint {
	return c.pre.view
}

// Post returns the reported post-phase fingerprint.
func (c *Checker[T]) Post() domain.Fingerprint {
	return c.post.view
}

// LocallySorted reports whether every consecutive post-phase pair was in order.
func (c *Checker[T]) LocallySorted() bool {
	return c.locallySorted
}

// Boundaries returns the first and last post-phase elements.
// ok is false while the post phase is empty.
func (c *Checker[T]) Boundaries() (left, right T, ok bool) {
	return c.left, c.right, c.boundarySet
}

// Empty reports whether the checker has seen no post-phase element.
func (c *Checker[T]) Empty() bool {
	return !c.boundarySet
}
