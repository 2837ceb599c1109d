// Package verify runs a sharded verification inside one process. Every shard
// gets its own goroutine and its own checker, so the checkers are never
// shared while they are being filled.
package verify

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/iamNilotpal/sortcheck/internal/core/domain"
	"github.com/iamNilotpal/sortcheck/internal/core/ports"
	"github.com/iamNilotpal/sortcheck/internal/core/services/checker"
	errs "github.com/iamNilotpal/sortcheck/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Options configures a Verifier.
type Options struct {
	// Shards is the number of contiguous shards Verify splits its input
	// and output into. VerifyPartitioned ignores it.
	//
	// Default: 4
	Shards int

	// Concurrency limits how many shard workers run at once.
	//
	// Default: GOMAXPROCS
	Concurrency int

	// CheckerOptions is shared by every checker of a run, so all of them
	// hash with the same function.
	CheckerOptions *domain.CheckerOptions

	// Logger receives run summaries. Nil disables logging.
	Logger *zap.SugaredLogger
}

// Verifier checks sorted or permuted output against its input.
type Verifier[T any] struct {
	opts    *Options
	encoder ports.Encoder[T]
	less    checker.Less[T]
	log     *zap.SugaredLogger
}

func New[T any](enc ports.Encoder[T], less checker.Less[T], opts *Options) (*Verifier[T], error) {
	opts = prepareDefaults(opts)
	if err := Validate(opts); err != nil {
		return nil, err
	}

	// Fail on bad hash options here rather than inside a worker.
	if _, err := checker.New(enc, opts.CheckerOptions); err != nil {
		return nil, err
	}

	return &Verifier[T]{opts: opts, encoder: enc, less: less, log: opts.Logger}, nil
}

// Verify splits input and output into Options.Shards contiguous shards and
// reports whether output is probably input in sorted order. Shard i of the
// output holds the i-th slice in rank order; shards may be empty when
// there are fewer elements than shards.
func (v *Verifier[T]) Verify(ctx context.Context, input, output []T) (*checker.Report, error) {
	return v.VerifyPartitioned(ctx, Split(input, v.opts.Shards), Split(output, v.opts.Shards))
}

// VerifyPartitioned verifies caller-provided partitions. inputs may be
// partitioned arbitrarily; outputs must be given in rank order. The two
// slices may have different lengths.
func (v *Verifier[T]) VerifyPartitioned(ctx context.Context, inputs, outputs [][]T) (*checker.Report, error) {
	start := time.Now()
	log := v.log.With("run", uuid.NewString()[:8])

	checkers, err := v.Build(ctx, inputs, outputs)
	if err != nil {
		log.Warnw("verification aborted", "error", err)
		return nil, err
	}

	report := checker.Inspect(checkers, v.less)
	log.Infow(
		"verification finished",
		"shards", report.Shards,
		"emptyShards", report.EmptyShards,
		"elements", report.Post.Count,
		"permuted", report.Permuted,
		"sorted", report.Sorted,
		"duration", time.Since(start),
	)

	if !report.Sorted {
		log.Warnw(
			"output rejected",
			"countMismatch", report.CountMismatch,
			"sumMismatch", report.SumMismatch,
			"unsorted", report.Unsorted,
			"boundaryViolations", report.BoundaryViolations,
		)
	}

	return report, nil
}

// Build fills one checker per shard concurrently and returns them once every
// worker has finished. Checker i receives inputs[i] as its pre phase and
// outputs[i], in order, as its post phase.
func (v *Verifier[T]) Build(ctx context.Context, inputs, outputs [][]T) ([]*checker.Checker[T], error) {
	n := max(len(inputs), len(outputs))
	if n > MaxShards {
		return nil, errs.NewValidationError(
			"partitions", n, fmt.Errorf("at most %d partitions are supported, got %d", MaxShards, n),
		)
	}

	checkers := make([]*checker.Checker[T], n)
	for i := range checkers {
		c, err := checker.New(v.encoder, v.opts.CheckerOptions)
		if err != nil {
			return nil, err
		}
		checkers[i] = c
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(v.opts.Concurrency)

	for i, c := range checkers {
		var in, out []T
		if i < len(inputs) {
			in = inputs[i]
		}
		if i < len(outputs) {
			out = outputs[i]
		}

		g.Go(func() error {
			if err := v.fill(gctx, c, in, out); err != nil {
				return errs.New(errs.ErrorShard, fmt.Sprintf("shard %d", i), err)
			}
			v.log.Debugw("shard done", "shard", i, "pre", len(in), "post", len(out), "locallySorted", c.LocallySorted())
			return nil
		})
	}

	// Wait is the barrier: no worker touches its checker after it returns.
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return checkers, nil
}

func (v *Verifier[T]) fill(ctx context.Context, c *checker.Checker[T], in, out []T) error {
	for i, x := range in {
		if i%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return fmt.Errorf("%s phase at element %d: %w", domain.PhasePre, i, err)
			}
		}
		c.AddPre(x)
	}

	for i, x := range out {
		if i%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return fmt.Errorf("%s phase at element %d: %w", domain.PhasePost, i, err)
			}
		}
		c.AddPost(x, v.less)
	}

	return nil
}

// Split cuts xs into n contiguous parts whose lengths differ by at most one.
// Trailing parts are empty when len(xs) < n.
func Split[T any](xs []T, n int) [][]T {
	parts := make([][]T, n)
	size, rem := len(xs)/n, len(xs)%n

	start := 0
	for i := range parts {
		end := start + size
		if i < rem {
			end++
		}
		parts[i] = xs[start:end]
		start = end
	}

	return parts
}
