package system

import (
	"context"
)

// RunWithContext runs operation in its own goroutine and waits for it to
// finish or for ctx to be cancelled. On cancellation the operation's context
// is cancelled too and RunWithContext still waits for it to return, so the
// operation never outlives the call.
//
// Returns ctx.Err() immediately if ctx is already done.
func RunWithContext(ctx context.Context, operation func(context.Context) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	opCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Buffered so the goroutine can exit even if nobody reads the result.
	done := make(chan error, 1)
	go func() {
		done <- operation(opCtx)
		close(done)
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		cancel()
		if err := <-done; err != nil {
			return err
		}
		return ctx.Err()
	}
}
