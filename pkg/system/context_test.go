package system

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestRunWithContext(t *testing.T) {
	errBoom := errors.New("boom")

	err := RunWithContext(context.Background(), func(context.Context) error { return nil })
	assert.NoError(t, err)

	err = RunWithContext(context.Background(), func(context.Context) error { return errBoom })
	assert.ErrorIs(t, err, errBoom)
}

func TestRunWithContextAlreadyDone(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := RunWithContext(ctx, func(context.Context) error {
		called = true
		return nil
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}

func TestRunWithContextCancelsOperation(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	err := RunWithContext(ctx, func(opCtx context.Context) error {
		<-opCtx.Done()
		return nil
	})

	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
