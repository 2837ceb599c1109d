package errors

import (
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckError(t *testing.T) {
	err := New(ErrorStorage, "write snapshot", io.ErrShortWrite)

	assert.Equal(t, "[storage] write snapshot: short write", err.Error())
	assert.ErrorIs(t, err, io.ErrShortWrite)
	assert.True(t, err.IsRetryAble())
	assert.False(t, err.Timestamp.IsZero())

	assert.False(t, New(ErrorCodec, "decode", io.EOF).IsRetryAble())
	assert.Equal(t, "unknown", ErrorCategory(0).String())
}

func TestValidationError(t *testing.T) {
	cause := errors.New("must be positive")
	err := fmt.Errorf("loading: %w", NewValidationError("shards", -1, cause))

	require.True(t, IsValidationError(err))
	ve := AsValidationError(err)
	assert.Equal(t, "shards", ve.Field)
	assert.Equal(t, -1, ve.Value)
	assert.ErrorIs(t, err, cause)

	assert.False(t, IsValidationError(cause))
	assert.Nil(t, AsValidationError(cause))
	assert.Equal(t, ErrorConfig, ve.Category())
}
