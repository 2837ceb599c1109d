package pool

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBufferPool(t *testing.T) {
	bp := NewBufferPool(16)

	buf := bp.Get()
	assert.Empty(t, *buf)
	assert.GreaterOrEqual(t, cap(*buf), 16)

	*buf = append(*buf, "abc"...)
	bp.Put(buf)

	buf = bp.Get()
	assert.Empty(t, *buf)

	large := make([]byte, 0, 128)
	bp.Put(&large)
}
