package pool

import (
	"sync"
)

// BufferPool manages a pool of byte slices used to encode snapshots.
type BufferPool struct {
	size int       // Initial capacity of each buffer.
	pool sync.Pool // Thread-safe pool of *[]byte.
}

// Creates a new buffer pool with a specified buffer capacity.
func NewBufferPool(size int) *BufferPool {
	return &BufferPool{
		size: size,
		pool: sync.Pool{
			New: func() any {
				buf := make([]byte, 0, size)
				return &buf
			},
		},
	}
}

// Retrieves an empty buffer from the pool.
func (bp *BufferPool) Get() *[]byte {
	buf := bp.pool.Get().(*[]byte)
	*buf = (*buf)[:0]
	return buf
}

// Returns a buffer to the pool.
func (bp *BufferPool) Put(buf *[]byte) {
	// Don't pool buffers that have grown too large.
	if cap(*buf) > bp.size*4 {
		return
	}

	*buf = (*buf)[:0]
	bp.pool.Put(buf)
}
