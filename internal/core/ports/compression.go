package ports

// Compressor shrinks encoded snapshots before they are written.
// Implementations must be safe for concurrent use.
type Compressor interface {
	// Compress may return data unchanged when compressing would not help.
	Compress(data []byte) ([]byte, error)

	Decompress(data []byte) ([]byte, error)

	// Level is the configured compression level.
	Level() uint8

	Close() error
}
