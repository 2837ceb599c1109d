package domain

// CompressionOptions configures the compression behavior for snapshot payloads.
type CompressionOptions struct {
	// Enable toggles compression of snapshot payloads.
	// Payloads are stored raw when compression does not shrink them.
	Enable bool

	// Level defines the compression level for zstd when compression is enabled.
	// Supported levels:
	//   - 1: Fastest compression
	//   - 3: Default balanced compression
	//   - 4: Best compression ratio with higher CPU usage
	// If not specified, the default level will be used.
	Level uint8

	// EncoderConcurrency specifies the number of concurrent compression operations.
	// Must not exceed the number of CPU cores. Treated as 1 when set to 0.
	EncoderConcurrency uint8

	// DecoderConcurrency specifies the number of concurrent decompression operations.
	// Must not exceed the number of CPU cores. Uses GOMAXPROCS when set to 0.
	DecoderConcurrency uint8
}
