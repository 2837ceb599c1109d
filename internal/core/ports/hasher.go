package ports

// Hasher maps a byte representation of a value to a 64-bit fingerprint.
// Implementations must be deterministic for the lifetime of one instance.
type Hasher interface {
	// Sum64 hashes data. The same instance always returns the same value
	// for the same input.
	Sum64(data []byte) uint64

	// Size returns the width in bytes of the values produced by the algorithm
	// before they are widened to 64 bits.
	Size() uint8

	// Name identifies the algorithm, e.g. "tabulation" or "crc32-ieee".
	Name() string
}

// Encoder converts values of type T to and from their byte representation.
type Encoder[T any] interface {
	// Width is the fixed byte width of every encoded value,
	// or 0 when the encoding is variable width.
	Width() int

	// Append appends the encoding of v to dst and returns the extended slice.
	Append(dst []byte, v T) []byte

	// Decode reverses Append.
	Decode(src []byte) (T, error)
}

// ValueHasher hashes values of type T directly.
// It is the only capability the checker needs from a hash function.
type ValueHasher[T any] interface {
	Hash(v T) uint64
}
