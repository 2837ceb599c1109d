// Package hash provides the hash functions a checker can use to fingerprint values.
package hash

import (
	"fmt"

	"github.com/iamNilotpal/sortcheck/internal/core/domain"
	"github.com/iamNilotpal/sortcheck/internal/core/ports"
	validation "github.com/iamNilotpal/sortcheck/pkg/errors"
)

const (
	// Tabulation uses seeded per-byte random tables. It is the only
	// randomized algorithm and requires fixed-width values.
	Tabulation domain.HashAlgorithm = "tabulation"

	// CRC32IEEE uses the IEEE polynomial for CRC32 hashes.
	CRC32IEEE domain.HashAlgorithm = "crc32-ieee"

	// CRC32Castagnoli uses the Castagnoli polynomial for CRC32 hashes.
	CRC32Castagnoli domain.HashAlgorithm = "crc32-castagnoli"

	// CRC64ISO uses the ISO polynomial for CRC64 hashes.
	CRC64ISO domain.HashAlgorithm = "crc64-iso"

	// CRC64ECMA uses the ECMA polynomial for CRC64 hashes.
	CRC64ECMA domain.HashAlgorithm = "crc64-ecma"

	// SHA256 truncates SHA-256 digests to their first 64 bits.
	SHA256 domain.HashAlgorithm = "sha256"
)

// Returns recommended hash settings.
func DefaultOptions() *domain.HashOptions {
	return &domain.HashOptions{Algorithm: Tabulation}
}

func Validate(input *domain.HashOptions) error {
	if input.Custom != nil {
		return nil
	}

	switch input.Algorithm {
	case Tabulation, CRC32IEEE, CRC32Castagnoli, CRC64ISO, CRC64ECMA, SHA256:
	default:
		return validation.NewValidationError(
			"algorithm", input.Algorithm, fmt.Errorf("unsupported hash algorithm: %s", input.Algorithm),
		)
	}

	return nil
}

// New builds the hasher selected by opts. width is the fixed byte width of
// the values that will be hashed, or 0 when it varies.
func New(opts *domain.HashOptions, width int) (ports.Hasher, error) {
	if opts.Custom != nil {
		return opts.Custom, nil
	}

	if err := Validate(opts); err != nil {
		return nil, err
	}

	switch opts.Algorithm {
	case Tabulation:
		t, err := NewTabulation(width, opts.Seed)
		if err != nil {
			return nil, err
		}
		return t, nil
	case CRC32IEEE:
		return NewCRC32IEEE(), nil
	case CRC32Castagnoli:
		return NewCRC32Castagnoli(), nil
	case CRC64ISO:
		return NewCRC64ISO(), nil
	case CRC64ECMA:
		return NewCRC64ECMA(), nil
	default:
		return NewSHA256(), nil
	}
}

// Bind pairs an encoder with a byte hasher. The returned ValueHasher reuses
// one scratch buffer and must not be shared between goroutines.
func Bind[T any](enc ports.Encoder[T], h ports.Hasher) ports.ValueHasher[T] {
	return &boundHasher[T]{enc: enc, hasher: h, scratch: make([]byte, 0, max(enc.Width(), 16))}
}

type boundHasher[T any] struct {
	enc     ports.Encoder[T]
	hasher  ports.Hasher
	scratch []byte
}

func (b *boundHasher[T]) Hash(v T) uint64 {
	b.scratch = b.enc.Append(b.scratch[:0], v)
	return b.hasher.Sum64(b.scratch)
}
