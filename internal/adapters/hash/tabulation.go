package hash

import (
	"fmt"
	"math/rand/v2"

	validation "github.com/iamNilotpal/sortcheck/pkg/errors"
)

// MaxTabulationWidth caps the tables at 256 byte positions (512 KiB).
const MaxTabulationWidth = 256

// tabulation implements tabulation hashing: one 256-entry table of random
// words per byte position, and the hash of a value is the XOR of
// table[i][byte_i] over its bytes. The tables are filled once from the seed
// and never change afterwards, so an instance is safe for concurrent reads.
type tabulation struct {
	name  string
	seed  uint64
	table [][256]uint64
}

func NewTabulation(width int, seed uint64) (*tabulation, error) {
	if width <= 0 {
		return nil, validation.NewValidationError(
			"width", width, fmt.Errorf("tabulation hashing requires fixed-width values"),
		)
	}

	if width > MaxTabulationWidth {
		return nil, validation.NewValidationError(
			"width", width, fmt.Errorf("tabulation width must not exceed %d bytes", MaxTabulationWidth),
		)
	}

	t := &tabulation{name: string(Tabulation), seed: seed, table: make([][256]uint64, width)}

	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	for i := range t.table {
		for j := range t.table[i] {
			t.table[i][j] = rng.Uint64()
		}
	}

	return t, nil
}

func (t *tabulation) Sum64(data []byte) uint64 {
	var h uint64
	for i, b := range data {
		if i == len(t.table) {
			break
		}
		h ^= t.table[i][b]
	}
	return h
}

func (t *tabulation) Size() uint8 {
	return 8
}

func (t *tabulation) Name() string {
	return t.name
}

// Width returns the number of byte positions covered by the tables.
func (t *tabulation) Width() int {
	return len(t.table)
}

// Seed returns the seed the tables were generated from.
func (t *tabulation) Seed() uint64 {
	return t.seed
}
