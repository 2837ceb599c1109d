package hash

import (
	"testing"

	"github.com/iamNilotpal/sortcheck/internal/adapters/encoding"
	"github.com/iamNilotpal/sortcheck/internal/core/domain"
	errs "github.com/iamNilotpal/sortcheck/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBuildsEveryAlgorithm(t *testing.T) {
	tests := []struct {
		algorithm domain.HashAlgorithm
		size      uint8
	}{
		{Tabulation, 8},
		{CRC32IEEE, 4},
		{CRC32Castagnoli, 4},
		{CRC64ISO, 8},
		{CRC64ECMA, 8},
		{SHA256, 8},
	}

	for _, tt := range tests {
		t.Run(string(tt.algorithm), func(t *testing.T) {
			h, err := New(&domain.HashOptions{Algorithm: tt.algorithm}, 8)
			require.NoError(t, err)
			assert.Equal(t, string(tt.algorithm), h.Name())
			assert.Equal(t, tt.size, h.Size())

			data := []byte{1, 2, 3, 4, 5, 6, 7, 8}
			assert.Equal(t, h.Sum64(data), h.Sum64(data))
			assert.NotEqual(t, h.Sum64(data), h.Sum64([]byte{1, 2, 3, 4, 5, 6, 7, 9}))
		})
	}
}

func TestCRC32FitsIn32Bits(t *testing.T) {
	h := NewCRC32IEEE()
	assert.LessOrEqual(t, h.Sum64([]byte("hello world")), uint64(^uint32(0)))
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate(DefaultOptions()))

	err := Validate(&domain.HashOptions{Algorithm: "murmur"})
	require.Error(t, err)
	ve := errs.AsValidationError(err)
	require.NotNil(t, ve)
	assert.Equal(t, "algorithm", ve.Field)

	assert.NoError(t, Validate(&domain.HashOptions{Algorithm: "murmur", Custom: NewCRC64ISO()}))
}

func TestNewPrefersCustom(t *testing.T) {
	custom := NewCRC64ISO()
	h, err := New(&domain.HashOptions{Algorithm: Tabulation, Custom: custom}, 0)
	require.NoError(t, err)
	assert.Same(t, custom, h)
}

func TestTabulationIsSeeded(t *testing.T) {
	a, err := NewTabulation(8, 1)
	require.NoError(t, err)
	b, err := NewTabulation(8, 1)
	require.NoError(t, err)
	c, err := NewTabulation(8, 2)
	require.NoError(t, err)

	assert.Equal(t, a.table, b.table)
	assert.NotEqual(t, a.table, c.table)
	assert.Equal(t, 8, a.Width())
	assert.Equal(t, uint64(1), a.Seed())
}

func TestTabulationXorsPerPosition(t *testing.T) {
	tab, err := NewTabulation(2, 0)
	require.NoError(t, err)

	assert.Equal(t, tab.table[0][3]^tab.table[1][200], tab.Sum64([]byte{3, 200}))
	assert.Equal(t, uint64(0), tab.Sum64(nil))
	// Bytes past the table width are ignored.
	assert.Equal(t, tab.Sum64([]byte{3, 200}), tab.Sum64([]byte{3, 200, 9}))
}

func TestTabulationWidthLimits(t *testing.T) {
	_, err := NewTabulation(0, 0)
	assert.True(t, errs.IsValidationError(err))

	_, err = NewTabulation(MaxTabulationWidth+1, 0)
	assert.True(t, errs.IsValidationError(err))
}

func TestBind(t *testing.T) {
	tab, err := NewTabulation(4, 5)
	require.NoError(t, err)

	enc := encoding.Integer[uint32]()
	vh := Bind[uint32](enc, tab)

	assert.Equal(t, tab.Sum64(enc.Append(nil, 77)), vh.Hash(77))
	assert.Equal(t, vh.Hash(77), vh.Hash(77))
	assert.NotEqual(t, vh.Hash(77), vh.Hash(78))
}

func BenchmarkTabulationSum64(b *testing.B) {
	tab, err := NewTabulation(8, 0)
	require.NoError(b, err)
	data := []byte{1, 2, 3, 4, 5, 6, 7, 8}

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		data[0] = byte(i)
		_ = tab.Sum64(data)
	}
}
