package encoding

import (
	"math"
	"testing"

	"github.com/iamNilotpal/sortcheck/internal/core/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func roundTrip[T comparable](t *testing.T, enc ports.Encoder[T], values ...T) {
	t.Helper()

	for _, v := range values {
		b := enc.Append(nil, v)
		assert.Len(t, b, enc.Width())

		got, err := enc.Decode(b)
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
}

func TestIntegerWidths(t *testing.T) {
	assert.Equal(t, 1, Integer[int8]().Width())
	assert.Equal(t, 2, Integer[uint16]().Width())
	assert.Equal(t, 4, Integer[int32]().Width())
	assert.Equal(t, 8, Integer[int64]().Width())
	assert.Equal(t, 8, Integer[uint64]().Width())
}

func TestIntegerRoundTrip(t *testing.T) {
	roundTrip[int8](t, Integer[int8](), -128, -1, 0, 127)
	roundTrip[uint16](t, Integer[uint16](), 0, 1, math.MaxUint16)
	roundTrip[int32](t, Integer[int32](), math.MinInt32, -5, 0, math.MaxInt32)
	roundTrip[int64](t, Integer[int64](), math.MinInt64, -1, 0, math.MaxInt64)
	roundTrip[uint64](t, Integer[uint64](), 0, math.MaxUint64)
}

func TestIntegerLittleEndian(t *testing.T) {
	assert.Equal(t, []byte{0x01, 0x02, 0, 0}, Integer[uint32]().Append(nil, 0x0201))
	assert.Equal(t, []byte{9, 0x01, 0x02}, Integer[uint16]().Append([]byte{9}, 0x0201))
}

func TestFloatRoundTrip(t *testing.T) {
	roundTrip[float32](t, Float[float32](), -1.5, 0, float32(math.Pi))
	roundTrip[float64](t, Float[float64](), -1e300, 0, math.Pi, math.Inf(1))
	assert.Equal(t, 4, Float[float32]().Width())
	assert.Equal(t, 8, Float[float64]().Width())
}

func TestDecodeRejectsWrongWidth(t *testing.T) {
	_, err := Integer[int64]().Decode([]byte{1, 2, 3})
	assert.Error(t, err)

	_, err = Float[float32]().Decode(make([]byte, 8))
	assert.Error(t, err)
}

func TestString(t *testing.T) {
	enc := String()
	assert.Equal(t, 0, enc.Width())

	b := enc.Append([]byte("x"), "yz")
	assert.Equal(t, []byte("xyz"), b)

	got, err := enc.Decode([]byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, "hello", got)
}
