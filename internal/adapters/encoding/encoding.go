// Package encoding converts checked values to the byte representation the
// hash functions consume. All fixed-width encodings are little-endian.
package encoding

import (
	"encoding/binary"
	"fmt"
	"math"
	"unsafe"

	"golang.org/x/exp/constraints"
)

type integer[T constraints.Integer] struct {
	width int
}

// Integer returns a fixed-width encoder for any integer type.
// The width is the in-memory size of T.
func Integer[T constraints.Integer]() *integer[T] {
	var zero T
	return &integer[T]{width: int(unsafe.Sizeof(zero))}
}

func (e *integer[T]) Width() int {
	return e.width
}

func (e *integer[T]) Append(dst []byte, v T) []byte {
	switch e.width {
	case 1:
		return append(dst, byte(v))
	case 2:
		return binary.LittleEndian.AppendUint16(dst, uint16(v))
	case 4:
		return binary.LittleEndian.AppendUint32(dst, uint32(v))
	default:
		return binary.LittleEndian.AppendUint64(dst, uint64(v))
	}
}

func (e *integer[T]) Decode(src []byte) (T, error) {
	if len(src) != e.width {
		return 0, fmt.Errorf("integer decode: want %d bytes, got %d", e.width, len(src))
	}

	switch e.width {
	case 1:
		return T(src[0]), nil
	case 2:
		return T(binary.LittleEndian.Uint16(src)), nil
	case 4:
		return T(binary.LittleEndian.Uint32(src)), nil
	default:
		return T(binary.LittleEndian.Uint64(src)), nil
	}
}

type float[T constraints.Float] struct {
	width int
}

// Float returns a fixed-width encoder over the IEEE-754 bits of T.
// Note that 0.0 and -0.0 encode differently although they compare equal.
func Float[T constraints.Float]() *float[T] {
	var zero T
	return &float[T]{width: int(unsafe.Sizeof(zero))}
}

func (e *float[T]) Width() int {
	return e.width
}

func (e *float[T]) Append(dst []byte, v T) []byte {
	if e.width == 4 {
		return binary.LittleEndian.AppendUint32(dst, math.Float32bits(float32(v)))
	}
	return binary.LittleEndian.AppendUint64(dst, math.Float64bits(float64(v)))
}

func (e *float[T]) Decode(src []byte) (T, error) {
	if len(src) != e.width {
		return 0, fmt.Errorf("float decode: want %d bytes, got %d", e.width, len(src))
	}

	if e.width == 4 {
		return T(math.Float32frombits(binary.LittleEndian.Uint32(src))), nil
	}
	return T(math.Float64frombits(binary.LittleEndian.Uint64(src))), nil
}

type str struct{}

// String returns a variable-width encoder. Tabulation hashing cannot use it.
func String() *str {
	return &str{}
}

func (str) Width() int {
	return 0
}

func (str) Append(dst []byte, v string) []byte {
	return append(dst, v...)
}

func (str) Decode(src []byte) (string, error) {
	return string(src), nil
}
