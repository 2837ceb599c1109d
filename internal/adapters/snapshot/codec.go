// Package snapshot encodes checker snapshots in protobuf wire format.
//
// Field numbers are part of the format and must never be reused:
//
//	1  version        varint
//	2  shard          varint
//	3  algorithm      bytes
//	4  seed           fixed64
//	5  pre_count      varint
//	6  pre_sum        fixed64
//	7  post_count     varint
//	8  post_sum       fixed64
//	9  boundary_set   varint (bool)
//	10 locally_sorted varint (bool)
//	11 left           bytes
//	12 right          bytes
package snapshot

import (
	"errors"
	"fmt"

	"github.com/iamNilotpal/sortcheck/internal/core/domain"
	"google.golang.org/protobuf/encoding/protowire"
)

const (
	fieldVersion       protowire.Number = 1
	fieldShard         protowire.Number = 2
	fieldAlgorithm     protowire.Number = 3
	fieldSeed          protowire.Number = 4
	fieldPreCount      protowire.Number = 5
	fieldPreSum        protowire.Number = 6
	fieldPostCount     protowire.Number = 7
	fieldPostSum       protowire.Number = 8
	fieldBoundarySet   protowire.Number = 9
	fieldLocallySorted protowire.Number = 10
	fieldLeft          protowire.Number = 11
	fieldRight         protowire.Number = 12
)

var (
	// ErrUnsupportedVersion is returned for snapshots written by a newer format.
	ErrUnsupportedVersion = errors.New("unsupported snapshot version")

	// ErrMissingBoundary is returned when boundary_set is true but a boundary value is absent.
	ErrMissingBoundary = errors.New("snapshot boundary values missing")
)

// Append appends the wire encoding of s to dst.
func Append(dst []byte, s *domain.Snapshot) []byte {
	dst = appendVarint(dst, fieldVersion, uint64(s.Version))
	dst = appendVarint(dst, fieldShard, uint64(s.Shard))

	dst = protowire.AppendTag(dst, fieldAlgorithm, protowire.BytesType)
	dst = protowire.AppendString(dst, string(s.Algorithm))

	dst = appendFixed64(dst, fieldSeed, s.Seed)
	dst = appendVarint(dst, fieldPreCount, s.Pre.Count)
	dst = appendFixed64(dst, fieldPreSum, s.Pre.Sum)
	dst = appendVarint(dst, fieldPostCount, s.Post.Count)
	dst = appendFixed64(dst, fieldPostSum, s.Post.Sum)
	dst = appendVarint(dst, fieldBoundarySet, protowire.EncodeBool(s.BoundarySet))
	dst = appendVarint(dst, fieldLocallySorted, protowire.EncodeBool(s.LocallySorted))

	if s.BoundarySet {
		dst = protowire.AppendTag(dst, fieldLeft, protowire.BytesType)
		dst = protowire.AppendBytes(dst, s.Left)
		dst = protowire.AppendTag(dst, fieldRight, protowire.BytesType)
		dst = protowire.AppendBytes(dst, s.Right)
	}

	return dst
}

// Marshal returns the wire encoding of s.
func Marshal(s *domain.Snapshot) []byte {
	return Append(nil, s)
}

// Unmarshal decodes a snapshot. Unknown fields are skipped.
func Unmarshal(b []byte) (*domain.Snapshot, error) {
	var s domain.Snapshot
	var hasLeft, hasRight bool

	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return nil, fmt.Errorf("snapshot tag: %w", protowire.ParseError(n))
		}
		b = b[n:]

		switch {
		case typ == protowire.VarintType && isVarintField(num):
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return nil, fmt.Errorf("snapshot field %d: %w", num, protowire.ParseError(n))
			}
			b = b[n:]
			setVarint(&s, num, v)

		case typ == protowire.Fixed64Type && isFixed64Field(num):
			v, n := protowire.ConsumeFixed64(b)
			if n < 0 {
				return nil, fmt.Errorf("snapshot field %d: %w", num, protowire.ParseError(n))
			}
			b = b[n:]
			setFixed64(&s, num, v)

		case typ == protowire.BytesType && (num == fieldAlgorithm || num == fieldLeft || num == fieldRight):
			v, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return nil, fmt.Errorf("snapshot field %d: %w", num, protowire.ParseError(n))
			}
			b = b[n:]

			switch num {
			case fieldAlgorithm:
				s.Algorithm = domain.HashAlgorithm(v)
			case fieldLeft:
				s.Left, hasLeft = append([]byte(nil), v...), true
			default:
				s.Right, hasRight = append([]byte(nil), v...), true
			}

		default:
			n := protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return nil, fmt.Errorf("snapshot field %d: %w", num, protowire.ParseError(n))
			}
			b = b[n:]
		}
	}

	if s.Version == 0 || s.Version > domain.SnapshotVersion {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, s.Version)
	}

	if s.BoundarySet && (!hasLeft || !hasRight) {
		return nil, ErrMissingBoundary
	}

	return &s, nil
}

func appendVarint(dst []byte, num protowire.Number, v uint64) []byte {
	dst = protowire.AppendTag(dst, num, protowire.VarintType)
	return protowire.AppendVarint(dst, v)
}

func appendFixed64(dst []byte, num protowire.Number, v uint64) []byte {
	dst = protowire.AppendTag(dst, num, protowire.Fixed64Type)
	return protowire.AppendFixed64(dst, v)
}

func isVarintField(num protowire.Number) bool {
	switch num {
	case fieldVersion, fieldShard, fieldPreCount, fieldPostCount, fieldBoundarySet, fieldLocallySorted:
		return true
	}
	return false
}

func isFixed64Field(num protowire.Number) bool {
	return num == fieldSeed || num == fieldPreSum || num == fieldPostSum
}

func setVarint(s *domain.Snapshot, num protowire.Number, v uint64) {
	switch num {
	case fieldVersion:
		s.Version = uint32(v)
	case fieldShard:
		s.Shard = uint32(v)
	case fieldPreCount:
		s.Pre.Count = v
	case fieldPostCount:
		s.Post.Count = v
	case fieldBoundarySet:
		s.BoundarySet = protowire.DecodeBool(v)
	case fieldLocallySorted:
		s.LocallySorted = protowire.DecodeBool(v)
	}
}

func setFixed64(s *domain.Snapshot, num protowire.Number, v uint64) {
	switch num {
	case fieldSeed:
		s.Seed = v
	case fieldPreSum:
		s.Pre.Sum = v
	case fieldPostSum:
		s.Post.Sum = v
	}
}
