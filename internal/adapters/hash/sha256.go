package hash

import (
	sha256_lib "crypto/sha256"
	"encoding/binary"
)

type sha256 struct {
	name string
}

func NewSHA256() *sha256 {
	return &sha256{name: string(SHA256)}
}

func (s *sha256) Sum64(data []byte) uint64 {
	sum := sha256_lib.Sum256(data)
	return binary.BigEndian.Uint64(sum[:8])
}

func (s *sha256) Size() uint8 {
	return 8
}

func (s *sha256) Name() string {
	return s.name
}
