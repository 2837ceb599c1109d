package hash

import (
	"hash/crc32"
)

type crc32Hasher struct {
	name  string
	table *crc32.Table
}

func NewCRC32IEEE() *crc32Hasher {
	return &crc32Hasher{
		name:  string(CRC32IEEE),
		table: crc32.IEEETable,
	}
}

func NewCRC32Castagnoli() *crc32Hasher {
	return &crc32Hasher{
		name:  string(CRC32Castagnoli),
		table: crc32.MakeTable(crc32.Castagnoli),
	}
}

func (c *crc32Hasher) Sum64(data []byte) uint64 {
	return uint64(crc32.Checksum(data, c.table))
}

func (c *crc32Hasher) Size() uint8 {
	return crc32.Size
}

func (c *crc32Hasher) Name() string {
	return c.name
}
