package hash

import (
	"hash/crc64"
)

type crc64Hasher struct {
	name  string
	table *crc64.Table
}

func NewCRC64ISO() *crc64Hasher {
	return &crc64Hasher{
		name:  string(CRC64ISO),
		table: crc64.MakeTable(crc64.ISO),
	}
}

func NewCRC64ECMA() *crc64Hasher {
	return &crc64Hasher{
		name:  string(CRC64ECMA),
		table: crc64.MakeTable(crc64.ECMA),
	}
}

func (c *crc64Hasher) Sum64(data []byte) uint64 {
	return crc64.Checksum(data, c.table)
}

func (c *crc64Hasher) Size() uint8 {
	return crc64.Size
}

func (c *crc64Hasher) Name() string {
	return c.name
}
