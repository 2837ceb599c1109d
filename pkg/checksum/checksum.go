// Package checksum frames snapshot files with a CRC32 trailer.
package checksum

import (
	"encoding/binary"
	"hash/crc32"
)

// Size is the length of the trailer appended by Seal.
const Size = crc32.Size

var table = crc32.MakeTable(crc32.IEEE)

func Checksum(data []byte) uint32 {
	return crc32.Checksum(data, table)
}

func VerifyChecksum(data []byte, checksum uint32) bool {
	return Checksum(data) == checksum
}

// Seal appends the little-endian checksum of data to data.
func Seal(data []byte) []byte {
	return binary.LittleEndian.AppendUint32(data, Checksum(data))
}

// Open splits a sealed buffer into its body and reports whether the trailer matches.
func Open(sealed []byte) ([]byte, bool) {
	if len(sealed) < Size {
		return nil, false
	}

	body := sealed[:len(sealed)-Size]
	sum := binary.LittleEndian.Uint32(sealed[len(sealed)-Size:])
	return body, VerifyChecksum(body, sum)
}
