package compression

import (
	"bytes"
	"runtime"
	"testing"

	"github.com/iamNilotpal/sortcheck/internal/core/domain"
	errs "github.com/iamNilotpal/sortcheck/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompressRoundTrip(t *testing.T) {
	z, err := NewZstdCompression(DefaultOptions())
	require.NoError(t, err)
	defer z.Close()

	data := bytes.Repeat([]byte("fingerprint"), 100)
	compressed, err := z.Compress(data)
	require.NoError(t, err)
	assert.Less(t, len(compressed), len(data))

	restored, err := z.Decompress(compressed)
	require.NoError(t, err)
	assert.Equal(t, data, restored)
	assert.Equal(t, DefaultLevel, z.Level())
}

func TestCompressSkipsSmallInput(t *testing.T) {
	z, err := NewZstdCompression(&domain.CompressionOptions{Level: FastestLevel})
	require.NoError(t, err)
	defer z.Close()

	data := []byte("short")
	out, err := z.Compress(data)
	require.NoError(t, err)
	assert.Equal(t, data, out)
}

func TestDecompressRejectsGarbage(t *testing.T) {
	z, err := NewZstdCompression(DefaultOptions())
	require.NoError(t, err)
	defer z.Close()

	_, err = z.Decompress([]byte("not zstd at all"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate(DefaultOptions()))

	err := Validate(&domain.CompressionOptions{Level: BestLevel + 1})
	assert.True(t, errs.IsValidationError(err))

	if runtime.NumCPU() < 255 {
		err = Validate(&domain.CompressionOptions{Level: DefaultLevel, EncoderConcurrency: 255})
		assert.Equal(t, "encoderConcurrency", errs.AsValidationError(err).Field)
	}
}
