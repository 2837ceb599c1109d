package snapshot

import (
	"strings"
	"time"

	"github.com/iamNilotpal/sortcheck/internal/adapters/compression"
	"github.com/iamNilotpal/sortcheck/internal/core/domain"
)

const (
	DefaultPrefix    = "shard-"
	DefaultDirectory = "./snapshots"
	Extension        = ".snap"

	// IOTimeout bounds a single file read or write.
	IOTimeout = 10 * time.Second

	// bufferSize is the initial capacity of pooled encode buffers; a
	// snapshot of two 8-byte boundaries encodes to well under this.
	bufferSize = 256
)

// DefaultOptions returns options storing compressed snapshots in ./snapshots.
func DefaultOptions() *domain.SnapshotOptions {
	return &domain.SnapshotOptions{
		Prefix:             DefaultPrefix,
		Directory:          DefaultDirectory,
		CompressionOptions: compression.DefaultOptions(),
	}
}

func prepareDefaults(opts *domain.SnapshotOptions) *domain.SnapshotOptions {
	if opts == nil {
		return DefaultOptions()
	}

	prepared := *opts
	if strings.TrimSpace(prepared.Directory) == "" {
		prepared.Directory = DefaultDirectory
	}

	if strings.TrimSpace(prepared.Prefix) == "" {
		prepared.Prefix = DefaultPrefix
	}

	if prepared.CompressionOptions == nil {
		prepared.CompressionOptions = compression.DefaultOptions()
	} else if prepared.CompressionOptions.Enable && prepared.CompressionOptions.Level == 0 {
		compressionOpts := *prepared.CompressionOptions
		compressionOpts.Level = compression.DefaultLevel
		prepared.CompressionOptions = &compressionOpts
	}

	return &prepared
}
