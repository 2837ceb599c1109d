// Package snapshot persists checker snapshots so shards running in separate
// processes can be aggregated later.
//
// Each snapshot lives in its own file named prefix + shard + ".snap". A file
// is one flag byte (raw or zstd), the wire-encoded snapshot, and a CRC32
// trailer over everything before it.
package snapshot

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	codec "github.com/iamNilotpal/sortcheck/internal/adapters/snapshot"
	"github.com/iamNilotpal/sortcheck/internal/adapters/compression"
	"github.com/iamNilotpal/sortcheck/internal/core/domain"
	"github.com/iamNilotpal/sortcheck/internal/core/ports"
	"github.com/iamNilotpal/sortcheck/pkg/checksum"
	errs "github.com/iamNilotpal/sortcheck/pkg/errors"
	"github.com/iamNilotpal/sortcheck/pkg/fs"
	"github.com/iamNilotpal/sortcheck/pkg/logger"
	"github.com/iamNilotpal/sortcheck/pkg/pool"
	"github.com/iamNilotpal/sortcheck/pkg/system"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

const (
	flagRaw  byte = 0
	flagZstd byte = 1
)

var (
	// ErrCorrupted is returned when a snapshot file fails its checksum.
	ErrCorrupted = errors.New("snapshot file corrupted")

	// ErrNotFound is returned by Load for a shard without a snapshot file.
	ErrNotFound = errors.New("snapshot not found")

	// ErrIncomplete is returned by CheckComplete when shards are missing.
	ErrIncomplete = errors.New("snapshot set incomplete")
)

// Store reads and writes snapshot files in one directory.
type Store struct {
	opts       *domain.SnapshotOptions
	fs         ports.FileSystemPort
	compressor ports.Compressor
	buffers    *pool.BufferPool
	log        *zap.SugaredLogger
}

// NewStore creates the snapshot directory if needed. A nil opts uses DefaultOptions.
func NewStore(opts *domain.SnapshotOptions, log *zap.SugaredLogger) (*Store, error) {
	opts = prepareDefaults(opts)
	if err := Validate(opts); err != nil {
		return nil, err
	}

	s := &Store{
		opts:    opts,
		fs:      fs.NewLocalFileSystem(),
		buffers: pool.NewBufferPool(bufferSize),
		log:     logger.OrNop(log),
	}

	if err := s.fs.CreateDir(opts.Directory, 0755, true); err != nil {
		return nil, errs.New(errs.ErrorStorage, "create snapshot directory", err)
	}

	// The decoder is needed even with compression disabled, to read
	// snapshots written by a store that had it enabled.
	compressionOpts := *opts.CompressionOptions
	if compressionOpts.Level == 0 {
		compressionOpts.Level = compression.DefaultLevel
	}

	compressor, err := compression.NewZstdCompression(&compressionOpts)
	if err != nil {
		return nil, errs.New(errs.ErrorCompression, "create compressor", err)
	}
	s.compressor = compressor

	s.log.Debugw(
		"snapshot store ready",
		"directory", opts.Directory,
		"compress", opts.CompressionOptions.Enable,
		"level", s.compressor.Level(),
	)

	return s, nil
}

// Directory returns the directory the store writes to.
func (s *Store) Directory() string {
	return s.opts.Directory
}

// Save writes snap to the file of its shard, replacing any previous one.
func (s *Store) Save(ctx context.Context, snap *domain.Snapshot) error {
	buf := s.buffers.Get()
	defer s.buffers.Put(buf)

	body := codec.Append(*buf, snap)
	*buf = body

	flag := flagRaw
	if s.opts.CompressionOptions.Enable {
		compressed, err := s.compressor.Compress(body)
		if err != nil {
			return errs.New(errs.ErrorCompression, "compress snapshot", err)
		}
		if len(compressed) < len(body) {
			body, flag = compressed, flagZstd
		}
	}

	frame := make([]byte, 0, 1+len(body)+checksum.Size)
	frame = append(frame, flag)
	frame = append(frame, body...)
	frame = checksum.Seal(frame)

	path := s.path(snap.Shard)
	ctx, cancel := context.WithTimeout(ctx, IOTimeout)
	defer cancel()

	if err := system.RunWithContext(ctx, func(context.Context) error {
		return s.fs.WriteFile(path, 0644, frame)
	}); err != nil {
		return errs.New(errs.ErrorStorage, "write snapshot", err)
	}

	s.log.Debugw("snapshot saved", "shard", snap.Shard, "path", path, "bytes", len(frame), "compressed", flag == flagZstd)
	return nil
}

// Load reads the snapshot of one shard.
func (s *Store) Load(ctx context.Context, shard uint32) (*domain.Snapshot, error) {
	path := s.path(shard)

	exists, err := s.fs.Exists(path)
	if err != nil {
		return nil, errs.New(errs.ErrorStorage, "stat snapshot", err)
	}
	if !exists {
		return nil, fmt.Errorf("shard %d: %w", shard, ErrNotFound)
	}

	return s.read(ctx, path)
}

// LoadAll reads every snapshot in the directory, ordered by shard.
func (s *Store) LoadAll(ctx context.Context) ([]*domain.Snapshot, error) {
	shards, err := s.Shards()
	if err != nil {
		return nil, err
	}

	snaps := make([]*domain.Snapshot, 0, len(shards))
	for _, shard := range shards {
		snap, err := s.read(ctx, s.path(shard))
		if err != nil {
			return nil, err
		}
		if snap.Shard != shard {
			return nil, errs.New(
				errs.ErrorCodec, "load snapshot", fmt.Errorf("file of shard %d holds shard %d", shard, snap.Shard),
			)
		}
		snaps = append(snaps, snap)
	}

	s.log.Infow("snapshots loaded", "directory", s.opts.Directory, "count", len(snaps))
	return snaps, nil
}

// CheckComplete verifies that snaps, ordered by shard as LoadAll returns
// them, hold exactly shards 0..expected-1. An expected of 0 takes the
// highest shard found as the last one. A missing shard would drop its
// elements from both phases unnoticed, so merging must not proceed without it.
func CheckComplete(snaps []*domain.Snapshot, expected int) error {
	if expected == 0 && len(snaps) > 0 {
		expected = int(snaps[len(snaps)-1].Shard) + 1
	}

	present := make(map[uint32]bool, len(snaps))
	var extra []uint32
	for _, snap := range snaps {
		if int64(snap.Shard) >= int64(expected) {
			extra = append(extra, snap.Shard)
			continue
		}
		present[snap.Shard] = true
	}

	var missing []uint32
	for shard := range expected {
		if !present[uint32(shard)] {
			missing = append(missing, uint32(shard))
		}
	}

	if len(missing) == 0 && len(extra) == 0 {
		return nil
	}

	return errs.New(
		errs.ErrorCodec, "check snapshots",
		fmt.Errorf("%w: want shards 0..%d, missing %v, unexpected %v", ErrIncomplete, expected-1, missing, extra),
	)
}

// Shards lists the shard numbers that have a snapshot file, in ascending order.
func (s *Store) Shards() ([]uint32, error) {
	files, err := s.fs.ReadDir(filepath.Join(s.opts.Directory, s.opts.Prefix+"*"+Extension))
	if err != nil {
		return nil, errs.New(errs.ErrorStorage, "list snapshots", err)
	}

	shards := make([]uint32, 0, len(files))
	for _, name := range files {
		_, file := filepath.Split(name)
		strId := strings.TrimSuffix(strings.TrimPrefix(file, s.opts.Prefix), Extension)

		id, err := strconv.ParseUint(strId, 10, 32)
		if err != nil {
			s.log.Warnw("skipping snapshot with malformed name", "file", name)
			continue
		}
		shards = append(shards, uint32(id))
	}

	slices.Sort(shards)
	return shards, nil
}

// Clear removes every snapshot file in the directory.
func (s *Store) Clear() error {
	shards, err := s.Shards()
	if err != nil {
		return err
	}

	var result error
	for _, shard := range shards {
		result = multierr.Append(result, s.fs.DeleteFile(s.path(shard)))
	}

	if result != nil {
		return errs.New(errs.ErrorStorage, "clear snapshots", result)
	}
	return nil
}

// Close releases the compressor.
func (s *Store) Close() error {
	return s.compressor.Close()
}

func (s *Store) read(ctx context.Context, path string) (*domain.Snapshot, error) {
	ctx, cancel := context.WithTimeout(ctx, IOTimeout)
	defer cancel()

	var frame []byte
	if err := system.RunWithContext(ctx, func(context.Context) error {
		var err error
		frame, err = s.fs.ReadFile(path)
		return err
	}); err != nil {
		return nil, errs.New(errs.ErrorStorage, "read snapshot", err)
	}

	sealed, ok := checksum.Open(frame)
	if !ok || len(sealed) == 0 {
		return nil, errs.New(errs.ErrorCodec, "read snapshot", fmt.Errorf("%s: %w", path, ErrCorrupted))
	}

	body := sealed[1:]
	switch sealed[0] {
	case flagRaw:
	case flagZstd:
		decompressed, err := s.compressor.Decompress(body)
		if err != nil {
			return nil, errs.New(errs.ErrorCompression, "decompress snapshot", err)
		}
		body = decompressed
	default:
		return nil, errs.New(errs.ErrorCodec, "read snapshot", fmt.Errorf("%s: unknown flag %d", path, sealed[0]))
	}

	snap, err := codec.Unmarshal(body)
	if err != nil {
		return nil, errs.New(errs.ErrorCodec, "decode snapshot", fmt.Errorf("%s: %w", path, err))
	}

	return snap, nil
}

func (s *Store) path(shard uint32) string {
	return filepath.Join(s.opts.Directory, fmt.Sprintf("%s%d%s", s.opts.Prefix, shard, Extension))
}
