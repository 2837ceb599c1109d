package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/iamNilotpal/sortcheck/internal/adapters/compression"
	"github.com/iamNilotpal/sortcheck/internal/adapters/hash"
	"github.com/iamNilotpal/sortcheck/internal/core/domain"
	"github.com/iamNilotpal/sortcheck/internal/core/services/snapshot"
	"github.com/iamNilotpal/sortcheck/internal/core/services/verify"
	errs "github.com/iamNilotpal/sortcheck/pkg/errors"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Hash        HashConfig     `yaml:"hash"`
	Shards      int            `yaml:"shards"`      // Number of shards for in-process runs
	Concurrency int            `yaml:"concurrency"` // Shard workers running at once, 0 = GOMAXPROCS
	Snapshot    SnapshotConfig `yaml:"snapshot"`
	Log         LogConfig      `yaml:"log"`
}

// Holds hash function configuration. Every process taking part in one
// verification must use the same values.
type HashConfig struct {
	Algorithm string `yaml:"algorithm"` // tabulation, crc32-ieee, crc32-castagnoli, crc64-iso, crc64-ecma, sha256
	Seed      uint64 `yaml:"seed"`      // Seed for tabulation hashing
}

// Holds snapshot storage configuration.
type SnapshotConfig struct {
	Directory        string `yaml:"directory"`         // Where snapshot files live
	Compress         bool   `yaml:"compress"`          // Compress snapshot payloads with zstd
	CompressionLevel uint8  `yaml:"compression_level"` // zstd level (1-4)
}

type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn or error
}

// Returns a Config struct with reasonable default values.
func DefaultConfig() *Config {
	return &Config{
		Shards: verify.DefaultShards,
		Hash: HashConfig{
			Algorithm: string(hash.Tabulation),
		},
		Snapshot: SnapshotConfig{
			Compress:         true,
			Directory:        snapshot.DefaultDirectory,
			CompressionLevel: compression.DefaultLevel,
		},
		Log: LogConfig{Level: "info"},
	}
}

// Loads configuration from a YAML file. Missing keys keep their defaults.
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, errs.New(errs.ErrorConfig, "read config", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, errs.New(errs.ErrorConfig, "parse config", err)
	}

	if err := config.Validate(); err != nil {
		return nil, errs.New(errs.ErrorConfig, "validate config", err)
	}

	return config, nil
}

// Validate reports the first unusable value as a ValidationError whose
// field is the YAML key.
func (c *Config) Validate() error {
	if err := hash.Validate(c.HashOptions()); err != nil {
		return errs.NewValidationError("hash.algorithm", c.Hash.Algorithm, errors.Unwrap(err))
	}

	if c.Shards < 1 || c.Shards > verify.MaxShards {
		return errs.NewValidationError(
			"shards", c.Shards, fmt.Errorf("shards must be between 1 and %d", verify.MaxShards),
		)
	}

	if c.Concurrency < 0 {
		return errs.NewValidationError("concurrency", c.Concurrency, fmt.Errorf("concurrency must not be negative"))
	}

	if c.Snapshot.Directory == "" {
		return errs.NewValidationError("snapshot.directory", c.Snapshot.Directory, fmt.Errorf("directory is required"))
	}

	if c.Snapshot.Compress {
		if err := compression.Validate(c.SnapshotOptions().CompressionOptions); err != nil {
			return errs.NewValidationError(
				"snapshot.compression_level", c.Snapshot.CompressionLevel, errors.Unwrap(err),
			)
		}
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return errs.NewValidationError(
			"log.level", c.Log.Level, fmt.Errorf("level must be one of debug, info, warn, error"),
		)
	}

	return nil
}

// HashOptions converts the hash section to domain options.
func (c *Config) HashOptions() *domain.HashOptions {
	return &domain.HashOptions{
		Algorithm: domain.HashAlgorithm(c.Hash.Algorithm),
		Seed:      c.Hash.Seed,
	}
}

// CheckerOptions returns the options every checker of a run is built with.
func (c *Config) CheckerOptions() *domain.CheckerOptions {
	return &domain.CheckerOptions{HashOptions: c.HashOptions()}
}

// SnapshotOptions converts the snapshot section to domain options.
func (c *Config) SnapshotOptions() *domain.SnapshotOptions {
	opts := compression.DefaultOptions()
	opts.Enable = c.Snapshot.Compress
	opts.Level = c.Snapshot.CompressionLevel

	return &domain.SnapshotOptions{
		Directory:          c.Snapshot.Directory,
		CompressionOptions: opts,
	}
}

// VerifyOptions builds options for the in-process verifier.
func (c *Config) VerifyOptions() *verify.Options {
	return &verify.Options{
		Shards:         c.Shards,
		Concurrency:    c.Concurrency,
		CheckerOptions: c.CheckerOptions(),
	}
}
