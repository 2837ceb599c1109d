package domain

// SnapshotVersion is the current snapshot format version.
const SnapshotVersion uint32 = 1

// Snapshot is the transferable state of one shard checker. It lets shards
// running in separate processes hand their fingerprints to an aggregator.
type Snapshot struct {
	// Version of the encoding that produced the snapshot.
	Version uint32

	// Shard is the rank of the shard. Aggregation orders snapshots by it.
	Shard uint32

	// Algorithm and Seed identify the hash function used for the fingerprints.
	Algorithm HashAlgorithm
	Seed      uint64

	// Pre and Post hold the shard's own contributions for each phase.
	Pre  Fingerprint
	Post Fingerprint

	// BoundarySet reports whether Left and Right hold encoded values.
	BoundarySet bool

	// LocallySorted is false once the shard saw an out-of-order pair.
	LocallySorted bool

	// Left and Right are the encoded first and last post-phase elements.
	Left  []byte
	Right []byte
}

// SnapshotOptions configures how snapshots are persisted.
type SnapshotOptions struct {
	// Directory where snapshot files are stored.
	//
	// Default: "./snapshots"
	Directory string

	// Prefix defines the filename prefix for snapshot files.
	// Final filename will be: prefix + shard + ".snap"
	//
	// Default: "shard-"
	Prefix string

	// CompressionOptions configures compression of snapshot payloads.
	CompressionOptions *CompressionOptions
}
