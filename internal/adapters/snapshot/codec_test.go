package snapshot

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/iamNilotpal/sortcheck/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protowire"
)

func sample() *domain.Snapshot {
	return &domain.Snapshot{
		Version:       domain.SnapshotVersion,
		Shard:         3,
		Algorithm:     "tabulation",
		Seed:          0xdeadbeef,
		Pre:           domain.Fingerprint{Count: 10, Sum: 1<<63 + 5},
		Post:          domain.Fingerprint{Count: 10, Sum: 1<<63 + 5},
		BoundarySet:   true,
		LocallySorted: true,
		Left:          []byte{1, 0, 0, 0, 0, 0, 0, 0},
		Right:         []byte{9, 0, 0, 0, 0, 0, 0, 0},
	}
}

func TestMarshalUnmarshal(t *testing.T) {
	want := sample()

	got, err := Unmarshal(Marshal(want))
	require.NoError(t, err)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("snapshot mismatch (-want +got):\n%s", diff)
	}
}

func TestEmptyShardOmitsBoundaries(t *testing.T) {
	s := sample()
	s.BoundarySet = false
	s.Left, s.Right = nil, nil
	s.Post = domain.Fingerprint{}

	got, err := Unmarshal(Marshal(s))
	require.NoError(t, err)
	assert.False(t, got.BoundarySet)
	assert.Nil(t, got.Left)
	assert.Nil(t, got.Right)
	assert.Equal(t, domain.Fingerprint{}, got.Post)
}

func TestUnmarshalSkipsUnknownFields(t *testing.T) {
	b := Marshal(sample())
	b = protowire.AppendTag(b, 99, protowire.BytesType)
	b = protowire.AppendBytes(b, []byte("future"))
	b = protowire.AppendTag(b, 100, protowire.VarintType)
	b = protowire.AppendVarint(b, 7)

	got, err := Unmarshal(b)
	require.NoError(t, err)
	assert.Equal(t, sample(), got)
}

func TestUnmarshalErrors(t *testing.T) {
	full := Marshal(sample())

	_, err := Unmarshal(full[:len(full)-3])
	assert.Error(t, err, "truncated")

	_, err = Unmarshal(nil)
	assert.ErrorIs(t, err, ErrUnsupportedVersion)

	future := sample()
	future.Version = domain.SnapshotVersion + 1
	_, err = Unmarshal(Marshal(future))
	assert.ErrorIs(t, err, ErrUnsupportedVersion)

	var b []byte
	b = appendVarint(b, fieldVersion, uint64(domain.SnapshotVersion))
	b = appendVarint(b, fieldBoundarySet, 1)
	_, err = Unmarshal(b)
	assert.ErrorIs(t, err, ErrMissingBoundary)
}
