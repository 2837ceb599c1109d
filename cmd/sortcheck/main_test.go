package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/iamNilotpal/sortcheck/internal/core/domain"
	"github.com/iamNilotpal/sortcheck/internal/core/services/checker"
	"github.com/iamNilotpal/sortcheck/internal/core/services/snapshot"
	"github.com/iamNilotpal/sortcheck/internal/serialize"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeValues(t *testing.T, dir, name string, values ...string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(values, "\n")+"\n"), 0644))
	return path
}

func writeCompressed(t *testing.T, dir, name string, values ...string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	file, err := os.Create(path)
	require.NoError(t, err)
	defer file.Close()

	enc, err := zstd.NewWriter(file)
	require.NoError(t, err)
	_, err = enc.Write([]byte(strings.Join(values, "\n") + "\n"))
	require.NoError(t, err)
	require.NoError(t, enc.Close())

	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(append([]string{"--log-level", "error"}, args...))

	err := rootCmd.Execute()
	return out.String(), err
}

func TestParseValues(t *testing.T) {
	values, err := parseValues(strings.NewReader("3\n\n -1 \n9223372036854775807\n"))
	require.NoError(t, err)
	assert.Equal(t, []int64{3, -1, 9223372036854775807}, values)

	_, err = parseValues(strings.NewReader("1\nx\n"))
	assert.ErrorContains(t, err, "line 2")
}

func TestPrintReport(t *testing.T) {
	jsonOutput = false

	var out bytes.Buffer
	report := &checker.Report{
		Permuted:           true,
		Shards:             3,
		Pre:                domain.Fingerprint{Count: 4},
		Post:               domain.Fingerprint{Count: 4},
		BoundaryViolations: []int{2},
	}

	assert.ErrorIs(t, printReport(&out, report, false), errRejected)
	assert.Contains(t, out.String(), "sorted:      false")
	assert.Contains(t, out.String(), "[2]")

	out.Reset()
	assert.NoError(t, printReport(&out, report, true))
	assert.NotContains(t, out.String(), "sorted:")

	jsonOutput = true
	defer func() { jsonOutput = false }()

	out.Reset()
	assert.NoError(t, printReport(&out, report, true))

	var decoded checker.Report
	require.NoError(t, serialize.UnMarshalJSON(out.Bytes(), &decoded))
	assert.Equal(t, *report, decoded)
}

func TestCheckCommand(t *testing.T) {
	dir := t.TempDir()
	input := writeValues(t, dir, "in.txt", "5", "3", "9", "1", "7")
	sorted := writeValues(t, dir, "sorted.txt", "1", "3", "5", "7", "9")
	swapped := writeValues(t, dir, "swapped.txt", "1", "3", "7", "5", "9")

	out, err := execute(t, "check", "-i", input, "-o", sorted, "--shards", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "sorted:      true")

	_, err = execute(t, "check", "-i", input, "-o", swapped, "--shards", "2")
	assert.ErrorIs(t, err, errRejected)

	_, err = execute(t, "check", "-i", input, "-o", swapped, "--shards", "2", "--permutation-only")
	assert.NoError(t, err)
	checkPermutationOnly = false
}

func TestSnapshotAndMerge(t *testing.T) {
	dir := t.TempDir()
	snapDir := filepath.Join(dir, "snaps")

	in0 := writeValues(t, dir, "in-0.txt", "8", "2", "6")
	in1 := writeValues(t, dir, "in-1.txt", "4", "1")
	out0 := writeValues(t, dir, "out-0.txt", "1", "2", "4")
	out1 := writeValues(t, dir, "out-1.txt", "6", "8")

	_, err := execute(t, "snapshot", "--dir", snapDir, "--shard", "1", "-i", in1, "-o", out1)
	require.NoError(t, err)
	_, err = execute(t, "snapshot", "--dir", snapDir, "--shard", "0", "-i", in0, "-o", out0)
	require.NoError(t, err)

	out, err := execute(t, "--json", "merge", "--dir", snapDir, "--clear")
	require.NoError(t, err)

	var report checker.Report
	require.NoError(t, serialize.UnMarshalJSON([]byte(out), &report))
	assert.True(t, report.Sorted)
	assert.Equal(t, 2, report.Shards)
	assert.Equal(t, uint64(5), report.Post.Count)

	jsonOutput, mergeClear = false, false

	_, err = execute(t, "merge", "--dir", snapDir)
	assert.ErrorContains(t, err, "no snapshots found")
}

func TestReadCompressedValues(t *testing.T) {
	dir := t.TempDir()
	path := writeCompressed(t, dir, "values.txt.zst", "4", "-2", "", "10")

	values, err := readValues(path)
	require.NoError(t, err)
	assert.Equal(t, []int64{4, -2, 10}, values)

	broken := writeCompressed(t, dir, "broken.zst", "1", "two")
	_, err = readValues(broken)
	assert.ErrorContains(t, err, "line 2")
}

func TestCheckCompressedInput(t *testing.T) {
	dir := t.TempDir()
	input := writeCompressed(t, dir, "in.txt.zst", "5", "3", "9", "1", "7")
	sorted := writeValues(t, dir, "sorted.txt", "1", "3", "5", "7", "9")

	out, err := execute(t, "check", "-i", input, "-o", sorted, "--shards", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "sorted:      true")
}

func TestMergeRejectsMissingShard(t *testing.T) {
	dir := t.TempDir()
	snapDir := filepath.Join(dir, "snaps")

	in0 := writeValues(t, dir, "in-0.txt", "1", "2")
	in2 := writeCompressed(t, dir, "in-2.txt.zst", "5", "6")
	out0 := writeValues(t, dir, "out-0.txt", "1", "2")
	out2 := writeValues(t, dir, "out-2.txt", "5", "6")

	_, err := execute(t, "snapshot", "--dir", snapDir, "--shard", "0", "-i", in0, "-o", out0)
	require.NoError(t, err)
	_, err = execute(t, "snapshot", "--dir", snapDir, "--shard", "2", "-i", in2, "-o", out2)
	require.NoError(t, err)

	_, err = execute(t, "merge", "--dir", snapDir)
	assert.ErrorIs(t, err, snapshot.ErrIncomplete)
	assert.ErrorContains(t, err, "missing [1]")

	in1 := writeValues(t, dir, "in-1.txt", "3", "4")
	out1 := writeValues(t, dir, "out-1.txt", "3", "4")
	_, err = execute(t, "snapshot", "--dir", snapDir, "--shard", "1", "-i", in1, "-o", out1)
	require.NoError(t, err)

	_, err = execute(t, "merge", "--dir", snapDir, "--shards", "4")
	assert.ErrorContains(t, err, "missing [3]")
	mergeShards = 0

	out, err := execute(t, "merge", "--dir", snapDir)
	require.NoError(t, err)
	assert.Contains(t, out, "sorted:      true")
}
