package main

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/iamNilotpal/sortcheck/internal/core/services/checker"
	"github.com/iamNilotpal/sortcheck/internal/serialize"
	"github.com/klauspost/compress/zstd"
)

// zstdMagic starts every zstd frame.
var zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}

// openValues opens a value file, transparently decompressing zstd files.
func openValues(path string) (io.ReadCloser, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	br := bufio.NewReader(file)
	magic, _ := br.Peek(len(zstdMagic))
	if !bytes.Equal(magic, zstdMagic) {
		return struct {
			io.Reader
			io.Closer
		}{br, file}, nil
	}

	dec, err := zstd.NewReader(br, zstd.WithDecoderConcurrency(1))
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return &zstdFile{Decoder: dec, file: file}, nil
}

type zstdFile struct {
	*zstd.Decoder
	file *os.File
}

func (z *zstdFile) Close() error {
	z.Decoder.Close()
	return z.file.Close()
}

// readValues parses one base-10 int64 per line. Blank lines are ignored.
func readValues(path string) ([]int64, error) {
	var values []int64
	if _, err := streamValues(path, func(v int64) { values = append(values, v) }); err != nil {
		return nil, err
	}
	return values, nil
}

func parseValues(r io.Reader) ([]int64, error) {
	var values []int64
	_, err := scanValues(r, func(v int64) { values = append(values, v) })
	return values, err
}

// streamValues feeds each value of path to fn without holding the file in memory.
func streamValues(path string, fn func(int64)) (int, error) {
	r, err := openValues(path)
	if err != nil {
		return 0, err
	}
	defer r.Close()

	n, err := scanValues(r, fn)
	if err != nil {
		return n, fmt.Errorf("%s %w", path, err)
	}
	return n, nil
}

func scanValues(r io.Reader, fn func(int64)) (int, error) {
	n := 0
	scanner := bufio.NewScanner(r)
	for line := 1; scanner.Scan(); line++ {
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		v, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return n, fmt.Errorf("line %d: %w", line, err)
		}
		fn(v)
		n++
	}

	return n, scanner.Err()
}

func less(a, b int64) bool {
	return a < b
}

// printReport writes the report and maps a rejected verdict to errRejected.
func printReport(w io.Writer, report *checker.Report, permutationOnly bool) error {
	if jsonOutput {
		if err := serialize.WriteJSON(w, report); err != nil {
			return err
		}
	} else {
		fmt.Fprintf(w, "shards:      %d (%d empty)\n", report.Shards, report.EmptyShards)
		fmt.Fprintf(w, "elements:    %d in, %d out\n", report.Pre.Count, report.Post.Count)
		fmt.Fprintf(w, "permutation: %t\n", report.Permuted)
		if !permutationOnly {
			fmt.Fprintf(w, "sorted:      %t\n", report.Sorted)
		}
		if len(report.Unsorted) > 0 {
			fmt.Fprintf(w, "unsorted shards: %v\n", report.Unsorted)
		}
		if len(report.BoundaryViolations) > 0 {
			fmt.Fprintf(w, "shards out of order with their predecessor: %v\n", report.BoundaryViolations)
		}
	}

	if permutationOnly && report.Permuted || !permutationOnly && report.Sorted {
		return nil
	}
	return errRejected
}
