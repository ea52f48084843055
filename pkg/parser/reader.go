package parser

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"golang.org/x/text/encoding/charmap"
)

// DefaultChunkSize is the maximum number of lines returned per batch.
const DefaultChunkSize = 10000

// ChunkReader reads a single log file in bounded batches of lines so memory
// stays bounded regardless of file size. Bytes are decoded as ISO-8859-1,
// which accepts every byte value; high bytes in player names never produce a
// decoding error.
//
// Reading is strictly sequential and a reader cannot be rewound; open a fresh
// one per file.
type ChunkReader struct {
	path      string
	chunkSize int

	file    *os.File
	scanner *bufio.Scanner
	done    bool
}

// NewChunkReader creates a reader for the given file. A chunkSize of zero or
// less uses DefaultChunkSize. The file is opened lazily on the first Next.
func NewChunkReader(path string, chunkSize int) *ChunkReader {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	return &ChunkReader{
		path:      path,
		chunkSize: chunkSize,
	}
}

// Next returns the next batch of at most chunkSize lines.
// Returns io.EOF once the file is exhausted.
func (r *ChunkReader) Next(ctx context.Context) ([]string, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	if r.done {
		return nil, io.EOF
	}

	if r.scanner == nil {
		if err := r.open(); err != nil {
			return nil, err
		}
	}

	lines := make([]string, 0, r.chunkSize)
	for len(lines) < r.chunkSize && r.scanner.Scan() {
		lines = append(lines, r.scanner.Text())
	}

	if err := r.scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", r.path, err)
	}

	if len(lines) == 0 {
		r.done = true
		return nil, io.EOF
	}

	return lines, nil
}

// Close releases the underlying file.
func (r *ChunkReader) Close() error {
	if r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	r.scanner = nil
	return err
}

func (r *ChunkReader) open() error {
	f, err := os.Open(r.path) // #nosec G304 -- user-provided paths are expected
	if err != nil {
		return fmt.Errorf("opening log file %s: %w", r.path, err)
	}

	r.file = f
	decoded := charmap.ISO8859_1.NewDecoder().Reader(f)
	r.scanner = bufio.NewScanner(decoded)
	r.scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024) // 1MB max line size

	return nil
}
