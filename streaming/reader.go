// Package streaming reads large files sequentially in bounded chunks, with
// helpers for line iteration, substring search, and marker-delimited section
// extraction. It never loads a whole file into memory and takes no part in
// any cache bookkeeping.
package streaming

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/go-git/go-billy/v5"
)

// Defaults for chunked reading.
const (
	DefaultChunkSize  = 1024 * 1024 // 1 MiB
	DefaultBufferSize = 8 * 1024    // 8 KiB
)

// ErrNotOpen is returned by positional operations before Open succeeds.
var ErrNotOpen = errors.New("streaming reader is not open")

// Reader reads one file in chunks. The manual surface (Open, ReadChunk,
// Seek, Tell, Close) maintains a single position; the scanning helpers
// (Chunks, Lines, Search, ExtractSections) open their own handle at the
// start of the file and leave the manual position untouched.
//
// A Reader is not safe for concurrent use.
type Reader struct {
	fs         billy.Filesystem
	path       string
	chunkSize  int
	bufferSize int

	file billy.File
	pos  int64
	size int64
}

// Option adjusts reader construction.
type Option func(*Reader)

// WithChunkSize sets the chunk size in bytes for ReadChunk and Chunks.
// Non-positive values are ignored.
func WithChunkSize(n int) Option {
	return func(r *Reader) {
		if n > 0 {
			r.chunkSize = n
		}
	}
}

// WithBufferSize sets the initial line-scanning buffer size in bytes.
// Non-positive values are ignored.
func WithBufferSize(n int) Option {
	return func(r *Reader) {
		if n > 0 {
			r.bufferSize = n
		}
	}
}

// NewReader creates a reader for path on fsys. The file is not opened yet;
// Size reports 0 until the file exists. A missing file surfaces on Open.
func NewReader(fsys billy.Filesystem, path string, opts ...Option) *Reader {
	r := &Reader{
		fs:         fsys,
		path:       path,
		chunkSize:  DefaultChunkSize,
		bufferSize: DefaultBufferSize,
	}
	for _, opt := range opts {
		opt(r)
	}
	if info, err := fsys.Stat(path); err == nil {
		r.size = info.Size()
	}
	return r
}

// Open opens the file and resets the position to the start. Opening an
// already-open reader reopens from the beginning.
func (r *Reader) Open() error {
	if r.file != nil {
		if err := r.Close(); err != nil {
			return err
		}
	}

	f, err := r.fs.Open(r.path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", r.path, err)
	}
	r.file = f
	r.pos = 0

	if info, err := r.fs.Stat(r.path); err == nil {
		r.size = info.Size()
	}
	return nil
}

// Close closes the underlying file. Closing a closed reader is a no-op.
func (r *Reader) Close() error {
	if r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	if err != nil {
		return fmt.Errorf("failed to close %s: %w", r.path, err)
	}
	return nil
}

// ReadChunk reads the next chunk from the current position. At end of file
// it returns (nil, io.EOF).
func (r *Reader) ReadChunk() ([]byte, error) {
	if r.file == nil {
		return nil, ErrNotOpen
	}

	buf := make([]byte, r.chunkSize)
	n, err := io.ReadFull(r.file, buf)
	if n > 0 {
		r.pos += int64(n)
		return buf[:n], nil
	}
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return nil, io.EOF
	}
	return nil, fmt.Errorf("failed to read %s: %w", r.path, err)
}

// Seek moves the current position to offset bytes from the file start.
func (r *Reader) Seek(offset int64) error {
	if r.file == nil {
		return ErrNotOpen
	}
	if _, err := r.file.Seek(offset, io.SeekStart); err != nil {
		return fmt.Errorf("failed to seek in %s: %w", r.path, err)
	}
	r.pos = offset
	return nil
}

// Tell returns the current position in bytes.
func (r *Reader) Tell() int64 {
	return r.pos
}

// Size returns the file size observed at construction or the last Open.
func (r *Reader) Size() int64 {
	return r.size
}

// Progress returns how far the current position is through the file, from
// 0 to 1. An empty or missing file reports 1: there is nothing left to read.
func (r *Reader) Progress() float64 {
	if r.size == 0 {
		return 1.0
	}
	return float64(r.pos) / float64(r.size)
}

// Chunks calls fn for every chunk of the file, in order, from the start.
// The chunk slice is only valid during the call. Iteration stops at the
// first error from fn.
func (r *Reader) Chunks(fn func(chunk []byte) error) error {
	f, err := r.fs.Open(r.path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", r.path, err)
	}
	defer f.Close()

	buf := make([]byte, r.chunkSize)
	for {
		n, err := io.ReadFull(f, buf)
		if n > 0 {
			if cbErr := fn(buf[:n]); cbErr != nil {
				return cbErr
			}
		}
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", r.path, err)
		}
	}
}

// Lines calls fn for every line of the file, in order, without the trailing
// newline. Iteration stops at the first error from fn.
func (r *Reader) Lines(fn func(line string) error) error {
	f, err := r.fs.Open(r.path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", r.path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	maxLine := r.chunkSize
	if maxLine < r.bufferSize {
		maxLine = r.bufferSize
	}
	scanner.Buffer(make([]byte, r.bufferSize), maxLine)

	for scanner.Scan() {
		if err := fn(scanner.Text()); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to scan %s: %w", r.path, err)
	}
	return nil
}
