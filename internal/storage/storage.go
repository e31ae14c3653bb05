// Package storage holds the bytes of uploaded images. Metadata lives in the
// document store; this package never sees it.
package storage

import (
	"context"
	"errors"
	"io"
)

// ErrBlobNotFound is returned by Open when nothing is stored at the path.
var ErrBlobNotFound = errors.New("blob not found")

type BlobStore interface {
	// Put stores r under name and returns the storage path and byte count.
	// Readers never observe a partially written blob.
	Put(ctx context.Context, name, contentType string, r io.Reader) (string, int64, error)
	// Open returns the blob at path and its size.
	Open(ctx context.Context, path string) (io.ReadCloser, int64, error)
	// Remove deletes the blob at path. A missing blob is not an error.
	Remove(ctx context.Context, path string) error
}

// ctxReader stops a copy once ctx is done.
type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func (c ctxReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}

type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}
