// Package blobstore stores uploaded document files.
package blobstore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"
)

// Driver identifies a blob storage backend
type Driver string

const (
	DriverMemory Driver = "memory"
	DriverS3     Driver = "s3"
)

// ErrNotFound is returned when a key does not exist
var ErrNotFound = errors.New("blob not found")

// PutOptions describes the object being written
type PutOptions struct {
	ContentType string
	// Size is the body length when known; S3 uses it as Content-Length
	Size int64
}

// Info describes a stored blob
type Info struct {
	Key          string    `json:"key"`
	Size         int64     `json:"size_bytes"`
	ContentType  string    `json:"content_type,omitempty"`
	LastModified time.Time `json:"last_modified"`
}

// Store is a flat key/value object store
type Store interface {
	Put(ctx context.Context, key string, r io.Reader, opts PutOptions) (Info, error)
	Get(ctx context.Context, key string) (Info, io.ReadCloser, error)
	// Delete removes key and reports whether it existed
	Delete(ctx context.Context, key string) (bool, error)
	Driver() Driver
}

// Options selects and configures a backend
type Options struct {
	Driver string
	S3     S3Config
}

// Open returns the store named by opts.Driver (default memory)
func Open(ctx context.Context, opts Options) (Store, error) {
	switch Driver(opts.Driver) {
	case "", DriverMemory:
		return NewMemory(), nil
	case DriverS3:
		return NewS3(ctx, opts.S3)
	default:
		return nil, fmt.Errorf("unknown blob driver %q", opts.Driver)
	}
}
