package store

import (
	"context"
	"errors"
	"io"
	"time"
)

// Common errors.
var (
	ErrStore    = errors.New("store: write failed")
	ErrNotExist = errors.New("store: file does not exist")
)

// Info describes a stored file.
type Info struct {
	Name    string
	Size    int64
	ModTime time.Time
}

// Store persists named byte streams.
type Store interface {
	// Write replaces name with the full contents of r and returns the
	// number of bytes written.
	Write(ctx context.Context, name string, r io.Reader) (int64, error)

	// Stat returns metadata for name, or an error wrapping ErrNotExist.
	Stat(ctx context.Context, name string) (Info, error)

	Close() error
}
