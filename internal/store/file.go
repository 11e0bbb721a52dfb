package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
)

// FileStore writes to the local filesystem.
type FileStore struct {
	// Perm is the mode for newly created files. Default: 0644
	Perm os.FileMode
}

// NewFileStore returns a FileStore with default permissions.
func NewFileStore() *FileStore {
	return &FileStore{Perm: 0644}
}

// Write creates or truncates path and copies r into it. The file handle is
// released on every path; a close error is reported if the copy succeeded.
func (s *FileStore) Write(ctx context.Context, path string, r io.Reader) (n int64, err error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	perm := s.Perm
	if perm == 0 {
		perm = 0644
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, perm)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrStore, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: close %s: %w", ErrStore, path, cerr)
		}
	}()

	n, err = io.Copy(f, r)
	if err != nil {
		return n, fmt.Errorf("%w: write %s: %w", ErrStore, path, err)
	}
	return n, nil
}

// Stat returns file metadata for path.
func (s *FileStore) Stat(ctx context.Context, path string) (Info, error) {
	fi, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Info{}, fmt.Errorf("%w: %s", ErrNotExist, path)
		}
		return Info{}, err
	}
	return Info{Name: path, Size: fi.Size(), ModTime: fi.ModTime()}, nil
}

// Close is a no-op.
func (s *FileStore) Close() error {
	return nil
}
